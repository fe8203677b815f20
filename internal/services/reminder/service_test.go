package reminder

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"hangman/internal/dependencies/mocks"
	"hangman/internal/model"
	"hangman/internal/storage/memory"
	"hangman/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	mailer  *mocks.MockMailer
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.mailer = mocks.NewMockMailer()
	s.service = New(s.storage, s.mailer, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestScanEmailsUnfinishedGames() {
	_ = s.storage.SaveUser(s.ctx, &model.User{
		Name:           "alice",
		Email:          "alice@example.com",
		ActiveGameKeys: []model.GameKey{"GAME1", "GAME2"},
	})
	_ = s.storage.SaveGame(s.ctx, &model.Game{
		Key: "GAME1", UserName: "alice", Topic: "animals", AttemptsRemaining: 4,
	})
	_ = s.storage.SaveGame(s.ctx, &model.Game{
		Key: "GAME2", UserName: "alice", Topic: "fruit", AttemptsRemaining: 2,
	})

	sent, err := s.service.Scan(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, sent)

	emails := s.mailer.Sent()
	s.Require().Len(emails, 2)
	s.Equal("alice@example.com", emails[0].To)
	s.Equal("This is a reminder from HangmanApi!", emails[0].Subject)
	s.Contains(emails[0].Body, "Hello alice")
	s.Contains(emails[0].Body, "Your topic was animals")
	s.Contains(emails[0].Body, "4 attempts left")
}

func (s *ServiceSuite) TestScanSkipsUsersWithoutEmail() {
	_ = s.storage.SaveUser(s.ctx, &model.User{
		Name:           "bob",
		ActiveGameKeys: []model.GameKey{"GAME1"},
	})
	_ = s.storage.SaveGame(s.ctx, &model.Game{
		Key: "GAME1", UserName: "bob", AttemptsRemaining: 3,
	})

	sent, err := s.service.Scan(s.ctx)
	s.Require().NoError(err)
	s.Zero(sent)
	s.Empty(s.mailer.Sent())
}

func (s *ServiceSuite) TestScanSkipsUsersWithoutActiveGames() {
	_ = s.storage.SaveUser(s.ctx, &model.User{
		Name:  "carol",
		Email: "carol@example.com",
	})

	sent, err := s.service.Scan(s.ctx)
	s.Require().NoError(err)
	s.Zero(sent)
	s.Empty(s.mailer.Sent())
}

func (s *ServiceSuite) TestScanSkipsFinishedGames() {
	_ = s.storage.SaveUser(s.ctx, &model.User{
		Name:           "dave",
		Email:          "dave@example.com",
		ActiveGameKeys: []model.GameKey{"GAME1"},
	})
	_ = s.storage.SaveGame(s.ctx, &model.Game{
		Key: "GAME1", UserName: "dave", GameOver: true,
	})

	sent, err := s.service.Scan(s.ctx)
	s.Require().NoError(err)
	s.Zero(sent)
	s.Empty(s.mailer.Sent())
}

func (s *ServiceSuite) TestScanContinuesPastSendFailures() {
	s.mailer.Err = errors.New("smtp down")
	_ = s.storage.SaveUser(s.ctx, &model.User{
		Name:           "erin",
		Email:          "erin@example.com",
		ActiveGameKeys: []model.GameKey{"GAME1"},
	})
	_ = s.storage.SaveGame(s.ctx, &model.Game{
		Key: "GAME1", UserName: "erin", AttemptsRemaining: 5,
	})

	sent, err := s.service.Scan(s.ctx)
	s.Require().NoError(err)
	s.Zero(sent)
}
