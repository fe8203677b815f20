package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hangman/internal/api"
	"hangman/internal/api/response"
	"hangman/internal/dependencies/mocks"
	"hangman/internal/factory"
	"hangman/internal/storage/memory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	storage *memory.Storage
	mailer  *mocks.MockMailer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests, use the production factory with real random/clock
	ml := mocks.NewMockMailer()
	app, err := factory.New(factory.Config{Mailer: ml})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		UserService:     app.UserService,
		GameController:  app.GameController,
		ScoreService:    app.ScoreService,
		ReminderService: app.ReminderService,
	})

	return &testServer{
		handler: router,
		storage: app.Storage.(*memory.Storage),
		mailer:  ml,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func (ts *testServer) createUser(t *testing.T, name, email string) {
	t.Helper()
	rr := ts.request(http.MethodPost, "/api/v1/users", map[string]string{"name": name, "email": email})
	require.Equal(t, http.StatusCreated, rr.Code)
}

func (ts *testServer) newGame(t *testing.T, name, topic, answer string) response.GameState {
	t.Helper()
	rr := ts.request(http.MethodPost, "/api/v1/games", map[string]string{
		"name": name, "topic": topic, "answer": answer,
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var g response.GameState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &g))
	return g
}

func (ts *testServer) move(t *testing.T, key, guess string) response.GameState {
	t.Helper()
	rr := ts.request(http.MethodPut, "/api/v1/games/"+key+"/move", map[string]string{"guess": guess})
	require.Equal(t, http.StatusOK, rr.Code)

	var g response.GameState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &g))
	return g
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreateUser(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/users", map[string]string{"name": "alice"})
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), "User alice created!")
}

func TestCreateUserDuplicateName(t *testing.T) {
	ts := newTestServer(t)
	ts.createUser(t, "alice", "")

	rr := ts.request(http.MethodPost, "/api/v1/users", map[string]string{"name": "alice"})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "USER_EXISTS")
}

func TestCreateUserMissingName(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/users", map[string]string{"email": "a@b.com"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_REQUEST")
}

func TestGetUser(t *testing.T) {
	ts := newTestServer(t)
	ts.createUser(t, "alice", "alice@example.com")

	rr := ts.request(http.MethodGet, "/api/v1/users/alice", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var u response.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &u))
	assert.Equal(t, "alice", u.Name)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Zero(t, u.Wins)
}

func TestGetUnknownUser(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/users/nobody", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "USER_NOT_FOUND")
}

func TestNewGame(t *testing.T) {
	ts := newTestServer(t)
	ts.createUser(t, "alice", "")

	g := ts.newGame(t, "alice", "animals", "cat")

	assert.NotEmpty(t, g.Key)
	assert.Equal(t, "alice", g.UserName)
	assert.Equal(t, "animals", g.Topic)
	assert.Equal(t, []string{"_", "_", "_"}, g.Hidden)
	assert.Equal(t, 6, g.AttemptsRemaining)
	assert.False(t, g.GameOver)
	assert.Equal(t, "Good luck playing Hangman!", g.Message)
	assert.NotEmpty(t, g.DateCreated)
}

func TestNewGameUnknownUser(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/games", map[string]string{
		"name": "nobody", "answer": "cat",
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "USER_NOT_FOUND")
}

func TestNewGameEmptyAnswer(t *testing.T) {
	ts := newTestServer(t)
	ts.createUser(t, "alice", "")

	rr := ts.request(http.MethodPost, "/api/v1/games", map[string]string{
		"name": "alice", "answer": "   ",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_ANSWER")
}

func TestGetGame(t *testing.T) {
	ts := newTestServer(t)
	ts.createUser(t, "alice", "")
	g := ts.newGame(t, "alice", "animals", "cat")

	rr := ts.request(http.MethodGet, "/api/v1/games/"+g.Key, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var fetched response.GameState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &fetched))
	assert.Equal(t, g.Key, fetched.Key)
	assert.Equal(t, "Time to make a move!", fetched.Message)
}

func TestGetUnknownGame(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/games/UNKNOWN", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "GAME_NOT_FOUND")
}

func TestMakeMove(t *testing.T) {
	ts := newTestServer(t)
	ts.createUser(t, "alice", "")
	g := ts.newGame(t, "alice", "animals", "cat")

	moved := ts.move(t, g.Key, "a")
	assert.Equal(t, []string{"_", "a", "_"}, moved.Hidden)
	assert.Equal(t, 6, moved.AttemptsRemaining)
	assert.Equal(t, "Nice! Looks like you guessed right", moved.Message)

	moved = ts.move(t, g.Key, "z")
	assert.Equal(t, 5, moved.AttemptsRemaining)
	assert.Contains(t, moved.Message, "Nope Sorry!")
}

func TestMakeMoveRejectsDigits(t *testing.T) {
	ts := newTestServer(t)
	ts.createUser(t, "alice", "")
	g := ts.newGame(t, "alice", "", "cat")

	moved := ts.move(t, g.Key, "7")
	assert.Equal(t, "Please enter a letter.", moved.Message)
	assert.Equal(t, 6, moved.AttemptsRemaining)
}

func TestWinGame(t *testing.T) {
	ts := newTestServer(t)
	ts.createUser(t, "alice", "")
	g := ts.newGame(t, "alice", "animals", "cat")

	ts.move(t, g.Key, "c")
	ts.move(t, g.Key, "a")
	final := ts.move(t, g.Key, "t")

	assert.True(t, final.GameOver)
	assert.Contains(t, final.Message, "CONGRATS You WON!")
	assert.Contains(t, final.Message, "cat")

	// Win recorded against the user
	rr := ts.request(http.MethodGet, "/api/v1/users/alice", nil)
	var u response.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &u))
	assert.Equal(t, 1, u.Wins)
	assert.Equal(t, 100.0, u.Performance)
	assert.Zero(t, u.ActiveGames)

	// Score recorded on the leaderboard
	rr = ts.request(http.MethodGet, "/api/v1/scores", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	var scores response.ScoreList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &scores))
	require.Len(t, scores.Scores, 1)
	assert.Equal(t, "alice", scores.Scores[0].UserName)
	assert.True(t, scores.Scores[0].Won)
}

func TestGameHistory(t *testing.T) {
	ts := newTestServer(t)
	ts.createUser(t, "alice", "")
	g := ts.newGame(t, "alice", "", "cat")
	ts.move(t, g.Key, "c")

	rr := ts.request(http.MethodGet, "/api/v1/games/"+g.Key+"/history", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var h response.History
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &h))
	assert.Equal(t, g.Key, h.Key)
	require.Len(t, h.History, 2)
	assert.Equal(t, "Good luck playing Hangman!", h.History[0].Message)
	assert.Equal(t, "c", h.History[1].Guess)
}

func TestUserGames(t *testing.T) {
	ts := newTestServer(t)
	ts.createUser(t, "alice", "")
	ts.newGame(t, "alice", "animals", "cat")
	ts.newGame(t, "alice", "fruit", "pear")

	rr := ts.request(http.MethodGet, "/api/v1/users/alice/games", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var list response.GameList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Len(t, list.Games, 2)
}

func TestCancelGame(t *testing.T) {
	ts := newTestServer(t)
	ts.createUser(t, "alice", "")
	g := ts.newGame(t, "alice", "", "cat")

	rr := ts.request(http.MethodDelete, "/api/v1/users/alice/games/"+g.Key, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Game has been cancelled")

	rr = ts.request(http.MethodGet, "/api/v1/games/"+g.Key, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCancelCompletedGame(t *testing.T) {
	ts := newTestServer(t)
	ts.createUser(t, "alice", "")
	g := ts.newGame(t, "alice", "", "a")
	final := ts.move(t, g.Key, "a")
	require.True(t, final.GameOver)

	rr := ts.request(http.MethodDelete, "/api/v1/users/alice/games/"+g.Key, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "GAME_ALREADY_OVER")
}

func TestCancelForeignGame(t *testing.T) {
	ts := newTestServer(t)
	ts.createUser(t, "alice", "")
	ts.createUser(t, "bob", "")
	g := ts.newGame(t, "alice", "", "cat")

	rr := ts.request(http.MethodDelete, "/api/v1/users/bob/games/"+g.Key, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "GAME_NOT_FOUND")
}

func TestRankings(t *testing.T) {
	ts := newTestServer(t)
	ts.createUser(t, "alice", "")
	ts.createUser(t, "bob", "")

	// alice wins a game, bob loses one
	g := ts.newGame(t, "alice", "", "a")
	ts.move(t, g.Key, "a")

	g = ts.newGame(t, "bob", "", "xyz")
	for _, guess := range []string{"a", "b", "c", "d", "e", "f"} {
		ts.move(t, g.Key, guess)
	}

	rr := ts.request(http.MethodGet, "/api/v1/rankings", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var rankings response.UserList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rankings))
	require.Len(t, rankings.Users, 2)
	assert.Equal(t, "alice", rankings.Users[0].Name)
	assert.Equal(t, 100.0, rankings.Users[0].Performance)
	assert.Equal(t, "bob", rankings.Users[1].Name)
	assert.Equal(t, 0.0, rankings.Users[1].Performance)
}

func TestHighScoresLimit(t *testing.T) {
	ts := newTestServer(t)
	ts.createUser(t, "alice", "")

	for i := 0; i < 3; i++ {
		g := ts.newGame(t, "alice", "", "a")
		ts.move(t, g.Key, "a")
	}

	rr := ts.request(http.MethodGet, "/api/v1/scores?limit=2", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var scores response.ScoreList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &scores))
	assert.Len(t, scores.Scores, 2)
}

func TestHighScoresInvalidLimit(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/scores?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_REQUEST")
}

func TestReminderJob(t *testing.T) {
	ts := newTestServer(t)
	ts.createUser(t, "alice", "alice@example.com")
	ts.createUser(t, "bob", "")
	ts.newGame(t, "alice", "animals", "cat")
	ts.newGame(t, "bob", "", "dog")

	rr := ts.request(http.MethodPost, "/api/v1/jobs/reminder", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var result response.ReminderResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Sent)

	emails := ts.mailer.Sent()
	require.Len(t, emails, 1)
	assert.Equal(t, "alice@example.com", emails[0].To)
	assert.Contains(t, emails[0].Body, fmt.Sprintf("Your topic was %s", "animals"))
}
