package handler

import (
	"net/http"
	"strconv"

	"hangman/internal/api/response"
	"hangman/internal/services/score"
)

// ScoreHandler handles leaderboard endpoints
type ScoreHandler struct {
	scoreService *score.Service
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(scoreService *score.Service) *ScoreHandler {
	return &ScoreHandler{scoreService: scoreService}
}

// HighScores handles GET /api/v1/scores
func (h *ScoreHandler) HighScores(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			WriteError(w, NewInvalidRequestError("limit must be a non-negative integer"))
			return
		}
		limit = parsed
	}

	scores, err := h.scoreService.HighScores(r.Context(), limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ScoreListFromModel(scores))
}
