package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"hangman/internal/api/request"
	"hangman/internal/api/response"
	"hangman/internal/model"
	"hangman/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController *game.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller) *GameHandler {
	return &GameHandler{gameController: gameController}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.NewGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	g, err := h.gameController.NewGame(r.Context(), req.Name, req.Topic, req.Answer, req.AttemptsRemaining)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.GameStateFromModel(g, "Good luck playing Hangman!")
	response.JSON(w, http.StatusCreated, resp)
}

// Get handles GET /api/v1/games/{key}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := model.GameKey(mux.Vars(r)["key"])

	g, err := h.gameController.GetGame(r.Context(), key)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.GameStateFromModel(g, "Time to make a move!")
	response.JSON(w, http.StatusOK, resp)
}

// Move handles PUT /api/v1/games/{key}/move
func (h *GameHandler) Move(w http.ResponseWriter, r *http.Request) {
	key := model.GameKey(mux.Vars(r)["key"])

	var req request.MakeMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	g, message, err := h.gameController.MakeMove(r.Context(), key, req.Guess)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.GameStateFromModel(g, message)
	response.JSON(w, http.StatusOK, resp)
}

// History handles GET /api/v1/games/{key}/history
func (h *GameHandler) History(w http.ResponseWriter, r *http.Request) {
	key := model.GameKey(mux.Vars(r)["key"])

	entries, err := h.gameController.History(r.Context(), key)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.HistoryFromModel(key, entries))
}

// UserGames handles GET /api/v1/users/{name}/games
func (h *GameHandler) UserGames(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	games, err := h.gameController.ActiveGames(r.Context(), name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameListFromModel(games, ""))
}

// Cancel handles DELETE /api/v1/users/{name}/games/{key}
func (h *GameHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name := vars["name"]
	key := model.GameKey(vars["key"])

	if err := h.gameController.CancelGame(r.Context(), name, key); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Message{Message: "Game has been cancelled"})
}
