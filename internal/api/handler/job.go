package handler

import (
	"net/http"

	"hangman/internal/api/response"
	"hangman/internal/services/reminder"
)

// JobHandler handles background job endpoints
type JobHandler struct {
	reminderService *reminder.Service
}

// NewJobHandler creates a new job handler
func NewJobHandler(reminderService *reminder.Service) *JobHandler {
	return &JobHandler{reminderService: reminderService}
}

// Reminder handles POST /api/v1/jobs/reminder
func (h *JobHandler) Reminder(w http.ResponseWriter, r *http.Request) {
	sent, err := h.reminderService.Scan(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ReminderResult{Sent: sent})
}
