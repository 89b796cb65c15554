package chat

import (
	"net/http"

	"BreathePulse/pkg/response"
)

var (
	ErrNoUserMessage = response.NewError(http.StatusBadRequest, "no user message provided")
	ErrCreateMood    = response.NewError(http.StatusInternalServerError, "failed to record mood entry")
	ErrUpdateJournal = response.NewError(http.StatusInternalServerError, "failed to update journal entry")
)
