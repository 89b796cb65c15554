package feedback

import (
	"net/http"

	"BreathePulse/pkg/response"
)

var (
	ErrCreateFeedback = response.NewError(http.StatusInternalServerError, "failed to store feedback")
	ErrNoUserMessage  = response.NewError(http.StatusBadRequest, "no user message provided")
)
