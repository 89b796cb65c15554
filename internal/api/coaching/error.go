package coaching

import (
	"net/http"

	"BreathePulse/pkg/response"
)

var (
	ErrHabitNotFound      = response.NewError(http.StatusNotFound, "habit not found")
	ErrHabitNotOwned      = response.NewError(http.StatusForbidden, "habit does not belong to user")
	ErrCreateHabit        = response.NewError(http.StatusInternalServerError, "failed to create habit")
	ErrSummaryUnavailable = response.NewError(http.StatusBadGateway, "failed to generate weekly summary")
)
