package analysis

import (
	"net/http"

	"BreathePulse/pkg/response"
)

var (
	ErrInvalidImage        = response.NewError(http.StatusBadRequest, "invalid image data")
	ErrFaceMeshUnavailable = response.NewError(http.StatusServiceUnavailable, "face analysis service unavailable")
)
