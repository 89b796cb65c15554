package analysis

import "BreathePulse/internal/entity"

type AnalyzeFrameRequest struct {
	ImageBase64 string `json:"image_base64" validate:"required"`
}

type AnalyzeFrameResponse struct {
	Data entity.FrameAnalysis `json:"data"`
}
