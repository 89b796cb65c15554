package analysisService

import (
	"github.com/sirupsen/logrus"

	"BreathePulse/internal/api/analysis"
	"BreathePulse/internal/entity"
)

// AnalyzeFrame runs one webcam frame through the face-mesh sidecar and
// reduces the landmark set to a stress level. A frame without a face is a
// normal outcome, not an error; only a sidecar failure surfaces to the
// caller.
func (s *analysisService) AnalyzeFrame(frame []byte) (*entity.FrameAnalysis, error) {
	result, err := s.faceMesh.ProcessFrame(frame)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Face-mesh frame processing failed")
		return nil, analysis.ErrFaceMeshUnavailable
	}

	if !result.FaceDetected || len(result.Landmarks) == 0 {
		return &entity.FrameAnalysis{
			StressLevel:  0,
			FaceDetected: false,
		}, nil
	}

	stressLevel := s.scorer.Score(result.Landmarks)

	s.log.WithFields(logrus.Fields{
		"stress_level": stressLevel,
		"landmarks":    len(result.Landmarks),
	}).Debug("Frame analyzed")

	return &entity.FrameAnalysis{
		StressLevel:  stressLevel,
		FaceDetected: true,
	}, nil
}
