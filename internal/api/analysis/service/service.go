package analysisService

import (
	"github.com/sirupsen/logrus"

	"BreathePulse/internal/entity"
	"BreathePulse/pkg/facemesh"
	"BreathePulse/pkg/stress"
)

type IAnalysisService interface {
	AnalyzeFrame(frame []byte) (*entity.FrameAnalysis, error)
}

type analysisService struct {
	log      *logrus.Logger
	faceMesh facemesh.IFaceMesh
	scorer   *stress.Scorer
}

func NewAnalysisService(
	log *logrus.Logger,
	faceMesh facemesh.IFaceMesh,
	scorer *stress.Scorer,
) IAnalysisService {
	return &analysisService{
		log:      log,
		faceMesh: faceMesh,
		scorer:   scorer,
	}
}
