package analysisService

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BreathePulse/internal/api/analysis"
	"BreathePulse/pkg/facemesh"
	"BreathePulse/pkg/stress"
)

type fakeFaceMesh struct {
	result *facemesh.DetectionResult
	err    error
}

func (f *fakeFaceMesh) ProcessFrame(frame []byte) (*facemesh.DetectionResult, error) {
	return f.result, f.err
}

func (f *fakeFaceMesh) IsConnected() bool { return true }
func (f *fakeFaceMesh) Reconnect() error  { return nil }
func (f *fakeFaceMesh) Close()            {}

func newTestService(mesh facemesh.IFaceMesh) IAnalysisService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewAnalysisService(logger, mesh, stress.NewScorer(stress.DefaultCalibration()))
}

func fullMesh() []facemesh.Landmark {
	landmarks := make([]facemesh.Landmark, stress.MeshSize)
	for i := range landmarks {
		landmarks[i] = facemesh.Landmark{X: 0.5, Y: 0.5}
	}
	landmarks[stress.LeftPupil] = facemesh.Landmark{X: 0.4, Y: 0.5}
	landmarks[stress.RightPupil] = facemesh.Landmark{X: 0.6, Y: 0.5}
	return landmarks
}

func TestAnalyzeFrameNoFace(t *testing.T) {
	svc := newTestService(&fakeFaceMesh{
		result: &facemesh.DetectionResult{FaceDetected: false},
	})

	result, err := svc.AnalyzeFrame([]byte("frame"))
	require.NoError(t, err)

	assert.False(t, result.FaceDetected)
	assert.Equal(t, 0, result.StressLevel)
}

func TestAnalyzeFrameDetectedButEmptyLandmarks(t *testing.T) {
	svc := newTestService(&fakeFaceMesh{
		result: &facemesh.DetectionResult{FaceDetected: true},
	})

	result, err := svc.AnalyzeFrame([]byte("frame"))
	require.NoError(t, err)

	assert.False(t, result.FaceDetected)
	assert.Equal(t, 0, result.StressLevel)
}

func TestAnalyzeFrameWithFace(t *testing.T) {
	svc := newTestService(&fakeFaceMesh{
		result: &facemesh.DetectionResult{
			FaceDetected: true,
			Landmarks:    fullMesh(),
		},
	})

	result, err := svc.AnalyzeFrame([]byte("frame"))
	require.NoError(t, err)

	assert.True(t, result.FaceDetected)
	assert.GreaterOrEqual(t, result.StressLevel, 0)
	assert.LessOrEqual(t, result.StressLevel, 100)
}

func TestAnalyzeFrameSidecarFailure(t *testing.T) {
	svc := newTestService(&fakeFaceMesh{err: errors.New("connection refused")})

	result, err := svc.AnalyzeFrame([]byte("frame"))
	require.Nil(t, result)
	assert.ErrorIs(t, err, analysis.ErrFaceMeshUnavailable)
}
