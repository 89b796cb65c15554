// Package stress computes a bounded stress score from a face-mesh landmark set.
package stress

import (
	"math"

	"BreathePulse/pkg/facemesh"
)

// Face-mesh landmark indices following the MediaPipe convention.
// The index of each point is a fixed semantic identity assigned by the
// face-mesh model; the refined mesh carries 478 points.
// See: https://developers.google.com/mediapipe/solutions/vision/face_landmarker
const (
	NoseTip          = 1
	LeftInnerBrow    = 55
	LeftMouthCorner  = 61
	LeftEyeBottom    = 145
	LeftEyeTop       = 159
	RightInnerBrow   = 285
	RightMouthCorner = 291
	RightEyeBottom   = 374
	RightEyeTop      = 386
	LeftPupil        = 468
	RightPupil       = 473

	MeshSize = 478
)

// distance2D is the Euclidean distance between two landmarks in the image
// plane. Z is deliberately ignored: per-camera depth calibration is unreliable.
func distance2D(a, b facemesh.Landmark) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
