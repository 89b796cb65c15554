package stress

import (
	"math"

	"BreathePulse/pkg/facemesh"
)

// epsilon guards divisions against vanishing denominators.
const epsilon = 1e-6

type Scorer struct {
	cal Calibration
}

func NewScorer(cal Calibration) *Scorer {
	return &Scorer{cal: cal}
}

// Score reduces a 478-point landmark set to a stress level in [0,100].
//
// The scorer never fails: insufficient landmarks, a degenerate inter-pupil
// distance, and non-finite coordinates all yield the neutral score 0. The
// caller reports "no face detected" separately; 0 only means "no usable
// signal". Rounding is math.Round, ties away from zero.
func (s *Scorer) Score(landmarks []facemesh.Landmark) int {
	if len(landmarks) < MeshSize {
		return 0
	}

	browDistance := distance2D(landmarks[LeftInnerBrow], landmarks[RightInnerBrow])

	leftAperture := math.Abs(landmarks[LeftEyeTop].Y - landmarks[LeftEyeBottom].Y)
	rightAperture := math.Abs(landmarks[RightEyeTop].Y - landmarks[RightEyeBottom].Y)
	avgAperture := (leftAperture + rightAperture) / 2

	// Mouth corners below the nose tip have larger Y; a rising value is a frown.
	avgCornerY := (landmarks[LeftMouthCorner].Y + landmarks[RightMouthCorner].Y) / 2
	mouthDroop := avgCornerY - landmarks[NoseTip].Y

	// Inter-pupil distance is the sole scale reference, making the ratios
	// invariant to face size and camera distance.
	interPupil := distance2D(landmarks[LeftPupil], landmarks[RightPupil])
	if interPupil < epsilon {
		return 0
	}

	normBrow := browDistance / interPupil
	normEye := avgAperture / interPupil
	normMouth := mouthDroop / interPupil

	if !isFinite(normBrow) || !isFinite(normEye) || !isFinite(normMouth) {
		return 0
	}

	browScore := subScore(normBrow, s.cal.Brow)
	eyeScore := subScore(normEye, s.cal.Eye)
	mouthScore := subScore(normMouth, s.cal.Mouth)

	combined := browScore*s.cal.Brow.Weight + eyeScore*s.cal.Eye.Weight + mouthScore*s.cal.Mouth.Weight
	combined = clamp(combined, 0, 100)

	return int(math.Round(combined))
}

// Score computes the stress level with the default calibration.
func Score(landmarks []facemesh.Landmark) int {
	scorer := Scorer{cal: DefaultCalibration()}
	return scorer.Score(landmarks)
}

// subScore is a clamped linear interpolation between the calibrated relaxed
// and stressed baselines. The sign of the span selects the direction, so the
// same formula serves both falling features (brow, eye) and the rising mouth
// feature. A near-zero span is degenerate calibration and scores 0.
func subScore(observed float64, fc FeatureCalibration) float64 {
	span := fc.Relaxed - fc.Stressed
	if math.Abs(span) <= epsilon {
		return 0
	}
	return clamp(100*(fc.Relaxed-observed)/span, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
