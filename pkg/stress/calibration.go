package stress

import (
	"errors"
	"math"
)

// FeatureCalibration maps one normalized geometric ratio onto a [0,100]
// sub-score. Relaxed is the ratio expected on a calm face, Stressed the ratio
// at maximum stress. Relaxed > Stressed means the sub-score rises as the ratio
// falls, and the other way around for Relaxed < Stressed.
type FeatureCalibration struct {
	Relaxed  float64
	Stressed float64
	Weight   float64
}

type Calibration struct {
	Brow  FeatureCalibration
	Eye   FeatureCalibration
	Mouth FeatureCalibration
}

// DefaultCalibration returns the empirically tuned baselines. The eye band is
// deliberately narrow, making eye aperture the most sensitive feature.
func DefaultCalibration() Calibration {
	return Calibration{
		Brow:  FeatureCalibration{Relaxed: 0.30, Stressed: 0.15, Weight: 0.3},
		Eye:   FeatureCalibration{Relaxed: 0.11, Stressed: 0.10, Weight: 0.5},
		Mouth: FeatureCalibration{Relaxed: 0.30, Stressed: 0.40, Weight: 0.2},
	}
}

// Validate is meant to run once at startup. A degenerate relaxed/stressed pair
// is not an error here; the scorer guards it per call and yields a zero
// sub-score for that feature.
func (c Calibration) Validate() error {
	for _, fc := range []FeatureCalibration{c.Brow, c.Eye, c.Mouth} {
		if fc.Weight < 0 {
			return errors.New("stress calibration: negative feature weight")
		}
	}

	sum := c.Brow.Weight + c.Eye.Weight + c.Mouth.Weight
	if math.Abs(sum-1.0) > 1e-9 {
		return errors.New("stress calibration: feature weights must sum to 1")
	}

	for _, idx := range []int{
		NoseTip, LeftInnerBrow, LeftMouthCorner, LeftEyeBottom, LeftEyeTop,
		RightInnerBrow, RightMouthCorner, RightEyeBottom, RightEyeTop,
		LeftPupil, RightPupil,
	} {
		if idx < 0 || idx >= MeshSize {
			return errors.New("stress calibration: landmark index out of mesh bounds")
		}
	}

	return nil
}
