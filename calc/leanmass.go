package calc

import "fmt"

// LeanBodyMass estimates lean body mass in kg and returns it with the body fat
// percentage. A known body fat percentage is used directly; otherwise lean
// mass is taken from the ideal weight for the user's sex and height at the
// ideal body fat percentage, and body fat is derived from it.
//
// The profile must already be validated.
func (cfg Config) LeanBodyMass(p UserProfile) (lbmKg, bodyFatPercentage float64) {
	weightKg := cfg.WeightKg(p)
	if p.BodyFatPercentage != nil {
		bfp := *p.BodyFatPercentage
		return weightKg * (1 - bfp/100), bfp
	}

	heightDifference := cfg.HeightInches(p) - cfg.BaseHeightInches
	idealWeightLbs := cfg.BaseWeightLbs[p.Sex] + heightDifference*cfg.LbsPerInch
	lbmKg = cfg.PoundsToKg(idealWeightLbs * (1 - cfg.IdealBFP[p.Sex]/100))
	return lbmKg, (1 - lbmKg/weightKg) * 100
}

// CheckLeanBodyMass reports ErrLeanMassOutOfRange when the lean body mass
// estimate is not strictly between zero and the body weight: heights too
// short for the ideal-weight formula, or weights below the ideal lean mass
// for the height. Body fat is then guaranteed to be in (0, 100).
//
// It needs the weight, the sex and one of body fat or height.
func (cfg Config) CheckLeanBodyMass(p UserProfile) error {
	weightKg := cfg.WeightKg(p)
	lbmKg, _ := cfg.LeanBodyMass(p)
	switch {
	case lbmKg <= 0:
		return fmt.Errorf("%w: height too short to estimate lean body mass", ErrLeanMassOutOfRange)
	case lbmKg >= weightKg:
		return fmt.Errorf("%w: weight below ideal lean mass for height", ErrLeanMassOutOfRange)
	}
	return nil
}
