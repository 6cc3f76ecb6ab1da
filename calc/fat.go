package calc

// EssentialFat is the daily fat floor and the fatty acid minimums inside it.
type EssentialFat struct {
	FloorGrams        float64
	Omega3Grams       float64
	LinoleicAcidGrams float64
}

// EssentialFat computes the minimum daily fat intake for the given lean body
// mass. Omega-3 is interpolated linearly over the population LBM range; the
// ratio is not clamped, so lean masses outside that range extrapolate.
// Linoleic acid follows the adequate-intake table for sex and age. The floor
// is LBM-proportional with a safety margin, raised to the fatty acid sum when
// that is larger.
func (cfg Config) EssentialFat(sex Sex, age int, lbmKg float64) EssentialFat {
	ratio := (lbmKg - cfg.LBMPopulationMinKg) / (cfg.LBMPopulationMaxKg - cfg.LBMPopulationMinKg)
	omega3 := cfg.Omega3MinG + ratio*(cfg.Omega3MaxG-cfg.Omega3MinG)

	ai := cfg.LinoleicAI[sex]
	linoleic := ai.Under
	if age >= cfg.LinoleicAgeThreshold {
		linoleic = ai.AtOrOver
	}

	floor := lbmKg * cfg.MinFatGPerKgLBM * (1 + cfg.FatSafetyFactor)
	if floor < omega3+linoleic {
		floor = omega3 + linoleic
	}

	return EssentialFat{
		FloorGrams:        floor,
		Omega3Grams:       omega3,
		LinoleicAcidGrams: linoleic,
	}
}
