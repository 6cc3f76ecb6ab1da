// Package calc turns a body profile and an energy target into daily protein,
// fat and carbohydrate targets.
package calc

// LinoleicAI holds the adequate intake of linoleic acid (g/day) below and at
// or above the age threshold.
type LinoleicAI struct {
	Under    float64
	AtOrOver float64
}

// Config holds every tunable constant used by the pipeline. It is passed by
// value so a Config can never be mutated behind the caller's back.
type Config struct {
	// Unit conversion. LbsPerKg and KgPerLb are not exact reciprocals.
	LbsPerKg    float64 // pounds / LbsPerKg = kg
	KgPerLb     float64 // kg / KgPerLb = pounds
	InchesPerCM float64
	CMPerInch   float64

	// Ideal-weight heuristic (Hamwi-style): base weight at BaseHeightInches,
	// plus LbsPerInch for every inch above it.
	BaseHeightInches float64
	BaseWeightLbs    map[Sex]float64
	LbsPerInch       float64
	IdealBFP         map[Sex]float64

	CaloriesPerGProtein float64
	CaloriesPerGFat     float64
	CaloriesPerGCarb    float64
	CaloriesPerKgFat    float64

	// Weekly weight change bounds in kg (≈ -2 lbs / +1 lb).
	MaxLossKgPerWeek float64
	MaxGainKgPerWeek float64

	ProteinGPerKgLBM float64
	MinFatGPerKgLBM  float64
	FatSafetyFactor  float64

	Omega3MinG float64
	Omega3MaxG float64
	// LBM range (kg) over which omega-3 is interpolated; roughly 100-200 lbs.
	LBMPopulationMinKg float64
	LBMPopulationMaxKg float64

	LinoleicAgeThreshold int
	LinoleicAI           map[Sex]LinoleicAI
}

// DefaultConfig returns the constants the calculator ships with.
func DefaultConfig() Config {
	return Config{
		LbsPerKg:    2.205,
		KgPerLb:     0.4536,
		InchesPerCM: 0.393701,
		CMPerInch:   2.54,

		BaseHeightInches: 60,
		BaseWeightLbs:    map[Sex]float64{Male: 110, Female: 100},
		LbsPerInch:       5,
		IdealBFP:         map[Sex]float64{Male: 12.5, Female: 22.5},

		CaloriesPerGProtein: 4,
		CaloriesPerGFat:     9,
		CaloriesPerGCarb:    4,
		CaloriesPerKgFat:    7700,

		MaxLossKgPerWeek: -0.907185,
		MaxGainKgPerWeek: 0.453592,

		ProteinGPerKgLBM: 2.2,
		MinFatGPerKgLBM:  0.75,
		FatSafetyFactor:  0.2,

		Omega3MinG:         1.75,
		Omega3MaxG:         2.5,
		LBMPopulationMinKg: 45,
		LBMPopulationMaxKg: 91,

		LinoleicAgeThreshold: 50,
		LinoleicAI: map[Sex]LinoleicAI{
			Male:   {Under: 17, AtOrOver: 14},
			Female: {Under: 12, AtOrOver: 11},
		},
	}
}
