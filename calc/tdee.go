package calc

import (
	"fmt"
	"math"
)

type ActivityLevel string

// ActivityMultipliers maps activity levels to their TDEE multiplier. It is
// also the set of valid activity levels.
var ActivityMultipliers = map[ActivityLevel]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// BMR formulas used by EstimateTDEE.
const (
	KatchMcArdle  = "katch-mcardle"
	MifflinStJeor = "mifflin-st-jeor"
)

// TDEEEstimate is a rounded BMR and TDEE with the formula that produced them.
type TDEEEstimate struct {
	BMR    int    `json:"bmr"`
	TDEE   int    `json:"tdee"`
	Method string `json:"method"`
}

// EstimateTDEE estimates total daily energy expenditure for users who don't
// know it. With a known body fat percentage BMR comes from lean mass
// (Katch-McArdle); otherwise from weight, height, age and sex (Mifflin-St Jeor).
func (cfg Config) EstimateTDEE(p UserProfile, activity ActivityLevel) (TDEEEstimate, error) {
	if err := p.Validate(); err != nil {
		return TDEEEstimate{}, err
	}
	mult, ok := ActivityMultipliers[activity]
	if !ok {
		return TDEEEstimate{}, fmt.Errorf("%w: activity level must be one of: sedentary, light, moderate, active, very_active", ErrInvalidInput)
	}

	weightKg := cfg.WeightKg(p)
	var bmr float64
	var method string
	if p.BodyFatPercentage != nil {
		lbmKg := weightKg * (1 - *p.BodyFatPercentage/100)
		bmr = 370 + 21.6*lbmKg
		method = KatchMcArdle
	} else {
		heightCM := *p.Height
		if p.HeightUnit == Inches {
			heightCM = cfg.InchesToCM(heightCM)
		}
		bmr = 10*weightKg + 6.25*heightCM - 5*float64(p.Age)
		if p.Sex == Male {
			bmr += 5
		} else {
			bmr -= 161
		}
		method = MifflinStJeor
	}

	return TDEEEstimate{
		BMR:    int(math.Round(bmr)),
		TDEE:   int(math.Round(bmr * mult)),
		Method: method,
	}, nil
}
