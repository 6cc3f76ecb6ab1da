package calc

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInput marks malformed, missing or out-of-range inputs.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInsufficientCalories is returned when the daily calorie target cannot
	// cover the protein and essential-fat minimums.
	ErrInsufficientCalories = errors.New("daily calories below protein and fat minimums")

	// The following all satisfy errors.Is(err, ErrInvalidInput).
	ErrUnknownUnit   = fmt.Errorf("%w: unknown unit", ErrInvalidInput)
	ErrUnknownSex    = fmt.Errorf("%w: sex must be m or f", ErrInvalidInput)
	ErrUnknownPolicy = fmt.Errorf("%w: unknown distribution policy", ErrInvalidInput)
	// ErrLeanMassOutOfRange is returned when the ideal-weight estimate of lean
	// body mass is not between zero and the body weight.
	ErrLeanMassOutOfRange = fmt.Errorf("%w: lean body mass estimate out of range", ErrInvalidInput)
)

type WeightUnit string

const (
	Pounds    WeightUnit = "lbs"
	Kilograms WeightUnit = "kg"
)

type HeightUnit string

const (
	Inches      HeightUnit = "inches"
	Centimeters HeightUnit = "cm"
)

// ChangeUnit is the unit of the weekly weight change target.
type ChangeUnit string

const (
	ChangePercent   ChangeUnit = "%"
	ChangePounds    ChangeUnit = "lbs"
	ChangeKilograms ChangeUnit = "kg"
)

type Sex string

const (
	Male   Sex = "m"
	Female Sex = "f"
)

// UserProfile is the body description the plan is computed from. Exactly one
// of BodyFatPercentage and Height is set.
type UserProfile struct {
	Weight            float64    `json:"weight"`
	WeightUnit        WeightUnit `json:"weight_unit"`
	Height            *float64   `json:"height,omitempty"`
	HeightUnit        HeightUnit `json:"height_unit,omitempty"`
	BodyFatPercentage *float64   `json:"body_fat_percentage,omitempty"`
	Sex               Sex        `json:"sex"`
	Age               int        `json:"age"`
}

// EnergyTargets describes the calorie budget and how surplus calories are spent.
type EnergyTargets struct {
	TDEE             int        `json:"tdee"`
	WeeklyChange     float64    `json:"weekly_change"`
	WeeklyChangeUnit ChangeUnit `json:"weekly_change_unit"`
	Policy           Policy     `json:"policy"`
}

// Amount is a quantity of one macronutrient. Calories are truncated to whole kcal.
type Amount struct {
	Grams    float64 `json:"grams"`
	Calories int     `json:"calories"`
}

type FatBreakdown struct {
	Total        Amount `json:"total"`
	Omega3       Amount `json:"omega3"`
	LinoleicAcid Amount `json:"linoleic_acid"`
}

// Mass is a weight expressed in the unit the user entered.
type Mass struct {
	Value float64    `json:"value"`
	Unit  WeightUnit `json:"unit"`
}

// Percentages is the share of TotalCalories provided by each macro.
type Percentages struct {
	Protein float64 `json:"protein"`
	Fat     float64 `json:"fat"`
	Carb    float64 `json:"carb"`
}

// MacroResult is the computed plan.
type MacroResult struct {
	Protein           Amount       `json:"protein"`
	Fat               FatBreakdown `json:"fat"`
	Carb              Amount       `json:"carb"`
	LeanBodyMass      Mass         `json:"lean_body_mass"`
	BodyFatPercentage float64      `json:"body_fat_percentage"`

	// WeeklyChangeKg is the clamped weekly weight change actually planned for.
	WeeklyChangeKg float64     `json:"weekly_change_kg"`
	// DailyCalories is TDEE adjusted for the weekly change, before distribution.
	DailyCalories  float64     `json:"daily_calories"`
	TotalCalories  int         `json:"total_calories"`
	Percentages    Percentages `json:"percentages"`
}

// Compute runs the full pipeline: unit normalisation, lean body mass, essential
// fat, calorie change and macro distribution. It is deterministic and has no
// side effects.
func Compute(cfg Config, p UserProfile, t EnergyTargets) (MacroResult, error) {
	if err := p.Validate(); err != nil {
		return MacroResult{}, err
	}
	if err := t.Validate(); err != nil {
		return MacroResult{}, err
	}

	if err := cfg.CheckLeanBodyMass(p); err != nil {
		return MacroResult{}, err
	}

	weightKg := cfg.WeightKg(p)
	lbmKg, bfp := cfg.LeanBodyMass(p)

	proteinGrams := math.Trunc(lbmKg * cfg.ProteinGPerKgLBM)
	fat := cfg.EssentialFat(p.Sex, p.Age, lbmKg)

	changeKg := cfg.WeeklyChangeKg(t.WeeklyChange, t.WeeklyChangeUnit, weightKg)
	dailyCalories := float64(t.TDEE) + cfg.DailyCalorieChange(changeKg)
	extra := dailyCalories - proteinGrams*cfg.CaloriesPerGProtein - fat.FloorGrams*cfg.CaloriesPerGFat
	if extra < 0 {
		return MacroResult{}, fmt.Errorf("%w: %.0f kcal/day short", ErrInsufficientCalories, -extra)
	}

	grams, err := cfg.Distribute(t.Policy, Grams{Protein: proteinGrams, Fat: fat.FloorGrams}, extra)
	if err != nil {
		return MacroResult{}, err
	}

	lbm := Mass{Value: lbmKg, Unit: Kilograms}
	if p.WeightUnit == Pounds {
		lbm = Mass{Value: cfg.KgToPounds(lbmKg), Unit: Pounds}
	}

	res := MacroResult{
		Protein: amount(grams.Protein, cfg.CaloriesPerGProtein),
		Fat: FatBreakdown{
			Total:        amount(grams.Fat, cfg.CaloriesPerGFat),
			Omega3:       amount(fat.Omega3Grams, cfg.CaloriesPerGFat),
			LinoleicAcid: amount(fat.LinoleicAcidGrams, cfg.CaloriesPerGFat),
		},
		Carb:              amount(grams.Carb, cfg.CaloriesPerGCarb),
		LeanBodyMass:      lbm,
		BodyFatPercentage: bfp,
		WeeklyChangeKg:    changeKg,
		DailyCalories:     dailyCalories,
	}
	res.TotalCalories = res.Protein.Calories + res.Fat.Total.Calories + res.Carb.Calories
	if res.TotalCalories > 0 {
		total := float64(res.TotalCalories)
		res.Percentages = Percentages{
			Protein: float64(res.Protein.Calories) / total * 100,
			Fat:     float64(res.Fat.Total.Calories) / total * 100,
			Carb:    float64(res.Carb.Calories) / total * 100,
		}
	}
	return res, nil
}

func amount(grams, caloriesPerGram float64) Amount {
	return Amount{Grams: grams, Calories: int(grams * caloriesPerGram)}
}
