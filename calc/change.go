package calc

// WeeklyChangeKg converts the weekly change target into kg/week and clamps it
// to the safe loss/gain bounds. Percentages are relative to the current
// weight. lbs and kg values are both used as kg without conversion.
func (cfg Config) WeeklyChangeKg(value float64, unit ChangeUnit, weightKg float64) float64 {
	changeKg := value
	if unit == ChangePercent {
		changeKg = weightKg * (value / 100)
	}

	if changeKg < cfg.MaxLossKgPerWeek {
		return cfg.MaxLossKgPerWeek
	}
	if changeKg > cfg.MaxGainKgPerWeek {
		return cfg.MaxGainKgPerWeek
	}
	return changeKg
}

// DailyCalorieChange spreads the energy of a weekly body-fat change over 7 days.
func (cfg Config) DailyCalorieChange(weightChangeKg float64) float64 {
	return weightChangeKg * cfg.CaloriesPerKgFat / 7
}
