package calc

// PoundsToKg converts pounds to kilograms.
func (cfg Config) PoundsToKg(lbs float64) float64 {
	return lbs / cfg.LbsPerKg
}

// KgToPounds converts kilograms to pounds.
func (cfg Config) KgToPounds(kg float64) float64 {
	return kg / cfg.KgPerLb
}

// CMToInches converts centimeters to inches.
func (cfg Config) CMToInches(cm float64) float64 {
	return cm * cfg.InchesPerCM
}

// InchesToCM converts inches to centimeters.
func (cfg Config) InchesToCM(inches float64) float64 {
	return inches * cfg.CMPerInch
}

// WeightKg returns the profile's weight in kilograms.
func (cfg Config) WeightKg(p UserProfile) float64 {
	if p.WeightUnit == Pounds {
		return cfg.PoundsToKg(p.Weight)
	}
	return p.Weight
}

// HeightInches returns the profile's height in inches. Only meaningful when
// the profile carries a height.
func (cfg Config) HeightInches(p UserProfile) float64 {
	if p.HeightUnit == Centimeters {
		return cfg.CMToInches(*p.Height)
	}
	return *p.Height
}
