package calc

import (
	"errors"
	"testing"
)

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		input     string
		units     []string
		wantValue float64
		wantUnit  string
	}{
		{"150 lbs", []string{"lbs", "kg"}, 150, "lbs"},
		{"72.5kg", []string{"lbs", "kg"}, 72.5, "kg"},
		{"about 180 cm tall", []string{"inches", "cm"}, 180, "cm"},
		{"-1.0%", []string{"%", "lbs", "kg"}, -1, "%"},
		{"0.25 lbs", []string{"%", "lbs", "kg"}, 0.25, "lbs"},
		{"70 inches", []string{"inches", "cm"}, 70, "inches"},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			value, unit, err := ParseQuantity(tc.input, tc.units...)
			if err != nil {
				t.Fatalf("ParseQuantity: %v", err)
			}
			if value != tc.wantValue || unit != tc.wantUnit {
				t.Errorf("got (%v, %q), want (%v, %q)", value, unit, tc.wantValue, tc.wantUnit)
			}
		})
	}
}

func TestParseQuantity_Invalid(t *testing.T) {
	for _, input := range []string{"", "150", "lbs", "150 stone", "heavy"} {
		if _, _, err := ParseQuantity(input, "lbs", "kg"); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParseQuantity(%q) err = %v, want ErrInvalidInput", input, err)
		}
	}
}

func TestParseSex(t *testing.T) {
	for input, want := range map[string]Sex{"m": Male, "M": Male, " f ": Female, "F": Female} {
		got, err := ParseSex(input)
		if err != nil || got != want {
			t.Errorf("ParseSex(%q) = (%q, %v), want %q", input, got, err, want)
		}
	}
	if _, err := ParseSex("x"); !errors.Is(err, ErrUnknownSex) || !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ParseSex(x) err = %v, want ErrUnknownSex", err)
	}
}

func TestParsePolicy(t *testing.T) {
	got, err := ParsePolicy(" 3 ")
	if err != nil || got != CarbsAndFat {
		t.Errorf("ParsePolicy(3) = (%v, %v), want CarbsAndFat", got, err)
	}
	for _, input := range []string{"0", "6", "two", ""} {
		if _, err := ParsePolicy(input); !errors.Is(err, ErrUnknownPolicy) || !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParsePolicy(%q) err = %v, want ErrUnknownPolicy", input, err)
		}
	}
}

func TestUserProfileValidate_Valid(t *testing.T) {
	valid := []UserProfile{
		exampleProfile(),
		{Weight: 60, WeightUnit: Kilograms, Height: ref(165.0), HeightUnit: Centimeters, Sex: Female, Age: 17},
	}
	for _, p := range valid {
		if err := p.Validate(); err != nil {
			t.Errorf("Validate(%+v) = %v", p, err)
		}
	}
}

// TestParseQuantity_ReusesPattern verifies a unit list compiles once and a
// different list gets its own pattern.
func TestParseQuantity_ReusesPattern(t *testing.T) {
	first := quantityPattern([]string{"lbs", "kg"})
	if again := quantityPattern([]string{"lbs", "kg"}); again != first {
		t.Error("expected the cached pattern for the same unit list")
	}
	if other := quantityPattern([]string{"inches", "cm"}); other == first {
		t.Error("expected a separate pattern for a different unit list")
	}
	if _, _, err := ParseQuantity("180 kg", "inches", "cm"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("kg matched the height units: err = %v", err)
	}
}

func TestCheckLeanBodyMass(t *testing.T) {
	cfg := DefaultConfig()
	ok := UserProfile{Weight: 90, WeightUnit: Kilograms, Height: ref(70.0), HeightUnit: Inches, Sex: Male, Age: 30}
	if err := cfg.CheckLeanBodyMass(ok); err != nil {
		t.Errorf("CheckLeanBodyMass(90 kg, 70 in) = %v", err)
	}
	light := ok
	light.Weight = 50
	if err := cfg.CheckLeanBodyMass(light); !errors.Is(err, ErrLeanMassOutOfRange) {
		t.Errorf("CheckLeanBodyMass(50 kg, 70 in) = %v, want ErrLeanMassOutOfRange", err)
	}
	if err := cfg.CheckLeanBodyMass(exampleProfile()); err != nil {
		t.Errorf("CheckLeanBodyMass(known body fat) = %v", err)
	}
}
