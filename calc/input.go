package calc

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// MinAge is the youngest age the formulas are valid for.
const MinAge = 17

// quantityPatterns caches one compiled pattern per unit list.
var quantityPatterns sync.Map // map[string]*regexp.Regexp

func quantityPattern(units []string) *regexp.Regexp {
	key := strings.Join(units, "\x00")
	if re, ok := quantityPatterns.Load(key); ok {
		return re.(*regexp.Regexp)
	}
	quoted := make([]string, len(units))
	for i, u := range units {
		quoted[i] = regexp.QuoteMeta(u)
	}
	re := regexp.MustCompile(`(-?\d+\.?\d*)\s*(` + strings.Join(quoted, "|") + `)`)
	actual, _ := quantityPatterns.LoadOrStore(key, re)
	return actual.(*regexp.Regexp)
}

// ParseQuantity extracts the first "<number> <unit>" pair from free text such
// as "150 lbs" or "-1.0%". Only the given units are recognised.
func ParseQuantity(input string, units ...string) (float64, string, error) {
	m := quantityPattern(units).FindStringSubmatch(input)
	if m == nil {
		return 0, "", fmt.Errorf("%w: expected a number followed by one of %s", ErrInvalidInput, strings.Join(units, ", "))
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: parse %q: %w", ErrInvalidInput, m[1], err)
	}
	return value, m[2], nil
}

// ParseSex accepts "m" or "f" in any case.
func ParseSex(s string) (Sex, error) {
	switch sex := Sex(strings.ToLower(strings.TrimSpace(s))); sex {
	case Male, Female:
		return sex, nil
	default:
		return "", ErrUnknownSex
	}
}

// ParsePolicy accepts a menu number 1 through 5.
func ParsePolicy(s string) (Policy, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !Policy(n).Valid() {
		return 0, fmt.Errorf("%w: must be a number 1 through %d", ErrUnknownPolicy, len(Policies))
	}
	return Policy(n), nil
}

// Validate reports the first problem with the profile, if any.
func (p UserProfile) Validate() error {
	if p.Weight <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrInvalidInput)
	}
	if p.WeightUnit != Pounds && p.WeightUnit != Kilograms {
		return fmt.Errorf("%w %q for weight, want lbs or kg", ErrUnknownUnit, p.WeightUnit)
	}
	if (p.BodyFatPercentage == nil) == (p.Height == nil) {
		return fmt.Errorf("%w: exactly one of body fat percentage or height is required", ErrInvalidInput)
	}
	if p.BodyFatPercentage != nil && (*p.BodyFatPercentage <= 0 || *p.BodyFatPercentage >= 100) {
		return fmt.Errorf("%w: body fat percentage must be between 0 and 100", ErrInvalidInput)
	}
	if p.Height != nil {
		if *p.Height <= 0 {
			return fmt.Errorf("%w: height must be positive", ErrInvalidInput)
		}
		if p.HeightUnit != Inches && p.HeightUnit != Centimeters {
			return fmt.Errorf("%w %q for height, want inches or cm", ErrUnknownUnit, p.HeightUnit)
		}
	}
	if p.Sex != Male && p.Sex != Female {
		return ErrUnknownSex
	}
	if p.Age < MinAge {
		return fmt.Errorf("%w: the minimum age is %d years old", ErrInvalidInput, MinAge)
	}
	return nil
}

// Validate reports the first problem with the targets, if any.
func (t EnergyTargets) Validate() error {
	if t.TDEE < 0 {
		return fmt.Errorf("%w: tdee must not be negative", ErrInvalidInput)
	}
	switch t.WeeklyChangeUnit {
	case ChangePercent, ChangePounds, ChangeKilograms:
	default:
		return fmt.Errorf("%w %q for weekly change, want %%, lbs or kg", ErrUnknownUnit, t.WeeklyChangeUnit)
	}
	if !t.Policy.Valid() {
		return fmt.Errorf("%w %d", ErrUnknownPolicy, int(t.Policy))
	}
	return nil
}
