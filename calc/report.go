package calc

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WriteReport prints r in the terminal layout: grams and calories per macro,
// the total with thousands separators and the percentage split.
func WriteReport(w io.Writer, r MacroResult) error {
	p := message.NewPrinter(language.English)
	lines := []string{
		fmt.Sprintf("Protein: %.0fg (%d calories)", r.Protein.Grams, r.Protein.Calories),
		fmt.Sprintf("Fat: %.0fg (%d calories)", r.Fat.Total.Grams, r.Fat.Total.Calories),
		fmt.Sprintf("    Omega 3: %.2fg (%d calories)", r.Fat.Omega3.Grams, r.Fat.Omega3.Calories),
		fmt.Sprintf("    Linoleic Acid: %gg (%d calories)", r.Fat.LinoleicAcid.Grams, r.Fat.LinoleicAcid.Calories),
		fmt.Sprintf("Carbs: %.0fg (%d calories)", r.Carb.Grams, r.Carb.Calories),
		p.Sprintf("Total Calories: %d kcal", r.TotalCalories),
		fmt.Sprintf("Percentage Protein: %.2f%%", r.Percentages.Protein),
		fmt.Sprintf("Percentage Fat: %.2f%%", r.Percentages.Fat),
		fmt.Sprintf("Percentage Carbs: %.2f%%", r.Percentages.Carb),
		fmt.Sprintf("Lean Body Mass: %.0f %s", r.LeanBodyMass.Value, r.LeanBodyMass.Unit),
		fmt.Sprintf("Body Fat Percentage: %.2f%%", r.BodyFatPercentage),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}
