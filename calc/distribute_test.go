package calc

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDistribute(t *testing.T) {
	base := Grams{Protein: 100, Fat: 50.5}
	cases := []struct {
		policy Policy
		want   Grams
	}{
		{AllCarbs, Grams{Protein: 100, Fat: 50.5, Carb: 90}},
		{AllFat, Grams{Protein: 100, Fat: 90.5}},
		{CarbsAndFat, Grams{Protein: 100, Fat: 70.5, Carb: 45}},
		{FatAndProtein, Grams{Protein: 145, Fat: 70.5}},
		{CarbsFatAndProtein, Grams{Protein: 130, Fat: 63.5, Carb: 30}},
	}
	for _, tc := range cases {
		t.Run(tc.policy.String(), func(t *testing.T) {
			got, err := DefaultConfig().Distribute(tc.policy, base, 360)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Distribute mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestDistribute_ConservesCalories verifies the added grams account for the
// extra calories, less at most one gram per touched macro.
func TestDistribute_ConservesCalories(t *testing.T) {
	cfg := DefaultConfig()
	for _, policy := range Policies {
		for _, extra := range []float64{0, 1, 97.3, 390.4, 1234.5} {
			got, err := cfg.Distribute(policy, Grams{}, extra)
			if err != nil {
				t.Fatal(err)
			}
			added := got.Protein*cfg.CaloriesPerGProtein + got.Fat*cfg.CaloriesPerGFat + got.Carb*cfg.CaloriesPerGCarb
			slack := 0.0
			for _, m := range policyMacros[policy] {
				slack += []float64{cfg.CaloriesPerGProtein, cfg.CaloriesPerGFat, cfg.CaloriesPerGCarb}[m]
			}
			if added > extra || extra-added >= slack {
				t.Errorf("policy %v, extra %v: added %v kcal", policy, extra, added)
			}
		}
	}
}

func TestDistribute_UnknownPolicy(t *testing.T) {
	if _, err := DefaultConfig().Distribute(Policy(9), Grams{}, 100); !errors.Is(err, ErrUnknownPolicy) {
		t.Errorf("err = %v, want ErrUnknownPolicy", err)
	}
}

func TestPolicyString(t *testing.T) {
	if got := CarbsAndFat.String(); got != "Mix Carbs & Fat" {
		t.Errorf("String() = %q", got)
	}
	if got := Policy(7).String(); got != "Policy(7)" {
		t.Errorf("String() = %q", got)
	}
}
