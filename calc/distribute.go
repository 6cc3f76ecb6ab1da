package calc

import (
	"fmt"
	"math"
)

// Policy selects which macros receive the calories left after the protein and
// fat minimums.
type Policy int

const (
	AllCarbs Policy = iota + 1
	AllFat
	CarbsAndFat
	FatAndProtein
	CarbsFatAndProtein
)

// Policies lists every policy in menu order.
var Policies = []Policy{AllCarbs, AllFat, CarbsAndFat, FatAndProtein, CarbsFatAndProtein}

type macro int

const (
	protein macro = iota
	fat
	carb
)

// policyMacros maps a policy to the macros that split the extra calories evenly.
var policyMacros = map[Policy][]macro{
	AllCarbs:           {carb},
	AllFat:             {fat},
	CarbsAndFat:        {carb, fat},
	FatAndProtein:      {fat, protein},
	CarbsFatAndProtein: {carb, fat, protein},
}

var policyNames = map[Policy]string{
	AllCarbs:           "All Carbs",
	AllFat:             "All Fat",
	CarbsAndFat:        "Mix Carbs & Fat",
	FatAndProtein:      "Mix Fat & Protein",
	CarbsFatAndProtein: "Mix Carbs, Fat & Protein",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

func (p Policy) Valid() bool {
	_, ok := policyMacros[p]
	return ok
}

// Grams is a gram amount for each macro.
type Grams struct {
	Protein float64
	Fat     float64
	Carb    float64
}

// Distribute adds extraCalories to base according to policy. Each touched
// macro gets an equal share of the calories, converted to whole grams by
// truncation.
func (cfg Config) Distribute(policy Policy, base Grams, extraCalories float64) (Grams, error) {
	macros, ok := policyMacros[policy]
	if !ok {
		return Grams{}, fmt.Errorf("%w %d", ErrUnknownPolicy, int(policy))
	}

	out := base
	share := extraCalories / float64(len(macros))
	for _, m := range macros {
		switch m {
		case protein:
			out.Protein += math.Trunc(share / cfg.CaloriesPerGProtein)
		case fat:
			out.Fat += math.Trunc(share / cfg.CaloriesPerGFat)
		case carb:
			out.Carb += math.Trunc(share / cfg.CaloriesPerGCarb)
		}
	}
	return out, nil
}
