// Interactive terminal program that asks for body stats and goals and prints
// a daily protein/fat/carb plan.
// Usage: go run ./cmd/macro-calc
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"lg/macro-calc/calc"
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		os.Exit(1)
	}
}

// run collects validated inputs from in, re-asking after every invalid
// answer, then writes the plan to out.
func run(in io.Reader, out io.Writer) error {
	cfg := calc.DefaultConfig()
	p := &prompter{in: bufio.NewReader(in), out: out, cfg: cfg}

	fmt.Fprintln(out, "Press Ctrl-C to quit...")

	tdee, estimate, err := p.tdee()
	if err != nil {
		return err
	}
	profile, err := p.profile()
	if err != nil {
		return err
	}
	if estimate {
		activity, err := p.activityLevel()
		if err != nil {
			return err
		}
		est, err := cfg.EstimateTDEE(profile, activity)
		if err != nil {
			return err
		}
		tdee = est.TDEE
		fmt.Fprintf(out, "Estimated TDEE: %d calories (BMR %d, %s)\n", est.TDEE, est.BMR, est.Method)
	}
	policy, err := p.policy()
	if err != nil {
		return err
	}
	change, unit, err := p.weeklyChange()
	if err != nil {
		return err
	}

	result, err := calc.Compute(cfg, profile, calc.EnergyTargets{
		TDEE:             tdee,
		WeeklyChange:     change,
		WeeklyChangeUnit: calc.ChangeUnit(unit),
		Policy:           policy,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	return calc.WriteReport(out, result)
}

type prompter struct {
	in  *bufio.Reader
	out io.Writer
	cfg calc.Config
}

// ask prints a question and returns the trimmed answer. io.EOF is returned
// once input runs out so the loops below terminate.
func (p *prompter) ask(question string) (string, error) {
	fmt.Fprintln(p.out)
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *prompter) fail(msg string) {
	fmt.Fprintln(p.out, "Error: "+msg)
}

// tdee returns the entered TDEE, or estimate=true when the answer is blank.
func (p *prompter) tdee() (tdee int, estimate bool, err error) {
	for {
		answer, err := p.ask("What is your Total Daily Energy Expenditure (blank to estimate)? ")
		if err != nil {
			return 0, false, err
		}
		if answer == "" {
			return 0, true, nil
		}
		n, convErr := strconv.Atoi(answer)
		if convErr != nil {
			p.fail("Please enter a number.")
			continue
		}
		if n < 0 {
			p.fail("Please enter a positive number.")
			continue
		}
		return n, false, nil
	}
}

func (p *prompter) profile() (calc.UserProfile, error) {
	var profile calc.UserProfile

	for {
		answer, err := p.ask("What is your weight (units: lbs or kg)? ")
		if err != nil {
			return profile, err
		}
		weight, unit, parseErr := calc.ParseQuantity(answer, string(calc.Pounds), string(calc.Kilograms))
		if parseErr != nil {
			p.fail("Please enter a number with lbs or kg as units.")
			continue
		}
		if weight <= 0 {
			p.fail("Please enter a positive number.")
			continue
		}
		profile.Weight, profile.WeightUnit = weight, calc.WeightUnit(unit)
		break
	}

	for {
		answer, err := p.ask("What is your sex (M/F)? ")
		if err != nil {
			return profile, err
		}
		sex, parseErr := calc.ParseSex(answer)
		if parseErr != nil {
			p.fail("Please enter either M or F.")
			continue
		}
		profile.Sex = sex
		break
	}

	known, err := p.yesNo("Do you know your Body Fat Percentage (Y/N)? ")
	if err != nil {
		return profile, err
	}
	if known {
		for {
			answer, err := p.ask("What is your body fat percentage? ")
			if err != nil {
				return profile, err
			}
			bfp, convErr := strconv.ParseFloat(answer, 64)
			if convErr != nil {
				p.fail("Please enter a number.")
				continue
			}
			if bfp <= 0 || bfp >= 100 {
				p.fail("Please enter a number between 0 and 100.")
				continue
			}
			profile.BodyFatPercentage = &bfp
			break
		}
	} else {
		for {
			answer, err := p.ask("What is your height (units: inches or cm)? ")
			if err != nil {
				return profile, err
			}
			height, unit, parseErr := calc.ParseQuantity(answer, string(calc.Inches), string(calc.Centimeters))
			if parseErr != nil {
				p.fail("Please enter a number with inches or cm as units.")
				continue
			}
			if height <= 0 {
				p.fail("Please enter a positive number.")
				continue
			}
			profile.Height, profile.HeightUnit = &height, calc.HeightUnit(unit)
			if p.cfg.CheckLeanBodyMass(profile) != nil {
				profile.Height = nil
				p.fail("That height does not fit your weight, please check both.")
				continue
			}
			break
		}
	}

	for {
		answer, err := p.ask("What is your age (years)? ")
		if err != nil {
			return profile, err
		}
		age, convErr := strconv.Atoi(answer)
		if convErr != nil {
			p.fail("Please enter a number.")
			continue
		}
		if age < calc.MinAge {
			p.fail(fmt.Sprintf("The minimum age is %d years old.", calc.MinAge))
			continue
		}
		profile.Age = age
		return profile, nil
	}
}

func (p *prompter) yesNo(question string) (bool, error) {
	for {
		answer, err := p.ask(question)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		p.fail("Please enter either Y or N.")
	}
}

func (p *prompter) activityLevel() (calc.ActivityLevel, error) {
	for {
		answer, err := p.ask("How active are you (sedentary, light, moderate, active, very_active)? ")
		if err != nil {
			return "", err
		}
		level := calc.ActivityLevel(strings.ToLower(answer))
		if _, ok := calc.ActivityMultipliers[level]; !ok {
			p.fail("Please enter one of: sedentary, light, moderate, active, very_active.")
			continue
		}
		return level, nil
	}
}

func (p *prompter) policy() (calc.Policy, error) {
	var menu strings.Builder
	menu.WriteString("How would you like to distribute remaining calories?\n")
	for _, policy := range calc.Policies {
		fmt.Fprintf(&menu, "(%d) %s\n", int(policy), policy)
	}
	menu.WriteString("> ")

	for {
		answer, err := p.ask(menu.String())
		if err != nil {
			return 0, err
		}
		policy, parseErr := calc.ParsePolicy(answer)
		if parseErr != nil {
			p.fail("Please enter a number 1 through 5.")
			continue
		}
		return policy, nil
	}
}

func (p *prompter) weeklyChange() (float64, string, error) {
	question := "What change per week (units: %, lbs, kg)?\n" +
		"Example:\n" +
		"-1.0% (Lose 1% per week)\n" +
		"0.25 lbs (Gain 0.25 lbs per week)\n" +
		"> "
	for {
		answer, err := p.ask(question)
		if err != nil {
			return 0, "", err
		}
		value, unit, parseErr := calc.ParseQuantity(answer,
			string(calc.ChangePercent), string(calc.ChangePounds), string(calc.ChangeKilograms))
		if parseErr != nil {
			p.fail("Please enter a number and units.")
			continue
		}
		return value, unit, nil
	}
}
