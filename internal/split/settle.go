package split

import (
	"errors"
	"fmt"
)

// Settle computes the per-head shares and every participant's net balance.
// Pure function: no I/O, the tally is not modified.
//
// Food and bath rent are split over all participants, alcohol only over the
// drinkers. A participant's balance is what they paid minus what they owe.
// When the tally names a bath payer, the bath rent counts as paid by them
// and the balances sum to zero; without one the bath rent has no payer side
// and the balances sum to -BathCost.
func Settle(t Tally) (*Report, error) {
	if len(t.Participants) == 0 {
		return nil, errors.New("settle: no participants")
	}
	if t.BathCost < 0 {
		return nil, fmt.Errorf("settle: negative bath cost %d", t.BathCost)
	}

	members := make(map[string]bool, len(t.Participants))
	for _, name := range t.Participants {
		members[name] = true
	}
	drinkers := make(map[string]bool, len(t.Drinkers))
	for _, name := range t.Drinkers {
		if !members[name] {
			return nil, fmt.Errorf("settle: drinker %q is not a participant", name)
		}
		drinkers[name] = true
	}
	if t.BathPayer != "" && !members[t.BathPayer] {
		return nil, fmt.Errorf("settle: bath payer %q is not a participant", t.BathPayer)
	}

	var totalFood, totalAlcohol int64
	for name, amount := range t.Food {
		if amount < 0 {
			return nil, fmt.Errorf("settle: negative food amount for %q", name)
		}
		totalFood += amount
	}
	for name, amount := range t.Alcohol {
		if amount < 0 {
			return nil, fmt.Errorf("settle: negative alcohol amount for %q", name)
		}
		totalAlcohol += amount
	}

	perHeadFood := float64(totalFood) / float64(len(t.Participants))
	perHeadBath := float64(t.BathCost) / float64(len(t.Participants))
	perHeadAlcohol := 0.0
	if len(drinkers) > 0 {
		perHeadAlcohol = float64(totalAlcohol) / float64(len(drinkers))
	}

	report := &Report{
		GrandTotal:     totalFood + totalAlcohol + t.BathCost,
		DrinkerCount:   len(drinkers),
		PerHeadFood:    perHeadFood,
		PerHeadBath:    perHeadBath,
		PerHeadAlcohol: perHeadAlcohol,
		Balances:       make([]Balance, 0, len(t.Participants)),
	}

	for _, name := range t.Participants {
		owed := perHeadFood + perHeadBath
		if drinkers[name] {
			owed += perHeadAlcohol
		}
		paid := float64(t.Food[name] + t.Alcohol[name])
		if t.BathPayer == name {
			paid += float64(t.BathCost)
		}
		report.Balances = append(report.Balances, Balance{
			Name:   name,
			Amount: paid - owed,
		})
	}

	return report, nil
}
