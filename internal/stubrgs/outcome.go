package stubrgs

import "math/rand"

// OutcomeFunc picks the payout multiplier for one round in the given mode.
type OutcomeFunc func(mode string) float64

// paytable is a small weighted distribution, enough to exercise win, loss,
// and big-win paths in game frontends.
var paytable = []struct {
	weight     int
	multiplier float64
}{
	{55, 0},
	{25, 0.5},
	{12, 1.5},
	{6, 3},
	{2, 12.5},
}

// defaultOutcome draws from the paytable. Bonus-mode rounds pay double.
func defaultOutcome(mode string) float64 {
	total := 0
	for _, entry := range paytable {
		total += entry.weight
	}

	n := rand.Intn(total)
	for _, entry := range paytable {
		if n < entry.weight {
			if mode == "bonus" {
				return entry.multiplier * 2
			}
			return entry.multiplier
		}
		n -= entry.weight
	}
	return 0
}
