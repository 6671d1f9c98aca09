package split

// Tally is the completed input of one settlement: who took part, who drank,
// what the bath rent was and who spent what on food and alcohol. Amounts are
// whole hryvnias.
type Tally struct {
	Participants []string         `json:"participants"`
	Drinkers     []string         `json:"drinkers"`
	BathCost     int64            `json:"bath_cost"`
	BathPayer    string           `json:"bath_payer,omitempty"`
	Food         map[string]int64 `json:"food"`
	Alcohol      map[string]int64 `json:"alcohol"`
}

// Balance is one participant's net position. Amount is signed and unrounded:
// positive means the participant overpaid and is owed money, negative means
// they still owe. Rounding happens only at render time.
type Balance struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Overpaid reports the direction of the balance from the unrounded value, so
// a participant who nets exactly zero is never shown as overpaid.
func (b Balance) Overpaid() bool {
	return b.Amount > 0
}

// Report is the result of settling a Tally.
type Report struct {
	GrandTotal     int64     `json:"grand_total"`
	DrinkerCount   int       `json:"drinker_count"`
	PerHeadFood    float64   `json:"per_head_food"`
	PerHeadBath    float64   `json:"per_head_bath"`
	PerHeadAlcohol float64   `json:"per_head_alcohol"`
	Balances       []Balance `json:"balances"`
}
