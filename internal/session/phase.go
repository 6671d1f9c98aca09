package session

// Phase is the state of the data-collection conversation. The zero value is
// PhaseIdle: no settlement in progress.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSelectParticipants
	PhaseEnterName
	PhaseSelectDrinkers
	PhaseEnterBathCost
	PhaseSelectBathPayer
	PhaseEnterFood
	PhaseConfirmFood
	PhaseEnterAlcohol
	PhaseConfirmAlcohol
	// PhaseAwaitAmount is the menu-mode sub-phase: a payer has been picked
	// and the next message is their amount. The payer and category live in
	// the session's pending fields, not in the phase value itself.
	PhaseAwaitAmount
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSelectParticipants:
		return "select_participants"
	case PhaseEnterName:
		return "enter_name"
	case PhaseSelectDrinkers:
		return "select_drinkers"
	case PhaseEnterBathCost:
		return "enter_bath_cost"
	case PhaseSelectBathPayer:
		return "select_bath_payer"
	case PhaseEnterFood:
		return "enter_food"
	case PhaseConfirmFood:
		return "confirm_food"
	case PhaseEnterAlcohol:
		return "enter_alcohol"
	case PhaseConfirmAlcohol:
		return "confirm_alcohol"
	case PhaseAwaitAmount:
		return "await_amount"
	default:
		return "unknown"
	}
}

// Category names one of the two itemized expense mappings.
type Category int

const (
	CategoryFood Category = iota
	CategoryAlcohol
)

func (c Category) String() string {
	if c == CategoryAlcohol {
		return "alcohol"
	}
	return "food"
}
