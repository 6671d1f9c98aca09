package session

import (
	"github.com/developerDD/banyabot/internal/split"
)

// Session is one channel's settlement-in-progress: the accumulating tally
// plus the conversation phase and the transient fields of the amount
// sub-phase. The whole struct round-trips through JSON as the persisted
// snapshot.
type Session struct {
	split.Tally

	Phase           Phase         `json:"phase"`
	PendingPayer    string        `json:"pending_payer,omitempty"`
	PendingCategory Category      `json:"pending_category,omitempty"`
	Report          *split.Report `json:"report,omitempty"`
}

func newSession() *Session {
	return &Session{
		Tally: split.Tally{
			Food:    make(map[string]int64),
			Alcohol: make(map[string]int64),
		},
		Phase: PhaseSelectParticipants,
	}
}

// clone deep-copies the session so a handler can mutate freely and commit
// only after a successful persist.
func (s *Session) clone() *Session {
	c := *s
	c.Participants = append([]string(nil), s.Participants...)
	c.Drinkers = append([]string(nil), s.Drinkers...)
	c.Food = make(map[string]int64, len(s.Food))
	for k, v := range s.Food {
		c.Food[k] = v
	}
	c.Alcohol = make(map[string]int64, len(s.Alcohol))
	for k, v := range s.Alcohol {
		c.Alcohol[k] = v
	}
	return &c
}

func (s *Session) isParticipant(name string) bool {
	for _, p := range s.Participants {
		if p == name {
			return true
		}
	}
	return false
}

func (s *Session) isDrinker(name string) bool {
	for _, d := range s.Drinkers {
		if d == name {
			return true
		}
	}
	return false
}

// addParticipant appends the name in selection order; adding a name twice
// leaves the list unchanged.
func (s *Session) addParticipant(name string) {
	if !s.isParticipant(name) {
		s.Participants = append(s.Participants, name)
	}
}

// addDrinker reports false when the name is not a current participant, so
// the drinkers-subset invariant can never be broken.
func (s *Session) addDrinker(name string) bool {
	if !s.isParticipant(name) {
		return false
	}
	if !s.isDrinker(name) {
		s.Drinkers = append(s.Drinkers, name)
	}
	return true
}

func (s *Session) addExpense(cat Category, name string, amount int64) {
	if cat == CategoryAlcohol {
		s.Alcohol[name] += amount
		return
	}
	s.Food[name] += amount
}
