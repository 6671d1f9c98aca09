package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/developerDD/banyabot/internal/split"
)

// InputMode selects how itemized expenses are collected: by picking payers
// from rendered menus or by typed "Ім'я Сума" lines with Так/Ні confirms.
type InputMode int

const (
	ModeMenu InputMode = iota
	ModeText
)

// ParseInputMode maps a config value to an InputMode. Empty means menu.
func ParseInputMode(s string) (InputMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "menu":
		return ModeMenu, nil
	case "text":
		return ModeText, nil
	}
	return ModeMenu, fmt.Errorf("unknown input mode %q", s)
}

// Options configures the manager's conversation policies.
type Options struct {
	Mode InputMode
	// TrackBathPayer enables the extra phase that asks who paid the bath
	// rent, which makes the rent part of that participant's payments.
	TrackBathPayer bool
}

// Manager owns every channel's session and the shared roster. Events for
// the same channel are serialized on a per-channel lock; different channels
// progress independently. Each handler mutates a clone and commits it only
// after the snapshot persisted, so a failed store never corrupts state.
type Manager struct {
	store          Store
	mode           InputMode
	trackBathPayer bool

	mu       sync.Mutex
	sessions map[string]*entry
	roster   []string
}

type entry struct {
	mu   sync.Mutex
	sess *Session
}

func NewManager(store Store, opts Options) *Manager {
	return &Manager{
		store:          store,
		mode:           opts.Mode,
		trackBathPayer: opts.TrackBathPayer,
		sessions:       make(map[string]*entry),
	}
}

// LoadRoster restores the persisted roster. Call once at startup; a missing
// blob just means an empty roster.
func (m *Manager) LoadRoster(ctx context.Context) error {
	blob, ok, err := m.store.Load(ctx, rosterKey)
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}
	if !ok {
		return nil
	}
	var names []string
	if err := json.Unmarshal(blob, &names); err != nil {
		return fmt.Errorf("decode roster: %w", err)
	}
	m.mu.Lock()
	m.roster = names
	m.mu.Unlock()
	return nil
}

// Roster returns a copy of the known participant names, in entry order.
func (m *Manager) Roster() []string {
	return m.rosterNames()
}

func (m *Manager) rosterNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.roster...)
}

// appendRoster persists the roster with the new name before exposing it.
// The roster is append-only; known names are a no-op.
func (m *Manager) appendRoster(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range m.roster {
		if n == name {
			return nil
		}
	}
	next := append(append([]string(nil), m.roster...), name)
	blob, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	if err := m.store.Save(ctx, rosterKey, blob); err != nil {
		return fmt.Errorf("persist roster: %w", err)
	}
	m.roster = next
	return nil
}

// Start discards whatever the channel was doing and begins a fresh
// settlement at participant selection.
func (m *Manager) Start(ctx context.Context, channelID string) ([]Reply, error) {
	return m.withSession(ctx, channelID, func(s *Session) ([]Reply, bool, error) {
		*s = *newSession()
		return []Reply{m.participantsPrompt()}, true, nil
	})
}

// Snapshot returns a copy of the channel's session for read-only use.
// ok is false when the channel has never had a settlement.
func (m *Manager) Snapshot(ctx context.Context, channelID string) (*Session, bool, error) {
	e, err := m.entryFor(ctx, channelID)
	if err != nil {
		return nil, false, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.sess.started() {
		return nil, false, nil
	}
	return e.sess.clone(), true, nil
}

// HandleSelect processes one selection event (a menu pick or a button).
func (m *Manager) HandleSelect(ctx context.Context, channelID, id string) ([]Reply, error) {
	return m.withSession(ctx, channelID, func(s *Session) ([]Reply, bool, error) {
		return m.handleSelect(s, id)
	})
}

func (m *Manager) handleSelect(s *Session, id string) ([]Reply, bool, error) {
	switch s.Phase {
	case PhaseSelectParticipants:
		switch {
		case strings.HasPrefix(id, selPickPrefix):
			name := strings.TrimPrefix(id, selPickPrefix)
			s.addParticipant(name)
			return text(fmt.Sprintf(msgPickedFmt, name)), true, nil
		case id == selAddName:
			s.Phase = PhaseEnterName
			return text(msgEnterName), true, nil
		case id == selConfirmPeople:
			if len(s.Participants) == 0 {
				return text(msgNeedPeople), false, nil
			}
			s.Phase = PhaseSelectDrinkers
			return []Reply{drinkersPrompt(s)}, true, nil
		}

	case PhaseSelectDrinkers:
		switch {
		case strings.HasPrefix(id, selDrinkerPrefix):
			name := strings.TrimPrefix(id, selDrinkerPrefix)
			if !s.addDrinker(name) {
				return text(fmt.Sprintf(msgNotMemberFmt, name)), false, nil
			}
			return text(fmt.Sprintf(msgDrinkerFmt, name)), true, nil
		case id == selDrinkersDone:
			s.Phase = PhaseEnterBathCost
			return text(msgBathCost), true, nil
		}

	case PhaseSelectBathPayer:
		if strings.HasPrefix(id, selBathPayerPrefix) {
			name := strings.TrimPrefix(id, selBathPayerPrefix)
			if !s.isParticipant(name) {
				return text(fmt.Sprintf(msgNotMemberFmt, name)), false, nil
			}
			s.BathPayer = name
			s.Phase = PhaseEnterFood
			return []Reply{expensePrompt(s, CategoryFood, m.mode, false)}, true, nil
		}

	case PhaseEnterFood, PhaseEnterAlcohol:
		if m.mode != ModeMenu {
			break
		}
		cat := CategoryFood
		if s.Phase == PhaseEnterAlcohol {
			cat = CategoryAlcohol
		}
		switch {
		case strings.HasPrefix(id, selPayerPrefix):
			name := strings.TrimPrefix(id, selPayerPrefix)
			if !s.isParticipant(name) {
				return text(fmt.Sprintf(msgNotMemberFmt, name)), false, nil
			}
			if cat == CategoryAlcohol && !s.isDrinker(name) {
				return text(fmt.Sprintf(msgNotDrinkerFmt, name)), false, nil
			}
			s.PendingPayer = name
			s.PendingCategory = cat
			s.Phase = PhaseAwaitAmount
			return text(fmt.Sprintf(msgHowMuchFmt, name)), true, nil
		case id == selExpenseDone:
			if cat == CategoryFood {
				return m.advanceToAlcohol(s)
			}
			return m.finalize(s)
		}
	}

	return text(msgNotNow), false, nil
}

// HandleText processes one free-text utterance from the channel. Text that
// no phase is waiting for is ignored so ordinary chatter stays unanswered.
func (m *Manager) HandleText(ctx context.Context, channelID, raw string) ([]Reply, error) {
	return m.withSession(ctx, channelID, func(s *Session) ([]Reply, bool, error) {
		return m.handleText(ctx, s, strings.TrimSpace(raw))
	})
}

func (m *Manager) handleText(ctx context.Context, s *Session, txt string) ([]Reply, bool, error) {
	switch s.Phase {
	case PhaseEnterName:
		name := NormalizeName(txt)
		if name == "" {
			return text(msgEmptyName), false, nil
		}
		if err := m.appendRoster(ctx, name); err != nil {
			return nil, false, err
		}
		s.addParticipant(name)
		s.Phase = PhaseSelectParticipants
		return []Reply{{Text: fmt.Sprintf(msgPickedFmt, name)}, m.participantsPrompt()}, true, nil

	case PhaseEnterBathCost:
		amount, err := ParseAmount(txt)
		if err != nil {
			return text(msgBadAmount), false, nil
		}
		s.BathCost = amount
		if m.trackBathPayer {
			s.Phase = PhaseSelectBathPayer
			return []Reply{bathPayerPrompt(s, m.mode)}, true, nil
		}
		s.Phase = PhaseEnterFood
		return []Reply{expensePrompt(s, CategoryFood, m.mode, false)}, true, nil

	case PhaseSelectBathPayer:
		if m.mode == ModeMenu {
			return text(msgUseMenu), false, nil
		}
		name := NormalizeName(txt)
		if !s.isParticipant(name) {
			return text(fmt.Sprintf(msgNotMemberFmt, name)), false, nil
		}
		s.BathPayer = name
		s.Phase = PhaseEnterFood
		return []Reply{expensePrompt(s, CategoryFood, m.mode, false)}, true, nil

	case PhaseEnterFood, PhaseEnterAlcohol:
		if m.mode == ModeMenu {
			return text(msgUseMenu), false, nil
		}
		cat := CategoryFood
		if s.Phase == PhaseEnterAlcohol {
			cat = CategoryAlcohol
		}
		name, amount, err := parseExpenseLine(txt)
		if err == errBadFormat {
			return text(msgBadPair), false, nil
		}
		if err != nil {
			return text(msgBadAmount), false, nil
		}
		if !s.isParticipant(name) {
			return text(fmt.Sprintf(msgNotMemberFmt, name)), false, nil
		}
		if cat == CategoryAlcohol && !s.isDrinker(name) {
			return text(fmt.Sprintf(msgNotDrinkerFmt, name)), false, nil
		}
		s.addExpense(cat, name, amount)
		if cat == CategoryAlcohol {
			s.Phase = PhaseConfirmAlcohol
			return text(fmt.Sprintf(msgAddedAlcoholFmt, name, amount)), true, nil
		}
		s.Phase = PhaseConfirmFood
		return text(fmt.Sprintf(msgAddedFoodFmt, name, amount)), true, nil

	case PhaseConfirmFood:
		switch {
		case isYes(txt):
			s.Phase = PhaseEnterFood
			return []Reply{expensePrompt(s, CategoryFood, m.mode, true)}, true, nil
		case isNo(txt):
			return m.advanceToAlcohol(s)
		}
		return text(msgYesNo), false, nil

	case PhaseConfirmAlcohol:
		switch {
		case isYes(txt):
			s.Phase = PhaseEnterAlcohol
			return []Reply{expensePrompt(s, CategoryAlcohol, m.mode, true)}, true, nil
		case isNo(txt):
			return m.finalize(s)
		}
		return text(msgYesNo), false, nil

	case PhaseAwaitAmount:
		amount, err := ParseAmount(txt)
		if err != nil {
			return text(msgBadAmount), false, nil
		}
		payer, cat := s.PendingPayer, s.PendingCategory
		s.addExpense(cat, payer, amount)
		s.PendingPayer = ""
		if cat == CategoryAlcohol {
			s.Phase = PhaseEnterAlcohol
		} else {
			s.Phase = PhaseEnterFood
		}
		return []Reply{
			{Text: fmt.Sprintf(msgAddedMenuFmt, payer, amount)},
			expensePrompt(s, cat, m.mode, true),
		}, true, nil
	}

	// Idle and the selection phases do not expect free text.
	return nil, false, nil
}

// advanceToAlcohol moves on from the food phase. With nobody in the
// drinkers group there is no valid alcohol payer, so the alcohol phase is
// skipped and the settlement runs immediately.
func (m *Manager) advanceToAlcohol(s *Session) ([]Reply, bool, error) {
	if len(s.Drinkers) == 0 {
		return m.finalize(s)
	}
	s.Phase = PhaseEnterAlcohol
	return []Reply{expensePrompt(s, CategoryAlcohol, m.mode, false)}, true, nil
}

func (m *Manager) finalize(s *Session) ([]Reply, bool, error) {
	report, err := split.Settle(s.Tally)
	if err != nil {
		return nil, false, fmt.Errorf("finalize settlement: %w", err)
	}
	s.Report = report
	s.Phase = PhaseIdle
	s.PendingPayer = ""
	return []Reply{{Text: msgDone}, {Text: report.Summary()}}, true, nil
}

// withSession serializes the event on the channel's lock, runs the handler
// on a clone and commits the clone only after a successful persist. A store
// failure therefore leaves the session exactly as it was before the event.
func (m *Manager) withSession(ctx context.Context, channelID string, fn func(*Session) ([]Reply, bool, error)) ([]Reply, error) {
	e, err := m.entryFor(ctx, channelID)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	work := e.sess.clone()
	replies, dirty, err := fn(work)
	if err != nil {
		return nil, err
	}
	if dirty {
		blob, err := json.Marshal(work)
		if err != nil {
			return nil, fmt.Errorf("encode session: %w", err)
		}
		if err := m.store.Save(ctx, sessionKey(channelID), blob); err != nil {
			return nil, fmt.Errorf("persist session: %w", err)
		}
		e.sess = work
	}
	return replies, nil
}

func (m *Manager) entryFor(ctx context.Context, channelID string) (*entry, error) {
	m.mu.Lock()
	if e, ok := m.sessions[channelID]; ok {
		m.mu.Unlock()
		return e, nil
	}
	m.mu.Unlock()

	// First event for this channel since startup: restore the snapshot so a
	// restart resumes mid-flow.
	sess := &Session{}
	blob, ok, err := m.store.Load(ctx, sessionKey(channelID))
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if ok {
		if err := json.Unmarshal(blob, sess); err != nil {
			return nil, fmt.Errorf("decode session: %w", err)
		}
	}
	if sess.Food == nil {
		sess.Food = make(map[string]int64)
	}
	if sess.Alcohol == nil {
		sess.Alcohol = make(map[string]int64)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.sessions[channelID]; ok {
		return e, nil
	}
	e := &entry{sess: sess}
	m.sessions[channelID] = e
	return e, nil
}

func (s *Session) started() bool {
	return s.Phase != PhaseIdle || len(s.Participants) > 0 || s.Report != nil
}
