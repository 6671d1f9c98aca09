package session

// Option is one selectable item of a prompt: an opaque id the transport
// echoes back through HandleSelect, and the label shown to the operator.
type Option struct {
	ID    string
	Label string
}

// Reply is one outbound prompt. Menu options render as a select list,
// Buttons as standalone actions; either may be empty.
type Reply struct {
	Text    string
	Menu    []Option
	Buttons []Option
}

// Selection ids understood by HandleSelect. Ids carrying a payload use a
// "<prefix><name>" shape, mirroring how the payload phases carry theirs.
const (
	selPickPrefix      = "pick:"
	selAddName         = "add_name"
	selConfirmPeople   = "confirm_participants"
	selDrinkerPrefix   = "drinker:"
	selDrinkersDone    = "drinkers_done"
	selBathPayerPrefix = "bath_payer:"
	selPayerPrefix     = "payer:"
	selExpenseDone     = "expense_done"
)

const (
	msgGreeting        = "Привіт! Давай розрахуємо витрати. Оберіть учасників зі списку або додайте нових."
	msgEnterName       = "Введіть ім'я нового учасника:"
	msgEmptyName       = "❌ Введіть ім'я."
	msgNeedPeople      = "❌ Спочатку оберіть хоча б одного учасника."
	msgPickDrinkers    = "Хто вживав алкоголь? Оберіть зі списку."
	msgBathCost        = "Скільки коштувала баня?"
	msgBathPayer       = "Хто платив за баню?"
	msgBadAmount       = "❌ Введіть правильну суму."
	msgBadPair         = "❌ Неправильний формат. Використовуйте: Ім'я Сума"
	msgFoodText        = "Введіть витрати на їжу у форматі: Ім'я Сума"
	msgFoodTextNext    = "Введіть наступну витрату на їжу у форматі: Ім'я Сума"
	msgAlcoholText     = "Тепер введіть витрати на алкоголь у форматі: Ім'я Сума"
	msgAlcoholTextNext = "Введіть наступну витрату на алкоголь у форматі: Ім'я Сума"
	msgFoodMenu        = "Хто платив за їжу? Оберіть учасника."
	msgAlcoholMenu     = "Хто платив за алкоголь? Оберіть учасника."
	msgYesNo           = "❌ Будь ласка, введіть 'Так' або 'Ні'."
	msgUseMenu         = "❌ Оберіть учасника зі списку."
	msgNotNow          = "❌ Ця дія зараз недоступна."
	msgDone            = "✅ Всі витрати записано! Обробляю дані..."

	msgPickedFmt       = "✅ Додано: %s"
	msgDrinkerFmt      = "🍷 %s вживав алкоголь."
	msgNotMemberFmt    = "❌ %s не є учасником."
	msgNotDrinkerFmt   = "❌ %s не вживав алкоголь."
	msgHowMuchFmt      = "Скільки витратив %s?"
	msgAddedMenuFmt    = "✅ Додано: %s — %d грн"
	msgAddedFoodFmt    = "✅ Додано: %s витратив %d грн на їжу. Більше витрат? (Так/Ні)"
	msgAddedAlcoholFmt = "✅ Додано: %s витратив %d грн на алкоголь. Більше витрат? (Так/Ні)"
)

func text(msg string) []Reply {
	return []Reply{{Text: msg}}
}

// nameOptions builds at most 25 options, the select-menu ceiling of every
// chat transport we render into.
func nameOptions(prefix string, names []string) []Option {
	const maxOptions = 25
	opts := make([]Option, 0, len(names))
	for _, name := range names {
		if len(opts) == maxOptions {
			break
		}
		opts = append(opts, Option{ID: prefix + name, Label: name})
	}
	return opts
}

func (m *Manager) participantsPrompt() Reply {
	return Reply{
		Text: msgGreeting,
		Menu: nameOptions(selPickPrefix, m.rosterNames()),
		Buttons: []Option{
			{ID: selAddName, Label: "➕ Додати ім'я"},
			{ID: selConfirmPeople, Label: "✅ Підтвердити"},
		},
	}
}

func drinkersPrompt(s *Session) Reply {
	return Reply{
		Text:    msgPickDrinkers,
		Menu:    nameOptions(selDrinkerPrefix, s.Participants),
		Buttons: []Option{{ID: selDrinkersDone, Label: "✅ Готово"}},
	}
}

func bathPayerPrompt(s *Session, mode InputMode) Reply {
	r := Reply{Text: msgBathPayer}
	if mode == ModeMenu {
		r.Menu = nameOptions(selBathPayerPrefix, s.Participants)
	}
	return r
}

func expensePrompt(s *Session, cat Category, mode InputMode, repeat bool) Reply {
	if mode == ModeText {
		switch {
		case cat == CategoryAlcohol && repeat:
			return Reply{Text: msgAlcoholTextNext}
		case cat == CategoryAlcohol:
			return Reply{Text: msgAlcoholText}
		case repeat:
			return Reply{Text: msgFoodTextNext}
		default:
			return Reply{Text: msgFoodText}
		}
	}

	msg := msgFoodMenu
	payers := s.Participants
	if cat == CategoryAlcohol {
		msg = msgAlcoholMenu
		payers = s.Drinkers
	}
	return Reply{
		Text:    msg,
		Menu:    nameOptions(selPayerPrefix, payers),
		Buttons: []Option{{ID: selExpenseDone, Label: "✅ Завершити"}},
	}
}
