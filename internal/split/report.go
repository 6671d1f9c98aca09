package split

import (
	"fmt"
	"math"
	"strings"
)

// Summary renders the report as the message sent back to the chat.
func (r *Report) Summary() string {
	var b strings.Builder
	b.WriteString("📊 *Розрахунок витрат:*\n")
	fmt.Fprintf(&b, "💰 Загальна сума: %d грн\n", r.GrandTotal)
	fmt.Fprintf(&b, "🥗 Кожен платить за їжу: %.2f грн\n", r.PerHeadFood)
	fmt.Fprintf(&b, "🛁 Кожен платить за баню: %.2f грн\n", r.PerHeadBath)
	if r.DrinkerCount > 0 {
		fmt.Fprintf(&b, "🍷 Кожен, хто пив, платить за алкоголь: %.2f грн\n\n", r.PerHeadAlcohol)
	} else {
		b.WriteString("\n")
	}

	for _, bal := range r.Balances {
		if bal.Overpaid() {
			fmt.Fprintf(&b, "✅ %s переплатив: %.2f грн (йому повертають)\n", bal.Name, bal.Amount)
		} else {
			fmt.Fprintf(&b, "❌ %s винен: %.2f грн\n", bal.Name, math.Abs(bal.Amount))
		}
	}

	return b.String()
}
