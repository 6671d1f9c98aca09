package split

import (
	"math"
	"strings"
	"testing"
)

func TestSettle(t *testing.T) {
	tests := []struct {
		name         string
		tally        Tally
		wantErr      bool
		validateFunc func(t *testing.T, r *Report)
	}{
		{
			name: "bath trip with one drinker",
			tally: Tally{
				Participants: []string{"Ann", "Bob"},
				Drinkers:     []string{"Bob"},
				BathCost:     100,
				Food:         map[string]int64{"Ann": 60},
				Alcohol:      map[string]int64{"Bob": 40},
			},
			validateFunc: func(t *testing.T, r *Report) {
				// food 60/2=30, bath 100/2=50, alcohol 40/1=40
				if r.GrandTotal != 200 {
					t.Errorf("grand total = %d, want 200", r.GrandTotal)
				}
				if math.Abs(r.PerHeadFood-30.0) > 0.001 {
					t.Errorf("per-head food = %v, want 30.0", r.PerHeadFood)
				}
				if math.Abs(r.PerHeadBath-50.0) > 0.001 {
					t.Errorf("per-head bath = %v, want 50.0", r.PerHeadBath)
				}
				if math.Abs(r.PerHeadAlcohol-40.0) > 0.001 {
					t.Errorf("per-head alcohol = %v, want 40.0", r.PerHeadAlcohol)
				}
				// Ann paid 60, owes 80; Bob paid 40, owes 120
				wantBalance(t, r, "Ann", -20.0)
				wantBalance(t, r, "Bob", -80.0)
			},
		},
		{
			name: "flat cost only, nobody paid anything",
			tally: Tally{
				Participants: []string{"A", "B", "C"},
				BathCost:     30,
			},
			validateFunc: func(t *testing.T, r *Report) {
				if math.Abs(r.PerHeadBath-10.0) > 0.001 {
					t.Errorf("per-head bath = %v, want 10.0", r.PerHeadBath)
				}
				for _, name := range []string{"A", "B", "C"} {
					wantBalance(t, r, name, -10.0)
				}
				// Without a bath payer the rent has no payer side, so the
				// balances sum to -BathCost rather than zero.
				var sum float64
				for _, bal := range r.Balances {
					sum += bal.Amount
				}
				if math.Abs(sum-(-30.0)) > 0.001 {
					t.Errorf("balance sum = %v, want -30.0", sum)
				}
			},
		},
		{
			name: "designated bath payer restores conservation",
			tally: Tally{
				Participants: []string{"A", "B", "C"},
				BathCost:     30,
				BathPayer:    "B",
			},
			validateFunc: func(t *testing.T, r *Report) {
				wantBalance(t, r, "A", -10.0)
				wantBalance(t, r, "B", 20.0)
				wantBalance(t, r, "C", -10.0)
				var sum float64
				for _, bal := range r.Balances {
					sum += bal.Amount
				}
				if math.Abs(sum) > 0.001 {
					t.Errorf("balance sum = %v, want 0", sum)
				}
			},
		},
		{
			name: "everyone drinks",
			tally: Tally{
				Participants: []string{"A", "B"},
				Drinkers:     []string{"A", "B"},
				Alcohol:      map[string]int64{"A": 50},
			},
			validateFunc: func(t *testing.T, r *Report) {
				// surcharge group equals the full participant set
				if math.Abs(r.PerHeadAlcohol-25.0) > 0.001 {
					t.Errorf("per-head alcohol = %v, want 25.0", r.PerHeadAlcohol)
				}
				wantBalance(t, r, "A", 25.0)
				wantBalance(t, r, "B", -25.0)
			},
		},
		{
			name: "no drinkers means alcohol share of zero",
			tally: Tally{
				Participants: []string{"A", "B"},
				Food:         map[string]int64{"A": 10, "B": 10},
			},
			validateFunc: func(t *testing.T, r *Report) {
				if r.PerHeadAlcohol != 0 {
					t.Errorf("per-head alcohol = %v, want 0", r.PerHeadAlcohol)
				}
				wantBalance(t, r, "A", 0.0)
				wantBalance(t, r, "B", 0.0)
			},
		},
		{
			name: "participant absent from every expense map",
			tally: Tally{
				Participants: []string{"A", "B"},
				Food:         map[string]int64{"A": 40},
			},
			validateFunc: func(t *testing.T, r *Report) {
				wantBalance(t, r, "B", -20.0)
			},
		},
		{
			name:    "no participants should error",
			tally:   Tally{},
			wantErr: true,
		},
		{
			name: "drinker outside participants should error",
			tally: Tally{
				Participants: []string{"A"},
				Drinkers:     []string{"B"},
			},
			wantErr: true,
		},
		{
			name: "bath payer outside participants should error",
			tally: Tally{
				Participants: []string{"A"},
				BathCost:     10,
				BathPayer:    "B",
			},
			wantErr: true,
		},
		{
			name: "negative amount should error",
			tally: Tally{
				Participants: []string{"A"},
				Food:         map[string]int64{"A": -5},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Settle(tt.tally)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Settle() error = %v", err)
			}
			if len(r.Balances) != len(tt.tally.Participants) {
				t.Fatalf("got %d balance lines, want %d", len(r.Balances), len(tt.tally.Participants))
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, r)
			}
		})
	}
}

func TestSettleConservation(t *testing.T) {
	// Every hryvnia actually paid by someone is reallocated exactly, so with
	// a tracked bath payer the signed balances cancel out.
	tally := Tally{
		Participants: []string{"Оля", "Петро", "Ірина", "Макс"},
		Drinkers:     []string{"Петро", "Макс"},
		BathCost:     800,
		BathPayer:    "Оля",
		Food:         map[string]int64{"Петро": 340, "Ірина": 125},
		Alcohol:      map[string]int64{"Макс": 410},
	}
	r, err := Settle(tally)
	if err != nil {
		t.Fatalf("Settle() error = %v", err)
	}
	var sum float64
	for _, bal := range r.Balances {
		sum += bal.Amount
	}
	if math.Abs(sum) > 0.001 {
		t.Errorf("balance sum = %v, want 0", sum)
	}
}

func TestSettleBalanceOrder(t *testing.T) {
	tally := Tally{
		Participants: []string{"C", "A", "B"},
		Food:         map[string]int64{"B": 30},
	}
	r, err := Settle(tally)
	if err != nil {
		t.Fatalf("Settle() error = %v", err)
	}
	for i, want := range []string{"C", "A", "B"} {
		if r.Balances[i].Name != want {
			t.Errorf("balance %d = %s, want %s", i, r.Balances[i].Name, want)
		}
	}
}

func TestReportSummary(t *testing.T) {
	r, err := Settle(Tally{
		Participants: []string{"Ann", "Bob"},
		Drinkers:     []string{"Bob"},
		BathCost:     100,
		Food:         map[string]int64{"Ann": 60},
		Alcohol:      map[string]int64{"Bob": 40},
	})
	if err != nil {
		t.Fatalf("Settle() error = %v", err)
	}

	summary := r.Summary()
	expected := []string{
		"Загальна сума: 200 грн",
		"за їжу: 30.00 грн",
		"за баню: 50.00 грн",
		"за алкоголь: 40.00 грн",
		"❌ Ann винен: 20.00 грн",
		"❌ Bob винен: 80.00 грн",
	}
	for _, want := range expected {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q\n%s", want, summary)
		}
	}
}

func TestReportSummaryShowsZeroAlcoholLineForDrinkers(t *testing.T) {
	r, err := Settle(Tally{
		Participants: []string{"A", "B"},
		Drinkers:     []string{"B"},
		BathCost:     10,
	})
	if err != nil {
		t.Fatalf("Settle() error = %v", err)
	}
	if !strings.Contains(r.Summary(), "за алкоголь: 0.00 грн") {
		t.Errorf("summary should carry a zero alcohol line when drinkers were picked\n%s", r.Summary())
	}
}

func TestReportSummaryOmitsAlcoholLineWithoutDrinkers(t *testing.T) {
	r, err := Settle(Tally{Participants: []string{"A"}, BathCost: 10})
	if err != nil {
		t.Fatalf("Settle() error = %v", err)
	}
	if strings.Contains(r.Summary(), "алкоголь") {
		t.Error("summary should not mention alcohol when nobody drank")
	}
}

func wantBalance(t *testing.T, r *Report, name string, want float64) {
	t.Helper()
	for _, bal := range r.Balances {
		if bal.Name == name {
			if math.Abs(bal.Amount-want) > 0.001 {
				t.Errorf("%s balance = %v, want %v", name, bal.Amount, want)
			}
			return
		}
	}
	t.Errorf("no balance line for %s", name)
}
