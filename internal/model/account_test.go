package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func newTestAccount(rate string, amounts ...int64) *Account {
	acc := &Account{
		Owner:        "Jonas Schmedtmann",
		PIN:          1111,
		InterestRate: decimal.RequireFromString(rate),
		Currency:     "EUR",
		Locale:       "pt-PT",
	}
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, amt := range amounts {
		acc.Movements = append(acc.Movements, Movement{
			Amount: decimal.NewFromInt(amt),
			Date:   start.AddDate(0, 0, i),
		})
	}
	return acc
}

func TestUsername(t *testing.T) {
	tests := []struct {
		name  string
		owner string
		want  string
	}{
		{name: "two words", owner: "Jonas Schmedtmann", want: "js"},
		{name: "second seed", owner: "Jessica Davis", want: "jd"},
		{name: "three words", owner: "Steven Thomas Williams", want: "stw"},
		{name: "single word", owner: "Sarah", want: "s"},
		{name: "extra whitespace", owner: "  Jonas   Schmedtmann ", want: "js"},
		{name: "already lowercase", owner: "jonas schmedtmann", want: "js"},
		{name: "non-ascii initial", owner: "Élodie Ørsted", want: "éø"},
		{name: "empty", owner: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Username(tt.owner); got != tt.want {
				t.Errorf("Username(%q) = %q, want %q", tt.owner, got, tt.want)
			}
		})
	}
}

func TestDeriveUsernames_Idempotent(t *testing.T) {
	accounts := []*Account{
		{Owner: "Jonas Schmedtmann"},
		{Owner: "Jessica Davis"},
	}

	DeriveUsernames(accounts)
	first := []string{accounts[0].Username, accounts[1].Username}

	DeriveUsernames(accounts)
	for i, acc := range accounts {
		if acc.Username != first[i] {
			t.Errorf("account %d username changed from %q to %q", i, first[i], acc.Username)
		}
	}

	if first[0] != "js" || first[1] != "jd" {
		t.Errorf("usernames = %v, want [js jd]", first)
	}
}

func TestAccount_Balance(t *testing.T) {
	acc := newTestAccount("1.2", 200, 450, -400, 3000, -650, -130, 70, 1300)

	if got := acc.Balance(); !got.Equal(decimal.NewFromInt(3840)) {
		t.Errorf("Balance() = %v, want 3840", got)
	}

	empty := newTestAccount("1.2")
	if got := empty.Balance(); !got.IsZero() {
		t.Errorf("Balance() of empty account = %v, want 0", got)
	}
}

func TestAccount_Summarize(t *testing.T) {
	tests := []struct {
		name         string
		rate         string
		amounts      []int64
		wantIncome   string
		wantOutflow  string
		wantInterest string
	}{
		{
			name:         "first seed account",
			rate:         "1.2",
			amounts:      []int64{200, 450, -400, 3000, -650, -130, 70, 1300},
			wantIncome:   "5020",
			wantOutflow:  "1180",
			wantInterest: "59.4", // 70 earns 0.84 and is excluded
		},
		{
			name:         "second seed account",
			rate:         "1.5",
			amounts:      []int64{5000, 3400, -150, -790, -3210, -1000, 8500, -30},
			wantIncome:   "16900",
			wantOutflow:  "5180",
			wantInterest: "253.5",
		},
		{
			name:         "interest exactly one is kept",
			rate:         "1",
			amounts:      []int64{100},
			wantIncome:   "100",
			wantOutflow:  "0",
			wantInterest: "1",
		},
		{
			name:         "all deposits below interest floor",
			rate:         "1.2",
			amounts:      []int64{70, 50, -10},
			wantIncome:   "120",
			wantOutflow:  "10",
			wantInterest: "0",
		},
		{
			name:         "zero movement counts nowhere",
			rate:         "1.2",
			amounts:      []int64{0},
			wantIncome:   "0",
			wantOutflow:  "0",
			wantInterest: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestAccount(tt.rate, tt.amounts...).Summarize()
			if !s.Income.Equal(decimal.RequireFromString(tt.wantIncome)) {
				t.Errorf("Income = %v, want %v", s.Income, tt.wantIncome)
			}
			if !s.Outflow.Equal(decimal.RequireFromString(tt.wantOutflow)) {
				t.Errorf("Outflow = %v, want %v", s.Outflow, tt.wantOutflow)
			}
			if !s.Interest.Equal(decimal.RequireFromString(tt.wantInterest)) {
				t.Errorf("Interest = %v, want %v", s.Interest, tt.wantInterest)
			}
		})
	}
}

func TestAccount_CheckPIN(t *testing.T) {
	acc := newTestAccount("1.2")

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "exact", input: "1111", want: true},
		{name: "surrounding spaces", input: " 1111 ", want: true},
		{name: "decimal form", input: "1111.0", want: true},
		{name: "off by one", input: "1110", want: false},
		{name: "empty", input: "", want: false},
		{name: "letters", input: "abcd", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := acc.CheckPIN(tt.input); got != tt.want {
				t.Errorf("CheckPIN(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	var missing *Account
	if missing.CheckPIN("1111") {
		t.Error("CheckPIN on a nil account should fail closed")
	}
}

func TestAccount_ParallelViews(t *testing.T) {
	acc := newTestAccount("1.2", 200, -50, 30)

	amounts, dates := acc.Amounts(), acc.Dates()
	if len(amounts) != len(dates) {
		t.Fatalf("len(Amounts()) = %d, len(Dates()) = %d", len(amounts), len(dates))
	}
	for i := range amounts {
		if !amounts[i].Equal(acc.Movements[i].Amount) || !dates[i].Equal(acc.Movements[i].Date) {
			t.Errorf("position %d does not match movement %+v", i, acc.Movements[i])
		}
	}
}

func TestAccount_HasMovementAtLeast(t *testing.T) {
	acc := newTestAccount("1.2", 200, 450, -400, 3000)

	if !acc.HasMovementAtLeast(decimal.NewFromInt(3000)) {
		t.Error("3000 should satisfy a threshold of 3000")
	}
	if acc.HasMovementAtLeast(decimal.RequireFromString("3000.1")) {
		t.Error("no movement reaches 3000.1")
	}
}

func TestAccount_FirstName(t *testing.T) {
	if got := newTestAccount("1").FirstName(); got != "Jonas" {
		t.Errorf("FirstName() = %q, want Jonas", got)
	}
	if got := (&Account{}).FirstName(); got != "" {
		t.Errorf("FirstName() of unnamed account = %q, want empty", got)
	}
}
