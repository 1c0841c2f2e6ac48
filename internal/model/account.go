package model

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Movement is a single signed transaction amount with the time it was recorded.
// Positive amounts are deposits, loans and incoming transfers.
type Movement struct {
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

// Account represents one bank customer
type Account struct {
	Owner        string          `json:"owner"`
	Username     string          `json:"username"`
	PIN          int             `json:"-"` // Plaintext, compared for equality only
	Movements    []Movement      `json:"movements"`
	InterestRate decimal.Decimal `json:"interest_rate"` // Percent
	Currency     string          `json:"currency"`
	Locale       string          `json:"locale"`
}

// Amounts returns the movement amounts in insertion order
func (a *Account) Amounts() []decimal.Decimal {
	out := make([]decimal.Decimal, len(a.Movements))
	for i, m := range a.Movements {
		out[i] = m.Amount
	}
	return out
}

// Dates returns the movement dates in insertion order.
// Element i always belongs to element i of Amounts.
func (a *Account) Dates() []time.Time {
	out := make([]time.Time, len(a.Movements))
	for i, m := range a.Movements {
		out[i] = m.Date
	}
	return out
}

// Balance returns the sum of all movements
func (a *Account) Balance() decimal.Decimal {
	sum := decimal.Zero
	for _, m := range a.Movements {
		sum = sum.Add(m.Amount)
	}
	return sum
}

// CheckPIN reports whether the typed pin matches the stored PIN.
// A nil account or a non-numeric pin never matches.
func (a *Account) CheckPIN(input string) bool {
	if a == nil {
		return false
	}
	pin, ok := ParseNumber(input)
	if !ok {
		return false
	}
	return pin.Equal(decimal.NewFromInt(int64(a.PIN)))
}

// HasMovementAtLeast reports whether any movement is >= threshold
func (a *Account) HasMovementAtLeast(threshold decimal.Decimal) bool {
	for _, m := range a.Movements {
		if m.Amount.GreaterThanOrEqual(threshold) {
			return true
		}
	}
	return false
}

// FirstName returns the first word of the owner's name
func (a *Account) FirstName() string {
	fields := strings.Fields(a.Owner)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Summary holds the totals derived from an account's movements
type Summary struct {
	Income   decimal.Decimal `json:"income"`
	Outflow  decimal.Decimal `json:"outflow"`
	Interest decimal.Decimal `json:"interest"`
}

var (
	hundred         = decimal.NewFromInt(100)
	minimumInterest = decimal.NewFromInt(1)
)

// Summarize computes income, outflow and interest.
// Interest is earned per deposit; a deposit whose interest is below 1 earns nothing.
func (a *Account) Summarize() Summary {
	s := Summary{
		Income:   decimal.Zero,
		Outflow:  decimal.Zero,
		Interest: decimal.Zero,
	}

	for _, m := range a.Movements {
		switch {
		case m.Amount.IsPositive():
			s.Income = s.Income.Add(m.Amount)
			interest := m.Amount.Mul(a.InterestRate).Div(hundred)
			if interest.GreaterThanOrEqual(minimumInterest) {
				s.Interest = s.Interest.Add(interest)
			}
		case m.Amount.IsNegative():
			s.Outflow = s.Outflow.Add(m.Amount)
		}
	}
	s.Outflow = s.Outflow.Abs()

	return s
}

// Username derives the login name from an owner's full name:
// the lowercase first letter of every word, concatenated.
func Username(owner string) string {
	lower := cases.Lower(language.Und).String(owner)

	var b strings.Builder
	for _, word := range strings.Fields(lower) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	return b.String()
}

// DeriveUsernames sets Username on every account from its Owner.
// Running it more than once yields the same result.
func DeriveUsernames(accounts []*Account) {
	for _, acc := range accounts {
		acc.Username = Username(acc.Owner)
	}
}
