// Package view builds the rendered state of a logged-in account: the movement
// list, balance and summary totals, with display strings for the account's
// locale and currency.
package view

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/simonkvalheim/bankify/internal/model"
)

// MovementType classifies a rendered movement
type MovementType string

const (
	MovementTypeDeposit    MovementType = "deposit"
	MovementTypeWithdrawal MovementType = "withdrawal"
)

// Row is one line of the movement list
type Row struct {
	Position      int             `json:"position"` // 1-based, in display order before reversal
	Type          MovementType    `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	DisplayAmount string          `json:"display_amount"`
	DisplayDate   string          `json:"display_date"`
}

// View is everything shown for the current account
type View struct {
	Owner    string `json:"owner"`
	Username string `json:"username"`
	Welcome  string `json:"welcome"`
	Currency string `json:"currency"`
	Locale   string `json:"locale"`
	Sorted   bool   `json:"sorted"`
	Rows     []Row  `json:"movements"` // Most recent first

	Balance  decimal.Decimal `json:"balance"`
	Income   decimal.Decimal `json:"income"`
	Outflow  decimal.Decimal `json:"outflow"`
	Interest decimal.Decimal `json:"interest"`

	DisplayBalance  string `json:"display_balance"`
	DisplayIncome   string `json:"display_income"`
	DisplayOutflow  string `json:"display_outflow"`
	DisplayInterest string `json:"display_interest"`
}

// Render builds the view of an account.
// When sorted is true the movements are ordered ascending by amount on a copy;
// the account itself is never reordered.
func Render(acc *model.Account, sorted bool) View {
	f := NewFormatter(acc.Locale, acc.Currency)
	summary := acc.Summarize()
	balance := acc.Balance()

	movs := slices.Clone(acc.Movements)
	if sorted {
		slices.SortStableFunc(movs, func(a, b model.Movement) int {
			return a.Amount.Cmp(b.Amount)
		})
	}

	rows := make([]Row, 0, len(movs))
	for i := len(movs) - 1; i >= 0; i-- {
		m := movs[i]
		rows = append(rows, Row{
			Position:      i + 1,
			Type:          Classify(m.Amount),
			Amount:        m.Amount,
			Date:          m.Date,
			DisplayAmount: f.Money(m.Amount),
			DisplayDate:   f.Date(m.Date),
		})
	}

	return View{
		Owner:    acc.Owner,
		Username: acc.Username,
		Welcome:  "Welcome back, " + acc.FirstName(),
		Currency: acc.Currency,
		Locale:   acc.Locale,
		Sorted:   sorted,
		Rows:     rows,

		Balance:  balance,
		Income:   summary.Income,
		Outflow:  summary.Outflow,
		Interest: summary.Interest,

		DisplayBalance:  f.Money(balance),
		DisplayIncome:   f.Money(summary.Income),
		DisplayOutflow:  f.Money(summary.Outflow),
		DisplayInterest: f.Money(summary.Interest),
	}
}

// Classify tags an amount. Only strictly positive amounts are deposits.
func Classify(amount decimal.Decimal) MovementType {
	if amount.IsPositive() {
		return MovementTypeDeposit
	}
	return MovementTypeWithdrawal
}
