package processor

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"github.com/simonkvalheim/bankify/internal/model"
	"github.com/simonkvalheim/bankify/internal/queue"
)

// loanCoverRatio is the share of a requested loan some past movement must reach
var loanCoverRatio = decimal.RequireFromString("0.1")

// RequestLoan credits amount to the current account when it is > 0 and at
// least one existing movement is >= 10% of it.
func (c *Controller) RequestLoan(ctx context.Context, amountInput string) (Result, error) {
	c.mu.Lock()

	if c.current == nil {
		c.mu.Unlock()
		return Result{}, model.ErrNotLoggedIn
	}

	amount, ok := model.ParsePositiveAmount(amountInput)
	if !ok {
		res := c.reject("loan", model.ErrInvalidAmount)
		c.mu.Unlock()
		return res, nil
	}

	if !loanCovered(c.current, amount) {
		res := c.reject("loan", model.ErrLoanNotCovered)
		c.mu.Unlock()
		return res, nil
	}

	at := c.now()
	c.store.Append(c.current, amount, at)
	log.Printf("Session %s: granted loan of %s to %s", c.sessionID, amount, c.current.Username)

	event := queue.NewMovementEvent(queue.EventKindLoan, c.current.Username, amount, at)
	res := c.applied()
	c.mu.Unlock()

	c.publish(ctx, event)
	return res, nil
}

// loanCovered applies the 10% rule
func loanCovered(acc *model.Account, amount decimal.Decimal) bool {
	return acc.HasMovementAtLeast(amount.Mul(loanCoverRatio))
}
