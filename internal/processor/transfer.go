package processor

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"github.com/simonkvalheim/bankify/internal/model"
	"github.com/simonkvalheim/bankify/internal/queue"
)

// Transfer moves amount from the current account to the account named toUsername.
// All of these must hold, or nothing changes:
//   - amount is a number > 0
//   - the recipient exists
//   - the sender's balance covers the amount
//   - the recipient is not the sender
func (c *Controller) Transfer(ctx context.Context, toUsername, amountInput string) (Result, error) {
	c.mu.Lock()

	if c.current == nil {
		c.mu.Unlock()
		return Result{}, model.ErrNotLoggedIn
	}

	amount, ok := model.ParsePositiveAmount(amountInput)
	if !ok {
		res := c.reject("transfer", model.ErrInvalidAmount)
		c.mu.Unlock()
		return res, nil
	}

	recipient, ok := c.store.Find(toUsername)
	if !ok {
		res := c.reject("transfer", model.ErrAccountNotFound)
		c.mu.Unlock()
		return res, nil
	}

	if !hasSufficientFunds(c.current.Balance(), amount) {
		res := c.reject("transfer", model.ErrInsufficientFunds)
		c.mu.Unlock()
		return res, nil
	}

	if recipient.Username == c.current.Username {
		res := c.reject("transfer", model.ErrSameAccount)
		c.mu.Unlock()
		return res, nil
	}

	sender := c.current
	tm := c.store.ApplyTransfer(sender, recipient, amount, c.now())
	log.Printf("Session %s: transferred %s from %s to %s", c.sessionID, amount, sender.Username, recipient.Username)

	res := c.applied()
	c.mu.Unlock()

	c.publish(ctx,
		queue.NewMovementEvent(queue.EventKindTransferOut, sender.Username, tm.Debit.Amount, tm.Debit.Date),
		queue.NewMovementEvent(queue.EventKindTransferIn, recipient.Username, tm.Credit.Amount, tm.Credit.Date),
	)
	return res, nil
}

// hasSufficientFunds checks if balance covers the amount
func hasSufficientFunds(balance, amount decimal.Decimal) bool {
	return balance.GreaterThanOrEqual(amount)
}
