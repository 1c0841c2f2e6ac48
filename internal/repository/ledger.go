package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/simonkvalheim/bankify/internal/model"
)

// TransferMovements is the pair of movements a transfer produces
type TransferMovements struct {
	Debit  model.Movement // Sender side (negative)
	Credit model.Movement // Recipient side (positive)
}

// BuildTransferMovements creates the two sides of a transfer.
// Both sides share one timestamp and sum to zero.
func BuildTransferMovements(amount decimal.Decimal, at time.Time) TransferMovements {
	return TransferMovements{
		Debit:  model.Movement{Amount: amount.Neg(), Date: at},
		Credit: model.Movement{Amount: amount, Date: at},
	}
}

// ApplyTransfer appends both sides of a transfer to the accounts
func (s *AccountStore) ApplyTransfer(from, to *model.Account, amount decimal.Decimal, at time.Time) TransferMovements {
	tm := BuildTransferMovements(amount, at)
	s.Append(from, tm.Debit.Amount, tm.Debit.Date)
	s.Append(to, tm.Credit.Amount, tm.Credit.Date)
	return tm
}
