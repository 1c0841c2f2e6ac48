package repository

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/simonkvalheim/bankify/internal/model"
)

// AccountStore holds the ordered in-memory account collection.
// It is not safe for concurrent use; the session controller serialises access.
type AccountStore struct {
	accounts []*model.Account
}

// NewAccountStore creates a store over the given accounts, in order
func NewAccountStore(accounts []*model.Account) *AccountStore {
	return &AccountStore{accounts: accounts}
}

// Find returns the first account with the given username
func (s *AccountStore) Find(username string) (*model.Account, bool) {
	i, ok := s.FindIndex(username)
	if !ok {
		return nil, false
	}
	return s.accounts[i], true
}

// FindIndex returns the position of the first account with the given username
func (s *AccountStore) FindIndex(username string) (int, bool) {
	for i, acc := range s.accounts {
		if acc.Username == username {
			return i, true
		}
	}
	return -1, false
}

// Append records a movement on the account.
// The amount and its date are always added together.
func (s *AccountStore) Append(account *model.Account, amount decimal.Decimal, at time.Time) {
	account.Movements = append(account.Movements, model.Movement{
		Amount: amount,
		Date:   at,
	})
}

// Remove deletes the account at index, shifting later accounts down
func (s *AccountStore) Remove(index int) error {
	if index < 0 || index >= len(s.accounts) {
		return fmt.Errorf("remove index %d: %w", index, model.ErrAccountNotFound)
	}

	s.accounts = append(s.accounts[:index], s.accounts[index+1:]...)
	return nil
}

// List returns the accounts in order.
// The slice is a copy; the accounts are shared.
func (s *AccountStore) List() []*model.Account {
	out := make([]*model.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// Len returns the number of accounts
func (s *AccountStore) Len() int {
	return len(s.accounts)
}
