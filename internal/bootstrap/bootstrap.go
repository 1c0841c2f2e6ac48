package bootstrap

import (
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/simonkvalheim/bankify/internal/model"
	"github.com/simonkvalheim/bankify/internal/repository"
)

type seed struct {
	owner        string
	pin          int
	interestRate string
	currency     string
	locale       string
	amounts      []int64
	dates        []string
}

var seeds = []seed{
	{
		owner:        "Jonas Schmedtmann",
		pin:          1111,
		interestRate: "1.2",
		currency:     "EUR",
		locale:       "pt-PT",
		amounts:      []int64{200, 450, -400, 3000, -650, -130, 70, 1300},
		dates: []string{
			"2019-11-18T21:31:17.178Z",
			"2019-12-23T07:42:02.383Z",
			"2020-01-28T09:15:04.904Z",
			"2020-04-01T10:17:24.185Z",
			"2020-05-08T14:11:59.604Z",
			"2020-05-27T17:01:17.194Z",
			"2020-07-11T23:36:17.929Z",
			"2020-07-12T10:51:36.790Z",
		},
	},
	{
		owner:        "Jessica Davis",
		pin:          2222,
		interestRate: "1.5",
		currency:     "USD",
		locale:       "en-US",
		amounts:      []int64{5000, 3400, -150, -790, -3210, -1000, 8500, -30},
		dates: []string{
			"2019-11-01T13:15:33.035Z",
			"2019-11-30T09:48:16.867Z",
			"2019-12-25T06:04:23.907Z",
			"2020-01-25T14:18:46.235Z",
			"2020-02-05T16:33:06.386Z",
			"2020-04-10T14:43:26.374Z",
			"2020-06-25T18:49:59.371Z",
			"2020-07-26T12:01:20.894Z",
		},
	},
}

// SeedAccounts builds the two fixed demo accounts with usernames derived
func SeedAccounts() ([]*model.Account, error) {
	accounts := make([]*model.Account, 0, len(seeds))
	for _, s := range seeds {
		acc, err := s.build()
		if err != nil {
			return nil, fmt.Errorf("failed to seed %s: %w", s.owner, err)
		}
		accounts = append(accounts, acc)
	}

	model.DeriveUsernames(accounts)

	if err := ensureUniqueUsernames(accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// Initialize seeds the store.
// This should be called once on startup, before any login is attempted.
func Initialize() (*repository.AccountStore, error) {
	accounts, err := SeedAccounts()
	if err != nil {
		return nil, fmt.Errorf("failed to seed accounts: %w", err)
	}

	for _, acc := range accounts {
		log.Printf("Seeded account %s (%s, %d movements)", acc.Username, acc.Currency, len(acc.Movements))
	}

	return repository.NewAccountStore(accounts), nil
}

func (s seed) build() (*model.Account, error) {
	if len(s.amounts) != len(s.dates) {
		return nil, fmt.Errorf("%d amounts but %d dates", len(s.amounts), len(s.dates))
	}

	rate, err := decimal.NewFromString(s.interestRate)
	if err != nil {
		return nil, fmt.Errorf("invalid interest rate %q: %w", s.interestRate, err)
	}

	acc := &model.Account{
		Owner:        s.owner,
		PIN:          s.pin,
		InterestRate: rate,
		Currency:     s.currency,
		Locale:       s.locale,
		Movements:    make([]model.Movement, 0, len(s.amounts)),
	}

	for i, amt := range s.amounts {
		at, err := time.Parse(time.RFC3339, s.dates[i])
		if err != nil {
			return nil, fmt.Errorf("invalid movement date %q: %w", s.dates[i], err)
		}
		acc.Movements = append(acc.Movements, model.Movement{
			Amount: decimal.NewFromInt(amt),
			Date:   at,
		})
	}

	return acc, nil
}

// ensureUniqueUsernames rejects collections where two owners share initials
func ensureUniqueUsernames(accounts []*model.Account) error {
	seen := make(map[string]string, len(accounts))
	for _, acc := range accounts {
		if other, ok := seen[acc.Username]; ok {
			return fmt.Errorf("%w: %q for %s and %s", model.ErrDuplicateUsername, acc.Username, other, acc.Owner)
		}
		seen[acc.Username] = acc.Owner
	}
	return nil
}
