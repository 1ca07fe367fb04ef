package generate

import (
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-datagen/pkg/rng"
)

var firstNames = []string{
	"Alex", "Blake", "Casey", "Dana", "Elliot", "Harper", "Jordan",
	"Morgan", "Quinn", "Riley", "Taylor", "Sydney", "Sam", "Jamie",
}

var lastNames = []string{
	"Nguyen", "Kaur", "Smith", "Chen", "Lee", "Patel", "Brown",
	"Jones", "Williams", "Wilson", "Martin", "Singh", "Thompson", "King",
}

var merchants = []string{
	"ANZ ATM", "Uber", "Coles", "Woolworths", "Officeworks", "JB Hi-Fi",
	"Bunnings", "7-Eleven", "Qantas", "Virgin", "Airtasker", "Netflix", "Spotify",
}

const (
	creditDescription = "Salary/Deposit"
	creditMerchant    = "Employer Pty Ltd"
	debitDescription  = "Card purchase"
)

// idSequence issues densely sequential entity IDs like CUST-0001.
// Each run builds fresh sequences; nothing is shared across runs.
type idSequence struct {
	prefix string
	next   int
}

func newIDSequence(prefix string) *idSequence {
	return &idSequence{prefix: prefix, next: 1}
}

func (s *idSequence) Next() string {
	id := fmt.Sprintf("%s-%04d", s.prefix, s.next)
	s.next++
	return id
}

// Customers generates cfg.Customers customers for the configured
// territory and state, consuming draws from cfg.Source.
func Customers(cfg Config) []Customer {
	ids := newIDSequence("CUST")
	customers := make([]Customer, 0, cfg.Customers)

	for i := 0; i < cfg.Customers; i++ {
		first := rng.Pick(cfg.Source, firstNames)
		last := rng.Pick(cfg.Source, lastNames)
		full := first + " " + last

		suffix := cfg.Source.IntBetween(10, 999)
		domain := cfg.EmailDomains[0]
		if len(cfg.EmailDomains) > 1 {
			domain = rng.Pick(cfg.Source, cfg.EmailDomains)
		}
		email := strings.ReplaceAll(strings.ToLower(
			fmt.Sprintf("%s.%s%d@%s", first, last, suffix, domain)), " ", "")

		city := rng.Pick(cfg.Source, cfg.State.Cities)
		street := rng.Pick(cfg.Source, cfg.Territory.StreetNames)
		postal := cfg.Territory.PostalCode(cfg.Source, cfg.State)
		mobile := cfg.Territory.Mobile(cfg.Source, cfg.State)
		phone := cfg.Territory.Phone(cfg.Source, cfg.State)
		address := fmt.Sprintf("%d %s, %s, %s %s, %s",
			cfg.Source.IntBetween(1, 999), street, city, cfg.State.Name, postal, cfg.Territory.Label)

		customers = append(customers, Customer{
			ID:         ids.Next(),
			FirstName:  first,
			LastName:   last,
			FullName:   full,
			Email:      email,
			Phone:      phone,
			Mobile:     mobile,
			Address:    address,
			City:       city,
			State:      cfg.State.Name,
			Country:    cfg.Territory.Label,
			PostalCode: postal,
		})
	}

	return customers
}

var accountTypes = []string{AccountTransaction, AccountSavings, AccountCredit}

// Accounts generates between MinAccounts and MaxAccounts accounts for
// each customer, in customer order. Opening dates fall within the last
// three years relative to now.
func Accounts(cfg Config, customers []Customer, now time.Time) []Account {
	ids := newIDSequence("ACC")
	earliest := time.Date(now.Year()-3, now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var accounts []Account
	for _, customer := range customers {
		count := cfg.Source.IntBetween(cfg.MinAccounts, cfg.MaxAccounts)
		for i := 0; i < count; i++ {
			openedOn := cfg.Source.DateBetween(earliest, now)
			accounts = append(accounts, Account{
				ID:         ids.Next(),
				CustomerID: customer.ID,
				Type:       rng.Pick(cfg.Source, accountTypes),
				Currency:   cfg.Currency,
				Balance:    cfg.Source.FloatBetween(500, 15000),
				OpenedOn:   openedOn,
			})
		}
	}

	return accounts
}

// Transactions generates between MinTransactions and MaxTransactions
// transactions per account, carrying each account's running balance
// forward in generation order. Credits are favoured slightly (draw
// above 0.45) to keep balances from drifting negative; that is a
// heuristic, not a guarantee.
func Transactions(cfg Config, accounts []Account) []Transaction {
	ids := newIDSequence("TXN")

	var transactions []Transaction
	for _, account := range accounts {
		count := cfg.Source.IntBetween(cfg.MinTransactions, cfg.MaxTransactions)
		running := account.Balance
		for i := 0; i < count; i++ {
			isCredit := cfg.Source.Draw() > 0.45
			amount := cfg.Source.FloatBetween(cfg.MinAmount, cfg.MaxAmount)
			if isCredit {
				running += amount
			} else {
				running -= amount
			}

			txn := Transaction{
				ID:           ids.Next(),
				AccountID:    account.ID,
				CustomerID:   account.CustomerID,
				Type:         TypeDebit,
				Amount:       amount,
				Currency:     cfg.Currency,
				Description:  debitDescription,
				Merchant:     "",
				BalanceAfter: rng.Round2(running),
			}
			if isCredit {
				txn.Type = TypeCredit
				txn.Description = creditDescription
				txn.Merchant = creditMerchant
			} else {
				txn.Merchant = rng.Pick(cfg.Source, merchants)
			}
			txn.PostedOn = cfg.Source.DateBetween(cfg.StartDate, cfg.EndDate)

			transactions = append(transactions, txn)
		}
	}

	return transactions
}
