package generate

// Account types produced by the pipeline.
const (
	AccountTransaction = "transaction"
	AccountSavings     = "savings"
	AccountCredit      = "credit"
)

// Transaction directions.
const (
	TypeDebit  = "debit"
	TypeCredit = "credit"
)

// Customer is a generated person with a locale-consistent address and
// phone numbers. IDs follow the CUST-0001 sequence within a run.
type Customer struct {
	ID         string `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Mobile     string `json:"mobile"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}

// Account belongs to a customer generated earlier in the same run.
type Account struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customerId"`
	Type       string  `json:"type"`
	Currency   string  `json:"currency"`
	Balance    float64 `json:"balance"`
	OpenedOn   string  `json:"openedOn"`
}

// Transaction belongs to an account and carries the running balance of
// that account after the transaction was applied, in generation order.
type Transaction struct {
	ID           string  `json:"id"`
	AccountID    string  `json:"accountId"`
	CustomerID   string  `json:"customerId"`
	Type         string  `json:"type"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	Description  string  `json:"description"`
	Merchant     string  `json:"merchant"`
	PostedOn     string  `json:"postedOn"`
	BalanceAfter float64 `json:"balanceAfter"`
}
