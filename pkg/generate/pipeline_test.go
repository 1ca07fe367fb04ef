package generate

import (
	"fmt"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-datagen/pkg/rng"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func runPipeline(t *testing.T, rawQuery string) ([]Customer, []Account, []Transaction) {
	t.Helper()
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		t.Fatalf("bad query %q: %v", rawQuery, err)
	}
	cfg := ResolveConfig(query, testNow)
	customers := Customers(cfg)
	accounts := Accounts(cfg, customers, testNow)
	transactions := Transactions(cfg, accounts)
	return customers, accounts, transactions
}

func TestPipeline_Deterministic(t *testing.T) {
	const query = "seed=1234&country=india&customers=5&minAccounts=1&maxAccounts=3&minTransactions=2&maxTransactions=6"

	c1, a1, t1 := runPipeline(t, query)
	c2, a2, t2 := runPipeline(t, query)

	if diff := cmp.Diff(c1, c2); diff != "" {
		t.Errorf("customers differ between identical runs (-run1 +run2):\n%s", diff)
	}
	if diff := cmp.Diff(a1, a2); diff != "" {
		t.Errorf("accounts differ between identical runs (-run1 +run2):\n%s", diff)
	}
	if diff := cmp.Diff(t1, t2); diff != "" {
		t.Errorf("transactions differ between identical runs (-run1 +run2):\n%s", diff)
	}
}

func TestPipeline_ReferentialIntegrity(t *testing.T) {
	customers, accounts, transactions := runPipeline(t, "seed=9&customers=8")

	customerIDs := map[string]bool{}
	for _, c := range customers {
		customerIDs[c.ID] = true
	}
	accountOwner := map[string]string{}
	for _, a := range accounts {
		if !customerIDs[a.CustomerID] {
			t.Errorf("account %s references unknown customer %s", a.ID, a.CustomerID)
		}
		accountOwner[a.ID] = a.CustomerID
	}
	for _, txn := range transactions {
		owner, ok := accountOwner[txn.AccountID]
		if !ok {
			t.Errorf("transaction %s references unknown account %s", txn.ID, txn.AccountID)
			continue
		}
		if txn.CustomerID != owner {
			t.Errorf("transaction %s customer %s does not match account owner %s",
				txn.ID, txn.CustomerID, owner)
		}
	}
}

func TestPipeline_RunningBalanceLaw(t *testing.T) {
	_, accounts, transactions := runPipeline(t, "seed=77&customers=4&minTransactions=3&maxTransactions=9")

	opening := map[string]float64{}
	for _, a := range accounts {
		opening[a.ID] = a.Balance
	}

	running := map[string]float64{}
	for id, balance := range opening {
		running[id] = balance
	}
	for _, txn := range transactions {
		prev := running[txn.AccountID]
		var want float64
		switch txn.Type {
		case TypeCredit:
			want = prev + txn.Amount
		case TypeDebit:
			want = prev - txn.Amount
		default:
			t.Fatalf("transaction %s has unexpected type %q", txn.ID, txn.Type)
		}
		if got := txn.BalanceAfter; got != rng.Round2(want) {
			t.Errorf("transaction %s balanceAfter = %v, want %v", txn.ID, got, rng.Round2(want))
		}
		running[txn.AccountID] = want
	}
}

func TestPipeline_RangeContainment(t *testing.T) {
	query := "seed=3&customers=6&minAccounts=2&maxAccounts=4&minTransactions=1&maxTransactions=5" +
		"&minAmount=25&maxAmount=75&startDate=2025-01-01&endDate=2025-02-01"
	customers, accounts, transactions := runPipeline(t, query)

	perCustomer := map[string]int{}
	for _, a := range accounts {
		perCustomer[a.CustomerID]++
		if a.Balance < 500 || a.Balance > 15000 {
			t.Errorf("account %s balance %v outside [500, 15000]", a.ID, a.Balance)
		}
	}
	for _, c := range customers {
		if n := perCustomer[c.ID]; n < 2 || n > 4 {
			t.Errorf("customer %s has %d accounts, want 2..4", c.ID, n)
		}
	}

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	perAccount := map[string]int{}
	for _, txn := range transactions {
		perAccount[txn.AccountID]++
		if txn.Amount < 25 || txn.Amount > 75 {
			t.Errorf("transaction %s amount %v outside [25, 75]", txn.ID, txn.Amount)
		}
		posted, err := time.Parse(time.RFC3339, txn.PostedOn)
		if err != nil {
			t.Fatalf("transaction %s postedOn %q is not RFC3339: %v", txn.ID, txn.PostedOn, err)
		}
		if posted.Before(start) || posted.After(end) {
			t.Errorf("transaction %s posted %v outside requested window", txn.ID, posted)
		}
	}
	for _, a := range accounts {
		if n := perAccount[a.ID]; n < 1 || n > 5 {
			t.Errorf("account %s has %d transactions, want 1..5", a.ID, n)
		}
	}
}

func TestPipeline_IDUniquenessAndDensity(t *testing.T) {
	customers, accounts, transactions := runPipeline(t, "seed=15&customers=7")

	checkSequence := func(t *testing.T, prefix string, ids []string) {
		t.Helper()
		seen := map[string]bool{}
		for i, id := range ids {
			want := fmt.Sprintf("%s-%04d", prefix, i+1)
			if id != want {
				t.Fatalf("id %d = %q, want %q", i, id, want)
			}
			if seen[id] {
				t.Fatalf("duplicate id %q", id)
			}
			seen[id] = true
		}
	}

	customerIDs := make([]string, len(customers))
	for i, c := range customers {
		customerIDs[i] = c.ID
	}
	accountIDs := make([]string, len(accounts))
	for i, a := range accounts {
		accountIDs[i] = a.ID
	}
	transactionIDs := make([]string, len(transactions))
	for i, txn := range transactions {
		transactionIDs[i] = txn.ID
	}

	checkSequence(t, "CUST", customerIDs)
	checkSequence(t, "ACC", accountIDs)
	checkSequence(t, "TXN", transactionIDs)
}

func TestPipeline_Seed42Scenario(t *testing.T) {
	const query = "seed=42&country=australia&customers=2&minAccounts=1&maxAccounts=1&minTransactions=1&maxTransactions=1"

	customers, accounts, transactions := runPipeline(t, query)

	if len(customers) != 2 || customers[0].ID != "CUST-0001" || customers[1].ID != "CUST-0002" {
		t.Fatalf("unexpected customers: %+v", customers)
	}
	if len(accounts) != 2 || accounts[0].ID != "ACC-0001" || accounts[1].ID != "ACC-0002" {
		t.Fatalf("unexpected accounts: %+v", accounts)
	}
	if len(transactions) != 2 || transactions[0].ID != "TXN-0001" || transactions[1].ID != "TXN-0002" {
		t.Fatalf("unexpected transactions: %+v", transactions)
	}

	c2, a2, t2 := runPipeline(t, query)
	if diff := cmp.Diff(customers, c2); diff != "" {
		t.Errorf("seed 42 rerun customers differ:\n%s", diff)
	}
	if diff := cmp.Diff(accounts, a2); diff != "" {
		t.Errorf("seed 42 rerun accounts differ:\n%s", diff)
	}
	if diff := cmp.Diff(transactions, t2); diff != "" {
		t.Errorf("seed 42 rerun transactions differ:\n%s", diff)
	}
}

func TestPipeline_CreditAndDebitShape(t *testing.T) {
	_, _, transactions := runPipeline(t, "seed=500&customers=10&minTransactions=5&maxTransactions=10")

	credits, debits := 0, 0
	for _, txn := range transactions {
		switch txn.Type {
		case TypeCredit:
			credits++
			if txn.Description != "Salary/Deposit" || txn.Merchant != "Employer Pty Ltd" {
				t.Errorf("credit %s has description %q merchant %q", txn.ID, txn.Description, txn.Merchant)
			}
		case TypeDebit:
			debits++
			if txn.Description != "Card purchase" {
				t.Errorf("debit %s has description %q", txn.ID, txn.Description)
			}
			if txn.Merchant == "" {
				t.Errorf("debit %s has no merchant", txn.ID)
			}
		}
	}
	if credits == 0 || debits == 0 {
		t.Fatalf("expected both credits and debits, got %d credits %d debits", credits, debits)
	}
}

func TestPipeline_CustomerLocaleFields(t *testing.T) {
	customers, _, _ := runPipeline(t, "seed=8&country=us&state=texas&customers=5")

	for _, c := range customers {
		if c.Country != "United States" {
			t.Errorf("customer %s country = %q", c.ID, c.Country)
		}
		if c.State != "Texas" {
			t.Errorf("customer %s state = %q", c.ID, c.State)
		}
		if c.FullName != c.FirstName+" "+c.LastName {
			t.Errorf("customer %s fullName %q does not compose", c.ID, c.FullName)
		}
		if !strings.HasSuffix(c.Email, "@example.com") {
			t.Errorf("customer %s email %q lacks default domain", c.ID, c.Email)
		}
		if c.Email != strings.ToLower(c.Email) {
			t.Errorf("customer %s email %q not lowercased", c.ID, c.Email)
		}
		if !strings.Contains(c.Address, c.City) || !strings.Contains(c.Address, c.PostalCode) {
			t.Errorf("customer %s address %q missing city or postal code", c.ID, c.Address)
		}
	}
}

func TestPipeline_EmailDomainAllowlist(t *testing.T) {
	customers, _, _ := runPipeline(t, "seed=8&customers=20&emailDomains=corp.test,sample.org")

	seen := map[string]bool{}
	for _, c := range customers {
		at := strings.LastIndex(c.Email, "@")
		domain := c.Email[at+1:]
		if domain != "corp.test" && domain != "sample.org" {
			t.Errorf("customer %s email domain %q not in allowlist", c.ID, domain)
		}
		seen[domain] = true
	}
	if len(seen) < 2 {
		t.Errorf("expected both domains drawn across 20 customers, got %v", seen)
	}
}

func TestResolveConfig_Defaults(t *testing.T) {
	cfg := ResolveConfig(url.Values{}, testNow)

	if cfg.Territory.Key != "australia" {
		t.Errorf("default territory = %q", cfg.Territory.Key)
	}
	if cfg.Customers != 10 {
		t.Errorf("default customers = %d", cfg.Customers)
	}
	if cfg.MinAccounts != 1 || cfg.MaxAccounts != 3 {
		t.Errorf("default account range = [%d, %d]", cfg.MinAccounts, cfg.MaxAccounts)
	}
	if cfg.MinTransactions != 3 || cfg.MaxTransactions != 8 {
		t.Errorf("default transaction range = [%d, %d]", cfg.MinTransactions, cfg.MaxTransactions)
	}
	if cfg.Currency != "AUD" {
		t.Errorf("default currency = %q", cfg.Currency)
	}
	if cfg.MinAmount != 10 || cfg.MaxAmount != 500 {
		t.Errorf("default amount range = [%v, %v]", cfg.MinAmount, cfg.MaxAmount)
	}
	if !cfg.EndDate.Equal(testNow) {
		t.Errorf("default end date = %v", cfg.EndDate)
	}
	if !cfg.StartDate.Equal(testNow.AddDate(0, -1, 0)) {
		t.Errorf("default start date = %v", cfg.StartDate)
	}
	if diff := cmp.Diff([]string{"example.com"}, cfg.EmailDomains); diff != "" {
		t.Errorf("default email domains:\n%s", diff)
	}
}

func TestResolveConfig_MalformedFallsBack(t *testing.T) {
	query := url.Values{
		"customers":   {"lots"},
		"minAccounts": {"-2"},
		"maxAccounts": {"0"},
		"minAmount":   {"NaNish"},
		"startDate":   {"not-a-date"},
		"seed":        {"0"},
	}
	cfg := ResolveConfig(query, testNow)

	if cfg.Customers != 10 {
		t.Errorf("customers = %d, want default 10", cfg.Customers)
	}
	if cfg.MinAccounts != 1 || cfg.MaxAccounts != 3 {
		t.Errorf("account range = [%d, %d], want defaults", cfg.MinAccounts, cfg.MaxAccounts)
	}
	if cfg.MinAmount != 10 {
		t.Errorf("minAmount = %v, want default 10", cfg.MinAmount)
	}
	if !cfg.StartDate.Equal(testNow.AddDate(0, -1, 0)) {
		t.Errorf("startDate = %v, want default", cfg.StartDate)
	}
	if cfg.Seed != testNow.UnixMilli() {
		t.Errorf("seed = %d, want time fallback", cfg.Seed)
	}
}

func TestResolveConfig_ClampsInvertedRanges(t *testing.T) {
	query := url.Values{
		"minAccounts":     {"5"},
		"maxAccounts":     {"2"},
		"minTransactions": {"9"},
		"maxTransactions": {"4"},
		"minAmount":       {"300"},
		"maxAmount":       {"100"},
	}
	cfg := ResolveConfig(query, testNow)

	if cfg.MaxAccounts != 5 {
		t.Errorf("maxAccounts = %d, want clamped to 5", cfg.MaxAccounts)
	}
	if cfg.MaxTransactions != 9 {
		t.Errorf("maxTransactions = %d, want clamped to 9", cfg.MaxTransactions)
	}
	if cfg.MaxAmount != 300 {
		t.Errorf("maxAmount = %v, want clamped to 300", cfg.MaxAmount)
	}
}

func TestParseEmailDomains(t *testing.T) {
	got := ParseEmailDomains("Example.COM, bad_domain, test.org")
	want := []string{"example.com", "test.org"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseEmailDomains mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"example.com"}, ParseEmailDomains("")); diff != "" {
		t.Fatalf("empty input should yield default:\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a.com"}, ParseEmailDomains("a.com,A.COM, a.com ")); diff != "" {
		t.Fatalf("duplicates should collapse:\n%s", diff)
	}
	if diff := cmp.Diff([]string{"example.com"}, ParseEmailDomains("nodot, -bad.com, bad-.com")); diff != "" {
		t.Fatalf("invalid-only input should yield default:\n%s", diff)
	}
}
