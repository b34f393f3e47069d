package verify

import (
	"strings"
	"testing"

	"github.com/Masterminds/squirrel"
)

func TestChecksBuildValidSQL(t *testing.T) {
	for _, format := range []squirrel.PlaceholderFormat{squirrel.Question, squirrel.Dollar} {
		qb := squirrel.StatementBuilder.PlaceholderFormat(format)
		for _, check := range Checks() {
			query, _, err := check.query(qb).ToSql()
			if err != nil {
				t.Errorf("Check %s failed to build: %v", check.Name, err)
				continue
			}
			if !strings.HasPrefix(query, "SELECT COUNT(*)") {
				t.Errorf("Check %s should count violations, got query: %s", check.Name, query)
			}
		}
	}
}

func TestChecksCoverEveryLinkTable(t *testing.T) {
	covered := make(map[string]bool)
	qb := squirrel.StatementBuilder
	for _, check := range Checks() {
		query, _, err := check.query(qb).ToSql()
		if err != nil {
			t.Fatalf("Check %s failed to build: %v", check.Name, err)
		}
		for _, table := range []string{
			"client_account", "client_access", "customer_sessions", "account_IBAN",
			"account_balance", "account_card", "card_daily_limit", "local_bargain",
			"international_bargain", "outgoing_bargain", "incoming_bargain",
			"account_stock", "loan_payment", "account_loan",
		} {
			if strings.Contains(query, table) {
				covered[table] = true
			}
		}
	}

	for _, table := range []string{
		"client_account", "client_access", "customer_sessions", "account_IBAN",
		"account_balance", "account_card", "card_daily_limit", "local_bargain",
		"international_bargain", "outgoing_bargain", "incoming_bargain",
		"account_stock", "loan_payment", "account_loan",
	} {
		if !covered[table] {
			t.Errorf("No integrity check covers table %s", table)
		}
	}
}

func TestOrphanCheckShape(t *testing.T) {
	check := orphanCheck("account_IBAN → account", "account_IBAN", "account_number", "account", "account_number")

	query, _, err := check.query(squirrel.StatementBuilder).ToSql()
	if err != nil {
		t.Fatalf("Failed to build orphan check: %v", err)
	}
	if !strings.Contains(query, "LEFT JOIN account p ON c.account_number = p.account_number") {
		t.Errorf("Orphan check missing join clause: %s", query)
	}
	if !strings.Contains(query, "p.account_number IS NULL") {
		t.Errorf("Orphan check missing null filter: %s", query)
	}
}

func TestPlaceholderFormat(t *testing.T) {
	if placeholderFormat("postgres") != squirrel.Dollar {
		t.Error("Expected dollar placeholders for postgres")
	}
	if placeholderFormat("postgresql") != squirrel.Dollar {
		t.Error("Expected dollar placeholders for postgresql")
	}
	if placeholderFormat("mysql") != squirrel.Question {
		t.Error("Expected question placeholders for mysql")
	}
	if placeholderFormat("sqlite3") != squirrel.Question {
		t.Error("Expected question placeholders for sqlite3")
	}
}
