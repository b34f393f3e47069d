// Package verify runs referential-integrity checks against a database that a
// generated fixture file has been loaded into.
package verify

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
)

// Check is one integrity rule; its query returns the number of violating rows.
type Check struct {
	Name  string
	query func(qb squirrel.StatementBuilderType) squirrel.SelectBuilder
}

// Result is a completed check. Zero violations means the rule holds.
type Result struct {
	Name       string
	Violations int64
}

func orphanCheck(name, child, childKey, parent, parentKey string) Check {
	return Check{
		Name: name,
		query: func(qb squirrel.StatementBuilderType) squirrel.SelectBuilder {
			return qb.Select("COUNT(*)").
				From(child + " c").
				LeftJoin(fmt.Sprintf("%s p ON c.%s = p.%s", parent, childKey, parentKey)).
				Where(fmt.Sprintf("p.%s IS NULL", parentKey))
		},
	}
}

// Checks returns every integrity rule in report order: orphan detection for
// each link table, sort code uniqueness, and IBAN shape.
func Checks() []Check {
	checks := []Check{
		orphanCheck("client_account → client_details", "client_account", "reference_number", "client_details", "reference_number"),
		orphanCheck("client_account → account", "client_account", "account_number", "account", "account_number"),
		orphanCheck("client_access → client_details", "client_access", "reference_number", "client_details", "reference_number"),
		orphanCheck("customer_sessions → client_details", "customer_sessions", "reference_number", "client_details", "reference_number"),
		orphanCheck("account → bank_information", "account", "bank_ID", "bank_information", "bank_ID"),
		orphanCheck("account_IBAN → account", "account_IBAN", "account_number", "account", "account_number"),
		orphanCheck("account_balance → account", "account_balance", "account_number", "account", "account_number"),
		orphanCheck("account_balance → currency_list", "account_balance", "currency_ID", "currency_list", "currency_ID"),
		orphanCheck("account_card → card_details", "account_card", "card_ID", "card_details", "card_ID"),
		orphanCheck("account_card → account", "account_card", "account_number", "account", "account_number"),
		orphanCheck("card_daily_limit → card_details", "card_daily_limit", "card_ID", "card_details", "card_ID"),
		orphanCheck("bargain → currency_list", "bargain", "currency_ID", "currency_list", "currency_ID"),
		orphanCheck("local_bargain → bargain", "local_bargain", "bargain_ID", "bargain", "bargain_ID"),
		orphanCheck("international_bargain → bargain", "international_bargain", "bargain_ID", "bargain", "bargain_ID"),
		orphanCheck("outgoing_bargain → bargain", "outgoing_bargain", "bargain_ID", "bargain", "bargain_ID"),
		orphanCheck("incoming_bargain → bargain", "incoming_bargain", "bargain_ID", "bargain", "bargain_ID"),
		orphanCheck("account_stock → account", "account_stock", "account_number", "account", "account_number"),
		orphanCheck("account_stock → stock", "account_stock", "stock_code", "stock", "stock_code"),
		orphanCheck("loan_payment → loan", "loan_payment", "loan_ID", "loan", "loan_ID"),
		orphanCheck("account_loan → loan", "account_loan", "loan_ID", "loan", "loan_ID"),
		orphanCheck("account_loan → account", "account_loan", "account_number", "account", "account_number"),
	}

	checks = append(checks,
		Check{
			Name: "sort codes pairwise distinct",
			query: func(qb squirrel.StatementBuilderType) squirrel.SelectBuilder {
				return qb.Select("COUNT(*) - COUNT(DISTINCT sort_code)").From("bank_information")
			},
		},
		Check{
			Name: "IBAN length is 24",
			query: func(qb squirrel.StatementBuilderType) squirrel.SelectBuilder {
				return qb.Select("COUNT(*)").From("account_IBAN").Where("LENGTH(IBAN) <> 24")
			},
		},
		Check{
			Name: "local bargain endpoints distinct",
			query: func(qb squirrel.StatementBuilderType) squirrel.SelectBuilder {
				return qb.Select("COUNT(*)").From("local_bargain").
					Where("sender_account_number = receiver_account_number")
			},
		},
		Check{
			Name: "international bargain endpoints distinct",
			query: func(qb squirrel.StatementBuilderType) squirrel.SelectBuilder {
				return qb.Select("COUNT(*)").From("international_bargain").
					Where("sender_IBAN = receiver_IBAN")
			},
		},
	)

	return checks
}

// Run executes every check and returns the results. Query failures abort the
// run; a violation count is a finding, not an error.
func Run(db *sql.DB, provider string) ([]Result, error) {
	qb := squirrel.StatementBuilder.PlaceholderFormat(placeholderFormat(provider))

	var results []Result
	for _, check := range Checks() {
		query, args, err := check.query(qb).ToSql()
		if err != nil {
			return nil, fmt.Errorf("check %s: failed to build query: %w", check.Name, err)
		}

		var violations int64
		if err := db.QueryRow(query, args...).Scan(&violations); err != nil {
			return nil, fmt.Errorf("check %s: %w", check.Name, err)
		}
		results = append(results, Result{Name: check.Name, Violations: violations})
	}
	return results, nil
}

func placeholderFormat(provider string) squirrel.PlaceholderFormat {
	switch provider {
	case "postgresql", "postgres":
		return squirrel.Dollar
	default:
		return squirrel.Question
	}
}
