package sqlfile

import (
	"github.com/lastings-labs/bankgen/internal/fixture"
)

// tokenExpiry is the session expiry column value, relative to insert time.
const tokenExpiry = Raw("DATE_ADD(NOW(), INTERVAL 1 HOUR)")

// TableNames returns the emitted table names in dependency order.
func TableNames() []string {
	tables := Tables(&fixture.Dataset{})
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.Name
	}
	return names
}

// Tables maps a dataset onto the target schema's tables in dependency order.
// Column names, including the schema's historical spellings (adress,
// Succesful), follow the schema exactly.
func Tables(ds *fixture.Dataset) []Table {
	tables := []Table{
		{Name: "bank_information", Columns: []string{"bank_ID", "sort_code", "SWIFT"}},
		{Name: "currency_list", Columns: []string{"currency_ID", "alphabetic_code", "symbol"}},
		{Name: "stock", Columns: []string{"stock_code", "stock_name", "sell_price", "buy_price"}},
		{Name: "regional_information", Columns: []string{"regional_information_ID", "country_name", "postcode", "city_name"}},
		{Name: "client_details", Columns: []string{"reference_number", "full_name", "birth_date", "adress", "adress_2", "regional_information_ID", "telephone_number"}},
		{Name: "client_access", Columns: []string{"reference_number", "password_salt", "password_hash"}},
		{Name: "customer_sessions", Columns: []string{"reference_number", "customer_IP", "secret_key_salt", "secret_key_hashed", "token_salt", "token_hashed", "token_expiry_date"}},
		{Name: "account", Columns: []string{"account_number", "account_status", "bank_ID"}},
		{Name: "client_account", Columns: []string{"reference_number", "account_number"}},
		{Name: "account_IBAN", Columns: []string{"account_number", "IBAN"}},
		{Name: "account_balance", Columns: []string{"account_number", "currency_ID", "amount"}},
		{Name: "card_details", Columns: []string{"card_ID", "card_salt", "card_hash", "CVV_hash", "PIN_hash", "internet_shopping_available", "frozen"}},
		{Name: "account_card", Columns: []string{"card_ID", "account_number", "card_main_currency"}},
		{Name: "card_daily_limit", Columns: []string{"card_ID", "limit_amount"}},
		{Name: "bargain", Columns: []string{"bargain_ID", "amount", "currency_ID", "bargain_status", "bargain_date"}},
		{Name: "local_bargain", Columns: []string{"bargain_ID", "sender_account_number", "receiver_account_number"}},
		{Name: "international_bargain", Columns: []string{"bargain_ID", "sender_IBAN", "receiver_IBAN"}},
		{Name: "outgoing_bargain", Columns: []string{"bargain_ID", "planned_date"}},
		{Name: "incoming_bargain", Columns: []string{"bargain_ID", "receipt_date"}},
		{Name: "account_stock", Columns: []string{"account_number", "stock_code", "shares"}},
		{Name: "loan", Columns: []string{"loan_ID", "given_amount", "repaid_amount", "currency_ID"}},
		{Name: "loan_payment", Columns: []string{"loan_ID", "total_expected_number_of_payments", "first_payment_date", "payment_due_date"}},
		{Name: "account_loan", Columns: []string{"account_number", "loan_ID", "payment_rate"}},
	}

	for _, b := range ds.Banks {
		tables[0].Rows = append(tables[0].Rows, []any{b.ID, b.SortCode, b.Swift})
	}
	for _, c := range ds.Currencies {
		tables[1].Rows = append(tables[1].Rows, []any{c.ID, c.Code, c.Symbol})
	}
	for _, s := range ds.Stocks {
		tables[2].Rows = append(tables[2].Rows, []any{s.Code, s.Name, s.SellPrice, s.BuyPrice})
	}
	for _, r := range ds.Regions {
		tables[3].Rows = append(tables[3].Rows, []any{r.ID, r.Country, r.Postcode, r.City})
	}
	for _, c := range ds.Clients {
		tables[4].Rows = append(tables[4].Rows, []any{c.Reference, c.FullName, c.BirthDate, c.Address, c.Address2, c.RegionID, c.Phone})
	}
	for _, a := range ds.Access {
		tables[5].Rows = append(tables[5].Rows, []any{a.Reference, a.PasswordSalt, a.PasswordHash})
	}
	for _, s := range ds.Sessions {
		tables[6].Rows = append(tables[6].Rows, []any{s.Reference, s.IP, s.SecretKeySalt, s.SecretKeyHash, s.TokenSalt, s.TokenHash, tokenExpiry})
	}
	for _, a := range ds.Accounts {
		tables[7].Rows = append(tables[7].Rows, []any{a.Number, a.Status.String(), a.BankID})
	}
	for _, ca := range ds.ClientAccounts {
		tables[8].Rows = append(tables[8].Rows, []any{ca.Reference, ca.AccountNumber})
	}
	for _, i := range ds.IBANs {
		tables[9].Rows = append(tables[9].Rows, []any{i.AccountNumber, i.IBAN})
	}
	for _, b := range ds.Balances {
		tables[10].Rows = append(tables[10].Rows, []any{b.AccountNumber, b.CurrencyID, b.Amount})
	}
	for _, c := range ds.Cards {
		tables[11].Rows = append(tables[11].Rows, []any{c.ID, c.Salt, c.CardHash, c.CVVHash, c.PINHash, c.ShoppingEnabled, c.Frozen})
	}
	for _, ac := range ds.AccountCards {
		tables[12].Rows = append(tables[12].Rows, []any{ac.CardID, ac.AccountNumber, ac.MainCurrency})
	}
	for _, cl := range ds.CardLimits {
		tables[13].Rows = append(tables[13].Rows, []any{cl.CardID, cl.Amount})
	}
	for _, b := range ds.Bargains {
		tables[14].Rows = append(tables[14].Rows, []any{b.ID, b.Amount, b.CurrencyID, b.Status.String(), b.Date})
	}
	for _, l := range ds.LocalBargains {
		tables[15].Rows = append(tables[15].Rows, []any{l.BargainID, l.SenderAccount, l.ReceiverAccount})
	}
	for _, i := range ds.InternationalBargains {
		tables[16].Rows = append(tables[16].Rows, []any{i.BargainID, i.SenderIBAN, i.ReceiverIBAN})
	}
	for _, o := range ds.OutgoingBargains {
		tables[17].Rows = append(tables[17].Rows, []any{o.BargainID, o.PlannedDate})
	}
	for _, in := range ds.IncomingBargains {
		tables[18].Rows = append(tables[18].Rows, []any{in.BargainID, in.ReceiptDate})
	}
	for _, s := range ds.AccountStocks {
		tables[19].Rows = append(tables[19].Rows, []any{s.AccountNumber, s.StockCode, s.Shares})
	}
	for _, l := range ds.Loans {
		tables[20].Rows = append(tables[20].Rows, []any{l.ID, l.GivenAmount, l.RepaidAmount, l.CurrencyID})
	}
	for _, lp := range ds.LoanPayments {
		tables[21].Rows = append(tables[21].Rows, []any{lp.LoanID, lp.ExpectedPayments, lp.FirstPaymentDate, lp.PaymentDueDate})
	}
	for _, al := range ds.AccountLoans {
		tables[22].Rows = append(tables[22].Rows, []any{al.AccountNumber, al.LoanID, al.PaymentRate})
	}

	return tables
}
