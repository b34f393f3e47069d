// Package fixture builds an internally consistent synthetic dataset for the
// retail-banking schema: banks, clients, accounts, cards, bargains, stocks and
// loans, with every cross-table reference pointing at a generated row.
package fixture

import "time"

// AccountStatus is the lifecycle state of an account at generation time.
type AccountStatus int

const (
	AccountWaitingForDeposit AccountStatus = iota
	AccountOpen
)

func (s AccountStatus) String() string {
	switch s {
	case AccountWaitingForDeposit:
		return "Waiting for Deposit"
	case AccountOpen:
		return "Open"
	}
	return "Unknown"
}

// Activated reports whether the account may hold balances, cards and stocks.
func (s AccountStatus) Activated() bool {
	return s != AccountWaitingForDeposit
}

// BargainStatus is the settlement state of a bargain. The spelling of
// BargainSuccesful matches the target schema's status values.
type BargainStatus int

const (
	BargainWaitingForDate BargainStatus = iota
	BargainPending
	BargainFailed
	BargainSuccesful
)

var allBargainStatuses = []BargainStatus{
	BargainWaitingForDate,
	BargainPending,
	BargainFailed,
	BargainSuccesful,
}

func (s BargainStatus) String() string {
	switch s {
	case BargainWaitingForDate:
		return "Waiting for Date"
	case BargainPending:
		return "Pending"
	case BargainFailed:
		return "Failed"
	case BargainSuccesful:
		return "Succesful"
	}
	return "Unknown"
}

type Bank struct {
	ID       int
	SortCode string
	Swift    string
}

type Currency struct {
	ID     int
	Code   string
	Symbol string
}

type Stock struct {
	Code      string
	Name      string
	SellPrice float64
	BuyPrice  float64
}

type Region struct {
	ID       int
	Country  string
	Postcode string
	City     string
}

// Client is one client_details row. Address2 is optional; RegionID is an
// explicit reference to the Region generated for this client.
type Client struct {
	Reference string
	FullName  string
	BirthDate string
	Address   string
	Address2  *string
	RegionID  int
	Phone     string
}

type ClientAccess struct {
	Reference    string
	PasswordSalt string
	PasswordHash string
}

// ClientSession carries login material for a randomly chosen client. The token
// expiry column is emitted as a relative SQL expression, not stored here.
type ClientSession struct {
	Reference     string
	IP            string
	SecretKeySalt string
	SecretKeyHash string
	TokenSalt     string
	TokenHash     string
}

type Account struct {
	Number int
	Status AccountStatus
	BankID int
}

// ClientAccount links an account to a uniformly random client, deliberately
// not necessarily the client the account was created for.
type ClientAccount struct {
	Reference     string
	AccountNumber int
}

type AccountIBAN struct {
	AccountNumber int
	IBAN          string
}

type AccountBalance struct {
	AccountNumber int
	CurrencyID    int
	Amount        int
}

type Card struct {
	ID              int
	Salt            string
	CardHash        string
	CVVHash         string
	PINHash         string
	ShoppingEnabled bool
	Frozen          bool
}

type AccountCard struct {
	CardID        int
	AccountNumber int
	MainCurrency  int
}

type CardLimit struct {
	CardID int
	Amount int
}

type Bargain struct {
	ID         int
	Amount     float64
	CurrencyID int
	Status     BargainStatus
	Date       string
}

type LocalBargain struct {
	BargainID       int
	SenderAccount   int
	ReceiverAccount int
}

type InternationalBargain struct {
	BargainID    int
	SenderIBAN   string
	ReceiverIBAN string
}

type OutgoingBargain struct {
	BargainID   int
	PlannedDate string
}

type IncomingBargain struct {
	BargainID   int
	ReceiptDate string
}

type AccountStock struct {
	AccountNumber int
	StockCode     string
	Shares        int
}

type Loan struct {
	ID           int
	GivenAmount  int
	RepaidAmount int
	CurrencyID   int
}

type LoanPayment struct {
	LoanID           int
	ExpectedPayments int
	FirstPaymentDate string
	PaymentDueDate   string
}

type AccountLoan struct {
	AccountNumber int
	LoanID        int
	PaymentRate   int
}

// Dataset is the full output of one pipeline run, slices ordered by table
// dependency so that emission in struct order never forward-references.
type Dataset struct {
	Banks                 []Bank
	Currencies            []Currency
	Stocks                []Stock
	Regions               []Region
	Clients               []Client
	Access                []ClientAccess
	Sessions              []ClientSession
	Accounts              []Account
	ClientAccounts        []ClientAccount
	IBANs                 []AccountIBAN
	Balances              []AccountBalance
	Cards                 []Card
	AccountCards          []AccountCard
	CardLimits            []CardLimit
	Bargains              []Bargain
	LocalBargains         []LocalBargain
	InternationalBargains []InternationalBargain
	OutgoingBargains      []OutgoingBargain
	IncomingBargains      []IncomingBargain
	AccountStocks         []AccountStock
	Loans                 []Loan
	LoanPayments          []LoanPayment
	AccountLoans          []AccountLoan
}

// Params configures one pipeline run.
type Params struct {
	Banks                  int
	Customers              int
	MaxTransactionsPerAcct int
	StockCommission        float64
	BankOpeningDate        time.Time
	RunDate                time.Time
}
