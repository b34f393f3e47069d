package fixture

import (
	"fmt"
	"math"

	"github.com/lastings-labs/bankgen/internal/datagen"
	"github.com/lastings-labs/bankgen/internal/lookup"
)

const (
	minAccountsPerClient = 1
	maxAccountsPerClient = 5
	minCardsPerSlot      = 1
	maxCardsPerSlot      = 5
	saltLength           = 64
	hashLength           = 128
)

// Pipeline runs the staged fixture generation. All mutable run state lives
// here: the identifier pools later stages sample from are fields, not globals.
type Pipeline struct {
	params Params
	gen    *datagen.Generator
	ds     *Dataset

	references        []string
	activatedAccounts []int
	activatedIBANs    []string
}

func NewPipeline(params Params, gen *datagen.Generator) *Pipeline {
	return &Pipeline{
		params: params,
		gen:    gen,
		ds:     &Dataset{},
	}
}

// Run executes every stage in dependency order and returns the dataset.
// Stages only ever reference identifiers issued by an earlier stage.
func (p *Pipeline) Run() (*Dataset, error) {
	stages := []struct {
		name string
		fn   func() error
	}{
		{"banks", p.buildBanks},
		{"currencies", p.buildCurrencies},
		{"stocks", p.buildStocks},
		{"clients", p.buildClients},
		{"client access", p.buildClientAccess},
		{"client sessions", p.buildClientSessions},
		{"accounts", p.buildAccounts},
		{"account links", p.linkAccounts},
		{"balances", p.buildBalances},
		{"cards", p.buildCards},
		{"bargains", p.buildBargains},
		{"account stocks", p.buildAccountStocks},
		{"loans", p.buildLoans},
	}
	for _, stage := range stages {
		if err := stage.fn(); err != nil {
			return nil, fmt.Errorf("stage %s: %w", stage.name, err)
		}
	}
	return p.ds, nil
}

func (p *Pipeline) buildBanks() error {
	for i := 0; i < p.params.Banks; i++ {
		sort, err := p.gen.SortCode()
		if err != nil {
			return err
		}
		p.ds.Banks = append(p.ds.Banks, Bank{
			ID:       i + 1,
			SortCode: sort,
			Swift:    p.gen.SwiftCode(),
		})
	}
	return nil
}

func (p *Pipeline) buildCurrencies() error {
	for i, cur := range lookup.Currencies() {
		p.ds.Currencies = append(p.ds.Currencies, Currency{
			ID:     i + 1,
			Code:   cur.Code,
			Symbol: cur.Symbol,
		})
	}
	return nil
}

func (p *Pipeline) buildStocks() error {
	for _, listing := range lookup.Listings() {
		buy := p.gen.Price()
		p.ds.Stocks = append(p.ds.Stocks, Stock{
			Code:      listing.Code,
			Name:      listing.Name,
			SellPrice: roundCents(buy * (1 - p.params.StockCommission)),
			BuyPrice:  buy,
		})
	}
	return nil
}

// buildClients creates one regional information row and one client per
// customer, linked by an explicit region ID.
func (p *Pipeline) buildClients() error {
	for i := 0; i < p.params.Customers; i++ {
		regionID := i + 1
		p.ds.Regions = append(p.ds.Regions, Region{
			ID:       regionID,
			Country:  lookup.CountryNames[p.gen.Int(0, len(lookup.CountryNames)-1)],
			Postcode: lookup.Postcodes[p.gen.Int(0, len(lookup.Postcodes)-1)],
			City:     lookup.Cities[p.gen.Int(0, len(lookup.Cities)-1)],
		})

		ref, err := p.gen.ReferenceNumber()
		if err != nil {
			return err
		}
		p.references = append(p.references, ref)

		var addr2 *string
		if p.gen.Bool() {
			room := p.gen.RoomString()
			addr2 = &room
		}

		p.ds.Clients = append(p.ds.Clients, Client{
			Reference: ref,
			FullName:  p.gen.FullName(),
			BirthDate: p.gen.Date(1900, 2003),
			Address:   p.gen.Address(),
			Address2:  addr2,
			RegionID:  regionID,
			Phone:     p.gen.PhoneNumber(),
		})
	}
	return nil
}

func (p *Pipeline) buildClientAccess() error {
	for _, client := range p.ds.Clients {
		p.ds.Access = append(p.ds.Access, ClientAccess{
			Reference:    client.Reference,
			PasswordSalt: p.gen.Salt(saltLength),
			PasswordHash: p.gen.Hash(hashLength),
		})
	}
	return nil
}

// buildClientSessions creates one session per customer, each attached to a
// uniformly random reference number rather than client i's own.
func (p *Pipeline) buildClientSessions() error {
	for i := 0; i < p.params.Customers; i++ {
		p.ds.Sessions = append(p.ds.Sessions, ClientSession{
			Reference:     p.randomReference(),
			IP:            p.gen.IP(),
			SecretKeySalt: p.gen.Salt(saltLength),
			SecretKeyHash: p.gen.Hash(hashLength),
			TokenSalt:     p.gen.Salt(saltLength),
			TokenHash:     p.gen.Hash(hashLength),
		})
	}
	return nil
}

func (p *Pipeline) buildAccounts() error {
	number := 0
	for i := 0; i < p.params.Customers; i++ {
		// One draw per customer so the count is uniform in [1, 5].
		n := p.gen.Int(minAccountsPerClient, maxAccountsPerClient)
		for j := 0; j < n; j++ {
			number++
			status := AccountWaitingForDeposit
			if p.gen.Bool() {
				status = AccountOpen
			}
			if status.Activated() {
				p.activatedAccounts = append(p.activatedAccounts, number)
			}
			p.ds.Accounts = append(p.ds.Accounts, Account{
				Number: number,
				Status: status,
				BankID: p.gen.Int(1, p.params.Banks),
			})
		}
	}
	return nil
}

// linkAccounts attaches each account to a random client and issues its IBAN.
func (p *Pipeline) linkAccounts() error {
	for _, acct := range p.ds.Accounts {
		p.ds.ClientAccounts = append(p.ds.ClientAccounts, ClientAccount{
			Reference:     p.randomReference(),
			AccountNumber: acct.Number,
		})

		iban := p.gen.IBAN(acct.Number)
		if acct.Status.Activated() {
			p.activatedIBANs = append(p.activatedIBANs, iban)
		}
		p.ds.IBANs = append(p.ds.IBANs, AccountIBAN{
			AccountNumber: acct.Number,
			IBAN:          iban,
		})
	}
	return nil
}

// buildBalances attaches balance rows, activated accounts only.
func (p *Pipeline) buildBalances() error {
	for _, number := range p.activatedAccounts {
		upper := p.gen.Int(2, len(p.ds.Currencies))
		for currencyID := 1; currencyID < upper; currencyID++ {
			p.ds.Balances = append(p.ds.Balances, AccountBalance{
				AccountNumber: number,
				CurrencyID:    currencyID,
				Amount:        p.gen.Int(-10000, 10000),
			})
		}
	}
	return nil
}

// buildCards issues 1-5 cards per activated account slot. Each card is then
// linked to a random activated account, not necessarily the slot's own.
func (p *Pipeline) buildCards() error {
	cardID := 0
	for range p.activatedAccounts {
		n := p.gen.Int(minCardsPerSlot, maxCardsPerSlot)
		for j := 0; j < n; j++ {
			cardID++
			p.ds.Cards = append(p.ds.Cards, Card{
				ID:       cardID,
				Salt:     p.gen.Salt(saltLength),
				CardHash: p.gen.Hash(hashLength),
				CVVHash:  p.gen.Hash(hashLength),
				PINHash:  p.gen.Hash(hashLength),
			})
		}
	}

	for id := 1; id <= cardID; id++ {
		p.ds.AccountCards = append(p.ds.AccountCards, AccountCard{
			CardID:        id,
			AccountNumber: p.randomActivatedAccount(),
			MainCurrency:  p.gen.Int(1, len(p.ds.Currencies)),
		})
		p.ds.CardLimits = append(p.ds.CardLimits, CardLimit{
			CardID: id,
			Amount: p.gen.Int(0, 100000),
		})
	}
	return nil
}

// buildAccountStocks attaches the first k listings to each activated account.
func (p *Pipeline) buildAccountStocks() error {
	for _, number := range p.activatedAccounts {
		count := p.gen.Int(1, len(p.ds.Stocks))
		for j := 0; j < count; j++ {
			p.ds.AccountStocks = append(p.ds.AccountStocks, AccountStock{
				AccountNumber: number,
				StockCode:     p.ds.Stocks[j].Code,
				Shares:        p.gen.Int(1, 1000),
			})
		}
	}
	return nil
}

func (p *Pipeline) randomReference() string {
	return p.references[p.gen.Int(0, len(p.references)-1)]
}

func (p *Pipeline) randomActivatedAccount() int {
	return p.activatedAccounts[p.gen.Int(0, len(p.activatedAccounts)-1)]
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
