package fixture

import (
	"github.com/lastings-labs/bankgen/internal/lookup"
)

// buildLoans creates one loan per two accounts (rounded up), a payment
// schedule per loan, and links each loan to a random activated account.
func (p *Pipeline) buildLoans() error {
	count := (len(p.ds.Accounts) + 1) / 2
	horizon := p.params.RunDate.AddDate(1, 0, 0)

	for id := 1; id <= count; id++ {
		given := p.gen.Int(1, 100000)
		p.ds.Loans = append(p.ds.Loans, Loan{
			ID:           id,
			GivenAmount:  given,
			RepaidAmount: p.gen.Int(0, given),
			CurrencyID:   p.gen.Int(1, len(p.ds.Currencies)),
		})

		first := p.gen.DateBetween(p.params.RunDate, horizon)
		p.ds.LoanPayments = append(p.ds.LoanPayments, LoanPayment{
			LoanID:           id,
			ExpectedPayments: lookup.InstallmentCounts[p.gen.Int(0, len(lookup.InstallmentCounts)-1)],
			FirstPaymentDate: first,
			PaymentDueDate:   first + " 23:59:59",
		})

		if len(p.activatedAccounts) > 0 {
			p.ds.AccountLoans = append(p.ds.AccountLoans, AccountLoan{
				AccountNumber: p.randomActivatedAccount(),
				LoanID:        id,
				PaymentRate:   p.gen.Int(1, 250000),
			})
		}
	}
	return nil
}
