package fixture

import (
	"fmt"
	"time"

	"github.com/lastings-labs/bankgen/internal/datagen"
)

// Fixed windows of the bargain calendar. Booked bargains carry a date between
// the bank opening date and the schedule window start; bargains still waiting
// for a date are planned inside the schedule window.
var (
	scheduleWindowStart = time.Date(2022, time.January, 15, 0, 0, 0, 0, time.UTC)
	scheduleWindowEnd   = time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)
)

const distinctPairRetries = 1000

// buildBargains creates 1..MaxTransactionsPerAcct bargains per activated
// account, then derives every dependent table: exactly one outgoing row per
// bargain, an incoming row only for Succesful bargains, and the endpoint
// tables splitting the run into an international first half and a local
// second half.
func (p *Pipeline) buildBargains() error {
	for range p.activatedAccounts {
		n := p.gen.Int(1, p.params.MaxTransactionsPerAcct)
		for j := 0; j < n; j++ {
			id := len(p.ds.Bargains) + 1
			p.ds.Bargains = append(p.ds.Bargains, Bargain{
				ID:         id,
				Amount:     p.gen.Price(),
				CurrencyID: p.gen.Int(1, len(p.ds.Currencies)),
				Status:     allBargainStatuses[p.gen.Int(0, len(allBargainStatuses)-1)],
				Date:       p.gen.DateBetween(p.params.BankOpeningDate, scheduleWindowStart) + " " + p.gen.TimeOfDay(),
			})
		}
	}

	if err := p.deriveBargainDates(); err != nil {
		return err
	}
	return p.deriveBargainEndpoints()
}

// deriveBargainDates fills outgoing and incoming rows from the bargain's own
// status. The status stored on the bargain is the one branched on here.
func (p *Pipeline) deriveBargainDates() error {
	for _, b := range p.ds.Bargains {
		var planned string
		switch b.Status {
		case BargainWaitingForDate:
			planned = p.gen.DateBetween(scheduleWindowStart, scheduleWindowEnd)
		case BargainPending:
			planned = p.params.RunDate.Format("2006/01/02")
		case BargainFailed, BargainSuccesful:
			planned = p.gen.DateBetween(p.params.BankOpeningDate, p.params.RunDate)
		}

		p.ds.OutgoingBargains = append(p.ds.OutgoingBargains, OutgoingBargain{
			BargainID:   b.ID,
			PlannedDate: planned + " " + p.gen.TimeOfDay(),
		})

		if b.Status == BargainSuccesful {
			p.ds.IncomingBargains = append(p.ds.IncomingBargains, IncomingBargain{
				BargainID:   b.ID,
				ReceiptDate: p.gen.DateBetween(p.params.BankOpeningDate, p.params.RunDate) + " " + p.gen.TimeOfDay(),
			})
		}
	}
	return nil
}

// deriveBargainEndpoints partitions bargains by generation order: the first
// half becomes international transfers between two distinct activated IBANs,
// the second half local transfers between two distinct activated accounts.
// Both stages need a pool of at least two and are skipped below that.
func (p *Pipeline) deriveBargainEndpoints() error {
	half := len(p.ds.Bargains) / 2

	if len(p.activatedIBANs) >= 2 {
		for i := 0; i < half; i++ {
			sender, receiver, err := p.distinctIndexes(len(p.activatedIBANs))
			if err != nil {
				return fmt.Errorf("international bargain %d: %w", i+1, err)
			}
			p.ds.InternationalBargains = append(p.ds.InternationalBargains, InternationalBargain{
				BargainID:    i + 1,
				SenderIBAN:   p.activatedIBANs[sender],
				ReceiverIBAN: p.activatedIBANs[receiver],
			})
		}
	}

	if len(p.activatedAccounts) >= 2 {
		for i := half; i < len(p.ds.Bargains); i++ {
			sender, receiver, err := p.distinctIndexes(len(p.activatedAccounts))
			if err != nil {
				return fmt.Errorf("local bargain %d: %w", i+1, err)
			}
			p.ds.LocalBargains = append(p.ds.LocalBargains, LocalBargain{
				BargainID:       i + 1,
				SenderAccount:   p.activatedAccounts[sender],
				ReceiverAccount: p.activatedAccounts[receiver],
			})
		}
	}
	return nil
}

// distinctIndexes samples two different indexes in [0, n), re-rolling until
// they differ.
func (p *Pipeline) distinctIndexes(n int) (int, int, error) {
	first := p.gen.Int(0, n-1)
	for attempt := 0; attempt < distinctPairRetries; attempt++ {
		second := p.gen.Int(0, n-1)
		if second != first {
			return first, second, nil
		}
	}
	return 0, 0, fmt.Errorf("distinct pair: %w", datagen.ErrGenerationExhausted)
}
