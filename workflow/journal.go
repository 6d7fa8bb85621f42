package workflow

import (
	"time"

	"github.com/JunaidMachiyara/usmanglobal-books/models"
	"github.com/shopspring/decimal"
)

// entryPair emits one balanced debit/credit pair under the given voucher.
// Entry ids derive from the source document id so the correction engine can
// find them again.
func entryPair(voucherID, context, sourceID, sourceType string, date time.Time,
	debitAccount, creditAccount models.AccountCode, amount decimal.Decimal,
	description string) (*models.JournalEntry, *models.JournalEntry) {

	debit := &models.JournalEntry{
		ID:                 models.JournalDebitID(context, sourceID),
		VoucherID:          voucherID,
		Date:               date,
		AccountCode:        debitAccount,
		Debit:              amount,
		Credit:             decimal.Zero,
		Description:        description,
		SourceDocumentID:   sourceID,
		SourceDocumentType: sourceType,
	}
	credit := &models.JournalEntry{
		ID:                 models.JournalCreditID(context, sourceID),
		VoucherID:          voucherID,
		Date:               date,
		AccountCode:        creditAccount,
		Debit:              decimal.Zero,
		Credit:             amount,
		Description:        description,
		SourceDocumentID:   sourceID,
		SourceDocumentType: sourceType,
	}
	return debit, credit
}

// chargeAccounts maps a landed-cost component name to its expense account.
var chargeAccounts = map[string]models.AccountCode{
	"freight":    models.AccountCodeFreightExpense,
	"clearing":   models.AccountCodeClearingExpense,
	"commission": models.AccountCodeCommissionExpense,
}

// chargeEntries emits the debit-expense / credit-payable pair for one cost
// charge, tagged with the agent entity and carrying the foreign value.
func chargeEntries(voucherID, context, sourceID, sourceType string, date time.Time,
	charge models.CostCharge, description string) []*models.JournalEntry {

	if !charge.Present() {
		return nil
	}
	debit, credit := entryPair(voucherID, context, sourceID, sourceType, date,
		chargeAccounts[context], models.AccountCodeAccountsPayable, charge.USD(), description)
	credit.EntityID = charge.AgentID
	credit.EntityType = models.EntityTypeAgent
	if charge.Currency != "" && charge.Currency != models.BaseCurrency {
		credit.OriginalAmount = &models.OriginalAmount{Amount: charge.Amount, Currency: charge.Currency}
	}
	return []*models.JournalEntry{debit, credit}
}
