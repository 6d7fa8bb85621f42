package workflow

import (
	"strings"

	"github.com/JunaidMachiyara/usmanglobal-books/config"
	"github.com/JunaidMachiyara/usmanglobal-books/models"
	"github.com/JunaidMachiyara/usmanglobal-books/store"
	"github.com/JunaidMachiyara/usmanglobal-books/utils"
	"github.com/sirupsen/logrus"
)

// CorrectionReport is the outcome of one cascaded deletion. Zero located
// dependents is not an error: legacy data predates the id conventions, so the
// source is removed and the gap is reported.
type CorrectionReport struct {
	SourceID              string   `json:"source_id"`
	JournalEntriesRemoved int      `json:"journal_entries_removed"`
	ProductionsRemoved    int      `json:"productions_removed"`
	SyntheticTypesRemoved int      `json:"synthetic_types_removed"`
	Warnings              []string `json:"warnings"`
}

// FindDependentJournalEntries locates the journal entries derived from a
// source document, in order of confidence:
//  1. explicit SourceDocumentID foreign key,
//  2. exact voucher-id convention (JV-, JV-FGP-, COGS-, AUTO-OPEN-),
//  3. substring fallback on description or legacy entry ids, engaged only
//     when the first two find nothing. Token matching keeps "PUR-001" from
//     catching entries of "PUR-0011".
func FindDependentJournalEntries(state *store.State, sourceID string) []*models.JournalEntry {
	var matched []*models.JournalEntry
	for _, e := range state.JournalEntries {
		if e.SourceDocumentID == sourceID {
			matched = append(matched, e)
		}
	}
	if len(matched) > 0 {
		return matched
	}

	vouchers := map[string]bool{
		"JV-" + sourceID:        true,
		"JV-FGP-" + sourceID:    true,
		"COGS-" + sourceID:      true,
		"AUTO-OPEN-" + sourceID: true,
	}
	for _, e := range state.JournalEntries {
		if vouchers[e.VoucherID] {
			matched = append(matched, e)
		}
	}
	if len(matched) > 0 {
		return matched
	}

	for _, e := range state.JournalEntries {
		if utils.ContainsToken(e.Description, sourceID) || strings.HasSuffix(e.ID, "-"+sourceID) {
			matched = append(matched, e)
		}
	}
	return matched
}

// FindDependentProductions locates production entries through their
// deterministic ids.
func FindDependentProductions(state *store.State, sourceID string) []*models.Production {
	var matched []*models.Production
	for _, p := range state.Productions {
		if models.IsProductionOf(p.ID, sourceID) {
			matched = append(matched, p)
		}
	}
	return matched
}

// findSyntheticTypes locates auto-created dummy original types belonging to a
// bale-to-raw transfer being deleted.
func findSyntheticTypes(state *store.State, sourceID string) []*models.OriginalType {
	var matched []*models.OriginalType
	for _, t := range state.OriginalTypes {
		if t.Synthetic && strings.HasSuffix(t.ID, sourceID) {
			matched = append(matched, t)
		}
	}
	return matched
}

// DeleteWithCascade removes a source document together with every dependent
// journal entry, production entry and synthetic type record, as one atomic
// batch. When no dependents are found the source is still deleted and the
// report carries a warning.
func DeleteWithCascade(st *store.Store, logger *logrus.Logger, collection store.Collection, sourceID string) (*CorrectionReport, error) {
	state := st.State()

	entries := FindDependentJournalEntries(state, sourceID)
	productions := FindDependentProductions(state, sourceID)
	types := findSyntheticTypes(state, sourceID)

	report := &CorrectionReport{
		SourceID:              sourceID,
		JournalEntriesRemoved: len(entries),
		ProductionsRemoved:    len(productions),
		SyntheticTypesRemoved: len(types),
	}
	if len(entries) == 0 && len(productions) == 0 {
		report.Warnings = append(report.Warnings,
			"no dependent accounting records found for "+sourceID+"; source document deleted alone")
	}

	commands := []store.Command{store.Delete(collection, sourceID)}
	for _, e := range entries {
		commands = append(commands, store.Delete(store.CollectionJournalEntries, e.ID))
	}
	for _, p := range productions {
		commands = append(commands, store.Delete(store.CollectionProductions, p.ID))
	}
	for _, t := range types {
		commands = append(commands, store.Delete(store.CollectionOriginalTypes, t.ID))
	}

	if err := st.Dispatch(store.Batch(commands...)); err != nil {
		config.LogError(logger, "reversal.go", "DeleteWithCascade", "Dispatch", sourceID, err)
		return nil, err
	}
	for _, w := range report.Warnings {
		config.LogWarn(logger, "reversal.go", "DeleteWithCascade", w)
	}
	return report, nil
}

// EditTargetKind discriminates what a correction tool is editing.
type EditTargetKind string

const (
	EditTargetInvoice      EditTargetKind = "Invoice"
	EditTargetVoucherLines EditTargetKind = "VoucherLines"
)

// EditTarget is the tagged union handed to the correction tools: either a
// whole invoice or a set of journal lines under one voucher.
type EditTarget struct {
	Kind         EditTargetKind         `json:"kind"`
	Invoice      *models.SalesInvoice   `json:"invoice,omitempty"`
	VoucherLines []*models.JournalEntry `json:"voucher_lines,omitempty"`
}

// OverwriteVoucherLines replaces the listed journal entries in place. This is
// the historical correction semantics: no reversing entries are issued, the
// original lines are mutated. Every line must already exist and the resulting
// voucher must still balance.
func OverwriteVoucherLines(st *store.Store, logger *logrus.Logger, lines []*models.JournalEntry) error {
	if len(lines) == 0 {
		return utils.NewValidationError("lines", "no journal lines supplied")
	}
	state := st.State()

	byVoucher := models.GroupByVoucher(lines)
	for voucherID, edited := range byVoucher {
		merged := map[string]*models.JournalEntry{}
		for _, e := range state.JournalEntries {
			if e.VoucherID == voucherID {
				merged[e.ID] = e
			}
		}
		for _, e := range edited {
			if _, ok := state.JournalEntries[e.ID]; !ok {
				return utils.NewValidationError("lines", "journal entry "+e.ID+" not found")
			}
			merged[e.ID] = e
		}
		all := make([]*models.JournalEntry, 0, len(merged))
		for _, e := range merged {
			all = append(all, e)
		}
		if !models.VoucherBalances(all) {
			return utils.ErrorUnbalanced
		}
	}

	commands := make([]store.Command, 0, len(lines))
	for _, e := range lines {
		commands = append(commands, store.Update(store.CollectionJournalEntries, e))
	}
	if err := st.Dispatch(store.Batch(commands...)); err != nil {
		config.LogError(logger, "reversal.go", "OverwriteVoucherLines", "Dispatch", nil, err)
		return err
	}
	return nil
}
