package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/JunaidMachiyara/usmanglobal-books/models"
	"github.com/JunaidMachiyara/usmanglobal-books/utils"
)

// Snapshot is the full-state JSON backup format. Restoring one performs a
// full overwrite and is irreversible.
type Snapshot struct {
	Version          int                       `json:"version"`
	Suppliers        []*models.Supplier        `json:"suppliers"`
	SubSuppliers     []*models.SubSupplier     `json:"sub_suppliers"`
	Customers        []*models.Customer        `json:"customers"`
	Agents           []*models.Agent           `json:"agents"`
	OriginalTypes    []*models.OriginalType    `json:"original_types"`
	Products         []*models.Product         `json:"products"`
	Divisions        []*models.Division        `json:"divisions"`
	SubDivisions     []*models.SubDivision     `json:"sub_divisions"`
	Items            []*models.Item            `json:"items"`
	Purchases        []*models.Purchase        `json:"purchases"`
	BundlePurchases  []*models.BundlePurchase  `json:"bundle_purchases"`
	Productions      []*models.Production      `json:"productions"`
	OriginalOpenings []*models.OriginalOpening `json:"original_openings"`
	SalesInvoices    []*models.SalesInvoice    `json:"sales_invoices"`
	JournalEntries   []*models.JournalEntry    `json:"journal_entries"`
	OngoingOrders    []*models.OngoingOrder    `json:"ongoing_orders"`
	Counters         map[string]int            `json:"counters"`
}

const snapshotVersion = 1

func collect[T Entity](m map[string]T) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

func index[T Entity](list []T) map[string]T {
	m := make(map[string]T, len(list))
	for _, v := range list {
		m[v.GetId()] = v
	}
	return m
}

// Snapshot captures the current state for backup download.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counters := make(map[string]int, len(s.counters))
	for k, v := range s.counters {
		counters[k] = v
	}
	st := s.state
	return &Snapshot{
		Version:          snapshotVersion,
		Suppliers:        collect(st.Suppliers),
		SubSuppliers:     collect(st.SubSuppliers),
		Customers:        collect(st.Customers),
		Agents:           collect(st.Agents),
		OriginalTypes:    collect(st.OriginalTypes),
		Products:         collect(st.Products),
		Divisions:        collect(st.Divisions),
		SubDivisions:     collect(st.SubDivisions),
		Items:            collect(st.Items),
		Purchases:        collect(st.Purchases),
		BundlePurchases:  collect(st.BundlePurchases),
		Productions:      collect(st.Productions),
		OriginalOpenings: collect(st.OriginalOpenings),
		SalesInvoices:    collect(st.SalesInvoices),
		JournalEntries:   collect(st.JournalEntries),
		OngoingOrders:    collect(st.OngoingOrders),
		Counters:         counters,
	}
}

func (snap *Snapshot) toState() (*State, map[string]int, error) {
	if snap.Version > snapshotVersion {
		return nil, nil, fmt.Errorf("snapshot version %d is newer than supported %d", snap.Version, snapshotVersion)
	}
	counters := snap.Counters
	if counters == nil {
		counters = map[string]int{}
	}
	return &State{
		Suppliers:        index(snap.Suppliers),
		SubSuppliers:     index(snap.SubSuppliers),
		Customers:        index(snap.Customers),
		Agents:           index(snap.Agents),
		OriginalTypes:    index(snap.OriginalTypes),
		Products:         index(snap.Products),
		Divisions:        index(snap.Divisions),
		SubDivisions:     index(snap.SubDivisions),
		Items:            index(snap.Items),
		Purchases:        index(snap.Purchases),
		BundlePurchases:  index(snap.BundlePurchases),
		Productions:      index(snap.Productions),
		OriginalOpenings: index(snap.OriginalOpenings),
		SalesInvoices:    index(snap.SalesInvoices),
		JournalEntries:   index(snap.JournalEntries),
		OngoingOrders:    index(snap.OngoingOrders),
	}, counters, nil
}

func (snap *Snapshot) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := utils.UnmarshalFromJSON(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// SaveToFile persists the snapshot; used by the server on shutdown and by the
// backup tool.
func (s *Store) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.Snapshot().Write(f)
}

// LoadFromFile restores a snapshot from disk; a missing file leaves the store
// empty.
func (s *Store) LoadFromFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	snap, err := ReadSnapshot(f)
	if err != nil {
		return err
	}
	return s.Dispatch(Command{Type: CommandRestoreState, Snapshot: snap})
}
