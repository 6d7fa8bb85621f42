package store

import (
	"fmt"
	"maps"
	"sync"

	"github.com/JunaidMachiyara/usmanglobal-books/models"
	"github.com/JunaidMachiyara/usmanglobal-books/utils"
)

// State holds every entity collection. Readers treat it as immutable; all
// mutation goes through Store.Dispatch.
type State struct {
	Suppliers        map[string]*models.Supplier
	SubSuppliers     map[string]*models.SubSupplier
	Customers        map[string]*models.Customer
	Agents           map[string]*models.Agent
	OriginalTypes    map[string]*models.OriginalType
	Products         map[string]*models.Product
	Divisions        map[string]*models.Division
	SubDivisions     map[string]*models.SubDivision
	Items            map[string]*models.Item
	Purchases        map[string]*models.Purchase
	BundlePurchases  map[string]*models.BundlePurchase
	Productions      map[string]*models.Production
	OriginalOpenings map[string]*models.OriginalOpening
	SalesInvoices    map[string]*models.SalesInvoice
	JournalEntries   map[string]*models.JournalEntry
	OngoingOrders    map[string]*models.OngoingOrder
}

func newState() *State {
	return &State{
		Suppliers:        map[string]*models.Supplier{},
		SubSuppliers:     map[string]*models.SubSupplier{},
		Customers:        map[string]*models.Customer{},
		Agents:           map[string]*models.Agent{},
		OriginalTypes:    map[string]*models.OriginalType{},
		Products:         map[string]*models.Product{},
		Divisions:        map[string]*models.Division{},
		SubDivisions:     map[string]*models.SubDivision{},
		Items:            map[string]*models.Item{},
		Purchases:        map[string]*models.Purchase{},
		BundlePurchases:  map[string]*models.BundlePurchase{},
		Productions:      map[string]*models.Production{},
		OriginalOpenings: map[string]*models.OriginalOpening{},
		SalesInvoices:    map[string]*models.SalesInvoice{},
		JournalEntries:   map[string]*models.JournalEntry{},
		OngoingOrders:    map[string]*models.OngoingOrder{},
	}
}

func (s *State) clone() *State {
	return &State{
		Suppliers:        maps.Clone(s.Suppliers),
		SubSuppliers:     maps.Clone(s.SubSuppliers),
		Customers:        maps.Clone(s.Customers),
		Agents:           maps.Clone(s.Agents),
		OriginalTypes:    maps.Clone(s.OriginalTypes),
		Products:         maps.Clone(s.Products),
		Divisions:        maps.Clone(s.Divisions),
		SubDivisions:     maps.Clone(s.SubDivisions),
		Items:            maps.Clone(s.Items),
		Purchases:        maps.Clone(s.Purchases),
		BundlePurchases:  maps.Clone(s.BundlePurchases),
		Productions:      maps.Clone(s.Productions),
		OriginalOpenings: maps.Clone(s.OriginalOpenings),
		SalesInvoices:    maps.Clone(s.SalesInvoices),
		JournalEntries:   maps.Clone(s.JournalEntries),
		OngoingOrders:    maps.Clone(s.OngoingOrders),
	}
}

// Store is the single source of truth. Single-writer: every mutation is a
// discrete command applied under the writer lock. Commands are not retried and
// not cancellable once dispatched.
type Store struct {
	mu       sync.RWMutex
	state    *State
	counters map[string]int
}

func NewStore() *Store {
	return &Store{
		state:    newState(),
		counters: map[string]int{},
	}
}

// State returns the current snapshot. Callers must not mutate it.
func (s *Store) State() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// NextSequence is increment-and-fetch for a named counter (invoice, order and
// bundle-purchase numbering).
func (s *Store) NextSequence(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[name]++
	return s.counters[name]
}

// AllocateBaleRange consumes count bale numbers from the item's monotonic
// counter and returns the inclusive [start, end] serial range.
func (s *Store) AllocateBaleRange(itemID string, count int) (int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.state.Items[itemID]
	if !ok {
		return 0, 0, utils.ErrorRecordNotFound
	}
	next := s.state.clone()
	updated := *item
	if updated.NextBaleNumber == 0 {
		updated.NextBaleNumber = 1
	}
	start := updated.NextBaleNumber
	end := start + count - 1
	updated.NextBaleNumber = end + 1
	next.Items[itemID] = &updated
	s.state = next
	return start, end, nil
}

// Dispatch applies one command. BatchUpdate applies against a clone of the
// state and swaps it in only when every action succeeds, so a failing action
// leaves nothing applied.
func (s *Store) Dispatch(cmd Command) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.clone()
	if err := apply(next, cmd, s); err != nil {
		return err
	}
	s.state = next
	return nil
}

func apply(state *State, cmd Command, s *Store) error {
	switch cmd.Type {
	case CommandAddEntity:
		return applyAdd(state, cmd.Collection, cmd.Entity)
	case CommandUpdateEntity:
		return applyUpdate(state, cmd.Collection, cmd.Entity)
	case CommandDeleteEntity:
		return applyDelete(state, cmd.Collection, cmd.ID)
	case CommandBatchUpdate:
		for _, c := range cmd.Batch {
			if c.Type == CommandBatchUpdate {
				return fmt.Errorf("nested BATCH_UPDATE is not allowed")
			}
			if err := apply(state, c, s); err != nil {
				return err
			}
		}
		return nil
	case CommandRestoreState:
		if cmd.Snapshot == nil {
			return fmt.Errorf("RESTORE_STATE requires a snapshot")
		}
		restored, counters, err := cmd.Snapshot.toState()
		if err != nil {
			return err
		}
		*state = *restored
		s.counters = counters
		return nil
	case CommandHardResetTransactions:
		state.Purchases = map[string]*models.Purchase{}
		state.BundlePurchases = map[string]*models.BundlePurchase{}
		state.Productions = map[string]*models.Production{}
		state.OriginalOpenings = map[string]*models.OriginalOpening{}
		state.SalesInvoices = map[string]*models.SalesInvoice{}
		state.JournalEntries = map[string]*models.JournalEntry{}
		state.OngoingOrders = map[string]*models.OngoingOrder{}
		s.counters = map[string]int{}
		return nil
	}
	return fmt.Errorf("unknown command type %q", cmd.Type)
}

func addTo[T Entity](m map[string]T, e Entity, collection Collection) error {
	v, ok := e.(T)
	if !ok {
		return fmt.Errorf("wrong entity type %T for collection %s", e, collection)
	}
	if _, exists := m[v.GetId()]; exists {
		return fmt.Errorf("duplicate id %q in collection %s", v.GetId(), collection)
	}
	m[v.GetId()] = v
	return nil
}

func updateIn[T Entity](m map[string]T, e Entity, collection Collection) error {
	v, ok := e.(T)
	if !ok {
		return fmt.Errorf("wrong entity type %T for collection %s", e, collection)
	}
	if _, exists := m[v.GetId()]; !exists {
		return fmt.Errorf("%w: id %q in collection %s", utils.ErrorRecordNotFound, v.GetId(), collection)
	}
	m[v.GetId()] = v
	return nil
}

func deleteFrom[T Entity](m map[string]T, id string, collection Collection) error {
	if _, exists := m[id]; !exists {
		return fmt.Errorf("%w: id %q in collection %s", utils.ErrorRecordNotFound, id, collection)
	}
	delete(m, id)
	return nil
}

func applyAdd(state *State, collection Collection, e Entity) error {
	if e == nil {
		return fmt.Errorf("ADD_ENTITY requires an entity")
	}
	switch collection {
	case CollectionSuppliers:
		return addTo(state.Suppliers, e, collection)
	case CollectionSubSuppliers:
		return addTo(state.SubSuppliers, e, collection)
	case CollectionCustomers:
		return addTo(state.Customers, e, collection)
	case CollectionAgents:
		return addTo(state.Agents, e, collection)
	case CollectionOriginalTypes:
		return addTo(state.OriginalTypes, e, collection)
	case CollectionProducts:
		return addTo(state.Products, e, collection)
	case CollectionDivisions:
		return addTo(state.Divisions, e, collection)
	case CollectionSubDivisions:
		return addTo(state.SubDivisions, e, collection)
	case CollectionItems:
		return addTo(state.Items, e, collection)
	case CollectionPurchases:
		return addTo(state.Purchases, e, collection)
	case CollectionBundlePurchases:
		return addTo(state.BundlePurchases, e, collection)
	case CollectionProductions:
		return addTo(state.Productions, e, collection)
	case CollectionOriginalOpenings:
		return addTo(state.OriginalOpenings, e, collection)
	case CollectionSalesInvoices:
		return addTo(state.SalesInvoices, e, collection)
	case CollectionJournalEntries:
		return addTo(state.JournalEntries, e, collection)
	case CollectionOngoingOrders:
		return addTo(state.OngoingOrders, e, collection)
	}
	return fmt.Errorf("unknown collection %q", collection)
}

func applyUpdate(state *State, collection Collection, e Entity) error {
	if e == nil {
		return fmt.Errorf("UPDATE_ENTITY requires an entity")
	}
	switch collection {
	case CollectionSuppliers:
		return updateIn(state.Suppliers, e, collection)
	case CollectionSubSuppliers:
		return updateIn(state.SubSuppliers, e, collection)
	case CollectionCustomers:
		return updateIn(state.Customers, e, collection)
	case CollectionAgents:
		return updateIn(state.Agents, e, collection)
	case CollectionOriginalTypes:
		return updateIn(state.OriginalTypes, e, collection)
	case CollectionProducts:
		return updateIn(state.Products, e, collection)
	case CollectionDivisions:
		return updateIn(state.Divisions, e, collection)
	case CollectionSubDivisions:
		return updateIn(state.SubDivisions, e, collection)
	case CollectionItems:
		return updateIn(state.Items, e, collection)
	case CollectionPurchases:
		return updateIn(state.Purchases, e, collection)
	case CollectionBundlePurchases:
		return updateIn(state.BundlePurchases, e, collection)
	case CollectionProductions:
		return updateIn(state.Productions, e, collection)
	case CollectionOriginalOpenings:
		return updateIn(state.OriginalOpenings, e, collection)
	case CollectionSalesInvoices:
		return updateIn(state.SalesInvoices, e, collection)
	case CollectionJournalEntries:
		return updateIn(state.JournalEntries, e, collection)
	case CollectionOngoingOrders:
		return updateIn(state.OngoingOrders, e, collection)
	}
	return fmt.Errorf("unknown collection %q", collection)
}

func applyDelete(state *State, collection Collection, id string) error {
	switch collection {
	case CollectionSuppliers:
		return deleteFrom(state.Suppliers, id, collection)
	case CollectionSubSuppliers:
		return deleteFrom(state.SubSuppliers, id, collection)
	case CollectionCustomers:
		return deleteFrom(state.Customers, id, collection)
	case CollectionAgents:
		return deleteFrom(state.Agents, id, collection)
	case CollectionOriginalTypes:
		return deleteFrom(state.OriginalTypes, id, collection)
	case CollectionProducts:
		return deleteFrom(state.Products, id, collection)
	case CollectionDivisions:
		return deleteFrom(state.Divisions, id, collection)
	case CollectionSubDivisions:
		return deleteFrom(state.SubDivisions, id, collection)
	case CollectionItems:
		return deleteFrom(state.Items, id, collection)
	case CollectionPurchases:
		return deleteFrom(state.Purchases, id, collection)
	case CollectionBundlePurchases:
		return deleteFrom(state.BundlePurchases, id, collection)
	case CollectionProductions:
		return deleteFrom(state.Productions, id, collection)
	case CollectionOriginalOpenings:
		return deleteFrom(state.OriginalOpenings, id, collection)
	case CollectionSalesInvoices:
		return deleteFrom(state.SalesInvoices, id, collection)
	case CollectionJournalEntries:
		return deleteFrom(state.JournalEntries, id, collection)
	case CollectionOngoingOrders:
		return deleteFrom(state.OngoingOrders, id, collection)
	}
	return fmt.Errorf("unknown collection %q", collection)
}
