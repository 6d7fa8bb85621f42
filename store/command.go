package store

// Command vocabulary of the persistence collaborator. A BatchUpdate is the
// unit of atomicity: all actions apply or none do, so a transaction and its
// dependent journal lines can never be half-saved.

type CommandType string

const (
	CommandAddEntity             CommandType = "ADD_ENTITY"
	CommandUpdateEntity          CommandType = "UPDATE_ENTITY"
	CommandDeleteEntity          CommandType = "DELETE_ENTITY"
	CommandBatchUpdate           CommandType = "BATCH_UPDATE"
	CommandRestoreState          CommandType = "RESTORE_STATE"
	CommandHardResetTransactions CommandType = "HARD_RESET_TRANSACTIONS"
)

type Collection string

const (
	CollectionSuppliers        Collection = "suppliers"
	CollectionSubSuppliers     Collection = "subSuppliers"
	CollectionCustomers        Collection = "customers"
	CollectionAgents           Collection = "agents"
	CollectionOriginalTypes    Collection = "originalTypes"
	CollectionProducts         Collection = "products"
	CollectionDivisions        Collection = "divisions"
	CollectionSubDivisions     Collection = "subDivisions"
	CollectionItems            Collection = "items"
	CollectionPurchases        Collection = "purchases"
	CollectionBundlePurchases  Collection = "bundlePurchases"
	CollectionProductions      Collection = "productions"
	CollectionOriginalOpenings Collection = "originalOpenings"
	CollectionSalesInvoices    Collection = "salesInvoices"
	CollectionJournalEntries   Collection = "journalEntries"
	CollectionOngoingOrders    Collection = "ongoingOrders"
)

// Entity is anything the store can hold.
type Entity interface {
	GetId() string
}

type Command struct {
	Type       CommandType
	Collection Collection
	// Entity for AddEntity / UpdateEntity.
	Entity Entity
	// ID for DeleteEntity.
	ID string
	// Batch for BatchUpdate.
	Batch []Command
	// Snapshot for RestoreState.
	Snapshot *Snapshot
}

func Add(collection Collection, entity Entity) Command {
	return Command{Type: CommandAddEntity, Collection: collection, Entity: entity}
}

func Update(collection Collection, entity Entity) Command {
	return Command{Type: CommandUpdateEntity, Collection: collection, Entity: entity}
}

func Delete(collection Collection, id string) Command {
	return Command{Type: CommandDeleteEntity, Collection: collection, ID: id}
}

func Batch(commands ...Command) Command {
	return Command{Type: CommandBatchUpdate, Batch: commands}
}
