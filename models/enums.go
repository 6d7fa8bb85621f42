package models

type PackingType string

const (
	PackingTypeKg    PackingType = "Kg"
	PackingTypeBales PackingType = "Bales"
	PackingTypeSacks PackingType = "Sacks"
	PackingTypeBox   PackingType = "Box"
	PackingTypeBags  PackingType = "Bags"
)

func (p PackingType) IsValid() bool {
	switch p {
	case PackingTypeKg, PackingTypeBales, PackingTypeSacks, PackingTypeBox, PackingTypeBags:
		return true
	}
	return false
}

type InvoiceStatus string

const (
	InvoiceStatusUnposted InvoiceStatus = "Unposted"
	InvoiceStatusPosted   InvoiceStatus = "Posted"
)

type OrderStatus string

const (
	OrderStatusActive           OrderStatus = "Active"
	OrderStatusPartiallyShipped OrderStatus = "PartiallyShipped"
	OrderStatusCompleted        OrderStatus = "Completed"
	OrderStatusCancelled        OrderStatus = "Cancelled"
)

type EntityType string

const (
	EntityTypeSupplier EntityType = "Supplier"
	EntityTypeCustomer EntityType = "Customer"
	EntityTypeAgent    EntityType = "Agent"
)

// Chart of accounts. Fixed per the business; there is no account hierarchy.
type AccountCode string

const (
	AccountCodeAccountsPayable        AccountCode = "AP-001"
	AccountCodeAccountsReceivable     AccountCode = "AR-001"
	AccountCodeRevenue                AccountCode = "REV-001"
	AccountCodeRawMaterialExpense     AccountCode = "EXP-004"
	AccountCodeFreightExpense         AccountCode = "EXP-005"
	AccountCodeClearingExpense        AccountCode = "EXP-006"
	AccountCodeBundlePurchaseExpense  AccountCode = "EXP-007"
	AccountCodeCommissionExpense      AccountCode = "EXP-008"
	AccountCodeCostOfGoodsSold        AccountCode = "EXP-010"
	AccountCodeFinishedGoodsInventory AccountCode = "INV-FG-001"
)
