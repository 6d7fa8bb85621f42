package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceLine struct {
	ItemID         string          `json:"item_id" binding:"required"`
	Quantity       decimal.Decimal `json:"quantity" binding:"required"`
	Rate           decimal.Decimal `json:"rate" binding:"required"`
	Currency       string          `json:"currency" binding:"omitempty,currency"`
	ConversionRate decimal.Decimal `json:"conversion_rate"`
}

// DirectSalesDetails links an invoice to a specific raw-purchase batch for
// direct (unprocessed) resale; cost of goods comes from that batch's landed
// cost instead of the item's average price.
type DirectSalesDetails struct {
	PurchaseID string          `json:"purchase_id"`
	SoldKg     decimal.Decimal `json:"sold_kg"`
}

// SalesInvoice. Status moves Unposted -> Posted only; only Posted invoices
// count toward stock deduction and revenue.
type SalesInvoice struct {
	ID                 string              `json:"id"`
	Date               time.Time           `json:"date" binding:"required"`
	CustomerID         string              `json:"customer_id" binding:"required"`
	Lines              []InvoiceLine       `json:"lines" binding:"dive"`
	Status             InvoiceStatus       `json:"status"`
	TotalPackages      decimal.Decimal     `json:"total_packages"`
	TotalKg            decimal.Decimal     `json:"total_kg"`
	Freight            CostCharge          `json:"freight"`
	Clearing           CostCharge          `json:"clearing"`
	Commission         CostCharge          `json:"commission"`
	ContainerNumber    string              `json:"container_number"`
	DirectSalesDetails *DirectSalesDetails `json:"direct_sales_details,omitempty"`
	OrderID            string              `json:"order_id,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
}

func (s *SalesInvoice) GetId() string { return s.ID }

// SaleValueUSD is the receivable amount across lines, each converted with its
// own captured rate.
func (s *SalesInvoice) SaleValueUSD() decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.Lines {
		rate := line.ConversionRate
		if rate.IsZero() {
			rate = decimal.NewFromInt(1)
		}
		total = total.Add(ToUSD(line.Quantity.Mul(line.Rate), rate))
	}
	return total
}
