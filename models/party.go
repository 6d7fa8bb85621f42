package models

import "time"

type Supplier struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" binding:"required"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Supplier) GetId() string { return s.ID }

type SubSupplier struct {
	ID         string `json:"id"`
	SupplierID string `json:"supplier_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
}

func (s *SubSupplier) GetId() string { return s.ID }

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" binding:"required"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Customer) GetId() string { return c.ID }

// Agent is a freight / clearing / commission party on purchases.
type Agent struct {
	ID    string `json:"id"`
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

func (a *Agent) GetId() string { return a.ID }

// OriginalType classifies raw material. Synthetic types are auto-created by
// bale-to-raw transfers and are removed together with their transfer.
type OriginalType struct {
	ID        string `json:"id"`
	Name      string `json:"name" binding:"required"`
	Synthetic bool   `json:"synthetic"`
}

func (t *OriginalType) GetId() string { return t.ID }

type Product struct {
	ID   string `json:"id"`
	Name string `json:"name" binding:"required"`
}

func (p *Product) GetId() string { return p.ID }

type Division struct {
	ID   string `json:"id"`
	Name string `json:"name" binding:"required"`
}

func (d *Division) GetId() string { return d.ID }

type SubDivision struct {
	ID         string `json:"id"`
	DivisionID string `json:"division_id"`
	Name       string `json:"name" binding:"required"`
}

func (d *SubDivision) GetId() string { return d.ID }
