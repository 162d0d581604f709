// internal/core/domain/component.go
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ComponentCategory represents component categories
type ComponentCategory string

// Category constants. The set is open server-side; these cover the
// categories the backend ships with.
const (
	CategoryChemical    ComponentCategory = "chemical"
	CategoryReagent     ComponentCategory = "reagent"
	CategoryGlassware   ComponentCategory = "glassware"
	CategoryEquipment   ComponentCategory = "equipment"
	CategoryConsumable  ComponentCategory = "consumable"
	CategoryElectronics ComponentCategory = "electronics"
	CategorySafety      ComponentCategory = "safety"
	CategoryBiological  ComponentCategory = "biological"
	CategoryTool        ComponentCategory = "tool"
	CategoryOther       ComponentCategory = "other"
)

// StockStatus is the derived stock classification of a component.
type StockStatus string

const (
	StatusOutOfStock StockStatus = "out_of_stock"
	StatusLowStock   StockStatus = "low_stock"
	StatusInStock    StockStatus = "in_stock"
)

// DisplayName returns the human-readable form used on list screens.
func (s StockStatus) DisplayName() string {
	switch s {
	case StatusOutOfStock:
		return "Out of Stock"
	case StatusLowStock:
		return "Low Stock"
	default:
		return "In Stock"
	}
}

// Component represents a trackable laboratory inventory item. The backend
// is the source of truth; the client holds a transient cached copy.
type Component struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	PartNumber    string            `json:"part_number,omitempty"`
	Category      ComponentCategory `json:"category"`
	Description   string            `json:"description,omitempty"`
	Manufacturer  string            `json:"manufacturer,omitempty"`
	Supplier      string            `json:"supplier,omitempty"`
	DatasheetURL  string            `json:"datasheet_url,omitempty"`
	Quantity      int               `json:"quantity"`
	Unit          string            `json:"unit,omitempty"`
	UnitPrice     decimal.Decimal   `json:"unit_price"`
	Location      string            `json:"location,omitempty"`
	MinStock      int               `json:"min_stock"`
	CriticalLow   int               `json:"critical_low"`
	Tags          []string          `json:"tags,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// StockStatus derives the stock classification. Zero quantity wins over
// the critical-low comparison regardless of thresholds.
func (c *Component) StockStatus() StockStatus {
	switch {
	case c.Quantity == 0:
		return StatusOutOfStock
	case c.Quantity <= c.CriticalLow:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// HasDatasheet reports whether a datasheet link is attached.
func (c *Component) HasDatasheet() bool {
	return c.DatasheetURL != ""
}

// Validate performs the client-side required-field checks that mirror the
// display-level required markers. Everything else is validated server-side.
func (c *Component) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if c.Category == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	if c.Quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", ErrValidation)
	}
	if c.UnitPrice.IsNegative() {
		return fmt.Errorf("%w: unit_price cannot be negative", ErrValidation)
	}
	return nil
}

// QuantityUpdate is the payload of the narrow quantity-only update. The
// backend appends an audit log entry for each one.
type QuantityUpdate struct {
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason,omitempty"`
}

// Validate checks the quantity update payload.
func (q *QuantityUpdate) Validate() error {
	if q.Quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", ErrValidation)
	}
	return nil
}

// InventoryValue returns quantity times unit price for aggregate displays.
func (c *Component) InventoryValue() decimal.Decimal {
	return c.UnitPrice.Mul(decimal.NewFromInt(int64(c.Quantity)))
}
