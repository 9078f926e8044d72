package catalog

import (
	"strings"

	"github.com/google/uuid"

	"github.com/hostbridge/backend/internal/domain/shared"
)

// Product represents a product in the local catalog.
// It mirrors what the administrative UI manages; the host bridge builds its
// outbound payloads from the same fields.
type Product struct {
	shared.BaseEntity
	SKU         string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name        string     `gorm:"type:varchar(200);not null"`
	Description *string    `gorm:"type:text"`
	BrandID     *uuid.UUID `gorm:"type:uuid;index"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid;index"`
	Status      bool       `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new active product
func NewProduct(sku, name string) (*Product, error) {
	if err := validateSKU(sku); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		SKU:        strings.ToUpper(sku),
		Name:       name,
		Status:     true,
	}, nil
}

// Update replaces the product's editable fields
func (p *Product) Update(sku, name string, description *string) error {
	if err := validateSKU(sku); err != nil {
		return err
	}
	if err := validateName(name); err != nil {
		return err
	}

	p.SKU = strings.ToUpper(sku)
	p.Name = name
	p.Description = description
	p.Touch()
	return nil
}

// Activate marks the product as active
func (p *Product) Activate() {
	p.Status = true
	p.Touch()
}

// Deactivate marks the product as inactive
func (p *Product) Deactivate() {
	p.Status = false
	p.Touch()
}

func validateSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return shared.NewDomainError("INVALID_SKU", "Product SKU cannot be empty")
	}
	if len(sku) > 50 {
		return shared.NewDomainError("INVALID_SKU", "Product SKU cannot exceed 50 characters")
	}
	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
