package catalog

import (
	"strings"

	"github.com/hostbridge/backend/internal/domain/shared"
)

// Brand represents a product brand
type Brand struct {
	shared.BaseEntity
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (Brand) TableName() string {
	return "brands"
}

// NewBrand creates a new brand
func NewBrand(name string) (*Brand, error) {
	if err := validateBrandName(name); err != nil {
		return nil, err
	}
	return &Brand{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}

// Rename changes the brand name
func (b *Brand) Rename(name string) error {
	if err := validateBrandName(name); err != nil {
		return err
	}
	b.Name = name
	b.Touch()
	return nil
}

func validateBrandName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Brand name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Brand name cannot exceed 100 characters")
	}
	return nil
}
