package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

type PackageType string

const (
	PackageTravel PackageType = "travel"
	PackageFood   PackageType = "food"
	PackageResort PackageType = "resort"
)

const (
	MaxPackageNameLen        = 100
	MaxPackageDescriptionLen = 1000
)

// packageRules lists the conditional fields each package type must carry.
type packageRule struct {
	needsDuration  bool
	needsLocation  bool
	needsMeals     bool
	needsStartDate bool // bookings against this type must carry a start date
}

var packageRules = map[PackageType]packageRule{
	PackageTravel: {needsDuration: true, needsLocation: true, needsStartDate: true},
	PackageFood:   {needsMeals: true},
	PackageResort: {needsDuration: true, needsLocation: true, needsMeals: true, needsStartDate: true},
}

func (t PackageType) IsValid() bool {
	_, ok := packageRules[t]
	return ok
}

// RequiresStartDate reports whether bookings for this package type need a start date.
func (t PackageType) RequiresStartDate() bool {
	return packageRules[t].needsStartDate
}

type Package struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Name        string                      `gorm:"size:100;not null" json:"name"`
	Description string                      `gorm:"size:1000;not null" json:"description"`
	Type        PackageType                 `gorm:"size:16;not null;index" json:"type"`
	Price       float64                     `gorm:"not null" json:"price"`
	Duration    string                      `gorm:"size:100" json:"duration,omitempty"`
	Location    string                      `gorm:"size:255" json:"location,omitempty"`
	Meals       string                      `gorm:"size:255" json:"meals,omitempty"`
	Images      datatypes.JSONSlice[string] `gorm:"column:images" json:"images"`
	Available   bool                        `gorm:"not null;default:true" json:"available"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

// Validate checks the static and the type-conditional constraints of a package.
func (p *Package) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return Validationf("Please provide a package name")
	}
	if len(p.Name) > MaxPackageNameLen {
		return Validationf("Name cannot exceed %d characters", MaxPackageNameLen)
	}
	if strings.TrimSpace(p.Description) == "" {
		return Validationf("Please provide a description")
	}
	if len(p.Description) > MaxPackageDescriptionLen {
		return Validationf("Description cannot exceed %d characters", MaxPackageDescriptionLen)
	}
	rule, ok := packageRules[p.Type]
	if !ok {
		return Validationf("Package type must be one of travel, food, resort")
	}
	if p.Price < 0 {
		return Validationf("Price must be a positive number")
	}
	if rule.needsDuration && strings.TrimSpace(p.Duration) == "" {
		return Validationf("Duration is required for %s packages", p.Type)
	}
	if rule.needsLocation && strings.TrimSpace(p.Location) == "" {
		return Validationf("Location is required for %s packages", p.Type)
	}
	if rule.needsMeals && strings.TrimSpace(p.Meals) == "" {
		return Validationf("Meals are required for %s packages", p.Type)
	}
	return nil
}

// PackageFilter narrows a catalog listing. Zero values mean "any".
type PackageFilter struct {
	Type      PackageType
	Available *bool
}
