package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"travel-backend/models"
)

// PackagePatch holds the fields of a partial package update. Nil means "leave as is".
type PackagePatch struct {
	Name        *string
	Description *string
	Type        *models.PackageType
	Price       *float64
	Duration    *string
	Location    *string
	Meals       *string
	Images      *[]string
	Available   *bool
}

// BookingCounter reports how many bookings reference a package.
type BookingCounter interface {
	CountByPackage(ctx context.Context, packageID uint) (int64, error)
}

type PackageService struct {
	packages PackageRepo
	bookings BookingCounter
	log      *zap.Logger
}

func NewPackageService(packages PackageRepo, bookings BookingCounter, log *zap.Logger) *PackageService {
	return &PackageService{packages: packages, bookings: bookings, log: log}
}

func (s *PackageService) Create(ctx context.Context, p *models.Package) (*models.Package, error) {
	trimPackage(p)
	if p.Images == nil {
		p.Images = []string{}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.packages.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create package: %w", err)
	}

	s.log.Info("package created",
		zap.Uint("package_id", p.ID),
		zap.String("name", p.Name),
		zap.String("type", string(p.Type)),
		zap.Int("images", len(p.Images)),
	)
	return p, nil
}

func (s *PackageService) Get(ctx context.Context, id uint) (*models.Package, error) {
	p, err := s.packages.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, packageNotFound(id)
		}
		return nil, fmt.Errorf("get package %d: %w", id, err)
	}
	return p, nil
}

func (s *PackageService) List(ctx context.Context, filter models.PackageFilter) ([]models.Package, error) {
	if filter.Type != "" && !filter.Type.IsValid() {
		return nil, models.Validationf("Package type must be one of travel, food, resort")
	}
	list, err := s.packages.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	return list, nil
}

// Update merges the patch into the stored package and re-runs the type rules on the
// result, so switching a package to "resort" without meals is rejected.
func (s *PackageService) Update(ctx context.Context, id uint, patch PackagePatch) (*models.Package, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Duration != nil {
		p.Duration = *patch.Duration
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Meals != nil {
		p.Meals = *patch.Meals
	}
	if patch.Images != nil {
		p.Images = *patch.Images
	}
	if patch.Available != nil {
		p.Available = *patch.Available
	}

	trimPackage(p)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.packages.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("update package %d: %w", id, err)
	}

	s.log.Info("package updated", zap.Uint("package_id", p.ID), zap.String("name", p.Name))
	return p, nil
}

// Delete removes a package that no booking references.
func (s *PackageService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	n, err := s.bookings.CountByPackage(ctx, id)
	if err != nil {
		return fmt.Errorf("count bookings of package %d: %w", id, err)
	}
	if n > 0 {
		return models.Conflictf("Package %d still has %d booking(s) and cannot be deleted", id, n)
	}

	if err := s.packages.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			return packageNotFound(id)
		case errors.Is(err, models.ErrConflict):
			return models.Conflictf("Package %d is referenced by bookings and cannot be deleted", id)
		}
		return fmt.Errorf("delete package %d: %w", id, err)
	}

	s.log.Info("package deleted", zap.Uint("package_id", id))
	return nil
}

func trimPackage(p *models.Package) {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.Duration = strings.TrimSpace(p.Duration)
	p.Location = strings.TrimSpace(p.Location)
	p.Meals = strings.TrimSpace(p.Meals)
}
