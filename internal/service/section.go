package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/prasannakumar-sl/crackers-shop/internal/models"
	"github.com/prasannakumar-sl/crackers-shop/internal/repo"
	"github.com/prasannakumar-sl/crackers-shop/internal/transport"
)

type SectionService struct {
	Repo *repo.GormRepo
}

func (s *SectionService) GetSections(ctx context.Context) ([]models.Section, error) {
	return s.Repo.GetSections(ctx)
}

func (s *SectionService) GetSection(ctx context.Context, id uint) (*models.Section, error) {
	return s.Repo.GetSection(ctx, id)
}

func (s *SectionService) CreateSection(ctx context.Context, req transport.CreateSectionRequest) (*models.Section, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title required", ErrValidation)
	}
	return s.Repo.CreateSection(ctx, &models.Section{Title: strings.TrimSpace(req.Title), Position: req.Position})
}

func (s *SectionService) PatchSection(ctx context.Context, id uint, req transport.PatchSectionRequest) (*models.Section, error) {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, fmt.Errorf("%w: title required", ErrValidation)
	}
	return s.Repo.UpdateSection(ctx, id, req.Title, req.Position)
}

func (s *SectionService) DeleteSection(ctx context.Context, id uint) error {
	return s.Repo.DeleteSection(ctx, id)
}

// SetProducts replaces the section's curated product list. Every id
// must exist in the catalog.
func (s *SectionService) SetProducts(ctx context.Context, sectionID uint, req transport.SectionProductsRequest) error {
	for _, pid := range req.ProductIDs {
		if _, err := s.Repo.GetProduct(ctx, pid); err != nil {
			return fmt.Errorf("%w: product %d", ErrValidation, pid)
		}
	}
	return s.Repo.SetSectionProducts(ctx, sectionID, req.ProductIDs)
}
