package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/prasannakumar-sl/crackers-shop/internal/models"
	"github.com/prasannakumar-sl/crackers-shop/internal/repo"
	"github.com/prasannakumar-sl/crackers-shop/internal/transport"
)

type PageService struct {
	Repo *repo.GormRepo
}

func (s *PageService) GetPage(ctx context.Context, slug string) (*models.Page, error) {
	return s.Repo.GetPage(ctx, slug)
}

func (s *PageService) GetPages(ctx context.Context) ([]models.Page, error) {
	return s.Repo.GetPages(ctx)
}

func (s *PageService) SavePage(ctx context.Context, req transport.PageRequest) (*models.Page, error) {
	slug := strings.TrimSpace(strings.ToLower(req.Slug))
	if slug == "" {
		return nil, fmt.Errorf("%w: slug required", ErrValidation)
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title required", ErrValidation)
	}

	page, err := s.Repo.GetPage(ctx, slug)
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		page = &models.Page{Slug: slug}
	default:
		return nil, err
	}
	page.Title = req.Title
	page.Body = req.Body

	return s.Repo.SavePage(ctx, page)
}

func (s *PageService) DeletePage(ctx context.Context, slug string) error {
	return s.Repo.DeletePage(ctx, slug)
}
