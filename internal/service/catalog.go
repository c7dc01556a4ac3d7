package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/prasannakumar-sl/crackers-shop/internal/events"
	"github.com/prasannakumar-sl/crackers-shop/internal/logging"
	"github.com/prasannakumar-sl/crackers-shop/internal/models"
	"github.com/prasannakumar-sl/crackers-shop/internal/pricing"
	"github.com/prasannakumar-sl/crackers-shop/internal/repo"
	"github.com/prasannakumar-sl/crackers-shop/internal/search"
	"github.com/prasannakumar-sl/crackers-shop/internal/transport"
)

type CatalogService struct {
	Repo     *repo.GormRepo
	Search   *search.Index
	Producer events.Producer
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, id)
}

func (s *CatalogService) GetProducts(ctx context.Context, category string, offset, limit int) (int64, []models.Product, error) {
	return s.Repo.GetProducts(ctx, category, offset, limit)
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	prod, err := productFromRequest(req)
	if err != nil {
		return nil, err
	}

	created, err := s.Repo.CreateProduct(ctx, prod)
	if err != nil {
		return nil, err
	}

	s.afterProductChange(ctx, "product_created", created)
	return created, nil
}

func (s *CatalogService) PatchProduct(ctx context.Context, req transport.PatchProductRequest, id uint) (*models.Product, error) {
	if req.Price != nil && req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}

	prod, err := s.Repo.PatchProduct(ctx, req, id)
	if err != nil {
		return nil, err
	}

	s.afterProductChange(ctx, "product_updated", prod)
	return prod, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		return err
	}

	l := logging.FromContext(ctx)
	if err := s.Search.DeleteProduct(ctx, id); err != nil {
		l.Warn("search_delete_failed", "product_id", id, "error", err)
	}
	s.publish(ctx, map[string]any{"type": "product_deleted", "productID": id})
	return nil
}

// BulkImport creates the given products, skipping any whose name
// already exists. Matching is case-insensitive on the trimmed name,
// mirroring the historical import behavior.
func (s *CatalogService) BulkImport(ctx context.Context, req transport.BulkProductsRequest) (transport.BulkProductsResponse, error) {
	if len(req.Products) == 0 {
		return transport.BulkProductsResponse{}, fmt.Errorf("%w: products required", ErrValidation)
	}

	existing, err := s.Repo.ProductNamesFold(ctx)
	if err != nil {
		return transport.BulkProductsResponse{}, err
	}

	var (
		toCreate   []models.Product
		duplicates []string
	)
	for _, pr := range req.Products {
		prod, err := productFromRequest(pr)
		if err != nil {
			return transport.BulkProductsResponse{}, err
		}
		key := strings.ToLower(strings.TrimSpace(prod.Name))
		if _, ok := existing[key]; ok {
			duplicates = append(duplicates, prod.Name)
			continue
		}
		existing[key] = 0
		toCreate = append(toCreate, *prod)
	}

	if len(toCreate) > 0 {
		if err := s.Repo.CreateProducts(ctx, toCreate); err != nil {
			return transport.BulkProductsResponse{}, err
		}
		for i := range toCreate {
			s.afterProductChange(ctx, "product_created", &toCreate[i])
		}
	}

	return transport.BulkProductsResponse{Created: len(toCreate), Duplicates: duplicates}, nil
}

func (s *CatalogService) SearchProducts(ctx context.Context, q string, offset, limit int) (int64, []models.Product, error) {
	if strings.TrimSpace(q) == "" {
		return 0, nil, fmt.Errorf("%w: query required", ErrValidation)
	}

	if s.Search.Available() {
		total, items, err := s.Search.Search(ctx, q, offset, limit)
		if err == nil {
			return total, items, nil
		}
		logging.FromContext(ctx).Warn("search_fallback_sql", "error", err)
	}

	return s.Repo.SearchProductsLike(ctx, q, offset, limit)
}

func productFromRequest(req transport.CreateProductRequest) (*models.Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}

	price, err := pricing.NormalizeAmount(req.Price)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidAmount) {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return nil, err
	}

	return &models.Product{
		Name:     strings.TrimSpace(req.Name),
		Category: req.Category,
		Price:    pricing.RoundDisplay(price),
		Stock:    req.Stock,
		ImageURL: req.ImageURL,
	}, nil
}

func (s *CatalogService) afterProductChange(ctx context.Context, eventType string, prod *models.Product) {
	l := logging.FromContext(ctx)
	if err := s.Search.IndexProduct(ctx, prod); err != nil {
		l.Warn("search_index_failed", "product_id", prod.ID, "error", err)
	}
	s.publish(ctx, map[string]any{
		"type":      eventType,
		"productID": prod.ID,
		"name":      prod.Name,
	})
}

func (s *CatalogService) publish(ctx context.Context, event map[string]any) {
	if s.Producer == nil {
		return
	}
	if err := s.Producer.PublishEvent(ctx, events.TopicProductEvents, fmt.Sprint(event["productID"]), event); err != nil {
		logging.FromContext(ctx).Warn("event_publish_failed", "topic", events.TopicProductEvents, "error", err)
	}
}
