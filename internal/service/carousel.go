package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/prasannakumar-sl/crackers-shop/internal/models"
	"github.com/prasannakumar-sl/crackers-shop/internal/repo"
	"github.com/prasannakumar-sl/crackers-shop/internal/transport"
)

type CarouselService struct {
	Repo *repo.GormRepo
}

func (s *CarouselService) GetCarousel(ctx context.Context) ([]models.CarouselImage, error) {
	return s.Repo.GetCarousel(ctx)
}

func (s *CarouselService) AddImage(ctx context.Context, req transport.CarouselImageRequest) (*models.CarouselImage, error) {
	if strings.TrimSpace(req.ImageURL) == "" {
		return nil, fmt.Errorf("%w: image_url required", ErrValidation)
	}
	return s.Repo.CreateCarouselImage(ctx, &models.CarouselImage{
		ImageURL: strings.TrimSpace(req.ImageURL),
		Caption:  req.Caption,
		Position: req.Position,
	})
}

func (s *CarouselService) PatchImage(ctx context.Context, id uint, req transport.PatchCarouselImageRequest) (*models.CarouselImage, error) {
	if req.ImageURL != nil && strings.TrimSpace(*req.ImageURL) == "" {
		return nil, fmt.Errorf("%w: image_url required", ErrValidation)
	}
	return s.Repo.UpdateCarouselImage(ctx, id, req.ImageURL, req.Caption, req.Position)
}

func (s *CarouselService) DeleteImage(ctx context.Context, id uint) error {
	return s.Repo.DeleteCarouselImage(ctx, id)
}
