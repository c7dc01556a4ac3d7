package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/prasannakumar-sl/crackers-shop/internal/models"
)

func (r *GormRepo) GetCarousel(ctx context.Context) ([]models.CarouselImage, error) {
	var images []models.CarouselImage
	if err := r.DB.WithContext(ctx).Order("position ASC").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *GormRepo) CreateCarouselImage(ctx context.Context, img *models.CarouselImage) (*models.CarouselImage, error) {
	if err := r.DB.WithContext(ctx).Create(img).Error; err != nil {
		return nil, err
	}
	return img, nil
}

func (r *GormRepo) UpdateCarouselImage(ctx context.Context, id uint, imageURL, caption *string, position *int) (*models.CarouselImage, error) {
	var img models.CarouselImage
	if err := r.DB.WithContext(ctx).First(&img, id).Error; err != nil {
		return nil, err
	}
	if imageURL != nil {
		img.ImageURL = *imageURL
	}
	if caption != nil {
		img.Caption = *caption
	}
	if position != nil {
		img.Position = *position
	}
	if err := r.DB.WithContext(ctx).Save(&img).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *GormRepo) DeleteCarouselImage(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.CarouselImage{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
