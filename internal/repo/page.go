package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/prasannakumar-sl/crackers-shop/internal/models"
)

func (r *GormRepo) GetPage(ctx context.Context, slug string) (*models.Page, error) {
	var page models.Page
	if err := r.DB.WithContext(ctx).Where("slug = ?", slug).First(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *GormRepo) GetPages(ctx context.Context) ([]models.Page, error) {
	var pages []models.Page
	if err := r.DB.WithContext(ctx).Order("slug ASC").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

func (r *GormRepo) SavePage(ctx context.Context, page *models.Page) (*models.Page, error) {
	if err := r.DB.WithContext(ctx).Save(page).Error; err != nil {
		return nil, err
	}
	return page, nil
}

func (r *GormRepo) DeletePage(ctx context.Context, slug string) error {
	res := r.DB.WithContext(ctx).Where("slug = ?", slug).Delete(&models.Page{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
