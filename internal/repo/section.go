package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/prasannakumar-sl/crackers-shop/internal/models"
)

func (r *GormRepo) GetSections(ctx context.Context) ([]models.Section, error) {
	var sections []models.Section
	err := r.DB.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Products.Product").
		Order("position ASC").
		Find(&sections).Error
	if err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *GormRepo) GetSection(ctx context.Context, id uint) (*models.Section, error) {
	var section models.Section
	err := r.DB.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Products.Product").
		First(&section, id).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *GormRepo) CreateSection(ctx context.Context, section *models.Section) (*models.Section, error) {
	if err := r.DB.WithContext(ctx).Create(section).Error; err != nil {
		return nil, err
	}
	return section, nil
}

func (r *GormRepo) UpdateSection(ctx context.Context, id uint, title *string, position *int) (*models.Section, error) {
	var section models.Section
	if err := r.DB.WithContext(ctx).First(&section, id).Error; err != nil {
		return nil, err
	}
	if title != nil {
		section.Title = *title
	}
	if position != nil {
		section.Position = *position
	}
	if err := r.DB.WithContext(ctx).Save(&section).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *GormRepo) DeleteSection(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("section_id = ?", id).Delete(&models.SectionProduct{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Section{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// SetSectionProducts replaces a section's product list, preserving the
// given order.
func (r *GormRepo) SetSectionProducts(ctx context.Context, sectionID uint, productIDs []uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Section{}, sectionID).Error; err != nil {
			return err
		}
		if err := tx.Where("section_id = ?", sectionID).Delete(&models.SectionProduct{}).Error; err != nil {
			return err
		}
		if len(productIDs) == 0 {
			return nil
		}
		rows := make([]models.SectionProduct, 0, len(productIDs))
		for i, pid := range productIDs {
			rows = append(rows, models.SectionProduct{SectionID: sectionID, ProductID: pid, Position: i})
		}
		return tx.Create(&rows).Error
	})
}
