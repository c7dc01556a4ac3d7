package repo

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/prasannakumar-sl/crackers-shop/internal/models"
)

const singletonID = 1

func (r *GormRepo) GetCompanyInfo(ctx context.Context) (models.CompanyInfo, error) {
	var info models.CompanyInfo
	err := r.DB.WithContext(ctx).FirstOrInit(&info, models.CompanyInfo{ID: singletonID}).Error
	return info, err
}

func (r *GormRepo) SaveCompanyInfo(ctx context.Context, info models.CompanyInfo) (models.CompanyInfo, error) {
	info.ID = singletonID
	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&info).Error
	return info, err
}

func (r *GormRepo) GetPaymentMethods(ctx context.Context) (models.PaymentMethods, error) {
	var pm models.PaymentMethods
	err := r.DB.WithContext(ctx).FirstOrInit(&pm, models.PaymentMethods{ID: singletonID}).Error
	return pm, err
}

func (r *GormRepo) SavePaymentMethods(ctx context.Context, pm models.PaymentMethods) (models.PaymentMethods, error) {
	pm.ID = singletonID
	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&pm).Error
	return pm, err
}
