package repo

import (
	"gorm.io/gorm"

	"github.com/prasannakumar-sl/crackers-shop/internal/models"
)

type GormRepo struct {
	DB *gorm.DB
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Section{},
		&models.SectionProduct{},
		&models.CarouselImage{},
		&models.CompanyInfo{},
		&models.PaymentMethods{},
		&models.Admin{},
		&models.Page{},
	)
}
