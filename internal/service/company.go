package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/prasannakumar-sl/crackers-shop/internal/models"
	"github.com/prasannakumar-sl/crackers-shop/internal/repo"
)

type CompanyService struct {
	Repo *repo.GormRepo
}

func (s *CompanyService) GetCompanyInfo(ctx context.Context) (models.CompanyInfo, error) {
	return s.Repo.GetCompanyInfo(ctx)
}

func (s *CompanyService) SaveCompanyInfo(ctx context.Context, info models.CompanyInfo) (models.CompanyInfo, error) {
	if strings.TrimSpace(info.Name) == "" {
		return models.CompanyInfo{}, fmt.Errorf("%w: name required", ErrValidation)
	}
	return s.Repo.SaveCompanyInfo(ctx, info)
}

func (s *CompanyService) GetPaymentMethods(ctx context.Context) (models.PaymentMethods, error) {
	return s.Repo.GetPaymentMethods(ctx)
}

func (s *CompanyService) SavePaymentMethods(ctx context.Context, pm models.PaymentMethods) (models.PaymentMethods, error) {
	return s.Repo.SavePaymentMethods(ctx, pm)
}
