package service

import (
	"context"

	"github.com/prasannakumar-sl/crackers-shop/internal/invoice"
	"github.com/prasannakumar-sl/crackers-shop/internal/repo"
)

type InvoiceService struct {
	Repo *repo.GormRepo
}

// BuildDocument assembles the printable invoice for an order from the
// stored order snapshot plus the company and payment configuration.
func (s *InvoiceService) BuildDocument(ctx context.Context, orderID uint) (*invoice.Document, error) {
	order, err := s.Repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	company, err := s.Repo.GetCompanyInfo(ctx)
	if err != nil {
		return nil, err
	}

	payment, err := s.Repo.GetPaymentMethods(ctx)
	if err != nil {
		return nil, err
	}

	doc := invoice.Format(order, company, payment)
	return &doc, nil
}
