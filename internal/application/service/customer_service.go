package service

import (
	"context"

	"github.com/janipakwan/pakwan-api/internal/domain/entity"
	"github.com/janipakwan/pakwan-api/internal/domain/repository"
)

// customerSearchLimit caps the typeahead result set.
const customerSearchLimit = 10

// CustomerService handles customer lookups
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// Search matches customers by name or phone substring, at most 10 rows. An
// empty term matches everything up to the cap.
func (s *CustomerService) Search(ctx context.Context, term string) ([]entity.Customer, error) {
	return s.customerRepo.Search(ctx, term, customerSearchLimit)
}

// History returns customers matching term with their aggregated order totals.
func (s *CustomerService) History(ctx context.Context, term string) ([]repository.CustomerHistoryRow, error) {
	return s.customerRepo.History(ctx, term)
}
