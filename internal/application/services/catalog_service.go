package services

import "github.com/DanielPopoola/empire-storefront/internal/domain"

// CatalogService serves the static product catalog and payment method
// enumeration. Both sequences are fixed at startup.
type CatalogService struct {
	catalog []domain.Product
	methods []domain.PaymentMethod
}

func NewCatalogService(catalog []domain.Product, methods []domain.PaymentMethod) *CatalogService {
	return &CatalogService{
		catalog: catalog,
		methods: methods,
	}
}

func (s *CatalogService) ListProducts() []domain.Product {
	out := make([]domain.Product, len(s.catalog))
	copy(out, s.catalog)
	return out
}

func (s *CatalogService) ListPaymentMethods() []domain.PaymentMethod {
	out := make([]domain.PaymentMethod, len(s.methods))
	copy(out, s.methods)
	return out
}
