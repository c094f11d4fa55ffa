package config

import (
	"github.com/DanielPopoola/empire-storefront/internal/domain"
)

// DefaultCatalog returns the fixed product catalog. The storefront sells a
// small set of in-game items; the sequence is ordered and read-only for the
// lifetime of the process.
func DefaultCatalog() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Extra Gold", PriceCents: 19999, Description: "Get 1000 extra gold coins"},
		{ID: 2, Name: "Speed Boost", PriceCents: 29999, Description: "50% faster building for 24 hours"},
		{ID: 3, Name: "Rare Weapon", PriceCents: 49999, Description: "Unlock a powerful rare weapon"},
	}
}

// DefaultPaymentMethods returns the fixed payment method enumeration.
func DefaultPaymentMethods() []domain.PaymentMethod {
	return []domain.PaymentMethod{
		{ID: "vodafone", DisplayName: "Vodafone Cash"},
		{ID: "orange", DisplayName: "Orange Cash"},
	}
}
