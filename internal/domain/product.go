// Package domain encodes the storefront catalog, the cart ledger and the
// text documents derived from them.
package domain

import (
	"fmt"
)

// Product is a single offerable catalog item. Products are defined once at
// startup and never mutated.
type Product struct {
	ID          int
	Name        string
	PriceCents  int64
	Description string
}

// PaymentMethod is one entry of the static payment method enumeration.
type PaymentMethod struct {
	ID          string
	DisplayName string
}

// ValidateCatalog checks the catalog invariants: unique product IDs and
// non-negative prices. A catalog that fails here is a configuration error
// and must abort startup.
func ValidateCatalog(products []Product) error {
	seen := make(map[int]struct{}, len(products))
	for _, p := range products {
		if p.Name == "" {
			return NewInvalidCatalogError(fmt.Sprintf("product %d has no name", p.ID))
		}
		if p.PriceCents < 0 {
			return NewInvalidCatalogError(fmt.Sprintf("product %d has negative price", p.ID))
		}
		if _, dup := seen[p.ID]; dup {
			return NewInvalidCatalogError(fmt.Sprintf("duplicate product ID %d", p.ID))
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

// FindProduct returns the catalog entry with the given ID.
func FindProduct(products []Product, id int) (Product, error) {
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, NewProductNotFoundError(id)
}

// FindPaymentMethod returns the payment method with the given ID.
func FindPaymentMethod(methods []PaymentMethod, id string) (PaymentMethod, error) {
	for _, m := range methods {
		if m.ID == id {
			return m, nil
		}
	}
	return PaymentMethod{}, NewPaymentMethodNotFoundError(id)
}

// FormatCents renders an amount of cents with two decimal places.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
