package services

import "github.com/DanielPopoola/empire-storefront/internal/domain"

// CartLineView is one ledger entry prepared for display.
type CartLineView struct {
	ProductID int
	Name      string
	Quantity  int
	UnitPrice string
	Subtotal  string
}

// CartSummary is the aggregate view the UI reads after every mutation.
type CartSummary struct {
	Lines          []CartLineView
	TotalCost      string
	TotalItemCount int
}

func summarize(cart *domain.Cart) CartSummary {
	lines := cart.Lines()
	views := make([]CartLineView, 0, len(lines))
	for _, l := range lines {
		views = append(views, CartLineView{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Quantity:  l.Quantity,
			UnitPrice: domain.FormatCents(l.Product.PriceCents),
			Subtotal:  domain.FormatCents(l.SubtotalCents()),
		})
	}
	return CartSummary{
		Lines:          views,
		TotalCost:      cart.TotalCost(),
		TotalItemCount: cart.TotalItemCount(),
	}
}
