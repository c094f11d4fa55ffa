package services

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/empire-storefront/internal/application"
	"github.com/DanielPopoola/empire-storefront/internal/domain"
)

// CartService mutates and reads the per-session cart ledger. Every
// mutation returns the fresh summary so callers never observe a stale
// aggregate.
type CartService struct {
	catalog  []domain.Product
	sessions *SessionStore
	logger   *slog.Logger
}

func NewCartService(catalog []domain.Product, sessions *SessionStore, logger *slog.Logger) *CartService {
	return &CartService{
		catalog:  catalog,
		sessions: sessions,
		logger:   logger,
	}
}

func (s *CartService) AddItem(ctx context.Context, session *Session, productID int) (CartSummary, error) {
	product, err := domain.FindProduct(s.catalog, productID)
	if err != nil {
		return CartSummary{}, application.NewNotFoundError(err)
	}

	session.AddItem(product)
	s.logger.Info("item added to cart",
		"session_id", session.ID,
		"product_id", productID,
	)
	return s.Summary(ctx, session), nil
}

// RemoveItem deletes the line for productID. Removing a product that is not
// in the cart is a no-op, not an error.
func (s *CartService) RemoveItem(ctx context.Context, session *Session, productID int) (CartSummary, error) {
	session.RemoveItem(productID)
	s.logger.Info("item removed from cart",
		"session_id", session.ID,
		"product_id", productID,
	)
	return s.Summary(ctx, session), nil
}

func (s *CartService) Clear(ctx context.Context, session *Session) (CartSummary, error) {
	session.ClearCart()
	s.logger.Info("cart cleared", "session_id", session.ID)
	return s.Summary(ctx, session), nil
}

func (s *CartService) Summary(_ context.Context, session *Session) CartSummary {
	var summary CartSummary
	session.CartView(func(cart *domain.Cart) {
		summary = summarize(cart)
	})
	return summary
}
