package rest

import (
	"time"

	"github.com/DanielPopoola/empire-storefront/internal/application/services"
	"github.com/DanielPopoola/empire-storefront/internal/domain"
)

type ProductDTO struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

type PaymentMethodDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CartLineDTO struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

type CartSummaryDTO struct {
	Lines          []CartLineDTO `json:"lines"`
	TotalCost      string        `json:"total_cost"`
	TotalItemCount int           `json:"total_item_count"`
}

type InvoiceDTO struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ShareDTO struct {
	URL string `json:"url"`
}

type DownloadDTO struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type ChatReplyDTO struct {
	Reply string `json:"reply"`
}

type ContactDTO struct {
	Facebook       string `json:"facebook"`
	WhatsApp       string `json:"whatsapp"`
	Email          string `json:"email"`
	AlternateEmail string `json:"alternate_email"`
}

func toProductDTO(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Price:       domain.FormatCents(p.PriceCents),
		Description: p.Description,
	}
}

func toProductDTOs(products []domain.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, toProductDTO(p))
	}
	return out
}

func toPaymentMethodDTOs(methods []domain.PaymentMethod) []PaymentMethodDTO {
	out := make([]PaymentMethodDTO, 0, len(methods))
	for _, m := range methods {
		out = append(out, PaymentMethodDTO{ID: m.ID, Name: m.DisplayName})
	}
	return out
}

func toCartSummaryDTO(summary services.CartSummary) CartSummaryDTO {
	lines := make([]CartLineDTO, 0, len(summary.Lines))
	for _, l := range summary.Lines {
		lines = append(lines, CartLineDTO{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal,
		})
	}
	return CartSummaryDTO{
		Lines:          lines,
		TotalCost:      summary.TotalCost,
		TotalItemCount: summary.TotalItemCount,
	}
}

func toInvoiceDTO(snap services.InvoiceSnapshot) InvoiceDTO {
	return InvoiceDTO{
		ID:        snap.ID,
		Content:   snap.Content,
		CreatedAt: snap.CreatedAt,
	}
}

func toInvoiceDTOs(snaps []services.InvoiceSnapshot) []InvoiceDTO {
	out := make([]InvoiceDTO, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, toInvoiceDTO(s))
	}
	return out
}
