package services

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/DanielPopoola/empire-storefront/internal/application"
	"github.com/DanielPopoola/empire-storefront/internal/clock"
	"github.com/DanielPopoola/empire-storefront/internal/domain"
	"github.com/google/uuid"
)

// CheckoutService turns a session's cart and order context into invoice
// documents and hands them to the dispatch sinks.
type CheckoutService struct {
	methods       []domain.PaymentMethod
	shareSink     application.ShareLinkSink
	fileSink      application.FileSink
	clk           clock.Clock
	currencyLabel string
	shareDest     string
	filename      string
	logger        *slog.Logger

	// rngMu serializes draws; *rand.Rand is not safe for concurrent use.
	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewCheckoutService(
	methods []domain.PaymentMethod,
	shareSink application.ShareLinkSink,
	fileSink application.FileSink,
	clk clock.Clock,
	rng *rand.Rand,
	currencyLabel string,
	shareDest string,
	filename string,
	logger *slog.Logger,
) *CheckoutService {
	return &CheckoutService{
		methods:       methods,
		shareSink:     shareSink,
		fileSink:      fileSink,
		clk:           clk,
		rng:           rng,
		currencyLabel: currencyLabel,
		shareDest:     shareDest,
		filename:      filename,
		logger:        logger,
	}
}

func (s *CheckoutService) SetBuyerName(_ context.Context, session *Session, name string) {
	session.SetBuyerName(name)
}

// SelectPaymentMethod records the buyer's choice. An empty ID clears the
// selection; anything else must name a known method.
func (s *CheckoutService) SelectPaymentMethod(_ context.Context, session *Session, methodID string) error {
	if methodID != "" {
		if _, err := domain.FindPaymentMethod(s.methods, methodID); err != nil {
			return application.NewNotFoundError(err)
		}
	}
	session.SelectPaymentMethod(methodID)
	return nil
}

// GenerateInvoice formats the current cart into an invoice document and
// appends an immutable snapshot to the session history.
func (s *CheckoutService) GenerateInvoice(ctx context.Context, session *Session) (InvoiceSnapshot, error) {
	content := s.format(session)

	snap := InvoiceSnapshot{
		ID:        uuid.New().String(),
		Content:   content,
		CreatedAt: s.clk.Now(),
	}
	session.AppendInvoice(snap)

	s.logger.Info("invoice generated",
		"session_id", session.ID,
		"invoice_id", snap.ID,
	)
	return snap, nil
}

func (s *CheckoutService) InvoiceHistory(_ context.Context, session *Session) []InvoiceSnapshot {
	return session.Invoices()
}

// ShareWhatsApp formats a fresh invoice and hands it to the share-link
// sink. The returned URL is the sink's share target; the core does not
// track whether the hand-off ultimately succeeds.
func (s *CheckoutService) ShareWhatsApp(ctx context.Context, session *Session) (string, error) {
	content := s.format(session)

	link, err := s.shareSink.Share(ctx, s.shareDest, content)
	if err != nil {
		return "", application.NewInternalError(err)
	}

	s.logger.Info("invoice handed to share sink", "session_id", session.ID)
	return link, nil
}

// DownloadInvoice formats a fresh invoice and hands it to the file sink
// under the configured filename. The payload is also returned so callers
// can serve it directly.
func (s *CheckoutService) DownloadInvoice(ctx context.Context, session *Session) (string, string, error) {
	content := s.format(session)

	if err := s.fileSink.Export(ctx, s.filename, content); err != nil {
		return "", "", application.NewInternalError(err)
	}

	s.logger.Info("invoice handed to file sink",
		"session_id", session.ID,
		"filename", s.filename,
	)
	return s.filename, content, nil
}

func (s *CheckoutService) format(session *Session) string {
	var content string
	session.OrderView(func(cart *domain.Cart, buyerName, methodID string) {
		var method *domain.PaymentMethod
		if methodID != "" {
			if m, err := domain.FindPaymentMethod(s.methods, methodID); err == nil {
				method = &m
			}
		}

		s.rngMu.Lock()
		defer s.rngMu.Unlock()
		content = domain.FormatInvoice(cart, buyerName, method, s.clk.Now(), s.rng, s.currencyLabel)
	})
	return content
}
