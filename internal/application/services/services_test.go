package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"testing"
	"time"

	"github.com/DanielPopoola/empire-storefront/internal/application"
	"github.com/DanielPopoola/empire-storefront/internal/application/services"
	"github.com/DanielPopoola/empire-storefront/internal/clock"
	"github.com/DanielPopoola/empire-storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testCatalog = []domain.Product{
		{ID: 1, Name: "Extra Gold", PriceCents: 19999, Description: "Get 1000 extra gold coins"},
		{ID: 2, Name: "Speed Boost", PriceCents: 29999, Description: "50% faster building for 24 hours"},
	}
	testMethods = []domain.PaymentMethod{
		{ID: "vodafone", DisplayName: "Vodafone Cash"},
		{ID: "orange", DisplayName: "Orange Cash"},
	}
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeShareSink records the hand-off and returns a canned link.
type fakeShareSink struct {
	destination string
	payload     string
	err         error
}

func (f *fakeShareSink) Share(_ context.Context, destination, payload string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.destination = destination
	f.payload = payload
	return "https://wa.me/" + destination + "?text=stub", nil
}

// fakeFileSink records the hand-off.
type fakeFileSink struct {
	filename string
	payload  string
	err      error
}

func (f *fakeFileSink) Export(_ context.Context, filename, payload string) error {
	if f.err != nil {
		return f.err
	}
	f.filename = filename
	f.payload = payload
	return nil
}

func newCheckoutService(share *fakeShareSink, file *fakeFileSink) *services.CheckoutService {
	return services.NewCheckoutService(
		testMethods,
		share,
		file,
		clock.NewFixed(time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)),
		rand.New(rand.NewSource(7)),
		"EGP",
		"201098662418",
		"invoice.txt",
		testLogger(),
	)
}

func TestSessionStore(t *testing.T) {
	t.Run("mints a session for an empty ID", func(t *testing.T) {
		store := services.NewSessionStore()

		s, created := store.GetOrCreate("")

		assert.True(t, created)
		assert.NotEmpty(t, s.ID)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("returns the same session for a known ID", func(t *testing.T) {
		store := services.NewSessionStore()
		first, _ := store.GetOrCreate("")

		second, created := store.GetOrCreate(first.ID)

		assert.False(t, created)
		assert.Same(t, first, second)
	})

	t.Run("unknown IDs get a fresh session, not the caller's ID", func(t *testing.T) {
		store := services.NewSessionStore()

		s, created := store.GetOrCreate("made-up-id")

		assert.True(t, created)
		assert.NotEqual(t, "made-up-id", s.ID)
	})
}

func TestCartService(t *testing.T) {
	ctx := context.Background()

	newService := func() (*services.CartService, *services.SessionStore) {
		store := services.NewSessionStore()
		return services.NewCartService(testCatalog, store, testLogger()), store
	}

	t.Run("add returns the fresh summary", func(t *testing.T) {
		svc, store := newService()
		session, _ := store.GetOrCreate("")

		summary, err := svc.AddItem(ctx, session, 1)

		require.NoError(t, err)
		require.Len(t, summary.Lines, 1)
		assert.Equal(t, "Extra Gold", summary.Lines[0].Name)
		assert.Equal(t, "199.99", summary.TotalCost)
		assert.Equal(t, 1, summary.TotalItemCount)
	})

	t.Run("unknown product is a not-found service error", func(t *testing.T) {
		svc, store := newService()
		session, _ := store.GetOrCreate("")

		_, err := svc.AddItem(ctx, session, 42)

		require.Error(t, err)
		svcErr, ok := application.IsServiceError(err)
		require.True(t, ok)
		assert.Equal(t, application.ErrCodeNotFound, svcErr.Code)
		assert.Equal(t, http.StatusNotFound, svcErr.HTTPStatus)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeProductNotFound))
	})

	t.Run("remove of an absent product succeeds", func(t *testing.T) {
		svc, store := newService()
		session, _ := store.GetOrCreate("")

		summary, err := svc.RemoveItem(ctx, session, 42)

		require.NoError(t, err)
		assert.Equal(t, "0.00", summary.TotalCost)
	})

	t.Run("clear empties the cart", func(t *testing.T) {
		svc, store := newService()
		session, _ := store.GetOrCreate("")
		_, err := svc.AddItem(ctx, session, 1)
		require.NoError(t, err)

		summary, err := svc.Clear(ctx, session)

		require.NoError(t, err)
		assert.Empty(t, summary.Lines)
		assert.Equal(t, 0, summary.TotalItemCount)
	})

	t.Run("sessions are isolated from each other", func(t *testing.T) {
		svc, store := newService()
		first, _ := store.GetOrCreate("")
		second, _ := store.GetOrCreate("")

		_, err := svc.AddItem(ctx, first, 1)
		require.NoError(t, err)

		summary := svc.Summary(ctx, second)
		assert.Equal(t, 0, summary.TotalItemCount)
	})

	t.Run("two of one product plus one of another", func(t *testing.T) {
		svc, store := newService()
		session, _ := store.GetOrCreate("")

		_, err := svc.AddItem(ctx, session, 1)
		require.NoError(t, err)
		_, err = svc.AddItem(ctx, session, 1)
		require.NoError(t, err)
		summary, err := svc.AddItem(ctx, session, 2)
		require.NoError(t, err)

		assert.Equal(t, 3, summary.TotalItemCount)
		assert.Equal(t, "699.97", summary.TotalCost)
	})
}

func TestCheckoutService_SelectPaymentMethod(t *testing.T) {
	ctx := context.Background()
	store := services.NewSessionStore()
	svc := newCheckoutService(&fakeShareSink{}, &fakeFileSink{})

	t.Run("accepts a known method", func(t *testing.T) {
		session, _ := store.GetOrCreate("")

		err := svc.SelectPaymentMethod(ctx, session, "vodafone")

		require.NoError(t, err)
		_, methodID := session.OrderContext()
		assert.Equal(t, "vodafone", methodID)
	})

	t.Run("rejects an unknown method", func(t *testing.T) {
		session, _ := store.GetOrCreate("")

		err := svc.SelectPaymentMethod(ctx, session, "cash-on-delivery")

		require.Error(t, err)
		svcErr, ok := application.IsServiceError(err)
		require.True(t, ok)
		assert.Equal(t, application.ErrCodeNotFound, svcErr.Code)
	})

	t.Run("empty ID clears the selection", func(t *testing.T) {
		session, _ := store.GetOrCreate("")
		require.NoError(t, svc.SelectPaymentMethod(ctx, session, "orange"))

		err := svc.SelectPaymentMethod(ctx, session, "")

		require.NoError(t, err)
		_, methodID := session.OrderContext()
		assert.Empty(t, methodID)
	})
}

func TestCheckoutService_GenerateInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("formats the cart and snapshots it into history", func(t *testing.T) {
		store := services.NewSessionStore()
		svc := newCheckoutService(&fakeShareSink{}, &fakeFileSink{})
		session, _ := store.GetOrCreate("")
		session.AddItem(testCatalog[0])
		svc.SetBuyerName(ctx, session, "Ali")
		require.NoError(t, svc.SelectPaymentMethod(ctx, session, "vodafone"))

		snap, err := svc.GenerateInvoice(ctx, session)

		require.NoError(t, err)
		assert.NotEmpty(t, snap.ID)
		assert.Equal(t, time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC), snap.CreatedAt)
		assert.Contains(t, snap.Content, "Date: 15/03/2026\n")
		assert.Contains(t, snap.Content, "Buyer name: Ali\n")
		assert.Contains(t, snap.Content, "Payment method: Vodafone Cash\n")
		assert.Contains(t, snap.Content, "Extra Gold x1 - 199.99 EGP\n")
		assert.Contains(t, snap.Content, "Total: 199.99 EGP")

		history := svc.InvoiceHistory(ctx, session)
		require.Len(t, history, 1)
		assert.Equal(t, snap, history[0])
	})

	t.Run("no selected method prints the unspecified sentinel", func(t *testing.T) {
		store := services.NewSessionStore()
		svc := newCheckoutService(&fakeShareSink{}, &fakeFileSink{})
		session, _ := store.GetOrCreate("")

		snap, err := svc.GenerateInvoice(ctx, session)

		require.NoError(t, err)
		assert.Contains(t, snap.Content, "Payment method: unspecified\n")
	})

	t.Run("history grows in generation order", func(t *testing.T) {
		store := services.NewSessionStore()
		svc := newCheckoutService(&fakeShareSink{}, &fakeFileSink{})
		session, _ := store.GetOrCreate("")

		first, err := svc.GenerateInvoice(ctx, session)
		require.NoError(t, err)
		second, err := svc.GenerateInvoice(ctx, session)
		require.NoError(t, err)

		history := svc.InvoiceHistory(ctx, session)
		require.Len(t, history, 2)
		assert.Equal(t, first.ID, history[0].ID)
		assert.Equal(t, second.ID, history[1].ID)
	})

	t.Run("snapshots are immutable copies", func(t *testing.T) {
		store := services.NewSessionStore()
		svc := newCheckoutService(&fakeShareSink{}, &fakeFileSink{})
		session, _ := store.GetOrCreate("")
		session.AddItem(testCatalog[0])

		snap, err := svc.GenerateInvoice(ctx, session)
		require.NoError(t, err)

		session.ClearCart()

		history := svc.InvoiceHistory(ctx, session)
		require.Len(t, history, 1)
		assert.Equal(t, snap.Content, history[0].Content)
	})
}

func TestCheckoutService_Dispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("share hands the payload to the share sink", func(t *testing.T) {
		share := &fakeShareSink{}
		store := services.NewSessionStore()
		svc := newCheckoutService(share, &fakeFileSink{})
		session, _ := store.GetOrCreate("")
		session.AddItem(testCatalog[0])

		link, err := svc.ShareWhatsApp(ctx, session)

		require.NoError(t, err)
		assert.Equal(t, "https://wa.me/201098662418?text=stub", link)
		assert.Equal(t, "201098662418", share.destination)
		assert.Contains(t, share.payload, "Extra Gold x1 - 199.99 EGP")
	})

	t.Run("share sink failure surfaces as an internal error", func(t *testing.T) {
		share := &fakeShareSink{err: errors.New("boom")}
		store := services.NewSessionStore()
		svc := newCheckoutService(share, &fakeFileSink{})
		session, _ := store.GetOrCreate("")

		_, err := svc.ShareWhatsApp(ctx, session)

		require.Error(t, err)
		svcErr, ok := application.IsServiceError(err)
		require.True(t, ok)
		assert.Equal(t, application.ErrCodeInternal, svcErr.Code)
	})

	t.Run("download hands the payload to the file sink", func(t *testing.T) {
		file := &fakeFileSink{}
		store := services.NewSessionStore()
		svc := newCheckoutService(&fakeShareSink{}, file)
		session, _ := store.GetOrCreate("")
		session.AddItem(testCatalog[1])

		filename, content, err := svc.DownloadInvoice(ctx, session)

		require.NoError(t, err)
		assert.Equal(t, "invoice.txt", filename)
		assert.Contains(t, content, "Speed Boost x1 - 299.99 EGP")
		assert.Equal(t, "invoice.txt", file.filename)
		assert.Equal(t, content, file.payload)
	})

	t.Run("dispatching does not touch the invoice history", func(t *testing.T) {
		store := services.NewSessionStore()
		svc := newCheckoutService(&fakeShareSink{}, &fakeFileSink{})
		session, _ := store.GetOrCreate("")

		_, err := svc.ShareWhatsApp(ctx, session)
		require.NoError(t, err)
		_, _, err = svc.DownloadInvoice(ctx, session)
		require.NoError(t, err)

		assert.Empty(t, svc.InvoiceHistory(ctx, session))
	})
}

func TestChatService(t *testing.T) {
	ctx := context.Background()

	newService := func() (*services.ChatService, *services.SessionStore) {
		return services.NewChatService(testCatalog, "EGP", testLogger()), services.NewSessionStore()
	}

	t.Run("answers a known command", func(t *testing.T) {
		svc, store := newService()
		session, _ := store.GetOrCreate("")
		session.AddItem(testCatalog[0])
		session.AddItem(testCatalog[0])

		reply, err := svc.Respond(ctx, session, "total")

		require.NoError(t, err)
		assert.Equal(t, "The total is: 399.98 EGP", reply)
	})

	t.Run("blank input is rejected before dispatch", func(t *testing.T) {
		svc, store := newService()
		session, _ := store.GetOrCreate("")

		for _, input := range []string{"", "   ", "\t\n"} {
			_, err := svc.Respond(ctx, session, input)

			require.Error(t, err)
			svcErr, ok := application.IsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, application.ErrCodeInvalidInput, svcErr.Code)
			assert.True(t, domain.IsErrorCode(err, domain.ErrCodeEmptyMessage))
		}

		// Rejected input leaves no trace in the transcript.
		assert.Empty(t, svc.Transcript(ctx, session))
	})

	t.Run("transcript records greeting, user message and reply", func(t *testing.T) {
		svc, store := newService()
		session, _ := store.GetOrCreate("")

		_, err := svc.Respond(ctx, session, "help")
		require.NoError(t, err)
		_, err = svc.Respond(ctx, session, "xyz")
		require.NoError(t, err)

		transcript := svc.Transcript(ctx, session)
		require.Len(t, transcript, 5)
		assert.Equal(t, "Hi! Type 'help' for a list of commands.", transcript[0])
		assert.Equal(t, "You: help", transcript[1])
		assert.Equal(t, "You: xyz", transcript[3])
		assert.Equal(t,
			"Bot: Sorry, I don't understand that command. Type 'help' for a list of commands.",
			transcript[4])
	})
}
