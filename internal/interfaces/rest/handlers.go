package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/DanielPopoola/empire-storefront/internal/application"
	"github.com/DanielPopoola/empire-storefront/internal/application/services"
	"github.com/gorilla/mux"
)

// SessionHeader carries the session ID. When a request arrives without one
// (or with an unknown one) a fresh session is minted and its ID is echoed
// back in the same header.
const SessionHeader = "X-Session-ID"

// Contact links of the storefront, served as static data.
var contactInfo = ContactDTO{
	Facebook:       "https://www.facebook.com/profile.php?id=61558933496823",
	WhatsApp:       "https://wa.me/201098662418",
	Email:          "sinperrr3ddd@gmail.com",
	AlternateEmail: "empirewiki200@gmail.com",
}

// Handler is the HTTP layer wired over the application services.
type Handler struct {
	catalogService  *services.CatalogService
	cartService     *services.CartService
	checkoutService *services.CheckoutService
	chatService     *services.ChatService
	sessions        *services.SessionStore
	logger          *slog.Logger
}

func NewHandler(
	catalogService *services.CatalogService,
	cartService *services.CartService,
	checkoutService *services.CheckoutService,
	chatService *services.ChatService,
	sessions *services.SessionStore,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		catalogService:  catalogService,
		cartService:     cartService,
		checkoutService: checkoutService,
		chatService:     chatService,
		sessions:        sessions,
		logger:          logger,
	}
}

// RegisterRoutes registers all routes on the provided router.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/contact", h.Contact).Methods(http.MethodGet)

	r.HandleFunc("/products", h.ListProducts).Methods(http.MethodGet)
	r.HandleFunc("/payment-methods", h.ListPaymentMethods).Methods(http.MethodGet)

	r.HandleFunc("/cart", h.GetCart).Methods(http.MethodGet)
	r.HandleFunc("/cart", h.ClearCart).Methods(http.MethodDelete)
	r.HandleFunc("/cart/items", h.AddCartItem).Methods(http.MethodPost)
	r.HandleFunc("/cart/items/{id}", h.RemoveCartItem).Methods(http.MethodDelete)

	r.HandleFunc("/checkout", h.UpdateCheckout).Methods(http.MethodPut)

	r.HandleFunc("/invoices", h.GenerateInvoice).Methods(http.MethodPost)
	r.HandleFunc("/invoices", h.ListInvoices).Methods(http.MethodGet)
	r.HandleFunc("/invoices/whatsapp", h.ShareInvoice).Methods(http.MethodPost)
	r.HandleFunc("/invoices/download", h.DownloadInvoice).Methods(http.MethodPost)

	r.HandleFunc("/chat", h.Chat).Methods(http.MethodPost)
	r.HandleFunc("/chat", h.ChatTranscript).Methods(http.MethodGet)
}

// session resolves the caller's session from the header, minting one when
// needed, and always echoes the ID back.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) *services.Session {
	s, created := h.sessions.GetOrCreate(r.Header.Get(SessionHeader))
	if created {
		h.logger.Info("session created", "session_id", s.ID)
	}
	w.Header().Set(SessionHeader, s.ID)
	return s
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, contactInfo)
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, toProductDTOs(h.catalogService.ListProducts()))
}

func (h *Handler) ListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, toPaymentMethodDTOs(h.catalogService.ListPaymentMethods()))
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	session := h.session(w, r)
	summary := h.cartService.Summary(r.Context(), session)
	WriteJSON(w, http.StatusOK, toCartSummaryDTO(summary))
}

type addCartItemRequest struct {
	ProductID int `json:"product_id"`
}

func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}

	session := h.session(w, r)
	summary, err := h.cartService.AddItem(r.Context(), session, req.ProductID)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, toCartSummaryDTO(summary))
}

func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		WriteError(w, application.NewInvalidInputError(errors.New("product id must be an integer")), h.logger)
		return
	}

	session := h.session(w, r)
	summary, err := h.cartService.RemoveItem(r.Context(), session, productID)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, toCartSummaryDTO(summary))
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	session := h.session(w, r)
	summary, err := h.cartService.Clear(r.Context(), session)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, toCartSummaryDTO(summary))
}

type updateCheckoutRequest struct {
	BuyerName       *string `json:"buyer_name"`
	PaymentMethodID *string `json:"payment_method_id"`
}

// UpdateCheckout sets the order context. Both fields are optional; absent
// fields are left untouched.
func (h *Handler) UpdateCheckout(w http.ResponseWriter, r *http.Request) {
	var req updateCheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}

	session := h.session(w, r)
	if req.BuyerName != nil {
		h.checkoutService.SetBuyerName(r.Context(), session, *req.BuyerName)
	}
	if req.PaymentMethodID != nil {
		if err := h.checkoutService.SelectPaymentMethod(r.Context(), session, *req.PaymentMethodID); err != nil {
			WriteError(w, err, h.logger)
			return
		}
	}

	buyerName, methodID := session.OrderContext()
	WriteJSON(w, http.StatusOK, map[string]string{
		"buyer_name":        buyerName,
		"payment_method_id": methodID,
	})
}

func (h *Handler) GenerateInvoice(w http.ResponseWriter, r *http.Request) {
	session := h.session(w, r)
	snap, err := h.checkoutService.GenerateInvoice(r.Context(), session)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}
	WriteJSON(w, http.StatusCreated, toInvoiceDTO(snap))
}

func (h *Handler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	session := h.session(w, r)
	snaps := h.checkoutService.InvoiceHistory(r.Context(), session)
	WriteJSON(w, http.StatusOK, toInvoiceDTOs(snaps))
}

func (h *Handler) ShareInvoice(w http.ResponseWriter, r *http.Request) {
	session := h.session(w, r)
	link, err := h.checkoutService.ShareWhatsApp(r.Context(), session)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, ShareDTO{URL: link})
}

func (h *Handler) DownloadInvoice(w http.ResponseWriter, r *http.Request) {
	session := h.session(w, r)
	filename, content, err := h.checkoutService.DownloadInvoice(r.Context(), session)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, DownloadDTO{Filename: filename, Content: content})
}

type chatRequest struct {
	Message string `json:"message"`
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}

	session := h.session(w, r)
	reply, err := h.chatService.Respond(r.Context(), session, req.Message)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, ChatReplyDTO{Reply: reply})
}

func (h *Handler) ChatTranscript(w http.ResponseWriter, r *http.Request) {
	session := h.session(w, r)
	transcript := h.chatService.Transcript(r.Context(), session)
	if transcript == nil {
		transcript = []string{}
	}
	WriteJSON(w, http.StatusOK, transcript)
}
