package services

import (
	"sync"
	"time"

	"github.com/DanielPopoola/empire-storefront/internal/domain"
	"github.com/google/uuid"
)

// InvoiceSnapshot is an immutable copy of a generated invoice kept in the
// session history.
type InvoiceSnapshot struct {
	ID        string
	Content   string
	CreatedAt time.Time
}

// Session owns one buyer's transient state: the cart ledger, the order
// context, the chat transcript and the invoice history. All access goes
// through the locking methods below so mutations stay strictly ordered
// even when a client fires requests concurrently.
type Session struct {
	ID string

	mu              sync.Mutex
	cart            *domain.Cart
	buyerName       string
	paymentMethodID string
	transcript      []string
	invoices        []InvoiceSnapshot
}

func newSession(id string) *Session {
	return &Session{
		ID:   id,
		cart: domain.NewCart(),
	}
}

func (s *Session) AddItem(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.AddItem(p)
}

func (s *Session) RemoveItem(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.RemoveItem(productID)
}

func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// CartView runs fn against the ledger while the session lock is held. fn
// must not retain the cart.
func (s *Session) CartView(fn func(cart *domain.Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.cart)
}

func (s *Session) SetBuyerName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buyerName = name
}

func (s *Session) SelectPaymentMethod(methodID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paymentMethodID = methodID
}

// OrderContext returns the buyer name and selected payment method ID.
func (s *Session) OrderContext() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buyerName, s.paymentMethodID
}

// OrderView runs fn against the ledger and order context under one lock
// acquisition, so checkout sees a consistent snapshot.
func (s *Session) OrderView(fn func(cart *domain.Cart, buyerName, paymentMethodID string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.cart, s.buyerName, s.paymentMethodID)
}

func (s *Session) AppendInvoice(snap InvoiceSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = append(s.invoices, snap)
}

func (s *Session) Invoices() []InvoiceSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]InvoiceSnapshot, len(s.invoices))
	copy(out, s.invoices)
	return out
}

// Chat records the user message, computes the reply against the current
// catalog and ledger state, records it, and returns it.
func (s *Session) Chat(input string, catalog []domain.Product, currencyLabel string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.transcript) == 0 {
		s.transcript = append(s.transcript, domain.Greeting)
	}
	reply := domain.Respond(input, catalog, s.cart, currencyLabel)
	s.transcript = append(s.transcript, "You: "+input, "Bot: "+reply)
	return reply
}

func (s *Session) Transcript() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// SessionStore hands out sessions by ID, minting one when the caller has
// none yet. Lookups take the read lock; creation upgrades to the write lock.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// GetOrCreate returns the session for id, creating a fresh one when id is
// empty or unknown. The second return reports whether a session was minted.
func (st *SessionStore) GetOrCreate(id string) (*Session, bool) {
	if id != "" {
		st.mu.RLock()
		s, ok := st.sessions[id]
		st.mu.RUnlock()
		if ok {
			return s, false
		}
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if id != "" {
		if s, ok := st.sessions[id]; ok {
			return s, false
		}
	}

	s := newSession(uuid.New().String())
	st.sessions[s.ID] = s
	return s, true
}

// Len reports the number of live sessions.
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
