//go:build unit || e2e

// Package ledgertest runs an in-process stand-in for the loyalty-points
// ledger service. It implements the same balance and atomic check-and-debit
// endpoints the real ledger exposes, backed by an in-memory balance table.
package ledgertest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/google/uuid"
)

type DebitRecord struct {
	BrandID uuid.UUID
	UserID  uuid.UUID
	Amount  int64
	Model   string
	RefID   uuid.UUID
}

type Server struct {
	httpServer *httptest.Server

	mu           sync.Mutex
	balances     map[string]int64
	debits       []DebitRecord
	failNextWith int // HTTP status forced onto the next debit, 0 when disarmed
}

func NewServer() *Server {
	s := &Server{balances: make(map[string]int64)}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/brands/{brand}/users/{user}/points", s.handleBalance)
	mux.HandleFunc("POST /api/brands/{brand}/points/debit", s.handleDebit)

	s.httpServer = httptest.NewServer(mux)
	return s
}

func (s *Server) URL() string {
	return s.httpServer.URL
}

func (s *Server) Close() {
	s.httpServer.Close()
}

func (s *Server) SetBalance(brandID, userID uuid.UUID, points int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[balanceKey(brandID, userID)] = points
}

func (s *Server) Balance(brandID, userID uuid.UUID) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balances[balanceKey(brandID, userID)]
}

// FailNextDebitWith forces the next debit request to return the given
// status without touching any balance.
func (s *Server) FailNextDebitWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNextWith = status
}

func (s *Server) Debits() []DebitRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]DebitRecord(nil), s.debits...)
}

func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances = make(map[string]int64)
	s.debits = nil
	s.failNextWith = 0
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	brandID, err := uuid.Parse(r.PathValue("brand"))
	if err != nil {
		http.Error(w, "invalid brand id", http.StatusBadRequest)
		return
	}
	userID, err := uuid.Parse(r.PathValue("user"))
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	points := s.balances[balanceKey(brandID, userID)]
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]int64{"points": points})
}

func (s *Server) handleDebit(w http.ResponseWriter, r *http.Request) {
	brandID, err := uuid.Parse(r.PathValue("brand"))
	if err != nil {
		http.Error(w, "invalid brand id", http.StatusBadRequest)
		return
	}

	var req struct {
		UserID uuid.UUID `json:"user_id"`
		Amount int64     `json:"amount"`
		Model  string    `json:"model"`
		RefID  uuid.UUID `json:"ref_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid debit request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failNextWith != 0 {
		status := s.failNextWith
		s.failNextWith = 0
		http.Error(w, "ledger failure injected by test", status)
		return
	}

	key := balanceKey(brandID, req.UserID)
	balance := s.balances[key]
	if balance < req.Amount {
		http.Error(w, "insufficient points", http.StatusPaymentRequired)
		return
	}

	s.balances[key] = balance - req.Amount
	s.debits = append(s.debits, DebitRecord{
		BrandID: brandID,
		UserID:  req.UserID,
		Amount:  req.Amount,
		Model:   req.Model,
		RefID:   req.RefID,
	})

	writeJSON(w, http.StatusOK, map[string]int64{
		"points_used":      req.Amount,
		"remaining_points": s.balances[key],
	})
}

func balanceKey(brandID, userID uuid.UUID) string {
	return brandID.String() + "/" + userID.String()
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
