package order

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"CoffeeCloud/internal/auth"
	"CoffeeCloud/internal/catalog"
	"CoffeeCloud/pkg/kit"
)

const maxBodyBytes = 1 << 20

type Server struct {
	Log     *zap.Logger
	Orders  *Repo
	Catalog CoffeeSource
}

// placeReq is the body of POST /order and PUT /order/:id. The id field is
// the coffee id, not the order id.
type placeReq struct {
	ID   int          `json:"id"`
	Size catalog.Size `json:"size"`
}

func (s *Server) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "Invalid session.")
		return
	}

	recs, err := s.Orders.List(r.Context(), sess.Username)
	if err != nil {
		s.Log.Error("list orders failed", zap.String("username", sess.Username), zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "Unable to get orders.")
		return
	}

	now := time.Now()
	views := make([]View, 0, len(recs))
	for _, rec := range recs {
		views = append(views, MapOrder(rec, s.Catalog, now))
	}

	kit.WriteJSON(w, http.StatusOK, views)
}

func (s *Server) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "Invalid session.")
		return
	}

	rec, err := s.Orders.Get(r.Context(), sess.Username, chi.URLParam(r, "id"))
	if errors.Is(err, ErrNotFound) {
		kit.WriteError(w, r, http.StatusNotFound, "Unable to get order.")
		return
	}
	if err != nil {
		s.Log.Error("get order failed", zap.String("username", sess.Username), zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "Unable to get orders.")
		return
	}

	kit.WriteJSON(w, http.StatusOK, MapOrder(rec, s.Catalog, time.Now()))
}

func (s *Server) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "Invalid session.")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req placeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid request body.")
		return
	}

	rec, err := s.Orders.Create(r.Context(), sess.Username, req.ID, req.Size)
	if err != nil {
		s.Log.Error("create order failed", zap.String("username", sess.Username), zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "Unable to complete order.")
		return
	}

	kit.WriteJSON(w, http.StatusOK, MapOrder(rec, s.Catalog, time.Now()))
}

func (s *Server) Put(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "Invalid session.")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req placeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid request body.")
		return
	}

	rec, err := s.Orders.Put(r.Context(), sess.Username, chi.URLParam(r, "id"), req.ID, req.Size)
	if err != nil {
		s.Log.Error("put order failed", zap.String("username", sess.Username), zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "Unable to complete order.")
		return
	}

	kit.WriteJSON(w, http.StatusOK, MapOrder(rec, s.Catalog, time.Now()))
}

func (s *Server) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "Invalid session.")
		return
	}

	rec, err := s.Orders.Delete(r.Context(), sess.Username, chi.URLParam(r, "id"))
	if errors.Is(err, ErrNotFound) {
		kit.WriteError(w, r, http.StatusNotFound, "Unable to get order.")
		return
	}
	if err != nil {
		s.Log.Error("delete order failed", zap.String("username", sess.Username), zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "Unable to get orders.")
		return
	}

	kit.WriteJSON(w, http.StatusOK, MapOrder(rec, s.Catalog, time.Now()))
}
