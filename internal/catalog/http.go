package catalog

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"CoffeeCloud/pkg/kit"
)

type Server struct {
	Catalog *Store
}

func (s *Server) List(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Catalog.ListSortedByID())
}

func (s *Server) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		kit.WriteError(w, r, http.StatusNotFound, "Invalid coffee ID.")
		return
	}

	c, ok := s.Catalog.Coffee(id)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Invalid coffee ID.")
		return
	}

	kit.WriteJSON(w, http.StatusOK, c)
}

func (s *Server) Tags(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Catalog.Tags())
}
