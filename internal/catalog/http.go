package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"MobileStore/pkg/kit"
)

const readyTimeout = 1 * time.Second

type Server struct {
	Store Store
	Log   *zap.Logger

	StoreName       string
	DefaultCategory string
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		if err := s.Store.Ping(ctx); err != nil {
			s.logger().Warn("readyz failed", zap.Error(err))
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/", s.home)
	r.Get("/products", s.list)
	r.Get("/products/{id}", s.get)
	r.Get("/categories/{category}", s.list)

	return r
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	cats, err := s.Store.Categories(r.Context())
	if err != nil {
		s.logger().Error("list categories failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, HomePage{
		Store:           s.StoreName,
		DefaultCategory: s.defaultCategory(),
		Categories:      cats,
		Links: Links{
			Products: "/products?" + url.Values{"category": {s.defaultCategory()}}.Encode(),
			Product:  "/products/{id}",
		},
	})
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	if category == "" {
		category = r.URL.Query().Get("category")
	}
	if category == "" && !r.URL.Query().Has("category") {
		category = s.defaultCategory()
	}

	products, err := s.Store.ListByCategory(r.Context(), category)
	if err != nil {
		s.logger().Error("list products failed", zap.Error(err), zap.String("category", category))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	if products == nil {
		products = []Product{}
	}

	kit.WriteJSON(w, http.StatusOK, ProductsPage{
		Category: category,
		Count:    len(products),
		Products: products,
	})
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.Atoi(raw)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid product id", map[string]any{"id": raw})
		return
	}

	p, err := s.Store.GetByID(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		kit.WriteNotFound(w, r, "product", id)
		return
	}
	if err != nil {
		s.logger().Error("get product failed", zap.Error(err), zap.Int("id", id))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) defaultCategory() string {
	if s.DefaultCategory != "" {
		return s.DefaultCategory
	}
	return DefaultCategory
}

func (s *Server) logger() *zap.Logger {
	if s.Log != nil {
		return s.Log
	}
	return zap.NewNop()
}
