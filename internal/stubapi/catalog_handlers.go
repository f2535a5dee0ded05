package stubapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fernandoemejia/ecommerce-frontend/internal/domain"
)

func paging(r *http.Request) (page, size int) {
	page, size = 0, 20
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v >= 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil && v > 0 {
		size = v
	}
	return page, size
}

func respondPage(w http.ResponseWriter, products []domain.Product, page, size int) {
	total := len(products)
	start := page * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}
	totalPages := (total + size - 1) / size

	respondJSON(w, http.StatusOK, pageEnvelope{
		Content:       products[start:end],
		TotalPages:    totalPages,
		TotalElements: int64(total),
		PageNumber:    page,
	})
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	page, size := paging(r)
	s.m.Lock()
	defer s.m.Unlock()
	respondPage(w, s.products, page, size)
}

func (s *Server) productByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	s.m.Lock()
	defer s.m.Unlock()
	if p := s.productNoLock(id); p != nil {
		respondJSON(w, http.StatusOK, p)
		return
	}
	respondError(w, http.StatusNotFound, "Product not found")
}

func (s *Server) productsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(chi.URLParam(r, "categoryID"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category id")
		return
	}
	page, size := paging(r)

	s.m.Lock()
	defer s.m.Unlock()
	var matched []domain.Product
	for _, p := range s.products {
		if p.CategoryID == categoryID {
			matched = append(matched, p)
		}
	}
	respondPage(w, matched, page, size)
}

func (s *Server) featuredProducts(w http.ResponseWriter, r *http.Request) {
	s.m.Lock()
	defer s.m.Unlock()
	featured := []domain.Product{}
	for _, p := range s.products {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	respondJSON(w, http.StatusOK, featured)
}

func (s *Server) searchProducts(w http.ResponseWriter, r *http.Request) {
	keyword := strings.ToLower(r.URL.Query().Get("keyword"))
	page, size := paging(r)

	s.m.Lock()
	defer s.m.Unlock()
	var matched []domain.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), keyword) ||
			strings.Contains(strings.ToLower(p.Description), keyword) {
			matched = append(matched, p)
		}
	}
	respondPage(w, matched, page, size)
}

func (s *Server) productsByPriceRange(w http.ResponseWriter, r *http.Request) {
	minPrice, errMin := strconv.ParseFloat(r.URL.Query().Get("minPrice"), 64)
	maxPrice, errMax := strconv.ParseFloat(r.URL.Query().Get("maxPrice"), 64)
	if errMin != nil || errMax != nil || minPrice < 0 || maxPrice < minPrice {
		respondError(w, http.StatusBadRequest, "Invalid price range")
		return
	}
	page, size := paging(r)

	s.m.Lock()
	defer s.m.Unlock()
	var matched []domain.Product
	for _, p := range s.products {
		if p.EffectivePrice >= minPrice && p.EffectivePrice <= maxPrice {
			matched = append(matched, p)
		}
	}
	respondPage(w, matched, page, size)
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	s.m.Lock()
	defer s.m.Unlock()
	respondJSON(w, http.StatusOK, s.categories)
}

func (s *Server) rootCategories(w http.ResponseWriter, r *http.Request) {
	s.m.Lock()
	defer s.m.Unlock()
	roots := []domain.Category{}
	for _, c := range s.categories {
		if c.ParentID == 0 {
			roots = append(roots, c)
		}
	}
	respondJSON(w, http.StatusOK, roots)
}

func (s *Server) categoryByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "categoryID"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	s.m.Lock()
	defer s.m.Unlock()
	for _, c := range s.categories {
		if c.ID == id {
			respondJSON(w, http.StatusOK, c)
			return
		}
	}
	respondError(w, http.StatusNotFound, "Category not found")
}
