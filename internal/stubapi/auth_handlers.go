package stubapi

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/fernandoemejia/ecommerce-frontend/internal/domain"
)

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.m.Lock()
	defer s.m.Unlock()

	acc, ok := s.accounts[req.Email]
	if !ok || acc.password != req.Password {
		respondError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if !acc.user.Enabled {
		respondError(w, http.StatusForbidden, "Account is disabled")
		return
	}

	token := "tok-" + uuid.NewString()
	s.tokens[token] = acc.user.ID

	respondJSON(w, http.StatusOK, domain.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		User:      acc.user,
	})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" || req.Username == "" {
		respondError(w, http.StatusBadRequest, "Username, email and password are required")
		return
	}

	s.m.Lock()
	defer s.m.Unlock()

	if _, exists := s.accounts[req.Email]; exists {
		respondError(w, http.StatusConflict, "Email is already registered")
		return
	}

	user := domain.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		Role:      domain.RoleCustomer,
		Enabled:   true,
	}
	s.addAccount(user, req.Password)

	respondJSON(w, http.StatusCreated, s.accounts[req.Email].user)
}

func (s *Server) currentUser(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r.Context())

	s.m.Lock()
	defer s.m.Unlock()

	for _, acc := range s.accounts {
		if acc.user.ID == userID {
			respondJSON(w, http.StatusOK, acc.user)
			return
		}
	}
	respondError(w, http.StatusNotFound, "User not found")
}
