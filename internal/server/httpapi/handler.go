package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/server/auth"
	"github.com/dmitrijs2005/passvault/internal/server/models"
	"github.com/dmitrijs2005/passvault/internal/server/vault"
	"github.com/dmitrijs2005/passvault/internal/strength"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// credentialResponse is the wire form of one record. Password is omitted
// from create/update responses; only the list operation returns the
// decrypted secret.
type credentialResponse struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Username     string          `json:"username"`
	Password     string          `json:"password,omitempty"`
	URL          string          `json:"url"`
	Category     models.Category `json:"category"`
	Strength     strength.Tier   `json:"strength"`
	LastModified time.Time       `json:"lastModified"`
}

func toCredentialResponse(c *models.Credential) credentialResponse {
	return credentialResponse{
		ID:           c.ID,
		Title:        c.Title,
		Username:     c.Username,
		Password:     c.Secret,
		URL:          c.URL,
		Category:     c.Category,
		Strength:     c.Strength,
		LastModified: c.UpdatedAt,
	}
}

// internalError logs the failure server-side and reports a neutral message.
func (s *HTTPServer) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err.Error())
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

// ---- accounts ----

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *HTTPServer) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	user, err := s.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			writeError(w, http.StatusBadRequest, "All fields are required")
		case errors.Is(err, common.ErrorEmailAlreadyExists):
			writeError(w, http.StatusBadRequest, "User already exists")
		default:
			s.internalError(w, r, err)
		}
		return
	}

	s.logger.Info(r.Context(), "user registered", "user_id", user.ID)

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User created successfully",
		"user":    map[string]string{"id": user.ID, "email": user.Email},
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Email and password required")
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			writeError(w, http.StatusBadRequest, "Email and password required")
		case errors.Is(err, common.ErrorInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
		default:
			s.internalError(w, r, err)
		}
		return
	}

	SetSessionCookie(w, token, s.cookieOpts)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Login successful"})
}

func (s *HTTPServer) handleLogout(w http.ResponseWriter, r *http.Request) {
	ClearSessionCookie(w, s.cookieOpts)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (s *HTTPServer) handleCheckToken(w http.ResponseWriter, r *http.Request) {
	token := sessionToken(r)
	if token == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]bool{"valid": false})
		return
	}
	if _, err := auth.ParseToken(token, s.jwtSecret); err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]bool{"valid": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"valid": true})
}

// ---- vault ----

func (s *HTTPServer) handleListCredentials(w http.ResponseWriter, r *http.Request) {
	id, ok := s.authorize(w, r)
	if !ok {
		return
	}

	items, err := s.vault.List(r.Context(), id.UserID)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	resp := make([]credentialResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toCredentialResponse(item))
	}

	writeJSON(w, http.StatusOK, map[string]any{"passwords": resp})
}

type createCredentialRequest struct {
	Title    string `json:"title"`
	Username string `json:"username"`
	Password string `json:"password"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

func (s *HTTPServer) handleCreateCredential(w http.ResponseWriter, r *http.Request) {
	id, ok := s.authorize(w, r)
	if !ok {
		return
	}

	var req createCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Title and password are required")
		return
	}

	created, err := s.vault.Create(r.Context(), id.UserID, vault.CreateParams{
		Title:    req.Title,
		Username: req.Username,
		Secret:   req.Password,
		URL:      req.URL,
		Category: models.Category(req.Category),
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			writeError(w, http.StatusBadRequest, "Title and password are required")
		case errors.Is(err, common.ErrorInvalidCategory):
			writeError(w, http.StatusBadRequest, "Invalid category")
		default:
			s.internalError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":  "Password added successfully",
		"password": toCredentialResponse(created),
	})
}

type updateCredentialRequest struct {
	ID       string  `json:"id"`
	Title    *string `json:"title"`
	Username *string `json:"username"`
	Password *string `json:"password"`
	URL      *string `json:"url"`
	Category *string `json:"category"`
}

func (s *HTTPServer) handleUpdateCredential(w http.ResponseWriter, r *http.Request) {
	id, ok := s.authorize(w, r)
	if !ok {
		return
	}

	var req updateCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Password ID is required")
		return
	}

	var category *models.Category
	if req.Category != nil {
		c := models.Category(*req.Category)
		category = &c
	}

	updated, err := s.vault.Update(r.Context(), id.UserID, req.ID, vault.UpdateParams{
		Title:    req.Title,
		Username: req.Username,
		Secret:   req.Password,
		URL:      req.URL,
		Category: category,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			writeError(w, http.StatusBadRequest, "Password ID is required")
		case errors.Is(err, common.ErrorInvalidCategory):
			writeError(w, http.StatusBadRequest, "Invalid category")
		case errors.Is(err, common.ErrorNotFound):
			writeError(w, http.StatusNotFound, "Password not found")
		default:
			s.internalError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Password updated successfully",
		"password": toCredentialResponse(updated),
	})
}

func (s *HTTPServer) handleDeleteCredential(w http.ResponseWriter, r *http.Request) {
	id, ok := s.authorize(w, r)
	if !ok {
		return
	}

	credID := r.URL.Query().Get("id")

	if err := s.vault.Delete(r.Context(), id.UserID, credID); err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			writeError(w, http.StatusBadRequest, "Password ID is required")
		case errors.Is(err, common.ErrorNotFound):
			writeError(w, http.StatusNotFound, "Password not found")
		default:
			s.internalError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Password deleted successfully"})
}
