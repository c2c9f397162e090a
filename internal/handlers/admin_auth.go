package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kirvedev/ilan-backend/internal/middleware"
)

// AdminLoginRequest is the credential pair from the login form.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminLoginResponse carries the session token on success.
type AdminLoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
}

// AdminLogin handles POST /api/admin/login. The failure message is fixed and
// does not distinguish unknown user from wrong password.
func AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := AdminGate.Login(req.Username, req.Password)
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, AdminLoginResponse{
			Success: false,
			Message: "Geçersiz kullanıcı adı veya şifre",
		})
		return
	}

	respondJSON(w, http.StatusOK, AdminLoginResponse{Success: true, Token: token})
}

// AdminLogout handles POST /api/admin/logout, clearing the persisted session.
func AdminLogout(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionToken(r.Context())
	if token == "" {
		token = middleware.BearerToken(r)
	}
	if err := AdminGate.Logout(token); err != nil {
		respondError(w, http.StatusInternalServerError, "Logout failed")
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true})
}

// AdminSession handles GET /api/admin/session: the dashboard asks for the
// current gate state before rendering.
func AdminSession(w http.ResponseWriter, r *http.Request) {
	authenticated := AdminGate.Authenticated(middleware.BearerToken(r))
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"authenticated": authenticated,
	})
}
