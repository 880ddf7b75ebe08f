package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/ops-dashboard/internal/applog"
	"github.com/rogerio-castellano/ops-dashboard/internal/auth"
)

func authResult(s auth.Session) AuthResult {
	return AuthResult{
		Token:        s.Token,
		RefreshToken: s.RefreshToken,
		User: UserResponse{
			ID:    s.User.ID,
			Email: s.User.Email,
			Name:  s.User.Name,
			Role:  s.User.Role,
		},
	}
}

// RegisterHandler godoc
// @Summary Register a new user and return tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "email, password and name"
// @Success 201 {object} AuthResult
// @Failure 400 {object} ErrorResponse
// @Router /api/auth/register [post]
func (s *Server) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := readJSON(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid input")
		return
	}

	session, err := s.auth.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		writeError(w, r, "register", err)
		return
	}
	applog.Audit(r, "user_registered", map[string]any{"user_id": session.User.ID})
	_ = writeJSON(w, http.StatusCreated, authResult(session))
}

// LoginHandler godoc
// @Summary Log in and return tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "email and password"
// @Success 200 {object} AuthResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/login [post]
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := readJSON(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid input")
		return
	}
	if errs := validateCredentials(req); len(errs) > 0 {
		writeError(w, r, "login", errs)
		return
	}

	session, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, "login", err)
		return
	}
	applog.Audit(r, "user_login", map[string]any{"user_id": session.User.ID})
	_ = writeJSON(w, http.StatusOK, authResult(session))
}

// RefreshHandler godoc
// @Summary Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RefreshRequest true "refresh token"
// @Success 200 {object} AuthResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/refresh [post]
func (s *Server) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := readJSON(w, r, &req); err != nil || req.RefreshToken == "" {
		writeMessage(w, http.StatusBadRequest, "refresh token required")
		return
	}

	session, err := s.auth.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeError(w, r, "refresh", err)
		return
	}
	_ = writeJSON(w, http.StatusOK, authResult(session))
}

// LogoutHandler godoc
// @Summary Revoke a refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RefreshRequest true "refresh token"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/auth/logout [post]
func (s *Server) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := readJSON(w, r, &req); err != nil || req.RefreshToken == "" {
		writeMessage(w, http.StatusBadRequest, "refresh token required")
		return
	}
	if err := s.auth.Logout(r.Context(), req.RefreshToken); err != nil {
		writeError(w, r, "logout", err)
		return
	}
	_ = writeJSON(w, http.StatusOK, MessageResponse{Message: "logged out"})
}
