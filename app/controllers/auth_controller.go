package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"blogapi/app/models"
	"blogapi/app/services"
)

// AuthController handles the /api/auth endpoints.
type AuthController struct {
	auth   *services.AuthService
	logger *slog.Logger
}

// NewAuthController creates a new AuthController.
func NewAuthController(auth *services.AuthService, logger *slog.Logger) *AuthController {
	return &AuthController{auth: auth, logger: logger}
}

func (ac *AuthController) sendError(w http.ResponseWriter, op string, err error) {
	status, message := errorResponse(err)
	if status == http.StatusInternalServerError {
		ac.logger.Error(op, "error", err)
	}
	writeError(w, status, message)
}

// Login exchanges credentials for a session token.
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if input.Username == "" || input.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	session, user, err := ac.auth.Login(input.Username, input.Password)
	if err != nil {
		ac.sendError(w, "logging in", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token": session.Token,
		"user":  user.Profile(),
	})
}

// Verify reports whether a token still names a live session.
func (ac *AuthController) Verify(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if input.Token == "" {
		writeError(w, http.StatusBadRequest, "token is required")
		return
	}

	session, err := ac.auth.Verify(input.Token)
	if err != nil {
		ac.sendError(w, "verifying token", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user": models.Profile{ID: session.UserID, Username: session.Username},
	})
}

// Logout destroys the session. Unknown tokens still succeed.
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if input.Token == "" {
		writeError(w, http.StatusBadRequest, "token is required")
		return
	}

	if err := ac.auth.Logout(input.Token); err != nil {
		ac.sendError(w, "logging out", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
