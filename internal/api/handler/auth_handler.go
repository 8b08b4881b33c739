package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"spinnergy/internal/api/middleware"
	"spinnergy/internal/api/util"
	"spinnergy/internal/core/service"
)

type AuthHandler struct {
	accounts service.AccountService
	sessions service.SessionService
}

func NewAuthHandler(accounts service.AccountService, sessions service.SessionService) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		sessions: sessions,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Score   int    `json:"score"`
	IsAdmin bool   `json:"isAdmin"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.accounts.Register(req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAccountData), errors.Is(err, service.ErrEmailTaken):
			util.WriteError(w, http.StatusBadRequest, err.Error())
		default:
			util.WriteError(w, http.StatusInternalServerError, "Error creating account")
		}
		return
	}

	util.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "account created",
		"user": map[string]string{
			"name":  account.Name,
			"email": account.Email,
		},
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.sessions.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			util.WriteError(w, http.StatusBadRequest, err.Error())
		} else {
			util.WriteError(w, http.StatusInternalServerError, "Error authenticating")
		}
		return
	}

	token, err := h.sessions.Issue(account)
	if err != nil {
		util.WriteError(w, http.StatusInternalServerError, "Error issuing token")
		return
	}

	util.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user": userResponse{
			Name:    account.Name,
			Email:   account.Email,
			Score:   account.Score,
			IsAdmin: account.IsAdmin,
		},
	})
}

func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	account := middleware.AccountFromContext(r.Context())
	if account == nil {
		util.WriteError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	util.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"name":    account.Name,
		"email":   account.Email,
		"score":   account.Score,
		"isAdmin": account.IsAdmin,
		"history": account.History,
	})
}
