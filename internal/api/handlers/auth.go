package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/emrekoca/recipebox/internal/api/httpx"
	"github.com/emrekoca/recipebox/internal/models"
	"github.com/emrekoca/recipebox/internal/services"
)

type AuthHandler struct {
	Users *services.UserService
}

func NewAuthHandler(us *services.UserService) *AuthHandler {
	return &AuthHandler{Users: us}
}

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResp struct {
	User    models.Profile `json:"user"`
	Message string         `json:"message"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	u, err := h.Users.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, registerResp{
		User:    u.Profile(),
		Message: "Registration successful",
	})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	User        models.Profile `json:"user"`
	AccessToken string         `json:"access_token"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Email and password required")
		return
	}
	u, tok, err := h.Users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, loginResp{User: u.Profile(), AccessToken: tok})
}
