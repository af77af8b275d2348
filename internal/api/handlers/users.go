package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/emrekoca/recipebox/internal/api/httpx"
	"github.com/emrekoca/recipebox/internal/middleware"
	"github.com/emrekoca/recipebox/internal/models"
	"github.com/emrekoca/recipebox/internal/services"
)

type UserHandler struct {
	Users *services.UserService
}

func NewUserHandler(us *services.UserService) *UserHandler {
	return &UserHandler{Users: us}
}

type profileResp struct {
	User models.Profile `json:"user"`
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserID(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid or missing token")
		return
	}
	u, err := h.Users.Get(r.Context(), uid)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, profileResp{User: u.Profile()})
}

type updateProfileReq struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

type updateProfileResp struct {
	User    models.Profile `json:"user"`
	Message string         `json:"message"`
}

func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserID(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid or missing token")
		return
	}
	var req updateProfileReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	u, err := h.Users.UpdateProfile(r.Context(), uid, req.Username, req.Email)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updateProfileResp{User: u.Profile(), Message: "Profile updated"})
}
