package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bulletin-dev/bulletin/internal/api"
	"github.com/bulletin-dev/bulletin/internal/domain"
	"github.com/bulletin-dev/bulletin/internal/utils"
)

func (h *Handler) SetRole(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorId(r)
	if !ok {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	var body api.SetRoleRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, err := h.user.SetRole(actor, body.UserId, domain.Role(body.TargetRole))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, user)
}

func (h *Handler) GetAvatar(w http.ResponseWriter, r *http.Request) {
	userId, err := utils.ParseId(chi.URLParam(r, "userId"), "user_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	size, err := utils.ParseId(chi.URLParam(r, "size"), "size")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	url, err := h.user.AvatarURL(userId, int(size))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.AvatarResponse{AvatarURL: url})
}
