package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bulletin-dev/bulletin/internal/api"
	"github.com/bulletin-dev/bulletin/internal/utils"
)

func (h *Handler) InviteModeration(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorId(r)
	if !ok {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	var body api.ModerationRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	mod, err := h.moderation.Invite(actor, body.BoardId, body.ProposedModerator)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, mod, http.StatusCreated)
}

func (h *Handler) AcceptModeration(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorId(r)
	if !ok {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	var body api.ModerationRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	mod, err := h.moderation.Accept(actor, body.BoardId, body.ProposedModerator)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, mod)
}

func (h *Handler) RevokeModeration(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorId(r)
	if !ok {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	var body api.ModerationRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.moderation.Revoke(actor, body.BoardId, body.ProposedModerator); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) ListModeration(w http.ResponseWriter, r *http.Request) {
	mods, err := h.moderation.List()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.ModerationListResponse{Moderation: mods})
}

func (h *Handler) ListUserModeration(w http.ResponseWriter, r *http.Request) {
	userId, err := utils.ParseId(chi.URLParam(r, "userId"), "user_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	mods, err := h.moderation.ListByUser(userId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.ModerationListResponse{Moderation: mods})
}
