package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bulletin-dev/bulletin/internal/api"
	"github.com/bulletin-dev/bulletin/internal/utils"
)

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorId(r)
	if !ok {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	var body api.CreateThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.thread.Create(actor, body.PostId, body.Content)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, thread, http.StatusCreated)
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseId(chi.URLParam(r, "threadId"), "thread_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.thread.Get(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, thread)
}

func (h *Handler) GetPostThreads(w http.ResponseWriter, r *http.Request) {
	postId, err := utils.ParseId(chi.URLParam(r, "postId"), "post_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	threads, err := h.thread.ListByPost(postId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.ThreadListResponse{PostId: postId, Threads: threads})
}

func (h *Handler) UpdateThread(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorId(r)
	if !ok {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	id, err := utils.ParseId(chi.URLParam(r, "threadId"), "thread_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.UpdateThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.thread.Update(actor, id, body.Content)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, thread)
}

func (h *Handler) DeleteThread(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorId(r)
	if !ok {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	id, err := utils.ParseId(chi.URLParam(r, "threadId"), "thread_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.thread.Delete(actor, id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
