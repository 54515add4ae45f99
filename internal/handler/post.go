package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bulletin-dev/bulletin/internal/api"
	"github.com/bulletin-dev/bulletin/internal/service"
	"github.com/bulletin-dev/bulletin/internal/utils"
)

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorId(r)
	if !ok {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	var body api.CreatePostRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	post, err := h.post.Create(actor, service.PostBoardRef{Id: body.BoardId, Name: body.BoardName}, body.Title)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, post, http.StatusCreated)
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseId(chi.URLParam(r, "postId"), "post_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	post, err := h.post.Get(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, post)
}

func (h *Handler) GetBoardPosts(w http.ResponseWriter, r *http.Request) {
	boardId, err := utils.ParseId(chi.URLParam(r, "boardId"), "board_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	posts, err := h.post.ListByBoard(boardId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.PostListResponse{BoardId: boardId, Posts: posts})
}

func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorId(r)
	if !ok {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	id, err := utils.ParseId(chi.URLParam(r, "postId"), "post_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.UpdatePostRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	post, err := h.post.Update(actor, id, body.Title)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, post)
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorId(r)
	if !ok {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	id, err := utils.ParseId(chi.URLParam(r, "postId"), "post_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.post.Delete(actor, id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
