package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bulletin-dev/bulletin/internal/api"
	"github.com/bulletin-dev/bulletin/internal/utils"
)

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorId(r)
	if !ok {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	var body api.CreateBoardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	board, err := h.board.Create(actor, body.Name)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, board, http.StatusCreated)
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseId(chi.URLParam(r, "boardId"), "board_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	board, err := h.board.Get(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, board)
}

func (h *Handler) GetBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := h.board.GetAll()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.BoardListResponse{Boards: boards})
}

func (h *Handler) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorId(r)
	if !ok {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	id, err := utils.ParseId(chi.URLParam(r, "boardId"), "board_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.UpdateBoardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	board, err := h.board.Update(actor, id, body.Name)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, board)
}

func (h *Handler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorId(r)
	if !ok {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	id, err := utils.ParseId(chi.URLParam(r, "boardId"), "board_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.board.Delete(actor, id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
