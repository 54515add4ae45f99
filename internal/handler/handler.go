package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bulletin-dev/bulletin/internal/domain"
	"github.com/bulletin-dev/bulletin/internal/logger"
	mw "github.com/bulletin-dev/bulletin/internal/middleware"
	"github.com/bulletin-dev/bulletin/internal/service"
)

type Handler struct {
	auth       service.AuthService
	user       service.UserService
	board      service.BoardService
	post       service.PostService
	thread     service.ThreadService
	moderation service.ModerationService
}

func New(auth service.AuthService, user service.UserService, board service.BoardService, post service.PostService, thread service.ThreadService, moderation service.ModerationService) *Handler {
	return &Handler{auth, user, board, post, thread, moderation}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	writeJSONStatus(w, v, http.StatusOK)
}

func writeJSONStatus(w http.ResponseWriter, v interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// actorId pulls the authenticated user id set by the auth middleware.
func actorId(r *http.Request) (domain.UserId, bool) {
	return mw.GetUserIdFromContext(r)
}
