package handler

import (
	"net/http"

	"github.com/bulletin-dev/bulletin/internal/api"
	"github.com/bulletin-dev/bulletin/internal/domain"
	"github.com/bulletin-dev/bulletin/internal/utils"
)

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var body api.SignupRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, err := h.auth.Signup(body.Email, body.Username, body.Password)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, user, http.StatusCreated)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	token, err := h.auth.Login(domain.Credentials{Username: body.Username, Password: body.Password})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.LoginResponse{AccessToken: token})
}
