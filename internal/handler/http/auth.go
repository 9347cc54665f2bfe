package http

import (
	"net/http"

	"github.com/MKhiriev/go-storefront-demo/internal/app"
	"github.com/MKhiriev/go-storefront-demo/internal/logger"
	"github.com/MKhiriev/go-storefront-demo/internal/utils"
	"github.com/MKhiriev/go-storefront-demo/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	request, err := decodeBody[models.LoginRequest](r)
	if err == nil {
		err = h.validator.Validate(ctx, request)
	}
	if err != nil {
		writeFailure(w, log, err, app.MsgInvalidRequestBody)
		return
	}

	token, err := h.services.AuthService.Login(ctx, *request)
	if err != nil {
		log.Debug().Str("username", request.Username).Msg("login rejected")
		writeFailure(w, log, err, app.MsgInvalidCredentials)
		return
	}

	log.Debug().Str("username", request.Username).Msg("user successfully logged in")
	utils.WriteJSON(w, models.OK("", token), http.StatusOK)
}

func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	request, err := decodeBody[models.RefreshTokenRequest](r)
	if err != nil {
		writeFailure(w, log, err, app.MsgInvalidRequestBody)
		return
	}
	if request == nil {
		request = &models.RefreshTokenRequest{}
	}

	token, err := h.services.AuthService.RefreshToken(ctx, *request)
	if err != nil {
		writeFailure(w, log, err, app.MsgInvalidToken)
		return
	}

	utils.WriteJSON(w, models.OK("", token), http.StatusOK)
}
