package api

import (
	"RiskFolio/internal/domain/models"
	xhttp "RiskFolio/pkg/http"
	xlogger "RiskFolio/pkg/logger"

	"github.com/labstack/echo/v4"
)

func (h *Handler) Register(c echo.Context) error {
	req := &models.RegisterRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	u, err := h.auth.Register(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("register usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.CreatedResponse(c, u)
}

func (h *Handler) Login(c echo.Context) error {
	req := &models.LoginRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	token, err := h.auth.Login(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("login usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, token)
}

func (h *Handler) Me(c echo.Context) error {
	u, err := h.auth.CurrentUser(c.Request().Context(), callerID(c))
	if err != nil {
		h.logger.Error("current user usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, u)
}
