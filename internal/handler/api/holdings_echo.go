package api

import (
	"RiskFolio/internal/domain/models"
	xhttp "RiskFolio/pkg/http"
	xlogger "RiskFolio/pkg/logger"

	"github.com/labstack/echo/v4"
)

func (h *Handler) CreateHolding(c echo.Context) error {
	portfolioID, ok := pathID(c)
	if !ok {
		return xhttp.BadRequestResponse(c, "invalid portfolio id")
	}

	req := &models.HoldingCreateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	holding, err := h.holdings.Create(c.Request().Context(), portfolioID, callerID(c), req)
	if err != nil {
		h.logger.Error("create holding usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.CreatedResponse(c, holding)
}

func (h *Handler) ListHoldings(c echo.Context) error {
	portfolioID, ok := pathID(c)
	if !ok {
		return xhttp.BadRequestResponse(c, "invalid portfolio id")
	}

	hs, err := h.holdings.List(c.Request().Context(), portfolioID, callerID(c))
	if err != nil {
		h.logger.Error("list holdings usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.ListResponse(c, hs, int64(len(hs)))
}

func (h *Handler) UpdateHolding(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return xhttp.BadRequestResponse(c, "invalid holding id")
	}

	req := &models.HoldingUpdateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	holding, err := h.holdings.Update(c.Request().Context(), id, callerID(c), req)
	if err != nil {
		h.logger.Error("update holding usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, holding)
}

func (h *Handler) DeleteHolding(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return xhttp.BadRequestResponse(c, "invalid holding id")
	}

	if err := h.holdings.Delete(c.Request().Context(), id, callerID(c)); err != nil {
		h.logger.Error("delete holding usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.NoContentResponse(c)
}
