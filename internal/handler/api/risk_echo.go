package api

import (
	"RiskFolio/internal/domain/models"
	xhttp "RiskFolio/pkg/http"
	xlogger "RiskFolio/pkg/logger"

	"github.com/labstack/echo/v4"
)

func (h *Handler) ComputeRisk(c echo.Context) error {
	portfolioID, ok := pathID(c)
	if !ok {
		return xhttp.BadRequestResponse(c, "invalid portfolio id")
	}

	snap, err := h.risk.Compute(c.Request().Context(), portfolioID, callerID(c))
	if err != nil {
		h.logger.Error("risk compute usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.CreatedResponse(c, snap)
}

func (h *Handler) LatestRisk(c echo.Context) error {
	portfolioID, ok := pathID(c)
	if !ok {
		return xhttp.BadRequestResponse(c, "invalid portfolio id")
	}

	snap, err := h.risk.Latest(c.Request().Context(), portfolioID, callerID(c))
	if err != nil {
		h.logger.Error("risk latest usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=15")
	return xhttp.SuccessResponse(c, snap)
}

func (h *Handler) RiskHistory(c echo.Context) error {
	portfolioID, ok := pathID(c)
	if !ok {
		return xhttp.BadRequestResponse(c, "invalid portfolio id")
	}

	req := &models.RiskHistoryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	snaps, err := h.risk.History(c.Request().Context(), portfolioID, callerID(c), req.Limit)
	if err != nil {
		h.logger.Error("risk history usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.ListResponse(c, snaps, int64(len(snaps)))
}
