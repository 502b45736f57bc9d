package api

import (
	"RiskFolio/internal/domain/models"
	xhttp "RiskFolio/pkg/http"
	xlogger "RiskFolio/pkg/logger"

	"github.com/labstack/echo/v4"
)

func (h *Handler) CreatePortfolio(c echo.Context) error {
	req := &models.PortfolioCreateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	p, err := h.portfolios.Create(c.Request().Context(), callerID(c), req)
	if err != nil {
		h.logger.Error("create portfolio usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.CreatedResponse(c, p)
}

func (h *Handler) ListPortfolios(c echo.Context) error {
	ps, err := h.portfolios.List(c.Request().Context(), callerID(c))
	if err != nil {
		h.logger.Error("list portfolios usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.ListResponse(c, ps, int64(len(ps)))
}

func (h *Handler) GetPortfolio(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return xhttp.BadRequestResponse(c, "invalid portfolio id")
	}

	p, err := h.portfolios.Get(c.Request().Context(), id, callerID(c))
	if err != nil {
		h.logger.Error("get portfolio usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, p)
}

func (h *Handler) UpdatePortfolio(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return xhttp.BadRequestResponse(c, "invalid portfolio id")
	}

	req := &models.PortfolioUpdateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	p, err := h.portfolios.Update(c.Request().Context(), id, callerID(c), req)
	if err != nil {
		h.logger.Error("update portfolio usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, p)
}

func (h *Handler) DeletePortfolio(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return xhttp.BadRequestResponse(c, "invalid portfolio id")
	}

	if err := h.portfolios.Delete(c.Request().Context(), id, callerID(c)); err != nil {
		h.logger.Error("delete portfolio usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.NoContentResponse(c)
}
