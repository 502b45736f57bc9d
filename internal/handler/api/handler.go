package api

import (
	"strconv"
	"strings"

	"RiskFolio/internal/service/ratelimit"
	"RiskFolio/internal/usecase"
	xhttp "RiskFolio/pkg/http"
	xlogger "RiskFolio/pkg/logger"

	"github.com/labstack/echo/v4"
)

const ctxUserID = "user_id"

// Handler wires all API routes following the usecase layer.
type Handler struct {
	logger     *xlogger.Logger
	auth       *usecase.AuthService
	portfolios *usecase.PortfolioService
	holdings   *usecase.HoldingService
	risk       *usecase.RiskService
	limiter    *ratelimit.Limiter
	loginRate  float64
	loginBurst float64
}

// NewHandler creates the API handler.
func NewHandler(
	logger *xlogger.Logger,
	auth *usecase.AuthService,
	portfolios *usecase.PortfolioService,
	holdings *usecase.HoldingService,
	risk *usecase.RiskService,
	loginRate, loginBurst float64,
) *Handler {
	return &Handler{
		logger:     logger,
		auth:       auth,
		portfolios: portfolios,
		holdings:   holdings,
		risk:       risk,
		limiter:    ratelimit.New(),
		loginRate:  loginRate,
		loginBurst: loginBurst,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")

	g.POST("/auth/register", h.Register, h.loginLimit)
	g.POST("/auth/login", h.Login, h.loginLimit)

	auth := g.Group("", h.requireAuth)
	auth.GET("/users/me", h.Me)

	auth.POST("/portfolios", h.CreatePortfolio)
	auth.GET("/portfolios", h.ListPortfolios)
	auth.GET("/portfolios/:id", h.GetPortfolio)
	auth.PUT("/portfolios/:id", h.UpdatePortfolio)
	auth.DELETE("/portfolios/:id", h.DeletePortfolio)

	auth.POST("/portfolios/:id/holdings", h.CreateHolding)
	auth.GET("/portfolios/:id/holdings", h.ListHoldings)
	auth.PUT("/holdings/:id", h.UpdateHolding)
	auth.DELETE("/holdings/:id", h.DeleteHolding)

	auth.POST("/portfolios/:id/risk/compute", h.ComputeRisk)
	auth.GET("/portfolios/:id/risk/latest", h.LatestRisk)
	auth.GET("/portfolios/:id/risk/history", h.RiskHistory)
}

// requireAuth validates the bearer token and stores the caller's user ID.
func (h *Handler) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return xhttp.UnauthorizedResponse(c, "missing bearer token")
		}

		userID, err := h.auth.ParseToken(token)
		if err != nil {
			return xhttp.UnauthorizedResponse(c, "invalid or expired token")
		}

		c.Set(ctxUserID, userID)
		return next(c)
	}
}

// loginLimit rate-limits credential endpoints per client IP.
func (h *Handler) loginLimit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !h.limiter.Allow(c.RealIP(), h.loginBurst, h.loginRate) {
			return xhttp.AppErrorResponse(c, xhttp.TooManyRequestsError("too many attempts, slow down"))
		}
		return next(c)
	}
}

func callerID(c echo.Context) uint {
	id, _ := c.Get(ctxUserID).(uint)
	return id
}

func pathID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
