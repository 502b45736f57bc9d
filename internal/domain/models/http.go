package models

// Requests for the HTTP API. Defined in domain for consistency and reuse.

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=32"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type PortfolioCreateRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Description  string `json:"description" validate:"max=500"`
	BaseCurrency string `json:"base_currency" default:"USD" validate:"len=3"`
}

type PortfolioUpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type HoldingCreateRequest struct {
	Ticker       string   `json:"ticker" validate:"required,max=12"`
	AssetClass   string   `json:"asset_class" validate:"required,oneof=EQUITY BOND CASH CRYPTO COMMODITY REAL_ESTATE"`
	Quantity     float64  `json:"quantity"`
	AvgCost      float64  `json:"avg_cost" validate:"gte=0"`
	CurrentPrice *float64 `json:"current_price" validate:"omitempty,gte=0"`
}

type HoldingUpdateRequest struct {
	Quantity     *float64 `json:"quantity"`
	AvgCost      *float64 `json:"avg_cost" validate:"omitempty,gte=0"`
	CurrentPrice *float64 `json:"current_price" validate:"omitempty,gte=0"`
}

type RiskHistoryRequest struct {
	Limit int `query:"limit" json:"limit" default:"30" validate:"gte=1,lte=365"`
}
