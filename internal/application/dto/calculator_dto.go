package dto

import "github.com/shopspring/decimal"

// ProfitCalcRequest body para POST /api/calculator/profit.
type ProfitCalcRequest struct {
	Cost           decimal.Decimal `json:"cost"`
	Shipping       decimal.Decimal `json:"shipping"`
	CommissionRate decimal.Decimal `json:"commission_rate"` // % (ej. 21.5)
	ProfitMode     string          `json:"profit_mode"`     // "amount" | "rate"
	TargetProfit   decimal.Decimal `json:"target_profit"`
}

// ProfitCalcResponse desglose del precio de venta calculado.
type ProfitCalcResponse struct {
	SalePrice  decimal.Decimal `json:"sale_price"`
	Commission decimal.Decimal `json:"commission"`
	NetProfit  decimal.Decimal `json:"net_profit"`
	MarginPct  decimal.Decimal `json:"margin_pct"`
}
