// Package pricing contiene la calculadora de rentabilidad para ventas en el
// marketplace: dado el costo, el envío y la comisión, despeja el precio de
// venta necesario para la ganancia objetivo.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
)

// Modos de ganancia objetivo.
const (
	ProfitModeAmount = "amount" // ganancia fija en moneda
	ProfitModeRate   = "rate"   // ganancia como % del precio de venta
)

var hundred = decimal.NewFromInt(100)

// ProfitInput parámetros de la calculadora.
type ProfitInput struct {
	Cost           decimal.Decimal // costo del producto
	Shipping       decimal.Decimal // costo de envío asumido por el vendedor
	CommissionRate decimal.Decimal // comisión del marketplace en % (ej. 21.5)
	ProfitMode     string          // "amount" | "rate"
	TargetProfit   decimal.Decimal // monto fijo o % según ProfitMode
}

// ProfitResult desglose del cálculo.
type ProfitResult struct {
	SalePrice  decimal.Decimal // precio de venta requerido
	Commission decimal.Decimal // comisión en moneda sobre ese precio
	NetProfit  decimal.Decimal // precio - costo - envío - comisión
	MarginPct  decimal.Decimal // NetProfit / SalePrice * 100
}

// Calculate despeja el precio de venta que cubre costo, envío y comisión
// dejando la ganancia objetivo.
//
//	modo amount: precio = (costo + envío + ganancia) / (1 - comisión)
//	modo rate:   precio = (costo + envío) / (1 - comisión - %ganancia)
//
// Devuelve ErrInvalidInput si la comisión (más la tasa de ganancia en modo
// rate) alcanza o supera el 100%, pues no existe precio que lo cubra.
func Calculate(in ProfitInput) (*ProfitResult, error) {
	if in.Cost.IsNegative() || in.Shipping.IsNegative() || in.CommissionRate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	commRatio := in.CommissionRate.Div(hundred)

	var price decimal.Decimal
	switch in.ProfitMode {
	case ProfitModeAmount:
		denominator := decimal.NewFromInt(1).Sub(commRatio)
		if !denominator.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		price = in.Cost.Add(in.Shipping).Add(in.TargetProfit).Div(denominator)
	case ProfitModeRate:
		profitRatio := in.TargetProfit.Div(hundred)
		denominator := decimal.NewFromInt(1).Sub(commRatio).Sub(profitRatio)
		if !denominator.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		price = in.Cost.Add(in.Shipping).Div(denominator)
	default:
		return nil, domain.ErrInvalidInput
	}

	price = price.Round(2)
	commission := price.Mul(commRatio).Round(2)
	netProfit := price.Sub(in.Cost).Sub(in.Shipping).Sub(commission)

	marginPct := decimal.Zero
	if price.IsPositive() {
		marginPct = netProfit.Div(price).Mul(hundred).Round(2)
	}

	return &ProfitResult{
		SalePrice:  price,
		Commission: commission,
		NetProfit:  netProfit,
		MarginPct:  marginPct,
	}, nil
}
