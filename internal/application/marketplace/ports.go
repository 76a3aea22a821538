package marketplace

import (
	"context"

	"github.com/shopspring/decimal"
)

// API puerto hacia el API de integración del marketplace. El core lo trata
// como una fuente lenta, falible y de solo lectura; cada llamada lleva
// context con timeout impuesto por el cliente HTTP.
type API interface {
	// FetchProducts una página del catálogo remoto.
	FetchProducts(ctx context.Context, page, size int) (*ListingPage, error)
	// FetchOrders pedidos filtrados por estado y rango de fechas (epoch ms).
	FetchOrders(ctx context.Context, q OrderQuery) (*OrderPage, error)
	// FetchOrderByNumber un pedido puntual; nil si no existe.
	FetchOrderByNumber(ctx context.Context, orderNumber string) (*Order, error)
	// FetchClaims solicitudes de devolución en un rango de fechas.
	FetchClaims(ctx context.Context, page, size int, startDate, endDate int64) (*ClaimPage, error)
}

// Listing proyección efímera de un producto publicado en el marketplace.
// No se persiste; se cruza con el producto local solo por Barcode.
type Listing struct {
	Barcode          string          `json:"barcode"`
	Title            string          `json:"title"`
	Quantity         int             `json:"quantity"` // stock del marketplace, independiente del local
	OnSale           bool            `json:"onSale"`
	ProductContentID int64           `json:"productContentId"`
	ListPrice        decimal.Decimal `json:"listPrice"`
	SalePrice        decimal.Decimal `json:"salePrice"`
	Images           []ListingImage  `json:"images"`
}

// ListingImage imagen asociada al listing.
type ListingImage struct {
	URL string `json:"url"`
}

// ListingPage página del endpoint de productos.
type ListingPage struct {
	Content       []Listing `json:"content"`
	TotalElements int       `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
	Page          int       `json:"page"`
	Size          int       `json:"size"`
}

// OrderQuery filtros del listado de pedidos. StartDate/EndDate en epoch ms;
// cero = sin filtro. Statuses puede llevar varios estados (se repite el
// parámetro en la URL).
type OrderQuery struct {
	Statuses  []string
	Page      int
	Size      int
	StartDate int64
	EndDate   int64
}

// OrderLine línea de un pedido o de una devolución unificada.
type OrderLine struct {
	Barcode     string          `json:"barcode"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// Order pedido del marketplace (solo lectura, nunca persistido).
type Order struct {
	OrderNumber         string          `json:"orderNumber"`
	OrderDate           int64           `json:"orderDate"` // epoch ms
	Status              string          `json:"status"`
	CustomerFirstName   string          `json:"customerFirstName"`
	CustomerLastName    string          `json:"customerLastName"`
	TotalPrice          decimal.Decimal `json:"totalPrice"`
	CargoTrackingNumber string          `json:"cargoTrackingNumber"`
	Lines               []OrderLine     `json:"lines"`
}

// OrderPage página del endpoint de pedidos.
type OrderPage struct {
	Content       []Order `json:"content"`
	TotalElements int     `json:"totalElements"`
	TotalPages    int     `json:"totalPages"`
	Page          int     `json:"page"`
	Size          int     `json:"size"`
}

// Claim solicitud de devolución.
type Claim struct {
	OrderNumber       string          `json:"orderNumber"`
	ClaimDate         int64           `json:"claimDate"` // epoch ms
	CustomerFirstName string          `json:"customerFirstName"`
	CustomerLastName  string          `json:"customerLastName"`
	TotalPrice        decimal.Decimal `json:"totalPrice"`
	Items             []OrderLine     `json:"items"`
}

// ClaimPage página del endpoint de devoluciones.
type ClaimPage struct {
	Content       []Claim `json:"content"`
	TotalElements int     `json:"totalElements"`
	TotalPages    int     `json:"totalPages"`
}
