package dto

// RemoteCriticalItemDTO listing del marketplace en o bajo su umbral.
// LocalProductID permite al panel ofrecer "editar límite"; NeedsSync marca
// listings sin producto local (hay que sincronizar antes de fijar umbral).
type RemoteCriticalItemDTO struct {
	Barcode          string `json:"barcode"`
	Title            string `json:"title"`
	Quantity         int    `json:"quantity"` // stock del marketplace
	MinStock         int    `json:"min_stock"`
	LocalProductID   string `json:"local_product_id,omitempty"`
	NeedsSync        bool   `json:"needs_sync"`
	ProductContentID int64  `json:"product_content_id,omitempty"`
}

// CriticalStockViewDTO vista combinada de stock crítico: lista local y lista
// del marketplace lado a lado, nunca unidas (son pools físicos distintos).
// MarketplaceError distingue "sin críticos remotos" de "no se pudo consultar".
type CriticalStockViewDTO struct {
	Warehouse        []ProductResponse       `json:"warehouse"`
	Marketplace      []RemoteCriticalItemDTO `json:"marketplace"`
	MarketplaceError string                  `json:"marketplace_error,omitempty"`
}

// SyncResultDTO resumen de una sincronización de catálogo.
type SyncResultDTO struct {
	Count   int    `json:"count"`
	Message string `json:"message"`
}
