package inventory

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/marketplace"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// DefaultRemoteThreshold umbral de stock crítico para listings sin producto
// local que defina el suyo.
const DefaultRemoteThreshold = 10

// CriticalUseCase deriva el estado de stock crítico en dos vistas
// independientes: la local (stock sano vs min_stock) y la del marketplace
// (stock del listing vs el umbral local del barcode). Nunca se mezclan los
// números: el stock local y el del listing son pools físicos distintos.
type CriticalUseCase struct {
	productRepo repository.ProductRepository
	api         marketplace.API
	log         *logger.Logger
}

// NewCriticalUseCase construye el caso de uso.
func NewCriticalUseCase(productRepo repository.ProductRepository, api marketplace.API, log *logger.Logger) *CriticalUseCase {
	return &CriticalUseCase{productRepo: productRepo, api: api, log: log}
}

// LocalCriticalSet productos con quantity <= min_stock, los más urgentes
// primero. Solo lectura; el stock dañado no participa.
func (uc *CriticalUseCase) LocalCriticalSet(ctx context.Context) ([]*entity.Product, error) {
	return uc.productRepo.ListCritical()
}

// RemoteCriticalSet drena el catálogo remoto completo y devuelve los listings
// activos (onSale) en o bajo su umbral. El umbral de cada barcode sale del
// min_stock del producto local si existe; si no, DefaultRemoteThreshold.
// Un fallo del marketplace se propaga como error explícito: el llamador no
// debe confundirlo con "cero críticos".
func (uc *CriticalUseCase) RemoteCriticalSet(ctx context.Context) ([]dto.RemoteCriticalItemDTO, error) {
	listings, err := drainListings(ctx, uc.api)
	if err != nil {
		return nil, err
	}
	thresholds, err := uc.productRepo.ListBarcodeThresholds()
	if err != nil {
		return nil, err
	}
	byBarcode := make(map[string]repository.BarcodeThreshold, len(thresholds))
	for _, t := range thresholds {
		byBarcode[t.Barcode] = t
	}
	return filterRemoteCritical(listings, byBarcode, DefaultRemoteThreshold), nil
}

// MergedView compone la lista crítica local y la remota lado a lado. Si el
// marketplace falla, la vista local se devuelve igualmente y el error queda
// en MarketplaceError en lugar de vaciar la lista en silencio.
func (uc *CriticalUseCase) MergedView(ctx context.Context) (*dto.CriticalStockViewDTO, error) {
	local, err := uc.LocalCriticalSet(ctx)
	if err != nil {
		return nil, err
	}

	view := &dto.CriticalStockViewDTO{
		Warehouse:   make([]dto.ProductResponse, 0, len(local)),
		Marketplace: []dto.RemoteCriticalItemDTO{},
	}
	for _, p := range local {
		view.Warehouse = append(view.Warehouse, ToProductResponse(p))
	}

	remote, err := uc.RemoteCriticalSet(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo consultar el stock del marketplace")
		view.MarketplaceError = err.Error()
		return view, nil
	}
	view.Marketplace = remote
	return view, nil
}

// filterRemoteCritical aplica el filtro de criticidad sobre los listings:
// activo, y quantity <= umbral resuelto por barcode.
func filterRemoteCritical(
	listings []marketplace.Listing,
	thresholds map[string]repository.BarcodeThreshold,
	defaultThreshold int,
) []dto.RemoteCriticalItemDTO {
	items := make([]dto.RemoteCriticalItemDTO, 0)
	for _, l := range listings {
		if !l.OnSale {
			continue
		}
		threshold := defaultThreshold
		var localID string
		t, hasLocal := thresholds[l.Barcode]
		if hasLocal {
			threshold = t.MinStock
			localID = t.ProductID
		}
		if l.Quantity > threshold {
			continue
		}
		items = append(items, dto.RemoteCriticalItemDTO{
			Barcode:          l.Barcode,
			Title:            l.Title,
			Quantity:         l.Quantity,
			MinStock:         threshold,
			LocalProductID:   localID,
			NeedsSync:        !hasLocal,
			ProductContentID: l.ProductContentID,
		})
	}
	return items
}

// ToProductResponse mapea la entidad al DTO HTTP.
func ToProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:              p.ID,
		Barcode:         p.Barcode,
		Name:            p.Name,
		Description:     p.Description,
		Quantity:        p.Quantity,
		DamagedQuantity: p.DamagedQuantity,
		MinStock:        p.MinStock,
		ShelfID:         p.ShelfID,
		CategoryID:      p.CategoryID,
		Critical:        p.IsCritical(),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
