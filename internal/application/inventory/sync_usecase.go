package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/marketplace"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

const (
	drainPageSize      = 100
	syncDefaultMinStock = 10
)

// SyncUseCase importación unidireccional del catálogo del marketplace:
// listings sin producto local (por barcode) se crean con stock 0. Nunca
// actualiza ni borra productos existentes; re-ejecutar sin cambios remotos
// no inserta nada.
type SyncUseCase struct {
	api         marketplace.API
	productRepo repository.ProductRepository
	log         *logger.Logger
}

// NewSyncUseCase construye el caso de uso.
func NewSyncUseCase(api marketplace.API, productRepo repository.ProductRepository, log *logger.Logger) *SyncUseCase {
	return &SyncUseCase{api: api, productRepo: productRepo, log: log}
}

// FetchAllRemoteProducts drena el catálogo remoto página a página hasta
// totalPages. Cualquier página fallida aborta la operación completa y
// descarta lo ya leído: no hay resultado parcial.
func (uc *SyncUseCase) FetchAllRemoteProducts(ctx context.Context) ([]marketplace.Listing, error) {
	return drainListings(ctx, uc.api)
}

// SyncNewProducts trae el catálogo remoto completo, calcula los barcodes que
// no existen localmente e inserta esos productos en lote.
func (uc *SyncUseCase) SyncNewProducts(ctx context.Context) (*dto.SyncResultDTO, error) {
	listings, err := drainListings(ctx, uc.api)
	if err != nil {
		return nil, err
	}
	if len(listings) == 0 {
		return &dto.SyncResultDTO{Count: 0, Message: "no hay productos para importar"}, nil
	}

	thresholds, err := uc.productRepo.ListBarcodeThresholds()
	if err != nil {
		return nil, err
	}
	local := make(map[string]struct{}, len(thresholds))
	for _, t := range thresholds {
		local[t.Barcode] = struct{}{}
	}

	now := time.Now()
	var batch []*entity.Product
	for _, l := range listings {
		if _, exists := local[l.Barcode]; exists {
			continue
		}
		// Evita duplicar si el mismo barcode aparece en varias páginas
		local[l.Barcode] = struct{}{}
		batch = append(batch, &entity.Product{
			ID:        uuid.New().String(),
			Barcode:   l.Barcode,
			Name:      l.Title,
			Quantity:  0,
			MinStock:  syncDefaultMinStock,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if len(batch) == 0 {
		return &dto.SyncResultDTO{Count: 0, Message: "todos los productos ya existen en el almacén"}, nil
	}
	if err := uc.productRepo.CreateBatch(batch); err != nil {
		return nil, err
	}

	uc.log.Info().Int("count", len(batch)).Msg("catálogo sincronizado")
	return &dto.SyncResultDTO{
		Count:   len(batch),
		Message: fmt.Sprintf("%d productos nuevos importados", len(batch)),
	}, nil
}

// drainListings acumula todas las páginas del catálogo remoto en memoria.
// Bucle secuencial sin checkpoint: el error de cualquier página se propaga
// tal cual y no se devuelve nada de lo acumulado.
func drainListings(ctx context.Context, api marketplace.API) ([]marketplace.Listing, error) {
	var all []marketplace.Listing
	page, totalPages := 0, 1
	for page < totalPages {
		res, err := api.FetchProducts(ctx, page, drainPageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, res.Content...)
		if res.TotalPages > 0 {
			totalPages = res.TotalPages
		} else {
			totalPages = 1
		}
		page++
	}
	return all, nil
}
