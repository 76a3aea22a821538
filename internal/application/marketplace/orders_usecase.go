package marketplace

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// Parámetros del escaneo profundo de devoluciones: 13 tramos de 14 días
// (~6 meses hacia atrás).
const (
	deepScanChunks   = 13
	deepScanChunkDur = 14 * 24 * time.Hour
	deepScanPageSize = 100
)

// Estados de pedido que cuentan como devolución o venta frustrada.
var returnStatuses = []string{"Returned", "UnDelivered", "Cancelled"}

// OrdersUseCase navegación de solo lectura sobre pedidos y devoluciones del
// marketplace. No tiene efectos en el almacén local.
type OrdersUseCase struct {
	api API
	log *logger.Logger
}

// NewOrdersUseCase construye el caso de uso.
func NewOrdersUseCase(api API, log *logger.Logger) *OrdersUseCase {
	return &OrdersUseCase{api: api, log: log}
}

// ListOrders pasa el filtro tal cual al marketplace.
func (uc *OrdersUseCase) ListOrders(ctx context.Context, q OrderQuery) (*OrderPage, error) {
	if q.Size <= 0 {
		q.Size = 50
	}
	return uc.api.FetchOrders(ctx, q)
}

// GetOrder busca un pedido por número. Nil si el marketplace no lo conoce.
func (uc *OrdersUseCase) GetOrder(ctx context.Context, orderNumber string) (*Order, error) {
	return uc.api.FetchOrderByNumber(ctx, orderNumber)
}

// ListClaims solicitudes de devolución paginadas.
func (uc *OrdersUseCase) ListClaims(ctx context.Context, page, size int, startDate, endDate int64) (*ClaimPage, error) {
	if size <= 0 {
		size = 50
	}
	return uc.api.FetchClaims(ctx, page, size, startDate, endDate)
}

// ExtendedReturns escaneo profundo de devoluciones: consulta pedidos
// devueltos/cancelados y claims en tramos de 14 días durante ~6 meses,
// lanzando los tramos en paralelo (scatter/gather sin dependencia de orden),
// unifica los claims al formato de pedido, de-duplica por orderNumber y
// pagina en memoria.
//
// Un tramo fallido no aborta el escaneo: se registra y se continúa con los
// tramos que sí respondieron.
func (uc *OrdersUseCase) ExtendedReturns(ctx context.Context, page, size int) (*OrderPage, error) {
	if size <= 0 {
		size = 50
	}
	now := time.Now().UnixMilli()
	chunkMs := deepScanChunkDur.Milliseconds()

	type chunkResult struct {
		orders []Order
		err    error
	}

	orderCh := make(chan chunkResult, deepScanChunks)
	claimCh := make(chan chunkResult, deepScanChunks)

	for i := 0; i < deepScanChunks; i++ {
		end := now - int64(i)*chunkMs
		start := end - chunkMs

		go func(start, end int64) {
			res, err := uc.api.FetchOrders(ctx, OrderQuery{
				Statuses:  returnStatuses,
				Page:      0,
				Size:      deepScanPageSize,
				StartDate: start,
				EndDate:   end,
			})
			if err != nil {
				orderCh <- chunkResult{err: err}
				return
			}
			orderCh <- chunkResult{orders: res.Content}
		}(start, end)

		go func(start, end int64) {
			res, err := uc.api.FetchClaims(ctx, 0, deepScanPageSize, start, end)
			if err != nil {
				claimCh <- chunkResult{err: err}
				return
			}
			claimCh <- chunkResult{orders: claimsAsOrders(res.Content)}
		}(start, end)
	}

	var all []Order
	var failed int
	var firstErr error
	for i := 0; i < deepScanChunks*2; i++ {
		var res chunkResult
		select {
		case res = <-orderCh:
		case res = <-claimCh:
		}
		if res.err != nil {
			failed++
			if firstErr == nil {
				firstErr = res.err
			}
			uc.log.Warn().Err(res.err).Msg("tramo del escaneo de devoluciones falló")
			continue
		}
		all = append(all, res.orders...)
	}
	if failed == deepScanChunks*2 {
		// Ningún tramo respondió: no se puede distinguir "sin devoluciones"
		// de "marketplace caído"; se propaga el primer error.
		return nil, firstErr
	}

	// De-duplicar por orderNumber (el primero gana) y ordenar descendente.
	seen := make(map[string]struct{}, len(all))
	unique := all[:0]
	for _, o := range all {
		if _, ok := seen[o.OrderNumber]; ok {
			continue
		}
		seen[o.OrderNumber] = struct{}{}
		unique = append(unique, o)
	}
	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].OrderDate > unique[j].OrderDate
	})

	total := len(unique)
	totalPages := (total + size - 1) / size
	from := page * size
	if from > total {
		from = total
	}
	to := from + size
	if to > total {
		to = total
	}

	return &OrderPage{
		Content:       unique[from:to],
		TotalElements: total,
		TotalPages:    totalPages,
		Page:          page,
		Size:          size,
	}, nil
}

// claimsAsOrders unifica devoluciones al formato de pedido para la vista combinada.
func claimsAsOrders(claims []Claim) []Order {
	orders := make([]Order, 0, len(claims))
	for _, c := range claims {
		orders = append(orders, Order{
			OrderNumber:       c.OrderNumber,
			OrderDate:         c.ClaimDate,
			Status:            "Returned",
			CustomerFirstName: c.CustomerFirstName,
			CustomerLastName:  c.CustomerLastName,
			TotalPrice:        c.TotalPrice,
			Lines:             c.Items,
		})
	}
	return orders
}
