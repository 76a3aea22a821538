package analytics

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
)

// RecentActivity últimas entradas del diario con datos del producto.
func (uc *DashboardUseCase) RecentActivity(ctx context.Context, limit int) ([]dto.LogResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = dashboardRecentLogs
	}
	logs, err := uc.logRepo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, ToLogResponse(l))
	}
	return out, nil
}

// ProductHistory historial del diario de un producto, más reciente primero.
func (uc *DashboardUseCase) ProductHistory(ctx context.Context, productID string, limit, offset int) ([]dto.LogResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	logs, err := uc.logRepo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.LogResponse{
			ID:              l.ID,
			ProductID:       l.ProductID,
			TransactionType: l.TransactionType,
			QuantityChange:  l.QuantityChange,
			OldShelfID:      l.OldShelfID,
			NewShelfID:      l.NewShelfID,
			Note:            l.Note,
			CreatedAt:       l.CreatedAt,
		})
	}
	return out, nil
}
