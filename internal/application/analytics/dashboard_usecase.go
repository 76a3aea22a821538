// Package analytics contiene los casos de uso de solo lectura que alimentan
// la pantalla principal del almacén.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

const dashboardRecentLogs = 20 // asientos en el widget de actividad reciente

// DashboardUseCase genera el resumen del almacén: productos críticos y
// actividad reciente del diario.
type DashboardUseCase struct {
	productRepo repository.ProductRepository
	logRepo     repository.InventoryLogRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(productRepo repository.ProductRepository, logRepo repository.InventoryLogRepository) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo, logRepo: logRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Dos llamadas en paralelo:
//  1. ListCritical()  → CriticalProducts + CriticalCount
//  2. ListRecent(20)  → RecentActivity
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type criticalResult struct {
		products []*entity.Product
		err      error
	}
	type logsResult struct {
		logs []*entity.LogWithProduct
		err  error
	}

	criticalCh := make(chan criticalResult, 1)
	logsCh := make(chan logsResult, 1)

	go func() {
		products, err := uc.productRepo.ListCritical()
		criticalCh <- criticalResult{products, err}
	}()
	go func() {
		logs, err := uc.logRepo.ListRecent(dashboardRecentLogs)
		logsCh <- logsResult{logs, err}
	}()

	critical := <-criticalCh
	logs := <-logsCh

	if critical.err != nil {
		return nil, fmt.Errorf("dashboard: stock crítico: %w", critical.err)
	}
	if logs.err != nil {
		return nil, fmt.Errorf("dashboard: actividad reciente: %w", logs.err)
	}

	summary := &dto.DashboardSummaryDTO{
		CriticalCount:    len(critical.products),
		CriticalProducts: make([]dto.ProductResponse, 0, len(critical.products)),
		RecentActivity:   make([]dto.LogResponse, 0, len(logs.logs)),
	}
	for _, p := range critical.products {
		summary.CriticalProducts = append(summary.CriticalProducts, inventory.ToProductResponse(p))
	}
	for _, l := range logs.logs {
		summary.RecentActivity = append(summary.RecentActivity, ToLogResponse(l))
	}
	return summary, nil
}

// ToLogResponse mapea un asiento del diario (con datos del producto) al DTO HTTP.
func ToLogResponse(l *entity.LogWithProduct) dto.LogResponse {
	return dto.LogResponse{
		ID:              l.ID,
		ProductID:       l.ProductID,
		ProductName:     l.ProductName,
		ProductBarcode:  l.ProductBarcode,
		TransactionType: l.TransactionType,
		QuantityChange:  l.QuantityChange,
		OldShelfID:      l.OldShelfID,
		NewShelfID:      l.NewShelfID,
		Note:            l.Note,
		CreatedAt:       l.CreatedAt,
	}
}
