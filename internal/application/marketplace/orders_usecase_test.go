package marketplace_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/marketplace"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

// stubAPI puerto del marketplace con funciones configurables.
type stubAPI struct {
	mu       sync.Mutex
	ordersFn func(q marketplace.OrderQuery) (*marketplace.OrderPage, error)
	claimsFn func(page, size int, startDate, endDate int64) (*marketplace.ClaimPage, error)
	orderFn  func(orderNumber string) (*marketplace.Order, error)

	orderCalls []marketplace.OrderQuery
}

func (a *stubAPI) FetchProducts(ctx context.Context, page, size int) (*marketplace.ListingPage, error) {
	return &marketplace.ListingPage{TotalPages: 1}, nil
}

func (a *stubAPI) FetchOrders(ctx context.Context, q marketplace.OrderQuery) (*marketplace.OrderPage, error) {
	a.mu.Lock()
	a.orderCalls = append(a.orderCalls, q)
	a.mu.Unlock()
	if a.ordersFn != nil {
		return a.ordersFn(q)
	}
	return &marketplace.OrderPage{}, nil
}

func (a *stubAPI) FetchOrderByNumber(ctx context.Context, orderNumber string) (*marketplace.Order, error) {
	if a.orderFn != nil {
		return a.orderFn(orderNumber)
	}
	return nil, nil
}

func (a *stubAPI) FetchClaims(ctx context.Context, page, size int, startDate, endDate int64) (*marketplace.ClaimPage, error) {
	if a.claimsFn != nil {
		return a.claimsFn(page, size, startDate, endDate)
	}
	return &marketplace.ClaimPage{}, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// ExtendedReturns
// ──────────────────────────────────────────────────────────────────────────────

func TestExtendedReturns_UnificaDeduplicaYOrdena(t *testing.T) {
	api := &stubAPI{
		// Todos los tramos devuelven lo mismo: la de-duplicación colapsa.
		ordersFn: func(q marketplace.OrderQuery) (*marketplace.OrderPage, error) {
			if q.EndDate < q.StartDate {
				return nil, domain.ErrInvalidInput
			}
			return &marketplace.OrderPage{Content: []marketplace.Order{
				{OrderNumber: "N-1", OrderDate: 300, Status: "Returned"},
				{OrderNumber: "N-2", OrderDate: 100, Status: "Cancelled"},
			}}, nil
		},
		claimsFn: func(page, size int, startDate, endDate int64) (*marketplace.ClaimPage, error) {
			return &marketplace.ClaimPage{Content: []marketplace.Claim{
				// Mismo pedido que N-1: debe de-duplicarse.
				{OrderNumber: "N-1", ClaimDate: 300},
				{OrderNumber: "N-3", ClaimDate: 200, CustomerFirstName: "Ada"},
			}}, nil
		},
	}
	uc := marketplace.NewOrdersUseCase(api, testLogger())

	page, err := uc.ExtendedReturns(context.Background(), 0, 50)
	require.NoError(t, err)
	require.Equal(t, 3, page.TotalElements, "N-1 duplicado entre pedidos y claims cuenta una vez")

	numbers := make([]string, 0, len(page.Content))
	for _, o := range page.Content {
		numbers = append(numbers, o.OrderNumber)
	}
	assert.Equal(t, []string{"N-1", "N-3", "N-2"}, numbers, "orden descendente por fecha")

	// El claim unificado adopta la forma de pedido.
	assert.Equal(t, "Returned", page.Content[1].Status)
	assert.Equal(t, "Ada", page.Content[1].CustomerFirstName)
	assert.Equal(t, int64(200), page.Content[1].OrderDate)
}

func TestExtendedReturns_PaginaEnMemoria(t *testing.T) {
	api := &stubAPI{
		ordersFn: func(q marketplace.OrderQuery) (*marketplace.OrderPage, error) {
			content := make([]marketplace.Order, 5)
			for i := range content {
				content[i] = marketplace.Order{
					OrderNumber: string(rune('A' + i)),
					OrderDate:   int64(500 - i),
				}
			}
			return &marketplace.OrderPage{Content: content}, nil
		},
	}
	uc := marketplace.NewOrdersUseCase(api, testLogger())

	page, err := uc.ExtendedReturns(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Content, 2, "segunda página de tamaño 2")
	assert.Equal(t, "C", page.Content[0].OrderNumber)
	assert.Equal(t, "D", page.Content[1].OrderNumber)
}

func TestExtendedReturns_TramoFallidoNoAborta(t *testing.T) {
	// Los claims fallan siempre; los pedidos responden. El escaneo continúa.
	api := &stubAPI{
		ordersFn: func(q marketplace.OrderQuery) (*marketplace.OrderPage, error) {
			return &marketplace.OrderPage{Content: []marketplace.Order{
				{OrderNumber: "N-1", OrderDate: 100},
			}}, nil
		},
		claimsFn: func(page, size int, startDate, endDate int64) (*marketplace.ClaimPage, error) {
			return nil, domain.ErrRemoteRequestFailed
		},
	}
	uc := marketplace.NewOrdersUseCase(api, testLogger())

	page, err := uc.ExtendedReturns(context.Background(), 0, 50)
	require.NoError(t, err, "tramos fallidos se registran y se continúa")
	assert.NotEmpty(t, page.Content)
}

func TestExtendedReturns_TodosLosTramosFallan_EsError(t *testing.T) {
	api := &stubAPI{
		ordersFn: func(q marketplace.OrderQuery) (*marketplace.OrderPage, error) {
			return nil, domain.ErrRemoteRequestFailed
		},
		claimsFn: func(page, size int, startDate, endDate int64) (*marketplace.ClaimPage, error) {
			return nil, domain.ErrRemoteRequestFailed
		},
	}
	uc := marketplace.NewOrdersUseCase(api, testLogger())

	_, err := uc.ExtendedReturns(context.Background(), 0, 50)
	assert.ErrorIs(t, err, domain.ErrRemoteRequestFailed,
		"sin ningún tramo no se distingue vacío de caído")
}

func TestExtendedReturns_ConsultaEstadosDeDevolucion(t *testing.T) {
	api := &stubAPI{}
	uc := marketplace.NewOrdersUseCase(api, testLogger())

	_, err := uc.ExtendedReturns(context.Background(), 0, 50)
	require.NoError(t, err)

	api.mu.Lock()
	defer api.mu.Unlock()
	require.NotEmpty(t, api.orderCalls)
	for _, q := range api.orderCalls {
		assert.ElementsMatch(t, []string{"Returned", "UnDelivered", "Cancelled"}, q.Statuses)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Passthroughs
// ──────────────────────────────────────────────────────────────────────────────

func TestGetOrder_NilSiNoExiste(t *testing.T) {
	uc := marketplace.NewOrdersUseCase(&stubAPI{}, testLogger())
	out, err := uc.GetOrder(context.Background(), "X-404")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestListOrders_TamanoPorDefecto(t *testing.T) {
	api := &stubAPI{}
	uc := marketplace.NewOrdersUseCase(api, testLogger())

	_, err := uc.ListOrders(context.Background(), marketplace.OrderQuery{})
	require.NoError(t, err)
	require.Len(t, api.orderCalls, 1)
	assert.Equal(t, 50, api.orderCalls[0].Size)
}
