package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/marketplace"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// MarketplaceHandler expone las vistas del marketplace: catálogo remoto,
// sincronización, stock crítico combinado, pedidos y devoluciones (protegido).
type MarketplaceHandler struct {
	sync     *inventory.SyncUseCase
	critical *inventory.CriticalUseCase
	orders   *marketplace.OrdersUseCase
}

// NewMarketplaceHandler construye el handler.
func NewMarketplaceHandler(sync *inventory.SyncUseCase, critical *inventory.CriticalUseCase, orders *marketplace.OrdersUseCase) *MarketplaceHandler {
	return &MarketplaceHandler{sync: sync, critical: critical, orders: orders}
}

// Products godoc
// @Summary      Catálogo completo del marketplace
// @Description  Drena todas las páginas del catálogo remoto. Falla entero si cualquier página falla.
// @Tags         marketplace
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   marketplace.Listing
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/marketplace/products [get]
func (h *MarketplaceHandler) Products(c *fiber.Ctx) error {
	out, err := h.sync.FetchAllRemoteProducts(c.Context())
	if err != nil {
		return respondRemoteError(c, err)
	}
	return c.JSON(out)
}

// Sync godoc
// @Summary      Importar productos nuevos del marketplace
// @Description  Inserta con stock 0 los listings cuyo barcode no existe localmente. Nunca actualiza ni borra.
// @Tags         marketplace
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SyncResultDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/marketplace/sync [post]
func (h *MarketplaceHandler) Sync(c *fiber.Ctx) error {
	out, err := h.sync.SyncNewProducts(c.Context())
	if err != nil {
		return respondRemoteError(c, err)
	}
	return c.JSON(out)
}

// Critical godoc
// @Summary      Stock crítico combinado (almacén + marketplace)
// @Description  Si el marketplace falla, la lista local se devuelve igual y el error queda en marketplace_error.
// @Tags         marketplace
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CriticalStockViewDTO
// @Router       /api/marketplace/critical [get]
func (h *MarketplaceHandler) Critical(c *fiber.Ctx) error {
	out, err := h.critical.MergedView(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Orders godoc
// @Summary      Pedidos del marketplace
// @Tags         marketplace
// @Security     Bearer
// @Produce      json
// @Param        status     query  string  false  "Estados separados por coma (ej. Created,Shipped)"
// @Param        page       query  int     false  "Página"  default(0)
// @Param        size       query  int     false  "Tamaño"  default(50)
// @Param        startDate  query  int     false  "Inicio (epoch ms)"
// @Param        endDate    query  int     false  "Fin (epoch ms)"
// @Success      200  {object}  marketplace.OrderPage
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/marketplace/orders [get]
func (h *MarketplaceHandler) Orders(c *fiber.Ctx) error {
	q := marketplace.OrderQuery{
		Page:      c.QueryInt("page", 0),
		Size:      c.QueryInt("size", 50),
		StartDate: int64(c.QueryInt("startDate", 0)),
		EndDate:   int64(c.QueryInt("endDate", 0)),
	}
	if statuses := c.Query("status"); statuses != "" {
		for _, s := range strings.Split(statuses, ",") {
			if s = strings.TrimSpace(s); s != "" {
				q.Statuses = append(q.Statuses, s)
			}
		}
	}
	out, err := h.orders.ListOrders(c.Context(), q)
	if err != nil {
		return respondRemoteError(c, err)
	}
	return c.JSON(out)
}

// OrderByNumber godoc
// @Summary      Detalle de un pedido por número
// @Tags         marketplace
// @Security     Bearer
// @Produce      json
// @Param        orderNumber  path  string  true  "Número de pedido"
// @Success      200  {object}  marketplace.Order
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/marketplace/orders/{orderNumber} [get]
func (h *MarketplaceHandler) OrderByNumber(c *fiber.Ctx) error {
	out, err := h.orders.GetOrder(c.Context(), c.Params("orderNumber"))
	if err != nil {
		return respondRemoteError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
	}
	return c.JSON(out)
}

// Claims godoc
// @Summary      Solicitudes de devolución
// @Tags         marketplace
// @Security     Bearer
// @Produce      json
// @Param        page       query  int  false  "Página"  default(0)
// @Param        size       query  int  false  "Tamaño"  default(50)
// @Param        startDate  query  int  false  "Inicio (epoch ms)"
// @Param        endDate    query  int  false  "Fin (epoch ms)"
// @Success      200  {object}  marketplace.ClaimPage
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/marketplace/claims [get]
func (h *MarketplaceHandler) Claims(c *fiber.Ctx) error {
	out, err := h.orders.ListClaims(c.Context(),
		c.QueryInt("page", 0), c.QueryInt("size", 50),
		int64(c.QueryInt("startDate", 0)), int64(c.QueryInt("endDate", 0)))
	if err != nil {
		return respondRemoteError(c, err)
	}
	return c.JSON(out)
}

// ExtendedReturns godoc
// @Summary      Escaneo profundo de devoluciones (~6 meses)
// @Description  Pedidos devueltos/cancelados y claims en tramos de 14 días, unificados y paginados en memoria.
// @Tags         marketplace
// @Security     Bearer
// @Produce      json
// @Param        page  query  int  false  "Página"  default(0)
// @Param        size  query  int  false  "Tamaño"  default(50)
// @Success      200  {object}  marketplace.OrderPage
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/marketplace/returns/extended [get]
func (h *MarketplaceHandler) ExtendedReturns(c *fiber.Ctx) error {
	out, err := h.orders.ExtendedReturns(c.Context(), c.QueryInt("page", 0), c.QueryInt("size", 50))
	if err != nil {
		return respondRemoteError(c, err)
	}
	return c.JSON(out)
}

// respondRemoteError mapea la taxonomía de errores del marketplace a HTTP.
// Credenciales ausentes son un problema de configuración local (503); el resto
// es el remoto fallando (502).
func respondRemoteError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrRemoteCredentialsMissing) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "MARKETPLACE_NOT_CONFIGURED", Message: "credenciales del marketplace incompletas"})
	}
	if errors.Is(err, domain.ErrRemoteRequestFailed) || errors.Is(err, domain.ErrRemoteResponseMalformed) {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "MARKETPLACE_ERROR", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
