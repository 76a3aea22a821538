package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/analytics"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// InventoryHandler maneja las mutaciones de stock y la actividad del diario
// (protegido). La validación de insuficiencia vive aquí como pre-chequeo con
// respuesta 409; el motor de mutaciones recorta en cero y nunca rechaza por
// stock.
type InventoryHandler struct {
	mutation  *inventory.MutationUseCase
	productUC *usecase.ProductUseCase
	dashboard *analytics.DashboardUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(mutation *inventory.MutationUseCase, productUC *usecase.ProductUseCase, dashboard *analytics.DashboardUseCase) *InventoryHandler {
	return &InventoryHandler{mutation: mutation, productUC: productUC, dashboard: dashboard}
}

// StockIn godoc
// @Summary      Entrada de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockMovementRequest  true  "product_id, amount"
// @Success      200   {object}  inventory.MovementResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/stock-in [post]
func (h *InventoryHandler) StockIn(c *fiber.Ctx) error {
	var in dto.StockMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.mutation.StockIn(c.Context(), in.ProductID, in.Amount)
	if err != nil {
		return respondMovementError(c, err)
	}
	return c.JSON(out)
}

// StockOut godoc
// @Summary      Salida de stock
// @Description  Rechaza con 409 si amount supera el stock sano disponible.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockMovementRequest  true  "product_id, amount"
// @Success      200   {object}  inventory.MovementResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/stock-out [post]
func (h *InventoryHandler) StockOut(c *fiber.Ctx) error {
	var in dto.StockMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if resp := h.checkAvailable(c, in.ProductID, in.Amount, false); resp != nil {
		return resp()
	}
	out, err := h.mutation.StockOut(c.Context(), in.ProductID, in.Amount)
	if err != nil {
		return respondMovementError(c, err)
	}
	return c.JSON(out)
}

// Move godoc
// @Summary      Trasladar producto a otra estantería
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MoveShelfRequest  true  "product_id, new_shelf_id"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/move [post]
func (h *InventoryHandler) Move(c *fiber.Ctx) error {
	var in dto.MoveShelfRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.mutation.MoveShelf(c.Context(), in.ProductID, in.NewShelfID); err != nil {
		return respondMovementError(c, err)
	}
	return c.JSON(fiber.Map{"message": "producto trasladado"})
}

// DamagedIn godoc
// @Summary      Entrada de stock dañado
// @Description  Con from_main_stock las unidades salen del stock sano; rechaza con 409 si no alcanzan.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DamagedInRequest  true  "product_id, amount, from_main_stock"
// @Success      200   {object}  inventory.MovementResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/damaged-in [post]
func (h *InventoryHandler) DamagedIn(c *fiber.Ctx) error {
	var in dto.DamagedInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.FromMainStock {
		if resp := h.checkAvailable(c, in.ProductID, in.Amount, false); resp != nil {
			return resp()
		}
	}
	out, err := h.mutation.DamagedIn(c.Context(), in.ProductID, in.Amount, in.FromMainStock)
	if err != nil {
		return respondMovementError(c, err)
	}
	return c.JSON(out)
}

// DamagedOut godoc
// @Summary      Salida de stock dañado
// @Description  Rechaza con 409 si amount supera el stock dañado disponible.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockMovementRequest  true  "product_id, amount"
// @Success      200   {object}  inventory.MovementResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/damaged-out [post]
func (h *InventoryHandler) DamagedOut(c *fiber.Ctx) error {
	var in dto.StockMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if resp := h.checkAvailable(c, in.ProductID, in.Amount, true); resp != nil {
		return resp()
	}
	out, err := h.mutation.DamagedOut(c.Context(), in.ProductID, in.Amount)
	if err != nil {
		return respondMovementError(c, err)
	}
	return c.JSON(out)
}

// RecentActivity godoc
// @Summary      Actividad reciente del diario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(20)
// @Success      200    {array}  dto.LogResponse
// @Router       /api/inventory/logs [get]
func (h *InventoryHandler) RecentActivity(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	out, err := h.dashboard.RecentActivity(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// checkAvailable pre-chequeo de insuficiencia. Lee el producto fuera de la
// transacción y responde 409 con el disponible actual si amount lo supera.
// Nil si la operación puede continuar. Es solo cortesía para el panel: la
// carrera con otra mutación concurrente la resuelve el recorte en cero del
// motor, no este chequeo.
func (h *InventoryHandler) checkAvailable(c *fiber.Ctx, productID string, amount int, damaged bool) func() error {
	if amount <= 0 {
		return nil // el motor responde ErrInvalidInput
	}
	product, err := h.productUC.GetByID(productID)
	if err != nil || product == nil {
		return nil // not found lo responde el motor con 404
	}
	available := product.Quantity
	if damaged {
		available = product.DamagedQuantity
	}
	if amount <= available {
		return nil
	}
	return func() error {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"code":      "INSUFFICIENT_STOCK",
			"message":   fmt.Sprintf("stock insuficiente: disponible %d", available),
			"available": available,
		})
	}
}

// respondMovementError mapea los errores del motor de mutaciones a HTTP.
func respondMovementError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "amount debe ser mayor que cero"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o estantería no encontrado"})
	}
	if errors.Is(err, domain.ErrInsufficientStock) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
