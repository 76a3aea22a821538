package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// ShelfHandler maneja las peticiones HTTP para estanterías (protegido).
type ShelfHandler struct {
	uc *usecase.ShelfUseCase
}

// NewShelfHandler construye el handler.
func NewShelfHandler(uc *usecase.ShelfUseCase) *ShelfHandler {
	return &ShelfHandler{uc: uc}
}

// Create godoc
// @Summary      Crear estantería
// @Tags         shelves
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateShelfRequest  true  "code, capacity"
// @Success      201   {object}  dto.ShelfResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/shelves [post]
func (h *ShelfHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateShelfRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code es requerido"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el código ya está en uso"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar estanterías
// @Tags         shelves
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ShelfResponse
// @Router       /api/shelves [get]
func (h *ShelfHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Products godoc
// @Summary      Productos de una estantería
// @Tags         shelves
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la estantería"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shelves/{id}/products [get]
func (h *ShelfHandler) Products(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.ProductsByShelf(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estantería no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar estantería (desasigna sus productos primero)
// @Tags         shelves
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la estantería"
// @Success      200  {object}  dto.DeleteShelfResult
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shelves/{id} [delete]
func (h *ShelfHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.Delete(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estantería no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
