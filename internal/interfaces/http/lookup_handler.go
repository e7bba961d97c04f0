package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fournull/pcsale-api/internal/application/dto"
	"github.com/fournull/pcsale-api/internal/application/usecase"
)

// LookupHandler catálogos auxiliares: categorías y proveedores (protegido).
type LookupHandler struct {
	uc *usecase.LookupUseCase
}

// NewLookupHandler construye el handler.
func NewLookupHandler(uc *usecase.LookupUseCase) *LookupHandler {
	return &LookupHandler{uc: uc}
}

// CreateCategory godoc
// @Summary      Alta de categoría
// @Tags         lookups
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "name obligatorio"
// @Success      201   {object}  dto.CategoryResponse
// @Router       /api/categories [post]
func (h *LookupHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.CreateCategory(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListCategories godoc
// @Summary      Listar categorías
// @Tags         lookups
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/categories [get]
func (h *LookupHandler) ListCategories(c *fiber.Ctx) error {
	list, err := h.uc.ListCategories(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "categories": list})
}

// CreateSupplier godoc
// @Summary      Alta de proveedor
// @Tags         lookups
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "name obligatorio"
// @Success      201   {object}  dto.SupplierResponse
// @Router       /api/suppliers [post]
func (h *LookupHandler) CreateSupplier(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.CreateSupplier(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListSuppliers godoc
// @Summary      Listar proveedores
// @Tags         lookups
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SupplierResponse
// @Router       /api/suppliers [get]
func (h *LookupHandler) ListSuppliers(c *fiber.Ctx) error {
	list, err := h.uc.ListSuppliers(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "suppliers": list})
}
