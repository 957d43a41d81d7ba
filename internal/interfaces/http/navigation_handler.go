package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/enterprise-brain-api/internal/application/dto"
	"github.com/jhoicas/enterprise-brain-api/internal/application/usecase"
	"github.com/jhoicas/enterprise-brain-api/internal/domain"
)

// NavigationHandler maneja la resolución nombre → ID de la consola (protegido).
type NavigationHandler struct {
	uc *usecase.NavigationUseCase
}

// NewNavigationHandler construye el handler.
func NewNavigationHandler(uc *usecase.NavigationUseCase) *NavigationHandler {
	return &NavigationHandler{uc: uc}
}

// Categories godoc
// @Summary      Listar categorías navegables
// @Tags         navigation
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/navigation/categories [get]
func (h *NavigationHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListCategories())
}

// Entries godoc
// @Summary      Listar entradas de una categoría
// @Tags         navigation
// @Security     Bearer
// @Produce      json
// @Param        category  path   string  true   "product | team | salesperson | contract | customer"
// @Param        limit     query  int     false  "Límite"  default(20)
// @Param        offset    query  int     false  "Offset"  default(0)
// @Param        sort      query  string  false  "declaration | name"
// @Success      200  {object}  dto.EntryListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/navigation/{category}/entries [get]
func (h *NavigationHandler) Entries(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "limit y offset deben ser enteros"})
	}
	out, err := h.uc.ListEntries(c.Params("category"), page, c.Query("sort"))
	if err != nil {
		return navigationError(c, err)
	}
	return c.JSON(out)
}

// Resolve godoc
// @Summary      Resolver un nombre visible a su identificador
// @Description  Un nombre desconocido (incluida la cadena vacía) devuelve el ID por defecto con matched=false.
// @Tags         navigation
// @Security     Bearer
// @Produce      json
// @Param        category  path   string  true   "product | team | salesperson | contract | customer"
// @Param        name      query  string  false  "Nombre visible"
// @Success      200  {object}  dto.ResolveResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/navigation/{category}/resolve [get]
func (h *NavigationHandler) Resolve(c *fiber.Ctx) error {
	name := strings.Clone(c.Query("name"))
	out, err := h.uc.Resolve(c.Params("category"), name)
	if err != nil {
		return navigationError(c, err)
	}
	return c.JSON(out)
}

// ResolveBatch godoc
// @Summary      Resolver varios nombres
// @Tags         navigation
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        category  path  string                   true  "product | team | salesperson | contract | customer"
// @Param        body      body  dto.BatchResolveRequest  true  "Nombres (máx. 100)"
// @Success      200  {object}  dto.BatchResolveResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/navigation/{category}/resolve [post]
func (h *NavigationHandler) ResolveBatch(c *fiber.Ctx) error {
	var in dto.BatchResolveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ResolveBatch(c.Params("category"), in.Names)
	if err != nil {
		return navigationError(c, err)
	}
	return c.JSON(out)
}

func navigationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownCategory):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_CATEGORY", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
