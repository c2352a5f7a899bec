package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kitenge-atelier/storefront/internal/api/metrics"
	"github.com/kitenge-atelier/storefront/internal/core/ports"
)

type ProductHandler struct {
	catalog ports.CatalogService
}

func NewProductHandler(catalog ports.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// List returns the whole catalog. Mounted publicly and under /api/admin.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {array}   domain.Product
// @Failure      500  {object}  ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.catalog.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// ListByCategory returns products whose category equals the path key exactly.
//
// @Summary      List products in a category
// @Tags         products
// @Produce      json
// @Param        category  path      string  true  "Category key, e.g. womens-dresses"
// @Success      200       {array}   domain.Product
// @Failure      500       {object}  ErrorResponse
// @Router       /api/products/category/{category} [get]
func (h *ProductHandler) ListByCategory(c echo.Context) error {
	products, err := h.catalog.ListByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get returns one product.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.catalog.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create adds a product to the catalog.
//
// @Summary      Create a product
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/admin/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := bind(c, &req, "Invalid product data"); err != nil {
		return err
	}
	if err := validate(c, &req, "Invalid product data"); err != nil {
		return err
	}

	product, err := h.catalog.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}

	metrics.ProductChangesTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, product)
}

// Update applies a partial update. Absent and null fields are left unchanged.
//
// @Summary      Update a product
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product ID"
// @Param        body  body      updateProductRequest  true  "Fields to change"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/admin/products/{id} [patch]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := bind(c, &req, "Invalid product data"); err != nil {
		return err
	}
	if err := validate(c, &req, "Invalid product data"); err != nil {
		return err
	}

	product, err := h.catalog.Update(c.Request().Context(), c.Param("id"), req.toDomain())
	if err != nil {
		return err
	}

	metrics.ProductChangesTotal.WithLabelValues("updated").Inc()
	return c.JSON(http.StatusOK, product)
}

// Delete removes a product.
//
// @Summary      Delete a product
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/admin/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.catalog.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.ProductChangesTotal.WithLabelValues("deleted").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Product deleted successfully"})
}
