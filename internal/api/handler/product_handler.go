package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/socialhub/socialhub-api/internal/core/domain"
	"github.com/socialhub/socialhub-api/internal/core/ports"
)

// ProductHandler serves the storefront: products and orders.
type ProductHandler struct {
	commerceService ports.CommerceService
}

func NewProductHandler(commerceService ports.CommerceService) *ProductHandler {
	return &ProductHandler{commerceService: commerceService}
}

type productRequest struct {
	Title       string  `json:"title"        validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"        validate:"gte=0"`
	ProductType string  `json:"product_type" validate:"required,oneof=digital physical service"`
	Status      string  `json:"status"`
}

type productResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ProductType string  `json:"product_type"`
	Status      string  `json:"status"`
}

type listProductsResponse struct {
	Products []productResponse `json:"products"`
}

type createProductResponse struct {
	ID string `json:"id"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type createOrderRequest struct {
	ProductID  string `json:"product_id"  validate:"required"`
	BuyerEmail string `json:"buyer_email" validate:"required,email"`
}

type createOrderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		ProductType: string(p.ProductType),
		Status:      p.Status,
	}
}

func (h *ProductHandler) bindProduct(c echo.Context) (*productRequest, error) {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return &req, nil
}

// List returns the caller's products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listProductsResponse
// @Failure      401  {object}  errorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	products, err := h.commerceService.ListProducts(c.Request().Context(), user)
	if err != nil {
		return err
	}

	resp := listProductsResponse{Products: make([]productResponse, 0, len(products))}
	for _, p := range products {
		resp.Products = append(resp.Products, toProductResponse(p))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create adds a product to the caller's storefront.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  createProductResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	req, err := h.bindProduct(c)
	if err != nil {
		return err
	}

	product, err := h.commerceService.CreateProduct(c.Request().Context(), user, ports.ProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ProductType: domain.ProductType(req.ProductType),
		Status:      req.Status,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createProductResponse{ID: product.ID})
}

// Update replaces a product owned by the caller.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Product ID"
// @Param        body  body      productRequest  true  "Product details"
// @Success      200   {object}  okResponse
// @Failure      404   {object}  errorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	req, err := h.bindProduct(c)
	if err != nil {
		return err
	}

	err = h.commerceService.UpdateProduct(c.Request().Context(), user, c.Param("id"), ports.ProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ProductType: domain.ProductType(req.ProductType),
		Status:      req.Status,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, okResponse{OK: true})
}

// Delete removes a product owned by the caller. Deleting an unknown product
// still reports ok.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Product ID"
// @Success      200 {object}  okResponse
// @Failure      401 {object}  errorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.commerceService.DeleteProduct(c.Request().Context(), user, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}

// CreateOrder records a simulated sale of one of the caller's products.
//
// @Summary      Create an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      201   {object}  createOrderResponse
// @Failure      404   {object}  errorResponse
// @Router       /orders [post]
func (h *ProductHandler) CreateOrder(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	order, err := h.commerceService.CreateOrder(c.Request().Context(), user, ports.CreateOrderInput{
		ProductID:  req.ProductID,
		BuyerEmail: req.BuyerEmail,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createOrderResponse{ID: order.ID, Status: order.Status})
}
