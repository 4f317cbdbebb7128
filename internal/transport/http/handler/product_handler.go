package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"go-catalog-api/internal/service"
	resp "go-catalog-api/internal/transport/http/response"
)

type ProductHandler struct {
	products *service.ProductService
}

func NewProductHandler(products *service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) List(c *gin.Context) {
	items, err := h.products.List(c.Request.Context(), c.GetString("userId"))
	if err != nil {
		resp.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(items))
}

func (h *ProductHandler) Create(c *gin.Context) {
	var in service.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.WriteErr(c, resp.BadRequest(err.Error()))
		return
	}
	p, err := h.products.Create(c.Request.Context(), c.GetString("userId"), in)
	if err != nil {
		resp.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp.OK(p))
}

func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.products.Get(c.Request.Context(), c.GetString("userId"), c.Param("id"))
	if err != nil {
		resp.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(p))
}

// Put is a full update: name is mandatory and an omitted price falls back
// to the column default. Relation keys keep their presence semantics.
func (h *ProductHandler) Put(c *gin.Context) {
	var patch service.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.WriteErr(c, resp.BadRequest(err.Error()))
		return
	}
	if patch.Name == nil || strings.TrimSpace(*patch.Name) == "" {
		resp.WriteErr(c, resp.BadRequest("name is required"))
		return
	}
	if patch.Price == nil {
		zero := decimal.Zero
		patch.Price = &zero
	}
	h.update(c, patch)
}

func (h *ProductHandler) Patch(c *gin.Context) {
	var patch service.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.WriteErr(c, resp.BadRequest(err.Error()))
		return
	}
	h.update(c, patch)
}

func (h *ProductHandler) update(c *gin.Context, patch service.ProductPatch) {
	p, err := h.products.Update(c.Request.Context(), c.GetString("userId"), c.Param("id"), patch)
	if err != nil {
		resp.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(p))
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), c.GetString("userId"), c.Param("id")); err != nil {
		resp.WriteErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
