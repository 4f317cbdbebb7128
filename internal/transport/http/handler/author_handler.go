package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-catalog-api/internal/service"
	resp "go-catalog-api/internal/transport/http/response"
)

type AuthorHandler struct {
	authors *service.AuthorService
}

func NewAuthorHandler(authors *service.AuthorService) *AuthorHandler {
	return &AuthorHandler{authors: authors}
}

type authorIn struct {
	Name string `json:"name" binding:"required,max=255"`
}

func (h *AuthorHandler) List(c *gin.Context) {
	items, err := h.authors.List(c.Request.Context(), c.GetString("userId"))
	if err != nil {
		resp.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(items))
}

func (h *AuthorHandler) Create(c *gin.Context) {
	var in authorIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.WriteErr(c, resp.BadRequest(err.Error()))
		return
	}
	a, err := h.authors.Create(c.Request.Context(), c.GetString("userId"), in.Name)
	if err != nil {
		resp.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp.OK(a))
}

func (h *AuthorHandler) Get(c *gin.Context) {
	a, err := h.authors.Get(c.Request.Context(), c.GetString("userId"), c.Param("id"))
	if err != nil {
		resp.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(a))
}

func (h *AuthorHandler) Update(c *gin.Context) {
	var in authorIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.WriteErr(c, resp.BadRequest(err.Error()))
		return
	}
	a, err := h.authors.Update(c.Request.Context(), c.GetString("userId"), c.Param("id"), in.Name)
	if err != nil {
		resp.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(a))
}

func (h *AuthorHandler) Delete(c *gin.Context) {
	if err := h.authors.Delete(c.Request.Context(), c.GetString("userId"), c.Param("id")); err != nil {
		resp.WriteErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
