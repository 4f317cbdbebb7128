package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-catalog-api/internal/service"
	resp "go-catalog-api/internal/transport/http/response"
)

type GalleryHandler struct {
	gallery *service.GalleryService
}

func NewGalleryHandler(gallery *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{gallery: gallery}
}

type galleryIn struct {
	Image string `json:"image" binding:"required"`
}

func (h *GalleryHandler) List(c *gin.Context) {
	items, err := h.gallery.List(c.Request.Context(), c.GetString("userId"), c.Param("id"))
	if err != nil {
		resp.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(items))
}

func (h *GalleryHandler) Update(c *gin.Context) {
	var in galleryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.WriteErr(c, resp.BadRequest(err.Error()))
		return
	}
	g, err := h.gallery.ReplaceImage(c.Request.Context(),
		c.GetString("userId"), c.Param("id"), c.Param("gallery_id"), in.Image)
	if err != nil {
		resp.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(g))
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	err := h.gallery.Remove(c.Request.Context(),
		c.GetString("userId"), c.Param("id"), c.Param("gallery_id"))
	if err != nil {
		resp.WriteErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
