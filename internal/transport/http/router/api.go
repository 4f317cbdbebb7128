package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-catalog-api/internal/core/auth"
	"go-catalog-api/internal/transport/http/handler"
	mdw "go-catalog-api/internal/transport/http/middleware"
	resp "go-catalog-api/internal/transport/http/response"
)

type Handlers struct {
	User    *handler.UserHandler
	Product *handler.ProductHandler
	Author  *handler.AuthorHandler
	Gallery *handler.GalleryHandler
}

func NewAPIEngine(l *zap.Logger, jwter *auth.JWTer, h Handlers) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		cors.Default(),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, resp.Error(resp.CodeNotFound, ""))
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, resp.Error(resp.CodeMethodNotAllowed, ""))
	})

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// The original API splits authentication classes per endpoint family:
	// profile and gallery reject anonymous calls with 401, the product and
	// author viewsets with 403.
	profileAuth := mdw.AuthJWT(jwter, http.StatusUnauthorized)
	catalogAuth := mdw.AuthJWT(jwter, http.StatusForbidden)
	galleryAuth := mdw.AuthJWT(jwter, http.StatusUnauthorized)

	user := r.Group("/user")
	{
		user.POST("/", h.User.Create)
		user.POST("/token/", h.User.Token)
		user.POST("/token/refresh/", h.User.TokenRefresh)
		user.GET("/profile/", profileAuth, h.User.Profile)
		user.PATCH("/profile/", profileAuth, h.User.UpdateProfile)
	}

	product := r.Group("/product")

	cat := product.Group("", catalogAuth)
	{
		cat.GET("/products/", h.Product.List)
		cat.POST("/products/", h.Product.Create)
		cat.GET("/products/:id/", h.Product.Get)
		cat.PUT("/products/:id/", h.Product.Put)
		cat.PATCH("/products/:id/", h.Product.Patch)
		cat.DELETE("/products/:id/", h.Product.Delete)

		cat.GET("/authors/", h.Author.List)
		cat.POST("/authors/", h.Author.Create)
		cat.GET("/authors/:id/", h.Author.Get)
		cat.PUT("/authors/:id/", h.Author.Update)
		cat.PATCH("/authors/:id/", h.Author.Update)
		cat.DELETE("/authors/:id/", h.Author.Delete)
	}

	gal := product.Group("", galleryAuth)
	{
		gal.GET("/products/:id/images/", h.Gallery.List)
		gal.PUT("/products/:id/images/:gallery_id", h.Gallery.Update)
		gal.PATCH("/products/:id/images/:gallery_id", h.Gallery.Update)
		gal.DELETE("/products/:id/images/:gallery_id", h.Gallery.Delete)
	}

	return r
}
