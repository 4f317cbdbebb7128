package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-catalog-api/internal/service"
	resp "go-catalog-api/internal/transport/http/response"
)

type UserHandler struct {
	users  *service.UserService
	tokens *service.TokenService
}

func NewUserHandler(users *service.UserService, tokens *service.TokenService) *UserHandler {
	return &UserHandler{users: users, tokens: tokens}
}

type signupIn struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=5"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var in signupIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.WriteErr(c, resp.BadRequest(err.Error()))
		return
	}
	u, err := h.users.Signup(c.Request.Context(), in.Name, in.Email, in.Password)
	if err != nil {
		resp.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp.OK(u))
}

type tokenIn struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *UserHandler) Token(c *gin.Context) {
	var in tokenIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.WriteErr(c, resp.BadRequest(err.Error()))
		return
	}
	u, err := h.users.Authenticate(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		resp.WriteErr(c, err)
		return
	}
	pair, err := h.tokens.Issue(u.ID)
	if err != nil {
		resp.WriteErr(c, resp.Internal("issue token failed", err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(pair))
}

type refreshIn struct {
	Refresh string `json:"refresh" binding:"required"`
}

func (h *UserHandler) TokenRefresh(c *gin.Context) {
	var in refreshIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.WriteErr(c, resp.BadRequest(err.Error()))
		return
	}
	pair, err := h.tokens.Refresh(c.Request.Context(), in.Refresh)
	if err != nil {
		resp.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(pair))
}

func (h *UserHandler) Profile(c *gin.Context) {
	u, err := h.users.Profile(c.Request.Context(), c.GetString("userId"))
	if err != nil {
		resp.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(u))
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var patch service.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.WriteErr(c, resp.BadRequest(err.Error()))
		return
	}
	u, err := h.users.UpdateProfile(c.Request.Context(), c.GetString("userId"), patch)
	if err != nil {
		resp.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(u))
}
