package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MDMahidul/bistro-boss-server/internal/domain"
	"github.com/MDMahidul/bistro-boss-server/internal/middlewares"
	"github.com/MDMahidul/bistro-boss-server/internal/service"
)

type UserHandler struct {
	dir *service.Directory
}

func NewUserHandler(dir *service.Directory) *UserHandler {
	return &UserHandler{dir: dir}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.dir.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Register(c *gin.Context) {
	var u domain.User
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.dir.Register(c.Request.Context(), &u)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "user already exist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": u.ID})
}

func (h *UserHandler) Delete(c *gin.Context) {
	n, err := h.dir.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": n})
}

// CheckAdmin reports whether the identity holds the admin role. A caller
// asking about someone else's identity gets {admin:false} and nothing more;
// the lookup does not run.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")
	if middlewares.TokenEmail(c) != email {
		c.JSON(http.StatusOK, gin.H{"admin": false})
		return
	}
	isAdmin, err := h.dir.IsAdmin(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

func (h *UserHandler) GrantAdmin(c *gin.Context) {
	n, err := h.dir.GrantAdmin(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": n})
}
