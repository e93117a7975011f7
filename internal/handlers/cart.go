package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MDMahidul/bistro-boss-server/internal/domain"
	"github.com/MDMahidul/bistro-boss-server/internal/middlewares"
	"github.com/MDMahidul/bistro-boss-server/internal/repository"
)

type CartHandler struct {
	carts *repository.CartRepo
}

func NewCartHandler(carts *repository.CartRepo) *CartHandler {
	return &CartHandler{carts: carts}
}

// List returns the cart for the identity in the query, which must be the
// token identity. Asking for someone else's cart is forbidden, never empty.
func (h *CartHandler) List(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusOK, []domain.CartItem{})
		return
	}
	if email != middlewares.TokenEmail(c) {
		middlewares.AbortForbidden(c)
		return
	}
	items, err := h.carts.ByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *CartHandler) Create(c *gin.Context) {
	var item domain.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// entries always belong to the caller, whatever the payload says
	item.Email = middlewares.TokenEmail(c)
	if err := h.carts.Create(c.Request.Context(), &item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": item.ID})
}

func (h *CartHandler) Delete(c *gin.Context) {
	n, err := h.carts.DeleteOwned(c.Request.Context(), c.Param("id"), middlewares.TokenEmail(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": n})
}
