package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MDMahidul/bistro-boss-server/internal/domain"
	"github.com/MDMahidul/bistro-boss-server/internal/repository"
)

type MenuHandler struct {
	menu *repository.MenuRepo
}

func NewMenuHandler(menu *repository.MenuRepo) *MenuHandler {
	return &MenuHandler{menu: menu}
}

func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.menu.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *MenuHandler) Create(c *gin.Context) {
	var item domain.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.menu.Create(c.Request.Context(), &item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": item.ID})
}

func (h *MenuHandler) Delete(c *gin.Context) {
	n, err := h.menu.DeleteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": n})
}

func (h *MenuHandler) ListReviews(c *gin.Context) {
	reviews, err := h.menu.ListReviews(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *MenuHandler) CreateReview(c *gin.Context) {
	var rv domain.Review
	if err := c.ShouldBindJSON(&rv); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.menu.CreateReview(c.Request.Context(), &rv); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": rv.ID})
}
