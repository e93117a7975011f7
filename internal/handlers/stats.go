package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MDMahidul/bistro-boss-server/internal/service"
)

type StatsHandler struct {
	stats *service.StatsService
}

func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) Fleet(c *gin.Context) {
	fs, err := h.stats.Fleet(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// revenue is summed exactly; only the rendering is a float
	c.JSON(http.StatusOK, gin.H{
		"users":    fs.Users,
		"products": fs.Products,
		"orders":   fs.Orders,
		"revenue":  fs.Revenue.InexactFloat64(),
	})
}

func (h *StatsHandler) Categories(c *gin.Context) {
	stats, err := h.stats.Categories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]gin.H, 0, len(stats))
	for _, s := range stats {
		out = append(out, gin.H{
			"category": s.Category,
			"count":    s.Count,
			"total":    s.Total.InexactFloat64(),
		})
	}
	c.JSON(http.StatusOK, out)
}
