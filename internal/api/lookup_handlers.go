package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GET /api/lookups?limit=N
func RecentLookupsHandler(h HistoryReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 0
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "limit must be a non-negative integer"}})
				return
			}
			limit = n
		}
		lookups, err := h.Recent(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to list lookups"}})
			return
		}
		c.JSON(http.StatusOK, lookups)
	}
}

// GET /api/stats?top=N
func StatsHandler(s StatsReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		top := 0
		if raw := c.Query("top"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "top must be a non-negative integer"}})
				return
			}
			top = n
		}
		sum, err := s.Summary(c.Request.Context(), top)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to read stats"}})
			return
		}
		c.JSON(http.StatusOK, sum)
	}
}
