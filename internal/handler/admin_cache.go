package handler

import (
	"net/http"

	"github.com/osse101/HabitInventory_Go/internal/inventory"
)

// HandleGetCacheStats returns snapshot cache statistics
// @Summary Get snapshot cache stats
// @Description Returns cache hit/miss statistics for monitoring
// @Tags admin
// @Produce json
// @Success 200 {object} inventory.CacheStats
// @Security ApiKeyAuth
// @Router /api/v1/admin/cache/stats [get]
func HandleGetCacheStats(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.GetCacheStats())
	}
}
