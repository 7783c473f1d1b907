package controllers

import (
	"net/http"
	"time"

	"churchpro-backend/services"
	"churchpro-backend/utils"

	"github.com/gin-gonic/gin"
)

// DashboardController serves the weekly statistics snapshot.
type DashboardController struct {
	stats *services.Stats
}

func NewDashboardController(stats *services.Stats) *DashboardController {
	return &DashboardController{stats: stats}
}

// GetWeeklyStats returns the snapshot for the week containing the `date`
// query parameter (YYYY-MM-DD), defaulting to the current week. The
// dashboard's week navigation drives the parameter.
func (dc *DashboardController) GetWeeklyStats(c *gin.Context) {
	reference := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		reference = parsed
	}

	stats, err := dc.stats.Weekly(reference)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
