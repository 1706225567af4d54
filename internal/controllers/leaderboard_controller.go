package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"civicfix/internal/leaderboard"
)

// Top contributors returned per request; the aggregator itself is unbounded.
const maxLeaderboardEntries = 100

// LeaderboardSource computes ranked contributor summaries.
type LeaderboardSource interface {
	Compute(period string, topN int) ([]leaderboard.Entry, error)
}

type LeaderboardController struct {
	source LeaderboardSource
}

func NewLeaderboardController(source LeaderboardSource) *LeaderboardController {
	return &LeaderboardController{source: source}
}

// GetLeaderboard handles GET /api/leaderboard?period=all|week|month.
func (lc *LeaderboardController) GetLeaderboard(c *gin.Context) {
	period := c.DefaultQuery("period", leaderboard.PeriodAll)
	if !leaderboard.KnownPeriod(period) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period"})
		return
	}

	entries, err := lc.source.Compute(period, maxLeaderboardEntries)
	if err != nil {
		logrus.WithError(err).Error("GetLeaderboard: aggregation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
