package controller

import (
	"trueinvest_backend/internal/service"
	"trueinvest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RankingController struct {
	RankingService *service.RankingService
}

func NewRankingController(rankingService *service.RankingService) *RankingController {
	return &RankingController{RankingService: rankingService}
}

// Leaderboard godoc
// @Summary Top brokers ordered by total points
// @Description Ties share point totals but get deterministic positions by account age
// @Tags ranking
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.RankingEntry}
// @Router /api/ranking [get]
func (c *RankingController) Leaderboard(ctx *gin.Context) {
	entries, err := c.RankingService.Leaderboard(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// MyRank godoc
// @Summary The caller's position in the full ranking
// @Tags ranking
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/ranking/me [get]
func (c *RankingController) MyRank(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	rank, err := c.RankingService.Rank(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if rank == 0 {
		util.Success(ctx, gin.H{"position": nil})
		return
	}
	util.Success(ctx, gin.H{"position": rank})
}
