package controller

import (
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RankingController struct {
	RankingService *service.RankingService
}

func NewRankingController(rankingService *service.RankingService) *RankingController {
	return &RankingController{RankingService: rankingService}
}

// GetStudentRanking godoc
// @Summary Leaderboard of every student ordered by stars
// @Tags ranking
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.RankedStudent}
// @Router /api/ranking [get]
func (c *RankingController) GetStudentRanking(ctx *gin.Context) {
	ranking, err := c.RankingService.StudentRanking(ctx.Request.Context())
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, ranking)
}
