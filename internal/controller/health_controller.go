package controller

import (
	"net/http"

	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type HealthController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewHealthController(db *gorm.DB, rdb *redis.Client) *HealthController {
	return &HealthController{DB: db, Redis: rdb}
}

// Health godoc
// @Summary Liveness and dependency check
// @Tags health
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	status := gin.H{"database": "up", "redis": "disabled"}
	healthy := true

	sqlDB, err := c.DB.DB()
	if err != nil || sqlDB.PingContext(ctx.Request.Context()) != nil {
		status["database"] = "down"
		healthy = false
	}

	if c.Redis != nil {
		status["redis"] = "up"
		if err := c.Redis.Ping(ctx.Request.Context()).Err(); err != nil {
			status["redis"] = "down"
			healthy = false
		}
	}

	if !healthy {
		util.Error(ctx, http.StatusServiceUnavailable, "dependency unavailable")
		return
	}
	util.Success(ctx, status)
}
