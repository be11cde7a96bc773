package controller

import (
	"context"
	"net/http"
	"time"

	"mindwell_backend/internal/repository"
	"mindwell_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type HealthController struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Results *repository.QuizResultRepository
}

func NewHealthController(db *gorm.DB, rdb *redis.Client, results *repository.QuizResultRepository) *HealthController {
	return &HealthController{DB: db, Redis: rdb, Results: results}
}

// HealthCheck godoc
// @Summary 健康检查
// @Description 检查数据库、Redis 和 quiz_results 表状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.InternalServerError(ctx)
		return
	}

	if err := sqlDB.Ping(); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	redisStatus := "up"
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()
	if err := c.Redis.Ping(pingCtx).Err(); err != nil {
		redisStatus = "down"
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"database":           "up",
			"redis":              redisStatus,
			"quiz_results_table": c.Results.TableExists(),
		},
	})
}
