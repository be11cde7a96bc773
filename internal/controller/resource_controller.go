package controller

import (
	"strconv"

	"mindwell_backend/internal/service"
	"mindwell_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResourceController struct {
	Service *service.ResourceService
}

func NewResourceController(svc *service.ResourceService) *ResourceController {
	return &ResourceController{Service: svc}
}

// GetRecommendations godoc
// @Summary 按分数获取推荐资源
// @Description 按风险等级（low/moderate/high）返回文章和热线
// @Tags 资源
// @Produce json
// @Param score query number true "测评分数 0-100"
// @Success 200 {object} util.Response{data=service.ResourceRecommendation}
// @Failure 400 {object} util.Response "分数缺失或非法"
// @Router /api/resources [get]
func (c *ResourceController) GetRecommendations(ctx *gin.Context) {
	scoreStr := ctx.Query("score")
	if scoreStr == "" {
		util.BadRequest(ctx, "score is required")
		return
	}

	score, err := strconv.ParseFloat(scoreStr, 64)
	if err != nil || score < 0 || score > 100 {
		util.BadRequest(ctx, "score must be a number between 0 and 100")
		return
	}

	rec, err := c.Service.Recommend(score)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, rec)
}

// GetSounds godoc
// @Summary 获取助眠音频列表
// @Tags 资源
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/sounds [get]
func (c *ResourceController) GetSounds(ctx *gin.Context) {
	sounds, err := c.Service.ListSounds()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, sounds)
}
