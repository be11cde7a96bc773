package controller

import (
	"errors"

	"mindwell_backend/internal/scoring"
	"mindwell_backend/internal/service"
	"mindwell_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService  *service.QuizService
	StatsService *service.StatsService
}

func NewQuizController(quizService *service.QuizService, statsService *service.StatsService) *QuizController {
	return &QuizController{
		QuizService:  quizService,
		StatsService: statsService,
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, scoring.ErrIncompleteAnswers) || errors.Is(err, scoring.ErrAnswerOutOfRange)
}

// GetQuestions godoc
// @Summary 获取测评题目
// @Description 返回固定的五道题和李克特选项
// @Tags 测评
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/quiz/questions [get]
func (c *QuizController) GetQuestions(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"questions": scoring.Questions(),
		"options":   scoring.AnswerOptions,
	})
}

// Evaluate godoc
// @Summary 即时评估（不保存）
// @Description 未登录用户提交答案，只返回分数、分类和风险等级
// @Tags 测评
// @Accept json
// @Produce json
// @Param body body service.SubmitQuizRequest true "答案"
// @Success 200 {object} util.Response{data=service.QuizEvaluation}
// @Failure 400 {object} util.Response "答案不完整或取值非法"
// @Router /api/quiz/evaluate [post]
func (c *QuizController) Evaluate(ctx *gin.Context) {
	var req service.SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	eval, err := c.QuizService.Evaluate(req)
	if err != nil {
		if isValidationError(err) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, eval)
}

// Submit godoc
// @Summary 提交测评并保存结果
// @Tags 测评
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.SubmitQuizRequest true "答案和可选备注"
// @Success 201 {object} util.Response{data=service.EnhancedQuizResult}
// @Failure 400 {object} util.Response "答案不完整或取值非法"
// @Failure 401 {object} util.Response
// @Router /api/quiz/results [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.Submit(claims.UserID, req)
	if err != nil {
		if isValidationError(err) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, result)
}

// History godoc
// @Summary 获取测评历史
// @Description 当前用户的全部结果，按创建时间倒序
// @Tags 测评
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.EnhancedQuizResult}
// @Router /api/quiz/results [get]
func (c *QuizController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	results, err := c.QuizService.History(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, results)
}

// GetResult godoc
// @Summary 获取单条测评结果
// @Tags 测评
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "结果ID"
// @Success 200 {object} util.Response{data=service.EnhancedQuizResult}
// @Failure 404 {object} util.Response
// @Router /api/quiz/results/{id} [get]
func (c *QuizController) GetResult(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.QuizService.GetResult(claims.UserID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrResultNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

type UpdateNotesRequest struct {
	Notes string `json:"notes" binding:"max=2000"`
}

// UpdateNotes godoc
// @Summary 更新结果备注
// @Description 备注是结果上唯一允许修改的字段
// @Tags 测评
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "结果ID"
// @Param body body UpdateNotesRequest true "备注"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quiz/results/{id}/notes [put]
func (c *QuizController) UpdateNotes(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateNotesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.QuizService.UpdateNotes(claims.UserID, ctx.Param("id"), req.Notes); err != nil {
		if errors.Is(err, util.ErrResultNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"updated": true})
}

// Delete godoc
// @Summary 删除测评结果
// @Tags 测评
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "结果ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quiz/results/{id} [delete]
func (c *QuizController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.QuizService.Delete(claims.UserID, ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrResultNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}

// GetStats godoc
// @Summary 获取统计汇总
// @Description 条数、均分、分类分布、最近趋势和最新一条结果
// @Tags 测评
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.QuizStats}
// @Router /api/quiz/stats [get]
func (c *QuizController) GetStats(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.StatsService.ComputeStats(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}
