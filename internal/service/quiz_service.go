package service

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"mindwell_backend/internal/model"
	"mindwell_backend/internal/repository"
	"mindwell_backend/internal/scoring"
	"mindwell_backend/internal/util"
	"mindwell_backend/pkg/logger"
	"mindwell_backend/pkg/monitoring"

	"go.uber.org/zap"
)

type QuizService struct {
	Results *repository.QuizResultRepository
	Stats   *StatsService
}

func NewQuizService(results *repository.QuizResultRepository, stats *StatsService) *QuizService {
	return &QuizService{
		Results: results,
		Stats:   stats,
	}
}

type SubmitQuizRequest struct {
	Answers map[string]int `json:"answers" binding:"required"`
	Notes   string         `json:"notes"`
}

// QuizEvaluation 未登录用户的即时评估结果，不落库
type QuizEvaluation struct {
	Score        float64              `json:"score"`
	MoodCategory scoring.MoodCategory `json:"moodCategory"`
	RiskLevel    scoring.RiskLevel    `json:"riskLevel"`
}

// ParsedAnswer 单题答案加题干，历史页展示用
type ParsedAnswer struct {
	QuestionID   string `json:"questionId"`
	QuestionText string `json:"questionText"`
	Answer       int    `json:"answer"`
}

// EnhancedQuizResult 读取时构造的展示结构，不持久化
type EnhancedQuizResult struct {
	ID            string               `json:"id"`
	UserID        uint                 `json:"userId"`
	Score         float64              `json:"score"`
	MoodCategory  scoring.MoodCategory `json:"moodCategory"`
	Notes         *string              `json:"notes"`
	CreatedAt     string               `json:"createdAt"`
	ParsedAnswers []ParsedAnswer       `json:"parsedAnswers"`
	FormattedDate string               `json:"formattedDate"`
	ColorClass    string               `json:"colorClass"`
}

// Evaluate 只计算不保存，给未登录用户用
func (s *QuizService) Evaluate(req SubmitQuizRequest) (*QuizEvaluation, error) {
	score, err := scoring.ComputeScore(req.Answers)
	if err != nil {
		return nil, err
	}
	return &QuizEvaluation{
		Score:        score,
		MoodCategory: scoring.Categorize(score),
		RiskLevel:    scoring.AssessRisk(score),
	}, nil
}

// Submit 计算分数并持久化一条结果，mood_category 在此刻固化
func (s *QuizService) Submit(userID uint, req SubmitQuizRequest) (*EnhancedQuizResult, error) {
	score, err := scoring.ComputeScore(req.Answers)
	if err != nil {
		return nil, err
	}

	answersJSON, err := json.Marshal(req.Answers)
	if err != nil {
		return nil, err
	}

	result := &model.QuizResult{
		UserID:       userID,
		Score:        score,
		Answers:      answersJSON,
		MoodCategory: scoring.Categorize(score),
	}
	if req.Notes != "" {
		result.Notes = &req.Notes
	}

	if err := s.Results.Create(result); err != nil {
		logger.Log.Error("failed to save quiz result",
			zap.Uint("userID", userID),
			zap.Error(err))
		return nil, err
	}

	monitoring.QuizSubmissionCounter.WithLabelValues(string(result.MoodCategory)).Inc()
	s.Stats.InvalidateCache(userID)

	enhanced := enhanceResult(result)
	return &enhanced, nil
}

// History 按创建时间倒序返回用户全部结果（展示结构）
func (s *QuizService) History(userID uint) ([]EnhancedQuizResult, error) {
	results, err := s.Results.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	enhanced := make([]EnhancedQuizResult, len(results))
	for i := range results {
		enhanced[i] = enhanceResult(&results[i])
	}
	return enhanced, nil
}

func (s *QuizService) GetResult(userID uint, id string) (*EnhancedQuizResult, error) {
	result, err := s.Results.FindByID(userID, id)
	if err != nil {
		return nil, err
	}
	enhanced := enhanceResult(result)
	return &enhanced, nil
}

func (s *QuizService) UpdateNotes(userID uint, id string, notes string) error {
	if err := s.Results.UpdateNotes(userID, id, notes); err != nil {
		return err
	}
	s.Stats.InvalidateCache(userID)
	return nil
}

func (s *QuizService) Delete(userID uint, id string) error {
	if err := s.Results.DeleteByID(userID, id); err != nil {
		return err
	}
	s.Stats.InvalidateCache(userID)
	return nil
}

// enhanceResult 把存储行映射成展示结构：解析答案、格式化时间、映射颜色
func enhanceResult(result *model.QuizResult) EnhancedQuizResult {
	return EnhancedQuizResult{
		ID:            result.ID,
		UserID:        result.UserID,
		Score:         result.Score,
		MoodCategory:  result.MoodCategory,
		Notes:         result.Notes,
		CreatedAt:     result.CreatedAt.Format(util.TimeFormat),
		ParsedAnswers: parseAnswers(result.Answers),
		FormattedDate: result.CreatedAt.Format(util.DisplayDateFormat),
		ColorClass:    scoring.ColorClass(result.MoodCategory),
	}
}

// parseAnswers 解析答案JSON，只保留 q 前缀的键，按题目固定顺序排列
// 历史数据里答案值可能是数字或字符串，两种都兼容
func parseAnswers(raw []byte) []ParsedAnswer {
	var answers map[string]interface{}
	if err := json.Unmarshal(raw, &answers); err != nil {
		logger.Log.Warn("failed to parse stored answers", zap.Error(err))
		return []ParsedAnswer{}
	}

	known := make([]ParsedAnswer, 0, len(scoring.QuestionIDs))
	seen := make(map[string]bool, len(scoring.QuestionIDs))
	for _, id := range scoring.QuestionIDs {
		if v, ok := answers[id]; ok {
			known = append(known, ParsedAnswer{
				QuestionID:   id,
				QuestionText: scoring.QuestionText(id),
				Answer:       coerceAnswer(v),
			})
			seen[id] = true
		}
	}

	// 未知但仍是 q 前缀的键排在已知题目之后
	var extras []string
	for key := range answers {
		if strings.HasPrefix(key, "q") && !seen[key] {
			extras = append(extras, key)
		}
	}
	sort.Strings(extras)
	for _, key := range extras {
		known = append(known, ParsedAnswer{
			QuestionID:   key,
			QuestionText: scoring.QuestionText(key),
			Answer:       coerceAnswer(answers[key]),
		})
	}

	return known
}

func coerceAnswer(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		parsed, _ := strconv.Atoi(n)
		return parsed
	default:
		return 0
	}
}
