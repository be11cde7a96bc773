package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mindwell_backend/internal/repository"
	"mindwell_backend/internal/scoring"
	"mindwell_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	statsCacheKeyPrefix = "mindwell:quiz_stats:"
	statsCacheTTL       = 10 * time.Minute

	// trendThreshold 最近两次分差超过该值才算趋势变化
	trendThreshold = 5.0
)

type Trend string

const (
	TrendImproved Trend = "improved"
	TrendWorsened Trend = "worsened"
	TrendNeutral  Trend = "neutral"
)

// CategoryCounts 四个分类各自的计数，固定字段，缺的分类自然为零
type CategoryCounts struct {
	Excellent  int `json:"excellent"`
	Good       int `json:"good"`
	Moderate   int `json:"moderate"`
	Concerning int `json:"concerning"`
}

type QuizStats struct {
	Count        int                 `json:"count"`
	AvgScore     float64             `json:"avgScore"`
	Categories   CategoryCounts      `json:"categories"`
	RecentTrend  Trend               `json:"recentTrend"`
	LatestResult *EnhancedQuizResult `json:"latestResult"`
}

// StatsService 聚合统计，只读，结果按用户在 Redis 缓存
type StatsService struct {
	Results *repository.QuizResultRepository
	Redis   *redis.Client
}

func NewStatsService(results *repository.QuizResultRepository, rdb *redis.Client) *StatsService {
	return &StatsService{
		Results: results,
		Redis:   rdb,
	}
}

// ComputeStats 读出用户全部结果并计算统计，写路径负责使缓存失效
func (s *StatsService) ComputeStats(userID uint) (*QuizStats, error) {
	if cached := s.readCache(userID); cached != nil {
		return cached, nil
	}

	results, err := s.Results.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	stats := &QuizStats{
		RecentTrend: TrendNeutral,
	}

	if len(results) == 0 {
		s.writeCache(userID, stats)
		return stats, nil
	}

	stats.Count = len(results)

	total := 0.0
	for _, r := range results {
		total += r.Score

		switch r.MoodCategory {
		case scoring.MoodExcellent:
			stats.Categories.Excellent++
		case scoring.MoodGood:
			stats.Categories.Good++
		case scoring.MoodModerate:
			stats.Categories.Moderate++
		case scoring.MoodConcerning:
			stats.Categories.Concerning++
		}
	}
	stats.AvgScore = total / float64(stats.Count)

	// 结果按创建时间倒序，[0] 为最新
	if stats.Count >= 2 {
		latest := results[0].Score
		previous := results[1].Score
		if latest > previous+trendThreshold {
			stats.RecentTrend = TrendImproved
		} else if latest < previous-trendThreshold {
			stats.RecentTrend = TrendWorsened
		}
	}

	latest := enhanceResult(&results[0])
	stats.LatestResult = &latest

	s.writeCache(userID, stats)
	return stats, nil
}

// InvalidateCache 写路径（提交/改备注/删除）之后调用
func (s *StatsService) InvalidateCache(userID uint) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(context.Background(), statsCacheKey(userID)).Err(); err != nil {
		logger.Log.Warn("failed to invalidate stats cache",
			zap.Uint("userID", userID),
			zap.Error(err))
	}
}

func (s *StatsService) readCache(userID uint) *QuizStats {
	if s.Redis == nil {
		return nil
	}

	val, err := s.Redis.Get(context.Background(), statsCacheKey(userID)).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		logger.Log.Warn("stats cache read failed", zap.Error(err))
		return nil
	}

	var stats QuizStats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		return nil
	}
	return &stats
}

func (s *StatsService) writeCache(userID uint, stats *QuizStats) {
	if s.Redis == nil {
		return
	}

	val, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.Redis.Set(context.Background(), statsCacheKey(userID), val, statsCacheTTL).Err(); err != nil {
		logger.Log.Warn("stats cache write failed", zap.Error(err))
	}
}

func statsCacheKey(userID uint) string {
	return fmt.Sprintf("%s%d", statsCacheKeyPrefix, userID)
}
