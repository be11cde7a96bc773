package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitWithScore(t *testing.T, svc *QuizService, userID uint, answers map[string]int) *EnhancedQuizResult {
	t.Helper()
	res, err := svc.Submit(userID, SubmitQuizRequest{Answers: answers})
	require.NoError(t, err)
	// created_at 需要可区分的先后顺序
	time.Sleep(10 * time.Millisecond)
	return res
}

func TestStatsService_EmptyUser(t *testing.T) {
	_, stats := setupQuizService(t)

	got, err := stats.ComputeStats(99)
	require.NoError(t, err)

	assert.Equal(t, 0, got.Count)
	assert.Equal(t, 0.0, got.AvgScore)
	assert.Equal(t, TrendNeutral, got.RecentTrend)
	assert.Nil(t, got.LatestResult)
	assert.Equal(t, CategoryCounts{}, got.Categories)
}

func TestStatsService_CountAvgAndCategories(t *testing.T) {
	svc, stats := setupQuizService(t)

	// 分数 100 (excellent) 和 20 (concerning)
	submitWithScore(t, svc, 1, map[string]int{"q1": 5, "q2": 1, "q3": 1, "q4": 5, "q5": 5})
	submitWithScore(t, svc, 1, map[string]int{"q1": 1, "q2": 5, "q3": 5, "q4": 1, "q5": 1})

	got, err := stats.ComputeStats(1)
	require.NoError(t, err)

	assert.Equal(t, 2, got.Count)
	assert.Equal(t, 60.0, got.AvgScore)
	assert.Equal(t, 1, got.Categories.Excellent)
	assert.Equal(t, 1, got.Categories.Concerning)
	assert.Equal(t, 0, got.Categories.Good)
	assert.Equal(t, 0, got.Categories.Moderate)

	require.NotNil(t, got.LatestResult)
	assert.Equal(t, 20.0, got.LatestResult.Score, "latest is the most recent submission")
}

func TestStatsService_Trend(t *testing.T) {
	tests := []struct {
		name  string
		older map[string]int
		newer map[string]int
		want  Trend
	}{
		{
			// 40 -> 60，分差 20 > 5
			name:  "improved",
			older: map[string]int{"q1": 2, "q2": 4, "q3": 4, "q4": 2, "q5": 2},
			newer: map[string]int{"q1": 3, "q2": 3, "q3": 3, "q4": 3, "q5": 3},
			want:  TrendImproved,
		},
		{
			// 60 -> 40
			name:  "worsened",
			older: map[string]int{"q1": 3, "q2": 3, "q3": 3, "q4": 3, "q5": 3},
			newer: map[string]int{"q1": 2, "q2": 4, "q3": 4, "q4": 2, "q5": 2},
			want:  TrendWorsened,
		},
		{
			// 60 -> 64，分差 4，不超过阈值
			name:  "neutral small delta",
			older: map[string]int{"q1": 3, "q2": 3, "q3": 3, "q4": 3, "q5": 3},
			newer: map[string]int{"q1": 4, "q2": 3, "q3": 3, "q4": 3, "q5": 3},
			want:  TrendNeutral,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, stats := setupQuizService(t)

			submitWithScore(t, svc, 1, tc.older)
			submitWithScore(t, svc, 1, tc.newer)

			got, err := stats.ComputeStats(1)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.RecentTrend)
		})
	}
}

func TestStatsService_SingleResultIsNeutral(t *testing.T) {
	svc, stats := setupQuizService(t)

	submitWithScore(t, svc, 1, map[string]int{"q1": 3, "q2": 3, "q3": 3, "q4": 3, "q5": 3})

	got, err := stats.ComputeStats(1)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Count)
	assert.Equal(t, TrendNeutral, got.RecentTrend)
}
