package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"mindwell_backend/internal/config"
	"mindwell_backend/internal/model"
	"mindwell_backend/internal/repository"
	"mindwell_backend/internal/scoring"
	"mindwell_backend/internal/util"
	"mindwell_backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	logger.InitLogger(&config.Config{})
}

func setupQuizService(t *testing.T) (*QuizService, *StatsService) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.QuizResult{}))

	results := repository.NewQuizResultRepository(db)
	stats := NewStatsService(results, nil)
	return NewQuizService(results, stats), stats
}

func validAnswers() map[string]int {
	return map[string]int{"q1": 4, "q2": 2, "q3": 2, "q4": 4, "q5": 4}
}

func TestQuizService_Submit_PersistsCategoryAtCreation(t *testing.T) {
	svc, _ := setupQuizService(t)

	res, err := svc.Submit(1, SubmitQuizRequest{Answers: validAnswers(), Notes: "slept well"})
	require.NoError(t, err)

	// (4+4+4+4+4)/25*100 = 80
	assert.Equal(t, 80.0, res.Score)
	assert.Equal(t, scoring.Categorize(res.Score), res.MoodCategory)
	assert.Equal(t, scoring.MoodExcellent, res.MoodCategory)
	require.NotNil(t, res.Notes)
	assert.Equal(t, "slept well", *res.Notes)
	assert.NotEmpty(t, res.ID)
	assert.NotEmpty(t, res.FormattedDate)
	assert.Equal(t, "bg-green-100 text-green-800 border-green-200", res.ColorClass)
}

func TestQuizService_Submit_IncompleteAnswers(t *testing.T) {
	svc, _ := setupQuizService(t)

	_, err := svc.Submit(1, SubmitQuizRequest{Answers: map[string]int{"q1": 3}})
	assert.ErrorIs(t, err, scoring.ErrIncompleteAnswers)

	// 校验失败不落库
	history, err := svc.History(1)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestQuizService_Evaluate_DoesNotPersist(t *testing.T) {
	svc, _ := setupQuizService(t)

	eval, err := svc.Evaluate(SubmitQuizRequest{Answers: map[string]int{"q1": 1, "q2": 5, "q3": 5, "q4": 1, "q5": 1}})
	require.NoError(t, err)
	assert.Equal(t, 20.0, eval.Score)
	assert.Equal(t, scoring.MoodConcerning, eval.MoodCategory)
	assert.Equal(t, scoring.RiskHigh, eval.RiskLevel)

	history, err := svc.History(1)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestQuizService_History_ParsedAnswersOrdered(t *testing.T) {
	svc, _ := setupQuizService(t)

	_, err := svc.Submit(7, SubmitQuizRequest{Answers: validAnswers()})
	require.NoError(t, err)

	history, err := svc.History(7)
	require.NoError(t, err)
	require.Len(t, history, 1)

	parsed := history[0].ParsedAnswers
	require.Len(t, parsed, 5)
	for i, id := range scoring.QuestionIDs {
		assert.Equal(t, id, parsed[i].QuestionID)
		assert.Equal(t, scoring.QuestionText(id), parsed[i].QuestionText)
	}
	assert.Equal(t, 4, parsed[0].Answer)
	assert.Equal(t, 2, parsed[1].Answer)
}

func TestQuizService_UpdateNotes_OnlyNotes(t *testing.T) {
	svc, _ := setupQuizService(t)

	created, err := svc.Submit(1, SubmitQuizRequest{Answers: validAnswers()})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateNotes(1, created.ID, "better than last week"))

	got, err := svc.GetResult(1, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Notes)
	assert.Equal(t, "better than last week", *got.Notes)
	assert.Equal(t, created.Score, got.Score)
	assert.Equal(t, created.MoodCategory, got.MoodCategory)
	assert.Equal(t, created.CreatedAt, got.CreatedAt)
}

func TestQuizService_Delete(t *testing.T) {
	svc, _ := setupQuizService(t)

	created, err := svc.Submit(1, SubmitQuizRequest{Answers: validAnswers()})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(1, created.ID))

	_, err = svc.GetResult(1, created.ID)
	assert.ErrorIs(t, err, util.ErrResultNotFound)

	history, err := svc.History(1)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestParseAnswers_MixedValueTypes(t *testing.T) {
	raw := []byte(`{"q1": 3, "q2": "4", "q3": 2, "q4": 5, "q5": 1, "meta": "ignored"}`)
	parsed := parseAnswers(raw)
	require.Len(t, parsed, 5)
	assert.Equal(t, 3, parsed[0].Answer)
	assert.Equal(t, 4, parsed[1].Answer, "string values are coerced")
}

func TestParseAnswers_UnknownQuestionID(t *testing.T) {
	raw := []byte(`{"q1": 3, "q2": 3, "q3": 3, "q4": 3, "q5": 3, "q9": 2}`)
	parsed := parseAnswers(raw)
	require.Len(t, parsed, 6)
	last := parsed[5]
	assert.Equal(t, "q9", last.QuestionID)
	assert.Equal(t, "Unknown question", last.QuestionText)
}

func TestEnhanceResult_FormattedDate(t *testing.T) {
	notes := "n"
	r := &model.QuizResult{
		UserID:       1,
		Score:        65,
		Answers:      []byte(`{"q1":3,"q2":3,"q3":3,"q4":3,"q5":3}`),
		MoodCategory: scoring.MoodGood,
		Notes:        &notes,
	}
	r.ID = "abc"
	r.CreatedAt = time.Date(2026, time.March, 4, 15, 30, 0, 0, time.UTC)

	enhanced := enhanceResult(r)
	assert.Equal(t, "Wed, Mar 4, 2026, 3:30 PM", enhanced.FormattedDate)
	assert.Equal(t, "bg-blue-100 text-blue-800 border-blue-200", enhanced.ColorClass)
}
