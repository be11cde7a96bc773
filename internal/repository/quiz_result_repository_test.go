package repository

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"mindwell_backend/internal/model"
	"mindwell_backend/internal/scoring"
	"mindwell_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.UserProfile{}, &model.QuizResult{}, &model.WellnessResource{}, &model.SleepSound{}))
	return db
}

func mustAnswers(t *testing.T, m map[string]int) []byte {
	t.Helper()
	b, err := json.Marshal(m)
	require.NoError(t, err)
	return b
}

func newResult(t *testing.T, userID uint, score float64) *model.QuizResult {
	t.Helper()
	return &model.QuizResult{
		UserID:       userID,
		Score:        score,
		Answers:      mustAnswers(t, map[string]int{"q1": 4, "q2": 2, "q3": 2, "q4": 4, "q5": 4}),
		MoodCategory: scoring.Categorize(score),
	}
}

func TestQuizResultRepository_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQuizResultRepository(db)

	first := newResult(t, 1, 50)
	require.NoError(t, repo.Create(first))
	assert.NotEmpty(t, first.ID, "BeforeCreate should assign a uuid")

	// 保证两条记录的 created_at 可排序
	time.Sleep(10 * time.Millisecond)
	second := newResult(t, 1, 60)
	require.NoError(t, repo.Create(second))

	results, err := repo.ListByUser(1)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, second.ID, results[0].ID, "newest first")
	assert.Equal(t, first.ID, results[1].ID)
}

func TestQuizResultRepository_ListByUser_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQuizResultRepository(db)

	results, err := repo.ListByUser(42)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestQuizResultRepository_OwnershipScoping(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQuizResultRepository(db)

	mine := newResult(t, 1, 80)
	require.NoError(t, repo.Create(mine))

	// 其他用户按 ID 读不到这行
	_, err := repo.FindByID(2, mine.ID)
	assert.ErrorIs(t, err, util.ErrResultNotFound)

	// 更新和删除同样被归属约束拦下
	assert.ErrorIs(t, repo.UpdateNotes(2, mine.ID, "hijack"), util.ErrResultNotFound)
	assert.ErrorIs(t, repo.DeleteByID(2, mine.ID), util.ErrResultNotFound)

	got, err := repo.FindByID(1, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, mine.ID, got.ID)
}

func TestQuizResultRepository_UpdateNotes_OnlyNotesChange(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQuizResultRepository(db)

	r := newResult(t, 1, 72)
	require.NoError(t, repo.Create(r))

	before, err := repo.FindByID(1, r.ID)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateNotes(1, r.ID, "feeling better this week"))

	after, err := repo.FindByID(1, r.ID)
	require.NoError(t, err)

	require.NotNil(t, after.Notes)
	assert.Equal(t, "feeling better this week", *after.Notes)
	assert.Equal(t, before.Score, after.Score)
	assert.Equal(t, before.MoodCategory, after.MoodCategory)
	assert.JSONEq(t, string(before.Answers), string(after.Answers))
	assert.True(t, before.CreatedAt.Equal(after.CreatedAt))
}

func TestQuizResultRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQuizResultRepository(db)

	r := newResult(t, 1, 55)
	require.NoError(t, repo.Create(r))

	require.NoError(t, repo.DeleteByID(1, r.ID))

	_, err := repo.FindByID(1, r.ID)
	assert.ErrorIs(t, err, util.ErrResultNotFound)

	results, err := repo.ListByUser(1)
	require.NoError(t, err)
	assert.Empty(t, results)

	// 再删一次应报 not found
	assert.ErrorIs(t, repo.DeleteByID(1, r.ID), util.ErrResultNotFound)
}

func TestQuizResultRepository_TableExists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQuizResultRepository(db)
	assert.True(t, repo.TableExists())
}
