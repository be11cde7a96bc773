package repository

import (
	"mindwell_backend/internal/model"
	"mindwell_backend/internal/util"

	"gorm.io/gorm"
)

// QuizResultRepository quiz_results 表的数据访问层
// 所有按 ID 的读写都带 user_id 条件，行归属在查询层面强制执行，
// 他人的行和不存在的行对调用方不可区分
type QuizResultRepository struct {
	DB *gorm.DB
}

func NewQuizResultRepository(db *gorm.DB) *QuizResultRepository {
	return &QuizResultRepository{DB: db}
}

func (r *QuizResultRepository) Create(result *model.QuizResult) error {
	return r.DB.Create(result).Error
}

// ListByUser 按创建时间倒序返回用户全部结果，无记录时返回空切片
func (r *QuizResultRepository) ListByUser(userID uint) ([]model.QuizResult, error) {
	var results []model.QuizResult
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&results).Error
	return results, err
}

func (r *QuizResultRepository) FindByID(userID uint, id string) (*model.QuizResult, error) {
	var result model.QuizResult
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&result).Error
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrResultNotFound
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateNotes notes 是唯一允许修改的字段
func (r *QuizResultRepository) UpdateNotes(userID uint, id string, notes string) error {
	res := r.DB.Model(&model.QuizResult{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("notes", notes)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return util.ErrResultNotFound
	}
	return nil
}

func (r *QuizResultRepository) DeleteByID(userID uint, id string) error {
	res := r.DB.Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.QuizResult{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return util.ErrResultNotFound
	}
	return nil
}

// TableExists 运维探针用，主流程不依赖
func (r *QuizResultRepository) TableExists() bool {
	return r.DB.Migrator().HasTable(&model.QuizResult{})
}
