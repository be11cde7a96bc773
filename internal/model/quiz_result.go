package model

import (
	"mindwell_backend/internal/scoring"

	"gorm.io/datatypes"
)

// QuizResult 一次完整测评的持久化结果
// MoodCategory 在创建时由分数计算并固化，读取时不重新推导，
// 后续阈值调整不影响历史行的标签
type QuizResult struct {
	UUIDBase
	UserID       uint                 `gorm:"index;not null" json:"userId"`
	Score        float64              `gorm:"not null" json:"score"`
	Answers      datatypes.JSON       `gorm:"not null" json:"answers"`
	MoodCategory scoring.MoodCategory `gorm:"type:varchar(20);not null" json:"moodCategory"`
	Notes        *string              `gorm:"type:text" json:"notes"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}
