package repository

import (
	"mindwell_backend/internal/model"
	"mindwell_backend/internal/scoring"

	"gorm.io/gorm"
)

type WellnessResourceRepository struct {
	DB *gorm.DB
}

func NewWellnessResourceRepository(db *gorm.DB) *WellnessResourceRepository {
	return &WellnessResourceRepository{DB: db}
}

func (r *WellnessResourceRepository) ListByRisk(level scoring.RiskLevel) ([]model.WellnessResource, error) {
	var resources []model.WellnessResource
	err := r.DB.Where("risk_level = ? AND enabled = ?", level, true).
		Order("kind asc, `order` asc").
		Find(&resources).Error
	return resources, err
}

type SleepSoundRepository struct {
	DB *gorm.DB
}

func NewSleepSoundRepository(db *gorm.DB) *SleepSoundRepository {
	return &SleepSoundRepository{DB: db}
}

func (r *SleepSoundRepository) ListEnabled() ([]model.SleepSound, error) {
	var sounds []model.SleepSound
	err := r.DB.Where("enabled = ?", true).
		Order("`order` asc").
		Find(&sounds).Error
	return sounds, err
}
