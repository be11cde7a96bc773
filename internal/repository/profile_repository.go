package repository

import (
	"mindwell_backend/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

func (r *ProfileRepository) FindByUserID(userID uint) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := r.DB.Where("user_id = ?", userID).First(&profile).Error
	return &profile, err
}

// Upsert 按 user_id 创建或更新资料，user_profiles 和 users 一对一
func (r *ProfileRepository) Upsert(profile *model.UserProfile) error {
	var existing model.UserProfile
	err := r.DB.Where("user_id = ?", profile.UserID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.DB.Create(profile).Error
	}
	if err != nil {
		return err
	}

	existing.DisplayName = profile.DisplayName
	if profile.AvatarURL != "" {
		existing.AvatarURL = profile.AvatarURL
	}
	if err := r.DB.Save(&existing).Error; err != nil {
		return err
	}
	*profile = existing
	return nil
}

func (r *ProfileRepository) UpdateAvatar(userID uint, avatarURL string) error {
	return r.DB.Model(&model.UserProfile{}).
		Where("user_id = ?", userID).
		Update("avatar_url", avatarURL).
		Error
}
