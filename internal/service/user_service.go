package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"mindwell_backend/internal/model"
	"mindwell_backend/internal/repository"
	"mindwell_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	Users    *repository.UserRepository
	Profiles *repository.ProfileRepository
	Storage  *StorageService
}

func NewUserService(users *repository.UserRepository, profiles *repository.ProfileRepository, storage *StorageService) *UserService {
	return &UserService{
		Users:    users,
		Profiles: profiles,
		Storage:  storage,
	}
}

// ProfileView 返回给前端的用户资料
type ProfileView struct {
	UserID      uint   `json:"userId"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl"`
}

func (s *UserService) GetProfile(userID uint) (*ProfileView, error) {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	view := &ProfileView{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	}

	profile, err := s.Profiles.FindByUserID(userID)
	if err == nil {
		view.DisplayName = profile.DisplayName
		view.AvatarURL = profile.AvatarURL
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	return view, nil
}

type UpdateProfileRequest struct {
	DisplayName string `json:"displayName" binding:"required,max=100"`
}

func (s *UserService) UpdateProfile(userID uint, req UpdateProfileRequest) (*ProfileView, error) {
	profile := &model.UserProfile{
		UserID:      userID,
		DisplayName: req.DisplayName,
	}
	if err := s.Profiles.Upsert(profile); err != nil {
		return nil, err
	}
	return s.GetProfile(userID)
}

// UploadAvatar 校验图片类型后存入存储后端并更新资料
func (s *UserService) UploadAvatar(ctx context.Context, userID uint, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := util.ValidateMimeType(file, []string{util.MimeImage}); err != nil {
		return "", err
	}
	if _, err := file.Seek(0, 0); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	allowed := false
	for _, e := range util.AllowedAvatarExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", fmt.Errorf("unsupported avatar extension: %s", ext)
	}

	filename := fmt.Sprintf("avatars/%d-%d%s", userID, time.Now().Unix(), ext)
	url, err := s.Storage.Provider.Upload(ctx, filename, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	profile := &model.UserProfile{UserID: userID, AvatarURL: url}
	if _, findErr := s.Profiles.FindByUserID(userID); findErr == gorm.ErrRecordNotFound {
		if err := s.Profiles.Upsert(profile); err != nil {
			return "", err
		}
	} else if err := s.Profiles.UpdateAvatar(userID, url); err != nil {
		return "", err
	}

	return url, nil
}
