package util

import "errors"

var (
	ErrUserNotFound      = errors.New("用户不存在")
	ErrEmailRegistered   = errors.New("该邮箱已被注册")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrAccountDisabled   = errors.New("account disabled")
	ErrResultNotFound    = errors.New("quiz result not found")
	ErrProfileNotFound   = errors.New("profile not found")
)
