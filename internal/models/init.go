package models

import (
	"strings"

	"github.com/scentlab/scentlab/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

const fallbackAdminPassword = "admin123"

// InitDefaultAdmin creates the first back-office account when the admins table
// is empty. The bootstrap account is always a super admin.
func InitDefaultAdmin(username, password string) error {
	var count int64
	if err := DB.Model(&Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	username = strings.TrimSpace(username)
	if username == "" {
		username = "admin"
	}
	usedFallback := false
	if password == "" {
		password = fallbackAdminPassword
		usedFallback = true
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := Admin{
		Username:     username,
		PasswordHash: string(hash),
		IsSuper:      true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	if usedFallback {
		logger.Warnw("default_admin_created_with_fallback_password", "username", username)
		logger.Warnw("default_admin_password_change_required", "username", username)
	} else {
		logger.Infow("default_admin_created", "username", username)
	}
	return nil
}
