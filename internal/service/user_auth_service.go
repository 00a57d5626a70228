package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/scentlab/scentlab/internal/cache"
	"github.com/scentlab/scentlab/internal/config"
	"github.com/scentlab/scentlab/internal/constants"
	"github.com/scentlab/scentlab/internal/models"
	"github.com/scentlab/scentlab/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// RegisterInput storefront registration input
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
	Phone       string
}

// UserJWTClaims storefront JWT claims
type UserJWTClaims struct {
	UserID       uint   `json:"user_id"`
	Email        string `json:"email"`
	TokenVersion uint64 `json:"token_version"`
	jwt.RegisteredClaims
}

// UserAuthService storefront authentication service
type UserAuthService struct {
	cfg      *config.Config
	userRepo repository.UserRepository
}

// NewUserAuthService creates the storefront authentication service
func NewUserAuthService(cfg *config.Config, userRepo repository.UserRepository) *UserAuthService {
	return &UserAuthService{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

// Register creates a storefront account
func (s *UserAuthService) Register(input RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidInput
	}
	if err := validatePassword(s.cfg.Security.PasswordPolicy, input.Password); err != nil {
		return nil, err
	}

	count, err := s.userRepo.CountByEmail(email, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  strings.TrimSpace(input.DisplayName),
		Phone:        strings.TrimSpace(input.Phone),
		Status:       constants.UserStatusActive,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a storefront account
func (s *UserAuthService) Login(email, password string, rememberMe bool) (*models.User, string, time.Time, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if user == nil {
		return nil, "", time.Time{}, ErrLoginFailed
	}
	if user.Status != constants.UserStatusActive {
		return nil, "", time.Time{}, ErrUserDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", time.Time{}, ErrLoginFailed
	}

	token, expiresAt, err := s.GenerateUserJWT(user, rememberMe)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(user); err != nil {
		return nil, "", time.Time{}, err
	}
	_ = cache.SetUserAuthState(context.Background(), cache.BuildUserAuthState(user))

	return user, token, expiresAt, nil
}

// GenerateUserJWT issues a storefront token
func (s *UserAuthService) GenerateUserJWT(user *models.User, rememberMe bool) (string, time.Time, error) {
	expireHours := s.cfg.UserJWT.ExpireHours
	if rememberMe && s.cfg.UserJWT.RememberMeExpireHours > 0 {
		expireHours = s.cfg.UserJWT.RememberMeExpireHours
	}
	expiresAt := time.Now().Add(time.Duration(expireHours) * time.Hour)

	claims := UserJWTClaims{
		UserID:       user.ID,
		Email:        user.Email,
		TokenVersion: user.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.UserJWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ParseUserJWT parses a storefront token
func (s *UserAuthService) ParseUserJWT(tokenString string) (*UserJWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &UserJWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.UserJWT.SecretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*UserJWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// GetProfile fetches the account of a user
func (s *UserAuthService) GetProfile(userID uint) (*models.User, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrLoginFailed
	}
	return user, nil
}

// UpdateProfile updates display name, phone, and locale
func (s *UserAuthService) UpdateProfile(userID uint, displayName, phone, locale string) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"display_name": strings.TrimSpace(displayName),
		"phone":        strings.TrimSpace(phone),
		"updated_at":   time.Now(),
	}
	if trimmed := strings.TrimSpace(locale); trimmed != "" {
		updates["locale"] = trimmed
	}
	if err := s.userRepo.UpdateFields(user.ID, updates); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(user.ID)
}

// ChangePassword rotates a storefront password and revokes issued tokens
func (s *UserAuthService) ChangePassword(userID uint, oldPassword, newPassword string) error {
	user, err := s.GetProfile(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrOldPasswordIncorrect
	}
	if err := validatePassword(s.cfg.Security.PasswordPolicy, newPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()
	user.PasswordHash = string(hash)
	user.TokenVersion++
	user.TokenInvalidBefore = &now
	if err := s.userRepo.Update(user); err != nil {
		return err
	}
	_ = cache.SetUserAuthState(context.Background(), cache.BuildUserAuthState(user))
	return nil
}

// SetStatus enables or disables a storefront account from the back office
func (s *UserAuthService) SetStatus(userID uint, status string) (*models.User, error) {
	if status != constants.UserStatusActive && status != constants.UserStatusDisabled {
		return nil, ErrInvalidInput
	}
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user.Status = status
	if status == constants.UserStatusDisabled {
		user.TokenVersion++
		user.TokenInvalidBefore = &now
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	_ = cache.SetUserAuthState(context.Background(), cache.BuildUserAuthState(user))
	return user, nil
}
