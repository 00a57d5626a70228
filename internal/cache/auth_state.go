package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/scentlab/scentlab/internal/models"
)

const authStateCacheTTL = 10 * time.Minute

// UserAuthState server-side auth snapshot of a storefront account.
// token_invalid_before is a Unix timestamp in seconds, 0 means unset.
type UserAuthState struct {
	UserID             uint   `json:"user_id"`
	Status             string `json:"status"`
	TokenVersion       uint64 `json:"token_version"`
	TokenInvalidBefore int64  `json:"token_invalid_before"`
	UpdatedAt          int64  `json:"updated_at"`
}

// AdminAuthState server-side auth snapshot of a back-office account
type AdminAuthState struct {
	AdminID            uint   `json:"admin_id"`
	Username           string `json:"username"`
	TokenVersion       uint64 `json:"token_version"`
	TokenInvalidBefore int64  `json:"token_invalid_before"`
	IsSuper            bool   `json:"is_super"`
	UpdatedAt          int64  `json:"updated_at"`
}

func userAuthStateKey(userID uint) string {
	return fmt.Sprintf("auth:user:%d", userID)
}

func adminAuthStateKey(adminID uint) string {
	return fmt.Sprintf("auth:admin:%d", adminID)
}

// BuildUserAuthState builds the auth snapshot from a user model
func BuildUserAuthState(user *models.User) *UserAuthState {
	if user == nil {
		return nil
	}
	state := &UserAuthState{
		UserID:       user.ID,
		Status:       user.Status,
		TokenVersion: user.TokenVersion,
		UpdatedAt:    time.Now().Unix(),
	}
	if user.TokenInvalidBefore != nil {
		state.TokenInvalidBefore = user.TokenInvalidBefore.Unix()
	}
	return state
}

// BuildAdminAuthState builds the auth snapshot from an admin model
func BuildAdminAuthState(admin *models.Admin) *AdminAuthState {
	if admin == nil {
		return nil
	}
	state := &AdminAuthState{
		AdminID:      admin.ID,
		Username:     admin.Username,
		TokenVersion: admin.TokenVersion,
		IsSuper:      admin.IsSuper,
		UpdatedAt:    time.Now().Unix(),
	}
	if admin.TokenInvalidBefore != nil {
		state.TokenInvalidBefore = admin.TokenInvalidBefore.Unix()
	}
	return state
}

// GetUserAuthState reads the user auth snapshot
func GetUserAuthState(ctx context.Context, userID uint) (*UserAuthState, bool, error) {
	if userID == 0 {
		return nil, false, nil
	}
	var state UserAuthState
	hit, err := GetJSON(ctx, userAuthStateKey(userID), &state)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &state, true, nil
}

// SetUserAuthState writes the user auth snapshot
func SetUserAuthState(ctx context.Context, state *UserAuthState) error {
	if state == nil || state.UserID == 0 {
		return nil
	}
	return SetJSON(ctx, userAuthStateKey(state.UserID), state, authStateCacheTTL)
}

// DelUserAuthState removes the user auth snapshot
func DelUserAuthState(ctx context.Context, userID uint) error {
	if userID == 0 {
		return nil
	}
	return Del(ctx, userAuthStateKey(userID))
}

// GetAdminAuthState reads the admin auth snapshot
func GetAdminAuthState(ctx context.Context, adminID uint) (*AdminAuthState, bool, error) {
	if adminID == 0 {
		return nil, false, nil
	}
	var state AdminAuthState
	hit, err := GetJSON(ctx, adminAuthStateKey(adminID), &state)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &state, true, nil
}

// SetAdminAuthState writes the admin auth snapshot
func SetAdminAuthState(ctx context.Context, state *AdminAuthState) error {
	if state == nil || state.AdminID == 0 {
		return nil
	}
	return SetJSON(ctx, adminAuthStateKey(state.AdminID), state, authStateCacheTTL)
}

// DelAdminAuthState removes the admin auth snapshot
func DelAdminAuthState(ctx context.Context, adminID uint) error {
	if adminID == 0 {
		return nil
	}
	return Del(ctx, adminAuthStateKey(adminID))
}
