package service

import "errors"

// sentinel errors mapped to response codes by the handler layer
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrProductNotAvailable  = errors.New("product not available")
	ErrColorNotFound        = errors.New("color not found")
	ErrSizeNotFound         = errors.New("size not found")
	ErrScentNotFound        = errors.New("scent not found")
	ErrInvalidQuantity      = errors.New("invalid quantity")
	ErrInvalidScentCount    = errors.New("invalid scent count")
	ErrInvalidLogoSize      = errors.New("invalid logo size")
	ErrDesignIncomplete     = errors.New("design incomplete")
	ErrCartEmpty            = errors.New("cart empty")
	ErrCartItemNotFound     = errors.New("cart item not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderNotCancelable   = errors.New("order not cancelable")
	ErrInvalidOrderStatus   = errors.New("invalid order status")
	ErrAddressNotFound      = errors.New("address not found")
	ErrAddressInvalid       = errors.New("address invalid")
	ErrPostNotFound         = errors.New("post not found")
	ErrLoginFailed          = errors.New("login failed")
	ErrEmailExists          = errors.New("email exists")
	ErrUsernameExists       = errors.New("username exists")
	ErrUserDisabled         = errors.New("user disabled")
	ErrOldPasswordIncorrect = errors.New("old password incorrect")
	ErrWeakPassword         = errors.New("weak password")
	ErrAdminNotFound        = errors.New("admin not found")
	ErrCaptchaInvalid       = errors.New("captcha invalid")
	ErrEmailDisabled        = errors.New("email disabled")
	ErrEmailNotConfigured   = errors.New("email not configured")
	ErrUploadTooLarge       = errors.New("upload too large")
	ErrUploadTypeInvalid    = errors.New("upload type invalid")
	ErrSlugExists           = errors.New("slug exists")
	ErrCategoryInUse        = errors.New("category in use")
)
