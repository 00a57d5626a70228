package constants

// order status
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipping  = "shipping"
	OrderStatusDelivered = "delivered"
	OrderStatusCompleted = "completed"
	OrderStatusCanceled  = "canceled"
)

// shipping method
const (
	ShippingMethodStandard = "standard"
	ShippingMethodExpress  = "express"
)

// payment method (settled by an external collaborator; stored as-is)
const (
	PaymentMethodCOD          = "cod"
	PaymentMethodBankTransfer = "bank_transfer"
)

// logo size for designed products
const (
	LogoSizeSmall  = "S"
	LogoSizeMedium = "M"
	LogoSizeLarge  = "L"
)

// post type
const (
	PostTypeBlog   = "blog"
	PostTypeNotice = "notice"
)

// user status
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// asynq task names
const (
	TaskOrderConfirmationEmail = "order:confirmation_email"
	TaskOrderTimeoutCancel     = "order:timeout_cancel"
)

// queue names
const (
	QueueDefault = "default"
)

// captcha providers
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)

// captcha scenes
const (
	CaptchaSceneLogin            = "login"
	CaptchaSceneRegister         = "register"
	CaptchaSceneGuestCreateOrder = "guest_create_order"
)

// setting keys
const (
	SettingKeyInnerCityKeywords = "shipping.inner_city_keywords"
	SettingKeySupportContact    = "site.support_contact"
)
