package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// supported locales
const (
	LocaleVI = "vi-VN"
	LocaleEN = "en-US"
)

// DefaultLocale storefront default language
const DefaultLocale = LocaleVI

var messages = map[string]map[string]string{
	LocaleVI: {
		"error.internal_error":         "Có lỗi xảy ra, vui lòng thử lại sau",
		"error.invalid_request":        "Yêu cầu không hợp lệ",
		"error.not_found":              "Không tìm thấy dữ liệu",
		"error.unauthorized":           "Vui lòng đăng nhập",
		"error.forbidden":              "Bạn không có quyền thực hiện thao tác này",
		"error.jwt_secret_missing":     "Máy chủ chưa cấu hình khóa đăng nhập",
		"error.token_invalid":          "Phiên đăng nhập không hợp lệ",
		"error.token_revoked":          "Phiên đăng nhập đã hết hiệu lực, vui lòng đăng nhập lại",
		"error.auth_header_missing":    "Thiếu thông tin xác thực",
		"error.auth_header_invalid":    "Thông tin xác thực không hợp lệ",
		"error.user_disabled":          "Tài khoản đã bị khóa",
		"error.login_failed":           "Tên đăng nhập hoặc mật khẩu không đúng",
		"error.email_exists":           "Email đã được đăng ký",
		"error.username_exists":        "Tên đăng nhập đã tồn tại",
		"error.old_password_incorrect": "Mật khẩu cũ không đúng",

		"error.password_min_length":      "Mật khẩu phải có ít nhất %d ký tự",
		"error.password_require_upper":   "Mật khẩu cần có chữ in hoa",
		"error.password_require_lower":   "Mật khẩu cần có chữ thường",
		"error.password_require_number":  "Mật khẩu cần có chữ số",
		"error.password_require_special": "Mật khẩu cần có ký tự đặc biệt",

		"error.captcha_required":       "Vui lòng nhập mã xác nhận",
		"error.captcha_invalid":        "Mã xác nhận không đúng",
		"error.rate_limit_unavailable": "Hệ thống đang bận, vui lòng thử lại sau",
		"error.rate_limit_wait":        "Thao tác quá nhanh, vui lòng thử lại sau %d giây",
		"error.category_not_found":     "Không tìm thấy danh mục",
		"error.product_not_found":      "Không tìm thấy sản phẩm",
		"error.product_unavailable":    "Sản phẩm hiện không bán",
		"error.color_not_found":        "Màu sắc không hợp lệ",
		"error.size_not_found":         "Kích thước không hợp lệ",
		"error.scent_not_found":        "Mùi hương không hợp lệ",
		"error.invalid_quantity":       "Số lượng không hợp lệ",
		"error.invalid_scent_count":    "Vui lòng chọn từ 1 đến 3 mùi hương",
		"error.invalid_logo_size":      "Kích thước logo không hợp lệ",
		"error.design_incomplete":      "Thiết kế chưa hoàn chỉnh, vui lòng kiểm tra lại",
		"error.cart_empty":             "Giỏ hàng đang trống",
		"error.cart_item_not_found":    "Sản phẩm không có trong giỏ hàng",
		"error.order_not_found":        "Không tìm thấy đơn hàng",
		"error.order_not_cancelable":   "Đơn hàng không thể hủy ở trạng thái hiện tại",
		"error.invalid_order_status":   "Trạng thái đơn hàng không hợp lệ",
		"error.address_not_found":      "Không tìm thấy địa chỉ",
		"error.address_invalid":        "Địa chỉ giao hàng chưa đầy đủ, vui lòng nhập số nhà/đường và phường/xã",
		"error.post_not_found":         "Không tìm thấy bài viết",
		"error.upload_too_large":       "Tệp vượt quá dung lượng cho phép",
		"error.upload_type_invalid":    "Định dạng tệp không được hỗ trợ",
		"error.admin_not_found":        "Không tìm thấy quản trị viên",
		"error.role_not_found":         "Không tìm thấy vai trò",
		"error.slug_exists":            "Đường dẫn (slug) đã được sử dụng",
		"error.category_in_use":        "Danh mục vẫn còn sản phẩm, không thể xóa",

		"error.user_id_invalid":          "Thông tin đăng nhập không hợp lệ",
		"error.user_id_type_invalid":     "Không đọc được thông tin đăng nhập",
		"error.admin_id_invalid":         "Thông tin quản trị không hợp lệ",
		"error.admin_id_type_invalid":    "Không đọc được thông tin quản trị",
		"error.fetch_failed":             "Không tải được dữ liệu, vui lòng thử lại",
		"error.save_failed":              "Không lưu được dữ liệu, vui lòng thử lại",
		"error.delete_failed":            "Không xóa được dữ liệu, vui lòng thử lại",
		"error.register_failed":          "Đăng ký thất bại, vui lòng thử lại",
		"error.password_weak":            "Mật khẩu chưa đủ mạnh",
		"error.order_create_failed":      "Không tạo được đơn hàng, vui lòng thử lại",
		"error.order_cancel_failed":      "Không hủy được đơn hàng, vui lòng thử lại",
		"error.shipping_estimate_failed": "Không tính được phí vận chuyển",
		"error.upload_failed":            "Tải tệp lên thất bại, vui lòng thử lại",
		"error.captcha_unavailable":      "Mã xác nhận chưa được bật",
		"error.captcha_generate_failed":  "Không tạo được mã xác nhận",

		"label.logo_size_s": "Nhỏ",
		"label.logo_size_m": "Vừa",
		"label.logo_size_l": "Lớn",

		"email.order_confirmation.subject": "Scentlab - Xác nhận đơn hàng %s",
		"email.order_confirmation.body":    "Cảm ơn bạn đã đặt hàng tại Scentlab. Mã đơn hàng: %s. Tổng thanh toán: %s₫. Chúng tôi sẽ liên hệ với bạn sớm nhất.",
	},
	LocaleEN: {
		"error.internal_error":         "Something went wrong, please try again later",
		"error.invalid_request":        "Invalid request",
		"error.not_found":              "Not found",
		"error.unauthorized":           "Please sign in",
		"error.forbidden":              "You are not allowed to perform this action",
		"error.jwt_secret_missing":     "Server login secret is not configured",
		"error.token_invalid":          "Invalid session",
		"error.token_revoked":          "Session expired, please sign in again",
		"error.auth_header_missing":    "Missing authorization header",
		"error.auth_header_invalid":    "Invalid authorization header",
		"error.user_disabled":          "Account is disabled",
		"error.login_failed":           "Incorrect username or password",
		"error.email_exists":           "Email is already registered",
		"error.username_exists":        "Username already exists",
		"error.old_password_incorrect": "Old password is incorrect",

		"error.password_min_length":      "Password must be at least %d characters",
		"error.password_require_upper":   "Password must contain an uppercase letter",
		"error.password_require_lower":   "Password must contain a lowercase letter",
		"error.password_require_number":  "Password must contain a digit",
		"error.password_require_special": "Password must contain a special character",

		"error.captcha_required":       "Captcha is required",
		"error.captcha_invalid":        "Incorrect captcha",
		"error.rate_limit_unavailable": "System is busy, please try again later",
		"error.rate_limit_wait":        "Too many attempts, please retry in %d seconds",
		"error.category_not_found":     "Category not found",
		"error.product_not_found":      "Product not found",
		"error.product_unavailable":    "Product is not available",
		"error.color_not_found":        "Invalid color",
		"error.size_not_found":         "Invalid size",
		"error.scent_not_found":        "Invalid scent",
		"error.invalid_quantity":       "Invalid quantity",
		"error.invalid_scent_count":    "Please pick between 1 and 3 scents",
		"error.invalid_logo_size":      "Invalid logo size",
		"error.design_incomplete":      "Design is incomplete, please review it",
		"error.cart_empty":             "Cart is empty",
		"error.cart_item_not_found":    "Item is not in the cart",
		"error.order_not_found":        "Order not found",
		"error.order_not_cancelable":   "Order cannot be canceled in its current status",
		"error.invalid_order_status":   "Invalid order status",
		"error.address_not_found":      "Address not found",
		"error.address_invalid":        "Shipping address is incomplete, please fill in the street and ward",
		"error.post_not_found":         "Post not found",
		"error.upload_too_large":       "File exceeds the allowed size",
		"error.upload_type_invalid":    "File type is not supported",
		"error.admin_not_found":        "Admin not found",
		"error.role_not_found":         "Role not found",
		"error.slug_exists":            "Slug is already in use",
		"error.category_in_use":        "Category still has products and cannot be deleted",

		"error.user_id_invalid":          "Invalid user identity",
		"error.user_id_type_invalid":     "Cannot read user identity",
		"error.admin_id_invalid":         "Invalid admin identity",
		"error.admin_id_type_invalid":    "Cannot read admin identity",
		"error.fetch_failed":             "Failed to load data, please try again",
		"error.save_failed":              "Failed to save, please try again",
		"error.delete_failed":            "Failed to delete, please try again",
		"error.register_failed":          "Registration failed, please try again",
		"error.password_weak":            "Password is too weak",
		"error.order_create_failed":      "Failed to place the order, please try again",
		"error.order_cancel_failed":      "Failed to cancel the order, please try again",
		"error.shipping_estimate_failed": "Failed to estimate shipping",
		"error.upload_failed":            "Upload failed, please try again",
		"error.captcha_unavailable":      "Captcha is not enabled",
		"error.captcha_generate_failed":  "Failed to generate captcha",

		"label.logo_size_s": "Small",
		"label.logo_size_m": "Medium",
		"label.logo_size_l": "Large",

		"email.order_confirmation.subject": "Scentlab - Order confirmation %s",
		"email.order_confirmation.body":    "Thank you for shopping at Scentlab. Order number: %s. Total amount: %s₫. We will reach out shortly.",
	},
}

// Normalize maps an arbitrary locale tag to a supported locale
func Normalize(locale string) string {
	tag := strings.ToLower(strings.TrimSpace(locale))
	switch {
	case tag == "":
		return DefaultLocale
	case strings.HasPrefix(tag, "vi"):
		return LocaleVI
	case strings.HasPrefix(tag, "en"):
		return LocaleEN
	default:
		return DefaultLocale
	}
}

// T returns the translated message for key, falling back to the default locale
func T(locale, key string) string {
	normalized := Normalize(locale)
	if msg, ok := messages[normalized][key]; ok {
		return msg
	}
	if msg, ok := messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf formats a translated message with arguments
func Sprintf(locale, key string, args ...interface{}) string {
	format := T(locale, key)
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// ResolveLocale picks the request locale from query, header, or default
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if q := c.Query("locale"); q != "" {
		return Normalize(q)
	}
	if header := c.GetHeader("Accept-Language"); header != "" {
		first := strings.SplitN(header, ",", 2)[0]
		return Normalize(strings.SplitN(first, ";", 2)[0])
	}
	return DefaultLocale
}
