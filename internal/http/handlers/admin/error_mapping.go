package admin

import (
	"errors"

	"github.com/scentlab/scentlab/internal/http/response"
	"github.com/scentlab/scentlab/internal/i18n"
	"github.com/scentlab/scentlab/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError maps a service sentinel to a business code and message key.
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

func respondWeakPasswordError(c *gin.Context, err error) {
	var policyErr interface {
		Key() string
		Args() []interface{}
	}
	if errors.As(err, &policyErr) {
		locale := i18n.ResolveLocale(c)
		respondErrorWithMsg(c, response.CodeBadRequest, i18n.Sprintf(locale, policyErr.Key(), policyErr.Args()...), nil)
		return
	}
	respondError(c, response.CodeBadRequest, "error.password_weak", nil)
}

var productErrorRules = []mappedHandlerError{
	{service.ErrProductNotFound, response.CodeNotFound, "error.product_not_found"},
	{service.ErrCategoryNotFound, response.CodeBadRequest, "error.category_not_found"},
	{service.ErrColorNotFound, response.CodeBadRequest, "error.color_not_found"},
	{service.ErrSizeNotFound, response.CodeBadRequest, "error.size_not_found"},
	{service.ErrSlugExists, response.CodeBadRequest, "error.slug_exists"},
	{service.ErrInvalidInput, response.CodeBadRequest, "error.invalid_request"},
}

var categoryErrorRules = []mappedHandlerError{
	{service.ErrCategoryNotFound, response.CodeNotFound, "error.category_not_found"},
	{service.ErrCategoryInUse, response.CodeBadRequest, "error.category_in_use"},
	{service.ErrSlugExists, response.CodeBadRequest, "error.slug_exists"},
	{service.ErrInvalidInput, response.CodeBadRequest, "error.invalid_request"},
}

var catalogErrorRules = []mappedHandlerError{
	{service.ErrColorNotFound, response.CodeNotFound, "error.color_not_found"},
	{service.ErrSizeNotFound, response.CodeNotFound, "error.size_not_found"},
	{service.ErrScentNotFound, response.CodeNotFound, "error.scent_not_found"},
	{service.ErrInvalidInput, response.CodeBadRequest, "error.invalid_request"},
}

var postErrorRules = []mappedHandlerError{
	{service.ErrPostNotFound, response.CodeNotFound, "error.post_not_found"},
	{service.ErrSlugExists, response.CodeBadRequest, "error.slug_exists"},
	{service.ErrInvalidInput, response.CodeBadRequest, "error.invalid_request"},
}

var adminOrderErrorRules = []mappedHandlerError{
	{service.ErrOrderNotFound, response.CodeNotFound, "error.order_not_found"},
	{service.ErrInvalidOrderStatus, response.CodeBadRequest, "error.invalid_order_status"},
	{service.ErrInvalidInput, response.CodeBadRequest, "error.invalid_request"},
}
