package admin

import (
	handlershared "github.com/scentlab/scentlab/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func respondErrorWithMsg(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondErrorWithMsg(c, code, msg, err)
}

func normalizePagination(page, pageSize int) (int, int) {
	return handlershared.NormalizePagination(page, pageSize)
}
