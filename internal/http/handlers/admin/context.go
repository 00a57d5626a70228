package admin

import (
	"strconv"

	handlershared "github.com/scentlab/scentlab/internal/http/handlers/shared"
	"github.com/scentlab/scentlab/internal/http/response"

	"github.com/gin-gonic/gin"
)

func getAdminID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, "admin_id", "error.admin_id_invalid", "error.admin_id_type_invalid")
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return 0, false
	}
	return uint(id), true
}
