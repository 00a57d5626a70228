package public

import (
	"strconv"

	"github.com/scentlab/scentlab/internal/http/response"
	"github.com/scentlab/scentlab/internal/service"

	"github.com/gin-gonic/gin"
)

// AddressRequest create or update a shipping address
type AddressRequest struct {
	FullName  string `json:"full_name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Country   string `json:"country"`
	Province  string `json:"province" binding:"required"`
	District  string `json:"district"`
	Ward      string `json:"ward"`
	Street    string `json:"street" binding:"required"`
	IsDefault bool   `json:"is_default"`
}

func (r AddressRequest) toInput() service.SaveAddressInput {
	return service.SaveAddressInput{
		FullName:  r.FullName,
		Phone:     r.Phone,
		Country:   r.Country,
		Province:  r.Province,
		District:  r.District,
		Ward:      r.Ward,
		Street:    r.Street,
		IsDefault: r.IsDefault,
	}
}

func addressIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return 0, false
	}
	return uint(id), true
}

// ListAddresses returns the signed-in user's address book
func (h *Handler) ListAddresses(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	addresses, err := h.AddressService.List(userID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	response.Success(c, addresses)
}

// CreateAddress adds an address to the book
func (h *Handler) CreateAddress(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	address, err := h.AddressService.Create(userID, req.toInput())
	if err != nil {
		respondWithMappedError(c, err, addressErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, address)
}

// UpdateAddress edits one address
func (h *Handler) UpdateAddress(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	addressID, ok := addressIDParam(c)
	if !ok {
		return
	}

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	address, err := h.AddressService.Update(userID, addressID, req.toInput())
	if err != nil {
		respondWithMappedError(c, err, addressErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, address)
}

// DeleteAddress removes one address
func (h *Handler) DeleteAddress(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	addressID, ok := addressIDParam(c)
	if !ok {
		return
	}

	if err := h.AddressService.Delete(userID, addressID); err != nil {
		respondWithMappedError(c, err, addressErrorRules, response.CodeInternal, "error.delete_failed")
		return
	}
	response.Success(c, nil)
}

// SetDefaultAddress marks one address as the checkout default
func (h *Handler) SetDefaultAddress(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	addressID, ok := addressIDParam(c)
	if !ok {
		return
	}

	address, err := h.AddressService.SetDefault(userID, addressID)
	if err != nil {
		respondWithMappedError(c, err, addressErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, address)
}
