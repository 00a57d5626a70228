package service

import (
	"strings"

	"github.com/scentlab/scentlab/internal/models"
	"github.com/scentlab/scentlab/internal/repository"

	"gorm.io/gorm"
)

// AddressService saved shipping address service
type AddressService struct {
	repo repository.AddressRepository
}

// NewAddressService creates the address service
func NewAddressService(repo repository.AddressRepository) *AddressService {
	return &AddressService{repo: repo}
}

// SaveAddressInput create/update address input
type SaveAddressInput struct {
	FullName  string
	Phone     string
	Country   string
	Province  string
	District  string
	Ward      string
	Street    string
	IsDefault bool
}

// List lists the addresses of a user
func (s *AddressService) List(userID uint) ([]models.Address, error) {
	return s.repo.ListByUser(userID)
}

// Get fetches an address owned by a user
func (s *AddressService) Get(userID, addressID uint) (*models.Address, error) {
	address, err := s.repo.GetByIDAndUser(addressID, userID)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, ErrAddressNotFound
	}
	return address, nil
}

// Create creates an address; the first address becomes the default
func (s *AddressService) Create(userID uint, input SaveAddressInput) (*models.Address, error) {
	address, err := buildAddress(userID, input)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		address.IsDefault = true
	}

	if err := s.repo.Transaction(func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if address.IsDefault {
			if err := txRepo.ClearDefault(userID); err != nil {
				return err
			}
		}
		return txRepo.Create(address)
	}); err != nil {
		return nil, err
	}
	return address, nil
}

// Update updates an address owned by a user
func (s *AddressService) Update(userID, addressID uint, input SaveAddressInput) (*models.Address, error) {
	address, err := s.Get(userID, addressID)
	if err != nil {
		return nil, err
	}

	updated, err := buildAddress(userID, input)
	if err != nil {
		return nil, err
	}
	updated.ID = address.ID
	updated.CreatedAt = address.CreatedAt

	if err := s.repo.Transaction(func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if updated.IsDefault {
			if err := txRepo.ClearDefault(userID); err != nil {
				return err
			}
		}
		return txRepo.Update(updated)
	}); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes an address owned by a user
func (s *AddressService) Delete(userID, addressID uint) error {
	if _, err := s.Get(userID, addressID); err != nil {
		return err
	}
	return s.repo.Delete(addressID, userID)
}

// SetDefault marks an address as the checkout default
func (s *AddressService) SetDefault(userID, addressID uint) (*models.Address, error) {
	address, err := s.Get(userID, addressID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Transaction(func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.ClearDefault(userID); err != nil {
			return err
		}
		address.IsDefault = true
		return txRepo.Update(address)
	}); err != nil {
		return nil, err
	}
	return address, nil
}

func buildAddress(userID uint, input SaveAddressInput) (*models.Address, error) {
	fullName := strings.TrimSpace(input.FullName)
	phone := strings.TrimSpace(input.Phone)
	if userID == 0 || fullName == "" || phone == "" {
		return nil, ErrInvalidInput
	}

	country := strings.TrimSpace(input.Country)
	if country == "" {
		country = "Vietnam"
	}

	return &models.Address{
		UserID:    userID,
		FullName:  fullName,
		Phone:     phone,
		Country:   country,
		Province:  strings.TrimSpace(input.Province),
		District:  strings.TrimSpace(input.District),
		Ward:      strings.TrimSpace(input.Ward),
		Street:    strings.TrimSpace(input.Street),
		IsDefault: input.IsDefault,
	}, nil
}
