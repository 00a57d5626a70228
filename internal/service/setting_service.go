package service

import (
	"encoding/json"
	"strings"

	"github.com/scentlab/scentlab/internal/config"
	"github.com/scentlab/scentlab/internal/constants"
	"github.com/scentlab/scentlab/internal/models"
	"github.com/scentlab/scentlab/internal/repository"
	"github.com/scentlab/scentlab/internal/shipping"
)

// SettingService runtime setting service
type SettingService struct {
	cfg  *config.Config
	repo repository.SettingRepository
}

// NewSettingService creates the setting service
func NewSettingService(cfg *config.Config, repo repository.SettingRepository) *SettingService {
	return &SettingService{cfg: cfg, repo: repo}
}

// List lists all settings
func (s *SettingService) List() ([]models.Setting, error) {
	return s.repo.List()
}

// Get fetches a raw setting value; ok reports whether the key is stored
func (s *SettingService) Get(key string) (string, bool, error) {
	setting, err := s.repo.Get(strings.TrimSpace(key))
	if err != nil {
		return "", false, err
	}
	if setting == nil {
		return "", false, nil
	}
	return setting.Value, true, nil
}

// Set stores a setting value
func (s *SettingService) Set(key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrInvalidInput
	}
	return s.repo.Upsert(key, value)
}

// Delete removes a stored setting, reverting to the configured default
func (s *SettingService) Delete(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(key)
}

// InnerCityKeywords returns the inner-city keyword list, preferring the
// stored override over the configured default.
func (s *SettingService) InnerCityKeywords() []string {
	value, ok, err := s.Get(constants.SettingKeyInnerCityKeywords)
	if err == nil && ok {
		var keywords []string
		if jsonErr := json.Unmarshal([]byte(value), &keywords); jsonErr == nil && len(keywords) > 0 {
			return keywords
		}
	}
	return s.cfg.Shipping.InnerCityKeywords
}

// SetInnerCityKeywords stores the inner-city keyword override
func (s *SettingService) SetInnerCityKeywords(keywords []string) error {
	cleaned := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if trimmed := strings.TrimSpace(keyword); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return s.Delete(constants.SettingKeyInnerCityKeywords)
	}
	raw, err := json.Marshal(cleaned)
	if err != nil {
		return err
	}
	return s.Set(constants.SettingKeyInnerCityKeywords, string(raw))
}

// IsInnerCity classifies the delivery zone with the current keyword list
func (s *SettingService) IsInnerCity(address, province, district string) bool {
	return shipping.NewKeywordClassifier(s.InnerCityKeywords()).IsInnerCity(address, province, district)
}

// SupportContact returns the storefront support contact text
func (s *SettingService) SupportContact() string {
	value, ok, err := s.Get(constants.SettingKeySupportContact)
	if err != nil || !ok {
		return ""
	}
	return value
}
