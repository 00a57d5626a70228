package service

import (
	"strings"
	"sync"

	"github.com/scentlab/scentlab/internal/config"
	"github.com/scentlab/scentlab/internal/constants"

	"github.com/mojocn/base64Captcha"
)

// CaptchaImageChallenge image captcha challenge
type CaptchaImageChallenge struct {
	CaptchaID   string `json:"captcha_id"`
	ImageBase64 string `json:"image_base64"`
}

// CaptchaService image captcha service.
// Scene switches decide which endpoints require a captcha.
type CaptchaService struct {
	cfg config.CaptchaConfig

	mu    sync.Mutex
	store base64Captcha.Store
}

// NewCaptchaService creates the captcha service
func NewCaptchaService(cfg config.CaptchaConfig) *CaptchaService {
	return &CaptchaService{cfg: cfg}
}

// Enabled reports whether a captcha provider is configured
func (s *CaptchaService) Enabled() bool {
	return strings.EqualFold(strings.TrimSpace(s.cfg.Provider), constants.CaptchaProviderImage)
}

// RequiredForScene reports whether a scene demands captcha verification
func (s *CaptchaService) RequiredForScene(scene string) bool {
	if !s.Enabled() {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(scene)) {
	case constants.CaptchaSceneLogin:
		return s.cfg.Scenes.Login
	case constants.CaptchaSceneRegister:
		return s.cfg.Scenes.Register
	case constants.CaptchaSceneGuestCreateOrder:
		return s.cfg.Scenes.GuestCreateOrder
	default:
		return false
	}
}

// GenerateImageChallenge generates an image captcha
func (s *CaptchaService) GenerateImageChallenge() (*CaptchaImageChallenge, error) {
	if !s.Enabled() {
		return nil, ErrCaptchaInvalid
	}

	driver := base64Captcha.NewDriverString(
		s.cfg.Image.Height,
		s.cfg.Image.Width,
		s.cfg.Image.NoiseCount,
		s.cfg.Image.ShowLine,
		s.cfg.Image.Length,
		"0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ",
		nil,
		base64Captcha.DefaultEmbeddedFonts,
		nil,
	)
	captcha := base64Captcha.NewCaptcha(driver, s.ensureStore())
	id, b64s, _, err := captcha.Generate()
	if err != nil {
		return nil, err
	}

	return &CaptchaImageChallenge{
		CaptchaID:   strings.TrimSpace(id),
		ImageBase64: strings.TrimSpace(b64s),
	}, nil
}

// Verify checks a captcha answer for a scene; a consumed answer cannot be reused
func (s *CaptchaService) Verify(scene, captchaID, captchaCode string) error {
	if !s.RequiredForScene(scene) {
		return nil
	}
	captchaID = strings.TrimSpace(captchaID)
	captchaCode = strings.TrimSpace(captchaCode)
	if captchaID == "" || captchaCode == "" {
		return ErrCaptchaInvalid
	}
	if !s.ensureStore().Verify(captchaID, captchaCode, true) {
		return ErrCaptchaInvalid
	}
	return nil
}

func (s *CaptchaService) ensureStore() base64Captcha.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store == nil {
		maxStore := s.cfg.Image.MaxStore
		if maxStore <= 0 {
			maxStore = base64Captcha.GCLimitNumber
		}
		s.store = base64Captcha.NewMemoryStore(maxStore, base64Captcha.Expiration)
	}
	return s.store
}
