package admin

import "github.com/scentlab/scentlab/internal/provider"

// Handler back-office API handler entry
type Handler struct {
	*provider.Container
}

// New creates the back-office handler
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
