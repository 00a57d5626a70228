package public

import "github.com/scentlab/scentlab/internal/provider"

// Handler storefront / guest-facing API handler entry.
// Only storefront and signed-in user endpoints live here.
type Handler struct {
	*provider.Container
}

// New creates the storefront handler
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
