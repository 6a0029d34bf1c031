package public

import "github.com/gauravjat135/galaxy-medical-store/internal/provider"

// Handler serves the storefront API: catalog, cart, checkout and the
// buyer's own orders.
type Handler struct {
	*provider.Container
}

// New creates the storefront handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
