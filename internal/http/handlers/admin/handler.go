package admin

import "github.com/gauravjat135/galaxy-medical-store/internal/provider"

// Handler serves the back-office API: catalog and stock management, order
// fulfillment, staff roster and the sales dashboard.
type Handler struct {
	*provider.Container
}

// New creates the back-office handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
