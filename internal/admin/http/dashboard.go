package http

import (
	"net/http"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/service"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/httpx"
)

type DashboardHandler struct {
	DashboardService *service.DashboardService
}

// ServeHTTP godoc
//
//	@Summary		Dashboard aggregate
//	@Description	Returns the stored overview aggregate, or an empty one when nothing is stored or
//	@Description	the database is unreachable. Never fails.
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	adminsdk.Dashboard
//	@Failure		401	{object}	adminsdk.ErrorResponse
//	@Router			/api/dashboard [get].
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.DashboardService.Get(r.Context()))
}
