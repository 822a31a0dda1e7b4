package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/service"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/store"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/adminsdk"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/httpx"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/slogx"
)

var (
	errNotFound    = httpx.NewAPIError(http.StatusNotFound, "Record not found.")
	errUnavailable = httpx.NewAPIError(http.StatusServiceUnavailable, "Database not connected.")
	errInvalidBody = httpx.NewAPIError(http.StatusBadRequest, "Invalid JSON body.")
)

// CollectionHandler serves list/create/update/delete for one collection.
// The same handler type backs every collection endpoint.
type CollectionHandler struct {
	Service    *service.RecordService
	Collection string
}

// List godoc
//
//	@Summary		List records
//	@Description	Returns up to limit records of the collection behind the endpoint (default 25,
//	@Description	max 200). Returns an empty array while the database is not connected.
//	@Tags			Collections
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int		false	"Maximum number of records"
//	@Success		200		{array}		object
//	@Failure		401		{object}	adminsdk.ErrorResponse
//	@Failure		500		{object}	adminsdk.ErrorResponse	"Unable to fetch data."
//	@Router			/api/vendors [get]
//	@Router			/api/customers [get]
//	@Router			/api/guarantors [get]
//	@Router			/api/inventory [get]
//	@Router			/api/cnic-checks [get]
//	@Router			/api/installment-plans [get]
//	@Router			/api/attendance [get]
//	@Router			/api/employees [get]
//	@Router			/api/reports/summary [get]
//	@Router			/api/reports/daily-closing [get]
//	@Router			/api/users [get]
//	@Router			/api/roles [get].
func (h *CollectionHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	recs, err := h.Service.List(ctx, h.Collection, parseLimit(r.URL.Query().Get("limit")))
	if err != nil {
		h.writeStoreError(w, r, err, "Unable to fetch data.")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, recs)
}

// Create godoc
//
//	@Summary		Create record
//	@Description	Stores the body as a new record. _id, __v, createdAt and updatedAt are assigned
//	@Description	by the server and ignored if sent.
//	@Tags			Collections
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		object	true	"Record fields"
//	@Success		200		{object}	object
//	@Failure		400		{object}	adminsdk.ErrorResponse
//	@Failure		503		{object}	adminsdk.ErrorResponse	"Database not connected."
//	@Router			/api/vendors [post]
//	@Router			/api/customers [post]
//	@Router			/api/guarantors [post]
//	@Router			/api/inventory [post]
//	@Router			/api/cnic-checks [post]
//	@Router			/api/installment-plans [post]
//	@Router			/api/attendance [post]
//	@Router			/api/employees [post]
//	@Router			/api/reports/summary [post]
//	@Router			/api/reports/daily-closing [post]
//	@Router			/api/users [post]
//	@Router			/api/roles [post].
func (h *CollectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	rec, err := h.Service.Create(r.Context(), h.Collection, payload)
	if err != nil {
		h.writeStoreError(w, r, err, "Unable to create record.")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rec)
}

// Update godoc
//
//	@Summary		Update record
//	@Description	Sets the fields in the body on the record. Fields not sent are kept.
//	@Tags			Collections
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string	true	"Record id"
//	@Param			body		body		object	true	"Fields to set"
//	@Success		200			{object}	object
//	@Failure		404			{object}	adminsdk.ErrorResponse	"Record not found."
//	@Failure		503			{object}	adminsdk.ErrorResponse	"Database not connected."
//	@Router			/api/vendors/{id} [put]
//	@Router			/api/customers/{id} [put]
//	@Router			/api/guarantors/{id} [put]
//	@Router			/api/inventory/{id} [put]
//	@Router			/api/cnic-checks/{id} [put]
//	@Router			/api/installment-plans/{id} [put]
//	@Router			/api/attendance/{id} [put]
//	@Router			/api/employees/{id} [put]
//	@Router			/api/reports/summary/{id} [put]
//	@Router			/api/reports/daily-closing/{id} [put]
//	@Router			/api/users/{id} [put]
//	@Router			/api/roles/{id} [put].
func (h *CollectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	rec, err := h.Service.Update(r.Context(), h.Collection, r.PathValue("id"), payload)
	if err != nil {
		h.writeStoreError(w, r, err, "Unable to update record.")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rec)
}

// Delete godoc
//
//	@Summary		Delete record
//	@Tags			Collections
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id			path		string	true	"Record id"
//	@Success		200			{object}	adminsdk.SuccessResponse
//	@Failure		404			{object}	adminsdk.ErrorResponse	"Record not found."
//	@Failure		503			{object}	adminsdk.ErrorResponse	"Database not connected."
//	@Router			/api/vendors/{id} [delete]
//	@Router			/api/customers/{id} [delete]
//	@Router			/api/guarantors/{id} [delete]
//	@Router			/api/inventory/{id} [delete]
//	@Router			/api/cnic-checks/{id} [delete]
//	@Router			/api/installment-plans/{id} [delete]
//	@Router			/api/attendance/{id} [delete]
//	@Router			/api/employees/{id} [delete]
//	@Router			/api/reports/summary/{id} [delete]
//	@Router			/api/reports/daily-closing/{id} [delete]
//	@Router			/api/users/{id} [delete]
//	@Router			/api/roles/{id} [delete].
func (h *CollectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), h.Collection, r.PathValue("id")); err != nil {
		h.writeStoreError(w, r, err, "Unable to delete record.")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, adminsdk.SuccessResponse{Success: true})
}

func (h *CollectionHandler) writeStoreError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteError(w, errNotFound)
	case errors.Is(err, store.ErrUnavailable):
		httpx.WriteError(w, errUnavailable)
	default:
		slogx.FromContext(r.Context()).Error(msg, "collection", h.Collection, "err", err)
		httpx.WriteError(w, httpx.NewAPIError(http.StatusInternalServerError, msg))
	}
}

// decodePayload reads the request body. Anything that decodes but isn't an
// object is passed on and later sanitized to an empty record.
func decodePayload(w http.ResponseWriter, r *http.Request) (any, bool) {
	var payload any
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		slogx.FromContext(r.Context()).Debug("request body rejected", "err", err)
		httpx.WriteError(w, errInvalidBody)
		return nil, false
	}
	return payload, true
}

// parseLimit returns the requested limit, or the default for anything
// missing or not a positive integer. The store applies the cap.
func parseLimit(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return store.DefaultListLimit
	}
	return store.ClampLimit(n)
}
