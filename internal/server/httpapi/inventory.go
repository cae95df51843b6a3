package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/invtrack/internal/common"
	"github.com/dmitrijs2005/invtrack/internal/metrics"
	"github.com/dmitrijs2005/invtrack/internal/server/filter"
	"github.com/dmitrijs2005/invtrack/internal/server/models"
	"github.com/go-chi/chi/v5"
)

// HandleAdd stores the JSON object body as a new item.
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		metrics.RecordInventory("create", common.ErrorValidation)
		status, msg := bodyErrorMessage(err)
		h.respondMessage(w, r, status, msg)
		return
	}

	id, err := h.inventory.Create(r.Context(), fields)
	metrics.RecordInventory("create", err)
	if err != nil {
		h.respondInternal(w, r, MsgInternal, err)
		return
	}

	h.respondJSON(w, r, http.StatusCreated, CreatedResponse{Message: MsgItemAdded, ID: id})
}

// HandleGetAll lists items, narrowed by the search, severity, stage,
// applicationType and deployment query parameters.
func (h *Handler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	pred := filter.Build(filter.ParamsFromQuery(r.URL.Query()))

	items, err := h.inventory.GetFiltered(r.Context(), pred)
	metrics.RecordInventory("list", err)
	if err != nil {
		h.respondInternal(w, r, MsgInternal, err)
		return
	}
	if items == nil {
		items = []models.Item{}
	}

	h.respondJSON(w, r, http.StatusOK, DataResponse{Data: items})
}

// HandleGetByID returns one item.
func (h *Handler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	item, err := h.inventory.GetByID(r.Context(), chi.URLParam(r, "id"))
	metrics.RecordInventory("get", err)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidID):
			h.respondMessage(w, r, http.StatusBadRequest, MsgInvalidID)
		case errors.Is(err, common.ErrorNotFound):
			h.respondMessage(w, r, http.StatusNotFound, MsgItemNotFound)
		default:
			h.respondInternal(w, r, MsgFetchItemFailed, err)
		}
		return
	}

	h.respondJSON(w, r, http.StatusOK, DataResponse{Data: item})
}

// HandleUpdate merges the JSON object body into an item.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		metrics.RecordInventory("update", common.ErrorValidation)
		status, msg := bodyErrorMessage(err)
		h.respondMessage(w, r, status, msg)
		return
	}

	err = h.inventory.Update(r.Context(), chi.URLParam(r, "id"), fields)
	metrics.RecordInventory("update", err)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			h.respondMessage(w, r, http.StatusNotFound, MsgItemNotFound)
			return
		}
		h.respondInternal(w, r, MsgInternal, err)
		return
	}

	h.respondMessage(w, r, http.StatusOK, MsgItemUpdated)
}

// HandleDelete removes an item.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.inventory.Delete(r.Context(), chi.URLParam(r, "id"))
	metrics.RecordInventory("delete", err)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidID):
			h.respondMessage(w, r, http.StatusBadRequest, MsgInvalidID)
		case errors.Is(err, common.ErrorNotFound):
			h.respondMessage(w, r, http.StatusNotFound, MsgItemNotFound)
		default:
			h.respondInternal(w, r, MsgInternal, err)
		}
		return
	}

	h.respondMessage(w, r, http.StatusOK, MsgItemDeleted)
}
