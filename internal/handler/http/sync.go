package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-sync-resolver/internal/app"
	"github.com/MKhiriev/go-sync-resolver/internal/logger"
	"github.com/MKhiriev/go-sync-resolver/internal/service"
	"github.com/MKhiriev/go-sync-resolver/internal/utils"
	"github.com/MKhiriev/go-sync-resolver/models"
)

const (
	querySince = "since"
	queryLimit = "limit"
)

func (h *Handler) getUpdates(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	query := models.UpdatesQuery{Since: 0, Limit: service.MaxUpdatesLimit}
	var err error
	if raw := r.URL.Query().Get(querySince); raw != "" {
		if query.Since, err = strconv.ParseInt(raw, 10, 64); err != nil {
			log.Err(err).Str("func", "*Handler.getUpdates").Str(querySince, raw).Msg("invalid since parameter")
			http.Error(w, app.MsgInvalidSinceParameter, http.StatusBadRequest)
			return
		}
	}
	if raw := r.URL.Query().Get(queryLimit); raw != "" {
		if query.Limit, err = strconv.ParseInt(raw, 10, 64); err != nil {
			log.Err(err).Str("func", "*Handler.getUpdates").Str(queryLimit, raw).Msg("invalid limit parameter")
			http.Error(w, app.MsgInvalidLimitParameter, http.StatusBadRequest)
			return
		}
	}

	updates, err := h.services.SyncService.GetUpdates(r.Context(), query)
	if err != nil {
		status, msg := responseFromError(err)
		log.Err(err).Str("func", "*Handler.getUpdates").Int("status", status).Msg("error getting updates")
		http.Error(w, msg, status)
		return
	}
	if updates == nil {
		updates = []models.ServerUpdate{}
	}

	utils.WriteJSON(w, models.UpdatesResponse{Updates: updates, Length: len(updates)}, http.StatusOK)
}

func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	entry, err := h.services.SyncService.GetEntry(r.Context(), id)
	if err != nil {
		status, msg := responseFromError(err)
		log.Err(err).Str("func", "*Handler.getEntry").Str("entry_id", id).Int("status", status).Msg("error getting entry")
		http.Error(w, msg, status)
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) commit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CommitRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.commit").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	results, err := h.services.SyncService.Commit(r.Context(), req)
	if err != nil {
		status, msg := responseFromError(err)
		log.Err(err).Str("func", "*Handler.commit").Int("items", len(req.Items)).Int("status", status).Msg("error committing items")
		http.Error(w, msg, status)
		return
	}

	utils.WriteJSON(w, models.CommitResponse{Results: results, Length: len(results)}, http.StatusOK)
}
