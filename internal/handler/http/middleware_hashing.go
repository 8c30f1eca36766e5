package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/go-sync-resolver/internal/app"
	"github.com/MKhiriev/go-sync-resolver/internal/logger"
	"github.com/MKhiriev/go-sync-resolver/internal/utils"
	"github.com/MKhiriev/go-sync-resolver/models"
)

// commitHashing rejects a commit whose "hash" field is not the hex BLAKE2b-256
// digest of its JSON-encoded "items".
func (h *Handler) commitHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		var req struct {
			Items []models.CommitItem `json:"items"`
			Hash  string              `json:"hash"`
		}

		log.Debug().Str("func", "*Handler.commitHashing").Msg("checking hash begins")

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.commitHashing").Msg("failed to read request body")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if err := json.NewDecoder(bytes.NewReader(body)).Decode(&req); err != nil {
			log.Err(err).Str("func", "*Handler.commitHashing").Msg("failed to decode JSON")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}

		payloadBytes, err := json.Marshal(req.Items)
		if err != nil {
			log.Err(err).Str("func", "*Handler.commitHashing").Msg("failed to marshal items")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}

		hashedBody := utils.HashString(payloadBytes)
		if hashedBody != req.Hash {
			log.Error().Str("func", "*Handler.commitHashing").
				Str("hash from request", req.Hash).
				Str("hashed body", hashedBody).
				Msg("hashes are not equal")
			http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
