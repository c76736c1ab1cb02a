package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-chart-board/internal/app"
	"github.com/MKhiriev/go-chart-board/internal/logger"
	"github.com/MKhiriev/go-chart-board/internal/service"
	"github.com/MKhiriev/go-chart-board/internal/utils"
	"github.com/MKhiriev/go-chart-board/models"
)

func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	document, err := h.services.DocumentService.GetDocument(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getConfig").Msg(app.MsgErrorLoadingConfig)
		http.Error(w, app.MsgErrorLoadingConfig, statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, document, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getConfig").Msg("error encoding config document")
	}
}

func (h *Handler) updateConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var documentFromBody models.ConfigDocument
	if err := json.NewDecoder(r.Body).Decode(&documentFromBody); err != nil {
		log.Err(err).Str("func", "*Handler.updateConfig").Msg(app.MsgInvalidDataProvided)
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	savedDocument, err := h.services.DocumentService.ReplaceDocument(r.Context(), documentFromBody)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateConfig").Msg(app.MsgErrorSavingConfig)
		message := app.MsgErrorSavingConfig
		if errors.Is(err, service.ErrDuplicateSymbol) {
			message = app.MsgDuplicateTicker
		}
		http.Error(w, message, statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, savedDocument, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.updateConfig").Msg("error encoding config document")
	}
}
