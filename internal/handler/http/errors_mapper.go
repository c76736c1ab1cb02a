package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-chart-board/internal/service"
	"github.com/MKhiriev/go-chart-board/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrDuplicateSymbol:       http.StatusConflict,
	service.ErrInvalidDocument:       http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,

	store.ErrDocumentNotSaved: http.StatusInternalServerError,
	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrEncodingDocument: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
