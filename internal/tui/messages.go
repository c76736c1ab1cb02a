package tui

import (
	"github.com/MKhiriev/go-chart-board/models"
)

type resetDoneMsg struct {
	symbols []models.Symbol
	charts  []models.ChartInterval
	opts    models.ChartOptions
}

type copiedMsg struct {
	err error
}
