package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-backoffice/internal/application/report"
	"github.com/jhoicas/pos-backoffice/internal/domain/repository"
)

func TestParsePeriod_FechasValidas(t *testing.T) {
	p := report.ParsePeriod("Asia/Manila", "2025-07-01", "2025-07-31")
	assert.Equal(t, "Asia/Manila", p.Timezone)
	assert.Equal(t, "2025-07-01", p.FromDay)
	assert.Equal(t, "2025-07-31", p.ToDay)
}

// Una fecha mal formada desactiva ese lado del filtro, nunca es un error.
func TestParsePeriod_FechaInvalidaSeIgnora(t *testing.T) {
	p := report.ParsePeriod("Asia/Manila", "no-es-fecha", "2025-07-31")
	assert.Empty(t, p.FromDay)
	assert.Equal(t, "2025-07-31", p.ToDay)

	p = report.ParsePeriod("Asia/Manila", "2025-07-01", "31/07/2025")
	assert.Equal(t, "2025-07-01", p.FromDay)
	assert.Empty(t, p.ToDay)
}

func TestParsePeriod_VaciasSinFiltro(t *testing.T) {
	p := report.ParsePeriod("Asia/Manila", "", "")
	assert.Empty(t, p.FromDay)
	assert.Empty(t, p.ToDay)
}

func TestLocation_ZonaInvalidaCaeAUTC(t *testing.T) {
	loc := report.Location(repository.ReportPeriod{Timezone: "Jupiter/Europa"})
	assert.Equal(t, time.UTC, loc)
}

// El corte es el último instante del día superior en la zona local.
func TestCutoff_FinDeDiaLocal(t *testing.T) {
	p := report.ParsePeriod("Asia/Manila", "", "2025-07-15")
	now := time.Now()

	cut := report.Cutoff(p, now)

	manila, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)
	want := time.Date(2025, 7, 15, 23, 59, 59, 999999999, manila)
	assert.True(t, cut.Equal(want), "corte esperado %v, fue %v", want, cut)

	// Una venta a las 00:00:00 del día siguiente debe quedar fuera.
	nextDay := time.Date(2025, 7, 16, 0, 0, 0, 0, manila)
	assert.True(t, cut.Before(nextDay))
}

func TestCutoff_SinLimiteSuperiorEsAhora(t *testing.T) {
	now := time.Now()
	cut := report.Cutoff(repository.ReportPeriod{Timezone: "Asia/Manila"}, now)
	assert.True(t, cut.Equal(now))
}
