// Package report contiene los casos de uso de reportes: la reconciliación
// de inventario y el agregador de ventas, con bucketing por día calendario
// en una zona horaria fija.
package report

import (
	"time"

	"github.com/jhoicas/pos-backoffice/internal/domain/repository"
)

const dayLayout = "2006-01-02"

// ParsePeriod arma el período de reporte a partir de los parámetros crudos.
// Una fecha vacía o mal formada desactiva ese lado del filtro; los reportes
// nunca rechazan un rango, a lo sumo lo ignoran.
func ParsePeriod(tz, from, to string) repository.ReportPeriod {
	p := repository.ReportPeriod{Timezone: tz}
	if _, err := time.Parse(dayLayout, from); err == nil {
		p.FromDay = from
	}
	if _, err := time.Parse(dayLayout, to); err == nil {
		p.ToDay = to
	}
	return p
}

// Location resuelve la zona del período; una zona inválida cae a UTC.
func Location(p repository.ReportPeriod) *time.Location {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Cutoff devuelve el instante de fin de día (23:59:59.999999999 local) del
// límite superior del período. Sin límite superior el corte es "ahora":
// el on-hand pasa a ser el stock más reciente conocido.
func Cutoff(p repository.ReportPeriod, now time.Time) time.Time {
	if p.ToDay == "" {
		return now
	}
	day, err := time.ParseInLocation(dayLayout, p.ToDay, Location(p))
	if err != nil {
		return now
	}
	return day.Add(24*time.Hour - time.Nanosecond)
}
