// Package analytics deriva series agregadas del libro mayor para los
// gráficos de la capa de presentación.
package analytics

import (
	"time"

	"github.com/tu-usuario/gestion-stock/internal/application/dto"
	"github.com/tu-usuario/gestion-stock/internal/domain/entity"
	"github.com/tu-usuario/gestion-stock/internal/domain/repository"
)

// SeriesUseCase agrega el libro mayor en una serie diaria de entradas y
// salidas sobre una ventana móvil.
type SeriesUseCase struct {
	movements repository.MovementRepository
	products  repository.ProductRepository
	now       func() time.Time
}

// NewSeriesUseCase construye el caso de uso.
func NewSeriesUseCase(movements repository.MovementRepository, products repository.ProductRepository) *SeriesUseCase {
	return &SeriesUseCase{
		movements: movements,
		products:  products,
		now:       time.Now,
	}
}

// Series devuelve una cubeta por día calendario desde hoy−windowDays hasta
// hoy inclusive (windowDays+1 cubetas). Cada cubeta suma las cantidades de
// los movimientos de cada dirección cuyo timestamp cae en ese día; la
// frontera es la fecha civil, no la granularidad del timestamp. Stock es el
// total actual de todos los productos, repetido en todas las cubetas (no es
// un snapshot histórico).
func (uc *SeriesUseCase) Series(windowDays int) []dto.SeriesPoint {
	if windowDays < 0 {
		windowDays = 0
	}
	today := civilDate(uc.now())
	start := today.AddDate(0, 0, -windowDays)

	totalStock := 0
	for _, p := range uc.products.List() {
		totalStock += p.Quantity
	}

	points := make([]dto.SeriesPoint, 0, windowDays+1)
	index := make(map[string]int, windowDays+1)
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		index[key] = len(points)
		points = append(points, dto.SeriesPoint{Date: key, Stock: totalStock})
	}

	for _, m := range uc.movements.List() {
		key := civilDate(m.Date).Format("2006-01-02")
		i, ok := index[key]
		if !ok {
			continue // fuera de la ventana
		}
		switch m.Type {
		case entity.MovementTypeEntry:
			points[i].Entries += m.Quantity
		case entity.MovementTypeExit:
			points[i].Exits += m.Quantity
		}
	}
	return points
}

// civilDate trunca un instante a su fecha calendario.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
