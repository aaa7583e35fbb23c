// Package alerting implementa las reglas de recomputación de alertas
// (servicio de dominio puro): reconstrucción completa y determinista del
// conjunto de alertas a partir de la colección de productos.
package alerting

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tu-usuario/gestion-stock/internal/domain/entity"
)

// Ventana de aviso de DLC próxima, en días calendario (inclusive).
const expiryNearWindowDays = 7

// Formato de fecha localizado para los mensajes.
const dateLayout = "02/01/2006"

var printer = message.NewPrinter(language.Spanish)

// Compute reconstruye el conjunto de alertas desde cero para now:
//   - Quantity <= AlertThreshold            => low_stock
//   - DLC fijada y anterior a hoy           => expiry_passed
//   - si no, DLC a <= 7 días calendario     => expiry_near
//
// expiry_passed y expiry_near son excluyentes por producto; low_stock puede
// coexistir con cualquiera de las dos. newID provee los identificadores de
// las alertas emitidas.
func Compute(products []*entity.Product, now time.Time, newID func() string) []*entity.Alert {
	alerts := make([]*entity.Alert, 0)
	for _, p := range products {
		if p.Quantity <= p.AlertThreshold {
			alerts = append(alerts, &entity.Alert{
				ID:        newID(),
				ProductID: p.ID,
				Type:      entity.AlertTypeLowStock,
				Message:   lowStockMessage(p),
				CreatedAt: now,
			})
		}
		if p.ExpiryDate == nil {
			continue
		}
		days := daysUntil(*p.ExpiryDate, now)
		switch {
		case days < 0:
			alerts = append(alerts, &entity.Alert{
				ID:        newID(),
				ProductID: p.ID,
				Type:      entity.AlertTypeExpiryPassed,
				Message:   expiryPassedMessage(p),
				CreatedAt: now,
			})
		case days <= expiryNearWindowDays:
			alerts = append(alerts, &entity.Alert{
				ID:        newID(),
				ProductID: p.ID,
				Type:      entity.AlertTypeExpiryNear,
				Message:   expiryNearMessage(p, days),
				CreatedAt: now,
			})
		}
	}
	return alerts
}

// PreserveReadFlags traslada el flag de leída del conjunto previo al recién
// computado, casando por (ProductID, Type). El reemplazo al por mayor del
// conjunto perdería el estado leído en cada recomputación; esta conciliación
// lo conserva mientras la condición siga vigente.
func PreserveReadFlags(previous, fresh []*entity.Alert) {
	if len(previous) == 0 {
		return
	}
	read := make(map[[2]string]bool, len(previous))
	for _, a := range previous {
		if a.Read {
			read[[2]string{a.ProductID, a.Type}] = true
		}
	}
	for _, a := range fresh {
		if read[[2]string{a.ProductID, a.Type}] {
			a.Read = true
		}
	}
}

// daysUntil devuelve la diferencia en días calendario entre la DLC y hoy
// (negativa si ya venció). Compara fechas civiles, no instantes: una DLC de
// hoy a las 00:01 no cuenta como vencida a las 08:00.
func daysUntil(expiry, today time.Time) int {
	e := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(t).Hours() / 24)
}

func lowStockMessage(p *entity.Product) string {
	return printer.Sprintf("Stock bajo para %s: %d %s (umbral: %d)",
		p.Name, p.Quantity, plural(p.Quantity, "unidad restante", "unidades restantes"), p.AlertThreshold)
}

func expiryPassedMessage(p *entity.Product) string {
	return printer.Sprintf("DLC vencida para %s: %s", p.Name, p.ExpiryDate.Format(dateLayout))
}

func expiryNearMessage(p *entity.Product, days int) string {
	return printer.Sprintf("DLC próxima para %s: %s (%d %s)",
		p.Name, p.ExpiryDate.Format(dateLayout), days, plural(days, "día", "días"))
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
