package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa una factura emitida a nombre de una empresa.
//
// Invariante: Paid == false ⇔ PaidDate == nil.
type Invoice struct {
	ID       int64
	CompCode string
	Amt      decimal.Decimal
	Paid     bool
	AddDate  time.Time  // fecha de creación, se fija una sola vez
	PaidDate *time.Time // nil mientras no esté pagada
}

// SetPaid aplica la transición de pago:
//   - false -> true fija PaidDate a today
//   - true -> false limpia PaidDate
//   - sin cambio deja PaidDate intacta
func (i *Invoice) SetPaid(paid bool, today time.Time) {
	switch {
	case paid && !i.Paid:
		d := DateOf(today)
		i.PaidDate = &d
	case !paid && i.Paid:
		i.PaidDate = nil
	}
	i.Paid = paid
}

// DateOf trunca t a medianoche UTC conservando el día calendario local de t.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
