package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

var (
	hoy  = time.Date(2026, 10, 17, 15, 30, 0, 0, time.UTC)
	ayer = time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
)

func TestSetPaid_NoPagadaAPagadaFijaFecha(t *testing.T) {
	inv := &entity.Invoice{ID: 1, Amt: decimal.NewFromInt(100)}

	inv.SetPaid(true, hoy)

	assert.True(t, inv.Paid)
	require.NotNil(t, inv.PaidDate)
	assert.Equal(t, entity.DateOf(hoy), *inv.PaidDate)
}

func TestSetPaid_PagadaANoPagadaLimpiaFecha(t *testing.T) {
	d := ayer
	inv := &entity.Invoice{ID: 1, Paid: true, PaidDate: &d}

	inv.SetPaid(false, hoy)

	assert.False(t, inv.Paid)
	assert.Nil(t, inv.PaidDate)
}

func TestSetPaid_SinCambioConservaFecha(t *testing.T) {
	d := ayer
	pagada := &entity.Invoice{ID: 1, Paid: true, PaidDate: &d}
	pagada.SetPaid(true, hoy)
	require.NotNil(t, pagada.PaidDate)
	assert.Equal(t, ayer, *pagada.PaidDate, "repetir paid=true no debe mover la fecha")

	pendiente := &entity.Invoice{ID: 2}
	pendiente.SetPaid(false, hoy)
	assert.False(t, pendiente.Paid)
	assert.Nil(t, pendiente.PaidDate)
}

func TestDateOf_TruncaHora(t *testing.T) {
	bogota := time.FixedZone("COT", -5*3600)
	tarde := time.Date(2026, 10, 17, 22, 0, 0, 0, bogota) // 03:00 UTC del día 18

	assert.Equal(t, time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), entity.DateOf(tarde))
}
