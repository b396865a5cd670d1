package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/biztime-api/internal/domain"
)

func TestColumnFromConstraint(t *testing.T) {
	cases := map[string]string{
		"invoices_amt_check":                    "amt",
		"invoices_comp_code_fkey":               "comp_code",
		"company_industries_company_code_fkey":  "company_code",
		"company_industries_industry_code_fkey": "industry_code",
		"companies_name_key":                    "name",
		"industries_pkey":                       "pkey",
		"custom_constraint":                     "custom_constraint",
	}
	for in, want := range cases {
		assert.Equal(t, want, columnFromConstraint(in), in)
	}
}

func TestClassify_PorSQLSTATE(t *testing.T) {
	wrap := func(code, constraint string) error {
		return fmt.Errorf("exec: %w", &pgconn.PgError{Code: code, ConstraintName: constraint})
	}

	cases := []struct {
		name  string
		err   error
		kind  error
		field string
	}{
		{"unicidad", wrap("23505", "companies_name_key"), domain.ErrConflict, "name"},
		{"fk", wrap("23503", "invoices_comp_code_fkey"), domain.ErrNotFound, "comp_code"},
		{"check", wrap("23514", "invoices_amt_check"), domain.ErrInvalidInput, "amt"},
		{"texto invalido", wrap("22P02", ""), domain.ErrInvalidInput, ""},
		{"otro sqlstate", wrap("40001", ""), domain.ErrUnexpected, ""},
		{"no postgres", errors.New("conn reset"), domain.ErrUnexpected, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := classify("op", tc.err)
			assert.ErrorIs(t, err, tc.kind)

			var de *domain.Error
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tc.field, de.Field)
		})
	}
}

func TestClassify_RespetaErroresDeDominio(t *testing.T) {
	orig := domain.CompanyNotFound("acme")
	assert.Same(t, orig, classify("op", orig))
}

func TestIsUniqueViolation_NoUsaTextoDelMensaje(t *testing.T) {
	assert.False(t, isUniqueViolation(errors.New("ERROR: 23505 duplicate key")),
		"la clasificación debe basarse en el código SQLSTATE, no en el texto")
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
}
