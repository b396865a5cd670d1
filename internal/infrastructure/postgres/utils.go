package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/biztime-api/internal/domain"
)

// SQLSTATE relevantes (https://www.postgresql.org/docs/current/errcodes-appendix.html).
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
	codeInvalidTextRepr     = "22P02"
	codeNumericOutOfRange   = "22003"
)

func pgCode(err error) (string, *pgconn.PgError) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr
	}
	return "", nil
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	code, _ := pgCode(err)
	return code == codeUniqueViolation
}

// isForeignKeyViolation verifica si un error es una violación de FK (23503).
func isForeignKeyViolation(err error) bool {
	code, _ := pgCode(err)
	return code == codeForeignKeyViolation
}

// constraintName devuelve la constraint que originó el error, o "".
func constraintName(err error) string {
	if _, pgErr := pgCode(err); pgErr != nil {
		return pgErr.ConstraintName
	}
	return ""
}

// isInputViolation agrupa los errores atribuibles a datos de entrada (CHECK, NOT NULL, tipos).
func isInputViolation(err error) bool {
	switch code, _ := pgCode(err); code {
	case codeCheckViolation, codeNotNullViolation, codeInvalidTextRepr, codeNumericOutOfRange:
		return true
	}
	return false
}

// classify traduce un error de PostgreSQL a un error de dominio genérico. Los
// repositorios tratan antes los casos con mensaje específico (unicidad, FK).
func classify(op string, err error) error {
	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}
	switch {
	case isUniqueViolation(err):
		return &domain.Error{Kind: domain.ErrConflict, Field: columnFromConstraint(constraintName(err)), Message: "duplicate value", Err: err}
	case isForeignKeyViolation(err):
		return &domain.Error{Kind: domain.ErrNotFound, Field: columnFromConstraint(constraintName(err)), Message: "referenced record not found", Err: err}
	case isInputViolation(err):
		_, pgErr := pgCode(err)
		field := pgErr.ColumnName
		if field == "" {
			field = columnFromConstraint(pgErr.ConstraintName)
		}
		return &domain.Error{Kind: domain.ErrInvalidInput, Field: field, Message: "invalid value for " + nonEmpty(field, "input"), Err: err}
	}
	return domain.Unexpected(op, err)
}

// columnFromConstraint extrae la columna de nombres por defecto de PostgreSQL:
// invoices_amt_check -> amt, company_industries_company_code_fkey -> company_code.
func columnFromConstraint(name string) string {
	for _, table := range []string{"company_industries_", "invoices_", "companies_", "industries_"} {
		if strings.HasPrefix(name, table) {
			name = strings.TrimPrefix(name, table)
			break
		}
	}
	for _, suffix := range []string{"_fkey", "_check", "_pkey", "_key"} {
		if strings.HasSuffix(name, suffix) {
			return strings.TrimSuffix(name, suffix)
		}
	}
	return name
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
