package usecase_test

import (
	"context"
	"sync"

	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// recorder registra los eventos emitidos por los casos de uso.
type recorder struct {
	mu       sync.Mutex
	created  []string
	deleted  []string
	payments []bool
}

func (r *recorder) EntityCreated(e string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, e)
}

func (r *recorder) EntityDeleted(e string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleted = append(r.deleted, e)
}

func (r *recorder) InvoicePaymentChanged(paid bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments = append(r.payments, paid)
}

// inlineTx ejecuta fn sobre el mismo repositorio, sin transacción real.
type inlineTx struct {
	repo  repository.InvoiceRepository
	calls int
}

func (tx *inlineTx) RunInvoices(_ context.Context, fn func(repository.InvoiceRepository) error) error {
	tx.calls++
	return fn(tx.repo)
}
