// Package memory provides the in-memory session log implementation
package memory

import (
	"sync"

	"github.com/kondate-ai/kondate/internal/domain/recipe"
	"github.com/kondate-ai/kondate/internal/ports/outbound"
)

// RecipeLog implements the append-only session log. Records and ledger
// rows are appended under one lock so their counts can never diverge.
type RecipeLog struct {
	records []*recipe.Record
	ledger  []recipe.LedgerRow
	mutex   sync.RWMutex
}

// NewRecipeLog creates an empty session log
func NewRecipeLog() outbound.RecipeLog {
	return &RecipeLog{}
}

// Append stores one record and its ledger row atomically
func (l *RecipeLog) Append(record *recipe.Record) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.records = append(l.records, record)
	l.ledger = append(l.ledger, record.LedgerRow())
	return nil
}

// Records returns all records in insertion order
func (l *RecipeLog) Records() []*recipe.Record {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	records := make([]*recipe.Record, len(l.records))
	copy(records, l.records)
	return records
}

// LedgerRows returns all ledger rows in insertion order
func (l *RecipeLog) LedgerRows() []recipe.LedgerRow {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	rows := make([]recipe.LedgerRow, len(l.ledger))
	copy(rows, l.ledger)
	return rows
}
