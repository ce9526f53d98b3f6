// Package recipe contains the core domain logic for generated recipes.
// This follows Domain-Driven Design principles with rich domain models.
package recipe

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kondate-ai/kondate/internal/domain/nutrition"
	"github.com/kondate-ai/kondate/internal/domain/shared"
)

// RequestInputs captures the exact form values a recipe was generated
// from. Kept verbatim for the history view.
type RequestInputs struct {
	Ingredients string `json:"ingredients"`
	Genre       string `json:"genre,omitempty"`
	Purpose     string `json:"purpose,omitempty"`
	CookingTime int    `json:"cooking_time_minutes"`
	Allergies   string `json:"allergies,omitempty"`
}

// Record represents one recipe generation event: the inputs used, the
// raw AI response, and the nutrition reading extracted from it. Records
// are immutable once created; the session log only appends them.
type Record struct {
	id        uuid.UUID
	createdAt time.Time
	inputs    RequestInputs
	text      string
	nutrition nutrition.Reading

	// Domain events to be dispatched
	events []shared.DomainEvent
}

// NewRecord creates a Record for a successful generation.
func NewRecord(inputs RequestInputs, text string, reading nutrition.Reading) (*Record, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyRecipeText
	}

	now := time.Now()
	record := &Record{
		id:        uuid.New(),
		createdAt: now,
		inputs:    inputs,
		text:      text,
		nutrition: reading,
		events:    []shared.DomainEvent{},
	}

	record.addEvent(GeneratedEvent{
		RecordID:    record.id,
		Name:        record.Name(),
		GeneratedAt: now,
	})

	return record, nil
}

// ID returns the record's unique identifier
func (r *Record) ID() uuid.UUID {
	return r.id
}

// CreatedAt returns when the recipe was generated
func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}

// Inputs returns the form values the recipe was generated from
func (r *Record) Inputs() RequestInputs {
	return r.inputs
}

// Text returns the raw AI response
func (r *Record) Text() string {
	return r.text
}

// Nutrition returns the reading extracted from the response text
func (r *Record) Nutrition() nutrition.Reading {
	return r.nutrition
}

// Name derives the recipe name from the response text.
func (r *Record) Name() string {
	return NameFromText(r.text)
}

// LedgerRow projects the record into its nutrition ledger row.
func (r *Record) LedgerRow() LedgerRow {
	return LedgerRow{
		Date:     r.createdAt.Format(LedgerDateLayout),
		Name:     r.Name(),
		Calories: r.nutrition.Calories,
		Protein:  r.nutrition.Protein,
		Fat:      r.nutrition.Fat,
		Carbs:    r.nutrition.Carbs,
	}
}

// addEvent adds a domain event to be dispatched
func (r *Record) addEvent(event shared.DomainEvent) {
	r.events = append(r.events, event)
}

// Events returns and clears pending domain events
func (r *Record) Events() []shared.DomainEvent {
	events := r.events
	r.events = []shared.DomainEvent{}
	return events
}
