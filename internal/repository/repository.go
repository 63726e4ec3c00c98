// Package repository mediates every read and write of catalog entities.
//
// A Store wraps one gorm handle. Handlers derive a request-scoped Store with
// WithContext so each request runs on its own session and is cancelled with it.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is matched by every NotFoundError.
var ErrNotFound = errors.New("not found")

// NotFoundError reports that an entity id did not resolve.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFound(entity string, id uint) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// Store bundles the per-entity repositories over one database session.
type Store struct {
	db *gorm.DB

	Games       *GameRepository
	Characters  *CharacterRepository
	MusicThemes *MusicThemeRepository
}

// New creates a Store over db.
func New(db *gorm.DB) *Store {
	return &Store{
		db:          db,
		Games:       &GameRepository{DB: db},
		Characters:  &CharacterRepository{DB: db},
		MusicThemes: &MusicThemeRepository{DB: db},
	}
}

// WithContext returns a Store whose operations run in a new session bound to ctx.
func (s *Store) WithContext(ctx context.Context) *Store {
	return New(s.db.WithContext(ctx))
}

// Transaction runs fn against a Store bound to a single transaction.
// The transaction is rolled back when fn returns an error.
func (s *Store) Transaction(fn func(tx *Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// exists reports whether a row of model with the given primary key is present.
func exists(db *gorm.DB, model any, id uint) (bool, error) {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// first loads the row with the given id into dest, translating a miss into a NotFoundError.
func first(db *gorm.DB, dest any, entity string, id uint) error {
	err := db.First(dest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(entity, id)
	}
	return err
}
