package database

import (
	"context"

	"gorm.io/gorm"
)

// Session is the unit of work for a single request. All reads and writes in
// the request go through one transaction; Close releases it on every exit
// path and rolls back anything left uncommitted.
type Session struct {
	db        *gorm.DB
	tx        *gorm.DB
	committed bool
}

func NewSession(ctx context.Context, db *gorm.DB) *Session {
	return &Session{db: db, tx: db.WithContext(ctx).Begin()}
}

// Tx exposes the transaction for queries.
func (s *Session) Tx() *gorm.DB { return s.tx }

// Add stages an insert. It is not durable until Commit.
func (s *Session) Add(entity any) error {
	return s.tx.Create(entity).Error
}

// Commit makes staged changes durable. Constraint violations surface here
// when a conflicting row was committed after our reads.
func (s *Session) Commit() error {
	if err := s.tx.Commit().Error; err != nil {
		return err
	}
	s.committed = true
	return nil
}

// Refresh reloads system-assigned fields (identifier, timestamps) from the
// committed row.
func (s *Session) Refresh(entity any) error {
	return s.db.First(entity).Error
}

// Close rolls back if Commit was never reached. Safe to defer alongside an
// explicit Commit; rolling back a finished transaction is a no-op error
// that gorm swallows.
func (s *Session) Close() {
	if !s.committed {
		s.tx.Rollback()
	}
}
