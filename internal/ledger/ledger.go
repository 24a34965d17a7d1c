// Package ledger implements the repository for all persisted entities and
// the rules that keep account balances consistent with the transaction log.
//
// Every operation returns either the requested entity or a domain error
// value from the models package. Expected domain conditions never surface
// as panics, and a failed write leaves the database in its pre-call state.
package ledger

import (
	"errors"

	"github.com/pocketledger/backend/internal/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Ledger is the repository for all entities. The database handle is passed
// in explicitly, there is no package level instance.
type Ledger struct {
	db  *gorm.DB
	log zerolog.Logger
}

// New returns a Ledger persisting through db.
func New(db *gorm.DB) *Ledger {
	return &Ledger{
		db:  db,
		log: log.With().Str("component", "ledger").Logger(),
	}
}

// referential converts a failed parent lookup into the referential error
// for that parent. Other errors pass through unchanged.
func referential(err, refErr error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, models.ErrResourceNotFound) {
		return refErr
	}

	return err
}
