package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/spendwise/spendwise-client/internal/logger"
	"github.com/spendwise/spendwise-client/models"
)

const (
	saveToken = `
		INSERT INTO session (id, token, saved_at)
		VALUES (1, $1, $2)
		ON CONFLICT(id) DO UPDATE SET
			token    = excluded.token,
			saved_at = excluded.saved_at;`

	loadToken = `
		SELECT token
		FROM session
		WHERE id = 1;`

	clearToken = `
		DELETE FROM session
		WHERE id = 1;`
)

// tokenRepository is the SQLite-backed implementation of [TokenStore]. The
// session table holds at most one row (id is pinned to 1), so an upsert is
// enough to satisfy the overwrite semantics of Save.
type tokenRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTokenRepository constructs a [TokenStore] backed by the provided
// database connection and logger.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenStore {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

// Save implements [TokenStore]. It upserts the single session row.
func (r *tokenRepository) Save(ctx context.Context, token models.Token) error {
	if _, err := r.db.ExecContext(ctx, saveToken, string(token), time.Now().UTC()); err != nil {
		r.logger.Err(err).Str("func", "*tokenRepository.Save").Msg("error saving session token")
		return fmt.Errorf("%w: save token: %v", ErrStorage, err)
	}

	return nil
}

// Load implements [TokenStore]. An empty result set is the normal
// "logged out" answer and maps to [ErrTokenNotFound]; every other failure is
// a storage fault.
func (r *tokenRepository) Load(ctx context.Context) (models.Token, error) {
	var value string
	err := r.db.QueryRowContext(ctx, loadToken).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*tokenRepository.Load").Msg("error loading session token")
		return "", fmt.Errorf("%w: load token: %v", ErrStorage, err)
	}

	return models.Token(value), nil
}

// Clear implements [TokenStore]. Deleting from an already-empty table
// affects zero rows and is not an error, which makes Clear idempotent.
func (r *tokenRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, clearToken); err != nil {
		r.logger.Err(err).Str("func", "*tokenRepository.Clear").Msg("error clearing session token")
		return fmt.Errorf("%w: clear token: %v", ErrStorage, err)
	}

	return nil
}
