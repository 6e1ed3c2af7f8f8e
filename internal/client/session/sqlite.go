package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/siteadmin/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/siteadmin/internal/dbx"
)

// SQLiteStore persists the session in the local metadata table so it
// survives restarts until an explicit logout.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) repo() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

func (s *SQLiteStore) get(ctx context.Context, key string) (string, error) {
	v, err := s.repo().Get(ctx, key)
	if errors.Is(err, metadata.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}
	return v, nil
}

func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	return s.get(ctx, TokenKey)
}

func (s *SQLiteStore) Username(ctx context.Context) (string, error) {
	return s.get(ctx, UsernameKey)
}

func (s *SQLiteStore) SetToken(ctx context.Context, token string) error {
	if err := s.repo().Set(ctx, TokenKey, token); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// SetSession stores token and username together.
func (s *SQLiteStore) SetSession(ctx context.Context, token, username string) error {
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, TokenKey, token); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
		if err := repo.Set(ctx, UsernameKey, username); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
		return nil
	})
}

// Clear removes the session keys and nothing else.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		for _, key := range []string{TokenKey, UsernameKey} {
			if err := repo.Delete(ctx, key); err != nil {
				return fmt.Errorf("clear session: %w", err)
			}
		}
		return nil
	})
}
