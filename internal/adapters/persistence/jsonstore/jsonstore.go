// Package jsonstore persists full-collection snapshots as JSON files, one
// file per collection. Writes go to a temporary file first and are renamed
// into place, so a crash mid-write never corrupts the previous snapshot.
package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/coopware/thrift_association_app/internal/apperrors"
	"github.com/coopware/thrift_association_app/internal/core/domain"
	portsrepo "github.com/coopware/thrift_association_app/internal/core/ports/repositories"
)

const (
	membersFile      = "members.json"
	transactionsFile = "transactions.json"
	loansFile        = "loans.json"
	usersFile        = "users.json"
)

var collectionFiles = []string{membersFile, transactionsFile, loansFile, usersFile}

// Store is the JSON snapshot gateway.
type Store struct {
	dir string
}

var _ portsrepo.SnapshotRepository = (*Store)(nil)

// New creates the data directory if needed and returns a store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory %s: %w", dir, apperrors.ErrPersistence)
	}
	return &Store{dir: dir}, nil
}

type meta struct {
	SnapshotID string    `json:"snapshotID"`
	SavedAt    time.Time `json:"savedAt"`
	Count      int       `json:"count"`
}

type envelope[T any] struct {
	Meta    meta `json:"meta"`
	Records []T  `json:"records"`
}

func save[T any](dir, name string, records []T) error {
	env := envelope[T]{
		Meta: meta{
			SnapshotID: uuid.NewString(),
			SavedAt:    time.Now(),
			Count:      len(records),
		},
		Records: records,
	}

	path := filepath.Join(dir, name)
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating %s: %v: %w", tmp, err, apperrors.ErrPersistence)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %v: %w", name, err, apperrors.ErrPersistence)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %v: %w", tmp, err, apperrors.ErrPersistence)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing %s: %v: %w", path, err, apperrors.ErrPersistence)
	}
	return nil
}

// load reads a snapshot file; a file that does not exist yet is an empty
// collection, not an error.
func load[T any](dir, name string) ([]T, error) {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening %s: %v: %w", name, err, apperrors.ErrPersistence)
	}
	defer f.Close()

	var env envelope[T]
	if err := json.NewDecoder(f).Decode(&env); err != nil {
		return nil, fmt.Errorf("decoding %s: %v: %w", name, err, apperrors.ErrPersistence)
	}
	return env.Records, nil
}

func (s *Store) SaveMembers(_ context.Context, members []*domain.Member) error {
	return save(s.dir, membersFile, members)
}

func (s *Store) LoadMembers(_ context.Context) ([]*domain.Member, error) {
	return load[*domain.Member](s.dir, membersFile)
}

func (s *Store) SaveTransactions(_ context.Context, transactions []domain.Transaction) error {
	return save(s.dir, transactionsFile, transactions)
}

func (s *Store) LoadTransactions(_ context.Context) ([]domain.Transaction, error) {
	return load[domain.Transaction](s.dir, transactionsFile)
}

func (s *Store) SaveLoans(_ context.Context, loans []*domain.Loan) error {
	return save(s.dir, loansFile, loans)
}

func (s *Store) LoadLoans(_ context.Context) ([]*domain.Loan, error) {
	return load[*domain.Loan](s.dir, loansFile)
}

func (s *Store) SaveUsers(_ context.Context, users []*domain.User) error {
	return save(s.dir, usersFile, users)
}

func (s *Store) LoadUsers(_ context.Context) ([]*domain.User, error) {
	return load[*domain.User](s.dir, usersFile)
}

// CreateBackup copies the current snapshot files into a timestamped
// directory under the data dir. Files that have never been written are
// skipped.
func (s *Store) CreateBackup(_ context.Context) (string, error) {
	backupDir := filepath.Join(s.dir, "backup_"+time.Now().Format("20060102T150405"))
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return "", fmt.Errorf("creating backup directory: %v: %w", err, apperrors.ErrPersistence)
	}

	for _, name := range collectionFiles {
		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", fmt.Errorf("reading %s for backup: %v: %w", name, err, apperrors.ErrPersistence)
		}
		if err := os.WriteFile(filepath.Join(backupDir, name), data, 0o644); err != nil {
			return "", fmt.Errorf("writing backup of %s: %v: %w", name, err, apperrors.ErrPersistence)
		}
	}
	return backupDir, nil
}
