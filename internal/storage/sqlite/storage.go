package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/shopfront/internal/domain/repository"
)

// Storage keys mirror the ones the store pages agreed on.
const (
	apiKeyStateKey = "shop_api_key"
	cartStateKey   = "cart_good_ids"
)

// Storage is a single-file key-value store holding the client's local
// state: the API credential and the cart. It plays the role browser
// localStorage plays for the web client.
type Storage struct {
	db     *sql.DB
	logger *slog.Logger
}

type keyStore struct {
	storage *Storage
}

type cartStore struct {
	storage *Storage
}

// New opens (or creates) the local state database at path.
func New(path string, logger *slog.Logger) (*Storage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open local state: %w", err)
	}

	storage := &Storage{db: db, logger: logger}
	if err := storage.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases the underlying database handle.
func (s *Storage) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

// Keys returns the credential store backed by this storage.
func (s *Storage) Keys() repository.KeyStore {
	return &keyStore{storage: s}
}

// Cart returns the cart store backed by this storage.
func (s *Storage) Cart() repository.CartStore {
	return &cartStore{storage: s}
}

func (s *Storage) initSchema() error {
	const stmt = `CREATE TABLE IF NOT EXISTS local_state (
        key TEXT PRIMARY KEY,
        value TEXT NOT NULL
    )`
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// get reads a raw value. Read failures degrade to an absent value: local
// state is best-effort and never breaks the caller.
func (s *Storage) get(key string) string {
	var value string
	err := s.db.QueryRow(`SELECT value FROM local_state WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("local state read failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return ""
	}
	return value
}

func (s *Storage) set(key, value string) {
	const stmt = `INSERT INTO local_state (key, value) VALUES (?, ?)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := s.db.Exec(stmt, key, value); err != nil {
		s.logger.Error("local state write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func (s *Storage) delete(key string) {
	if _, err := s.db.Exec(`DELETE FROM local_state WHERE key = ?`, key); err != nil {
		s.logger.Error("local state delete failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// --- KeyStore implementation ---

func (k *keyStore) Get() string {
	return k.storage.get(apiKeyStateKey)
}

func (k *keyStore) Set(token string) {
	k.storage.set(apiKeyStateKey, strings.TrimSpace(token))
}

func (k *keyStore) Clear() {
	k.storage.delete(apiKeyStateKey)
}

// --- CartStore implementation ---

func (c *cartStore) IDs() []int64 {
	raw := c.storage.get(cartStateKey)
	if raw == "" {
		return nil
	}
	return decodeCart(raw)
}

func (c *cartStore) SetIDs(ids []int64) {
	if ids == nil {
		ids = []int64{}
	}
	encoded, err := json.Marshal(ids)
	if err != nil {
		return
	}
	c.storage.set(cartStateKey, string(encoded))
}

func (c *cartStore) Add(id int64) {
	ids := c.IDs()
	for _, existing := range ids {
		if existing == id {
			return
		}
	}
	c.SetIDs(append(ids, id))
}

func (c *cartStore) Remove(id int64) {
	ids := c.IDs()
	kept := ids[:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	c.SetIDs(kept)
}

func (c *cartStore) Clear() {
	c.storage.delete(cartStateKey)
}

// decodeCart parses a stored cart payload. Identifiers may be numbers or
// numeric strings; anything that is not a well-formed array of such values
// reads back as an empty cart.
func decodeCart(raw string) []int64 {
	decoder := json.NewDecoder(strings.NewReader(raw))
	decoder.UseNumber()

	var values []any
	if err := decoder.Decode(&values); err != nil {
		return nil
	}

	ids := make([]int64, 0, len(values))
	for _, v := range values {
		id, ok := coerceID(v)
		if !ok {
			return nil
		}
		ids = append(ids, id)
	}
	return ids
}

func coerceID(v any) (int64, bool) {
	var text string
	switch value := v.(type) {
	case json.Number:
		text = value.String()
	case string:
		text = strings.TrimSpace(value)
	default:
		return 0, false
	}

	if id, err := strconv.ParseInt(text, 10, 64); err == nil {
		return id, true
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return int64(f), true
	}
	return 0, false
}
