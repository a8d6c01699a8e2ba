package stock

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Stable keys under which the two collections are stored.
const (
	CatalogKey = "electro_products"
	LedgerKey  = "electro_transactions"
)

// KV is an opaque key-value persistence port. Get must return an error
// wrapping fs.ErrNotExist when the key has never been set.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// Store persists the catalog and the ledger as two independent JSONL
// collections in a KV.
type Store struct {
	kv KV
}

// NewStore creates a Store on top of kv.
func NewStore(kv KV) *Store { return &Store{kv: kv} }

// LoadCatalog reads the catalog. It returns an error wrapping fs.ErrNotExist
// when no catalog was ever saved.
func (s *Store) LoadCatalog() ([]StockItem, error) {
	data, err := s.kv.Get(CatalogKey)
	if err != nil {
		return nil, fmt.Errorf("could not read catalog: %w", err)
	}
	items, err := DecodeCatalog(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("could not decode catalog: %w", err)
	}
	return items, nil
}

// SaveCatalog writes the whole catalog.
func (s *Store) SaveCatalog(items []StockItem) error {
	var b bytes.Buffer
	if err := EncodeCatalog(&b, items); err != nil {
		return fmt.Errorf("could not encode catalog: %w", err)
	}
	if err := s.kv.Set(CatalogKey, b.Bytes()); err != nil {
		return fmt.Errorf("could not write catalog: %w", err)
	}
	return nil
}

// LoadLedger reads the ledger. It returns an error wrapping fs.ErrNotExist
// when no ledger was ever saved.
func (s *Store) LoadLedger() ([]LedgerEntry, error) {
	data, err := s.kv.Get(LedgerKey)
	if err != nil {
		return nil, fmt.Errorf("could not read ledger: %w", err)
	}
	entries, err := DecodeLedger(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger: %w", err)
	}
	return entries, nil
}

// SaveLedger writes the whole ledger, entries in chronological order.
func (s *Store) SaveLedger(entries []LedgerEntry) error {
	var b bytes.Buffer
	if err := EncodeLedger(&b, entries); err != nil {
		return fmt.Errorf("could not encode ledger: %w", err)
	}
	if err := s.kv.Set(LedgerKey, b.Bytes()); err != nil {
		return fmt.Errorf("could not write ledger: %w", err)
	}
	return nil
}

// Dir is a KV storing each key in a file "<key>.jsonl" of a folder. The
// folder is created on the first Set.
type Dir string

// Get reads the file of key.
func (d Dir) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(d.path(key))
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", d.path(key), err)
	}
	return data, nil
}

// Set replaces the file of key. The content is written to a temporary file
// first and renamed, so that a failed write never truncates the previous
// state.
func (d Dir) Set(key string, value []byte) error {
	filePath := d.path(key)
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("could not create directory for %q: %w", filePath, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(filePath), "."+key+"-*")
	if err != nil {
		return fmt.Errorf("error opening %q for writing: %w", filePath, err)
	}
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("error writing %q: %w", filePath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("error closing %q: %w", filePath, err)
	}
	if err := os.Rename(tmp.Name(), filePath); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("error replacing %q: %w", filePath, err)
	}
	return nil
}

func (d Dir) path(key string) string { return filepath.Join(string(d), key+".jsonl") }

// MemKV is an in-memory KV, mostly useful in tests.
type MemKV struct {
	mu   sync.Mutex
	data map[string][]byte
	// Fail, when set, is returned by every Set.
	Fail error
}

// Get returns a copy of the value of key.
func (m *MemKV) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", key, fs.ErrNotExist)
	}
	return bytes.Clone(v), nil
}

// Set stores a copy of value under key.
func (m *MemKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return m.Fail
	}
	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	m.data[key] = bytes.Clone(value)
	return nil
}

// isNotExist reports whether err means that nothing was ever saved.
func isNotExist(err error) bool { return errors.Is(err, fs.ErrNotExist) }
