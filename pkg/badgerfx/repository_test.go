package badgerfx_test

import (
	"encoding/json"
	"testing"

	"github.com/bakerypro/bakerypro/pkg/badgerfx"
	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (n *note) StorageKey() string                 { return "note:" + n.ID }
func (n *note) StorageIndexes() []string           { return []string{"note:email:" + n.Email} }
func (n *note) MarshalStorage() ([]byte, error)    { return json.Marshal(n) }
func (n *note) UnmarshalStorage(data []byte) error { return json.Unmarshal(data, n) }

func openRepo(t *testing.T) (*badger.DB, *badgerfx.Repository[*note]) {
	t.Helper()

	db, err := badgerfx.Open(badgerfx.Config{InMemory: true}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db, badgerfx.NewRepository(func() *note { return new(note) })
}

func TestRepository_UpsertReplacesIndexes(t *testing.T) {
	db, repo := openRepo(t)

	require.NoError(t, db.Update(func(txn *badger.Txn) error {
		return repo.Upsert(txn, &note{ID: "1", Email: "old@example.com"})
	}))
	require.NoError(t, db.Update(func(txn *badger.Txn) error {
		return repo.Upsert(txn, &note{ID: "1", Email: "new@example.com"})
	}))

	require.NoError(t, db.View(func(txn *badger.Txn) error {
		found, err := repo.ReadByIndex(txn, "note:email:new@example.com")
		require.NoError(t, err)
		assert.Equal(t, "1", found.ID)

		_, err = repo.ReadByIndex(txn, "note:email:old@example.com")
		assert.ErrorIs(t, err, badgerfx.ErrNotFound)
		return nil
	}))
}

func TestRepository_Delete(t *testing.T) {
	db, repo := openRepo(t)

	require.NoError(t, db.Update(func(txn *badger.Txn) error {
		return repo.Upsert(txn, &note{ID: "1", Email: "a@example.com"})
	}))
	require.NoError(t, db.Update(func(txn *badger.Txn) error {
		return repo.Delete(txn, "note:1")
	}))

	require.NoError(t, db.View(func(txn *badger.Txn) error {
		_, err := repo.Read(txn, "note:1")
		assert.ErrorIs(t, err, badgerfx.ErrNotFound)

		_, err = repo.ReadByIndex(txn, "note:email:a@example.com")
		assert.ErrorIs(t, err, badgerfx.ErrNotFound)
		return nil
	}))

	err := db.Update(func(txn *badger.Txn) error {
		return repo.Delete(txn, "note:1")
	})
	assert.ErrorIs(t, err, badgerfx.ErrNotFound)
}
