package badgerfx

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

var ErrNotFound = errors.New("entity not found")

type EntityFactory[T Entity] func() T

// Repository stores entities of one type inside transactions owned by the caller.
type Repository[T Entity] struct {
	factory EntityFactory[T]
}

func NewRepository[T Entity](factory EntityFactory[T]) *Repository[T] {
	return &Repository[T]{
		factory: factory,
	}
}

// Read returns the entity stored under key or ErrNotFound.
func (r *Repository[T]) Read(txn *badger.Txn, key string) (T, error) {
	var zero T

	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return zero, ErrNotFound
	}
	if err != nil {
		return zero, fmt.Errorf("failed to get %s: %w", key, err)
	}

	return r.decode(item)
}

// ReadByIndex follows a secondary index to the entity.
func (r *Repository[T]) ReadByIndex(txn *badger.Txn, index string) (T, error) {
	var zero T

	item, err := txn.Get([]byte(index))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return zero, ErrNotFound
	}
	if err != nil {
		return zero, fmt.Errorf("failed to get index %s: %w", index, err)
	}

	key, err := item.ValueCopy(nil)
	if err != nil {
		return zero, fmt.Errorf("failed to read index %s: %w", index, err)
	}

	return r.Read(txn, string(key))
}

// Upsert writes entity, dropping indexes of the version it replaces.
func (r *Repository[T]) Upsert(txn *badger.Txn, entity T) error {
	previous, err := r.Read(txn, entity.StorageKey())
	switch {
	case err == nil:
		if dropErr := r.dropIndexes(txn, previous); dropErr != nil {
			return dropErr
		}
	case !errors.Is(err, ErrNotFound):
		return err
	}

	return r.write(txn, entity)
}

// Delete removes the entity under key with its indexes.
func (r *Repository[T]) Delete(txn *badger.Txn, key string) error {
	entity, err := r.Read(txn, key)
	if err != nil {
		return err
	}

	if dropErr := r.dropIndexes(txn, entity); dropErr != nil {
		return dropErr
	}

	if delErr := txn.Delete([]byte(key)); delErr != nil {
		return fmt.Errorf("failed to delete %s: %w", key, delErr)
	}

	return nil
}

func (r *Repository[T]) write(txn *badger.Txn, entity T) error {
	data, err := entity.MarshalStorage()
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	key := []byte(entity.StorageKey())
	for _, index := range entity.StorageIndexes() {
		if setErr := txn.Set([]byte(index), key); setErr != nil {
			return fmt.Errorf("failed to set index %s: %w", index, setErr)
		}
	}

	if setErr := txn.Set(key, data); setErr != nil {
		return fmt.Errorf("failed to set %s: %w", key, setErr)
	}

	return nil
}

func (r *Repository[T]) dropIndexes(txn *badger.Txn, entity T) error {
	for _, index := range entity.StorageIndexes() {
		if err := txn.Delete([]byte(index)); err != nil {
			return fmt.Errorf("failed to delete index %s: %w", index, err)
		}
	}

	return nil
}

func (r *Repository[T]) decode(item *badger.Item) (T, error) {
	entity := r.factory()
	if err := item.Value(entity.UnmarshalStorage); err != nil {
		var zero T
		return zero, fmt.Errorf("failed to unmarshal %s: %w", item.Key(), err)
	}

	return entity, nil
}
