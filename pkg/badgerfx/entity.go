package badgerfx

// Entity is a value stored under its own key with optional secondary indexes.
// Every index key stores the primary key as its value.
type Entity interface {
	StorageKey() string
	StorageIndexes() []string
	MarshalStorage() ([]byte, error)
	UnmarshalStorage(data []byte) error
}
