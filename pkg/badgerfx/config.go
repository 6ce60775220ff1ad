package badgerfx

import "time"

type Config struct {
	// Dir holds both the LSM tree and the value log.
	Dir string
	// InMemory keeps everything in memory and ignores Dir.
	InMemory bool
	// SyncWrites fsyncs every commit.
	SyncWrites bool
	// GCInterval between value log garbage collections, zero disables them.
	GCInterval time.Duration
}
