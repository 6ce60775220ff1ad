package pgxfx

import "time"

type Config struct {
	DSN             string
	ApplicationName string

	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}
