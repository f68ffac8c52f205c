package snapshot

import "errors"

var (
	// ErrNotFound is returned by Load when no snapshot exists for the id.
	ErrNotFound = errors.New("snapshot not found")
	// ErrEmptyID is returned when an instance id is the empty string.
	ErrEmptyID = errors.New("empty snapshot id")

	ErrFailedToParseRedisURL    = errors.New("failed to parse redis connection string")
	ErrRedisNotReady            = errors.New("redis did not become ready within the given time period")
	ErrFailedToParsePostgresURL = errors.New("failed to parse postgres connection string")
	ErrPostgresNotReady         = errors.New("postgres did not become ready within the given time period")
	ErrMongoNotReady            = errors.New("mongo did not become ready within the given time period")
)
