package storage

import (
	"fmt"
	"strings"
	"time"
)

// Package storage provides the local seen-story ledger used to keep
// collector and watcher runs idempotent across restarts.

// Store tracks story IDs already forwarded downstream.
type Store interface {
	Close() error
	SeenStory(id string) (bool, error)
	MarkStory(id string) error
}

// Options controls retention characteristics for concrete store implementations.
type Options struct {
	StoryTTL        time.Duration
	CleanupInterval time.Duration
}

const (
	defaultStoryTTL        = 5 * 24 * time.Hour
	defaultCleanupInterval = 12 * time.Hour
)

// NewStore creates the configured storage backend.
func NewStore(typ, path string, opts Options) (Store, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))
	opts = normalizeOptions(opts)

	switch typ {
	case "", "none", "disabled":
		return noopStore{}, nil
	case "bbolt":
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt storage requires a path")
		}
		return openBolt(path, opts)
	default:
		return nil, fmt.Errorf("unsupported storage type %q", typ)
	}
}

func normalizeOptions(opts Options) Options {
	if opts.StoryTTL <= 0 {
		opts.StoryTTL = defaultStoryTTL
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = defaultCleanupInterval
	}
	return opts
}

type noopStore struct{}

func (noopStore) Close() error                   { return nil }
func (noopStore) SeenStory(string) (bool, error) { return false, nil }
func (noopStore) MarkStory(string) error         { return nil }
