// Package cache is the in-memory mirror of the last known server state.
//
// The old client kept this as ambient reactive subjects scattered across
// services; here it is one explicit component with get/set/subscribe.
// Semantics are deliberately weak: last write wins, no durability, no
// cross-client coordination. It exists so read paths can fall back to
// the most recent server response instead of failing.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/flockhq/flock/pkg/log"
)

const topicPrefix = "cache."

// Update notifies subscribers that a collection was replaced.
type Update struct {
	Collection string
	Payload    []byte
}

// Handler consumes collection updates.
type Handler func(ctx context.Context, update Update) error

// Cache mirrors server collections keyed by name.
type Cache struct {
	mu      sync.RWMutex
	entries map[string][]byte
	pubsub  *gochannel.GoChannel
	logger  *slog.Logger
}

// New returns an empty cache.
func New(logger *slog.Logger) *Cache {
	if logger == nil {
		logger = log.WithModule("cache")
	}

	pubsub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewSlogLogger(logger),
	)

	return &Cache{
		entries: make(map[string][]byte),
		pubsub:  pubsub,
		logger:  logger,
	}
}

// Set replaces a collection with the JSON encoding of v and notifies
// subscribers.
func (c *Cache) Set(collection string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.entries[collection] = payload
	c.mu.Unlock()

	msg := message.NewMessage(watermill.NewUUID(), payload)

	return c.pubsub.Publish(topicPrefix+collection, msg)
}

// Get unmarshals the cached collection into v. It returns false when the
// collection is absent or the stored payload no longer decodes into v.
func (c *Cache) Get(collection string, v any) bool {
	c.mu.RLock()
	payload, ok := c.entries[collection]
	c.mu.RUnlock()

	if !ok {
		return false
	}

	if err := json.Unmarshal(payload, v); err != nil {
		c.logger.Warn("discarding cached collection", "collection", collection, "error", err)

		return false
	}

	return true
}

// Raw returns the cached JSON payload for a collection.
func (c *Cache) Raw(collection string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	payload, ok := c.entries[collection]

	return payload, ok
}

// Subscribe invokes handler for every subsequent Set on the collection,
// until ctx is cancelled. Handler errors are logged, not retried.
func (c *Cache) Subscribe(ctx context.Context, collection string, handler Handler) error {
	messages, err := c.pubsub.Subscribe(ctx, topicPrefix+collection)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			update := Update{Collection: collection, Payload: msg.Payload}

			if err := handler(ctx, update); err != nil {
				c.logger.Warn("cache subscriber failed", "collection", collection, "error", err)
			}

			msg.Ack()
		}
	}()

	return nil
}

// Close shuts down the subscriber channels.
func (c *Cache) Close() error {
	return c.pubsub.Close()
}
