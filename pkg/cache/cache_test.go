package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roster struct {
	Names []string `json:"names"`
}

func TestCache_SetAndGet(t *testing.T) {
	c := New(nil)
	defer func() { _ = c.Close() }()

	require.NoError(t, c.Set("members", roster{Names: []string{"Ana", "Ben"}}))

	var got roster

	require.True(t, c.Get("members", &got))
	assert.Equal(t, []string{"Ana", "Ben"}, got.Names)
}

func TestCache_GetMissingCollection(t *testing.T) {
	c := New(nil)
	defer func() { _ = c.Close() }()

	var got roster

	assert.False(t, c.Get("members", &got))
}

func TestCache_LastWriteWins(t *testing.T) {
	c := New(nil)
	defer func() { _ = c.Close() }()

	require.NoError(t, c.Set("members", roster{Names: []string{"Ana"}}))
	require.NoError(t, c.Set("members", roster{Names: []string{"Ben"}}))

	var got roster

	require.True(t, c.Get("members", &got))
	assert.Equal(t, []string{"Ben"}, got.Names)
}

func TestCache_MismatchedShapeReportsAbsent(t *testing.T) {
	c := New(nil)
	defer func() { _ = c.Close() }()

	require.NoError(t, c.Set("members", "just a string"))

	var got roster

	assert.False(t, c.Get("members", &got))
}

func TestCache_SubscribeReceivesUpdates(t *testing.T) {
	c := New(nil)
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan Update, 1)

	require.NoError(t, c.Subscribe(ctx, "members", func(_ context.Context, update Update) error {
		received <- update

		return nil
	}))

	require.NoError(t, c.Set("members", roster{Names: []string{"Ana"}}))

	select {
	case update := <-received:
		assert.Equal(t, "members", update.Collection)
		assert.JSONEq(t, `{"names":["Ana"]}`, string(update.Payload))
	case <-time.After(2 * time.Second):
		t.Fatal("no cache update delivered")
	}
}
