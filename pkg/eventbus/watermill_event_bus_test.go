package eventbus_test

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flockhq/flock/pkg/channels/gochannel"
	"github.com/flockhq/flock/pkg/eventbus"
	"github.com/flockhq/flock/pkg/events"
	"github.com/flockhq/flock/pkg/models"
)

func TestWatermillEventBus_PublishAndHandle(t *testing.T) {
	pub, sub, err := gochannel.CreateTestChannel(watermill.NopLogger{})
	require.NoError(t, err)

	bus := eventbus.NewWatermillEventBus(pub, sub)
	defer func() { _ = bus.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan *events.WorkflowStatusChanged, 1)

	require.NoError(t, bus.Handle(events.WorkflowStatusChangedEvent, func(_ context.Context, event any) error {
		statusChanged, ok := event.(*events.WorkflowStatusChanged)
		require.True(t, ok)

		received <- statusChanged

		return nil
	}))
	require.NoError(t, bus.Subscribe(ctx))

	err = bus.Publish(ctx, "w1", events.WorkflowStatusChanged{
		BaseEvent:  events.NewBaseEvent(events.WorkflowStatusChangedEvent),
		WorkflowID: "w1",
		From:       models.WorkflowStatusDraft,
		To:         models.WorkflowStatusActive,
	})
	require.NoError(t, err)

	select {
	case event := <-received:
		assert.Equal(t, "w1", event.WorkflowID)
		assert.Equal(t, models.WorkflowStatusActive, event.To)
	case <-time.After(2 * time.Second):
		t.Fatal("no event delivered")
	}
}

func TestWatermillEventBus_UnhandledTypeIsAcked(t *testing.T) {
	pub, sub, err := gochannel.CreateTestChannel(watermill.NopLogger{})
	require.NoError(t, err)

	bus := eventbus.NewWatermillEventBus(pub, sub)
	defer func() { _ = bus.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, bus.Subscribe(ctx))

	// No handler registered: publishing must not block or error.
	err = bus.Publish(ctx, "s1", events.SessionCreated{
		BaseEvent: events.NewBaseEvent(events.SessionCreatedEvent),
		SessionID: "s1",
	})
	assert.NoError(t, err)
}
