package bus

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetdesk/internal/domain/service"
)

func newTestBus() service.EventBus {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBus_DeliversToAllSubscribers(t *testing.T) {
	b := newTestBus()
	defer b.Close()

	ch1, unsub1 := b.Subscribe("view-1")
	ch2, unsub2 := b.Subscribe("view-2")
	defer unsub1()
	defer unsub2()

	b.Publish(context.Background(), &service.ReminderEvent{Kind: service.EventCreated})

	for _, ch := range []<-chan *service.ReminderEvent{ch1, ch2} {
		select {
		case ev := <-ch:
			assert.Equal(t, service.EventCreated, ev.Kind)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestBus_UnsubscribeClosesChannel(t *testing.T) {
	b := newTestBus()
	defer b.Close()

	ch, unsub := b.Subscribe("view")
	unsub()
	unsub() // idempotent

	_, open := <-ch
	require.False(t, open)

	// Publishing after unsubscribe must not panic.
	b.Publish(context.Background(), &service.ReminderEvent{Kind: service.EventDeleted})
}

func TestBus_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	b := newTestBus()
	defer b.Close()

	_, unsub := b.Subscribe("stalled")
	defer unsub()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < subscriberBuffer*2; i++ {
			b.Publish(context.Background(), &service.ReminderEvent{Kind: service.EventUpdated})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a stalled subscriber")
	}
}

func TestBus_CloseStopsDelivery(t *testing.T) {
	b := newTestBus()
	ch, _ := b.Subscribe("view")
	b.Close()

	_, open := <-ch
	assert.False(t, open)
}

func TestTriggersReload(t *testing.T) {
	tests := []struct {
		kind service.ReminderEventKind
		want bool
	}{
		{service.EventCreated, true},
		{service.EventUpdated, true},
		{service.EventToggledActive, true},
		{service.EventToggledComplete, true},
		{service.EventDeleted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			ev := &service.ReminderEvent{Kind: tt.kind}
			assert.Equal(t, tt.want, ev.TriggersReload())
		})
	}
}
