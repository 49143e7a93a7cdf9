package helper

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"quentinhas/model"

	"github.com/redis/go-redis/v9"
)

const eventsChannel = "quentinhas:pedidos"

// Broker fans order events out to connected admin screens. Events are only
// refresh hints; screens re-read the whole sheet when one arrives.
type Broker interface {
	Publish(ctx context.Context, ev model.OrderEvent) error
	Subscribe(ctx context.Context) (<-chan model.OrderEvent, func())
}

var Events Broker = NewLocalBroker()

func publish(ctx context.Context, kind, orderID string) {
	if Events == nil {
		return
	}
	ev := model.OrderEvent{Type: kind, OrderID: orderID, At: Now()}
	if err := Events.Publish(ctx, ev); err != nil {
		log.Printf("Publish %s event for #%s failed: %v", kind, orderID, err)
	}
}

// LocalBroker delivers events inside this process.
type LocalBroker struct {
	mu   sync.Mutex
	subs map[chan model.OrderEvent]struct{}
}

func NewLocalBroker() *LocalBroker {
	return &LocalBroker{subs: map[chan model.OrderEvent]struct{}{}}
}

func (b *LocalBroker) Publish(_ context.Context, ev model.OrderEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
			// slow reader; it will catch up on the next refresh
		}
	}
	return nil
}

func (b *LocalBroker) Subscribe(_ context.Context) (<-chan model.OrderEvent, func()) {
	ch := make(chan model.OrderEvent, 16)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, ch)
			b.mu.Unlock()
			close(ch)
		})
	}
}

// RedisBroker shares events between instances through a pub/sub channel.
type RedisBroker struct {
	client *redis.Client
}

func NewRedisBroker(client *redis.Client) *RedisBroker {
	return &RedisBroker{client: client}
}

func (b *RedisBroker) Publish(ctx context.Context, ev model.OrderEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return b.client.Publish(ctx, eventsChannel, payload).Err()
}

func (b *RedisBroker) Subscribe(ctx context.Context) (<-chan model.OrderEvent, func()) {
	pubsub := b.client.Subscribe(ctx, eventsChannel)
	out := make(chan model.OrderEvent, 16)

	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			var ev model.OrderEvent
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				log.Printf("Bad order event payload: %v", err)
				continue
			}
			select {
			case out <- ev:
			default:
			}
		}
	}()

	var once sync.Once
	return out, func() {
		once.Do(func() { pubsub.Close() })
	}
}
