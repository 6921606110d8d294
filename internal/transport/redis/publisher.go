package redis

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rocketscienceinc/connect4-backend/internal/entity"
)

// Connect opens a client and checks that the server answers.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if _, err := conn.Ping(ctx).Result(); err != nil {
		_ = conn.Close()
		return nil, errors.WithMessage(err, "failed to connect to Redis")
	}

	return conn, nil
}

// Publisher broadcasts game events on a Redis pub/sub channel.
type Publisher struct {
	logger  *zap.Logger
	client  *redis.Client
	channel string
}

func NewPublisher(logger *zap.Logger, client *redis.Client, channel string) *Publisher {
	return &Publisher{
		logger:  logger.With(zap.String("component", "redis"), zap.String("channel", channel)),
		client:  client,
		channel: channel,
	}
}

func (that *Publisher) Publish(ctx context.Context, event entity.Event) error {
	payload, err := jsoniter.Marshal(event)
	if err != nil {
		return errors.WithMessage(err, "failed to marshal event")
	}

	receivers, err := that.client.Publish(ctx, that.channel, payload).Result()
	if err != nil {
		return errors.WithMessagef(err, "failed to publish %s event", event.Type)
	}

	that.logger.Debug("event published", zap.String("type", event.Type), zap.Int64("receivers", receivers))

	return nil
}

// Subscribe streams events from the channel until ctx is done.
func (that *Publisher) Subscribe(ctx context.Context) (<-chan entity.Event, error) {
	pubsub := that.client.Subscribe(ctx, that.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, errors.WithMessage(err, "failed to subscribe")
	}

	events := make(chan entity.Event)

	go func() {
		defer close(events)
		defer pubsub.Close()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case message, ok := <-messages:
				if !ok {
					return
				}

				var event entity.Event
				if err := jsoniter.UnmarshalFromString(message.Payload, &event); err != nil {
					that.logger.Warn("failed to unmarshal event", zap.Error(err))
					continue
				}

				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, nil
}

func (that *Publisher) Close() error {
	return that.client.Close()
}
