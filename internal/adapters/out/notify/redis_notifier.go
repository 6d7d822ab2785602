// Package notify publishes order lifecycle transitions to a Redis channel.
// Consumers (customer-facing notification services, back-office dashboards)
// subscribe to the channel and react to transitions without coupling to the
// order service's database.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"orderflow/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// DefaultChannel is the pub/sub channel transitions are published to when no
// channel is configured.
const DefaultChannel = "orders.transitions"

// transitionMessage is the wire format of a published transition.
type transitionMessage struct {
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	ActorID     string    `json:"actor_id"`
	ActorName   string    `json:"actor_name"`
	At          time.Time `json:"at"`
}

// RedisTransitionNotifier publishes transition notifications to a Redis
// pub/sub channel. Publishing happens after the owning transaction has
// committed and is best effort: failures are logged and swallowed so a
// notification outage never fails a business operation.
type RedisTransitionNotifier struct {
	client  *redis.Client
	channel string
	logger  *slog.Logger
}

// NewRedisTransitionNotifier creates a notifier publishing to the given
// channel. An empty channel falls back to DefaultChannel.
func NewRedisTransitionNotifier(client *redis.Client, channel string, logger *slog.Logger) *RedisTransitionNotifier {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisTransitionNotifier{
		client:  client,
		channel: channel,
		logger:  logger.With("component", "transition_notifier"),
	}
}

// Notify publishes one transition to the channel.
func (n *RedisTransitionNotifier) Notify(ctx context.Context, notification ports.TransitionNotification) {
	payload, err := json.Marshal(transitionMessage{
		OrderID:     notification.OrderID,
		OrderNumber: notification.OrderNumber,
		From:        notification.From.String(),
		To:          notification.To.String(),
		ActorID:     notification.ActorID,
		ActorName:   notification.ActorName,
		At:          notification.At,
	})
	if err != nil {
		n.logger.ErrorContext(ctx, "Failed to encode transition notification",
			"order_id", notification.OrderID, "error", err)
		return
	}

	if err := n.client.Publish(ctx, n.channel, payload).Err(); err != nil {
		n.logger.WarnContext(ctx, "Failed to publish transition notification",
			"order_id", notification.OrderID,
			"from", notification.From.String(),
			"to", notification.To.String(),
			"error", err)
	}
}
