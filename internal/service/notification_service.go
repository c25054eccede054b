package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/healthcare-blog/internal/config"
	"github.com/spec-kit/healthcare-blog/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotifyConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotifyConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventPostCreated, n.handlePostEvent)
	n.dispatcher.Subscribe(events.EventPostUpdated, n.handlePostEvent)
	n.dispatcher.Subscribe(events.EventPostDeleted, n.handlePostEvent)
	n.dispatcher.Subscribe(events.EventConsultationBooked, n.handleConsultationBooked)
}

func (n *NotificationService) handlePostEvent(ctx context.Context, event events.Event) error {
	n.logger.Info(string(event.Type), zap.String("event_id", event.ID), zap.Any("payload", event.Payload))
	n.sendWebhookStub(ctx, event)
	return nil
}

func (n *NotificationService) handleConsultationBooked(ctx context.Context, event events.Event) error {
	n.logger.Info("ConsultationBooked", zap.String("event_id", event.ID), zap.Any("payload", event.Payload))
	n.sendWebhookStub(ctx, event)
	return nil
}

// sendWebhookStub stands in for a real webhook integration; it only logs
// the delivery that would happen.
func (n *NotificationService) sendWebhookStub(_ context.Context, event events.Event) {
	if n.cfg.WebhookURL == "" {
		return
	}
	n.logger.Info("webhook notification",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event", string(event.Type)),
	)
}
