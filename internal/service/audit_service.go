package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/clubhub/club-service/internal/events"
)

// AuditService records auth and club lifecycle events in the structured log.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventUserRegistered, a.handle)
	a.dispatcher.Subscribe(events.EventUserLoggedIn, a.handle)
	a.dispatcher.Subscribe(events.EventTokensRefreshed, a.handle)
	a.dispatcher.Subscribe(events.EventMemberCreated, a.handle)
	a.dispatcher.Subscribe(events.EventPaymentRecorded, a.handle)
}

func (a *AuditService) handle(_ context.Context, event events.Event) error {
	a.logger.Info("audit",
		zap.String("event", string(event.Type)),
		zap.String("event_id", event.ID),
		zap.String("user_id", event.UserID),
		zap.String("club_id", event.ClubID),
		zap.Any("payload", event.Payload),
	)
	return nil
}
