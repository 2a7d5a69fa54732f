package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/clubhub/club-service/internal/domain"
	"github.com/clubhub/club-service/internal/events"
	"github.com/clubhub/club-service/internal/repository"
)

// MemberService wraps roster operations and emits lifecycle events.
type MemberService struct {
	members    repository.MemberRepository
	dispatcher events.Dispatcher
}

// NewMemberService builds the service.
func NewMemberService(members repository.MemberRepository, dispatcher events.Dispatcher) *MemberService {
	return &MemberService{members: members, dispatcher: dispatcher}
}

func (s *MemberService) Create(ctx context.Context, member *domain.Member) error {
	if err := s.members.Create(ctx, member); err != nil {
		return err
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventMemberCreated,
			ClubID:    member.ClubID,
			Timestamp: time.Now(),
			Payload: events.MemberCreatedPayload{
				MemberID:  member.ID,
				FirstName: member.FirstName,
				LastName:  member.LastName,
			},
		})
	}
	return nil
}

func (s *MemberService) Update(ctx context.Context, member *domain.Member) error {
	return s.members.Update(ctx, member)
}

func (s *MemberService) Delete(ctx context.Context, id string) error {
	return s.members.Delete(ctx, id)
}

func (s *MemberService) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	return s.members.GetByID(ctx, id)
}

func (s *MemberService) List(ctx context.Context, clubID string, limit, offset int) ([]domain.Member, int64, error) {
	return s.members.List(ctx, clubID, limit, offset)
}
