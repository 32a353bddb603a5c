package service

import (
	"context"
	goerrors "errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripmate/internal/errors"
	"tripmate/internal/mailer"
	"tripmate/internal/model"
	"tripmate/internal/repository"
)

// InviteService establishes recommender relationships: explicit invitations
// by the trip owner and code redemptions by invitees.
type InviteService interface {
	// InviteFriends matches the given Facebook ids against registered users
	// and invites each match to recommend for the trip behind the code.
	// Friends without an account are silently skipped. Re-inviting an
	// already invited friend is a no-op success.
	InviteFriends(ctx context.Context, codeValue string, friendFacebookIDs []string) error
	// RedeemCode confirms the invitation behind a code for the given user.
	// Redemption is idempotent: redeeming an already redeemed code succeeds
	// with no further effect.
	RedeemCode(ctx context.Context, userID uuid.UUID, codeValue string) error
}

type inviteService struct {
	registry        CodeRegistry
	userRepo        repository.UserRepository
	recommenderRepo repository.RecommenderRepository
	mailer          mailer.Mailer
}

// NewInviteService creates an invite service.
func NewInviteService(registry CodeRegistry, userRepo repository.UserRepository, recommenderRepo repository.RecommenderRepository, m mailer.Mailer) InviteService {
	return &inviteService{
		registry:        registry,
		userRepo:        userRepo,
		recommenderRepo: recommenderRepo,
		mailer:          m,
	}
}

func (s *inviteService) InviteFriends(ctx context.Context, codeValue string, friendFacebookIDs []string) error {
	if codeValue == "" {
		return errors.ErrCodeNotFound
	}
	if len(friendFacebookIDs) == 0 {
		return errors.ErrEmptyFriendList
	}

	trip, err := s.registry.Resolve(ctx, codeValue)
	if err != nil {
		return err
	}

	matched, err := s.userRepo.FindByFacebookIDs(ctx, friendFacebookIDs)
	if err != nil {
		return fmt.Errorf("match friends: %w", err)
	}

	for i := range matched {
		friend := matched[i]
		recommender := &model.Recommender{
			TripID: trip.ID,
			UserID: friend.ID,
			CodeID: trip.Code.ID,
		}
		created, err := s.recommenderRepo.CreateIfAbsent(ctx, recommender)
		if err != nil {
			return fmt.Errorf("create recommender: %w", err)
		}
		// Only a freshly created relationship triggers mail; repeats stay silent.
		if created {
			s.mailer.NotifyInvite(&friend, trip, codeValue)
		}
	}

	return nil
}

func (s *inviteService) RedeemCode(ctx context.Context, userID uuid.UUID, codeValue string) error {
	if codeValue == "" {
		return errors.ErrCodeNotFound
	}

	trip, err := s.registry.Resolve(ctx, codeValue)
	if err != nil {
		return err
	}

	// Holding the code is itself the invitation: create the relationship
	// as already redeemed when none exists yet.
	recommender := &model.Recommender{
		TripID:   trip.ID,
		UserID:   userID,
		CodeID:   trip.Code.ID,
		Redeemed: true,
	}
	created, err := s.recommenderRepo.CreateIfAbsent(ctx, recommender)
	if err != nil {
		return fmt.Errorf("create recommender: %w", err)
	}
	if created {
		return nil
	}

	if err := s.recommenderRepo.MarkRedeemed(ctx, trip.ID, userID); err != nil {
		return fmt.Errorf("mark redeemed: %w", err)
	}
	return nil
}

// isNotFound reports whether err is the storage-layer missing-record error.
func isNotFound(err error) bool {
	return goerrors.Is(err, gorm.ErrRecordNotFound)
}
