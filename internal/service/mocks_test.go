package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"tripmate/internal/model"
	"tripmate/internal/repository"
	"tripmate/internal/social"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByFacebookID(ctx context.Context, facebookID string) (*model.User, error) {
	args := m.Called(ctx, facebookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByFacebookIDs(ctx context.Context, facebookIDs []string) ([]model.User, error) {
	args := m.Called(ctx, facebookIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockTripRepository is a mock implementation of repository.TripRepository.
type MockTripRepository struct {
	mock.Mock

	// TxCodes is handed to WithTransaction callbacks as the
	// transaction-scoped code repository.
	TxCodes repository.CodeRepository
}

func (m *MockTripRepository) Create(ctx context.Context, trip *model.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Trip), args.Error(1)
}

func (m *MockTripRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Trip, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Trip), args.Error(1)
}

func (m *MockTripRepository) ListByOwnerFacebookIDs(ctx context.Context, facebookIDs []string) ([]model.Trip, error) {
	args := m.Called(ctx, facebookIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Trip), args.Error(1)
}

// WithTransaction runs the callback against the mock itself; rollback is the
// real repository's concern, callers only see the callback's error.
func (m *MockTripRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, trips repository.TripRepository, codes repository.CodeRepository) error) error {
	return fn(ctx, m, m.TxCodes)
}

// MockCodeRepository is a mock implementation of repository.CodeRepository.
type MockCodeRepository struct {
	mock.Mock
}

func (m *MockCodeRepository) Create(ctx context.Context, code *model.Code) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockCodeRepository) FindByValue(ctx context.Context, value string) (*model.Code, error) {
	args := m.Called(ctx, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Code), args.Error(1)
}

func (m *MockCodeRepository) FindByTripID(ctx context.Context, tripID uuid.UUID) (*model.Code, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Code), args.Error(1)
}

// MockDestinationRepository is a mock implementation of repository.DestinationRepository.
type MockDestinationRepository struct {
	mock.Mock
}

func (m *MockDestinationRepository) FirstOrCreate(ctx context.Context, destination *model.Destination) error {
	args := m.Called(ctx, destination)
	return args.Error(0)
}

func (m *MockDestinationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Destination, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Destination), args.Error(1)
}

// MockRecommenderRepository is a mock implementation of repository.RecommenderRepository.
type MockRecommenderRepository struct {
	mock.Mock
}

func (m *MockRecommenderRepository) CreateIfAbsent(ctx context.Context, recommender *model.Recommender) (bool, error) {
	args := m.Called(ctx, recommender)
	return args.Bool(0), args.Error(1)
}

func (m *MockRecommenderRepository) FindByTripAndUser(ctx context.Context, tripID, userID uuid.UUID) (*model.Recommender, error) {
	args := m.Called(ctx, tripID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recommender), args.Error(1)
}

func (m *MockRecommenderRepository) FindTripIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockRecommenderRepository) MarkRedeemed(ctx context.Context, tripID, userID uuid.UUID) error {
	args := m.Called(ctx, tripID, userID)
	return args.Error(0)
}

// MockRecommendationRepository is a mock implementation of repository.RecommendationRepository.
type MockRecommendationRepository struct {
	mock.Mock
}

func (m *MockRecommendationRepository) Create(ctx context.Context, recommendation *model.Recommendation) error {
	args := m.Called(ctx, recommendation)
	return args.Error(0)
}

func (m *MockRecommendationRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]model.Recommendation, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recommendation), args.Error(1)
}

// MockCodeRegistry is a mock implementation of CodeRegistry.
type MockCodeRegistry struct {
	mock.Mock
}

func (m *MockCodeRegistry) Issue(ctx context.Context, codes repository.CodeRepository, tripID uuid.UUID) (*model.Code, error) {
	args := m.Called(ctx, codes, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Code), args.Error(1)
}

func (m *MockCodeRegistry) Resolve(ctx context.Context, value string) (*model.Trip, error) {
	args := m.Called(ctx, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Trip), args.Error(1)
}

// MockMailer is a mock implementation of mailer.Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) NotifyInvite(invited *model.User, trip *model.Trip, codeValue string) {
	m.Called(invited, trip, codeValue)
}

// MockSocialProvider is a mock implementation of social.Provider.
type MockSocialProvider struct {
	mock.Mock
}

func (m *MockSocialProvider) FriendsOf(ctx context.Context, user *model.User) ([]social.Friend, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]social.Friend), args.Error(1)
}
