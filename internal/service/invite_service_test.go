package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tripmate/internal/errors"
	"tripmate/internal/model"
)

func TestInviteService_InviteFriends(t *testing.T) {
	owner := buildUser("100001", "Ana")
	friend := buildUser("200001", "Bruno")
	trip := buildTrip(owner, true)

	tests := []struct {
		name          string
		code          string
		friendIDs     []string
		setupMocks    func(*MockCodeRegistry, *MockUserRepository, *MockRecommenderRepository, *MockMailer)
		expectedError error
	}{
		{
			name:          "empty code",
			code:          "",
			friendIDs:     []string{"200001"},
			setupMocks:    func(*MockCodeRegistry, *MockUserRepository, *MockRecommenderRepository, *MockMailer) {},
			expectedError: errors.ErrCodeNotFound,
		},
		{
			name:          "empty friend list",
			code:          trip.Code.Value,
			friendIDs:     nil,
			setupMocks:    func(*MockCodeRegistry, *MockUserRepository, *MockRecommenderRepository, *MockMailer) {},
			expectedError: errors.ErrEmptyFriendList,
		},
		{
			name:      "unknown code",
			code:      "BADCODE1",
			friendIDs: []string{"200001"},
			setupMocks: func(registry *MockCodeRegistry, _ *MockUserRepository, _ *MockRecommenderRepository, _ *MockMailer) {
				registry.On("Resolve", mock.Anything, "BADCODE1").Return(nil, errors.ErrCodeNotFound)
			},
			expectedError: errors.ErrCodeNotFound,
		},
		{
			name:      "unregistered friends silently skipped",
			code:      trip.Code.Value,
			friendIDs: []string{"999999"},
			setupMocks: func(registry *MockCodeRegistry, users *MockUserRepository, _ *MockRecommenderRepository, _ *MockMailer) {
				registry.On("Resolve", mock.Anything, trip.Code.Value).Return(trip, nil)
				users.On("FindByFacebookIDs", mock.Anything, []string{"999999"}).Return([]model.User{}, nil)
			},
			expectedError: nil,
		},
		{
			name:      "new invitation creates recommender and notifies",
			code:      trip.Code.Value,
			friendIDs: []string{friend.FacebookID},
			setupMocks: func(registry *MockCodeRegistry, users *MockUserRepository, recommenders *MockRecommenderRepository, m *MockMailer) {
				registry.On("Resolve", mock.Anything, trip.Code.Value).Return(trip, nil)
				users.On("FindByFacebookIDs", mock.Anything, []string{friend.FacebookID}).Return([]model.User{*friend}, nil)
				recommenders.On("CreateIfAbsent", mock.Anything, mock.MatchedBy(func(r *model.Recommender) bool {
					return r.TripID == trip.ID && r.UserID == friend.ID && r.CodeID == trip.Code.ID
				})).Return(true, nil)
				m.On("NotifyInvite", mock.AnythingOfType("*model.User"), trip, trip.Code.Value).Return()
			},
			expectedError: nil,
		},
		{
			name:      "repeat invitation is a no-op without mail",
			code:      trip.Code.Value,
			friendIDs: []string{friend.FacebookID},
			setupMocks: func(registry *MockCodeRegistry, users *MockUserRepository, recommenders *MockRecommenderRepository, _ *MockMailer) {
				registry.On("Resolve", mock.Anything, trip.Code.Value).Return(trip, nil)
				users.On("FindByFacebookIDs", mock.Anything, []string{friend.FacebookID}).Return([]model.User{*friend}, nil)
				recommenders.On("CreateIfAbsent", mock.Anything, mock.AnythingOfType("*model.Recommender")).Return(false, nil)
			},
			expectedError: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRegistry := new(MockCodeRegistry)
			mockUsers := new(MockUserRepository)
			mockRecommenders := new(MockRecommenderRepository)
			mockMailer := new(MockMailer)
			tt.setupMocks(mockRegistry, mockUsers, mockRecommenders, mockMailer)

			svc := NewInviteService(mockRegistry, mockUsers, mockRecommenders, mockMailer)
			err := svc.InviteFriends(context.Background(), tt.code, tt.friendIDs)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			mockRegistry.AssertExpectations(t)
			mockUsers.AssertExpectations(t)
			mockRecommenders.AssertExpectations(t)
			mockMailer.AssertExpectations(t)
		})
	}
}

func TestInviteService_InviteFriends_MailOnlyForNewRows(t *testing.T) {
	owner := buildUser("100001", "Ana")
	newFriend := buildUser("200001", "Bruno")
	alreadyInvited := buildUser("200002", "Carla")
	trip := buildTrip(owner, true)

	mockRegistry := new(MockCodeRegistry)
	mockUsers := new(MockUserRepository)
	mockRecommenders := new(MockRecommenderRepository)
	mockMailer := new(MockMailer)

	ids := []string{newFriend.FacebookID, alreadyInvited.FacebookID}
	mockRegistry.On("Resolve", mock.Anything, trip.Code.Value).Return(trip, nil)
	mockUsers.On("FindByFacebookIDs", mock.Anything, ids).Return([]model.User{*newFriend, *alreadyInvited}, nil)
	mockRecommenders.On("CreateIfAbsent", mock.Anything, mock.MatchedBy(func(r *model.Recommender) bool {
		return r.UserID == newFriend.ID
	})).Return(true, nil)
	mockRecommenders.On("CreateIfAbsent", mock.Anything, mock.MatchedBy(func(r *model.Recommender) bool {
		return r.UserID == alreadyInvited.ID
	})).Return(false, nil)
	mockMailer.On("NotifyInvite", mock.MatchedBy(func(u *model.User) bool {
		return u.ID == newFriend.ID
	}), trip, trip.Code.Value).Return()

	svc := NewInviteService(mockRegistry, mockUsers, mockRecommenders, mockMailer)
	err := svc.InviteFriends(context.Background(), trip.Code.Value, ids)

	assert.NoError(t, err)
	mockMailer.AssertNumberOfCalls(t, "NotifyInvite", 1)
	mockRecommenders.AssertExpectations(t)
}

func TestInviteService_RedeemCode(t *testing.T) {
	owner := buildUser("100001", "Ana")
	invitee := buildUser("200001", "Bruno")
	trip := buildTrip(owner, false)

	tests := []struct {
		name          string
		code          string
		setupMocks    func(*MockCodeRegistry, *MockRecommenderRepository)
		expectedError error
	}{
		{
			name:          "empty code",
			code:          "",
			setupMocks:    func(*MockCodeRegistry, *MockRecommenderRepository) {},
			expectedError: errors.ErrCodeNotFound,
		},
		{
			name: "unknown code",
			code: "BADCODE1",
			setupMocks: func(registry *MockCodeRegistry, _ *MockRecommenderRepository) {
				registry.On("Resolve", mock.Anything, "BADCODE1").Return(nil, errors.ErrCodeNotFound)
			},
			expectedError: errors.ErrCodeNotFound,
		},
		{
			name: "first redemption creates a redeemed relationship",
			code: trip.Code.Value,
			setupMocks: func(registry *MockCodeRegistry, recommenders *MockRecommenderRepository) {
				registry.On("Resolve", mock.Anything, trip.Code.Value).Return(trip, nil)
				recommenders.On("CreateIfAbsent", mock.Anything, mock.MatchedBy(func(r *model.Recommender) bool {
					return r.TripID == trip.ID && r.UserID == invitee.ID && r.Redeemed
				})).Return(true, nil)
			},
			expectedError: nil,
		},
		{
			name: "repeat redemption marks the existing row and succeeds",
			code: trip.Code.Value,
			setupMocks: func(registry *MockCodeRegistry, recommenders *MockRecommenderRepository) {
				registry.On("Resolve", mock.Anything, trip.Code.Value).Return(trip, nil)
				recommenders.On("CreateIfAbsent", mock.Anything, mock.AnythingOfType("*model.Recommender")).Return(false, nil)
				recommenders.On("MarkRedeemed", mock.Anything, trip.ID, invitee.ID).Return(nil)
			},
			expectedError: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRegistry := new(MockCodeRegistry)
			mockRecommenders := new(MockRecommenderRepository)
			tt.setupMocks(mockRegistry, mockRecommenders)

			svc := NewInviteService(mockRegistry, new(MockUserRepository), mockRecommenders, new(MockMailer))
			err := svc.RedeemCode(context.Background(), invitee.ID, tt.code)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			mockRegistry.AssertExpectations(t)
			mockRecommenders.AssertExpectations(t)
		})
	}
}
