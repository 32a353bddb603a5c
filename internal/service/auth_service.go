package service

import (
	"context"
	goerrors "errors"
	"fmt"

	"gorm.io/gorm"

	"tripmate/internal/auth"
	"tripmate/internal/model"
	"tripmate/internal/repository"
)

// AuthService handles Facebook-backed sign in. There is no password
// credential: identity arrives from the Facebook login flow and the service
// issues tripmate's own tokens.
type AuthService interface {
	// FacebookLogin finds or creates the user for the given Facebook
	// identity and issues tokens. A duplicate email returns the existing
	// user rather than an error.
	FacebookLogin(ctx context.Context, facebookID, email, name, pictureURL string) (accessToken, refreshToken string, user *model.User, err error)
	RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
}

var errInvalidRefreshToken = goerrors.New("invalid or expired refresh token")

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates an authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

func (s *authService) FacebookLogin(ctx context.Context, facebookID, email, name, pictureURL string) (string, string, *model.User, error) {
	user, err := s.findOrCreateUser(ctx, facebookID, email, name, pictureURL)
	if err != nil {
		return "", "", nil, err
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.ID, user.FacebookID)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(user.ID, user.FacebookID)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, user.ID.String(), user.FacebookID, auth.RefreshTokenExpiry); err != nil {
		return "", "", nil, fmt.Errorf("store refresh token: %w", err)
	}

	return accessToken, refreshToken, user, nil
}

// findOrCreateUser treats duplicates as success: an existing Facebook id or
// email returns the already registered user.
func (s *authService) findOrCreateUser(ctx context.Context, facebookID, email, name, pictureURL string) (*model.User, error) {
	user, err := s.userRepo.FindByFacebookID(ctx, facebookID)
	if err == nil {
		return user, nil
	}
	if !isNotFound(err) {
		return nil, fmt.Errorf("find user: %w", err)
	}

	user, err = s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !isNotFound(err) {
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	user = &model.User{
		FacebookID: facebookID,
		Email:      email,
		Name:       name,
		PictureURL: pictureURL,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost a concurrent registration race: the winner's row is the user.
		if goerrors.Is(err, gorm.ErrDuplicatedKey) {
			return s.userRepo.FindByFacebookID(ctx, facebookID)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return "", errInvalidRefreshToken
	}
	if claims.ID == "" {
		return "", errInvalidRefreshToken
	}

	storedUserID, storedFacebookID, err := s.tokenStore.GetRefreshToken(ctx, claims.ID)
	if err != nil {
		return "", errInvalidRefreshToken
	}
	if storedUserID != claims.UserID || storedFacebookID != claims.FacebookID {
		return "", errInvalidRefreshToken
	}

	userID, err := claims.ParseUserID()
	if err != nil {
		return "", errInvalidRefreshToken
	}

	accessToken, err := s.jwtService.GenerateAccessToken(userID, claims.FacebookID)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.ID == "" {
		return errInvalidRefreshToken
	}
	return s.tokenStore.DeleteRefreshToken(ctx, claims.ID)
}
