package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"math"

	"hoteladmin/config"
	"hoteladmin/infras/jwt"
	"hoteladmin/infras/otel"
	"hoteladmin/internal/domains/auth/model/dto"
	userModel "hoteladmin/internal/domains/user/model"
	userRepo "hoteladmin/internal/domains/user/repository"
	"hoteladmin/shared"
	"hoteladmin/shared/cache"
	"hoteladmin/shared/constant"
	gDto "hoteladmin/shared/dto"
	"hoteladmin/shared/failure"
	"hoteladmin/shared/password"
	"hoteladmin/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	messageInvalidCredentials = "invalid username or password"
	messageInvalidRefresh     = "invalid refresh token"
	revokedMarker             = "1"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	Logout(ctx context.Context, claims *jwt.Claims, req dto.LogoutRequest) error
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
	cache      cache.RedisCache
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel, jwt jwt.JWT, cache cache.RedisCache) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
		cache:      cache,
	}
}

func usernameFilter(username string) gDto.FilterGroup {
	return shared.FilterByID(username, userModel.FieldUsername, userModel.TableName)
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err := s.userRepo.Exist(ctx, usernameFilter(req.Username))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return failure.Conflict("username already registered")
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	err = s.userRepo.Insert(ctx, req.ToUserModel(shared.Username(ctx), hashedPassword))
	if shared.IsPqError(err, constant.PqErrorCodeUniqueViolation) {
		return failure.Conflict("username already registered")
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := usernameFilter(req.Username)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		log.Warn().Str("username", req.Username).Msg("login attempt with unknown username")

		return res, failure.Unauthorized(messageInvalidCredentials)
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("username", req.Username).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(messageInvalidCredentials)
	}

	if !user.Active {
		return res, failure.Unauthorized("user account is deactivated")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Username, user.Level)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	now := timezone.Now()
	updatedFields := shared.TransformFields(dto.UpdateLastLoginRequest{LastLogin: &now}, user.Username)

	if err := s.userRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("failed to update last login")

		return res, fmt.Errorf("failed to update last login: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

// RefreshToken rotates the pair: the presented refresh token is revoked once a
// new pair has been issued.
func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwtService.ValidateToken(req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to validate refresh token")

		return res, failure.Unauthorized(messageInvalidRefresh)
	}

	revoked, err := s.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		log.Warn().Err(err).Msg("failed to check refresh token revocation")
	}

	if revoked {
		return res, failure.Unauthorized(messageInvalidRefresh)
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(claims.UserID, claims.Username, claims.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err := s.revoke(ctx, claims); err != nil {
		log.Warn().Err(err).Str("token_id", claims.TokenID).Msg("failed to revoke rotated refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) Logout(ctx context.Context, claims *jwt.Claims, req dto.LogoutRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if claims == nil {
		return failure.Unauthorized("missing token claims")
	}

	if err = s.revoke(ctx, claims); err != nil {
		log.Error().Err(err).Str("token_id", claims.TokenID).Msg("failed to revoke access token")

		return fmt.Errorf("failed to revoke access token: %w", err)
	}

	if req.RefreshToken == constant.Empty {
		return nil
	}

	refreshClaims, err := s.jwtService.ValidateToken(req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("logout with invalid refresh token")

		return nil
	}

	if refreshClaims.UserID != claims.UserID {
		return failure.Forbidden("refresh token belongs to another user")
	}

	if err = s.revoke(ctx, refreshClaims); err != nil {
		log.Error().Err(err).Str("token_id", refreshClaims.TokenID).Msg("failed to revoke refresh token")

		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound(userModel.EntityName)
	}

	if err := password.Verify(req.CurrentPassword, user.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect")
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatedFields := shared.TransformFields(dto.UpdatePasswordRequest{Password: &hashedPassword}, shared.Username(ctx))

	if err = s.userRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// IsRevoked reports whether tokenID sits on the deny-list. A cache failure is
// returned with false so callers decide whether to fail open.
func (s *serviceImpl) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	var marker string

	err := s.cache.Get(ctx, shared.BuildCacheKey(constant.CacheKeyRevokedToken, tokenID), &marker)
	if errors.Is(err, cache.Nil) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to read revocation: %w", err)
	}

	return true, nil
}

func (s *serviceImpl) revoke(ctx context.Context, claims *jwt.Claims) error {
	ttl := int(math.Ceil(claims.Remaining(timezone.Now()).Seconds()))
	if ttl <= 0 {
		return nil
	}

	err := s.cache.Save(ctx, shared.BuildCacheKey(constant.CacheKeyRevokedToken, claims.TokenID), revokedMarker, ttl)
	if err != nil {
		return fmt.Errorf("failed to save revocation: %w", err)
	}

	return nil
}
