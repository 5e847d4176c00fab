package credentials

import (
	"context"
	"strings"
	"time"
	"wellness-wizard/internal/app/contracts"
	"wellness-wizard/internal/app/models"
	"wellness-wizard/internal/pkg/constvars"
	"wellness-wizard/internal/pkg/exceptions"
	"wellness-wizard/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

type credentialStore struct {
	Log       *zap.Logger
	Redis     contracts.RedisRepository
	KeyPrefix string
	now       func() time.Time
}

type portalUserRecord struct {
	ID       utils.FlexibleString `json:"id"`
	ClinicID utils.FlexibleString `json:"clinic_id"`
}

func NewCredentialStore(logger *zap.Logger, redisRepository contracts.RedisRepository, keyPrefix string) contracts.CredentialReader {
	return &credentialStore{
		Log:       logger,
		Redis:     redisRepository,
		KeyPrefix: keyPrefix,
		now:       time.Now,
	}
}

func (s *credentialStore) key(name string) string {
	if s.KeyPrefix == "" {
		return name
	}
	return s.KeyPrefix + ":" + name
}

func (s *credentialStore) Credentials(ctx context.Context) (*models.Credentials, error) {
	tokenKey := s.key(constvars.CredentialTokenKey)
	token, err := s.Redis.Get(ctx, tokenKey)
	if err != nil {
		s.Log.Error("credentialStore.Credentials error reading token",
			zap.String(constvars.LoggingRedisKey, tokenKey),
			zap.Error(err),
		)
		return nil, err
	}
	token = strings.TrimPrefix(strings.Trim(token, `"`), constvars.AuthorizationBearerPrefix)
	if token == "" {
		return nil, exceptions.ErrTokenMissing()
	}

	expiresAt, err := tokenExpiry(token)
	if err != nil {
		return nil, exceptions.ErrTokenMalformed(err)
	}

	credentials := &models.Credentials{
		Token:     token,
		ExpiresAt: expiresAt,
	}
	if credentials.Expired(s.now()) {
		s.Log.Warn("credentialStore.Credentials token expired",
			zap.Time("expires_at", expiresAt),
		)
		return nil, exceptions.ErrTokenExpired(nil)
	}

	userKey := s.key(constvars.CredentialUserKey)
	rawUser, err := s.Redis.Get(ctx, userKey)
	if err != nil {
		return nil, err
	}
	if rawUser == "" {
		return nil, exceptions.ErrRedisGetNoData(nil, userKey)
	}

	var user portalUserRecord
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	credentials.User = models.PortalUser{
		ID:       user.ID.String(),
		ClinicID: user.ClinicID.String(),
	}

	s.Log.Debug("credentialStore.Credentials succeeded",
		zap.String(constvars.LoggingRedisKey, userKey),
	)
	return credentials, nil
}

// tokenExpiry reads the exp claim without verifying the signature.
// Opaque tokens have no local expiry and are left for the backend to judge.
func tokenExpiry(token string) (time.Time, error) {
	if strings.Count(token, ".") != 2 {
		return time.Time{}, nil
	}

	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return time.Time{}, err
	}

	if exp, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(exp), 0), nil
	}
	return time.Time{}, nil
}
