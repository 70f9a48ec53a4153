package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/aleguimas/promotores/pkg/errors"
	"github.com/aleguimas/promotores/pkg/status"
)

type contextKey string

const accountContextKey contextKey = "session.account"

// Account is the authenticated client attached to a request.
type Account struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

type Session interface {
	Set(ctx context.Context, key string, account Account, expiration time.Duration) error
	Get(ctx context.Context, key string) (Account, error)
	Delete(ctx context.Context, key string) error
}

type redisSessionStore struct {
	logger *logrus.Logger
	client *goredis.Client
}

func NewRedisSessionStore(logger *logrus.Logger, client *goredis.Client) Session {
	return &redisSessionStore{
		logger: logger,
		client: client,
	}
}

func sessionKey(key string) string {
	return fmt.Sprintf("session:client:%s", key)
}

// Set implements Session.
func (s *redisSessionStore) Set(ctx context.Context, key string, account Account, expiration time.Duration) error {
	buff, _ := json.Marshal(account)

	if err := s.client.Set(ctx, sessionKey(key), buff, expiration).Err(); err != nil {
		s.logger.WithContext(ctx).WithError(err).Error()
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while storing the session")
	}

	return nil
}

// Get implements Session.
func (s *redisSessionStore) Get(ctx context.Context, key string) (Account, error) {
	buff, err := s.client.Get(ctx, sessionKey(key)).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return Account{}, errors.New(http.StatusUnauthorized, status.UNAUTHORIZED, "session is not found or expired")
		}
		s.logger.WithContext(ctx).WithError(err).Error()
		return Account{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting the session")
	}

	var account Account
	if err := json.Unmarshal(buff, &account); err != nil {
		s.logger.WithContext(ctx).WithError(err).Error()
		return Account{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting the session")
	}

	return account, nil
}

// Delete implements Session.
func (s *redisSessionStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, sessionKey(key)).Err(); err != nil {
		s.logger.WithContext(ctx).WithError(err).Error()
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while deleting the session")
	}

	return nil
}

// SetAccountToCtx attaches the authenticated account to the request context.
func SetAccountToCtx(ctx context.Context, account Account) context.Context {
	return context.WithValue(ctx, accountContextKey, account)
}

// GetAccountFromCtx returns the authenticated account attached by the
// session middleware.
func GetAccountFromCtx(ctx context.Context) (Account, error) {
	account, ok := ctx.Value(accountContextKey).(Account)
	if !ok {
		return Account{}, errors.New(http.StatusUnauthorized, status.UNAUTHORIZED, "request is not authenticated")
	}

	return account, nil
}
