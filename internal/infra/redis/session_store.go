package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"vestr-cli/internal/domain"
)

// SessionStore keeps the logged-in user in Redis so separate CLI runs share it.
// The value is the JSON user record under vestr:session:{profile}, refreshed
// to ttl on every save.
type SessionStore struct {
	client  *redis.Client
	profile string
	ttl     time.Duration
}

func NewSessionStore(client *redis.Client, profile string, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, profile: profile, ttl: ttl}
}

func (s *SessionStore) Load(ctx context.Context) (domain.UserData, error) {
	raw, err := s.client.Get(ctx, s.key()).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.UserData{}, domain.ErrSessionNotFound
	}
	if err != nil {
		return domain.UserData{}, fmt.Errorf("load session: %w", err)
	}
	var user domain.UserData
	if err := json.Unmarshal(raw, &user); err != nil {
		return domain.UserData{}, fmt.Errorf("decode session: %w", err)
	}
	return user, nil
}

func (s *SessionStore) Save(ctx context.Context, user domain.UserData) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key()).Err()
}

func (s *SessionStore) key() string {
	return "vestr:session:" + s.profile
}
