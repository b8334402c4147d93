package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	goredis "github.com/redis/go-redis/v9"

	domainauth "holidaze/internal/domain/auth"
)

const sessionPrefix = "holidaze:session:"

// SessionStore keeps sessions in Redis; each key expires with its session.
type SessionStore struct {
	rdb goredis.UniversalClient
	now func() time.Time
}

func NewSessionStore(rdb goredis.UniversalClient) *SessionStore {
	return &SessionStore{rdb: rdb, now: time.Now}
}

func sessionKey(token domainauth.Token) string {
	return sessionPrefix + string(token)
}

func (s *SessionStore) Save(ctx context.Context, session *domainauth.Session) error {
	if session == nil || session.Token == "" {
		return domainauth.ErrTokenRequired
	}
	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return domainauth.ErrTTLInvalid
	}
	payload, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "redis: encode session")
	}
	if err := s.rdb.Set(ctx, sessionKey(session.Token), payload, ttl).Err(); err != nil {
		return errors.Wrap(err, "redis: save session")
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, token domainauth.Token) (*domainauth.Session, error) {
	raw, err := s.rdb.Get(ctx, sessionKey(token)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, domainauth.ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis: get session")
	}
	var session domainauth.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, errors.Wrap(err, "redis: decode session")
	}
	return &session, nil
}

func (s *SessionStore) Delete(ctx context.Context, token domainauth.Token) error {
	n, err := s.rdb.Del(ctx, sessionKey(token)).Result()
	if err != nil {
		return errors.Wrap(err, "redis: delete session")
	}
	if n == 0 {
		return domainauth.ErrSessionNotFound
	}
	return nil
}

var _ domainauth.SessionStore = (*SessionStore)(nil)
