// Package sessionstore implements a gorilla/sessions Store that keeps session
// values in Redis. The cookie only carries a signed session id.
package sessionstore

import (
	"encoding/base32"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultKeyPrefix = "session:"
	DefaultMaxAge    = 86400 * 7
)

var ErrEmptySecret = errors.New("sessionstore: secret is required")

type RedisStore struct {
	client     redis.Cmdable
	codecs     []securecookie.Codec
	serializer securecookie.GobEncoder
	keyPrefix  string

	Options *sessions.Options
}

var _ sessions.Store = (*RedisStore)(nil)

// New builds a store signing cookies with secret. Further key pairs rotate
// older secrets in, as with securecookie.CodecsFromPairs.
func New(client redis.Cmdable, secret []byte, oldKeyPairs ...[]byte) (*RedisStore, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	codecs := securecookie.CodecsFromPairs(append([][]byte{secret}, oldKeyPairs...)...)
	s := &RedisStore{
		client:    client,
		codecs:    codecs,
		keyPrefix: DefaultKeyPrefix,
		Options: &sessions.Options{
			Path:     "/",
			MaxAge:   DefaultMaxAge,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
	}
	s.MaxAge(DefaultMaxAge)
	return s, nil
}

// MaxAge sets the lifetime of new sessions and of the signed id.
func (s *RedisStore) MaxAge(age int) {
	s.Options.MaxAge = age
	for _, c := range s.codecs {
		if sc, ok := c.(*securecookie.SecureCookie); ok {
			sc.MaxAge(age)
		}
	}
}

func (s *RedisStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New returns the stored session for the request cookie, or a fresh one when
// the cookie is missing, tampered with or already expired in Redis.
func (s *RedisStore) New(r *http.Request, name string) (*sessions.Session, error) {
	session := sessions.NewSession(s, name)
	opts := *s.Options
	session.Options = &opts
	session.IsNew = true

	c, err := r.Cookie(name)
	if err != nil {
		return session, nil
	}
	if err = securecookie.DecodeMulti(name, c.Value, &session.ID, s.codecs...); err != nil {
		return session, err
	}

	found, err := s.load(r, session)
	if err != nil {
		return session, err
	}
	session.IsNew = !found
	return session, nil
}

// Save persists the session and writes the cookie. A negative MaxAge deletes
// both.
func (s *RedisStore) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	if session.Options.MaxAge < 0 {
		if session.ID != "" {
			if err := s.client.Del(r.Context(), s.key(session.ID)).Err(); err != nil {
				return fmt.Errorf("sessionstore: delete: %w", err)
			}
		}
		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	if session.ID == "" {
		session.ID = newID()
	}
	if err := s.save(r, session); err != nil {
		return err
	}

	encoded, err := securecookie.EncodeMulti(session.Name(), session.ID, s.codecs...)
	if err != nil {
		return err
	}
	http.SetCookie(w, sessions.NewCookie(session.Name(), encoded, session.Options))
	return nil
}

// Touch extends the Redis TTL of an existing session without rewriting it.
func (s *RedisStore) Touch(r *http.Request, session *sessions.Session) error {
	if session.ID == "" || session.IsNew {
		return nil
	}
	return s.client.Expire(r.Context(), s.key(session.ID), s.ttl(session)).Err()
}

func (s *RedisStore) save(r *http.Request, session *sessions.Session) error {
	data, err := s.serializer.Serialize(session.Values)
	if err != nil {
		return fmt.Errorf("sessionstore: encode: %w", err)
	}
	if err = s.client.Set(r.Context(), s.key(session.ID), data, s.ttl(session)).Err(); err != nil {
		return fmt.Errorf("sessionstore: save: %w", err)
	}
	return nil
}

func (s *RedisStore) load(r *http.Request, session *sessions.Session) (bool, error) {
	data, err := s.client.Get(r.Context(), s.key(session.ID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("sessionstore: load: %w", err)
	}
	if err = s.serializer.Deserialize(data, &session.Values); err != nil {
		return false, fmt.Errorf("sessionstore: decode: %w", err)
	}
	return true, nil
}

func (s *RedisStore) ttl(session *sessions.Session) time.Duration {
	if session.Options.MaxAge == 0 {
		// browser-session cookie; keep the server side bounded anyway
		return time.Duration(DefaultMaxAge) * time.Second
	}
	return time.Duration(session.Options.MaxAge) * time.Second
}

func (s *RedisStore) key(id string) string {
	return s.keyPrefix + id
}

func newID() string {
	return strings.TrimRight(base32.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)), "=")
}
