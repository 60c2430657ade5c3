package sessionstore_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"visadesk/internal/adapters/out/redis/sessionstore"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cookieName = "visadesk_session"

func newStore(t *testing.T) (*sessionstore.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store, err := sessionstore.New(client, []byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)
	return store, mr
}

func saveSession(t *testing.T, store *sessionstore.RedisStore, values map[string]string) *http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	session, err := store.Get(req, cookieName)
	require.NoError(t, err)
	assert.True(t, session.IsNew)
	for k, v := range values {
		session.Values[k] = v
	}
	require.NoError(t, session.Save(req, rec))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store, mr := newStore(t)

	cookie := saveSession(t, store, map[string]string{"user_id": "u-1", "role": "admin"})

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.Contains(t, keys[0], sessionstore.DefaultKeyPrefix)
	assert.Equal(t, time.Duration(sessionstore.DefaultMaxAge)*time.Second, mr.TTL(keys[0]))
	assert.True(t, cookie.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	session, err := store.Get(req, cookieName)

	require.NoError(t, err)
	assert.False(t, session.IsNew)
	assert.Equal(t, "u-1", session.Values["user_id"])
	assert.Equal(t, "admin", session.Values["role"])
}

func TestRedisStore_TamperedCookie(t *testing.T) {
	store, _ := newStore(t)
	cookie := saveSession(t, store, map[string]string{"user_id": "u-1"})
	cookie.Value = "x" + cookie.Value

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	session, err := store.Get(req, cookieName)

	require.Error(t, err)
	assert.True(t, session.IsNew)
	assert.Empty(t, session.Values)
}

func TestRedisStore_ExpiredServerSide(t *testing.T) {
	store, mr := newStore(t)
	cookie := saveSession(t, store, map[string]string{"user_id": "u-1"})
	mr.FastForward(time.Duration(sessionstore.DefaultMaxAge+1) * time.Second)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	session, err := store.Get(req, cookieName)

	require.NoError(t, err)
	assert.True(t, session.IsNew)
	assert.Empty(t, session.Values)
}

func TestRedisStore_DeleteWithNegativeMaxAge(t *testing.T) {
	store, mr := newStore(t)
	cookie := saveSession(t, store, map[string]string{"user_id": "u-1"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	session, err := store.Get(req, cookieName)
	require.NoError(t, err)

	session.Options.MaxAge = -1
	require.NoError(t, session.Save(req, rec))

	assert.Empty(t, mr.Keys())
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Empty(t, cleared[0].Value)
	assert.Negative(t, cleared[0].MaxAge)
}

func TestRedisStore_Touch(t *testing.T) {
	store, mr := newStore(t)
	cookie := saveSession(t, store, map[string]string{"user_id": "u-1"})
	mr.FastForward(time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	session, err := store.Get(req, cookieName)
	require.NoError(t, err)

	require.NoError(t, store.Touch(req, session))

	assert.Equal(t, time.Duration(sessionstore.DefaultMaxAge)*time.Second, mr.TTL(mr.Keys()[0]))
}

func TestNew_RequiresSecret(t *testing.T) {
	_, err := sessionstore.New(redis.NewClient(&redis.Options{}), nil)

	require.ErrorIs(t, err, sessionstore.ErrEmptySecret)
}
