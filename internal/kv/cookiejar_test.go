package kv

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieJar_GetFromRequest(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "mb_auth", Value: "true"})

	jar := NewCookieJar(nil, req)

	value, err := jar.Get(context.Background(), "mb_auth")
	require.NoError(t, err)
	assert.Equal(t, "true", value)
}

func TestCookieJar_GetMissing(t *testing.T) {
	jar := NewCookieJar(nil, httptest.NewRequest("GET", "/", nil))

	_, err := jar.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCookieJar_SetWritesSetCookie(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	jar := NewCookieJar(w, req)

	require.NoError(t, jar.Set(context.Background(), "mb_auth", "true", 24*time.Hour))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "mb_auth", cookies[0].Name)
	assert.Equal(t, "true", cookies[0].Value)
	assert.Equal(t, "/", cookies[0].Path)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), cookies[0].Expires, time.Minute)
}

func TestCookieJar_SetVisibleToLaterReads(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	jar := NewCookieJar(w, req)
	ctx := context.Background()

	require.NoError(t, jar.Set(ctx, "mb_user", `{"email":"a@b.c"}`, time.Hour))

	value, err := jar.Get(ctx, "mb_user")
	require.NoError(t, err)
	assert.Equal(t, `{"email":"a@b.c"}`, value)
}

func TestCookieJar_DeleteExpiresCookie(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "mb_auth", Value: "true"})
	w := httptest.NewRecorder()
	jar := NewCookieJar(w, req)
	ctx := context.Background()

	require.NoError(t, jar.Delete(ctx, "mb_auth"))

	// The deletion shadows the request cookie
	_, err := jar.Get(ctx, "mb_auth")
	assert.ErrorIs(t, err, ErrNotFound)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Expires.Before(time.Now()))
}

func TestCookieJar_ValueRoundTripsEncoding(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	jar := NewCookieJar(w, req)
	ctx := context.Background()

	profile := `{"email":"admin@minimalbites.com","name":"Admin User"}`
	require.NoError(t, jar.Set(ctx, "mb_user", profile, time.Hour))

	// Read the Set-Cookie value back through a fresh request
	cookie := w.Result().Cookies()[0]
	next := httptest.NewRequest("GET", "/", nil)
	next.AddCookie(cookie)

	value, err := NewCookieJar(nil, next).Get(ctx, "mb_user")
	require.NoError(t, err)
	assert.Equal(t, profile, value)
}
