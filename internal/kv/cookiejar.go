package kv

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// CookieJar is a request-scoped Store view over HTTP cookies: reads
// come from the incoming request, writes become Set-Cookie headers on
// the response. Writes are also kept in a local overlay so that a value
// set earlier in the same request is visible to later reads.
type CookieJar struct {
	r       *http.Request
	w       http.ResponseWriter
	overlay map[string]*string // nil value marks a deletion
}

// NewCookieJar creates a Store view over the request's cookies. The
// writer may be nil for read-only use (route guard checks).
func NewCookieJar(w http.ResponseWriter, r *http.Request) *CookieJar {
	return &CookieJar{
		r:       r,
		w:       w,
		overlay: make(map[string]*string),
	}
}

func (j *CookieJar) Get(ctx context.Context, key string) (string, error) {
	if v, ok := j.overlay[key]; ok {
		if v == nil {
			return "", ErrNotFound
		}
		return *v, nil
	}

	cookie, err := j.r.Cookie(key)
	if err != nil {
		return "", ErrNotFound
	}

	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		// Undecodable cookie reads as absent
		return "", ErrNotFound
	}
	return value, nil
}

func (j *CookieJar) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	cookie := &http.Cookie{
		Name:  key,
		Value: url.QueryEscape(value),
		Path:  "/",
	}
	if ttl > 0 {
		cookie.Expires = time.Now().Add(ttl)
	}

	if j.w != nil {
		http.SetCookie(j.w, cookie)
	}
	j.overlay[key] = &value
	return nil
}

func (j *CookieJar) Delete(ctx context.Context, key string) error {
	if j.w != nil {
		http.SetCookie(j.w, &http.Cookie{
			Name:    key,
			Value:   "",
			Path:    "/",
			Expires: time.Unix(0, 0),
			MaxAge:  -1,
		})
	}
	j.overlay[key] = nil
	return nil
}
