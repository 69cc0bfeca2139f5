package service

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func TestAuthService_ExtractToken_CookieFirst(t *testing.T) {
	a := NewAuthService(nil, 0)

	u, _ := url.Parse("http://example.com/path?token=queryToken")
	req := &http.Request{Header: make(http.Header), URL: u}
	req.Header.Set("Authorization", "Bearer headerToken")
	req.AddCookie(&http.Cookie{Name: "sessionid", Value: "cookieToken"})

	got := a.ExtractToken(req, "sessionid")
	if got != "cookieToken" {
		t.Fatalf("expected cookieToken, got %q", got)
	}
}

func TestAuthService_ExtractToken_BearerBeforeQuery(t *testing.T) {
	a := NewAuthService(nil, 0)

	req := &http.Request{Header: make(http.Header), URL: &url.URL{RawQuery: "token=q"}}
	req.Header.Set("Authorization", "Bearer headerToken")

	got := a.ExtractToken(req, "sessionid")
	if got != "headerToken" {
		t.Fatalf("expected headerToken, got %q", got)
	}
}

func TestAuthService_ExtractToken_QueryFallback(t *testing.T) {
	a := NewAuthService(nil, 0)

	u, _ := url.Parse("http://example.com/path?token=queryToken")
	req := &http.Request{Header: make(http.Header), URL: u}

	got := a.ExtractToken(req, "sessionid")
	if got != "queryToken" {
		t.Fatalf("expected queryToken, got %q", got)
	}
}

func TestAuthService_SessionLifecycle(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	a := NewAuthService(rdb, time.Hour)
	ctx := context.Background()

	token, err := a.StartSession(ctx, 42)
	if err != nil {
		t.Fatalf("StartSession err: %v", err)
	}
	if len(token) != 64 {
		t.Fatalf("expected 64 hex chars, got %q", token)
	}
	if ttl := mr.TTL("sb:session:" + token); ttl != time.Hour {
		t.Fatalf("expected ttl 1h, got %s", ttl)
	}

	uid, err := a.Authenticate(ctx, token)
	if err != nil {
		t.Fatalf("Authenticate err: %v", err)
	}
	if uid != 42 {
		t.Fatalf("expected 42, got %d", uid)
	}

	if err := a.EndSession(ctx, token); err != nil {
		t.Fatalf("EndSession err: %v", err)
	}
	if _, err := a.Authenticate(ctx, token); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after logout, got %v", err)
	}
	// 重复注销不报错
	if err := a.EndSession(ctx, token); err != nil {
		t.Fatalf("EndSession twice err: %v", err)
	}
}

func TestAuthService_SessionExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	a := NewAuthService(rdb, time.Minute)
	ctx := context.Background()

	token, err := a.StartSession(ctx, 7)
	if err != nil {
		t.Fatalf("StartSession err: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	if _, err := a.Authenticate(ctx, token); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after expiry, got %v", err)
	}
	if _, err := a.Authenticate(ctx, ""); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for empty token, got %v", err)
	}
}

func TestAuthService_DefaultTTL(t *testing.T) {
	a := NewAuthService(nil, 0)
	if a.TTL() != 14*24*time.Hour {
		t.Fatalf("expected two weeks, got %s", a.TTL())
	}
}
