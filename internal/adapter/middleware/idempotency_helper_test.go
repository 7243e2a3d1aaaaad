package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
	"time"
)

func Test_bodyHash(t *testing.T) {
	data := []byte("hello world")
	sum := sha256.Sum256(data)
	if got, want := bodyHash(data), hex.EncodeToString(sum[:]); got != want {
		t.Fatalf("bodyHash mismatch: got %s want %s", got, want)
	}
}

func Test_nowUTC(t *testing.T) {
	u := nowUTC()
	if u.Location() != time.UTC {
		t.Fatalf("nowUTC must be UTC, got %v", u.Location())
	}
	if d := time.Since(u); d < 0 || d > 2*time.Second {
		t.Fatalf("nowUTC too far from now: %v", d)
	}
}

func Test_buildKey(t *testing.T) {
	k := buildKey("POST", "/recruitments", testUserID, testKey)
	if want := "idemp:post:/recruitments:" + testUserID + ":" + testKey; k != want {
		t.Fatalf("buildKey = %q, want %q", k, want)
	}
}

func Test_validKey(t *testing.T) {
	t.Run("accepts uuid and 32-hex", func(t *testing.T) {
		for _, s := range []string{
			"3f9a6a1b-3d54-4fbe-8b3a-6b3e8d6b2c88",
			"3F9A6A1B-3D54-4FBE-8B3A-6B3E8D6B2C88",
			"018f3a1c-7b2e-7c3d-9e4f-0a1b2c3d4e5f",
			strings.Repeat("a", 32),
		} {
			if !validKey(s) {
				t.Fatalf("validKey should accept %q", s)
			}
		}
	})
	t.Run("rejects bad formats", func(t *testing.T) {
		for _, s := range []string{
			"",
			"3f9a6a1b3d544fbe8b3a6b3e8d6b2c8",
			"3f9a6a1b3d544fbe8b3a6b3e8d6b2c880",
			strings.Repeat("z", 32),
			"3f9a6a1b-3d54-9fbe-8b3a-6b3e8d6b2c88",
		} {
			if validKey(s) {
				t.Fatalf("validKey should reject %q", s)
			}
		}
	})
}

func Test_provisionalSet_LoadEntry(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()

	key := buildKey("POST", "/orders", testUserID, testKey)
	entry := idempEntry{InProgress: true, BodySHA256: bodyHash([]byte(`{"a":1}`)), Key: testKey, CreatedAt: nowUTC()}

	ok, err := provisionalSet(context.Background(), rdb, key, entry)
	if err != nil || !ok {
		t.Fatalf("provisionalSet 1: ok=%v err=%v", ok, err)
	}
	if ttl := rdb.TTL(context.Background(), key).Val(); ttl <= 0 || ttl > provisionalLockTTL {
		t.Fatalf("provisional TTL not set correctly: %v", ttl)
	}
	ok, err = provisionalSet(context.Background(), rdb, key, entry)
	if err != nil || ok {
		t.Fatalf("provisionalSet 2: ok=%v err=%v, want false", ok, err)
	}

	got, err := loadEntry(context.Background(), rdb, key)
	if err != nil {
		t.Fatalf("loadEntry err: %v", err)
	}
	if !got.InProgress || got.Key != entry.Key || got.BodySHA256 != entry.BodySHA256 {
		t.Fatalf("loaded entry mismatch: %+v vs %+v", got, entry)
	}

	if err := release(context.Background(), rdb, key); err != nil {
		t.Fatalf("release: %v", err)
	}
	if mr.Exists(key) {
		t.Fatalf("key still present after release")
	}
}

func Test_saveFinal_Load_TTL(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()

	key := buildKey("POST", "/orders", testUserID, testKey)
	final := idempEntry{Code: 201, ContentType: "application/json", Body: []byte(`{"ok":true}`), Key: testKey, CreatedAt: nowUTC()}

	ttlWant := 5 * time.Second
	if err := saveFinal(context.Background(), rdb, key, final, ttlWant); err != nil {
		t.Fatalf("saveFinal err: %v", err)
	}
	if ttl := rdb.TTL(context.Background(), key).Val(); ttl <= 0 || ttl > ttlWant {
		t.Fatalf("final TTL out of range: got %v want <= %v", ttl, ttlWant)
	}
	got, err := loadEntry(context.Background(), rdb, key)
	if err != nil {
		t.Fatalf("load after final err: %v", err)
	}
	if got.Code != 201 || string(got.Body) != `{"ok":true}` || got.InProgress || got.ContentType != "application/json" {
		t.Fatalf("final entry mismatch: %+v", got)
	}
}
