package blob

import (
	"context"
	"errors"
	"testing"
)

func TestMemStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	if err := s.Write(ctx, Users, "alice", []byte(`{"username":"alice"}`)); err != nil {
		t.Fatalf("write: %v", err)
	}

	ok, err := s.Exists(ctx, Users, "alice")
	if err != nil || !ok {
		t.Fatalf("exists=%v err=%v", ok, err)
	}

	data, err := s.Read(ctx, Users, "alice")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != `{"username":"alice"}` {
		t.Fatalf("data=%s", data)
	}

	if err := s.Remove(ctx, Users, "alice"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := s.Read(ctx, Users, "alice"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("read after remove: %v", err)
	}
}

func TestMemStore_NotFound(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	if _, err := s.Read(ctx, Users, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("read: %v", err)
	}
	if err := s.Remove(ctx, Users, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("remove: %v", err)
	}
	if ok, err := s.Exists(ctx, Users, "ghost"); err != nil || ok {
		t.Fatalf("exists=%v err=%v", ok, err)
	}
}

func TestMemStore_CollectionsIsolated(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	if err := s.Write(ctx, Users, "alice", []byte("u")); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := s.Read(ctx, Orders, "alice"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("user blob leaked into orders: %v", err)
	}
}

func TestMemStore_ReadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	if err := s.Write(ctx, Users, "alice", []byte("abc")); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, _ := s.Read(ctx, Users, "alice")
	data[0] = 'x'

	again, _ := s.Read(ctx, Users, "alice")
	if string(again) != "abc" {
		t.Fatalf("stored bytes mutated through read result: %s", again)
	}
}
