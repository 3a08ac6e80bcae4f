package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"CoffeeCloud/internal/blob"
)

var (
	ErrNotFound = errors.New("user not found")
	ErrExists   = errors.New("user already exists")
)

// Repo stores one profile blob per username in the users collection.
// Every mutation is a read-modify-write of the whole blob; concurrent
// writers to the same username can clobber each other (no locking, by
// design). On a failed save the repo rewrites the pre-mutation buffer as
// a best-effort compensation; not a rollback, and it can itself fail.
type Repo struct {
	Store blob.Store
	Log   *zap.Logger
}

func (r *Repo) Create(ctx context.Context, username, passwordHash string) error {
	ok, err := r.Store.Exists(ctx, blob.Users, username)
	if err != nil {
		return fmt.Errorf("check user %q: %w", username, err)
	}
	if ok {
		return ErrExists
	}

	rec := Record{fieldUsername: username, fieldPassword: passwordHash}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode user %q: %w", username, err)
	}

	return r.Store.Write(ctx, blob.Users, username, data)
}

// Get returns the raw record, password hash included. Callers strip it
// before anything leaves the process.
func (r *Repo) Get(ctx context.Context, username string) (Record, error) {
	rec, _, err := r.load(ctx, username)
	return rec, err
}

func (r *Repo) load(ctx context.Context, username string) (Record, []byte, error) {
	raw, err := r.Store.Read(ctx, blob.Users, username)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, nil, fmt.Errorf("decode user %q: %w", username, err)
	}
	return rec, raw, nil
}

// UpdateProfile replaces the profile fields with patch, keeping the stored
// username and password. Returns the password-stripped result.
func (r *Repo) UpdateProfile(ctx context.Context, username string, patch map[string]any) (Record, error) {
	rec, raw, err := r.load(ctx, username)
	if err != nil {
		return nil, err
	}

	next := rec.applyProfile(patch)
	if err := r.save(ctx, username, next, raw); err != nil {
		return nil, err
	}
	return next.Sanitized(), nil
}

func (r *Repo) ChangePassword(ctx context.Context, username, newHash string) error {
	rec, raw, err := r.load(ctx, username)
	if err != nil {
		return err
	}
	return r.save(ctx, username, rec.withPassword(newHash), raw)
}

func (r *Repo) save(ctx context.Context, username string, rec Record, prev []byte) error {
	data, err := json.Marshal(rec)
	if err != nil {
		r.restore(ctx, username, prev)
		return fmt.Errorf("encode user %q: %w", username, err)
	}

	if err := r.Store.Write(ctx, blob.Users, username, data); err != nil {
		r.restore(ctx, username, prev)
		return fmt.Errorf("save user %q: %w", username, err)
	}
	return nil
}

func (r *Repo) restore(ctx context.Context, username string, prev []byte) {
	if prev == nil {
		return
	}
	if err := r.Store.Write(ctx, blob.Users, username, prev); err != nil && r.Log != nil {
		r.Log.Error("compensating rewrite failed",
			zap.String("username", username), zap.Error(err))
	}
}

// Delete removes the profile blob and the order blob concurrently. The
// outcome follows the profile deletion; a failed order-blob removal is
// only logged.
func (r *Repo) Delete(ctx context.Context, username string) error {
	userCh := make(chan error, 1)
	orderCh := make(chan error, 1)

	go func() { userCh <- r.Store.Remove(ctx, blob.Users, username) }()
	go func() { orderCh <- r.Store.Remove(ctx, blob.Orders, username) }()

	userErr := <-userCh
	if orderErr := <-orderCh; orderErr != nil && !errors.Is(orderErr, blob.ErrNotFound) {
		if r.Log != nil {
			r.Log.Warn("remove order blob failed",
				zap.String("username", username), zap.Error(orderErr))
		}
	}

	if errors.Is(userErr, blob.ErrNotFound) {
		return ErrNotFound
	}
	return userErr
}
