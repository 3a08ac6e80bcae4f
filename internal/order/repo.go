package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"CoffeeCloud/internal/blob"
	"CoffeeCloud/internal/catalog"
)

var ErrNotFound = errors.New("order not found")

// Repo stores the whole order map of a user as one blob in the orders
// collection. Every change rewrites the full map; there is no isolation
// across concurrent writers (last writer wins). On a failed save the
// pre-mutation buffer is rewritten best-effort.
type Repo struct {
	Store blob.Store
	Log   *zap.Logger
}

// load returns the order map plus the raw buffer it came from. A missing
// blob is the empty map with a nil buffer, not an error.
func (r *Repo) load(ctx context.Context, username string) (Map, []byte, error) {
	raw, err := r.Store.Read(ctx, blob.Orders, username)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			return Map{}, nil, nil
		}
		return nil, nil, err
	}

	var m Map
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("decode orders %q: %w", username, err)
	}
	if m == nil {
		m = Map{}
	}
	return m, raw, nil
}

// List returns the user's orders sorted by creation time (id as tie
// break). No order blob means no orders.
func (r *Repo) List(ctx context.Context, username string) ([]Record, error) {
	m, _, err := r.load(ctx, username)
	if err != nil {
		return nil, err
	}

	out := make([]Record, 0, len(m))
	for _, rec := range m {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt < out[j].CreatedAt
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Get requires both the blob and the order to exist.
func (r *Repo) Get(ctx context.Context, username, id string) (Record, error) {
	raw, err := r.Store.Read(ctx, blob.Orders, username)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}

	var m Map
	if err := json.Unmarshal(raw, &m); err != nil {
		return Record{}, fmt.Errorf("decode orders %q: %w", username, err)
	}

	rec, ok := m[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// Create adds a new order with a server-generated id.
func (r *Repo) Create(ctx context.Context, username string, coffeeID int, size catalog.Size) (Record, error) {
	return r.put(ctx, username, "o_"+uuid.NewString(), coffeeID, size)
}

// Put replaces the order under id, creating it if absent. The creation
// timestamp is always reset: every update restarts the delivery clock.
func (r *Repo) Put(ctx context.Context, username, id string, coffeeID int, size catalog.Size) (Record, error) {
	return r.put(ctx, username, id, coffeeID, size)
}

func (r *Repo) put(ctx context.Context, username, id string, coffeeID int, size catalog.Size) (Record, error) {
	m, raw, err := r.load(ctx, username)
	if err != nil {
		return Record{}, err
	}

	rec := Record{
		ID:        id,
		CoffeeID:  coffeeID,
		Size:      size,
		CreatedAt: time.Now().UnixMilli(),
	}
	m[id] = rec

	if err := r.save(ctx, username, m, raw); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Delete removes the order and returns the removed record.
func (r *Repo) Delete(ctx context.Context, username, id string) (Record, error) {
	raw, err := r.Store.Read(ctx, blob.Orders, username)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}

	var m Map
	if err := json.Unmarshal(raw, &m); err != nil {
		return Record{}, fmt.Errorf("decode orders %q: %w", username, err)
	}

	rec, ok := m[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	delete(m, id)

	if err := r.save(ctx, username, m, raw); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (r *Repo) save(ctx context.Context, username string, m Map, prev []byte) error {
	data, err := json.Marshal(m)
	if err != nil {
		r.restore(ctx, username, prev)
		return fmt.Errorf("encode orders %q: %w", username, err)
	}

	if err := r.Store.Write(ctx, blob.Orders, username, data); err != nil {
		r.restore(ctx, username, prev)
		return fmt.Errorf("save orders %q: %w", username, err)
	}
	return nil
}

func (r *Repo) restore(ctx context.Context, username string, prev []byte) {
	if prev == nil {
		return
	}
	if err := r.Store.Write(ctx, blob.Orders, username, prev); err != nil && r.Log != nil {
		r.Log.Error("compensating rewrite failed",
			zap.String("username", username), zap.Error(err))
	}
}
