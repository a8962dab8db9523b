package client

import (
	"context"
	"sync"

	"mission_mapper/internal/models"
)

// Cache mirrors the server's mission list for one UI session. Mutations are
// applied to the mirror only after the server confirms them, and always
// keyed by mission id, never by list position, so responses from distinct
// in-flight calls may land in any order without losing updates. On failure
// the mirror keeps its last-known-good state; there are no automatic
// retries.
type Cache struct {
	client *Client

	mu       sync.Mutex
	missions []Mission
}

// NewCache creates an empty cache over the given client. Call Refresh to
// populate it.
func NewCache(c *Client) *Cache {
	return &Cache{client: c}
}

// Refresh replaces the mirror with a full fetch from the server.
func (mc *Cache) Refresh(ctx context.Context) error {
	missions, err := mc.client.List(ctx)
	if err != nil {
		return err
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.missions = missions
	return nil
}

// Create persists a new mission and appends the server-returned record,
// with its assigned id, to the mirror. Ids are never synthesized locally.
func (mc *Cache) Create(ctx context.Context, name string, path []models.Point) (*Mission, error) {
	mission, err := mc.client.Create(ctx, name, path)
	if err != nil {
		return nil, err
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.missions = append(mc.missions, *mission)
	return mission, nil
}

// Rename updates a mission's name on the server, then rewrites only the
// name of the matching local entry.
func (mc *Cache) Rename(ctx context.Context, id uint, newName string) error {
	if err := mc.client.Rename(ctx, id, newName); err != nil {
		return err
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()
	for i := range mc.missions {
		if mc.missions[i].MissionID == id {
			mc.missions[i].Name = newName
			break
		}
	}
	return nil
}

// Delete removes a mission on the server, then drops the local entry by id.
func (mc *Cache) Delete(ctx context.Context, id uint) error {
	if err := mc.client.Delete(ctx, id); err != nil {
		return err
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()
	for i := range mc.missions {
		if mc.missions[i].MissionID == id {
			mc.missions = append(mc.missions[:i], mc.missions[i+1:]...)
			break
		}
	}
	return nil
}

// Missions returns a snapshot copy of the mirror.
func (mc *Cache) Missions() []Mission {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	out := make([]Mission, len(mc.missions))
	copy(out, mc.missions)
	return out
}

// Get returns the mirrored mission with the given id, if present.
func (mc *Cache) Get(id uint) (*Mission, bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	for i := range mc.missions {
		if mc.missions[i].MissionID == id {
			m := mc.missions[i]
			return &m, true
		}
	}
	return nil, false
}
