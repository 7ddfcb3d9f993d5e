package service

import (
	"context"
	"fmt"

	"github.com/achabill/blog/internal/store"
	"github.com/achabill/blog/models"
)

// resolveProfiles loads the public profiles for the given user IDs in a
// single storage round trip. IDs that match no stored user are simply absent
// from the result map.
func resolveProfiles(ctx context.Context, users store.UserRepository, ids []string) (map[string]models.Profile, error) {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	found, err := users.FindUsersByIDs(ctx, unique)
	if err != nil {
		return nil, fmt.Errorf("author lookup failed: %w", err)
	}

	profiles := make(map[string]models.Profile, len(found))
	for _, u := range found {
		profiles[u.ID] = u.Profile()
	}

	return profiles, nil
}
