package auth

import (
	"context"
	"time"

	"taskmanager/internal/cache"
)

const revokedTokenKeyPrefix = "blacklist:access_token:"

// TokenStoreInterface defines the interface for token revocation.
type TokenStoreInterface interface {
	BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error)
}

// TokenStore keeps revoked token ids in Redis until the token would have expired anyway.
type TokenStore struct {
	cache *cache.Client
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store. A nil cache disables revocation.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// BlacklistAccessToken marks the token id as revoked for ttl.
func (s *TokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.cache.Set(ctx, revokedTokenKeyPrefix+tokenID, []byte("1"), ttl)
}

// IsAccessTokenBlacklisted reports whether the token id was revoked. Cache failures
// count as not revoked.
func (s *TokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	data, err := s.cache.Get(ctx, revokedTokenKeyPrefix+tokenID)
	if err != nil {
		return false, nil
	}
	return data != nil, nil
}
