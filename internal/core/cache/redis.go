package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedPrefix = "revoked:"

// RevocationList is a redis-backed denylist for rotated refresh tokens.
// A nil *RevocationList is valid and revokes nothing: without redis the
// token pair still works, rotation is just not replay-proof.
type RevocationList struct {
	RDB *redis.Client
}

func New(addr, pass string, db int) *RevocationList {
	return &RevocationList{
		RDB: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
	}
}

// Revoke marks a token id as used. The entry only needs to live as long
// as the token itself, so it expires with the token's remaining TTL.
func (c *RevocationList) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	if ttl <= 0 {
		return nil
	}
	return c.RDB.Set(ctx, revokedPrefix+jti, 1, ttl).Err()
}

func (c *RevocationList) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if c == nil {
		return false, nil
	}
	n, err := c.RDB.Exists(ctx, revokedPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
