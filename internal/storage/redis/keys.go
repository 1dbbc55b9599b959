package redis

import "fmt"

// Key prefix for all board-related data
const keyPrefix = "wordboard"

// moveKey returns the Redis key for a cached best move
func moveKey(key string) string {
	return fmt.Sprintf("%s:move:%s", keyPrefix, key)
}
