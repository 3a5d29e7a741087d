package cache

import (
	"fmt"
	"time"
)

// Only identity data is cached. Derived ranking fields (comment_count,
// like_count, age_days, article_point) are recomputed on every query and
// must never be stored here.
const (
	UserKeyPrefix = "user:%d"
	UserTTL       = 5 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}
