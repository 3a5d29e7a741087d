package models

import "time"

// Ranking weights. A content item loses AgePenalty points per whole day of
// age and gains CommentWeight per visible comment and LikeWeight per like;
// comments weigh more because they are higher-effort engagement.
const (
	AgePenalty    = 5
	CommentWeight = 3
	LikeWeight    = 1
)

// AgeDays returns the number of whole days elapsed between createdAt and now.
// Both instants are truncated to whole seconds first so that two items
// created a day apart can never land in the same bucket through sub-second
// drift. Callers evaluating a batch must pass the same now for every item.
func AgeDays(createdAt, now time.Time) int {
	secs := now.UTC().Truncate(time.Second).Unix() - createdAt.UTC().Truncate(time.Second).Unix()
	if secs < 0 {
		return 0
	}
	return int(secs / (24 * 60 * 60))
}

// ArticlePoint combines recency decay and engagement into the default sort
// key. It is a pure function of per-query derived values and is never stored.
func ArticlePoint(ageDays, commentCount, likeCount int) int {
	return -AgePenalty*ageDays + CommentWeight*commentCount + LikeWeight*likeCount
}
