package redisrepo

import "fmt"

const (
	POST_KEY           = "post:%d"                // <postID>
	POST_REACTIONS_KEY = "post:%d-reactions"      // <postID>
	POST_TRAILS_KEY    = "post:%d-trails"         // <postID>
	POST_COMMENTS_KEY  = "post:%d-comments:%d:%d" // <postID>:<limit>:<offset>
	USER_CACHE_KEY     = "user-cache:%s"          // <userID>
)

func PostKey(postID int64) string {
	return fmt.Sprintf(POST_KEY, postID)
}

func PostReactionsKey(postID int64) string {
	return fmt.Sprintf(POST_REACTIONS_KEY, postID)
}

func PostTrailsKey(postID int64) string {
	return fmt.Sprintf(POST_TRAILS_KEY, postID)
}

func PostCommentsKey(postID int64, limit int, offset int) string {
	return fmt.Sprintf(POST_COMMENTS_KEY, postID, limit, offset)
}

func PostCommentsPattern(postID int64) string {
	return fmt.Sprintf("post:%d-comments:*", postID)
}

func UserCacheKey(userID string) string {
	return fmt.Sprintf(USER_CACHE_KEY, userID)
}
