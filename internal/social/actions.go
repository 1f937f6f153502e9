package social

import (
	"time"

	"github.com/streetify/streetify-backend/pkg/types"
)

// Action is a serializable social-slice event consumed by Reduce.
type Action interface {
	Name() string
	isSocialAction()
}

// SetFeed replaces the feed collection wholesale.
type SetFeed struct {
	Contents []types.SocialContent `json:"contents"`
}

// SetStories replaces the stories collection wholesale.
type SetStories struct {
	Contents []types.SocialContent `json:"contents"`
}

// SetReels replaces the reels collection wholesale.
type SetReels struct {
	Contents []types.SocialContent `json:"contents"`
}

// SetUserPosts replaces one user's posts wholesale.
type SetUserPosts struct {
	UserID   string                `json:"user_id"`
	Contents []types.SocialContent `json:"contents"`
}

// AddToFeed prepends content to the feed.
type AddToFeed struct {
	Content types.SocialContent `json:"content"`
}

// AddStory prepends content to the stories collection.
type AddStory struct {
	Content types.SocialContent `json:"content"`
}

// AddReel prepends content to the reels collection.
type AddReel struct {
	Content types.SocialContent `json:"content"`
}

// AddUserPost prepends content to one user's posts.
type AddUserPost struct {
	UserID  string              `json:"user_id"`
	Content types.SocialContent `json:"content"`
}

// RemoveExpiredStories drops stories whose ExpiresAt is at or before Now.
// Expiry only happens through this action; nothing sweeps on its own.
type RemoveExpiredStories struct {
	Now time.Time `json:"now"`
}

// ToggleLike adjusts the like count on the canonical record. Decrements floor
// at zero.
type ToggleLike struct {
	ContentID string `json:"content_id"`
	Increment bool   `json:"increment"`
}

// AddComment appends a comment to the canonical record.
type AddComment struct {
	ContentID string        `json:"content_id"`
	Comment   types.Comment `json:"comment"`
}

// SetActiveStoryIndex moves the story cursor.
type SetActiveStoryIndex struct {
	Index int `json:"index"`
}

// SetActiveReelIndex moves the reel cursor.
type SetActiveReelIndex struct {
	Index int `json:"index"`
}

// ClearSocial resets the slice to its initial state.
type ClearSocial struct{}

// SetLoading flips the slice-local loading flag.
type SetLoading struct {
	Loading bool `json:"loading"`
}

// SetError records a slice-local error message; nil clears it.
type SetError struct {
	Err *string `json:"error"`
}

func (SetFeed) Name() string              { return "social/setFeed" }
func (SetStories) Name() string           { return "social/setStories" }
func (SetReels) Name() string             { return "social/setReels" }
func (SetUserPosts) Name() string         { return "social/setUserPosts" }
func (AddToFeed) Name() string            { return "social/addToFeed" }
func (AddStory) Name() string             { return "social/addStory" }
func (AddReel) Name() string              { return "social/addReel" }
func (AddUserPost) Name() string          { return "social/addUserPost" }
func (RemoveExpiredStories) Name() string { return "social/removeExpiredStories" }
func (ToggleLike) Name() string           { return "social/toggleLike" }
func (AddComment) Name() string           { return "social/addComment" }
func (SetActiveStoryIndex) Name() string  { return "social/setActiveStoryIndex" }
func (SetActiveReelIndex) Name() string   { return "social/setActiveReelIndex" }
func (ClearSocial) Name() string          { return "social/clearSocial" }
func (SetLoading) Name() string           { return "social/setLoading" }
func (SetError) Name() string             { return "social/setError" }

func (SetFeed) isSocialAction()              {}
func (SetStories) isSocialAction()           {}
func (SetReels) isSocialAction()             {}
func (SetUserPosts) isSocialAction()         {}
func (AddToFeed) isSocialAction()            {}
func (AddStory) isSocialAction()             {}
func (AddReel) isSocialAction()              {}
func (AddUserPost) isSocialAction()          {}
func (RemoveExpiredStories) isSocialAction() {}
func (ToggleLike) isSocialAction()           {}
func (AddComment) isSocialAction()           {}
func (SetActiveStoryIndex) isSocialAction()  {}
func (SetActiveReelIndex) isSocialAction()   {}
func (ClearSocial) isSocialAction()          {}
func (SetLoading) isSocialAction()           {}
func (SetError) isSocialAction()             {}
