package social

import "github.com/streetify/streetify-backend/pkg/types"

// State is the social slice. Content is the single canonical record per id;
// the id lists only order collections. A like or comment therefore lands on
// one record no matter how many collections show it.
type State struct {
	Content          map[string]types.SocialContent `json:"content"`
	FeedIDs          []string                       `json:"feed_ids"`
	StoryIDs         []string                       `json:"story_ids"`
	ReelIDs          []string                       `json:"reel_ids"`
	UserPostIDs      map[string][]string            `json:"user_post_ids"`
	ActiveStoryIndex int                            `json:"active_story_index"`
	ActiveReelIndex  int                            `json:"active_reel_index"`
	Loading          bool                           `json:"loading"`
	Err              *string                        `json:"error"`
}

// NewState returns the empty slice state.
func NewState() State {
	return State{
		Content:     map[string]types.SocialContent{},
		UserPostIDs: map[string][]string{},
	}
}

// Feed materializes the feed collection in order. Dangling ids are skipped.
func (s State) Feed() []types.SocialContent { return s.materialize(s.FeedIDs) }

// Stories materializes the stories collection in order.
func (s State) Stories() []types.SocialContent { return s.materialize(s.StoryIDs) }

// Reels materializes the reels collection in order.
func (s State) Reels() []types.SocialContent { return s.materialize(s.ReelIDs) }

// UserPosts materializes one user's posts in order.
func (s State) UserPosts(userID string) []types.SocialContent {
	return s.materialize(s.UserPostIDs[userID])
}

// Get returns one canonical record by id.
func (s State) Get(contentID string) (types.SocialContent, bool) {
	content, ok := s.Content[contentID]
	if !ok {
		return types.SocialContent{}, false
	}
	return content.Clone(), true
}

func (s State) materialize(ids []string) []types.SocialContent {
	out := make([]types.SocialContent, 0, len(ids))
	for _, id := range ids {
		if content, ok := s.Content[id]; ok {
			out = append(out, content.Clone())
		}
	}
	return out
}

// Clone returns a deep copy of the slice state.
func (s State) Clone() State {
	out := s
	out.Content = make(map[string]types.SocialContent, len(s.Content))
	for id, content := range s.Content {
		out.Content[id] = content.Clone()
	}
	out.FeedIDs = cloneIDs(s.FeedIDs)
	out.StoryIDs = cloneIDs(s.StoryIDs)
	out.ReelIDs = cloneIDs(s.ReelIDs)
	out.UserPostIDs = make(map[string][]string, len(s.UserPostIDs))
	for userID, ids := range s.UserPostIDs {
		out.UserPostIDs[userID] = cloneIDs(ids)
	}
	if s.Err != nil {
		msg := *s.Err
		out.Err = &msg
	}
	return out
}

func cloneIDs(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
