package social

import "github.com/streetify/streetify-backend/pkg/types"

// Reduce applies one action and returns the next state. Collection writes
// upsert into the canonical record map; records no collection references
// anymore are dropped from the map.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case SetFeed:
		return replaceCollection(s, a.Contents, func(next *State, ids []string) { next.FeedIDs = ids })
	case SetStories:
		next := replaceCollection(s, a.Contents, func(next *State, ids []string) { next.StoryIDs = ids })
		next.ActiveStoryIndex = clampIndex(next.ActiveStoryIndex, len(next.StoryIDs))
		return next
	case SetReels:
		next := replaceCollection(s, a.Contents, func(next *State, ids []string) { next.ReelIDs = ids })
		next.ActiveReelIndex = clampIndex(next.ActiveReelIndex, len(next.ReelIDs))
		return next
	case SetUserPosts:
		if a.UserID == "" {
			return s
		}
		return replaceCollection(s, a.Contents, func(next *State, ids []string) {
			next.UserPostIDs[a.UserID] = ids
		})
	case AddToFeed:
		return prependContent(s, a.Content, func(next *State) *[]string { return &next.FeedIDs })
	case AddStory:
		return prependContent(s, a.Content, func(next *State) *[]string { return &next.StoryIDs })
	case AddReel:
		return prependContent(s, a.Content, func(next *State) *[]string { return &next.ReelIDs })
	case AddUserPost:
		if a.UserID == "" || a.Content.ID == "" {
			return s
		}
		next := s.Clone()
		next.Content[a.Content.ID] = a.Content.Clone()
		next.UserPostIDs[a.UserID] = prependID(next.UserPostIDs[a.UserID], a.Content.ID)
		return next
	case RemoveExpiredStories:
		return reduceRemoveExpiredStories(s, a)
	case ToggleLike:
		return reduceToggleLike(s, a)
	case AddComment:
		return reduceAddComment(s, a)
	case SetActiveStoryIndex:
		next := s.Clone()
		next.ActiveStoryIndex = clampIndex(a.Index, len(next.StoryIDs))
		return next
	case SetActiveReelIndex:
		next := s.Clone()
		next.ActiveReelIndex = clampIndex(a.Index, len(next.ReelIDs))
		return next
	case ClearSocial:
		return NewState()
	case SetLoading:
		next := s.Clone()
		next.Loading = a.Loading
		return next
	case SetError:
		next := s.Clone()
		if a.Err == nil {
			next.Err = nil
		} else {
			msg := *a.Err
			next.Err = &msg
		}
		return next
	default:
		return s
	}
}

func replaceCollection(s State, contents []types.SocialContent, assign func(*State, []string)) State {
	next := s.Clone()
	ids := make([]string, 0, len(contents))
	for _, content := range contents {
		if content.ID == "" {
			continue
		}
		next.Content[content.ID] = content.Clone()
		ids = append(ids, content.ID)
	}
	assign(&next, ids)
	compact(&next)
	return next
}

func prependContent(s State, content types.SocialContent, list func(*State) *[]string) State {
	if content.ID == "" {
		return s
	}
	next := s.Clone()
	next.Content[content.ID] = content.Clone()
	ids := list(&next)
	*ids = prependID(*ids, content.ID)
	return next
}

// prependID moves the id to the head, deduplicating an existing occurrence.
func prependID(ids []string, id string) []string {
	out := make([]string, 0, len(ids)+1)
	out = append(out, id)
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}

func reduceRemoveExpiredStories(s State, a RemoveExpiredStories) State {
	next := s.Clone()
	kept := next.StoryIDs[:0]
	for _, id := range next.StoryIDs {
		content, ok := next.Content[id]
		if ok && content.ExpiresAt != nil && !content.ExpiresAt.After(a.Now) {
			continue
		}
		kept = append(kept, id)
	}
	next.StoryIDs = kept
	next.ActiveStoryIndex = clampIndex(next.ActiveStoryIndex, len(next.StoryIDs))
	compact(&next)
	return next
}

func reduceToggleLike(s State, a ToggleLike) State {
	content, ok := s.Content[a.ContentID]
	if !ok {
		return s
	}
	next := s.Clone()
	updated := content.Clone()
	if a.Increment {
		updated.Likes++
	} else if updated.Likes > 0 {
		updated.Likes--
	}
	next.Content[a.ContentID] = updated
	return next
}

func reduceAddComment(s State, a AddComment) State {
	content, ok := s.Content[a.ContentID]
	if !ok || a.Comment.ID == "" {
		return s
	}
	next := s.Clone()
	updated := content.Clone()
	updated.Comments = append(updated.Comments, a.Comment.Clone())
	next.Content[a.ContentID] = updated
	return next
}

// compact drops canonical records no collection references.
func compact(next *State) {
	referenced := make(map[string]struct{}, len(next.Content))
	for _, id := range next.FeedIDs {
		referenced[id] = struct{}{}
	}
	for _, id := range next.StoryIDs {
		referenced[id] = struct{}{}
	}
	for _, id := range next.ReelIDs {
		referenced[id] = struct{}{}
	}
	for _, ids := range next.UserPostIDs {
		for _, id := range ids {
			referenced[id] = struct{}{}
		}
	}
	for id := range next.Content {
		if _, ok := referenced[id]; !ok {
			delete(next.Content, id)
		}
	}
}

func clampIndex(index, size int) int {
	if size == 0 || index < 0 {
		return 0
	}
	if index >= size {
		return size - 1
	}
	return index
}
