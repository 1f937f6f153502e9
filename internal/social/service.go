package social

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/streetify/streetify-backend/pkg/enums"
	pkgerrors "github.com/streetify/streetify-backend/pkg/errors"
	"github.com/streetify/streetify-backend/pkg/logger"
	"github.com/streetify/streetify-backend/pkg/pagination"
	"github.com/streetify/streetify-backend/pkg/types"
)

// Store is the slice of the state container this service needs.
type Store interface {
	Social() State
	DispatchSocial(ctx context.Context, action Action)
}

type feedFetcher interface {
	GetFeedPosts(ctx context.Context) ([]types.SocialContent, error)
}

// Service exposes social operations on top of the state store.
type Service interface {
	Feed(ctx context.Context, params pagination.Params) []types.SocialContent
	Stories(ctx context.Context) []types.SocialContent
	Reels(ctx context.Context) []types.SocialContent
	UserPosts(ctx context.Context, userID string) []types.SocialContent
	RefreshFeed(ctx context.Context) ([]types.SocialContent, error)
	Publish(ctx context.Context, input PublishInput) (types.SocialContent, error)
	ToggleLike(ctx context.Context, contentID string, increment bool) (types.SocialContent, error)
	AddComment(ctx context.Context, input AddCommentInput) (types.SocialContent, error)
	SweepExpiredStories(ctx context.Context, now time.Time) int
}

type service struct {
	store   Store
	backend feedFetcher
	logg    *logger.Logger
}

// NewService builds a social service backed by the provided stack.
func NewService(store Store, fetcher feedFetcher, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("state store required")
	}
	if fetcher == nil {
		return nil, fmt.Errorf("backend client required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{store: store, backend: fetcher, logg: logg}, nil
}

// PublishInput captures new content. Stories get a 24h expiry stamped at
// publish time.
type PublishInput struct {
	CreatorID        string
	Type             enums.ContentType
	Media            []types.Media
	Caption          *string
	Location         *types.ContentLocation
	Tags             []string
	Mentions         []string
	AssociatedVendor *string
	AssociatedItems  []string
}

// AddCommentInput captures one comment on existing content.
type AddCommentInput struct {
	ContentID string
	UserID    string
	Content   string
}

const storyTTL = 24 * time.Hour

func (s *service) Feed(ctx context.Context, params pagination.Params) []types.SocialContent {
	return pagination.Page(s.store.Social().Feed(), params.Normalize())
}

func (s *service) Stories(ctx context.Context) []types.SocialContent {
	return s.store.Social().Stories()
}

func (s *service) Reels(ctx context.Context) []types.SocialContent {
	return s.store.Social().Reels()
}

func (s *service) UserPosts(ctx context.Context, userID string) []types.SocialContent {
	return s.store.Social().UserPosts(userID)
}

// RefreshFeed pulls the feed from the backend and replaces the collection.
func (s *service) RefreshFeed(ctx context.Context) ([]types.SocialContent, error) {
	s.store.DispatchSocial(ctx, SetLoading{Loading: true})
	defer s.store.DispatchSocial(ctx, SetLoading{Loading: false})

	posts, err := s.backend.GetFeedPosts(ctx)
	if err != nil {
		msg := err.Error()
		s.store.DispatchSocial(ctx, SetError{Err: &msg})
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetch feed")
	}

	s.store.DispatchSocial(ctx, SetError{Err: nil})
	s.store.DispatchSocial(ctx, SetFeed{Contents: posts})
	return posts, nil
}

// Publish inserts content optimistically at the head of its collections.
// Posts land in the feed and the creator's posts; stories and reels land in
// their own collections.
func (s *service) Publish(ctx context.Context, input PublishInput) (types.SocialContent, error) {
	if input.CreatorID == "" {
		return types.SocialContent{}, pkgerrors.New(pkgerrors.CodeValidation, "creator id is required")
	}
	if !input.Type.IsValid() {
		return types.SocialContent{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid content type")
	}
	if len(input.Media) == 0 {
		return types.SocialContent{}, pkgerrors.New(pkgerrors.CodeValidation, "content requires at least one media item")
	}

	now := time.Now().UTC()
	content := types.SocialContent{
		ID:               uuid.NewString(),
		CreatorID:        input.CreatorID,
		Type:             input.Type,
		Media:            input.Media,
		Caption:          input.Caption,
		Location:         input.Location,
		Tags:             input.Tags,
		Mentions:         input.Mentions,
		CreatedAt:        now,
		AssociatedVendor: input.AssociatedVendor,
		AssociatedItems:  input.AssociatedItems,
	}

	switch input.Type {
	case enums.ContentTypeStory:
		expires := now.Add(storyTTL)
		content.ExpiresAt = &expires
		s.store.DispatchSocial(ctx, AddStory{Content: content})
	case enums.ContentTypeReel:
		s.store.DispatchSocial(ctx, AddReel{Content: content})
	default:
		s.store.DispatchSocial(ctx, AddToFeed{Content: content})
		s.store.DispatchSocial(ctx, AddUserPost{UserID: input.CreatorID, Content: content})
	}

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"content_id":   content.ID,
		"content_type": content.Type.String(),
	}), "content published")

	return content, nil
}

func (s *service) ToggleLike(ctx context.Context, contentID string, increment bool) (types.SocialContent, error) {
	if contentID == "" {
		return types.SocialContent{}, pkgerrors.New(pkgerrors.CodeValidation, "content id is required")
	}
	if _, ok := s.store.Social().Get(contentID); !ok {
		return types.SocialContent{}, pkgerrors.New(pkgerrors.CodeNotFound, "content not found")
	}

	s.store.DispatchSocial(ctx, ToggleLike{ContentID: contentID, Increment: increment})

	updated, ok := s.store.Social().Get(contentID)
	if !ok {
		return types.SocialContent{}, pkgerrors.New(pkgerrors.CodeNotFound, "content not found")
	}
	return updated, nil
}

func (s *service) AddComment(ctx context.Context, input AddCommentInput) (types.SocialContent, error) {
	if input.ContentID == "" {
		return types.SocialContent{}, pkgerrors.New(pkgerrors.CodeValidation, "content id is required")
	}
	if input.UserID == "" {
		return types.SocialContent{}, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if input.Content == "" {
		return types.SocialContent{}, pkgerrors.New(pkgerrors.CodeValidation, "comment content is required")
	}
	if _, ok := s.store.Social().Get(input.ContentID); !ok {
		return types.SocialContent{}, pkgerrors.New(pkgerrors.CodeNotFound, "content not found")
	}

	comment := types.Comment{
		ID:        uuid.NewString(),
		UserID:    input.UserID,
		Content:   input.Content,
		CreatedAt: time.Now().UTC(),
	}
	s.store.DispatchSocial(ctx, AddComment{ContentID: input.ContentID, Comment: comment})

	updated, ok := s.store.Social().Get(input.ContentID)
	if !ok {
		return types.SocialContent{}, pkgerrors.New(pkgerrors.CodeNotFound, "content not found")
	}
	return updated, nil
}

// SweepExpiredStories dispatches the expiry action and reports how many
// stories it removed.
func (s *service) SweepExpiredStories(ctx context.Context, now time.Time) int {
	before := len(s.store.Social().StoryIDs)
	s.store.DispatchSocial(ctx, RemoveExpiredStories{Now: now})
	after := len(s.store.Social().StoryIDs)

	removed := before - after
	if removed > 0 {
		s.logg.Info(s.logg.WithField(ctx, "removed", removed), "expired stories swept")
	}
	return removed
}
