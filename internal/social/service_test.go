package social

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/streetify/streetify-backend/pkg/enums"
	pkgerrors "github.com/streetify/streetify-backend/pkg/errors"
	"github.com/streetify/streetify-backend/pkg/logger"
	"github.com/streetify/streetify-backend/pkg/types"
)

type stubStore struct {
	state State
}

func (s *stubStore) Social() State { return s.state.Clone() }

func (s *stubStore) DispatchSocial(ctx context.Context, action Action) {
	s.state = Reduce(s.state, action)
}

type stubFetcher struct {
	feedFn func(ctx context.Context) ([]types.SocialContent, error)
}

func (s *stubFetcher) GetFeedPosts(ctx context.Context) ([]types.SocialContent, error) {
	return s.feedFn(ctx)
}

func newTestService(t *testing.T, store *stubStore, fetcher *stubFetcher) Service {
	t.Helper()
	if fetcher == nil {
		fetcher = &stubFetcher{feedFn: func(ctx context.Context) ([]types.SocialContent, error) {
			return nil, errors.New("unexpected call")
		}}
	}
	logg := logger.New(logger.Options{ServiceName: "social-test", Output: io.Discard})
	svc, err := NewService(store, fetcher, logg)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestRefreshFeedReplacesCollection(t *testing.T) {
	store := &stubStore{state: NewState()}
	fetcher := &stubFetcher{feedFn: func(ctx context.Context) ([]types.SocialContent, error) {
		return []types.SocialContent{post("p1"), post("p2")}, nil
	}}
	svc := newTestService(t, store, fetcher)

	posts, err := svc.RefreshFeed(context.Background())
	if err != nil {
		t.Fatalf("refresh feed: %v", err)
	}
	if len(posts) != 2 || len(store.state.FeedIDs) != 2 {
		t.Fatalf("feed not replaced: %v", store.state.FeedIDs)
	}
	if store.state.Loading {
		t.Fatal("loading flag left set")
	}
}

func TestRefreshFeedFailure(t *testing.T) {
	store := &stubStore{state: NewState()}
	fetcher := &stubFetcher{feedFn: func(ctx context.Context) ([]types.SocialContent, error) {
		return nil, errors.New("feed down")
	}}
	svc := newTestService(t, store, fetcher)

	_, err := svc.RefreshFeed(context.Background())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
	if store.state.Err == nil {
		t.Fatal("slice error not recorded")
	}
}

func TestPublishPostLandsInFeedAndUserPosts(t *testing.T) {
	store := &stubStore{state: NewState()}
	svc := newTestService(t, store, nil)

	content, err := svc.Publish(context.Background(), PublishInput{
		CreatorID: "u1",
		Type:      enums.ContentTypePost,
		Media:     []types.Media{{Type: enums.MediaTypeImage, URL: "https://cdn/x"}},
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if content.ID == "" {
		t.Fatal("expected generated content id")
	}
	if len(store.state.FeedIDs) != 1 || store.state.FeedIDs[0] != content.ID {
		t.Fatal("post not at feed head")
	}
	if len(store.state.UserPostIDs["u1"]) != 1 {
		t.Fatal("post not recorded under creator")
	}
	if content.ExpiresAt != nil {
		t.Fatal("posts must not expire")
	}
}

func TestPublishStoryGetsExpiry(t *testing.T) {
	store := &stubStore{state: NewState()}
	svc := newTestService(t, store, nil)

	content, err := svc.Publish(context.Background(), PublishInput{
		CreatorID: "u1",
		Type:      enums.ContentTypeStory,
		Media:     []types.Media{{Type: enums.MediaTypeVideo, URL: "https://cdn/v"}},
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if content.ExpiresAt == nil {
		t.Fatal("story must carry an expiry")
	}
	ttl := content.ExpiresAt.Sub(content.CreatedAt)
	if ttl != storyTTL {
		t.Fatalf("story ttl = %s, want %s", ttl, storyTTL)
	}
	if len(store.state.StoryIDs) != 1 {
		t.Fatal("story not recorded")
	}
	if len(store.state.FeedIDs) != 0 {
		t.Fatal("story must not land in the feed")
	}
}

func TestPublishValidation(t *testing.T) {
	svc := newTestService(t, &stubStore{state: NewState()}, nil)

	_, err := svc.Publish(context.Background(), PublishInput{
		CreatorID: "u1",
		Type:      enums.ContentTypePost,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestToggleLikeUnknownContent(t *testing.T) {
	svc := newTestService(t, &stubStore{state: NewState()}, nil)

	_, err := svc.ToggleLike(context.Background(), "ghost", true)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAddCommentGeneratesID(t *testing.T) {
	store := &stubStore{state: NewState()}
	store.state = Reduce(store.state, SetFeed{Contents: []types.SocialContent{post("p1")}})
	svc := newTestService(t, store, nil)

	updated, err := svc.AddComment(context.Background(), AddCommentInput{ContentID: "p1", UserID: "u2", Content: "nice"})
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}
	if len(updated.Comments) != 1 || updated.Comments[0].ID == "" {
		t.Fatalf("comments = %+v", updated.Comments)
	}
}

func TestSweepExpiredStoriesCountsRemovals(t *testing.T) {
	now := time.Now().UTC()
	store := &stubStore{state: NewState()}
	store.state = Reduce(store.state, SetStories{Contents: []types.SocialContent{
		story("s1", now.Add(-time.Minute)),
		story("s2", now.Add(time.Hour)),
	}})
	svc := newTestService(t, store, nil)

	if removed := svc.SweepExpiredStories(context.Background(), now); removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if removed := svc.SweepExpiredStories(context.Background(), now); removed != 0 {
		t.Fatalf("second sweep removed = %d, want 0", removed)
	}
}
