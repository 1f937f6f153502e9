package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/streetify/streetify-backend/pkg/logger"
)

type storySweeper interface {
	SweepExpiredStories(ctx context.Context, now time.Time) int
}

// StoryExpiryJobParams configure the sweep job.
type StoryExpiryJobParams struct {
	Logger *logger.Logger
	Social storySweeper
}

// NewStoryExpiryJob builds the job that dispatches the story-expiry action on
// a schedule. Stories never expire on their own; this is the caller the
// state core expects.
func NewStoryExpiryJob(params StoryExpiryJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Social == nil {
		return nil, fmt.Errorf("social service required")
	}
	return &storyExpiryJob{
		logg:   params.Logger,
		social: params.Social,
		now:    time.Now,
	}, nil
}

type storyExpiryJob struct {
	logg   *logger.Logger
	social storySweeper
	now    func() time.Time
}

func (j *storyExpiryJob) Name() string { return "story-expiry" }

func (j *storyExpiryJob) Run(ctx context.Context) error {
	removed := j.social.SweepExpiredStories(ctx, j.now().UTC())
	if removed > 0 {
		j.logg.Info(j.logg.WithField(ctx, "removed", removed), "expired stories removed")
	}
	return nil
}
