package types

import (
	"time"

	"github.com/streetify/streetify-backend/pkg/enums"
)

// Media is a single attachment on social content.
type Media struct {
	Type enums.MediaType `json:"type"`
	URL  string          `json:"url"`
}

// ContentLocation tags content with a named place.
type ContentLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name"`
}

// SocialContent is a post, story, or reel. Stories carry ExpiresAt; expiry is
// swept only by an explicit operation, never automatically.
type SocialContent struct {
	ID               string            `json:"id"`
	CreatorID        string            `json:"creator_id"`
	Type             enums.ContentType `json:"type"`
	Media            []Media           `json:"media"`
	Caption          *string           `json:"caption,omitempty"`
	Location         *ContentLocation  `json:"location,omitempty"`
	Tags             []string          `json:"tags,omitempty"`
	Mentions         []string          `json:"mentions,omitempty"`
	Likes            int               `json:"likes"`
	Comments         []Comment         `json:"comments"`
	CreatedAt        time.Time         `json:"created_at"`
	ExpiresAt        *time.Time        `json:"expires_at,omitempty"`
	AssociatedVendor *string           `json:"associated_vendor,omitempty"`
	AssociatedItems  []string          `json:"associated_items,omitempty"`
}

// Comment supports one level of nested replies in practice; the type allows
// arbitrary depth.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
	Replies   []Comment `json:"replies,omitempty"`
}

// Clone returns a deep copy of the content.
func (c SocialContent) Clone() SocialContent {
	out := c
	if c.Media != nil {
		out.Media = make([]Media, len(c.Media))
		copy(out.Media, c.Media)
	}
	out.Caption = clonePtr(c.Caption)
	out.Location = clonePtr(c.Location)
	out.Tags = cloneStrings(c.Tags)
	out.Mentions = cloneStrings(c.Mentions)
	out.Comments = CloneComments(c.Comments)
	out.ExpiresAt = clonePtr(c.ExpiresAt)
	out.AssociatedVendor = clonePtr(c.AssociatedVendor)
	out.AssociatedItems = cloneStrings(c.AssociatedItems)
	return out
}

// Clone returns a deep copy of the comment and its replies.
func (c Comment) Clone() Comment {
	out := c
	out.Replies = CloneComments(c.Replies)
	return out
}

// CloneComments deep-copies a comment slice.
func CloneComments(in []Comment) []Comment {
	if in == nil {
		return nil
	}
	out := make([]Comment, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}

// CloneContents deep-copies a content slice.
func CloneContents(in []SocialContent) []SocialContent {
	if in == nil {
		return nil
	}
	out := make([]SocialContent, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
