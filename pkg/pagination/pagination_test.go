package pagination

import (
	"net/http/httptest"
	"testing"
)

func TestNormalizeLimit(t *testing.T) {
	if got := NormalizeLimit(0); got != DefaultLimit {
		t.Fatalf("expected default limit, got %d", got)
	}
	if got := NormalizeLimit(500); got != MaxLimit {
		t.Fatalf("expected max limit, got %d", got)
	}
	if got := NormalizeLimit(10); got != 10 {
		t.Fatalf("expected passthrough, got %d", got)
	}
}

func TestFromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/social/feed?limit=5&offset=10", nil)
	p := FromRequest(r)
	if p.Limit != 5 || p.Offset != 10 {
		t.Fatalf("unexpected params %+v", p)
	}

	r = httptest.NewRequest("GET", "/api/v1/social/feed?limit=-3&offset=-1", nil)
	p = FromRequest(r)
	if p.Limit != DefaultLimit || p.Offset != 0 {
		t.Fatalf("expected normalized params, got %+v", p)
	}
}

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	got := Page(items, Params{Limit: 2, Offset: 1})
	if len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Fatalf("unexpected page %v", got)
	}

	if got := Page(items, Params{Limit: 2, Offset: 99}); len(got) != 0 {
		t.Fatalf("expected empty page past the end, got %v", got)
	}

	if got := Page(items, Params{Limit: 50, Offset: 3}); len(got) != 2 {
		t.Fatalf("expected clamped tail, got %v", got)
	}
}
