package domain

import (
	"strings"
	"time"
)

const (
	// DefaultOffset is the listing offset used when none is supplied.
	DefaultOffset = 0
	// DefaultLimit is the listing limit used when none is supplied.
	DefaultLimit = 10
	// MaxLimit is the largest accepted listing limit.
	MaxLimit = 100
)

// ListCriteria filters and paginates a user's asset list. All set predicates
// are ANDed. Dates are calendar days in UTC.
type ListCriteria struct {
	DigitalUserID string
	Offset        int
	Limit         int
	// ExternalIDs is a comma-separated list of accepted external ids.
	ExternalIDs string
	GroupID     string
	ArtifactID  string
	Type        string
	// CreatedAt selects a single day and takes precedence over From and To.
	CreatedAt *time.Time
	From      *time.Time
	To        *time.Time
}

// Validate checks the mandatory user id and the pagination bounds.
func (c ListCriteria) Validate() error {
	if strings.TrimSpace(c.DigitalUserID) == "" {
		return ErrDigitalUserIDRequired
	}
	if c.Offset < 0 || c.Limit < 1 || c.Limit > MaxLimit {
		return ErrInvalidPagination
	}
	return nil
}

// Apply returns the assets matching c, then skips Offset and takes Limit.
// The result is never nil.
func (c ListCriteria) Apply(assets []Asset) []Asset {
	externalIDs := c.externalIDSet()

	matched := make([]Asset, 0, len(assets))
	for _, asset := range assets {
		if c.matches(asset, externalIDs) {
			matched = append(matched, asset)
		}
	}

	if c.Offset >= len(matched) {
		return []Asset{}
	}
	matched = matched[c.Offset:]
	if c.Limit > 0 && c.Limit < len(matched) {
		matched = matched[:c.Limit]
	}
	return matched
}

func (c ListCriteria) externalIDSet() map[string]struct{} {
	if c.ExternalIDs == "" {
		return nil
	}
	set := make(map[string]struct{})
	for _, id := range strings.Split(c.ExternalIDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			set[id] = struct{}{}
		}
	}
	return set
}

func (c ListCriteria) matches(asset Asset, externalIDs map[string]struct{}) bool {
	if c.GroupID != "" && asset.ArtifactInformation.GroupID != c.GroupID {
		return false
	}
	if c.ArtifactID != "" && asset.ArtifactInformation.ArtifactID != c.ArtifactID {
		return false
	}
	if c.Type != "" && asset.Type != c.Type {
		return false
	}
	if externalIDs != nil {
		if _, ok := externalIDs[asset.ExternalID]; !ok {
			return false
		}
	}

	created := asset.CreatedAt.UTC()
	if c.CreatedAt != nil {
		return sameDay(created, *c.CreatedAt)
	}
	if c.From != nil && created.Before(startOfDay(*c.From)) {
		return false
	}
	if c.To != nil && created.After(endOfDay(*c.To)) {
		return false
	}
	return true
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(24*time.Hour - time.Nanosecond)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
