package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/tracktainment/duxmanager/internal/errors"
)

func day(value string) *time.Time {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}
	return &t
}

func at(value string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		panic(err)
	}
	return t
}

func fixtureAssets() []Asset {
	return []Asset{
		{
			ExternalID: "ext-1",
			Type:       "book",
			ArtifactInformation: ArtifactInformation{
				GroupID: "com.tracktainment", ArtifactID: "book-manager", Version: "1.0.0",
			},
			CreatedAt: at("2024-03-01T00:00:00Z"),
		},
		{
			ExternalID: "ext-2",
			Type:       "game",
			ArtifactInformation: ArtifactInformation{
				GroupID: "com.tracktainment", ArtifactID: "game-manager", Version: "1.0.0",
			},
			CreatedAt: at("2024-03-02T23:59:59.999999999Z"),
		},
		{
			ExternalID: "ext-3",
			Type:       "book",
			ArtifactInformation: ArtifactInformation{
				GroupID: "org.other", ArtifactID: "book-manager", Version: "2.0.0",
			},
			CreatedAt: at("2024-03-05T12:00:00Z"),
		},
	}
}

func externalIDs(assets []Asset) []string {
	ids := make([]string, 0, len(assets))
	for _, a := range assets {
		ids = append(ids, a.ExternalID)
	}
	return ids
}

func TestListCriteria_Apply(t *testing.T) {
	tests := []struct {
		name     string
		criteria ListCriteria
		expected []string
	}{
		{
			name:     "OnlyUserID",
			criteria: ListCriteria{DigitalUserID: "u", Limit: DefaultLimit},
			expected: []string{"ext-1", "ext-2", "ext-3"},
		},
		{
			name:     "ByType",
			criteria: ListCriteria{DigitalUserID: "u", Limit: DefaultLimit, Type: "game"},
			expected: []string{"ext-2"},
		},
		{
			name:     "ByGroupAndArtifact",
			criteria: ListCriteria{DigitalUserID: "u", Limit: DefaultLimit, GroupID: "com.tracktainment", ArtifactID: "book-manager"},
			expected: []string{"ext-1"},
		},
		{
			name:     "ByExternalIDs",
			criteria: ListCriteria{DigitalUserID: "u", Limit: DefaultLimit, ExternalIDs: "ext-3, ext-1,unknown"},
			expected: []string{"ext-1", "ext-3"},
		},
		{
			name:     "ExternalIDsWithOnlySeparators",
			criteria: ListCriteria{DigitalUserID: "u", Limit: DefaultLimit, ExternalIDs: ","},
			expected: []string{},
		},
		{
			name:     "ByCreatedAtDay",
			criteria: ListCriteria{DigitalUserID: "u", Limit: DefaultLimit, CreatedAt: day("2024-03-02")},
			expected: []string{"ext-2"},
		},
		{
			name: "CreatedAtWinsOverRange",
			criteria: ListCriteria{
				DigitalUserID: "u", Limit: DefaultLimit,
				CreatedAt: day("2024-03-05"), From: day("2024-03-01"), To: day("2024-03-02"),
			},
			expected: []string{"ext-3"},
		},
		{
			name:     "InclusiveRange",
			criteria: ListCriteria{DigitalUserID: "u", Limit: DefaultLimit, From: day("2024-03-01"), To: day("2024-03-02")},
			expected: []string{"ext-1", "ext-2"},
		},
		{
			name:     "OpenEndedFrom",
			criteria: ListCriteria{DigitalUserID: "u", Limit: DefaultLimit, From: day("2024-03-03")},
			expected: []string{"ext-3"},
		},
		{
			name:     "TypeAndRangeAnded",
			criteria: ListCriteria{DigitalUserID: "u", Limit: DefaultLimit, Type: "book", To: day("2024-03-04")},
			expected: []string{"ext-1"},
		},
		{
			name:     "OffsetThenLimit",
			criteria: ListCriteria{DigitalUserID: "u", Offset: 1, Limit: 1},
			expected: []string{"ext-2"},
		},
		{
			name:     "OffsetAppliedAfterFilter",
			criteria: ListCriteria{DigitalUserID: "u", Offset: 1, Limit: 10, Type: "book"},
			expected: []string{"ext-3"},
		},
		{
			name:     "OffsetBeyondEnd",
			criteria: ListCriteria{DigitalUserID: "u", Offset: 10, Limit: 10},
			expected: []string{},
		},
		{
			name:     "NoMatch",
			criteria: ListCriteria{DigitalUserID: "u", Limit: DefaultLimit, Type: "movie"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.criteria.Apply(fixtureAssets())
			assert.NotNil(t, result)
			assert.Equal(t, tt.expected, externalIDs(result))
		})
	}
}

func TestListCriteria_ApplyEmptyList(t *testing.T) {
	result := ListCriteria{DigitalUserID: "u", Limit: DefaultLimit}.Apply(nil)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestListCriteria_Validate(t *testing.T) {
	tests := []struct {
		name     string
		criteria ListCriteria
		err      error
	}{
		{"Success_Defaults", ListCriteria{DigitalUserID: "u", Limit: DefaultLimit}, nil},
		{"Success_MaxLimit", ListCriteria{DigitalUserID: "u", Limit: MaxLimit}, nil},
		{"Error_MissingUser", ListCriteria{Limit: DefaultLimit}, ErrDigitalUserIDRequired},
		{"Error_BlankUser", ListCriteria{DigitalUserID: "  ", Limit: DefaultLimit}, ErrDigitalUserIDRequired},
		{"Error_NegativeOffset", ListCriteria{DigitalUserID: "u", Offset: -1, Limit: 1}, ErrInvalidPagination},
		{"Error_ZeroLimit", ListCriteria{DigitalUserID: "u"}, ErrInvalidPagination},
		{"Error_LimitTooLarge", ListCriteria{DigitalUserID: "u", Limit: MaxLimit + 1}, ErrInvalidPagination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.criteria.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		})
	}
}

func TestParsePermissionPolicy(t *testing.T) {
	policy, err := ParsePermissionPolicy("owner")
	assert.NoError(t, err)
	assert.Equal(t, PermissionOwner, policy)

	policy, err = ParsePermissionPolicy("viewer")
	assert.NoError(t, err)
	assert.Equal(t, PermissionViewer, policy)

	_, err = ParsePermissionPolicy("admin")
	assert.ErrorIs(t, err, ErrUnknownPermissionPolicy)
}
