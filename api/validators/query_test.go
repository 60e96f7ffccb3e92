package validators

import (
	"net/http/httptest"
	"strconv"
	"testing"

	pkgerrors "github.com/angelmondragon/swipeshop-backend/pkg/errors"
	"github.com/angelmondragon/swipeshop-backend/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCollectionParamsDefaults(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/collections/liked", nil)

	params, err := ParseCollectionParams(req, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, params.LoadAmount)
	assert.False(t, params.Reversed)
	assert.Empty(t, params.StartAt)
	assert.True(t, params.Filter().IsEmpty())
}

func TestParseCollectionParamsFilters(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/collections/liked?loadAmount=3&startAt=%20p1%20&reversed=true&filteredGenders=Men,WOMEN&filteredColors=red,,Blue&query=%20Linen%20", nil)

	params, err := ParseCollectionParams(req, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, params.LoadAmount)
	assert.Equal(t, "p1", params.StartAt)
	assert.True(t, params.Reversed)

	filter := params.Filter()
	assert.Equal(t, []string{"men", "women"}, filter.Genders)
	assert.Equal(t, []string{"red", "blue"}, filter.Colors)
	assert.Nil(t, filter.Categories)
	assert.Equal(t, "linen", filter.Search)
}

func TestParseCollectionParamsRejectsLoadAmount(t *testing.T) {
	for _, raw := range []string{"0", "51", "-2", "abc"} {
		req := httptest.NewRequest("GET", "/x?loadAmount="+raw, nil)
		_, err := ParseCollectionParams(req, 5)
		require.Error(t, err, raw)
		assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation), raw)
	}

	req := httptest.NewRequest("GET", "/x?loadAmount=50", nil)
	params, err := ParseCollectionParams(req, 5)
	require.NoError(t, err)
	assert.Equal(t, 50, params.LoadAmount)
}

func TestParseCollectionParamsReportsField(t *testing.T) {
	req := httptest.NewRequest("GET", "/x?loadAmount=0", nil)
	_, err := ParseCollectionParams(req, 5)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	details, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "must be between 1 and 50", details["loadAmount"])
}

func TestParseCollectionParamsFollowsMaxLoadAmount(t *testing.T) {
	req := httptest.NewRequest("GET", "/x?loadAmount="+strconv.Itoa(pagination.MaxLoadAmount), nil)
	params, err := ParseCollectionParams(req, 5)
	if err != nil {
		t.Fatalf("max load amount rejected: %v", err)
	}
	if params.LoadAmount != pagination.MaxLoadAmount {
		t.Fatalf("expected %d, got %d", pagination.MaxLoadAmount, params.LoadAmount)
	}

	req = httptest.NewRequest("GET", "/x?loadAmount="+strconv.Itoa(pagination.MaxLoadAmount+1), nil)
	if _, err := ParseDiscoveryParams(req, 5); !pkgerrors.HasCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error above max, got %v", err)
	}
}

func TestParseDiscoveryParams(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/discover?excludeSaved=1&excludeDeleted=true&ordered=false&filteredCategories=Shoes", nil)

	params, err := ParseDiscoveryParams(req, 5)
	require.NoError(t, err)
	assert.True(t, params.ExcludeSaved)
	assert.True(t, params.ExcludeDeleted)
	assert.False(t, params.Ordered)
	assert.Equal(t, []string{"shoes"}, params.Filter().Categories)

	req = httptest.NewRequest("GET", "/api/v1/discover?ordered=maybe", nil)
	_, err = ParseDiscoveryParams(req, 5)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "héllo", SanitizeString("  héllo  ", 0))
	assert.Equal(t, "hé", SanitizeString("héllo", 2))
}
