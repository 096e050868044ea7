package models_test

import (
	"encoding/json"
	"testing"

	"carbontrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryResult_VocabularyEnforced(t *testing.T) {
	r := models.NewCategoryResult([]string{"a", "b"})

	assert.NoError(t, r.Set("a", 1))
	assert.Error(t, r.Set("not_in_vocabulary", 2))
	assert.Error(t, r.Set("a", 3), "duplicate keys rejected")

	v, ok := r.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)
}

func TestCategoryResult_OrderAndSum(t *testing.T) {
	r := models.NewCategoryResult(nil)
	require.NoError(t, r.Set("z", 3))
	require.NoError(t, r.Set("a", 1))
	require.NoError(t, r.Set("m", 2))

	assert.Equal(t, []string{"z", "a", "m"}, r.Keys(), "insertion order, not sorted")
	assert.Equal(t, 6.0, r.Sum())
	assert.Equal(t, 3, r.Len())
}

func TestCategoryResult_JSONRoundTripPreservesOrder(t *testing.T) {
	r := models.NewCategoryResult(nil)
	require.NoError(t, r.Set("stationary_combustion", 561000))
	require.NoError(t, r.Set("road_transport", 0))
	require.NoError(t, r.Set("railways", 8300.5))

	encoded, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"stationary_combustion":561000,"road_transport":0,"railways":8300.5}`, string(encoded))

	var decoded models.CategoryResult
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, []string{"stationary_combustion", "road_transport", "railways"}, decoded.Keys())
	assert.Equal(t, r.Sum(), decoded.Sum())
}

func TestCategoryResult_UnmarshalRejectsDuplicates(t *testing.T) {
	var r models.CategoryResult
	err := json.Unmarshal([]byte(`{"a":1,"a":2}`), &r)
	assert.Error(t, err)
}

func TestScopeVocabularySizes(t *testing.T) {
	assert.Len(t, models.Scope1Categories, 13)
	assert.Len(t, models.Scope2Categories, 3)
	assert.Len(t, models.Scope3Categories, 21)
}
