package repositories_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"carbontrack/internal/calculator"
	"carbontrack/internal/models"
	"carbontrack/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*repositories.JSONStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "carbon_data.json")
	store, err := repositories.NewJSONStore(path)
	require.NoError(t, err)
	return store, path
}

func testRecord(t *testing.T, userID int64) *models.FootprintRecord {
	t.Helper()
	s1, err := calculator.Scope1(models.Scope1Input{StationaryFuelTJ: 10, StationaryEF: 56100, NaturalGasM3: 100})
	require.NoError(t, err)
	s2, err := calculator.Scope2(models.Scope2Input{ElectricityKWh: 1000, RenewablePercent: 50})
	require.NoError(t, err)
	s3, err := calculator.Scope3(models.Scope3Input{WasteMassKg: 1000, DOC: 0.2, DOCf: 0.5, F: 0.5})
	require.NoError(t, err)

	record, err := calculator.Aggregate(userID, s1, s2, s3)
	require.NoError(t, err)
	return record
}

func TestJSONStore_CreateUserAndDuplicateEmail(t *testing.T) {
	store, _ := newTestStore(t)

	user, err := store.Create("test@example.com", "hash1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.NotZero(t, user.CreatedAt)

	// Second registration with the same email fails and creates nothing.
	_, err = store.Create("test@example.com", "hash2")
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)

	// Email comparison is an exact match, so a different casing registers.
	other, err := store.Create("Test@example.com", "hash3")
	require.NoError(t, err)
	assert.Equal(t, int64(2), other.ID)

	fetched, err := store.GetByEmail("test@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hash1", fetched.Password)
}

func TestJSONStore_GetByEmailNotFound(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.GetByEmail("missing@example.com")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestJSONStore_SaveAndRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	record := testRecord(t, 1)
	saved, err := store.Save(record)
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)
	assert.NotZero(t, saved.CreatedAt)

	records, err := store.GetByUser(1)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, saved.Scope1Emissions, got.Scope1Emissions)
	assert.Equal(t, saved.Scope2Emissions, got.Scope2Emissions)
	assert.Equal(t, saved.Scope3Emissions, got.Scope3Emissions)
	assert.Equal(t, saved.TotalEmissions, got.TotalEmissions)

	// emission_details round-trips with category order intact.
	assert.Equal(t, models.Scope1Categories, got.EmissionDetails.Scope1.Keys())
	assert.Equal(t, models.Scope2Categories, got.EmissionDetails.Scope2.Keys())
	assert.Equal(t, models.Scope3Categories, got.EmissionDetails.Scope3.Keys())
	assert.Equal(t, saved.EmissionDetails.Scope1.Sum(), got.EmissionDetails.Scope1.Sum())
}

func TestJSONStore_RetrievalIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Save(testRecord(t, 1))
	require.NoError(t, err)
	_, err = store.Save(testRecord(t, 1))
	require.NoError(t, err)

	first, err := store.GetByUser(1)
	require.NoError(t, err)
	second, err := store.GetByUser(1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestJSONStore_SequentialIDsAcrossUsers(t *testing.T) {
	store, _ := newTestStore(t)

	owners := []int64{1, 2, 1, 3, 2}
	var previous int64
	for _, userID := range owners {
		saved, err := store.Save(testRecord(t, userID))
		require.NoError(t, err)
		assert.Greater(t, saved.ID, previous, "IDs strictly increase regardless of owner")
		previous = saved.ID
	}
	assert.Equal(t, int64(len(owners)), previous)
}

func TestJSONStore_GetByIDOwnershipAgnostic(t *testing.T) {
	store, _ := newTestStore(t)
	saved, err := store.Save(testRecord(t, 42))
	require.NoError(t, err)

	got, err := store.GetByID(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.UserID)

	_, err = store.GetByID(999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestJSONStore_PersistedLayout(t *testing.T) {
	store, path := newTestStore(t)
	_, err := store.Create("test@example.com", "hash")
	require.NoError(t, err)
	_, err = store.Save(testRecord(t, 1))
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Contains(t, doc, "users")
	assert.Contains(t, doc, "carbon_footprints")

	var footprints []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(doc["carbon_footprints"], &footprints))
	require.Len(t, footprints, 1)
	for _, field := range []string{"id", "user_id", "created_at", "scope1_emissions",
		"scope2_emissions", "scope3_emissions", "total_emissions", "emission_details"} {
		assert.Contains(t, footprints[0], field)
	}

	var details map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(footprints[0]["emission_details"], &details))
	assert.Contains(t, details, "scope1")
	assert.Contains(t, details, "scope2")
	assert.Contains(t, details, "scope3")
}

func TestJSONStore_RecoversFromCorruptFileViaBackup(t *testing.T) {
	store, path := newTestStore(t)

	_, err := store.Create("test@example.com", "hash")
	require.NoError(t, err)
	_, err = store.Save(testRecord(t, 1))
	require.NoError(t, err)
	// The save above backed up the state containing the user.

	require.NoError(t, os.WriteFile(path, []byte("{corrupt"), 0o644))

	user, err := store.GetByEmail("test@example.com")
	require.NoError(t, err, "store restores the last-known-good backup")
	assert.Equal(t, int64(1), user.ID)
}

func TestJSONStore_CorruptFileWithoutBackupSurfacesError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carbon_data.json")
	store, err := repositories.NewJSONStore(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("{corrupt"), 0o644))

	_, err = store.GetByEmail("anyone@example.com")
	assert.Error(t, err)
}
