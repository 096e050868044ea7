package services_test

import (
	"testing"

	"carbontrack/internal/models"
	"carbontrack/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockFootprintRepository is a mock implementation of
// repositories.FootprintRepository
type MockFootprintRepository struct {
	mock.Mock
}

func (m *MockFootprintRepository) Save(record *models.FootprintRecord) (*models.FootprintRecord, error) {
	args := m.Called(record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FootprintRecord), args.Error(1)
}

func (m *MockFootprintRepository) GetByUser(userID int64) ([]models.FootprintRecord, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FootprintRecord), args.Error(1)
}

func (m *MockFootprintRepository) GetByID(id int64) (*models.FootprintRecord, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FootprintRecord), args.Error(1)
}

func TestFootprintService_Calculate(t *testing.T) {
	mockRepo := new(MockFootprintRepository)
	service := services.NewFootprintService(mockRepo, nil)

	input := models.CalculationInput{
		Scope1: models.Scope1Input{StationaryFuelTJ: 10, StationaryEF: 56100},
		Scope2: models.Scope2Input{ElectricityKWh: 1000},
		Scope3: models.Scope3Input{HotelNights: 10},
	}

	mockRepo.On("Save", mock.MatchedBy(func(r *models.FootprintRecord) bool {
		return r.UserID == 5 &&
			r.TotalEmissions == r.Scope1Emissions+r.Scope2Emissions+r.Scope3Emissions
	})).Return(&models.FootprintRecord{ID: 1, UserID: 5}, nil).Once()

	record, err := service.Calculate(5, input)
	require.NoError(t, err)
	assert.Equal(t, int64(1), record.ID)
	mockRepo.AssertExpectations(t)
}

func TestFootprintService_CalculateValidation(t *testing.T) {
	mockRepo := new(MockFootprintRepository)
	service := services.NewFootprintService(mockRepo, nil)

	tests := []struct {
		name  string
		input models.CalculationInput
	}{
		{"negative activity", models.CalculationInput{
			Scope1: models.Scope1Input{StationaryFuelTJ: -1},
		}},
		{"percentage above 100", models.CalculationInput{
			Scope2: models.Scope2Input{RenewablePercent: 120},
		}},
		{"fraction above 1", models.CalculationInput{
			Scope3: models.Scope3Input{DOC: 1.5},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Calculate(1, tt.input)
			assert.Error(t, err)
		})
	}

	// Nothing was persisted for any invalid request.
	mockRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestFootprintService_HistoryAndLatest(t *testing.T) {
	mockRepo := new(MockFootprintRepository)
	service := services.NewFootprintService(mockRepo, nil)

	records := []models.FootprintRecord{
		{ID: 1, UserID: 3, CreatedAt: 100, TotalEmissions: 10},
		{ID: 2, UserID: 3, CreatedAt: 300, TotalEmissions: 30},
		{ID: 3, UserID: 3, CreatedAt: 200, TotalEmissions: 20},
	}

	mockRepo.On("GetByUser", int64(3)).Return(records, nil).Twice()

	history, err := service.History(3)
	require.NoError(t, err)
	assert.Equal(t, records, history, "storage order preserved")

	latest, err := service.Latest(3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), latest.ID, "latest by creation time, not by ID")
	mockRepo.AssertExpectations(t)

	// No records at all.
	mockRepo.On("GetByUser", int64(9)).Return([]models.FootprintRecord{}, nil).Once()
	_, err = service.Latest(9)
	assert.ErrorIs(t, err, models.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestFootprintService_GetEnforcesOwnership(t *testing.T) {
	mockRepo := new(MockFootprintRepository)
	service := services.NewFootprintService(mockRepo, nil)

	record := &models.FootprintRecord{ID: 4, UserID: 1}
	mockRepo.On("GetByID", int64(4)).Return(record, nil).Twice()

	got, err := service.Get(1, 4)
	require.NoError(t, err)
	assert.Equal(t, record, got)

	// Another user's record is indistinguishable from a missing one.
	_, err = service.Get(2, 4)
	assert.ErrorIs(t, err, models.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
