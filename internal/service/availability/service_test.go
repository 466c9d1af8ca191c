package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PM-AvailabilityService/internal/domain"
	"github.com/m04kA/PM-AvailabilityService/internal/integrations/profileservice"
	"github.com/m04kA/PM-AvailabilityService/internal/service/availability/models"
	"github.com/m04kA/PM-AvailabilityService/pkg/types"
)

type fakeAvailabilityRepo struct {
	stored domain.Availability
}

func (f *fakeAvailabilityRepo) GetByPhotographer(_ context.Context, _ int64) (domain.Availability, error) {
	return f.stored.Clone(), nil
}

func (f *fakeAvailabilityRepo) ReplaceAll(_ context.Context, _ int64, avail domain.Availability) error {
	f.stored = avail.Clone()
	return nil
}

type fakeProfileClient struct {
	photographer *profileservice.Photographer
}

func (f *fakeProfileClient) GetPhotographer(_ context.Context, _ int64) (*profileservice.Photographer, error) {
	if f.photographer == nil {
		return nil, profileservice.ErrPhotographerNotFound
	}
	return f.photographer, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeAvailabilityRepo) *Service {
	client := &fakeProfileClient{photographer: &profileservice.Photographer{
		ID:     1,
		UserID: 42,
		Active: true,
	}}
	return NewService(repo, client, &fakeTxManager{}, nopLogger{})
}

func TestGetWeeklyTemplate(t *testing.T) {
	// 2024-06-10 и 2024-06-17 - понедельники
	repo := &fakeAvailabilityRepo{stored: domain.Availability{
		"2024-06-10": {"09:00"},
		"2024-06-17": {"10:00"},
	}}
	svc := newTestService(repo)

	resp, err := svc.GetWeeklyTemplate(context.Background(), &models.GetTemplateRequest{
		PhotographerID: 1,
		UserID:         42,
	})
	require.NoError(t, err)
	require.Len(t, resp.Days, domain.DaysPerWeek)

	monday := resp.Days[1]
	assert.True(t, monday.Enabled)
	assert.Equal(t, []string{"09:00", "10:00"}, monday.Slots)

	for _, day := range resp.Days {
		if day.Weekday == 1 {
			continue
		}
		assert.False(t, day.Enabled, "weekday %d", day.Weekday)
	}
}

func TestGetWeeklyTemplate_ColdStart(t *testing.T) {
	svc := newTestService(&fakeAvailabilityRepo{stored: domain.Availability{}})

	resp, err := svc.GetWeeklyTemplate(context.Background(), &models.GetTemplateRequest{
		PhotographerID: 1,
		UserID:         42,
	})
	require.NoError(t, err)

	for _, day := range resp.Days {
		assert.False(t, day.Enabled)
		assert.Empty(t, day.Slots)
	}
}

func TestGetWeeklyTemplate_AccessDenied(t *testing.T) {
	svc := newTestService(&fakeAvailabilityRepo{stored: domain.Availability{}})

	_, err := svc.GetWeeklyTemplate(context.Background(), &models.GetTemplateRequest{
		PhotographerID: 1,
		UserID:         7,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestToggleSlot_UnblockAndBlock(t *testing.T) {
	repo := &fakeAvailabilityRepo{stored: domain.Availability{
		"2024-06-10": {"09:00"},
	}}
	svc := newTestService(repo)

	// Разблокировка заблокированного слота
	resp, err := svc.ToggleSlot(context.Background(), &models.ToggleSlotRequest{
		PhotographerID: 1,
		UserID:         42,
		Date:           "2024-06-10",
		Time:           "08:00",
		Blocked:        true,
	})
	require.NoError(t, err)
	assert.Equal(t, "available", resp.Status)
	assert.Equal(t, []types.TimeString{"08:00", "09:00"}, repo.stored["2024-06-10"])

	// Блокировка последнего доступного слота: запись даты остается (пустой)
	resp, err = svc.ToggleSlot(context.Background(), &models.ToggleSlotRequest{
		PhotographerID: 1,
		UserID:         42,
		Date:           "2024-06-10",
		Time:           "08:00",
		Blocked:        false,
	})
	require.NoError(t, err)
	assert.Equal(t, "blocked", resp.Status)

	_, err = svc.ToggleSlot(context.Background(), &models.ToggleSlotRequest{
		PhotographerID: 1,
		UserID:         42,
		Date:           "2024-06-10",
		Time:           "09:00",
		Blocked:        false,
	})
	require.NoError(t, err)

	slots, ok := repo.stored["2024-06-10"]
	require.True(t, ok)
	assert.Empty(t, slots)
}

func TestToggleSlot_Validation(t *testing.T) {
	svc := newTestService(&fakeAvailabilityRepo{stored: domain.Availability{}})

	_, err := svc.ToggleSlot(context.Background(), &models.ToggleSlotRequest{
		PhotographerID: 1,
		UserID:         42,
		Date:           "not-a-date",
		Time:           "09:00",
		Blocked:        true,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ToggleSlot(context.Background(), &models.ToggleSlotRequest{
		PhotographerID: 1,
		UserID:         42,
		Date:           "2024-06-10",
		Time:           "09:12",
		Blocked:        true,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestToggleSlot_PhotographerNotFound(t *testing.T) {
	svc := NewService(&fakeAvailabilityRepo{stored: domain.Availability{}},
		&fakeProfileClient{}, &fakeTxManager{}, nopLogger{})

	_, err := svc.ToggleSlot(context.Background(), &models.ToggleSlotRequest{
		PhotographerID: 99,
		UserID:         42,
		Date:           "2024-06-10",
		Time:           "09:00",
		Blocked:        true,
	})
	assert.ErrorIs(t, err, ErrPhotographerNotFound)
}
