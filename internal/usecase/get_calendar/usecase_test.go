package get_calendar

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PM-AvailabilityService/internal/domain"
)

type fakeAvailabilityRepo struct {
	stored domain.Availability
	err    error
}

func (f *fakeAvailabilityRepo) GetByPhotographer(_ context.Context, _ int64) (domain.Availability, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.stored.Clone(), nil
}

type fakeSessionRepo struct {
	sessions  []*domain.Session
	gotFilter domain.SessionFilter
}

func (f *fakeSessionRepo) GetByPhotographerWithFilter(_ context.Context, filter domain.SessionFilter) ([]*domain.Session, error) {
	f.gotFilter = filter

	// Повторяем фильтрацию репозитория: отмененные сессии не возвращаются
	result := make([]*domain.Session, 0, len(f.sessions))
	for _, s := range f.sessions {
		if !filter.IncludeCanceled && s.IsCanceled() {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func slotByTime(t *testing.T, day DayView, slotTime string) SlotView {
	t.Helper()
	for _, s := range day.Slots {
		if s.Time == slotTime {
			return s
		}
	}
	t.Fatalf("slot %s not found on %s", slotTime, day.Date)
	return SlotView{}
}

func TestExecute_MergePriorities(t *testing.T) {
	availRepo := &fakeAvailabilityRepo{stored: domain.Availability{
		"2024-06-10": {"09:00", "10:00"},
	}}
	sessionRepo := &fakeSessionRepo{sessions: []*domain.Session{
		{
			ID:              1,
			PhotographerID:  1,
			Title:           "Свадебная съемка",
			SessionDate:     "2024-06-10",
			StartTime:       "10:00", // конфликт: слот одновременно доступен и занят
			DurationMinutes: 120,
			Status:          domain.SessionStatusConfirmed,
		},
		{
			ID:              2,
			PhotographerID:  1,
			Title:           "Портрет",
			SessionDate:     "2024-06-10",
			StartTime:       "13:00", // сессия на заблокированном слоте
			DurationMinutes: 60,
			Status:          domain.SessionStatusPending,
		},
	}}

	uc := NewUseCase(availRepo, sessionRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		PhotographerID: 1,
		From:           "2024-06-10",
		To:             "2024-06-11",
	})
	require.NoError(t, err)
	require.Len(t, resp.Days, 2)

	configured := resp.Days[0]
	require.True(t, configured.Configured)
	require.Len(t, configured.Slots, domain.SlotsPerDay)

	// booked побеждает available: конфликт показывается, а не разрешается
	booked := slotByTime(t, configured, "10:00")
	assert.Equal(t, string(domain.SlotStatusBooked), booked.Status)
	require.NotNil(t, booked.Session)
	assert.Equal(t, "Свадебная съемка", booked.Session.Title)
	assert.Equal(t, 120, booked.Session.DurationMinutes)

	// booked побеждает blocked
	assert.Equal(t, string(domain.SlotStatusBooked), slotByTime(t, configured, "13:00").Status)

	// Сессия помечает ровно стартовый слот: 10:30 остается по конфигурации
	assert.Equal(t, string(domain.SlotStatusBlocked), slotByTime(t, configured, "10:30").Status)

	assert.Equal(t, string(domain.SlotStatusAvailable), slotByTime(t, configured, "09:00").Status)
	assert.Equal(t, string(domain.SlotStatusBlocked), slotByTime(t, configured, "09:30").Status)

	// Ненастроенная дата: все слоты unconfigured
	unconfigured := resp.Days[1]
	assert.False(t, unconfigured.Configured)
	for _, s := range unconfigured.Slots {
		assert.Equal(t, string(domain.SlotStatusUnconfigured), s.Status)
	}
}

func TestExecute_CanceledSessionsExcluded(t *testing.T) {
	availRepo := &fakeAvailabilityRepo{stored: domain.Availability{}}
	sessionRepo := &fakeSessionRepo{sessions: []*domain.Session{
		{
			ID:              1,
			PhotographerID:  1,
			Title:           "Отмененная съемка",
			SessionDate:     "2024-06-10",
			StartTime:       "10:00",
			DurationMinutes: 60,
			Status:          domain.SessionStatusCanceled,
		},
	}}

	uc := NewUseCase(availRepo, sessionRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		PhotographerID: 1,
		From:           "2024-06-10",
		To:             "2024-06-10",
	})
	require.NoError(t, err)

	assert.False(t, sessionRepo.gotFilter.IncludeCanceled)
	assert.Equal(t, string(domain.SlotStatusUnconfigured), slotByTime(t, resp.Days[0], "10:00").Status)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeAvailabilityRepo{stored: domain.Availability{}}, &fakeSessionRepo{}, nopLogger{})

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "bad photographer id",
			req:     &Request{PhotographerID: 0, From: "2024-06-10", To: "2024-06-10"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "malformed from",
			req:     &Request{PhotographerID: 1, From: "10.06.2024", To: "2024-06-10"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "to before from",
			req:     &Request{PhotographerID: 1, From: "2024-06-10", To: "2024-06-09"},
			wantErr: ErrInvalidRange,
		},
		{
			name:    "range too wide",
			req:     &Request{PhotographerID: 1, From: "2024-06-01", To: "2024-09-01"},
			wantErr: ErrRangeTooWide,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_RepositoryFailure(t *testing.T) {
	uc := NewUseCase(&fakeAvailabilityRepo{err: errors.New("db down")}, &fakeSessionRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		PhotographerID: 1,
		From:           "2024-06-10",
		To:             "2024-06-10",
	})
	assert.ErrorIs(t, err, ErrInternal)
}
