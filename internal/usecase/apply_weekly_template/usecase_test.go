package apply_weekly_template

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PM-AvailabilityService/internal/domain"
	"github.com/m04kA/PM-AvailabilityService/internal/integrations/profileservice"
	"github.com/m04kA/PM-AvailabilityService/pkg/ptr"
	"github.com/m04kA/PM-AvailabilityService/pkg/types"
)

type fakeAvailabilityRepo struct {
	stored domain.Availability
	failOn string
}

func (f *fakeAvailabilityRepo) GetByPhotographer(_ context.Context, _ int64) (domain.Availability, error) {
	if f.failOn == "get" {
		return nil, errors.New("db down")
	}
	return f.stored.Clone(), nil
}

func (f *fakeAvailabilityRepo) ReplaceAll(_ context.Context, _ int64, avail domain.Availability) error {
	if f.failOn == "replace" {
		return errors.New("db down")
	}
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

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// 2024-06-01 - суббота
var testToday = time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)

func newTestUseCase(repo *fakeAvailabilityRepo, client *fakeProfileClient) *UseCase {
	uc := NewUseCase(repo, client, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testToday}
	return uc
}

func ownerProfile() *fakeProfileClient {
	return &fakeProfileClient{photographer: &profileservice.Photographer{
		ID:     1,
		UserID: 42,
		Active: true,
	}}
}

func emptyDays() []DayInput {
	return make([]DayInput, domain.DaysPerWeek)
}

func TestExecute_ScenarioMorningPreset(t *testing.T) {
	// Холодный старт: пустая карта, включены понедельник и среда,
	// понедельник - утренний пресет, среда копирует его через CopyFromDay
	repo := &fakeAvailabilityRepo{stored: domain.Availability{}}
	uc := newTestUseCase(repo, ownerProfile())

	days := emptyDays()
	days[1] = DayInput{Enabled: true, Preset: ptr.Ptr(domain.PresetMorning)}
	days[3] = DayInput{Enabled: true}

	resp, err := uc.Execute(context.Background(), &Request{
		PhotographerID: 1,
		UserID:         42,
		Days:           days,
		CopyFromDay:    ptr.Ptr(1),
		HorizonMonths:  1,
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-06-01", resp.From)
	assert.Equal(t, "2024-07-01", resp.To)
	assert.Equal(t, resp.DatesWritten, len(repo.stored))
	assert.Zero(t, resp.DatesRemoved)

	morning, err := domain.PresetSlots(domain.PresetMorning)
	require.NoError(t, err)

	blocked := domain.DeriveBlocked(repo.stored)

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := types.NewDateString(d)
		switch d.Weekday() {
		case time.Monday, time.Wednesday:
			// Каждый понедельник и среда окна: ровно 8 доступных и 40 заблокированных
			require.Contains(t, repo.stored, key)
			assert.True(t, domain.SlotsEqual(morning, repo.stored[key]), "date %s", key)
			assert.Len(t, blocked[key], domain.SlotsPerDay-len(morning), "date %s", key)
		default:
			// Остальные даты окна не настроены: нет ни доступности, ни блокировок
			assert.NotContains(t, repo.stored, key)
			assert.NotContains(t, blocked, key)
		}
	}
}

func TestExecute_OverwriteLaw(t *testing.T) {
	// Даты внутри окна перезаписываются безусловно:
	// включенный день получает ровно слоты шаблона,
	// выключенный - теряет запись
	mondayInWindow := types.DateString("2024-06-03")
	tuesdayInWindow := types.DateString("2024-06-04")

	repo := &fakeAvailabilityRepo{stored: domain.Availability{
		mondayInWindow:  {"06:00", "06:30"}, // ручная правка, будет перезаписана
		tuesdayInWindow: {"09:00"},          // вторник выключен, запись удалится
	}}
	uc := newTestUseCase(repo, ownerProfile())

	days := emptyDays()
	days[1] = DayInput{Enabled: true, Slots: []string{"10:00", "10:30"}}

	resp, err := uc.Execute(context.Background(), &Request{
		PhotographerID: 1,
		UserID:         42,
		Days:           days,
		HorizonMonths:  1,
	})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"10:00", "10:30"}, repo.stored[mondayInWindow])
	assert.NotContains(t, repo.stored, tuesdayInWindow)
	assert.Equal(t, 1, resp.DatesRemoved)
}

func TestExecute_OutOfWindowPreservation(t *testing.T) {
	// Даты строго до "сегодня" и строго после конца окна не меняются
	pastMonday := types.DateString("2024-05-27")
	farMonday := types.DateString("2024-08-05") // за пределами месячного окна

	repo := &fakeAvailabilityRepo{stored: domain.Availability{
		pastMonday: {"09:00"},
		farMonday:  {"09:00"},
	}}
	uc := newTestUseCase(repo, ownerProfile())

	days := emptyDays()
	days[1] = DayInput{Enabled: true, Slots: []string{"15:00"}}

	_, err := uc.Execute(context.Background(), &Request{
		PhotographerID: 1,
		UserID:         42,
		Days:           days,
		HorizonMonths:  1,
	})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"09:00"}, repo.stored[pastMonday])
	assert.Equal(t, []types.TimeString{"09:00"}, repo.stored[farMonday])
}

func TestExecute_MiningIdempotence(t *testing.T) {
	// Майнинг шаблона из карты, построенной проекцией, воспроизводит
	// исходный шаблон (без последующих точечных правок)
	repo := &fakeAvailabilityRepo{stored: domain.Availability{}}
	uc := newTestUseCase(repo, ownerProfile())

	days := emptyDays()
	days[1] = DayInput{Enabled: true, Preset: ptr.Ptr(domain.PresetMorning)}
	days[5] = DayInput{Enabled: true, Preset: ptr.Ptr(domain.PresetEvening)}

	req := &Request{
		PhotographerID: 1,
		UserID:         42,
		Days:           days,
		HorizonMonths:  2,
	}
	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	applied, err := buildTemplate(req)
	require.NoError(t, err)

	mined := domain.MineWeeklyTemplate(repo.stored)
	for day := 0; day < domain.DaysPerWeek; day++ {
		assert.Equal(t, applied[day].Enabled, mined[day].Enabled, "day %d", day)
		assert.True(t, domain.SlotsEqual(applied[day].Slots, mined[day].Slots), "day %d", day)
	}
}

func TestExecute_HorizonBoundariesInclusive(t *testing.T) {
	repo := &fakeAvailabilityRepo{stored: domain.Availability{}}
	uc := newTestUseCase(repo, ownerProfile())

	// Все дни включены: каждая дата окна получает запись
	days := emptyDays()
	for d := range days {
		days[d] = DayInput{Enabled: true, Slots: []string{"12:00"}}
	}

	resp, err := uc.Execute(context.Background(), &Request{
		PhotographerID: 1,
		UserID:         42,
		Days:           days,
		HorizonMonths:  1,
	})
	require.NoError(t, err)

	// 2024-06-01 .. 2024-07-01 включительно = 31 дата
	assert.Equal(t, 31, resp.DatesWritten)
	assert.Contains(t, repo.stored, types.DateString("2024-06-01"))
	assert.Contains(t, repo.stored, types.DateString("2024-07-01"))
	assert.NotContains(t, repo.stored, types.DateString("2024-07-02"))
}

func TestExecute_ValidationErrors(t *testing.T) {
	repo := &fakeAvailabilityRepo{stored: domain.Availability{}}
	uc := newTestUseCase(repo, ownerProfile())

	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{
			name:    "disallowed horizon",
			mutate:  func(req *Request) { req.HorizonMonths = 4 },
			wantErr: ErrInvalidHorizon,
		},
		{
			name:    "zero horizon",
			mutate:  func(req *Request) { req.HorizonMonths = 0 },
			wantErr: ErrInvalidHorizon,
		},
		{
			name:    "wrong day count",
			mutate:  func(req *Request) { req.Days = req.Days[:5] },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "copy source out of range",
			mutate:  func(req *Request) { req.CopyFromDay = ptr.Ptr(7) },
			wantErr: ErrInvalidInput,
		},
		{
			name: "unknown preset",
			mutate: func(req *Request) {
				req.Days[2] = DayInput{Enabled: true, Preset: ptr.Ptr("lunch")}
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "slot off the grid",
			mutate: func(req *Request) {
				req.Days[2] = DayInput{Enabled: true, Slots: []string{"09:10"}}
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &Request{
				PhotographerID: 1,
				UserID:         42,
				Days:           emptyDays(),
				HorizonMonths:  1,
			}
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_PhotographerNotFound(t *testing.T) {
	repo := &fakeAvailabilityRepo{stored: domain.Availability{}}
	uc := newTestUseCase(repo, &fakeProfileClient{})

	_, err := uc.Execute(context.Background(), &Request{
		PhotographerID: 99,
		UserID:         42,
		Days:           emptyDays(),
		HorizonMonths:  1,
	})
	assert.ErrorIs(t, err, ErrPhotographerNotFound)
}

func TestExecute_AccessDenied(t *testing.T) {
	repo := &fakeAvailabilityRepo{stored: domain.Availability{}}
	uc := newTestUseCase(repo, ownerProfile())

	_, err := uc.Execute(context.Background(), &Request{
		PhotographerID: 1,
		UserID:         7, // не владелец
		Days:           emptyDays(),
		HorizonMonths:  1,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_PersistenceFailureSurfaced(t *testing.T) {
	repo := &fakeAvailabilityRepo{stored: domain.Availability{}, failOn: "replace"}
	uc := newTestUseCase(repo, ownerProfile())

	days := emptyDays()
	days[1] = DayInput{Enabled: true, Slots: []string{"10:00"}}

	_, err := uc.Execute(context.Background(), &Request{
		PhotographerID: 1,
		UserID:         42,
		Days:           days,
		HorizonMonths:  1,
	})
	assert.ErrorIs(t, err, ErrInternal)
}
