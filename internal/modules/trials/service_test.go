package trials

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tenclub.in/app/internal/mailer"
	"tenclub.in/app/internal/modules/availability"
)

type mockChecker struct {
	CheckFunc func(ctx context.Context, q availability.Query) (availability.Result, error)
	calls     int
}

func (m *mockChecker) Check(ctx context.Context, q availability.Query) (availability.Result, error) {
	m.calls++
	if m.CheckFunc != nil {
		return m.CheckFunc(ctx, q)
	}
	return availability.Result{}, errors.New("no check stub")
}

func available(avail bool) *mockChecker {
	return &mockChecker{
		CheckFunc: func(context.Context, availability.Query) (availability.Result, error) {
			return availability.Result{Available: avail}, nil
		},
	}
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&TrialRequest{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func validInput() CreateInput {
	return CreateInput{
		Name:          "A",
		Email:         "a@b.com",
		Phone:         "9999999999",
		Location:      "Poomaale Collective",
		LocationSlug:  "poomaale",
		PreferredDate: "2026-10-01",
		GuestCount:    2,
	}
}

func TestCreateAvailable(t *testing.T) {
	db := testDB(t)
	checker := available(true)
	svc := NewService(db, checker)

	row, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if row.RequestStatus != StatusAvailable {
		t.Errorf("status = %q, want %q", row.RequestStatus, StatusAvailable)
	}
	if row.DurationNights != 1 {
		t.Errorf("duration nights = %d, want default 1", row.DurationNights)
	}
	if checker.calls != 1 {
		t.Errorf("availability checked %d times, want 1", checker.calls)
	}

	var stored TrialRequest
	if err := db.First(&stored, "id = ?", row.ID).Error; err != nil {
		t.Fatalf("row not persisted: %v", err)
	}
	if stored.RequestStatus != StatusAvailable {
		t.Errorf("stored status = %q", stored.RequestStatus)
	}
}

func TestCreateWaitlisted(t *testing.T) {
	svc := NewService(testDB(t), available(false))

	row, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatal(err)
	}
	if row.RequestStatus != StatusWaitlist {
		t.Errorf("status = %q, want %q", row.RequestStatus, StatusWaitlist)
	}
}

func TestCreateAvailabilityFailureWaitlists(t *testing.T) {
	db := testDB(t)
	checker := &mockChecker{
		CheckFunc: func(context.Context, availability.Query) (availability.Result, error) {
			return availability.Result{}, errors.New("upstream down")
		},
	}
	svc := NewService(db, checker)

	row, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("availability failure must not fail the request: %v", err)
	}
	if row.RequestStatus != StatusWaitlist {
		t.Errorf("status = %q, want %q", row.RequestStatus, StatusWaitlist)
	}
}

func TestCreateQueriesPreferredDate(t *testing.T) {
	var gotQuery availability.Query
	checker := &mockChecker{
		CheckFunc: func(_ context.Context, q availability.Query) (availability.Result, error) {
			gotQuery = q
			return availability.Result{Available: true}, nil
		},
	}
	svc := NewService(testDB(t), checker)

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatal(err)
	}
	if gotQuery.StartDate != "2026-10-01" {
		t.Errorf("availability queried for %q", gotQuery.StartDate)
	}
}

func TestCreateSendsConfirmation(t *testing.T) {
	svc := NewService(testDB(t), available(true))
	mock := &mailer.Mock{}
	svc.SetMailer(mock, "no-reply@tenclub.in", "tenclub")

	row, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatal(err)
	}
	if len(mock.Sent) != 1 {
		t.Fatalf("sent %d emails, want 1", len(mock.Sent))
	}
	if got := mock.Sent[0].To[0]; got != row.Email {
		t.Errorf("email sent to %q, want %q", got, row.Email)
	}
}

func TestCreateMailFailureIgnored(t *testing.T) {
	svc := NewService(testDB(t), available(true))
	svc.SetMailer(&mailer.Mock{Err: errors.New("smtp down")}, "no-reply@tenclub.in", "tenclub")

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("mail failure must not fail the request: %v", err)
	}
}

func TestCreateStoreUnavailable(t *testing.T) {
	checker := available(true)
	svc := NewService(nil, checker)

	_, err := svc.Create(context.Background(), validInput())
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("err = %v, want ErrStoreUnavailable", err)
	}
	if checker.calls != 0 {
		t.Errorf("availability checked %d times with no store", checker.calls)
	}
}

func TestGet(t *testing.T) {
	db := testDB(t)
	svc := NewService(db, available(true))

	row, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.Get(context.Background(), row.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != row.ID || got.Name != "A" {
		t.Errorf("got = %+v", got)
	}

	if _, err := svc.Get(context.Background(), "missing-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
