package review_shifts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/testfixtures"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

type decisionCounter map[string]int

func (c decisionCounter) AddShiftDecisions(decision string, count int) {
	c[decision] += count
}

type fixture struct {
	store    *testfixtures.Store
	uc       *UseCase
	metrics  decisionCounter
	admin    int64
	staff    int64
	branch   int64
	customer int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := testfixtures.NewStore()
	f := &fixture{
		store:    store,
		metrics:  decisionCounter{},
		admin:    store.AddUser(domain.RoleAdmin, "boss"),
		staff:    store.AddUser(domain.RoleStaff, "mai"),
		branch:   store.AddBranch("Center"),
		customer: store.AddUser(domain.RoleCustomer, "an"),
	}
	f.uc = NewUseCase(store.Staff(), store.Catalog(), store.Shifts(), store, f.metrics, logger.NewNop())
	return f
}

func (f *fixture) pending(days int, bucket domain.ShiftBucket, branchID *int64) int64 {
	return f.store.AddShift(domain.Shift{
		StaffID:  f.staff,
		WorkDate: testfixtures.Date(days),
		Bucket:   bucket,
		Status:   domain.ShiftPending,
		BranchID: branchID,
	})
}

func TestApproveOne(t *testing.T) {
	f := newFixture(t)
	id := f.pending(1, domain.ShiftMorning, nil)

	resp, err := f.uc.ApproveOne(context.Background(), &DecisionRequest{ShiftID: id, AdminID: f.admin, BranchID: &f.branch})

	require.NoError(t, err)
	assert.Equal(t, "APPROVED", resp.Status)
	require.NotNil(t, resp.BranchID)
	assert.Equal(t, f.branch, *resp.BranchID)
	require.NotNil(t, resp.ApprovedBy)
	assert.Equal(t, f.admin, *resp.ApprovedBy)
	assert.Equal(t, 1, f.metrics[decisionApproved])

	stored, _ := f.store.Shift(id)
	assert.Equal(t, domain.ShiftApproved, stored.Status)
}

func TestApproveOne_FallsBackToRecordBranch(t *testing.T) {
	f := newFixture(t)
	id := f.pending(1, domain.ShiftMorning, &f.branch)

	resp, err := f.uc.ApproveOne(context.Background(), &DecisionRequest{ShiftID: id, AdminID: f.admin})

	require.NoError(t, err)
	assert.Equal(t, f.branch, *resp.BranchID)
}

func TestApproveOne_BranchRequired(t *testing.T) {
	f := newFixture(t)
	id := f.pending(1, domain.ShiftMorning, nil)

	_, err := f.uc.ApproveOne(context.Background(), &DecisionRequest{ShiftID: id, AdminID: f.admin})

	assert.ErrorIs(t, err, ErrBranchRequired)
	stored, _ := f.store.Shift(id)
	assert.Equal(t, domain.ShiftPending, stored.Status)
}

func TestRejectOne_ClearsBranch(t *testing.T) {
	f := newFixture(t)
	id := f.pending(1, domain.ShiftEvening, &f.branch)

	resp, err := f.uc.RejectOne(context.Background(), &DecisionRequest{ShiftID: id, AdminID: f.admin})

	require.NoError(t, err)
	assert.Equal(t, "REJECTED", resp.Status)
	assert.Nil(t, resp.BranchID)
	assert.Equal(t, f.admin, *resp.ApprovedBy)
	assert.Equal(t, 1, f.metrics[decisionRejected])
}

func TestDecisions_TerminalStatesFail(t *testing.T) {
	f := newFixture(t)
	approved := f.store.ApproveShift(f.staff, f.branch, testfixtures.Date(1), domain.ShiftMorning)
	rejected := f.store.AddShift(domain.Shift{
		StaffID: f.staff, WorkDate: testfixtures.Date(1), Bucket: domain.ShiftEvening, Status: domain.ShiftRejected,
	})

	for _, id := range []int64{approved, rejected} {
		_, err := f.uc.ApproveOne(context.Background(), &DecisionRequest{ShiftID: id, AdminID: f.admin, BranchID: &f.branch})
		assert.ErrorIs(t, err, ErrNotPending)

		_, err = f.uc.RejectOne(context.Background(), &DecisionRequest{ShiftID: id, AdminID: f.admin})
		assert.ErrorIs(t, err, ErrNotPending)
	}

	stored, _ := f.store.Shift(approved)
	assert.Equal(t, domain.ShiftApproved, stored.Status)
	stored, _ = f.store.Shift(rejected)
	assert.Equal(t, domain.ShiftRejected, stored.Status)
	assert.Empty(t, f.metrics)
}

func TestDecisions_AccessAndLookups(t *testing.T) {
	f := newFixture(t)
	id := f.pending(1, domain.ShiftMorning, nil)

	_, err := f.uc.ApproveOne(context.Background(), &DecisionRequest{ShiftID: id, AdminID: f.staff, BranchID: &f.branch})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.uc.RejectOne(context.Background(), &DecisionRequest{ShiftID: id, AdminID: 999})
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = f.uc.ApproveOne(context.Background(), &DecisionRequest{ShiftID: 999, AdminID: f.admin, BranchID: &f.branch})
	assert.ErrorIs(t, err, ErrShiftNotFound)

	_, err = f.uc.ApproveOne(context.Background(), &DecisionRequest{ShiftID: id, AdminID: f.admin, BranchID: ptr.Ptr(int64(999))})
	assert.ErrorIs(t, err, ErrBranchNotFound)
}

func TestApprovePending_ApprovesRangeAndFillsBranch(t *testing.T) {
	f := newFixture(t)
	other := f.store.AddBranch("Riverside")
	withBranch := f.pending(1, domain.ShiftMorning, &other)
	withoutBranch := f.pending(2, domain.ShiftAfternoon, nil)
	outOfRange := f.pending(9, domain.ShiftMorning, nil)

	resp, err := f.uc.ApprovePending(context.Background(), &BulkApproveRequest{
		AdminID:   f.admin,
		StartDate: testfixtures.Date(0),
		EndDate:   testfixtures.Date(6),
		BranchID:  &f.branch,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Approved)
	assert.ElementsMatch(t, []int64{withBranch, withoutBranch}, resp.ShiftIDs)
	assert.Equal(t, 2, f.metrics[decisionApproved])

	stored, _ := f.store.Shift(withBranch)
	assert.Equal(t, other, *stored.BranchID)
	stored, _ = f.store.Shift(withoutBranch)
	assert.Equal(t, f.branch, *stored.BranchID)
	stored, _ = f.store.Shift(outOfRange)
	assert.Equal(t, domain.ShiftPending, stored.Status)
}

func TestApprovePending_AllOrNothing(t *testing.T) {
	f := newFixture(t)
	first := f.pending(1, domain.ShiftMorning, &f.branch)
	second := f.pending(2, domain.ShiftMorning, nil)

	_, err := f.uc.ApprovePending(context.Background(), &BulkApproveRequest{
		AdminID:   f.admin,
		StartDate: testfixtures.Date(0),
		EndDate:   testfixtures.Date(6),
	})

	assert.ErrorIs(t, err, ErrBranchRequired)
	for _, id := range []int64{first, second} {
		stored, _ := f.store.Shift(id)
		assert.Equal(t, domain.ShiftPending, stored.Status, "shift %d", id)
	}
	assert.Empty(t, f.metrics)
}

func TestApprovePending_EmptyRange(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.ApprovePending(context.Background(), &BulkApproveRequest{
		AdminID:   f.admin,
		StartDate: testfixtures.Date(0),
		EndDate:   testfixtures.Date(6),
	})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Approved)
	assert.Empty(t, resp.ShiftIDs)
}

func TestApprovePending_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.ApprovePending(context.Background(), &BulkApproveRequest{
		AdminID: f.admin, StartDate: testfixtures.Date(5), EndDate: testfixtures.Date(1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.ApprovePending(context.Background(), &BulkApproveRequest{
		AdminID: f.admin, StartDate: testfixtures.Date(0), EndDate: testfixtures.Date(200),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.ApprovePending(context.Background(), &BulkApproveRequest{
		AdminID: f.customer, StartDate: testfixtures.Date(0), EndDate: testfixtures.Date(1),
	})
	assert.ErrorIs(t, err, ErrForbidden)
}
