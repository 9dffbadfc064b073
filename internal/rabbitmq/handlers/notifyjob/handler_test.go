package notifyjob

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	mocks "github.com/licensure/licensure/internal/mocks/rabbitmq/handlers/notifyjob"
	"github.com/licensure/licensure/internal/notify"
	"github.com/licensure/licensure/internal/rabbitmq/queue"
)

func TestHandleJob_PlainDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcherMock := mocks.NewMockdispatcher(ctrl)
	markerMock := mocks.NewMocksixMonthMarker(ctrl)
	h := NewHandler(dispatcherMock, markerMock)

	job := queue.NotifyJob{LicenseID: uuid.New(), Reason: "DAILY_LAST_30"}

	dispatcherMock.EXPECT().DispatchByID(gomock.Any(), job.LicenseID).
		Return(notify.Result{OK: true, Sent: 1, Total: 1}, nil)

	h.HandleJob(context.Background(), job)
}

func TestHandleJob_SixMonthClaimThenDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcherMock := mocks.NewMockdispatcher(ctrl)
	markerMock := mocks.NewMocksixMonthMarker(ctrl)
	h := NewHandler(dispatcherMock, markerMock)

	job := queue.NotifyJob{LicenseID: uuid.New(), Reason: "SIX_MONTH", MarkSixMonthSent: true}

	markerMock.EXPECT().ClaimSixMonthSent(gomock.Any(), job.LicenseID).Return(true, nil)
	dispatcherMock.EXPECT().DispatchByID(gomock.Any(), job.LicenseID).
		Return(notify.Result{OK: true, Sent: 2, Total: 2}, nil)

	h.HandleJob(context.Background(), job)
}

func TestHandleJob_AlreadyClaimedSkipsDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcherMock := mocks.NewMockdispatcher(ctrl)
	markerMock := mocks.NewMocksixMonthMarker(ctrl)
	h := NewHandler(dispatcherMock, markerMock)

	job := queue.NotifyJob{LicenseID: uuid.New(), Reason: "SIX_MONTH", MarkSixMonthSent: true}

	markerMock.EXPECT().ClaimSixMonthSent(gomock.Any(), job.LicenseID).Return(false, nil)

	h.HandleJob(context.Background(), job)
}

func TestHandleJob_FailedDispatchReleasesClaim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcherMock := mocks.NewMockdispatcher(ctrl)
	markerMock := mocks.NewMocksixMonthMarker(ctrl)
	h := NewHandler(dispatcherMock, markerMock)

	job := queue.NotifyJob{LicenseID: uuid.New(), Reason: "SIX_MONTH", MarkSixMonthSent: true}

	markerMock.EXPECT().ClaimSixMonthSent(gomock.Any(), job.LicenseID).Return(true, nil)
	dispatcherMock.EXPECT().DispatchByID(gomock.Any(), job.LicenseID).
		Return(notify.Result{}, errors.New("db down"))
	markerMock.EXPECT().ReleaseSixMonthSent(gomock.Any(), job.LicenseID).Return(nil)

	h.HandleJob(context.Background(), job)
}

func TestHandleJob_NothingSentReleasesClaim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcherMock := mocks.NewMockdispatcher(ctrl)
	markerMock := mocks.NewMocksixMonthMarker(ctrl)
	h := NewHandler(dispatcherMock, markerMock)

	job := queue.NotifyJob{LicenseID: uuid.New(), Reason: "SIX_MONTH", MarkSixMonthSent: true}

	markerMock.EXPECT().ClaimSixMonthSent(gomock.Any(), job.LicenseID).Return(true, nil)
	dispatcherMock.EXPECT().DispatchByID(gomock.Any(), job.LicenseID).
		Return(notify.Result{Failed: 2, Total: 2, Err: "connection refused"}, nil)
	markerMock.EXPECT().ReleaseSixMonthSent(gomock.Any(), job.LicenseID).Return(nil)

	h.HandleJob(context.Background(), job)
}

func TestHandleJob_ClaimFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcherMock := mocks.NewMockdispatcher(ctrl)
	markerMock := mocks.NewMocksixMonthMarker(ctrl)
	h := NewHandler(dispatcherMock, markerMock)

	job := queue.NotifyJob{LicenseID: uuid.New(), Reason: "SIX_MONTH", MarkSixMonthSent: true}

	markerMock.EXPECT().ClaimSixMonthSent(gomock.Any(), job.LicenseID).
		Return(false, errors.New("db down"))

	h.HandleJob(context.Background(), job)
}
