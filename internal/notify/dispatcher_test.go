package notify_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	mocks "github.com/licensure/licensure/internal/mocks/notify"
	"github.com/licensure/licensure/internal/model"
	"github.com/licensure/licensure/internal/notify"
)

type dispatcherMocks struct {
	licenses   *mocks.MocklicenseSource
	recipients *mocks.MockrecipientSource
	templates  *mocks.MocktemplateSource
	logs       *mocks.MockmailLogStore
	transports *mocks.MocktransportSource
	transport  *mocks.MockTransport
}

func newDispatcher(ctrl *gomock.Controller) (*notify.Dispatcher, dispatcherMocks) {
	m := dispatcherMocks{
		licenses:   mocks.NewMocklicenseSource(ctrl),
		recipients: mocks.NewMockrecipientSource(ctrl),
		templates:  mocks.NewMocktemplateSource(ctrl),
		logs:       mocks.NewMockmailLogStore(ctrl),
		transports: mocks.NewMocktransportSource(ctrl),
		transport:  mocks.NewMockTransport(ctrl),
	}

	d := notify.NewDispatcher(m.licenses, m.recipients, m.templates, m.logs, m.transports).
		WithClock(func() time.Time {
			return time.Date(2026, time.December, 3, 9, 0, 0, 0, time.UTC)
		})

	return d, m
}

func testLicense() model.License {
	return model.License{
		ID:         uuid.New(),
		Name:       "Crashlytics Pro",
		Provider:   "Google",
		IssuedDate: time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC),
		ExpiryDate: time.Date(2026, time.December, 15, 0, 0, 0, 0, time.UTC),
		Status:     model.LicenseStatusActive,
	}
}

func recipient(name, email, responsibility string) model.Recipient {
	return model.Recipient{
		Person:         model.Person{ID: uuid.New(), Name: name, Email: email},
		Responsibility: responsibility,
	}
}

func TestDispatcher_NoTransportConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, m := newDispatcher(ctrl)
	lic := testLicense()

	m.transports.EXPECT().Transport(gomock.Any()).Return(nil, notify.ErrNoTransport)

	result, err := d.DispatchLicense(context.Background(), lic)
	assert.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, notify.ErrNoTransport.Error(), result.Err)
}

func TestDispatcher_NoRecipientsWritesNoLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, m := newDispatcher(ctrl)
	lic := testLicense()

	m.transports.EXPECT().Transport(gomock.Any()).Return(m.transport, nil)
	m.templates.EXPECT().TemplateSet(gomock.Any()).Return(model.DefaultTemplateSet(), nil)
	m.recipients.EXPECT().LinkedToLicense(gomock.Any(), lic.ID).Return(nil, nil)

	result, err := d.DispatchLicense(context.Background(), lic)
	assert.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, notify.ErrNoRecipients.Error(), result.Err)
	assert.Zero(t, result.Total)
}

func TestDispatcher_PartialSuccessIsSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, m := newDispatcher(ctrl)
	lic := testLicense()

	recipients := []model.Recipient{
		recipient("Ana", "ana@corp.test", model.RoleResponsible),
		recipient("Boris", "boris@corp.test", model.RoleStakeholder),
		recipient("Ceren", "ceren@corp.test", model.RoleStakeholder),
	}

	m.transports.EXPECT().Transport(gomock.Any()).Return(m.transport, nil)
	m.templates.EXPECT().TemplateSet(gomock.Any()).Return(model.DefaultTemplateSet(), nil)
	m.recipients.EXPECT().LinkedToLicense(gomock.Any(), lic.ID).Return(recipients, nil)

	m.transport.EXPECT().Send("ana@corp.test", gomock.Any(), gomock.Any()).Return(nil)
	m.transport.EXPECT().Send("boris@corp.test", gomock.Any(), gomock.Any()).Return(errors.New("550 mailbox unavailable"))
	m.transport.EXPECT().Send("ceren@corp.test", gomock.Any(), gomock.Any()).Return(nil)

	// One log row per recipient, success or not.
	m.logs.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	result, err := d.DispatchLicense(context.Background(), lic)
	assert.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 3, result.Total)
	assert.Empty(t, result.Err)
}

func TestDispatcher_AllFailReportsFirstError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, m := newDispatcher(ctrl)
	lic := testLicense()

	recipients := []model.Recipient{
		recipient("Ana", "ana@corp.test", model.RoleResponsible),
		recipient("Boris", "boris@corp.test", model.RoleStakeholder),
	}

	m.transports.EXPECT().Transport(gomock.Any()).Return(m.transport, nil)
	m.templates.EXPECT().TemplateSet(gomock.Any()).Return(model.DefaultTemplateSet(), nil)
	m.recipients.EXPECT().LinkedToLicense(gomock.Any(), lic.ID).Return(recipients, nil)

	m.transport.EXPECT().Send("ana@corp.test", gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
	m.transport.EXPECT().Send("boris@corp.test", gomock.Any(), gomock.Any()).Return(errors.New("timeout"))
	m.logs.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	result, err := d.DispatchLicense(context.Background(), lic)
	assert.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, 2, result.Failed)
	assert.Equal(t, "connection refused", result.Err)
}

func TestDispatcher_TemplateFailureFallsBackToDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, m := newDispatcher(ctrl)
	lic := testLicense()

	recipients := []model.Recipient{
		recipient("Ana", "ana@corp.test", model.RoleResponsible),
	}

	m.transports.EXPECT().Transport(gomock.Any()).Return(m.transport, nil)
	m.templates.EXPECT().TemplateSet(gomock.Any()).Return(model.TemplateSet{}, errors.New("db down"))
	m.recipients.EXPECT().LinkedToLicense(gomock.Any(), lic.ID).Return(recipients, nil)

	// 12 days between 2026-12-03 and 2026-12-15.
	m.transport.EXPECT().
		Send("ana@corp.test", "ACTION REQUIRED: Crashlytics Pro expires in 12 days", gomock.Any()).
		Return(nil)
	m.logs.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	result, err := d.DispatchLicense(context.Background(), lic)
	assert.NoError(t, err)
	assert.True(t, result.OK)
}

func TestDispatcher_DispatchByIDUnknownLicense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, m := newDispatcher(ctrl)
	id := uuid.New()

	m.licenses.EXPECT().LicenseByID(gomock.Any(), id).Return(model.License{}, errors.New("license not found"))

	_, err := d.DispatchByID(context.Background(), id)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "license not found")
}

func TestDispatcher_MailLogEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, m := newDispatcher(ctrl)
	lic := testLicense()
	rec := recipient("Ana", "ana@corp.test", model.RoleResponsible)

	m.transports.EXPECT().Transport(gomock.Any()).Return(m.transport, nil)
	m.templates.EXPECT().TemplateSet(gomock.Any()).Return(model.DefaultTemplateSet(), nil)
	m.recipients.EXPECT().LinkedToLicense(gomock.Any(), lic.ID).Return([]model.Recipient{rec}, nil)
	m.transport.EXPECT().Send("ana@corp.test", gomock.Any(), gomock.Any()).Return(nil)

	m.logs.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry model.MailLog) error {
			assert.Equal(t, lic.ID, entry.LicenseID)
			assert.Equal(t, rec.ID, entry.PersonID)
			assert.Equal(t, "ana@corp.test", entry.Email)
			assert.Equal(t, model.RoleResponsible, entry.MailType)
			assert.Equal(t, model.MailStatusSent, entry.Status)
			return nil
		})

	_, err := d.DispatchLicense(context.Background(), lic)
	assert.NoError(t, err)
}
