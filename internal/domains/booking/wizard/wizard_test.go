package wizard_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"salon/infras/otel/mocks"
	bookingMocks "salon/internal/domains/booking/mocks"
	"salon/internal/domains/booking/model"
	"salon/internal/domains/booking/model/dto"
	"salon/internal/domains/booking/wizard"
	stylistMocks "salon/internal/domains/stylist/mocks"
	stylistModel "salon/internal/domains/stylist/model"
	timeslotMocks "salon/internal/domains/timeslot/mocks"
	timeslotModel "salon/internal/domains/timeslot/model"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/session"
	sessionMocks "salon/shared/session/mocks"
)

type fixture struct {
	bookingSvc  *bookingMocks.MockBookingService
	stylistSvc  *stylistMocks.MockStylistService
	timeslotSvc *timeslotMocks.MockTimeSlotService
	sess        *sessionMocks.MockStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	return &fixture{
		bookingSvc:  bookingMocks.NewMockBookingService(ctrl),
		stylistSvc:  stylistMocks.NewMockStylistService(ctrl),
		timeslotSvc: timeslotMocks.NewMockTimeSlotService(ctrl),
		sess:        sessionMocks.NewMockStore(ctrl),
	}
}

func (f *fixture) newWizard(t *testing.T) *wizard.Wizard {
	t.Helper()

	f.sess.EXPECT().Intent().Return(&session.BookingIntent{
		Type:      constant.BookingTypeService,
		ServiceID: "svc-1",
		Name:      "Classic Haircut",
		Price:     35,
		Duration:  45,
	}, nil)

	w, err := wizard.New(f.bookingSvc, f.stylistSvc, f.timeslotSvc, f.sess, mocks.NewOtel())
	assert.NoError(t, err)

	return w
}

func mondaySlots() []timeslotModel.TimeSlot {
	return []timeslotModel.TimeSlot{
		{ID: "ts-1", DayOfWeek: "Monday", StartTime: "10:00", EndTime: "10:30"},
	}
}

func customerInfo() model.CustomerInfo {
	return model.CustomerInfo{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "555-0100",
	}
}

// walks a wizard to the second step with everything filled in.
func (f *fixture) atStepTwo(t *testing.T) *wizard.Wizard {
	t.Helper()

	w := f.newWizard(t)

	f.timeslotSvc.EXPECT().ForWeekday(gomock.Any(), "Monday").Return(mondaySlots(), nil)
	f.stylistSvc.EXPECT().GetAll(gomock.Any()).Return([]stylistModel.Stylist{
		{ID: "s1", Name: "Alex", Specialty: "Color", Rating: 4.8},
	}, nil)

	ctx := context.Background()

	assert.NoError(t, w.SelectDate(ctx, "2024-06-10"))
	assert.NoError(t, w.SelectTime("10:00"))
	assert.NoError(t, w.Next(ctx))

	_, err := w.LoadStylists(ctx)
	assert.NoError(t, err)
	assert.NoError(t, w.SelectStylist("s1"))
	assert.NoError(t, w.SetCustomerInfo(customerInfo()))

	return w
}

func TestWizard_RequiresIntent(t *testing.T) {
	f := newFixture(t)

	f.sess.EXPECT().Intent().Return(nil, failure.MissingBookingIntent)

	_, err := wizard.New(f.bookingSvc, f.stylistSvc, f.timeslotSvc, f.sess, mocks.NewOtel())
	assert.ErrorIs(t, err, failure.MissingBookingIntent)
}

func TestWizard_StepOneGating(t *testing.T) {
	f := newFixture(t)
	w := f.newWizard(t)
	ctx := context.Background()

	assert.Equal(t, wizard.StepDateTime, w.Step())
	assert.False(t, w.CanProceed())
	assert.Error(t, w.Next(ctx))

	f.timeslotSvc.EXPECT().ForWeekday(gomock.Any(), "Monday").Return(mondaySlots(), nil)
	assert.NoError(t, w.SelectDate(ctx, "2024-06-10"))

	// date alone is not enough
	assert.False(t, w.CanProceed())

	assert.NoError(t, w.SelectTime("10:00"))
	assert.True(t, w.CanProceed())

	assert.NoError(t, w.Next(ctx))
	assert.Equal(t, wizard.StepStylistDetails, w.Step())
}

func TestWizard_SelectDateClearsTime(t *testing.T) {
	f := newFixture(t)
	w := f.newWizard(t)
	ctx := context.Background()

	f.timeslotSvc.EXPECT().ForWeekday(gomock.Any(), "Monday").Return(mondaySlots(), nil)
	assert.NoError(t, w.SelectDate(ctx, "2024-06-10"))
	assert.NoError(t, w.SelectTime("10:00"))
	assert.True(t, w.CanProceed())

	// Tuesday has no 10:00 slot; the stale selection must not survive
	f.timeslotSvc.EXPECT().ForWeekday(gomock.Any(), "Tuesday").Return([]timeslotModel.TimeSlot{
		{ID: "ts-2", DayOfWeek: "Tuesday", StartTime: "14:00", EndTime: "14:30"},
	}, nil)
	assert.NoError(t, w.SelectDate(ctx, "2024-06-11"))

	assert.False(t, w.CanProceed())
	assert.Error(t, w.SelectTime("10:00"))
	assert.NoError(t, w.SelectTime("14:00"))
}

func TestWizard_StaleSlotFetchIsDiscarded(t *testing.T) {
	f := newFixture(t)
	w := f.newWizard(t)
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})

	f.timeslotSvc.EXPECT().
		ForWeekday(gomock.Any(), "Monday").
		DoAndReturn(func(context.Context, string) ([]timeslotModel.TimeSlot, error) {
			close(entered)
			<-release

			return mondaySlots(), nil
		})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()

		assert.NoError(t, w.SelectDate(ctx, "2024-06-10"))
	}()

	<-entered

	tuesday := []timeslotModel.TimeSlot{
		{ID: "ts-2", DayOfWeek: "Tuesday", StartTime: "14:00", EndTime: "14:30"},
	}
	f.timeslotSvc.EXPECT().ForWeekday(gomock.Any(), "Tuesday").Return(tuesday, nil)
	assert.NoError(t, w.SelectDate(ctx, "2024-06-11"))

	close(release)
	wg.Wait()

	// the slow Monday response must not overwrite Tuesday's list
	assert.Equal(t, tuesday, w.Slots())
}

func TestWizard_InvalidSelections(t *testing.T) {
	f := newFixture(t)
	w := f.newWizard(t)
	ctx := context.Background()

	assert.Error(t, w.SelectDate(ctx, "June 10"))
	assert.Error(t, w.SelectTime("10:00"))
	assert.Error(t, w.SelectStylist("s1"))
	assert.Error(t, w.SetCustomerInfo(model.CustomerInfo{FirstName: "Jane"}))
}

func TestWizard_UnavailableSlotStaysOnStepTwo(t *testing.T) {
	f := newFixture(t)
	w := f.atStepTwo(t)
	ctx := context.Background()

	f.bookingSvc.EXPECT().
		CheckAvailability(gomock.Any(), dto.AvailabilityRequest{
			Date:      "2024-06-10",
			TimeSlot:  "10:00",
			StylistID: "s1",
		}).
		Return(dto.AvailabilityResponse{Available: false, Reason: "Stylist is booked"}, nil)

	err := w.Next(ctx)
	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	assert.Contains(t, err.Error(), "Stylist is booked")

	// nothing is discarded; the user can retry
	assert.Equal(t, wizard.StepStylistDetails, w.Step())
	assert.True(t, w.CanProceed())

	checking, creating := w.Busy()
	assert.False(t, checking)
	assert.False(t, creating)
}

func TestWizard_UnavailableWithoutReasonUsesFallback(t *testing.T) {
	f := newFixture(t)
	w := f.atStepTwo(t)

	f.bookingSvc.EXPECT().
		CheckAvailability(gomock.Any(), gomock.Any()).
		Return(dto.AvailabilityResponse{Available: false}, nil)

	err := w.Next(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), constant.MsgSlotUnavailable)
}

func TestWizard_CheckFailureBlocksCreation(t *testing.T) {
	f := newFixture(t)
	w := f.atStepTwo(t)

	f.bookingSvc.EXPECT().
		CheckAvailability(gomock.Any(), gomock.Any()).
		Return(dto.AvailabilityResponse{}, errors.New("connection refused"))

	assert.Error(t, w.Next(context.Background()))
	assert.Equal(t, wizard.StepStylistDetails, w.Step())
}

func TestWizard_CreateFailureStaysOnStepTwo(t *testing.T) {
	f := newFixture(t)
	w := f.atStepTwo(t)

	f.bookingSvc.EXPECT().
		CheckAvailability(gomock.Any(), gomock.Any()).
		Return(dto.AvailabilityResponse{Available: true}, nil)
	f.bookingSvc.EXPECT().
		Create(gomock.Any(), gomock.Any(), "2024-06-10", "10:00", "s1", customerInfo()).
		Return(dto.BookingAcknowledgment{}, errors.New("internal error"))

	assert.Error(t, w.Next(context.Background()))
	assert.Equal(t, wizard.StepStylistDetails, w.Step())

	checking, creating := w.Busy()
	assert.False(t, checking)
	assert.False(t, creating)
}

func TestWizard_EndToEnd(t *testing.T) {
	f := newFixture(t)
	w := f.atStepTwo(t)
	ctx := context.Background()

	f.bookingSvc.EXPECT().
		CheckAvailability(gomock.Any(), dto.AvailabilityRequest{
			Date:      "2024-06-10",
			TimeSlot:  "10:00",
			StylistID: "s1",
		}).
		Return(dto.AvailabilityResponse{Available: true}, nil)
	f.bookingSvc.EXPECT().
		Create(gomock.Any(), gomock.Any(), "2024-06-10", "10:00", "s1", customerInfo()).
		Return(dto.BookingAcknowledgment{ID: "bk-1"}, nil)
	f.sess.EXPECT().ClearIntent().Return(nil)

	assert.NoError(t, w.Next(ctx))
	assert.Equal(t, wizard.StepConfirmation, w.Step())

	checking, creating := w.Busy()
	assert.False(t, checking)
	assert.False(t, creating)

	summary, err := w.Summary()
	assert.NoError(t, err)
	assert.Equal(t, "2024-06-10", summary.Date)
	assert.Equal(t, "10:00", summary.TimeSlot)
	assert.Equal(t, "Alex", summary.StylistName)
	assert.Equal(t, "bk-1", summary.BookingID)
	assert.Equal(t, 35.0, summary.TotalPrice)

	// terminal: no further advance
	assert.Error(t, w.Next(ctx))
}

func TestWizard_PreviousRetainsData(t *testing.T) {
	f := newFixture(t)
	w := f.atStepTwo(t)
	ctx := context.Background()

	w.Previous()
	assert.Equal(t, wizard.StepDateTime, w.Step())

	// everything survives the round trip
	assert.True(t, w.CanProceed())
	assert.NoError(t, w.Next(ctx))
	assert.Equal(t, wizard.StepStylistDetails, w.Step())
	assert.True(t, w.CanProceed())
}

func TestWizard_SummaryBeforeConfirmation(t *testing.T) {
	f := newFixture(t)
	w := f.newWizard(t)

	_, err := w.Summary()
	assert.Error(t, err)
}
