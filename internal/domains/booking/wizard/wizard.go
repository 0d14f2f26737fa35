// Package wizard drives the three-step booking flow: date and time choice,
// stylist and customer details, then a server-confirmed creation. Every
// transition is user-triggered; nothing retries or polls in the background.
package wizard

import (
	"context"
	"sync"
	"time"

	"salon/infras/otel"
	"salon/internal/domains/booking/model"
	"salon/internal/domains/booking/model/dto"
	bookingService "salon/internal/domains/booking/service"
	stylistModel "salon/internal/domains/stylist/model"
	stylistService "salon/internal/domains/stylist/service"
	timeslotModel "salon/internal/domains/timeslot/model"
	timeslotService "salon/internal/domains/timeslot/service"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/session"
	"salon/shared/timezone"
	"salon/shared/validator"
)

type Step int

const (
	StepDateTime Step = iota + 1
	StepStylistDetails
	StepConfirmation
)

// Summary is the read-only confirmation view shown on the final step.
type Summary struct {
	BookingName string
	BookingType string
	Date        string
	TimeSlot    string
	StylistName string
	TotalPrice  float64
	BookingID   string
}

type Wizard struct {
	mu sync.Mutex

	bookingSvc  bookingService.Booking
	stylistSvc  stylistService.Stylist
	timeslotSvc timeslotService.TimeSlot
	sess        session.Store
	otel        otel.Otel

	intent session.BookingIntent

	step              Step
	selectedDate      string
	selectedDay       string
	selectedTime      string
	selectedStylistID string
	customerInfo      model.CustomerInfo

	stylists []stylistModel.Stylist
	slots    []timeslotModel.TimeSlot

	// fetchSeq tags slot fetches so a slow response for a previously selected
	// day cannot overwrite a newer selection's list.
	fetchSeq uint64

	checking bool
	creating bool

	ack dto.BookingAcknowledgment
}

// New builds a wizard for the intent stored in the session. Entering without
// an intent, or with one that no longer validates, fails before any state is
// set up.
func New(
	bookingSvc bookingService.Booking,
	stylistSvc stylistService.Stylist,
	timeslotSvc timeslotService.TimeSlot,
	sess session.Store,
	otel otel.Otel,
) (*Wizard, error) {
	intent, err := sess.Intent()
	if err != nil {
		return nil, err
	}

	return &Wizard{
		bookingSvc:  bookingSvc,
		stylistSvc:  stylistSvc,
		timeslotSvc: timeslotSvc,
		sess:        sess,
		otel:        otel,
		intent:      *intent,
		step:        StepDateTime,
	}, nil
}

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.step
}

func (w *Wizard) Intent() session.BookingIntent {
	return w.intent
}

// CalendarDays lists the selectable dates, starting today.
func (w *Wizard) CalendarDays() []string {
	days := make([]string, 0, constant.CalendarWindowDays)

	now := timezone.Now()
	for i := 0; i < constant.CalendarWindowDays; i++ {
		days = append(days, now.AddDate(0, 0, i).Format(constant.DateFormat))
	}

	return days
}

// LoadStylists fetches the stylist list once per wizard session. On failure
// the list stays empty and the user cannot advance past stylist selection.
func (w *Wizard) LoadStylists(ctx context.Context) (res []stylistModel.Stylist, err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelWizardScopeName, constant.OtelWizardScopeName+".LoadStylists")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = w.stylistSvc.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	w.stylists = res
	w.mu.Unlock()

	return res, nil
}

// SelectDate records the date, derives its weekday and refreshes that day's
// slot list. The previously selected time is cleared eagerly; it only becomes
// valid again once re-picked from the new list. A stale fetch result, one
// whose date is no longer current by the time it lands, is discarded.
func (w *Wizard) SelectDate(ctx context.Context, date string) (err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelWizardScopeName, constant.OtelWizardScopeName+".SelectDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	parsed, err := time.Parse(constant.DateFormat, date)
	if err != nil {
		return failure.BadRequestFromString("date must be in YYYY-MM-DD format") // nolint:wrapcheck
	}

	w.mu.Lock()
	if w.step == StepConfirmation {
		w.mu.Unlock()

		return failure.BadRequestFromString("booking is already confirmed") // nolint:wrapcheck
	}

	w.selectedDate = date
	w.selectedDay = timezone.Weekday(parsed)
	w.selectedTime = constant.Empty
	w.slots = nil
	w.fetchSeq++

	seq := w.fetchSeq
	day := w.selectedDay
	w.mu.Unlock()

	slots, err := w.timeslotSvc.ForWeekday(ctx, day)

	w.mu.Lock()
	defer w.mu.Unlock()

	if seq != w.fetchSeq {
		return nil
	}

	if err != nil {
		return err
	}

	w.slots = slots

	return nil
}

func (w *Wizard) Slots() []timeslotModel.TimeSlot {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.slots
}

func (w *Wizard) Stylists() []stylistModel.Stylist {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.stylists
}

// SelectTime accepts only a start time present in the currently loaded slot
// list, so a selection can never outlive the list it was made from.
func (w *Wizard) SelectTime(startTime string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.selectedDate == constant.Empty {
		return failure.BadRequestFromString("select a date first") // nolint:wrapcheck
	}

	for _, slot := range w.slots {
		if slot.StartTime == startTime {
			w.selectedTime = startTime

			return nil
		}
	}

	return failure.BadRequestFromString("time is not in the current slot list") // nolint:wrapcheck
}

func (w *Wizard) SelectStylist(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, stylist := range w.stylists {
		if stylist.ID == id {
			w.selectedStylistID = id

			return nil
		}
	}

	return failure.BadRequestFromString("stylist is not in the loaded list") // nolint:wrapcheck
}

func (w *Wizard) SetCustomerInfo(info model.CustomerInfo) error {
	if err := validator.ValidateStruct(&info); err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.customerInfo = info

	return nil
}

// CanProceed reports whether the advance action is enabled for the current
// step: date and time on the first, stylist plus complete customer info on the
// second, never on the confirmation step.
func (w *Wizard) CanProceed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.step {
	case StepDateTime:
		return w.selectedDate != constant.Empty && w.selectedTime != constant.Empty
	case StepStylistDetails:
		return w.selectedStylistID != constant.Empty && w.customerInfo.Complete() && !w.checking && !w.creating
	default:
		return false
	}
}

// Busy reports the in-flight availability check and creation flags.
func (w *Wizard) Busy() (checking, creating bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.checking, w.creating
}

// Next advances the wizard. From the first step it is a local transition; from
// the second it runs the availability check and, only on a positive result,
// the creation request. Any failure keeps the wizard on the second step with
// all selections intact so the user can adjust and retry.
func (w *Wizard) Next(ctx context.Context) (err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelWizardScopeName, constant.OtelWizardScopeName+".Next")
	defer scope.End()
	defer scope.TraceIfError(err)

	w.mu.Lock()

	switch w.step {
	case StepDateTime:
		defer w.mu.Unlock()

		if w.selectedDate == constant.Empty || w.selectedTime == constant.Empty {
			return failure.BadRequestFromString("select a date and time first") // nolint:wrapcheck
		}

		w.step = StepStylistDetails

		return nil

	case StepStylistDetails:
		if w.selectedStylistID == constant.Empty || !w.customerInfo.Complete() {
			w.mu.Unlock()

			return failure.BadRequestFromString("select a stylist and fill in your details first") // nolint:wrapcheck
		}

		if w.checking || w.creating {
			w.mu.Unlock()

			return failure.Conflict("a submission is already in progress") // nolint:wrapcheck
		}

		return w.submit(ctx)

	default:
		w.mu.Unlock()

		return failure.BadRequestFromString("booking is already confirmed") // nolint:wrapcheck
	}
}

// submit runs check-then-create. Called with the mutex held; releases it
// around the network calls so accessors stay responsive.
func (w *Wizard) submit(ctx context.Context) error {
	date := w.selectedDate
	timeSlot := w.selectedTime
	stylistID := w.selectedStylistID
	info := w.customerInfo

	w.checking = true
	w.mu.Unlock()

	check, err := w.bookingSvc.CheckAvailability(ctx, dto.AvailabilityRequest{
		Date:      date,
		TimeSlot:  timeSlot,
		StylistID: stylistID,
	})

	w.mu.Lock()
	w.checking = false

	if err != nil {
		w.mu.Unlock()

		return err
	}

	if !check.Available {
		w.mu.Unlock()

		reason := check.Reason
		if reason == constant.Empty {
			reason = constant.MsgSlotUnavailable
		}

		return failure.Conflict(reason) // nolint:wrapcheck
	}

	w.creating = true
	w.mu.Unlock()

	ack, err := w.bookingSvc.Create(ctx, w.intent, date, timeSlot, stylistID, info)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.creating = false

	if err != nil {
		return err
	}

	w.ack = ack
	w.step = StepConfirmation

	// The intent is consumed; a later wizard session needs a fresh one.
	_ = w.sess.ClearIntent()

	return nil
}

// Previous steps back from stylist selection to date and time, keeping every
// value the user already entered. It is a no-op elsewhere.
func (w *Wizard) Previous() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step == StepStylistDetails {
		w.step = StepDateTime
	}
}

// Summary renders the confirmation screen data. Valid only on the final step.
func (w *Wizard) Summary() (Summary, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepConfirmation {
		return Summary{}, failure.BadRequestFromString("booking is not confirmed yet") // nolint:wrapcheck
	}

	stylistName := w.selectedStylistID
	for _, stylist := range w.stylists {
		if stylist.ID == w.selectedStylistID {
			stylistName = stylist.Name

			break
		}
	}

	total := w.intent.Price
	if w.intent.Type == constant.BookingTypeAppointment {
		total = 0
	}

	return Summary{
		BookingName: w.intent.Name,
		BookingType: w.intent.Type,
		Date:        w.selectedDate,
		TimeSlot:    w.selectedTime,
		StylistName: stylistName,
		TotalPrice:  total,
		BookingID:   w.ack.ID,
	}, nil
}
