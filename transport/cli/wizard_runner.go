package cli

import (
	"context"
	"fmt"
	"strings"

	"salon/internal/domains/booking/model"
	"salon/internal/domains/booking/wizard"
	"salon/shared/constant"
)

// runWizard drives the three-step booking flow interactively. Each step loops
// until its inputs are accepted; failures print and re-prompt instead of
// aborting, matching the retry-in-place flow.
func (c *CLI) runWizard(ctx context.Context) error {
	w, err := wizard.New(c.bookingSvc, c.stylistSvc, c.timeslotSvc, c.sess, c.otel)
	if err != nil {
		return err
	}

	intent := w.Intent()
	fmt.Fprintf(c.out, "\nBooking: %s (%s)\n", intent.Name, intent.Type)

	for w.Step() != wizard.StepConfirmation {
		switch w.Step() {
		case wizard.StepDateTime:
			if err := c.runDateTimeStep(ctx, w); err != nil {
				return err
			}
		case wizard.StepStylistDetails:
			if err := c.runStylistDetailsStep(ctx, w); err != nil {
				return err
			}
		}
	}

	return c.printSummary(w)
}

func (c *CLI) runDateTimeStep(ctx context.Context, w *wizard.Wizard) error {
	fmt.Fprintln(c.out, "\nStep 1 of 3: pick a date and time")
	fmt.Fprintf(c.out, "Available dates: %s\n", strings.Join(w.CalendarDays(), ", "))

	for {
		if err := w.SelectDate(ctx, c.prompt("Date (YYYY-MM-DD)")); err != nil {
			fmt.Fprintln(c.out, err.Error())

			continue
		}

		slots := w.Slots()
		if len(slots) == 0 {
			fmt.Fprintln(c.out, "No slots available for that day, pick another date")

			continue
		}

		fmt.Fprintln(c.out, "Available times:")
		for _, slot := range slots {
			fmt.Fprintf(c.out, "  %s - %s\n", slot.StartTime, slot.EndTime)
		}

		if err := w.SelectTime(c.prompt("Time (HH:MM)")); err != nil {
			fmt.Fprintln(c.out, err.Error())

			continue
		}

		return w.Next(ctx)
	}
}

func (c *CLI) runStylistDetailsStep(ctx context.Context, w *wizard.Wizard) error {
	fmt.Fprintln(c.out, "\nStep 2 of 3: pick a stylist and enter your details")

	stylists := w.Stylists()
	if len(stylists) == 0 {
		var err error
		if stylists, err = w.LoadStylists(ctx); err != nil {
			return err
		}
	}

	for _, stylist := range stylists {
		fmt.Fprintf(c.out, "  %s  %-24s %-20s %.1f\n", stylist.ID, stylist.Name, stylist.Specialty, stylist.Rating)
	}

	for {
		choice := c.prompt("Stylist id (or 'back')")
		if strings.EqualFold(choice, "back") {
			w.Previous()

			return nil
		}

		if err := w.SelectStylist(choice); err != nil {
			fmt.Fprintln(c.out, err.Error())

			continue
		}

		info := model.CustomerInfo{
			FirstName: c.prompt("First name"),
			LastName:  c.prompt("Last name"),
			Email:     c.prompt("Email"),
			Phone:     c.prompt("Phone"),
		}
		if err := w.SetCustomerInfo(info); err != nil {
			fmt.Fprintln(c.out, err.Error())

			continue
		}

		if err := w.Next(ctx); err != nil {
			// unavailable slot or failed creation: stay here and let the
			// user adjust the selection
			fmt.Fprintln(c.out, err.Error())

			if strings.EqualFold(c.prompt("Try a different time? (y/n)"), "y") {
				w.Previous()

				return nil
			}

			continue
		}

		return nil
	}
}

func (c *CLI) printSummary(w *wizard.Wizard) error {
	summary, err := w.Summary()
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, "\nStep 3 of 3: booking confirmed")
	fmt.Fprintf(c.out, "  %s (%s)\n", summary.BookingName, summary.BookingType)
	fmt.Fprintf(c.out, "  %s at %s with %s\n", summary.Date, summary.TimeSlot, summary.StylistName)

	if summary.BookingID != constant.Empty {
		fmt.Fprintf(c.out, "  Reference: %s\n", summary.BookingID)
	}

	fmt.Fprintf(c.out, "  Total: %.2f\n", summary.TotalPrice)

	return nil
}
