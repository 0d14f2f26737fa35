// Package cli is the terminal front end: one subcommand per backend
// operation, plus the interactive booking wizard.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"salon/infras/otel"
	authDto "salon/internal/domains/auth/model/dto"
	authService "salon/internal/domains/auth/service"
	bookingService "salon/internal/domains/booking/service"
	catalogModel "salon/internal/domains/catalog/model"
	catalogService "salon/internal/domains/catalog/service"
	reviewDto "salon/internal/domains/review/model/dto"
	reviewService "salon/internal/domains/review/service"
	stylistService "salon/internal/domains/stylist/service"
	timeslotDto "salon/internal/domains/timeslot/model/dto"
	timeslotService "salon/internal/domains/timeslot/service"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/session"
	"salon/transport/callback"
)

type CLI struct {
	authSvc     authService.Auth
	catalogSvc  catalogService.Catalog
	stylistSvc  stylistService.Stylist
	timeslotSvc timeslotService.TimeSlot
	bookingSvc  bookingService.Booking
	reviewSvc   reviewService.Review
	sess        session.Store
	listener    *callback.Listener
	otel        otel.Otel

	in  *bufio.Reader
	out io.Writer
}

func New(
	authSvc authService.Auth,
	catalogSvc catalogService.Catalog,
	stylistSvc stylistService.Stylist,
	timeslotSvc timeslotService.TimeSlot,
	bookingSvc bookingService.Booking,
	reviewSvc reviewService.Review,
	sess session.Store,
	listener *callback.Listener,
	otel otel.Otel,
	in io.Reader,
	out io.Writer,
) *CLI {
	return &CLI{
		authSvc:     authSvc,
		catalogSvc:  catalogSvc,
		stylistSvc:  stylistSvc,
		timeslotSvc: timeslotSvc,
		bookingSvc:  bookingSvc,
		reviewSvc:   reviewSvc,
		sess:        sess,
		listener:    listener,
		otel:        otel,
		in:          bufio.NewReader(in),
		out:         out,
	}
}

func (c *CLI) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.usage()

		return nil
	}

	cmd, rest := args[0], args[1:]

	switch cmd {
	case "login":
		return c.login(ctx)
	case "signup":
		return c.signup(ctx)
	case "google-login":
		return c.googleLogin(ctx)
	case "logout":
		return c.logout(ctx)
	case "forgot-password":
		return c.forgotPassword(ctx)
	case "change-password":
		return c.changePassword(ctx)
	case "services":
		return c.services(ctx, rest)
	case "packages":
		return c.packages(ctx)
	case "stylists":
		return c.stylists(ctx)
	case "slots":
		return c.slots(ctx, rest)
	case "slots-admin":
		return c.slotsAdmin(ctx, rest)
	case "book":
		return c.book(ctx, rest)
	case "reviews":
		return c.reviews(ctx)
	case "review":
		return c.review(ctx, rest)
	default:
		c.usage()

		return failure.BadRequestFromString("unknown command: " + cmd) // nolint:wrapcheck
	}
}

func (c *CLI) usage() {
	fmt.Fprintln(c.out, `Usage:
  salon login | signup | google-login | logout
  salon forgot-password | change-password
  salon services [category] | packages | stylists
  salon slots <weekday>
  salon slots-admin list | add | toggle <id> | delete <id>
  salon book service <id> | book package <id> | book appointment
  salon reviews
  salon review <bookingId> <rating 1-5> [comment]`)
}

func (c *CLI) prompt(label string) string {
	fmt.Fprintf(c.out, "%s: ", label)

	line, _ := c.in.ReadString('\n')

	return strings.TrimSpace(line)
}

func (c *CLI) login(ctx context.Context) error {
	req := authDto.LoginRequest{
		Email:    c.prompt("Email"),
		Password: c.prompt("Password"),
	}

	res, err := c.authSvc.Login(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Logged in as %s (%s)\n", req.Email, c.sess.Role())

	if res.Message != constant.Empty {
		fmt.Fprintln(c.out, res.Message)
	}

	return nil
}

func (c *CLI) signup(ctx context.Context) error {
	req := authDto.SignupRequest{
		Name:            c.prompt("Name"),
		Email:           c.prompt("Email"),
		Password:        c.prompt("Password"),
		ConfirmPassword: c.prompt("Confirm password"),
	}

	if _, err := c.authSvc.Signup(ctx, req); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Account created for %s\n", req.Email)

	return nil
}

func (c *CLI) googleLogin(ctx context.Context) error {
	fmt.Fprintf(c.out, "Open this URL in your browser to sign in:\n  %s\n", c.authSvc.GoogleAuthURL())

	role, err := c.listener.Wait(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Signed in via Google (%s)\n", role)

	return nil
}

func (c *CLI) logout(ctx context.Context) error {
	if err := c.authSvc.Logout(ctx); err != nil {
		return err
	}

	fmt.Fprintln(c.out, "Logged out")

	return nil
}

func (c *CLI) forgotPassword(ctx context.Context) error {
	email := c.prompt("Email")

	sent, err := c.authSvc.SendOTP(ctx, authDto.SendOTPRequest{Email: email})
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, sent.Message)

	otp := c.prompt("OTP code")

	verified, err := c.authSvc.VerifyOTP(ctx, authDto.VerifyOTPRequest{Email: email, OTP: otp})
	if err != nil {
		return err
	}

	if !verified.Success {
		return failure.BadRequestFromString(verified.Message) // nolint:wrapcheck
	}

	res, err := c.authSvc.ResetPassword(ctx, authDto.ResetPasswordRequest{
		Email:       email,
		OTP:         otp,
		NewPassword: c.prompt("New password"),
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, res.Message)

	return nil
}

func (c *CLI) changePassword(ctx context.Context) error {
	res, err := c.authSvc.ChangePassword(ctx, authDto.ChangePasswordRequest{
		CurrentPassword: c.prompt("Current password"),
		NewPassword:     c.prompt("New password"),
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, res.Message)

	return nil
}

func (c *CLI) services(ctx context.Context, args []string) error {
	category := constant.Empty
	if len(args) > 0 {
		category = args[0]
	}

	services, err := c.catalogSvc.ListServices(ctx, category)
	if err != nil {
		return err
	}

	if len(services) == 0 {
		fmt.Fprintln(c.out, "No services found")

		return nil
	}

	for _, svc := range services {
		fmt.Fprintf(c.out, "%s  %-30s %8.2f  %d min\n", svc.ID, svc.Name, svc.Price, svc.Duration)
	}

	return nil
}

func (c *CLI) packages(ctx context.Context) error {
	packages, err := c.catalogSvc.ListPackages(ctx)
	if err != nil {
		return err
	}

	if len(packages) == 0 {
		fmt.Fprintln(c.out, "No packages found")

		return nil
	}

	for _, pkg := range packages {
		fmt.Fprintf(c.out, "%s  %-30s %8.2f  %d min\n", pkg.ID, pkg.Name, pkg.Price, pkg.Duration)
	}

	return nil
}

func (c *CLI) stylists(ctx context.Context) error {
	stylists, err := c.stylistSvc.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, stylist := range stylists {
		fmt.Fprintf(c.out, "%s  %-24s %-20s %.1f\n", stylist.ID, stylist.Name, stylist.Specialty, stylist.Rating)
	}

	return nil
}

func (c *CLI) slots(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return failure.BadRequestFromString("usage: slots <weekday>") // nolint:wrapcheck
	}

	slots, err := c.timeslotSvc.ForWeekday(ctx, args[0])
	if err != nil {
		return err
	}

	if len(slots) == 0 {
		fmt.Fprintln(c.out, "No slots available")

		return nil
	}

	for _, slot := range slots {
		status := "available"
		if !slot.Available {
			status = "unavailable"
		}

		fmt.Fprintf(c.out, "%s  %s - %s  (%s)\n", slot.ID, slot.StartTime, slot.EndTime, status)
	}

	return nil
}

func (c *CLI) slotsAdmin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return failure.BadRequestFromString("usage: slots-admin list | add | toggle <id> | delete <id>") // nolint:wrapcheck
	}

	switch args[0] {
	case "list":
		slots, err := c.timeslotSvc.List(ctx)
		if err != nil {
			return err
		}

		for _, slot := range slots {
			fmt.Fprintf(c.out, "%s  %-10s %s - %s  %d min  available=%t\n",
				slot.ID, slot.DayOfWeek, slot.StartTime, slot.EndTime, slot.Duration, slot.Available)
		}

		return nil

	case "add":
		duration, err := strconv.Atoi(c.prompt("Duration (minutes)"))
		if err != nil {
			return failure.BadRequestFromString("duration must be a number") // nolint:wrapcheck
		}

		slot, err := c.timeslotSvc.Create(ctx, timeslotDto.CreateSlotRequest{
			DayOfWeek: c.prompt("Weekday"),
			StartTime: c.prompt("Start time (HH:MM)"),
			EndTime:   c.prompt("End time (HH:MM)"),
			Duration:  duration,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(c.out, "Created slot %s\n", slot.ID)

		return nil

	case "toggle":
		if len(args) < 2 {
			return failure.BadRequestFromString("usage: slots-admin toggle <id>") // nolint:wrapcheck
		}

		slot, err := c.timeslotSvc.Toggle(ctx, args[1])
		if err != nil {
			return err
		}

		fmt.Fprintf(c.out, "Slot %s available=%t\n", slot.ID, slot.Available)

		return nil

	case "delete":
		if len(args) < 2 {
			return failure.BadRequestFromString("usage: slots-admin delete <id>") // nolint:wrapcheck
		}

		if err := c.timeslotSvc.Delete(ctx, args[1]); err != nil {
			return err
		}

		fmt.Fprintln(c.out, "Slot deleted")

		return nil

	default:
		return failure.BadRequestFromString("unknown slots-admin action: " + args[0]) // nolint:wrapcheck
	}
}

// book stores the chosen intent and hands off to the interactive wizard. The
// user is sent to login first when no session is active; the intent survives
// the detour.
func (c *CLI) book(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return failure.BadRequestFromString("usage: book service <id> | book package <id> | book appointment") // nolint:wrapcheck
	}

	var (
		needsLogin bool
		err        error
	)

	switch args[0] {
	case constant.BookingTypeService:
		if len(args) < 2 {
			return failure.BadRequestFromString("usage: book service <id>") // nolint:wrapcheck
		}

		var svc catalogModel.Service
		if svc, err = c.findService(ctx, args[1]); err != nil {
			return err
		}

		needsLogin, err = c.catalogSvc.BeginServiceBooking(ctx, svc)

	case constant.BookingTypePackage:
		if len(args) < 2 {
			return failure.BadRequestFromString("usage: book package <id>") // nolint:wrapcheck
		}

		var pkg catalogModel.Package
		if pkg, err = c.findPackage(ctx, args[1]); err != nil {
			return err
		}

		needsLogin, err = c.catalogSvc.BeginPackageBooking(ctx, pkg)

	case constant.BookingTypeAppointment:
		needsLogin, err = c.catalogSvc.BeginAppointment(ctx)

	default:
		return failure.BadRequestFromString("unknown booking type: " + args[0]) // nolint:wrapcheck
	}

	if err != nil {
		return err
	}

	if needsLogin {
		fmt.Fprintln(c.out, "Please login first")

		if err = c.login(ctx); err != nil {
			return err
		}
	}

	return c.runWizard(ctx)
}

func (c *CLI) findService(ctx context.Context, id string) (catalogModel.Service, error) {
	services, err := c.catalogSvc.ListServices(ctx, constant.Empty)
	if err != nil {
		return catalogModel.Service{}, err
	}

	for _, svc := range services {
		if svc.ID == id {
			return svc, nil
		}
	}

	return catalogModel.Service{}, failure.NotFound(catalogModel.EntityNameService) // nolint:wrapcheck
}

func (c *CLI) findPackage(ctx context.Context, id string) (catalogModel.Package, error) {
	packages, err := c.catalogSvc.ListPackages(ctx)
	if err != nil {
		return catalogModel.Package{}, err
	}

	for _, pkg := range packages {
		if pkg.ID == id {
			return pkg, nil
		}
	}

	return catalogModel.Package{}, failure.NotFound(catalogModel.EntityNamePackage) // nolint:wrapcheck
}

func (c *CLI) reviews(ctx context.Context) error {
	reviews, err := c.reviewSvc.List(ctx)
	if err != nil {
		return err
	}

	if len(reviews) == 0 {
		fmt.Fprintln(c.out, "No reviews yet")

		return nil
	}

	for _, rv := range reviews {
		recommend := ""
		if rv.Recommend {
			recommend = "  (recommends)"
		}

		fmt.Fprintf(c.out, "%s  %d/5%s\n  %s\n", rv.BookingID, rv.Rating, recommend, rv.Comment)
	}

	return nil
}

func (c *CLI) review(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return failure.BadRequestFromString("usage: review <bookingId> <rating 1-5> [comment]") // nolint:wrapcheck
	}

	rating, err := strconv.Atoi(args[1])
	if err != nil {
		return failure.BadRequestFromString("rating must be a number between 1 and 5") // nolint:wrapcheck
	}

	req := reviewDto.SubmitReviewRequest{
		BookingID: args[0],
		Rating:    rating,
		Comment:   strings.Join(args[2:], " "),
		Recommend: strings.EqualFold(c.prompt("Would you recommend us? (y/n)"), "y"),
	}

	res, err := c.reviewSvc.Submit(ctx, req)
	if err != nil {
		return err
	}

	if res.Message != constant.Empty {
		fmt.Fprintln(c.out, res.Message)
	} else {
		fmt.Fprintln(c.out, "Thank you for your review")
	}

	return nil
}
