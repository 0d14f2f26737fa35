package session

//go:generate go run go.uber.org/mock/mockgen -source=./session.go -destination=./mocks/session_mock.go -package=mocks

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"salon/config"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/validator"
	"sync"

	"github.com/rs/zerolog/log"
)

// BookingIntent is the service, package, or walk-in appointment the user chose
// before entering the booking flow. It is written by the catalog and read by
// the wizard at construction time.
type BookingIntent struct {
	Type      string  `json:"bookingType" validate:"required,oneof=service package appointment"`
	ServiceID string  `json:"serviceId,omitempty"`
	PackageID string  `json:"packageId,omitempty"`
	Name      string  `json:"name" validate:"required"`
	Price     float64 `json:"price"`
	Duration  int     `json:"duration,omitempty"`
}

// Store holds the client-side session: the bearer token, the signed-in flag,
// and the pending booking intent. The file-backed implementation survives a
// process restart, which is what lets a booking intent outlive a detour
// through the login flow.
type Store interface {
	Token() string
	SetToken(token, role string) error
	ClearAuth() error
	LoggedIn() bool
	Role() string
	Intent() (*BookingIntent, error)
	SetIntent(intent BookingIntent) error
	ClearIntent() error
}

type state struct {
	Token    string         `json:"token,omitempty"`
	Role     string         `json:"role,omitempty"`
	LoggedIn bool           `json:"isLoggedIn"`
	Intent   *BookingIntent `json:"selectedBooking,omitempty"`
}

type fileStore struct {
	path string
	mu   sync.Mutex
	s    state
}

// New loads the session file if present and returns a file-backed store.
// A missing file starts an empty session; an unreadable one is discarded
// with a warning rather than blocking the app.
func New(cfg *config.Config) (Store, error) {
	store := &fileStore{
		path: cfg.Session.FilePath,
	}

	raw, err := os.ReadFile(store.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading session file: %w", err)
		}

		return store, nil
	}

	if err := json.Unmarshal(raw, &store.s); err != nil {
		log.Warn().Err(err).Str("path", store.path).Msg("Session file is corrupt, starting a fresh session")
		store.s = state{}
	}

	return store, nil
}

func (f *fileStore) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.s.Token
}

func (f *fileStore) SetToken(token, role string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.s.Token = token
	f.s.Role = role
	f.s.LoggedIn = true

	return f.persist()
}

func (f *fileStore) ClearAuth() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.s.Token = ""
	f.s.Role = ""
	f.s.LoggedIn = false

	return f.persist()
}

func (f *fileStore) LoggedIn() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.s.LoggedIn
}

func (f *fileStore) Role() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.s.Role
}

// Intent returns the stored booking intent, or a typed failure when none is
// present or the stored value no longer passes validation.
func (f *fileStore) Intent() (*BookingIntent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.s.Intent == nil {
		return nil, failure.MissingBookingIntent
	}

	intent := *f.s.Intent
	if err := validateIntent(&intent); err != nil {
		return nil, failure.MalformedBookingIntent
	}

	return &intent, nil
}

// SetIntent validates and stores the booking intent. Validation happens once
// here, at the boundary, so readers can trust the stored shape.
func (f *fileStore) SetIntent(intent BookingIntent) error {
	if err := validateIntent(&intent); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.s.Intent = &intent

	return f.persist()
}

func (f *fileStore) ClearIntent() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.s.Intent = nil

	return f.persist()
}

func validateIntent(intent *BookingIntent) error {
	if err := validator.ValidateStruct(intent); err != nil {
		return err
	}

	switch intent.Type {
	case constant.BookingTypeService:
		if intent.ServiceID == "" {
			return failure.BadRequestFromString("serviceId is required for service bookings")
		}
	case constant.BookingTypePackage:
		if intent.PackageID == "" {
			return failure.BadRequestFromString("packageId is required for package bookings")
		}
	}

	return nil
}

// persist writes the session atomically; callers hold the mutex.
func (f *fileStore) persist() error {
	raw, err := json.MarshalIndent(f.s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}

	if err := os.Rename(tmp, filepath.Clean(f.path)); err != nil {
		return fmt.Errorf("replacing session file: %w", err)
	}

	return nil
}
