package constant

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

const (
	BookingTypeService     = "service"
	BookingTypePackage     = "package"
	BookingTypeAppointment = "appointment"
)

const (
	RequestParamDay      = "day"
	RequestParamCategory = "category"
	RequestParamToken    = "token"
	RequestParamRole     = "role"
)

const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

const (
	DefaultTimezone    = "UTC"
	CalendarWindowDays = 14
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelExternalScopeName   = "external"
	OtelWizardScopeName     = "wizard"
)

const (
	RequestHeaderAuthorization = "Authorization"
	RequestHeaderContentType   = "Content-Type"
	RequestHeaderRequestID     = "X-Request-ID"
	RequestHeaderAccept        = "Accept"
)

const (
	ContentTypeJSON  = "application/json"
	ContentTypeHTML  = "text/html; charset=utf-8"
	AuthSchemeBearer = "Bearer "
)

const (
	PathStylists       = "stylist"
	PathTimeSlots      = "timeSlot/getTime"
	PathTimeSlotsAdmin = "timeSlot/admin"
	PathBookingCheck   = "bookings/check"
	PathBookingCreate  = "bookings/create"
	PathServices       = "services"
	PathPackages       = "packages"
	PathReviews        = "reviews"
	PathAuthLogin      = "auth/login"
	PathAuthSignup     = "auth/signup"
	PathAuthSendOTP    = "auth/send-otp"
	PathAuthVerifyOTP  = "auth/verify-otp"
	PathAuthResetPass  = "auth/reset-password"
	PathAuthChangePass = "auth/change-password"
	PathAuthGoogle     = "auth/google"
	PathGoogleCallback = "/auth/google/callback"
)

const (
	MsgSlotUnavailable  = "Selected slot is unavailable. Please choose another."
	MsgBookingFailed    = "Error processing booking. Try again."
	MsgNotAuthenticated = "Not authenticated. Please login."
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
