package constants

import "time"

// Database pool settings
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

// External call timeout applied to every provider/mail request.
const DefaultTimeout = 10 * time.Second

// JWT token scopes
const (
	ScopeTokenAccess  = "access"
	ScopeTokenRefresh = "refresh"
)

// Token lifetimes
const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// OAuth state tokens are single use and short lived.
const OAuthStateTTL = 10 * time.Minute

// Google Calendar OAuth scopes. WriteAccess on a connection is true only
// when the granted scope set includes CalendarEventsScope.
const (
	CalendarReadOnlyScope = "https://www.googleapis.com/auth/calendar.readonly"
	CalendarEventsScope   = "https://www.googleapis.com/auth/calendar.events"
)

// Calendar providers
const (
	ProviderGoogle = "google"
)

// Reminder lead time before a confirmed gig starts.
const GigReminderLead = 24 * time.Hour
