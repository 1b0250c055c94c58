package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"mandir/internal/adapters/email"
	"mandir/internal/adapters/http/middleware"
	accountStore "mandir/internal/adapters/storage/account"
	assignmentStore "mandir/internal/adapters/storage/assignment"
	donationStore "mandir/internal/adapters/storage/donation"
	eventStore "mandir/internal/adapters/storage/event"
	reportStore "mandir/internal/adapters/storage/report"
	settingsStore "mandir/internal/adapters/storage/settings"
	sevaStore "mandir/internal/adapters/storage/seva"
	volunteerStore "mandir/internal/adapters/storage/volunteer"
	"mandir/internal/application/orchestrators"
)

// Stores holds all storage dependencies.
type Stores struct {
	AccountStore    accountStore.Store
	SettingsStore   settingsStore.Store
	SevaStore       sevaStore.Store
	EventStore      eventStore.Store
	VolunteerStore  volunteerStore.Store
	AssignmentStore assignmentStore.Store
	DonationStore   donationStore.Store
	ReportStore     reportStore.Store
}

// loadCSRFKey reads the CSRF secret from MANDIR_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("MANDIR_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("MANDIR_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("MANDIR_ENV") == "production" {
		log.Fatal("MANDIR_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set MANDIR_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// Global settings service (set by NewMux)
var settingsService *orchestrators.SettingsService

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Email configuration
var emailFromAddress string
var emailReplyTo string

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender, from, replyTo string) {
	emailSender = sender
	emailFromAddress = from
	emailReplyTo = replyTo
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores) http.Handler {
	stores = s
	sessions = middleware.NewSessionStore()
	settingsService = &orchestrators.SettingsService{Store: s.SettingsStore}
	middleware.SecureCookies = os.Getenv("MANDIR_ENV") == "production"

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> SecurityHeaders -> CSRF -> Auth -> RateLimit -> Mux
	return middleware.Chain(mux,
		middleware.Timing(),
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
	)
}
