package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	_ "modernc.org/sqlite"

	emailPkg "mandir/internal/adapters/email"
	web "mandir/internal/adapters/http"
	"mandir/internal/adapters/storage"
	accountStore "mandir/internal/adapters/storage/account"
	assignmentStore "mandir/internal/adapters/storage/assignment"
	donationStore "mandir/internal/adapters/storage/donation"
	eventStore "mandir/internal/adapters/storage/event"
	reportStore "mandir/internal/adapters/storage/report"
	settingsStore "mandir/internal/adapters/storage/settings"
	sevaStore "mandir/internal/adapters/storage/seva"
	volunteerStore "mandir/internal/adapters/storage/volunteer"
	"mandir/internal/application/orchestrators"
	"mandir/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// WAL mode, busy timeout and foreign keys for the account/settings DB
	dsn := cfg.DBPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	log.Println("Database initialized successfully!")

	timedDB := storage.NewTimedDB(db)

	acctStore := accountStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		AccountStore:    acctStore,
		SettingsStore:   settingsStore.NewSQLiteStore(timedDB),
		SevaStore:       sevaStore.NewMemoryStore(),
		EventStore:      eventStore.NewMemoryStore(),
		VolunteerStore:  volunteerStore.NewMemoryStore(),
		AssignmentStore: assignmentStore.NewMemoryStore(),
		DonationStore:   donationStore.NewMemoryStore(),
		ReportStore:     reportStore.NewMemoryStore(),
	}

	ctx := context.Background()

	// Seed default admin account if no accounts exist
	seedDeps := orchestrators.CreateAccountDeps{AccountStore: acctStore}
	if err := orchestrators.ExecuteSeedAdmin(ctx, seedDeps, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	// The in-memory stores start empty on every boot, so the demo
	// dataset is reloaded unconditionally.
	sampleDeps := orchestrators.SeedSampleDeps{
		SevaStore:       stores.SevaStore,
		EventStore:      stores.EventStore,
		VolunteerStore:  stores.VolunteerStore,
		AssignmentStore: stores.AssignmentStore,
		DonationStore:   stores.DonationStore,
		ReportStore:     stores.ReportStore,
	}
	if err := orchestrators.ExecuteSeedSample(ctx, sampleDeps); err != nil {
		log.Fatalf("failed to seed sample data: %v", err)
	}
	log.Println("Sample data loaded")

	// Configure email sender
	if cfg.ResendAPIKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(cfg.ResendAPIKey, cfg.EmailFrom), cfg.EmailFrom, cfg.EmailReplyTo)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), cfg.EmailFrom, cfg.EmailReplyTo)
		if cfg.Production() {
			log.Println("WARNING: MANDIR_RESEND_KEY is not set, email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop, set MANDIR_RESEND_KEY for real delivery)")
		}
	}

	web.RateLimitPerSecond = cfg.RateLimit

	mux := web.NewMux("static", stores)

	log.Printf("Mandir %s starting on %s (env=%s)", version, cfg.Addr, cfg.Env)
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
