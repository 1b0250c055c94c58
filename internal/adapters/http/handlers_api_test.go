package web

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mandir/internal/adapters/http/middleware"
	assignmentStore "mandir/internal/adapters/storage/assignment"
	donationStore "mandir/internal/adapters/storage/donation"
	eventStore "mandir/internal/adapters/storage/event"
	reportStore "mandir/internal/adapters/storage/report"
	sevaStore "mandir/internal/adapters/storage/seva"
	volunteerStore "mandir/internal/adapters/storage/volunteer"
	"mandir/internal/application/orchestrators"
	"mandir/internal/application/projections"

	accountDomain "mandir/internal/domain/account"
	donationDomain "mandir/internal/domain/donation"
	eventDomain "mandir/internal/domain/event"
	settingsDomain "mandir/internal/domain/settings"
	sevaDomain "mandir/internal/domain/seva"
	volunteerDomain "mandir/internal/domain/volunteer"
)

// --- Mock stores ---

type mockAccountStore struct {
	accounts map[string]accountDomain.Account
}

// GetByID implements the mock AccountStore for testing.
// PRE: valid parameters
// POST: returns expected result
func (m *mockAccountStore) GetByID(ctx context.Context, id string) (accountDomain.Account, error) {
	if a, ok := m.accounts[id]; ok {
		return a, nil
	}
	return accountDomain.Account{}, sql.ErrNoRows
}

// GetByEmail implements the mock AccountStore for testing.
// PRE: valid parameters
// POST: returns expected result
func (m *mockAccountStore) GetByEmail(ctx context.Context, email string) (accountDomain.Account, error) {
	for _, a := range m.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return accountDomain.Account{}, sql.ErrNoRows
}

// Save implements the mock AccountStore for testing.
// PRE: valid parameters
// POST: returns expected result
func (m *mockAccountStore) Save(ctx context.Context, a accountDomain.Account) error {
	if m.accounts == nil {
		m.accounts = make(map[string]accountDomain.Account)
	}
	m.accounts[a.ID] = a
	return nil
}

// Delete implements the mock AccountStore for testing.
// PRE: valid parameters
// POST: returns expected result
func (m *mockAccountStore) Delete(ctx context.Context, id string) error {
	delete(m.accounts, id)
	return nil
}

// Count implements the mock AccountStore for testing.
// PRE: valid parameters
// POST: returns expected result
func (m *mockAccountStore) Count(ctx context.Context) (int, error) {
	return len(m.accounts), nil
}

type mockSettingsStore struct {
	values map[string]string
}

// Get implements the mock settings Store for testing.
// PRE: valid parameters
// POST: returns expected result
func (m *mockSettingsStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements the mock settings Store for testing.
// PRE: valid parameters
// POST: returns expected result
func (m *mockSettingsStore) Set(ctx context.Context, key, value string) error {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

// GetAll implements the mock settings Store for testing.
// PRE: valid parameters
// POST: returns expected result
func (m *mockSettingsStore) GetAll(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out, nil
}

// --- Test helpers ---

// newTestStores returns a Stores backed by the real in-memory stores,
// with mocks standing in for the SQLite-backed account and settings
// stores.
func newTestStores() *Stores {
	return &Stores{
		AccountStore:    &mockAccountStore{accounts: make(map[string]accountDomain.Account)},
		SettingsStore:   &mockSettingsStore{values: make(map[string]string)},
		SevaStore:       sevaStore.NewMemoryStore(),
		EventStore:      eventStore.NewMemoryStore(),
		VolunteerStore:  volunteerStore.NewMemoryStore(),
		AssignmentStore: assignmentStore.NewMemoryStore(),
		DonationStore:   donationStore.NewMemoryStore(),
		ReportStore:     reportStore.NewMemoryStore(),
	}
}

// setupTest swaps in fresh stores, sessions and settings service.
func setupTest() {
	stores = newTestStores()
	sessions = middleware.NewSessionStore()
	settingsService = &orchestrators.SettingsService{Store: stores.SettingsStore}
}

// authRequest returns a request with the given session injected into context.
func authRequest(method, url string, body string, sess middleware.Session) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	ctx := middleware.ContextWithSession(req.Context(), sess)
	return req.WithContext(ctx)
}

var adminSession = middleware.Session{
	AccountID: "admin-001",
	Email:     "admin@test.com",
	Name:      "Administrator",
	CreatedAt: time.Now(),
}

// --- Tests: auth ---

// TestHandleAPILogin_Success tests the corresponding handler.
func TestHandleAPILogin_Success(t *testing.T) {
	setupTest()
	acct := accountDomain.Account{ID: "a1", Email: "admin@test.com", Name: "Administrator", CreatedAt: time.Now()}
	if err := acct.SetPassword("temple-courtyard"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	stores.AccountStore.Save(context.Background(), acct)

	body := `{"email":"admin@test.com","password":"temple-courtyard"}`
	req := httptest.NewRequest("POST", "/api/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handleAPILogin(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want %d. Body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "mandir_session" && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Error("expected a mandir_session cookie to be set")
	}
}

// TestHandleAPILogin_WrongPassword tests the corresponding handler.
func TestHandleAPILogin_WrongPassword(t *testing.T) {
	setupTest()
	acct := accountDomain.Account{ID: "a1", Email: "admin@test.com", Name: "Administrator", CreatedAt: time.Now()}
	if err := acct.SetPassword("temple-courtyard"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	stores.AccountStore.Save(context.Background(), acct)

	body := `{"email":"admin@test.com","password":"wrong-password-here"}`
	req := httptest.NewRequest("POST", "/api/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handleAPILogin(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

// TestHandleAPISignup_Success tests the corresponding handler.
func TestHandleAPISignup_Success(t *testing.T) {
	setupTest()
	body := `{"email":"office@mandir.example","name":"Temple Office","password":"temple-courtyard"}`
	req := httptest.NewRequest("POST", "/api/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handleAPISignup(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("got %d, want %d. Body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if _, err := stores.AccountStore.GetByEmail(context.Background(), "office@mandir.example"); err != nil {
		t.Errorf("account not persisted: %v", err)
	}
}

// TestHandleAPISignup_DuplicateEmail tests the corresponding handler.
func TestHandleAPISignup_DuplicateEmail(t *testing.T) {
	setupTest()
	acct := accountDomain.Account{ID: "a1", Email: "office@mandir.example", Name: "Temple Office", CreatedAt: time.Now()}
	if err := acct.SetPassword("temple-courtyard"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	stores.AccountStore.Save(context.Background(), acct)

	body := `{"email":"office@mandir.example","name":"Again","password":"temple-courtyard"}`
	req := httptest.NewRequest("POST", "/api/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handleAPISignup(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("got %d, want %d", rec.Code, http.StatusConflict)
	}
}

// TestRequireAuth_Unauthenticated checks that API paths get 401 and
// page paths get redirected to the login page.
func TestRequireAuth_Unauthenticated(t *testing.T) {
	setupTest()
	handler := middleware.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/sevas", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("API path: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	req = httptest.NewRequest("GET", "/somewhere", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusSeeOther {
		t.Errorf("page path: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("page path: got redirect to %q, want /login", loc)
	}
}

// --- Tests: /api/sevas ---

// TestHandleAPISevas_DayDashboard tests the corresponding handler.
func TestHandleAPISevas_DayDashboard(t *testing.T) {
	setupTest()
	stores.SevaStore.Save(context.Background(), sevaDomain.Seva{
		ID: "pushpa", Name: "Pushpa Alankarana", Short: "Flower decoration",
		Bookings: []sevaDomain.Booking{
			{ID: "b1", Name: "Manoj", BookingDate: "2025-11-02", BookingTime: "09:00"},
			{ID: "b2", Name: "Soma", BookingDate: "2025-11-03", BookingTime: "10:00"},
		},
	})

	req := authRequest("GET", "/api/sevas?mode=day&date=2025-11-02", "", adminSession)
	rec := httptest.NewRecorder()
	handleAPISevas(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want %d. Body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	var result projections.GetSevaDashboardResult
	json.NewDecoder(rec.Body).Decode(&result)
	if result.Stats.TotalBookings != 1 {
		t.Errorf("got %d bookings on day, want 1", result.Stats.TotalBookings)
	}
	if len(result.Groups) != 1 || result.Groups[0].SevaID != "pushpa" {
		t.Errorf("unexpected groups: %+v", result.Groups)
	}
}

// TestHandleAPISevas_BadMode tests the corresponding handler.
func TestHandleAPISevas_BadMode(t *testing.T) {
	setupTest()
	req := authRequest("GET", "/api/sevas?mode=weekly", "", adminSession)
	rec := httptest.NewRecorder()
	handleAPISevas(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("got %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}

// TestHandleAPISevaBookings_Create tests the corresponding handler.
func TestHandleAPISevaBookings_Create(t *testing.T) {
	setupTest()
	stores.SevaStore.Save(context.Background(), sevaDomain.Seva{ID: "archana", Name: "Archana"})

	body := `{"name":"Ramesh","phone":"9000000001","booking_date":"2025-11-09","booking_time":"08:30"}`
	req := authRequest("POST", "/api/sevas/archana/bookings", body, adminSession)
	rec := httptest.NewRecorder()
	handleAPISevaBookings(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("got %d, want %d. Body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	s, err := stores.SevaStore.GetByID(context.Background(), "archana")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(s.Bookings) != 1 || s.Bookings[0].Name != "Ramesh" {
		t.Errorf("booking not persisted: %+v", s.Bookings)
	}
}

// TestHandleAPISevaBookings_UnknownSeva tests the corresponding handler.
func TestHandleAPISevaBookings_UnknownSeva(t *testing.T) {
	setupTest()
	body := `{"name":"Ramesh","booking_date":"2025-11-09"}`
	req := authRequest("POST", "/api/sevas/nope/bookings", body, adminSession)
	rec := httptest.NewRecorder()
	handleAPISevaBookings(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

// --- Tests: /api/events ---

// TestHandleAPIEvents_POST_MissingTitle tests the corresponding handler.
func TestHandleAPIEvents_POST_MissingTitle(t *testing.T) {
	setupTest()
	body := `{"id":"e1","date":"2025-12-21"}`
	req := authRequest("POST", "/api/events", body, adminSession)
	rec := httptest.NewRecorder()
	handleAPIEvents(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

// TestHandleAPIEvents_GET tests the corresponding handler.
func TestHandleAPIEvents_GET(t *testing.T) {
	setupTest()
	stores.EventStore.Save(context.Background(), eventDomain.Event{
		ID: "e1", Title: "Annadanam", Date: "2025-12-21",
		Bookings: []eventDomain.Booking{{ID: "b1", Name: "S. Raman", Advance: 500}},
	})

	req := authRequest("GET", "/api/events", "", adminSession)
	rec := httptest.NewRecorder()
	handleAPIEvents(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want %d", rec.Code, http.StatusOK)
	}
	var result projections.GetEventsResult
	json.NewDecoder(rec.Body).Decode(&result)
	if len(result.Events) != 1 {
		t.Fatalf("got %d events, want 1", len(result.Events))
	}
	if result.Events[0].TotalAdvance != 500 {
		t.Errorf("got total advance %d, want 500", result.Events[0].TotalAdvance)
	}
}

// --- Tests: volunteer assignment ---

func seedVolunteerFixtures(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	stores.VolunteerStore.Save(ctx, volunteerDomain.Volunteer{ID: "v1", Name: "K. Ramesh"})
	stores.VolunteerStore.Save(ctx, volunteerDomain.Volunteer{ID: "v3", Name: "P. Suresh", OnLeave: true})
	stores.EventStore.Save(ctx, eventDomain.Event{ID: "e1", Title: "Annadanam", Date: "2025-12-21"})
	stores.EventStore.Save(ctx, eventDomain.Event{ID: "e2", Title: "Goshala Seva", Date: "2025-11-25"})
}

// TestHandleAPIAssign_ConflictOnSameDay tests the corresponding handler.
func TestHandleAPIAssign_ConflictOnSameDay(t *testing.T) {
	setupTest()
	seedVolunteerFixtures(t)

	body := `{"volunteer_id":"v1","event_id":"e1","date":"2025-11-02"}`
	req := authRequest("POST", "/api/volunteers/assign", body, adminSession)
	rec := httptest.NewRecorder()
	handleAPIAssign(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first assign: got %d, want %d. Body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	// Same triple again is a no-op, not a conflict.
	req = authRequest("POST", "/api/volunteers/assign", body, adminSession)
	rec = httptest.NewRecorder()
	handleAPIAssign(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("repeat assign: got %d, want %d", rec.Code, http.StatusOK)
	}

	body = `{"volunteer_id":"v1","event_id":"e2","date":"2025-11-02"}`
	req = authRequest("POST", "/api/volunteers/assign", body, adminSession)
	rec = httptest.NewRecorder()
	handleAPIAssign(rec, req)
	if rec.Code != http.StatusConflict {
		t.Errorf("conflicting assign: got %d, want %d", rec.Code, http.StatusConflict)
	}
}

// TestHandleAPIAssign_OnLeave tests the corresponding handler.
func TestHandleAPIAssign_OnLeave(t *testing.T) {
	setupTest()
	seedVolunteerFixtures(t)

	body := `{"volunteer_id":"v3","event_id":"e1","date":"2025-11-02"}`
	req := authRequest("POST", "/api/volunteers/assign", body, adminSession)
	rec := httptest.NewRecorder()
	handleAPIAssign(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("got %d, want %d", rec.Code, http.StatusConflict)
	}
}

// TestHandleAPIMarkOnLeave_ReleasesOnlyViewedDate tests the corresponding handler.
func TestHandleAPIMarkOnLeave_ReleasesOnlyViewedDate(t *testing.T) {
	setupTest()
	seedVolunteerFixtures(t)
	ctx := context.Background()

	for _, body := range []string{
		`{"volunteer_id":"v1","event_id":"e1","date":"2025-11-02"}`,
		`{"volunteer_id":"v1","event_id":"e2","date":"2025-11-03"}`,
	} {
		req := authRequest("POST", "/api/volunteers/assign", body, adminSession)
		rec := httptest.NewRecorder()
		handleAPIAssign(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("assign: got %d, want %d", rec.Code, http.StatusOK)
		}
	}

	req := authRequest("POST", "/api/volunteers/leave", `{"volunteer_id":"v1","date":"2025-11-02"}`, adminSession)
	rec := httptest.NewRecorder()
	handleAPIMarkOnLeave(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("mark leave: got %d, want %d. Body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	remaining, err := stores.AssignmentStore.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Date != "2025-11-03" {
		t.Errorf("expected only the 2025-11-03 assignment to survive, got %+v", remaining)
	}

	vol, err := stores.VolunteerStore.GetByID(ctx, "v1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !vol.OnLeave {
		t.Error("expected volunteer to be on leave")
	}
}

// TestHandleAPIVolunteers_Board tests the corresponding handler.
func TestHandleAPIVolunteers_Board(t *testing.T) {
	setupTest()
	seedVolunteerFixtures(t)

	req := authRequest("POST", "/api/volunteers/assign", `{"volunteer_id":"v1","event_id":"e1","date":"2025-11-02"}`, adminSession)
	rec := httptest.NewRecorder()
	handleAPIAssign(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("assign: got %d", rec.Code)
	}

	req = authRequest("GET", "/api/volunteers?event_id=e1&date=2025-11-02", "", adminSession)
	rec = httptest.NewRecorder()
	handleAPIVolunteers(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want %d. Body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var result projections.GetVolunteerBoardResult
	json.NewDecoder(rec.Body).Decode(&result)
	if result.Assigned != 1 {
		t.Errorf("got %d assigned, want 1", result.Assigned)
	}
	if result.OnLeave != 1 {
		t.Errorf("got %d on leave, want 1", result.OnLeave)
	}
}

// --- Tests: /api/donations ---

// TestHandleAPIDonations_FilterByType tests the corresponding handler.
func TestHandleAPIDonations_FilterByType(t *testing.T) {
	setupTest()
	ctx := context.Background()
	stores.DonationStore.Save(ctx, donationDomain.Donation{
		ID: "d1", Donor: "Anil", PaymentType: donationDomain.TypeOnline, Date: "2025-11-01", Method: "UPI", Amount: 500,
	})
	stores.DonationStore.Save(ctx, donationDomain.Donation{
		ID: "d2", Donor: "Bina", PaymentType: donationDomain.TypeOffline, Date: "2025-11-02", Method: "Cash", Amount: 250,
	})

	req := authRequest("GET", "/api/donations?type=Online", "", adminSession)
	rec := httptest.NewRecorder()
	handleAPIDonations(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want %d", rec.Code, http.StatusOK)
	}
	var result projections.GetDonationsResult
	json.NewDecoder(rec.Body).Decode(&result)
	if len(result.Donations) != 1 || result.Donations[0].ID != "d1" {
		t.Errorf("unexpected donations: %+v", result.Donations)
	}
	if result.TotalAmount != 500 {
		t.Errorf("got total %d, want 500", result.TotalAmount)
	}
}

// TestHandleAPIDonations_POST tests the corresponding handler.
func TestHandleAPIDonations_POST(t *testing.T) {
	setupTest()
	body := `{"donor":"Chitra","payment_type":"Online","date":"2025-11-04","method":"Card","amount":1200}`
	req := authRequest("POST", "/api/donations", body, adminSession)
	rec := httptest.NewRecorder()
	handleAPIDonations(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("got %d, want %d. Body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	all, _ := stores.DonationStore.List(context.Background())
	if len(all) != 1 || all[0].Donor != "Chitra" {
		t.Errorf("donation not persisted: %+v", all)
	}
}

// --- Tests: /api/settings ---

// TestHandleAPISettings_RoundTrip tests the corresponding handler.
func TestHandleAPISettings_RoundTrip(t *testing.T) {
	setupTest()
	body := `{"name":"Temple Office","email":"office@mandir.example","dark_mode":true,"notifications":true,"language":"ta"}`
	req := authRequest("PUT", "/api/settings", body, adminSession)
	rec := httptest.NewRecorder()
	handleAPISettings(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT: got %d, want %d. Body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	req = authRequest("GET", "/api/settings", "", adminSession)
	rec = httptest.NewRecorder()
	handleAPISettings(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET: got %d, want %d", rec.Code, http.StatusOK)
	}
	var cfg settingsDomain.Settings
	json.NewDecoder(rec.Body).Decode(&cfg)
	if cfg.Name != "Temple Office" || cfg.Language != "ta" || !cfg.DarkMode {
		t.Errorf("settings did not round trip: %+v", cfg)
	}
}

// TestHandleAPISettings_RejectsBadLanguage tests the corresponding handler.
func TestHandleAPISettings_RejectsBadLanguage(t *testing.T) {
	setupTest()
	body := `{"name":"Temple Office","email":"office@mandir.example","language":"fr"}`
	req := authRequest("PUT", "/api/settings", body, adminSession)
	rec := httptest.NewRecorder()
	handleAPISettings(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("got %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}

// --- Tests: /api/overview ---

// TestHandleAPIOverview tests the corresponding handler.
func TestHandleAPIOverview(t *testing.T) {
	setupTest()
	ctx := context.Background()
	stores.SevaStore.Save(ctx, sevaDomain.Seva{
		ID: "pushpa", Name: "Pushpa Alankarana",
		Bookings: []sevaDomain.Booking{{ID: "b1", Name: "Manoj", BookingDate: "2025-11-05"}},
	})
	stores.VolunteerStore.Save(ctx, volunteerDomain.Volunteer{ID: "v1", Name: "K. Ramesh"})

	orig := timeNow
	timeNow = func() time.Time { return time.Date(2025, 11, 5, 10, 0, 0, 0, time.UTC) }
	defer func() { timeNow = orig }()

	req := authRequest("GET", "/api/overview", "", adminSession)
	rec := httptest.NewRecorder()
	handleAPIOverview(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want %d", rec.Code, http.StatusOK)
	}
	var result projections.GetOverviewResult
	json.NewDecoder(rec.Body).Decode(&result)
	if result.TodayBookings != 1 {
		t.Errorf("got %d bookings today, want 1", result.TodayBookings)
	}
	if result.VolunteersAvailable != 1 {
		t.Errorf("got %d volunteers available, want 1", result.VolunteersAvailable)
	}
}
