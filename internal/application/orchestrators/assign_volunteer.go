package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	"mandir/internal/adapters/email"
	"mandir/internal/domain/assignment"
	"mandir/internal/domain/event"
	"mandir/internal/domain/settings"
	"mandir/internal/domain/volunteer"
)

// VolunteerStoreForAssign defines the store interface needed by the
// assignment orchestrators.
type VolunteerStoreForAssign interface {
	GetByID(ctx context.Context, id string) (volunteer.Volunteer, error)
	Save(ctx context.Context, v volunteer.Volunteer) error
}

// AssignmentStoreForAssign defines the store interface needed by the
// assignment orchestrators.
type AssignmentStoreForAssign interface {
	ListByVolunteerAndDate(ctx context.Context, volunteerID, date string) ([]assignment.Assignment, error)
	Insert(ctx context.Context, a assignment.Assignment) error
	Remove(ctx context.Context, a assignment.Assignment) error
	RemoveByVolunteerAndDate(ctx context.Context, volunteerID, date string) error
}

// EventStoreForAssign defines the store interface needed to resolve
// event titles for notifications.
type EventStoreForAssign interface {
	GetByID(ctx context.Context, id string) (event.Event, error)
}

// SettingsLoader resolves the current admin settings. Assignment
// notifications are sent only when the notifications preference is on.
type SettingsLoader interface {
	Load(ctx context.Context) (settings.Settings, error)
}

// AssignVolunteerInput carries input for the assignment orchestrators.
type AssignVolunteerInput struct {
	VolunteerID string
	EventID     string
	Date        string
}

// AssignVolunteerDeps holds dependencies for the assignment orchestrators.
// Settings and Email are optional; when either is nil no notification
// is attempted.
type AssignVolunteerDeps struct {
	VolunteerStore  VolunteerStoreForAssign
	AssignmentStore AssignmentStoreForAssign
	EventStore      EventStoreForAssign
	Settings        SettingsLoader
	Email           email.Sender
	EmailFrom       string
	EmailReplyTo    string
}

// ExecuteAssignVolunteer assigns a volunteer to an event on a date.
// Re-assigning an existing triple is a silent no-op.
// PRE: input names an existing volunteer
// POST: The volunteer is assigned to the event on the date
// INVARIANT: A volunteer holds at most one assignment per date
func ExecuteAssignVolunteer(ctx context.Context, input AssignVolunteerInput, deps AssignVolunteerDeps) error {
	a := assignment.Assignment{VolunteerID: input.VolunteerID, EventID: input.EventID, Date: input.Date}
	if err := a.Validate(); err != nil {
		return err
	}

	vol, err := deps.VolunteerStore.GetByID(ctx, input.VolunteerID)
	if err != nil {
		return err
	}
	if vol.OnLeave {
		return assignment.ErrOnLeave
	}

	existing, err := deps.AssignmentStore.ListByVolunteerAndDate(ctx, input.VolunteerID, input.Date)
	if err != nil {
		return err
	}
	for _, e := range existing {
		if e.Equal(a) {
			return nil // already assigned, nothing to do
		}
	}
	if len(existing) > 0 {
		return assignment.ErrConflict
	}

	if err := deps.AssignmentStore.Insert(ctx, a); err != nil {
		return err
	}

	slog.Info("assignment_event", "event", "volunteer_assigned",
		"volunteer_id", input.VolunteerID, "event_id", input.EventID, "date", input.Date)

	notifyAssignmentChange(ctx, deps, vol, input.EventID, input.Date, "assigned to")
	return nil
}

// ExecuteUnassignVolunteer removes a volunteer's assignment to an
// event on a date. Removing an absent assignment is a silent no-op.
// PRE: input fields are non-empty
// POST: The volunteer is not assigned to the event on the date
func ExecuteUnassignVolunteer(ctx context.Context, input AssignVolunteerInput, deps AssignVolunteerDeps) error {
	a := assignment.Assignment{VolunteerID: input.VolunteerID, EventID: input.EventID, Date: input.Date}
	if err := a.Validate(); err != nil {
		return err
	}

	existing, err := deps.AssignmentStore.ListByVolunteerAndDate(ctx, input.VolunteerID, input.Date)
	if err != nil {
		return err
	}
	present := false
	for _, e := range existing {
		if e.Equal(a) {
			present = true
			break
		}
	}
	if !present {
		return nil
	}

	if err := deps.AssignmentStore.Remove(ctx, a); err != nil {
		return err
	}

	slog.Info("assignment_event", "event", "volunteer_unassigned",
		"volunteer_id", input.VolunteerID, "event_id", input.EventID, "date", input.Date)

	vol, err := deps.VolunteerStore.GetByID(ctx, input.VolunteerID)
	if err == nil {
		notifyAssignmentChange(ctx, deps, vol, input.EventID, input.Date, "unassigned from")
	}
	return nil
}

// MarkLeaveInput carries input for the leave orchestrators. ViewedDate
// is the date the admin is currently scheduling for.
type MarkLeaveInput struct {
	VolunteerID string
	ViewedDate  string
}

// ExecuteMarkOnLeave marks a volunteer as on leave and releases their
// assignments on the viewed date. Assignments on other dates are kept.
// PRE: input names an existing volunteer; ViewedDate is a day key
// POST: Volunteer is on leave with no assignments on ViewedDate
func ExecuteMarkOnLeave(ctx context.Context, input MarkLeaveInput, deps AssignVolunteerDeps) error {
	vol, err := deps.VolunteerStore.GetByID(ctx, input.VolunteerID)
	if err != nil {
		return err
	}

	vol.OnLeave = true
	if err := deps.VolunteerStore.Save(ctx, vol); err != nil {
		return err
	}

	if err := deps.AssignmentStore.RemoveByVolunteerAndDate(ctx, input.VolunteerID, input.ViewedDate); err != nil {
		return err
	}

	slog.Info("assignment_event", "event", "volunteer_on_leave",
		"volunteer_id", input.VolunteerID, "date", input.ViewedDate)
	return nil
}

// ExecuteMarkAvailable clears a volunteer's leave flag. Previous
// assignments are not restored.
// PRE: input names an existing volunteer
// POST: Volunteer is available for assignment again
func ExecuteMarkAvailable(ctx context.Context, input MarkLeaveInput, deps AssignVolunteerDeps) error {
	vol, err := deps.VolunteerStore.GetByID(ctx, input.VolunteerID)
	if err != nil {
		return err
	}

	vol.OnLeave = false
	if err := deps.VolunteerStore.Save(ctx, vol); err != nil {
		return err
	}

	slog.Info("assignment_event", "event", "volunteer_available",
		"volunteer_id", input.VolunteerID)
	return nil
}

// notifyAssignmentChange emails the admin about an assignment change
// when notifications are enabled. Failures are logged, never surfaced.
func notifyAssignmentChange(ctx context.Context, deps AssignVolunteerDeps, vol volunteer.Volunteer, eventID, date, verb string) {
	if deps.Settings == nil || deps.Email == nil {
		return
	}
	cfg, err := deps.Settings.Load(ctx)
	if err != nil || !cfg.Notifications || cfg.Email == "" {
		return
	}

	eventTitle := eventID
	if deps.EventStore != nil {
		if ev, err := deps.EventStore.GetByID(ctx, eventID); err == nil {
			eventTitle = ev.Title
		}
	}

	subject := fmt.Sprintf("Volunteer %s %s %s", vol.Name, verb, eventTitle)
	html := fmt.Sprintf("<p>%s was %s <strong>%s</strong> on %s.</p>", vol.Name, verb, eventTitle, date)

	if _, err := deps.Email.Send(ctx, email.SendRequest{
		To:      []string{cfg.Email},
		From:    deps.EmailFrom,
		Subject: subject,
		HTML:    html,
		ReplyTo: deps.EmailReplyTo,
	}); err != nil {
		slog.Warn("assignment_event", "event", "notification_failed", "error", err)
	}
}
