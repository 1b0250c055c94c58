package orchestrators

import (
	"context"
	"log/slog"

	assignmentstore "mandir/internal/adapters/storage/assignment"
	donationstore "mandir/internal/adapters/storage/donation"
	eventstore "mandir/internal/adapters/storage/event"
	reportstore "mandir/internal/adapters/storage/report"
	sevastore "mandir/internal/adapters/storage/seva"
	volunteerstore "mandir/internal/adapters/storage/volunteer"
	"mandir/internal/domain/assignment"
	"mandir/internal/domain/donation"
	"mandir/internal/domain/event"
	"mandir/internal/domain/report"
	"mandir/internal/domain/seva"
	"mandir/internal/domain/volunteer"
)

// SeedSampleDeps holds the stores the sample seeder fills.
type SeedSampleDeps struct {
	SevaStore       sevastore.Store
	EventStore      eventstore.Store
	VolunteerStore  volunteerstore.Store
	AssignmentStore assignmentstore.Store
	DonationStore   donationstore.Store
	ReportStore     reportstore.Store
}

// ExecuteSeedSample loads the demo dataset into the in-memory stores.
// Runs at every startup because these stores do not survive restarts.
// PRE: Stores are empty
// POST: Stores hold the demo sevas, events, volunteers, assignments,
// donations and report records
func ExecuteSeedSample(ctx context.Context, deps SeedSampleDeps) error {
	for _, s := range sampleSevas() {
		if err := deps.SevaStore.Save(ctx, s); err != nil {
			return err
		}
	}
	for _, e := range sampleEvents() {
		if err := deps.EventStore.Save(ctx, e); err != nil {
			return err
		}
	}
	for _, v := range sampleVolunteers() {
		if err := deps.VolunteerStore.Save(ctx, v); err != nil {
			return err
		}
	}
	for _, a := range sampleAssignments() {
		if err := deps.AssignmentStore.Insert(ctx, a); err != nil {
			return err
		}
	}
	for _, d := range sampleDonations() {
		if err := deps.DonationStore.Save(ctx, d); err != nil {
			return err
		}
	}
	for _, r := range sampleReports() {
		if err := deps.ReportStore.Save(ctx, r); err != nil {
			return err
		}
	}

	slog.Info("seed_event", "event", "sample_data_loaded")
	return nil
}

func sampleSevas() []seva.Seva {
	return []seva.Seva{
		{
			ID:       "pushpa",
			Name:     "Pushpabhishekam",
			Short:    "Flower abhishekam for the main deity",
			Schedule: "Evenings",
			Bookings: []seva.Booking{
				{ID: "1", Name: "Manoj Kumar", Phone: "9876512345", BookingDate: "2025-11-05", BookingTime: "19:00"},
				{ID: "2", Name: "Soma Devi", Phone: "9876554321", BookingDate: "2025-11-09", BookingTime: "19:00"},
				{ID: "3", Name: "Keerthi", Phone: "9876598765", BookingDate: "2025-10-09", BookingTime: "19:00"},
			},
		},
		{ID: "ashta", Name: "Ashtabhishekam", Short: "Eight-fold abhishekam", Schedule: "Mornings"},
		{
			ID:       "archana",
			Name:     "Archana",
			Short:    "Name and star archana",
			Schedule: "Daily",
			Bookings: []seva.Booking{
				{ID: "4", Name: "Ramesh", Phone: "9876543299", BookingDate: "2025-11-02", BookingTime: "08:30"},
			},
		},
		{ID: "neyya", Name: "Neyyabhishekam", Short: "Ghee abhishekam", Schedule: "Fridays"},
		{ID: "annadanam", Name: "Annadanam Seva", Short: "Sponsor a community meal", Schedule: "Weekends"},
		{ID: "goshala", Name: "Goshala Seva", Short: "Care for the temple cows", Schedule: "Daily"},
	}
}

func sampleEvents() []event.Event {
	return []event.Event{
		{
			ID: "annadanam", Title: "Annadanam", Date: "2025-12-21", Time: "12:00",
			Location: "Community Hall", Volunteers: 15,
			Description: "Free community meal for **all devotees**. Sponsors receive a special archana.",
			Bookings: []event.Booking{
				{ID: "1", Name: "S. Raman", Address: "12 Temple St", BookingDate: "2025-12-21", BookingTime: "12:00", Advance: 500},
				{ID: "2", Name: "R. Leena", Address: "4 East Car St", BookingDate: "2025-12-21", BookingTime: "12:00", Advance: 0},
			},
		},
		{
			ID: "mala_alankarana", Title: "Mala Alankarana", Date: "2025-11-10", Time: "18:30",
			Location: "Main Shrine", Volunteers: 8,
			Description: "Evening garland decoration of the deity.",
		},
		{
			ID: "goshala_seva", Title: "Goshala Seva Day", Date: "2025-11-25", Time: "07:00",
			Location: "Goshala", Volunteers: 6,
			Description: "Morning cleaning and feeding at the goshala.",
		},
		{
			ID: "general_fund", Title: "General Fund", Date: event.Undated,
			Description: "Standing fund for temple upkeep.",
		},
	}
}

func sampleVolunteers() []volunteer.Volunteer {
	return []volunteer.Volunteer{
		{ID: "v1", Name: "K. Ramesh", Phone: "9876543210"},
		{ID: "v2", Name: "S. Lakshmi", Phone: "9876500011"},
		{ID: "v3", Name: "P. Suresh", Phone: "9876533322", OnLeave: true},
		{ID: "v4", Name: "M. Radha", Phone: "9876544400"},
	}
}

func sampleAssignments() []assignment.Assignment {
	return []assignment.Assignment{
		{VolunteerID: "v1", EventID: "1", Date: "2025-11-02"},
		{VolunteerID: "v4", EventID: "99", Date: "2025-11-02"},
	}
}

func sampleDonations() []donation.Donation {
	seats := func(b bool) *bool { return &b }
	return []donation.Donation{
		{ID: "d1", Donor: "Ravi Sharma", PaymentType: donation.TypeOnline, Event: "Diwali Pooja", Date: "2025-11-01", Method: "GPay", Amount: 500},
		{ID: "d2", Donor: "Anjali Patel", PaymentType: donation.TypeOffline, Event: "Quick Donate", Date: "2025-10-30", Method: "Hand Cash", Amount: 200, SeatsAvailable: seats(true)},
		{ID: "d3", Donor: "Kiran Rao", PaymentType: donation.TypeOnline, Event: "Navratri Celebration", Date: "2025-09-25", Method: "UPI ID", Amount: 1000},
		{ID: "d4", Donor: "Ramesh Iyer", PaymentType: donation.TypeOffline, Event: "Quick Donate", Date: "2025-10-10", Method: "PhonePe (Quick Donate)", Amount: 300, SeatsAvailable: seats(false)},
		{ID: "d5", Donor: "Sita Verma", PaymentType: donation.TypeOnline, Event: "Temple Maintenance", Date: "2025-10-05", Method: "PhonePe", Amount: 750},
	}
}

func sampleReports() []report.Record {
	return []report.Record{
		{ID: "r1", Category: report.CategoryDonations, Event: "Diwali Pooja", Amount: 12000, Volunteers: 3, Date: "2025-11-01", Channel: "Online", Donor: "Ravi Sharma"},
		{ID: "r2", Category: report.CategoryEvents, Event: "Navratri Celebration", Amount: 8000, Volunteers: 5, Date: "2025-10-15", Channel: "Online", Donor: ""},
		{ID: "r3", Category: report.CategoryMaintenance, Event: "Temple Cleanliness Drive", Amount: 2500, Volunteers: 2, Date: "2025-09-30", Channel: "Offline", Donor: "Local Trust"},
		{ID: "r4", Category: report.CategoryDonations, Event: "Quick Donate", Amount: 5000, Volunteers: 1, Date: "2025-10-10", Channel: "Offline", Donor: "Sita Verma"},
		{ID: "r5", Category: report.CategoryEvents, Event: "Mandala Pooja", Amount: 10000, Volunteers: 4, Date: "2025-11-03", Channel: "Online", Donor: "Kiran Rao"},
		{ID: "r6", Category: report.CategoryMaintenance, Event: "Temple Maintenance", Amount: 750, Volunteers: 0, Date: "2025-10-05", Channel: "Online", Donor: "Sita Verma"},
	}
}
