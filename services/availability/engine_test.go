package availability

import (
	"reflect"
	"testing"

	"medibook/models"
)

func slots(times ...string) []models.Slot {
	out := make([]models.Slot, 0, len(times))
	for _, t := range times {
		out = append(out, models.Slot{Time: t})
	}
	return out
}

func TestComputeFiltersBookedSlots(t *testing.T) {
	services := []models.Service{
		{ID: "svc-1", Name: "Cleaning", Slots: slots("9 AM", "10 AM")},
	}
	bookings := []models.Booking{
		{TreatmentName: "Cleaning", Date: "Jul 6, 2022", Slot: "9 AM"},
	}

	got := Compute("Jul 6, 2022", services, bookings)
	if len(got) != 1 {
		t.Fatalf("expected 1 service, got %d", len(got))
	}
	if want := slots("10 AM"); !reflect.DeepEqual(got[0].Available, want) {
		t.Errorf("available = %v, want %v", got[0].Available, want)
	}
}

func TestCompute(t *testing.T) {
	services := []models.Service{
		{ID: "svc-1", Name: "Cleaning", Slots: slots("8 AM", "9 AM", "10 AM")},
		{ID: "svc-2", Name: "Whitening", Slots: slots("9 AM", "11 AM")},
		{ID: "svc-3", Name: "cleaning", Slots: slots("9 AM")}, // differently cased, unrelated
		{ID: "svc-4", Name: "Fluoride", Slots: nil},
	}

	cases := []struct {
		name     string
		date     string
		bookings []models.Booking
		want     map[string][]models.Slot
	}{
		{
			name:     "no bookings returns full templates",
			date:     "Jul 6, 2022",
			bookings: nil,
			want: map[string][]models.Slot{
				"Cleaning":  slots("8 AM", "9 AM", "10 AM"),
				"Whitening": slots("9 AM", "11 AM"),
				"cleaning":  slots("9 AM"),
				"Fluoride":  {},
			},
		},
		{
			name: "bookings only filter their own service name",
			date: "Jul 6, 2022",
			bookings: []models.Booking{
				{TreatmentName: "Cleaning", Date: "Jul 6, 2022", Slot: "9 AM"},
				{TreatmentName: "Cleaning", Date: "Jul 6, 2022", Slot: "8 AM"},
				{TreatmentName: "Whitening", Date: "Jul 6, 2022", Slot: "11 AM"},
			},
			want: map[string][]models.Slot{
				"Cleaning":  slots("10 AM"),
				"Whitening": slots("9 AM"),
				"cleaning":  slots("9 AM"),
				"Fluoride":  {},
			},
		},
		{
			name: "case-sensitive name matching treats cased twins as unrelated",
			date: "Jul 6, 2022",
			bookings: []models.Booking{
				{TreatmentName: "cleaning", Date: "Jul 6, 2022", Slot: "9 AM"},
			},
			want: map[string][]models.Slot{
				"Cleaning":  slots("8 AM", "9 AM", "10 AM"),
				"Whitening": slots("9 AM", "11 AM"),
				"cleaning":  {},
				"Fluoride":  {},
			},
		},
		{
			name: "bookings on other dates never filter",
			date: "Jul 6, 2022",
			bookings: []models.Booking{
				{TreatmentName: "Cleaning", Date: "Jul 7, 2022", Slot: "9 AM"},
			},
			want: map[string][]models.Slot{
				"Cleaning":  slots("8 AM", "9 AM", "10 AM"),
				"Whitening": slots("9 AM", "11 AM"),
				"cleaning":  slots("9 AM"),
				"Fluoride":  {},
			},
		},
		{
			name: "unknown treatment names are ignored",
			date: "Jul 6, 2022",
			bookings: []models.Booking{
				{TreatmentName: "Botox", Date: "Jul 6, 2022", Slot: "9 AM"},
			},
			want: map[string][]models.Slot{
				"Cleaning":  slots("8 AM", "9 AM", "10 AM"),
				"Whitening": slots("9 AM", "11 AM"),
				"cleaning":  slots("9 AM"),
				"Fluoride":  {},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Compute(tc.date, services, tc.bookings)
			if len(got) != len(services) {
				t.Fatalf("expected %d services, got %d", len(services), len(got))
			}
			for _, sa := range got {
				want, ok := tc.want[sa.Name]
				if !ok {
					t.Fatalf("unexpected service %q in result", sa.Name)
				}
				if !reflect.DeepEqual(sa.Available, want) {
					t.Errorf("%s: available = %v, want %v", sa.Name, sa.Available, want)
				}
			}
		})
	}
}

func TestComputePreservesTemplateOrder(t *testing.T) {
	services := []models.Service{
		{Name: "Cleaning", Slots: slots("10 AM", "8 AM", "9 AM")},
	}
	bookings := []models.Booking{
		{TreatmentName: "Cleaning", Date: "Jul 6, 2022", Slot: "8 AM"},
	}

	got := Compute("Jul 6, 2022", services, bookings)
	if want := slots("10 AM", "9 AM"); !reflect.DeepEqual(got[0].Available, want) {
		t.Errorf("available = %v, want %v (template order)", got[0].Available, want)
	}
}

func TestComputeIsPure(t *testing.T) {
	services := []models.Service{
		{Name: "Cleaning", Slots: slots("9 AM", "10 AM")},
	}
	bookings := []models.Booking{
		{TreatmentName: "Cleaning", Date: "Jul 6, 2022", Slot: "9 AM"},
	}

	first := Compute("Jul 6, 2022", services, bookings)
	second := Compute("Jul 6, 2022", services, bookings)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated computation differed: %v vs %v", first, second)
	}

	// Inputs must come back untouched.
	if len(services[0].Slots) != 2 {
		t.Errorf("service template mutated: %v", services[0].Slots)
	}
	if len(bookings) != 1 || bookings[0].Slot != "9 AM" {
		t.Errorf("bookings mutated: %v", bookings)
	}
}
