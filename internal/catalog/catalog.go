// Package catalog holds the event listing the registration flow prices and
// describes. The data lives in-process for now; a storage-backed catalog can
// replace Lookup without touching the intake services.
package catalog

// Event describes one bookable event. Amount is the price in major currency
// units; zero means free.
type Event struct {
	ID       int
	Title    string
	Date     string
	Time     string
	Location string
	Amount   int64
}

// WebinarAmount is the fixed webinar ticket price in KES.
const WebinarAmount int64 = 2500

// DefaultCurrency applies when a registration does not name one.
const DefaultCurrency = "KES"

var events = map[int]Event{
	1: {ID: 1, Title: "Salon Profitability Bootcamp", Date: "April 15, 2026", Time: "2:00 PM - 5:00 PM", Location: "Spa & Salon Africa - Main Studio", Amount: 5000},
	2: {ID: 2, Title: "Owner Networking Mixer", Date: "April 22, 2026", Time: "6:00 PM - 8:00 PM", Location: "Spa & Salon Africa - Lounge"},
	3: {ID: 3, Title: "Marketing Made Simple for Salons", Date: "May 5, 2026", Time: "3:00 PM - 5:30 PM", Location: "Spa & Salon Africa - Main Studio", Amount: 3000},
	4: {ID: 4, Title: "Systems & Staff Workshop", Date: "May 12, 2026", Time: "2:00 PM - 4:00 PM", Location: "Spa & Salon Africa - Conference Room", Amount: 4000},
	5: {ID: 5, Title: "Salon & Spa Expansion Clinic", Date: "May 20, 2026", Time: "10:00 AM - 6:00 PM", Location: "Spa & Salon Africa - Wellness Center", Amount: 10000},
	6: {ID: 6, Title: "Business Club Owners Gala", Date: "June 1, 2026", Time: "7:00 PM - 10:00 PM", Location: "Spa & Salon Africa - Premium Lounge", Amount: 15000},
}

// Lookup returns the event with the given id.
func Lookup(id int) (Event, bool) {
	ev, ok := events[id]
	return ev, ok
}
