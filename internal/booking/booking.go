package booking

import "time"

// Booking is one reserved stay. Monetary fields are serialized as strings
// (numeric columns scanned via ::text); remaining_balance is always derived
// from total_amount - down_payment at read time, never trusted from storage.
type Booking struct {
	ID               string    `json:"id"`
	DisplayID        string    `json:"booking_id"`
	HavenID          string    `json:"haven_id"`
	HavenName        string    `json:"room_name,omitempty"`
	GuestFirstName   string    `json:"guest_first_name"`
	GuestLastName    string    `json:"guest_last_name"`
	GuestEmail       string    `json:"guest_email"`
	GuestPhone       string    `json:"guest_phone"`
	CheckInDate      time.Time `json:"check_in_date"`
	CheckInTime      string    `json:"check_in_time"`
	CheckOutDate     time.Time `json:"check_out_date"`
	CheckOutTime     string    `json:"check_out_time"`
	Adults           int       `json:"adults"`
	Children         int       `json:"children"`
	Infants          int       `json:"infants"`
	TotalAmount      string    `json:"total_amount"`
	DownPayment      string    `json:"down_payment"`
	RemainingBalance string    `json:"remaining_balance"`
	Status           Status    `json:"status"`
	RejectionReason  string    `json:"rejection_reason,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
