package notifier

// reminderPayload is the wire format the mail relay expects.
type reminderPayload struct {
	Recipient     string `json:"recipient"`
	Template      string `json:"template"`
	BookingID     string `json:"booking_id"`
	CustomerName  string `json:"customer_name"`
	ServiceID     string `json:"service_id"`
	Category      string `json:"category"`
	CustomerPhone string `json:"customer_phone,omitempty"`
}
