package domain

// PaymentStatus represents the status of a booking payment
type PaymentStatus int

const (
	PaymentPending PaymentStatus = iota + 1
	PaymentCompleted
	PaymentFailed
	PaymentRefunded
)

// Label returns the display text for a payment status
func (s PaymentStatus) Label() string {
	switch s {
	case PaymentPending:
		return "Pending"
	case PaymentCompleted:
		return "Completed"
	case PaymentFailed:
		return "Failed"
	case PaymentRefunded:
		return "Refunded"
	default:
		return "Unknown"
	}
}
