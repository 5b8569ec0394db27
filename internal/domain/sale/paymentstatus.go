package sale

// PaymentStatus tracks whether an invoice has been settled.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentCancelled PaymentStatus = "cancelled"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentCancelled:
		return true
	default:
		return false
	}
}

func (s PaymentStatus) IsPending() bool   { return s == PaymentPending }
func (s PaymentStatus) IsPaid() bool      { return s == PaymentPaid }
func (s PaymentStatus) IsCancelled() bool { return s == PaymentCancelled }
