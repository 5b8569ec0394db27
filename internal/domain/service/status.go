package service

// Status is the workshop stage of a service ticket. Transitions are not
// restricted: the sequence below is a UI convention and any status may be
// set from any other. completed is special only in that first entry sets
// the ticket's completion timestamp.
type Status string

const (
	StatusReceived         Status = "received"
	StatusDiagnosis        Status = "diagnosis"
	StatusCustomerApproval Status = "customer_approval"
	StatusRepair           Status = "repair"
	StatusTesting          Status = "testing"
	StatusCompleted        Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusReceived, StatusDiagnosis, StatusCustomerApproval,
		StatusRepair, StatusTesting, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}

// AllStatuses returns every valid status in workflow order.
func AllStatuses() []Status {
	return []Status{
		StatusReceived,
		StatusDiagnosis,
		StatusCustomerApproval,
		StatusRepair,
		StatusTesting,
		StatusCompleted,
	}
}
