package service

import "context"

// Repository defines the persistence contract for service tickets.
type Repository interface {
	Save(ctx context.Context, svc *Service) error
	Update(ctx context.Context, svc *Service) error
	// Delete removes the ticket and its part line items.
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Service, error)
	FindByServiceNumber(ctx context.Context, number string) (*Service, error)
	List(ctx context.Context, filter Filter) ([]*Service, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	// NextSequence returns the sequence number for the next service number:
	// the ID of the most recently created ticket plus one, or 1 when the
	// table is empty. Must run inside the caller's transaction.
	NextSequence(ctx context.Context) (uint, error)

	SavePart(ctx context.Context, part *Part) error
	DeletePart(ctx context.Context, partID uint) error
	FindPartsByServiceID(ctx context.Context, serviceID uint) ([]*Part, error)

	CountByStatus(ctx context.Context, status Status) (int64, error)
	// FindRecent returns the newest tickets for the dashboard, optionally
	// scoped to one technician.
	FindRecent(ctx context.Context, limit int, technicianID *uint) ([]*Service, error)
}

// Filter holds the query criteria for listing service tickets. Search
// matches service number, laptop brand, laptop model, and the owning
// customer's name or phone. TechnicianID scopes results for technician
// visibility.
type Filter struct {
	Status       Status
	Search       string
	CustomerID   uint
	TechnicianID *uint
	Page         int
	PageSize     int
}
