// Package service owns the repair ticket lifecycle: intake, status changes,
// cost aggregation, and the parts consumed by a repair. The total cost is
// always derived from service cost plus parts cost and is never accepted
// from callers.
package service

import (
	"fmt"
	"time"
)

type Service struct {
	id               uint
	serviceNumber    string
	customerID       uint
	technicianID     *uint
	laptopBrand      string
	laptopModel      string
	laptopSerial     string
	initialComplaint string
	diagnosis        string
	repairNotes      string
	status           Status
	serviceCost      float64
	partsCost        float64
	totalCost        float64
	customerApproved bool
	receivedAt       time.Time
	completedAt      *time.Time
	createdAt        time.Time
	updatedAt        time.Time
	parts            []*Part
}

// NewService creates a ticket at intake. Status starts at received and the
// received timestamp is set to now.
func NewService(
	customerID uint,
	technicianID *uint,
	laptopBrand string,
	laptopModel string,
	laptopSerial string,
	initialComplaint string,
	serviceCost float64,
) (*Service, error) {
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if technicianID != nil && *technicianID == 0 {
		return nil, fmt.Errorf("technician ID cannot be zero")
	}
	if len(laptopBrand) == 0 {
		return nil, fmt.Errorf("laptop brand is required")
	}
	if len(laptopModel) == 0 {
		return nil, fmt.Errorf("laptop model is required")
	}
	if len(initialComplaint) == 0 {
		return nil, fmt.Errorf("initial complaint is required")
	}
	if serviceCost < 0 {
		return nil, fmt.Errorf("service cost cannot be negative")
	}

	now := time.Now().UTC()
	return &Service{
		customerID:       customerID,
		technicianID:     technicianID,
		laptopBrand:      laptopBrand,
		laptopModel:      laptopModel,
		laptopSerial:     laptopSerial,
		initialComplaint: initialComplaint,
		status:           StatusReceived,
		serviceCost:      serviceCost,
		partsCost:        0,
		totalCost:        serviceCost,
		receivedAt:       now,
		createdAt:        now,
		updatedAt:        now,
		parts:            []*Part{},
	}, nil
}

func ReconstructService(
	id uint,
	serviceNumber string,
	customerID uint,
	technicianID *uint,
	laptopBrand string,
	laptopModel string,
	laptopSerial string,
	initialComplaint string,
	diagnosis string,
	repairNotes string,
	status Status,
	serviceCost float64,
	partsCost float64,
	totalCost float64,
	customerApproved bool,
	receivedAt time.Time,
	completedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Service, error) {
	if id == 0 {
		return nil, fmt.Errorf("service ID cannot be zero")
	}
	if len(serviceNumber) == 0 {
		return nil, fmt.Errorf("service number is required")
	}
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Service{
		id:               id,
		serviceNumber:    serviceNumber,
		customerID:       customerID,
		technicianID:     technicianID,
		laptopBrand:      laptopBrand,
		laptopModel:      laptopModel,
		laptopSerial:     laptopSerial,
		initialComplaint: initialComplaint,
		diagnosis:        diagnosis,
		repairNotes:      repairNotes,
		status:           status,
		serviceCost:      serviceCost,
		partsCost:        partsCost,
		totalCost:        totalCost,
		customerApproved: customerApproved,
		receivedAt:       receivedAt,
		completedAt:      completedAt,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		parts:            []*Part{},
	}, nil
}

func (s *Service) ID() uint                 { return s.id }
func (s *Service) ServiceNumber() string    { return s.serviceNumber }
func (s *Service) CustomerID() uint         { return s.customerID }
func (s *Service) TechnicianID() *uint      { return s.technicianID }
func (s *Service) LaptopBrand() string      { return s.laptopBrand }
func (s *Service) LaptopModel() string      { return s.laptopModel }
func (s *Service) LaptopSerial() string     { return s.laptopSerial }
func (s *Service) InitialComplaint() string { return s.initialComplaint }
func (s *Service) Diagnosis() string        { return s.diagnosis }
func (s *Service) RepairNotes() string      { return s.repairNotes }
func (s *Service) Status() Status           { return s.status }
func (s *Service) ServiceCost() float64     { return s.serviceCost }
func (s *Service) PartsCost() float64       { return s.partsCost }
func (s *Service) TotalCost() float64       { return s.totalCost }
func (s *Service) CustomerApproved() bool   { return s.customerApproved }
func (s *Service) ReceivedAt() time.Time    { return s.receivedAt }
func (s *Service) CompletedAt() *time.Time  { return s.completedAt }
func (s *Service) CreatedAt() time.Time     { return s.createdAt }
func (s *Service) UpdatedAt() time.Time     { return s.updatedAt }
func (s *Service) Parts() []*Part           { return s.parts }

func (s *Service) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("service ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("service ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Service) SetServiceNumber(number string) error {
	if len(s.serviceNumber) != 0 {
		return fmt.Errorf("service number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("service number is required")
	}
	s.serviceNumber = number
	return nil
}

// SetParts replaces the loaded line items after reconstruction.
func (s *Service) SetParts(parts []*Part) {
	if parts == nil {
		parts = []*Part{}
	}
	s.parts = parts
}

// UpdateDevice replaces the device description fields.
func (s *Service) UpdateDevice(brand, model, serial string) error {
	if len(brand) == 0 {
		return fmt.Errorf("laptop brand is required")
	}
	if len(model) == 0 {
		return fmt.Errorf("laptop model is required")
	}

	s.laptopBrand = brand
	s.laptopModel = model
	s.laptopSerial = serial
	s.updatedAt = time.Now().UTC()
	return nil
}

// UpdateNotes replaces the diagnosis and repair notes.
func (s *Service) UpdateNotes(diagnosis, repairNotes string) {
	s.diagnosis = diagnosis
	s.repairNotes = repairNotes
	s.updatedAt = time.Now().UTC()
}

// UpdateCosts sets the labor and parts costs and re-derives the total.
// The total cost is never writable directly.
func (s *Service) UpdateCosts(serviceCost, partsCost float64) error {
	if serviceCost < 0 {
		return fmt.Errorf("service cost cannot be negative")
	}
	if partsCost < 0 {
		return fmt.Errorf("parts cost cannot be negative")
	}

	s.serviceCost = serviceCost
	s.partsCost = partsCost
	s.totalCost = serviceCost + partsCost
	s.updatedAt = time.Now().UTC()
	return nil
}

// ChangeStatus moves the ticket to any valid status. The completion
// timestamp is set the first time the ticket enters completed and is never
// cleared or overwritten afterwards.
func (s *Service) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}

	if status.IsCompleted() && s.completedAt == nil {
		now := time.Now().UTC()
		s.completedAt = &now
	}
	s.status = status
	s.updatedAt = time.Now().UTC()
	return nil
}

// AssignTechnician sets or clears the responsible technician.
func (s *Service) AssignTechnician(technicianID *uint) error {
	if technicianID != nil && *technicianID == 0 {
		return fmt.Errorf("technician ID cannot be zero")
	}
	s.technicianID = technicianID
	s.updatedAt = time.Now().UTC()
	return nil
}

// Approve records the customer's go-ahead for the proposed repair.
func (s *Service) Approve() {
	s.customerApproved = true
	s.updatedAt = time.Now().UTC()
}

// AddPart appends a consumed part and folds its line total into the parts
// cost, re-deriving the total cost.
func (s *Service) AddPart(part *Part) error {
	if part == nil {
		return fmt.Errorf("part is required")
	}

	s.parts = append(s.parts, part)
	s.partsCost += part.TotalPrice()
	s.totalCost = s.serviceCost + s.partsCost
	s.updatedAt = time.Now().UTC()
	return nil
}

// RemovePart drops a line item by part ID and subtracts its line total from
// the parts cost.
func (s *Service) RemovePart(partID uint) error {
	for i, p := range s.parts {
		if p.ID() == partID {
			s.parts = append(s.parts[:i], s.parts[i+1:]...)
			s.partsCost -= p.TotalPrice()
			if s.partsCost < 0 {
				s.partsCost = 0
			}
			s.totalCost = s.serviceCost + s.partsCost
			s.updatedAt = time.Now().UTC()
			return nil
		}
	}
	return fmt.Errorf("part %d not found on service", partID)
}

func (s *Service) IsCompleted() bool {
	return s.status.IsCompleted()
}
