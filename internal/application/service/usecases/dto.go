package usecases

import (
	"time"

	"github.com/bengkellab/bengkel/internal/domain/service"
)

// ServiceDTO is the transport representation of a service ticket.
type ServiceDTO struct {
	ID               uint       `json:"id"`
	ServiceNumber    string     `json:"service_number"`
	CustomerID       uint       `json:"customer_id"`
	TechnicianID     *uint      `json:"technician_id,omitempty"`
	LaptopBrand      string     `json:"laptop_brand"`
	LaptopModel      string     `json:"laptop_model"`
	LaptopSerial     string     `json:"laptop_serial,omitempty"`
	InitialComplaint string     `json:"initial_complaint"`
	Diagnosis        string     `json:"diagnosis,omitempty"`
	RepairNotes      string     `json:"repair_notes,omitempty"`
	Status           string     `json:"status"`
	ServiceCost      float64    `json:"service_cost"`
	PartsCost        float64    `json:"parts_cost"`
	TotalCost        float64    `json:"total_cost"`
	CustomerApproved bool       `json:"customer_approved"`
	ReceivedAt       time.Time  `json:"received_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	Parts            []*PartDTO `json:"parts,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// PartDTO is one consumed part line on a service ticket.
type PartDTO struct {
	ID         uint    `json:"id"`
	ProductID  uint    `json:"product_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

func toServiceDTO(s *service.Service) *ServiceDTO {
	dto := &ServiceDTO{
		ID:               s.ID(),
		ServiceNumber:    s.ServiceNumber(),
		CustomerID:       s.CustomerID(),
		TechnicianID:     s.TechnicianID(),
		LaptopBrand:      s.LaptopBrand(),
		LaptopModel:      s.LaptopModel(),
		LaptopSerial:     s.LaptopSerial(),
		InitialComplaint: s.InitialComplaint(),
		Diagnosis:        s.Diagnosis(),
		RepairNotes:      s.RepairNotes(),
		Status:           s.Status().String(),
		ServiceCost:      s.ServiceCost(),
		PartsCost:        s.PartsCost(),
		TotalCost:        s.TotalCost(),
		CustomerApproved: s.CustomerApproved(),
		ReceivedAt:       s.ReceivedAt(),
		CompletedAt:      s.CompletedAt(),
		CreatedAt:        s.CreatedAt(),
		UpdatedAt:        s.UpdatedAt(),
	}
	for _, p := range s.Parts() {
		dto.Parts = append(dto.Parts, toPartDTO(p))
	}
	return dto
}

func toPartDTO(p *service.Part) *PartDTO {
	return &PartDTO{
		ID:         p.ID(),
		ProductID:  p.ProductID(),
		Quantity:   p.Quantity(),
		UnitPrice:  p.UnitPrice(),
		TotalPrice: p.TotalPrice(),
	}
}

func toServiceDTOs(services []*service.Service) []*ServiceDTO {
	dtos := make([]*ServiceDTO, 0, len(services))
	for _, s := range services {
		dtos = append(dtos, toServiceDTO(s))
	}
	return dtos
}
