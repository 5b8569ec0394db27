package mappers

import (
	"github.com/bengkellab/bengkel/internal/domain/service"
	"github.com/bengkellab/bengkel/internal/infrastructure/persistence/models"
)

// ServiceMapper handles the conversion between Service domain entities and
// persistence models.
type ServiceMapper interface {
	ToModel(svc *service.Service) *models.ServiceModel
	// ToDomain converts the ticket fields only. Part line items are loaded
	// separately by the repository.
	ToDomain(model *models.ServiceModel) (*service.Service, error)
	PartToModel(part *service.Part) *models.ServicePartModel
	PartToDomain(model *models.ServicePartModel) (*service.Part, error)
}

type ServiceMapperImpl struct{}

func NewServiceMapper() ServiceMapper {
	return &ServiceMapperImpl{}
}

func (m *ServiceMapperImpl) ToModel(svc *service.Service) *models.ServiceModel {
	return &models.ServiceModel{
		ID:               svc.ID(),
		ServiceNumber:    svc.ServiceNumber(),
		CustomerID:       svc.CustomerID(),
		TechnicianID:     svc.TechnicianID(),
		LaptopBrand:      svc.LaptopBrand(),
		LaptopModel:      svc.LaptopModel(),
		LaptopSerial:     svc.LaptopSerial(),
		InitialComplaint: svc.InitialComplaint(),
		Diagnosis:        svc.Diagnosis(),
		RepairNotes:      svc.RepairNotes(),
		Status:           svc.Status().String(),
		ServiceCost:      svc.ServiceCost(),
		PartsCost:        svc.PartsCost(),
		TotalCost:        svc.TotalCost(),
		CustomerApproved: svc.CustomerApproved(),
		ReceivedAt:       svc.ReceivedAt().UnixMilli(),
		CompletedAt:      timePtrToMillis(svc.CompletedAt()),
		CreatedAt:        svc.CreatedAt().UnixMilli(),
		UpdatedAt:        svc.UpdatedAt().UnixMilli(),
	}
}

func (m *ServiceMapperImpl) ToDomain(model *models.ServiceModel) (*service.Service, error) {
	return service.ReconstructService(
		model.ID,
		model.ServiceNumber,
		model.CustomerID,
		model.TechnicianID,
		model.LaptopBrand,
		model.LaptopModel,
		model.LaptopSerial,
		model.InitialComplaint,
		model.Diagnosis,
		model.RepairNotes,
		service.Status(model.Status),
		model.ServiceCost,
		model.PartsCost,
		model.TotalCost,
		model.CustomerApproved,
		millisToTime(model.ReceivedAt),
		millisPtrToTime(model.CompletedAt),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *ServiceMapperImpl) PartToModel(part *service.Part) *models.ServicePartModel {
	return &models.ServicePartModel{
		ID:         part.ID(),
		ServiceID:  part.ServiceID(),
		ProductID:  part.ProductID(),
		Quantity:   part.Quantity(),
		UnitPrice:  part.UnitPrice(),
		TotalPrice: part.TotalPrice(),
		CreatedAt:  part.CreatedAt().UnixMilli(),
		UpdatedAt:  part.UpdatedAt().UnixMilli(),
	}
}

func (m *ServiceMapperImpl) PartToDomain(model *models.ServicePartModel) (*service.Part, error) {
	return service.ReconstructPart(
		model.ID,
		model.ServiceID,
		model.ProductID,
		model.Quantity,
		model.UnitPrice,
		model.TotalPrice,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
