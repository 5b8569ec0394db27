package service

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bengkellab/bengkel/internal/application/service/usecases"
)

type CreateServiceRequest struct {
	CustomerID       uint    `json:"customer_id" binding:"required"`
	TechnicianID     *uint   `json:"technician_id"`
	LaptopBrand      string  `json:"laptop_brand" binding:"required,max=100"`
	LaptopModel      string  `json:"laptop_model" binding:"required,max=100"`
	LaptopSerial     string  `json:"laptop_serial" binding:"max=100"`
	InitialComplaint string  `json:"initial_complaint" binding:"required,max=2000"`
	ServiceCost      float64 `json:"service_cost" binding:"min=0"`
}

func (r *CreateServiceRequest) ToCommand() usecases.CreateServiceCommand {
	return usecases.CreateServiceCommand{
		CustomerID:       r.CustomerID,
		TechnicianID:     r.TechnicianID,
		LaptopBrand:      r.LaptopBrand,
		LaptopModel:      r.LaptopModel,
		LaptopSerial:     r.LaptopSerial,
		InitialComplaint: r.InitialComplaint,
		ServiceCost:      r.ServiceCost,
	}
}

type UpdateServiceRequest struct {
	TechnicianID     *uint    `json:"technician_id"`
	LaptopBrand      string   `json:"laptop_brand" binding:"required,max=100"`
	LaptopModel      string   `json:"laptop_model" binding:"required,max=100"`
	LaptopSerial     string   `json:"laptop_serial" binding:"max=100"`
	Diagnosis        string   `json:"diagnosis" binding:"max=2000"`
	RepairNotes      string   `json:"repair_notes" binding:"max=2000"`
	Status           string   `json:"status" binding:"required,oneof=received diagnosis customer_approval repair testing completed"`
	ServiceCost      *float64 `json:"service_cost"`
	PartsCost        *float64 `json:"parts_cost"`
	CustomerApproved *bool    `json:"customer_approved"`
}

func (r *UpdateServiceRequest) ToCommand(serviceID uint) usecases.UpdateServiceCommand {
	return usecases.UpdateServiceCommand{
		ServiceID:        serviceID,
		TechnicianID:     r.TechnicianID,
		LaptopBrand:      r.LaptopBrand,
		LaptopModel:      r.LaptopModel,
		LaptopSerial:     r.LaptopSerial,
		Diagnosis:        r.Diagnosis,
		RepairNotes:      r.RepairNotes,
		Status:           r.Status,
		ServiceCost:      r.ServiceCost,
		PartsCost:        r.PartsCost,
		CustomerApproved: r.CustomerApproved,
	}
}

type AddPartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type ListServicesRequest struct {
	Status     string
	Search     string
	CustomerID uint
	Page       int
	PageSize   int
}

func (r *ListServicesRequest) ToQuery() usecases.ListServicesQuery {
	return usecases.ListServicesQuery{
		Status:     r.Status,
		Search:     r.Search,
		CustomerID: r.CustomerID,
		Page:       r.Page,
		PageSize:   r.PageSize,
	}
}

func parseListServicesRequest(c *gin.Context) *ListServicesRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "15"))
	customerID, _ := strconv.ParseUint(c.Query("customer_id"), 10, 32)

	return &ListServicesRequest{
		Status:     c.Query("status"),
		Search:     c.Query("search"),
		CustomerID: uint(customerID),
		Page:       page,
		PageSize:   pageSize,
	}
}
