package models

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// ProfessionalResponse ответ с данными профессионала
type ProfessionalResponse struct {
	ID         int64  `json:"id"`
	FullName   string `json:"fullName"`
	Speciality string `json:"speciality"`
}

// ProfessionalListResponse ответ со списком профессионалов
type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainProfessional конвертирует domain модель в DTO
func FromDomainProfessional(p *domain.Professional) *ProfessionalResponse {
	if p == nil {
		return nil
	}
	return &ProfessionalResponse{
		ID:         p.ID,
		FullName:   p.FullName,
		Speciality: p.Speciality,
	}
}

// FromDomainProfessionalList конвертирует список domain моделей в DTO
func FromDomainProfessionalList(ps []*domain.Professional) *ProfessionalListResponse {
	resp := &ProfessionalListResponse{
		Professionals: make([]ProfessionalResponse, 0, len(ps)),
	}
	for _, p := range ps {
		resp.Professionals = append(resp.Professionals, *FromDomainProfessional(p))
	}
	return resp
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(ss []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(ss)),
	}
	for _, s := range ss {
		resp.Services = append(resp.Services, *FromDomainService(s))
	}
	return resp
}
