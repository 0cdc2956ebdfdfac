package dto

import (
	"hospitality/internal/domains/request/model"
	"hospitality/shared"
	gDto "hospitality/shared/dto"
	gModel "hospitality/shared/model"
	"hospitality/shared/timezone"
)

type CreateRequestRequest struct {
	Name      string `json:"name"      validate:"required,max=100"`
	Email     string `json:"email"     validate:"required,email"`
	Phone     string `json:"phone"     validate:"omitempty,max=20"`
	VenueType string `json:"venueType" validate:"omitempty,max=100"`
	Message   string `json:"message"   validate:"required,min=10"`
}

func (c *CreateRequestRequest) ToModel() model.InformationRequest {
	return model.InformationRequest{
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		VenueType: c.VenueType,
		Message:   c.Message,
		Status:    model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}
}

type CreateRequestResponse struct {
	Message  string   `json:"message"`
	ID       int64    `json:"id"`
	Warnings []string `json:"warnings,omitempty"`
}

type UpdateRequestStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type RequestResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	VenueType string `json:"venueType"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	gDto.Metadata
}

func (r *RequestResponse) FromModel(model model.InformationRequest) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.VenueType = model.VenueType
	r.Message = model.Message
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetRequestsResponse struct {
	Requests  []RequestResponse `json:"requests"`
	TotalPage int               `json:"totalPage"`
	TotalData int               `json:"totalData"`
}

func (r *GetRequestsResponse) FromModels(models []model.InformationRequest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Requests = make([]RequestResponse, len(models))
	for i, m := range models {
		r.Requests[i].FromModel(m)
	}
}
