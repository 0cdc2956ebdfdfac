package dto

import (
	"hospitality/internal/domains/contact/model"
	"hospitality/shared"
	gDto "hospitality/shared/dto"
	gModel "hospitality/shared/model"
	"hospitality/shared/timezone"
)

type CreateContactRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"omitempty,max=20"`
	Service string `json:"service" validate:"omitempty,max=100"`
	Message string `json:"message" validate:"required"`
}

func (c *CreateContactRequest) ToModel() model.ContactMessage {
	return model.ContactMessage{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Service: c.Service,
		Message: c.Message,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}
}

type CreateContactResponse struct {
	Message  string   `json:"message"`
	Warnings []string `json:"warnings,omitempty"`
}

type ContactResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
	gDto.Metadata
}

func (r *ContactResponse) FromModel(model model.ContactMessage) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Service = model.Service
	r.Message = model.Message
	r.Metadata.FromModel(model.Metadata)
}

type GetContactsResponse struct {
	Messages  []ContactResponse `json:"messages"`
	TotalPage int               `json:"totalPage"`
	TotalData int               `json:"totalData"`
}

func (r *GetContactsResponse) FromModels(models []model.ContactMessage, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Messages = make([]ContactResponse, len(models))
	for i, m := range models {
		r.Messages[i].FromModel(m)
	}
}
