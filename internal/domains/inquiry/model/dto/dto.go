package dto

import (
	"hospitality/internal/domains/inquiry/model"
	"hospitality/shared"
	gDto "hospitality/shared/dto"
	gModel "hospitality/shared/model"
	"hospitality/shared/timezone"
)

type CreateInquiryRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Phone    string `json:"phone"    validate:"omitempty,max=20"`
	Interest string `json:"interest" validate:"required,max=100"`
	Location string `json:"location" validate:"omitempty,max=100"`
	Message  string `json:"message"  validate:"required"`
}

func (c *CreateInquiryRequest) ToModel() model.Inquiry {
	return model.Inquiry{
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Interest: c.Interest,
		Location: c.Location,
		Message:  c.Message,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}
}

type CreateInquiryResponse struct {
	Message  string   `json:"message"`
	Warnings []string `json:"warnings,omitempty"`
}

type InquiryResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Interest string `json:"interest"`
	Location string `json:"location"`
	Message  string `json:"message"`
	gDto.Metadata
}

func (r *InquiryResponse) FromModel(model model.Inquiry) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Interest = model.Interest
	r.Location = model.Location
	r.Message = model.Message
	r.Metadata.FromModel(model.Metadata)
}

type GetInquiriesResponse struct {
	Inquiries []InquiryResponse `json:"inquiries"`
	TotalPage int               `json:"totalPage"`
	TotalData int               `json:"totalData"`
}

func (r *GetInquiriesResponse) FromModels(models []model.Inquiry, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Inquiries = make([]InquiryResponse, len(models))
	for i, m := range models {
		r.Inquiries[i].FromModel(m)
	}
}
