package dto

import (
	"hospitality/internal/domains/preschool/model"
	"hospitality/shared"
	gDto "hospitality/shared/dto"
	gModel "hospitality/shared/model"
	"hospitality/shared/timezone"
)

type CreateLeadRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Phone    string `json:"phone"    validate:"omitempty,max=20"`
	Interest string `json:"interest" validate:"omitempty,max=100"`
	Message  string `json:"message"  validate:"required"`
}

func (c *CreateLeadRequest) ToModel() model.Lead {
	return model.Lead{
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Interest: c.Interest,
		Message:  c.Message,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}
}

type LeadResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Interest string `json:"interest"`
	Message  string `json:"message"`
	gDto.Metadata
}

func (r *LeadResponse) FromModel(model model.Lead) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Interest = model.Interest
	r.Message = model.Message
	r.Metadata.FromModel(model.Metadata)
}

type GetLeadsResponse struct {
	Leads     []LeadResponse `json:"leads"`
	TotalPage int            `json:"totalPage"`
	TotalData int            `json:"totalData"`
}

func (r *GetLeadsResponse) FromModels(models []model.Lead, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Leads = make([]LeadResponse, len(models))
	for i, m := range models {
		r.Leads[i].FromModel(m)
	}
}
