package dto

import (
	"encoding/json"
	"hospitality/internal/domains/registration/model"
	"hospitality/shared"
	gDto "hospitality/shared/dto"
	gModel "hospitality/shared/model"
	"hospitality/shared/timezone"
)

type Address struct {
	Street  string `json:"street"  validate:"omitempty,max=255"`
	City    string `json:"city"    validate:"omitempty,max=100"`
	State   string `json:"state"   validate:"omitempty,max=100"`
	Zip     string `json:"zip"     validate:"omitempty,max=20"`
	Country string `json:"country" validate:"omitempty,max=50"`
}

type CreateRegistrationRequest struct {
	FullName            string   `json:"fullName" validate:"required,max=100"`
	Email               string   `json:"email"    validate:"required,email"`
	Phone               string   `json:"phone"    validate:"omitempty,max=20"`
	DOB                 string   `json:"dob"      validate:"omitempty,datetime=2006-01-02"`
	Services            []string `json:"services" validate:"omitempty,dive,max=100"`
	Address             Address  `json:"address"`
	Referral            string   `json:"referral" validate:"omitempty,max=50"`
	SpecialRequirements string   `json:"specialRequirements" validate:"omitempty"`
	AgreedToTerms       bool     `json:"agreedToTerms"`
}

func (c *CreateRegistrationRequest) ToModel() model.Registration {
	services, _ := json.Marshal(c.Services)

	return model.Registration{
		FullName:            c.FullName,
		Email:               c.Email,
		Phone:               c.Phone,
		DOB:                 c.DOB,
		Services:            string(services),
		Street:              c.Address.Street,
		City:                c.Address.City,
		State:               c.Address.State,
		Zip:                 c.Address.Zip,
		Country:             c.Address.Country,
		Referral:            c.Referral,
		SpecialRequirements: c.SpecialRequirements,
		AgreedToTerms:       c.AgreedToTerms,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}
}

type CreateRegistrationResponse struct {
	Message  string   `json:"message"`
	ID       int64    `json:"id"`
	Warnings []string `json:"warnings,omitempty"`
}

type RegistrationResponse struct {
	ID                  int64    `json:"id"`
	FullName            string   `json:"fullName"`
	Email               string   `json:"email"`
	Phone               string   `json:"phone"`
	DOB                 string   `json:"dob,omitempty"`
	Services            []string `json:"services"`
	Address             Address  `json:"address"`
	Referral            string   `json:"referral,omitempty"`
	SpecialRequirements string   `json:"specialRequirements,omitempty"`
	AgreedToTerms       bool     `json:"agreedToTerms"`
	gDto.Metadata
}

func (r *RegistrationResponse) FromModel(model model.Registration) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Email = model.Email
	r.Phone = model.Phone
	r.DOB = model.DOB
	r.Referral = model.Referral
	r.SpecialRequirements = model.SpecialRequirements
	r.AgreedToTerms = model.AgreedToTerms
	r.Address = Address{
		Street:  model.Street,
		City:    model.City,
		State:   model.State,
		Zip:     model.Zip,
		Country: model.Country,
	}
	r.Metadata.FromModel(model.Metadata)

	r.Services = []string{}
	if model.Services != "" {
		_ = json.Unmarshal([]byte(model.Services), &r.Services)
	}
}

type GetRegistrationsResponse struct {
	Registrations []RegistrationResponse `json:"registrations"`
	TotalPage     int                    `json:"totalPage"`
	TotalData     int                    `json:"totalData"`
}

func (r *GetRegistrationsResponse) FromModels(models []model.Registration, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Registrations = make([]RegistrationResponse, len(models))
	for i, m := range models {
		r.Registrations[i].FromModel(m)
	}
}
