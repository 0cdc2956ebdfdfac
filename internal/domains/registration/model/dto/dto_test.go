package dto_test

import (
	"testing"

	"hospitality/internal/domains/registration/model"
	"hospitality/internal/domains/registration/model/dto"
	gModel "hospitality/shared/model"
	"hospitality/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreateRegistrationRequest_ToModel(t *testing.T) {
	req := dto.CreateRegistrationRequest{
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Phone:    "9876543210",
		DOB:      "1992-04-15",
		Services: []string{"spa", "dining"},
		Address: dto.Address{
			Street:  "12 Lake View Road",
			City:    "Bengaluru",
			State:   "Karnataka",
			Zip:     "560001",
			Country: "India",
		},
		Referral:      "friend",
		AgreedToTerms: true,
	}

	registrationModel := req.ToModel()

	assert.Equal(t, req.FullName, registrationModel.FullName)
	assert.Equal(t, req.Email, registrationModel.Email)
	assert.Equal(t, req.DOB, registrationModel.DOB)
	assert.Equal(t, req.Address.Street, registrationModel.Street)
	assert.Equal(t, req.Address.City, registrationModel.City)
	assert.Equal(t, req.Address.Country, registrationModel.Country)
	assert.True(t, registrationModel.AgreedToTerms)
	assert.JSONEq(t, `["spa","dining"]`, registrationModel.Services)
	assert.False(t, registrationModel.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestRegistrationResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	registrationModel := model.Registration{
		ID:            1,
		FullName:      "Asha Rao",
		Email:         "asha@example.com",
		Phone:         "9876543210",
		DOB:           "1992-04-15",
		Services:      `["spa","dining"]`,
		Street:        "12 Lake View Road",
		City:          "Bengaluru",
		State:         "Karnataka",
		Zip:           "560001",
		Country:       "India",
		Referral:      "friend",
		AgreedToTerms: true,
		Metadata:      gModel.Metadata{CreatedAt: now},
	}

	var response dto.RegistrationResponse
	response.FromModel(registrationModel)

	assert.Equal(t, registrationModel.ID, response.ID)
	assert.Equal(t, registrationModel.FullName, response.FullName)
	assert.Equal(t, registrationModel.Street, response.Address.Street)
	assert.Equal(t, registrationModel.City, response.Address.City)
	assert.Equal(t, []string{"spa", "dining"}, response.Services)
	assert.True(t, response.AgreedToTerms)
}

func TestGetRegistrationsResponse_FromModels(t *testing.T) {
	now := timezone.Now()
	registrations := []model.Registration{
		{
			ID:       1,
			FullName: "Asha Rao",
			Email:    "asha@example.com",
			Services: `["spa"]`,
			Metadata: gModel.Metadata{CreatedAt: now},
		},
		{
			ID:       2,
			FullName: "Ravi Kumar",
			Email:    "ravi@example.com",
			Services: `[]`,
			Metadata: gModel.Metadata{CreatedAt: now},
		},
	}

	totalData := 2
	limit := 10

	var response dto.GetRegistrationsResponse
	response.FromModels(registrations, totalData, limit)

	assert.Equal(t, totalData, response.TotalData)
	assert.Equal(t, 1, response.TotalPage)
	assert.Len(t, response.Registrations, len(registrations))
	assert.Equal(t, "Asha Rao", response.Registrations[0].FullName)
}
