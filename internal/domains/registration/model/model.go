package model

import "hospitality/shared/model"

const (
	TableName  = "registrations"
	EntityName = "registration"

	FieldID                  = "id"
	FieldFullName            = "full_name"
	FieldEmail               = "email"
	FieldPhone               = "phone"
	FieldDOB                 = "dob"
	FieldServices            = "services"
	FieldStreet              = "street"
	FieldCity                = "city"
	FieldState               = "state"
	FieldZip                 = "zip"
	FieldCountry             = "country"
	FieldReferral            = "referral"
	FieldSpecialRequirements = "special_requirements"
	FieldAgreedToTerms       = "agreed_to_terms"
)

type Registration struct {
	ID                  int64  `db:"id"`
	FullName            string `db:"full_name"`
	Email               string `db:"email"`
	Phone               string `db:"phone"`
	DOB                 string `db:"dob"`
	Services            string `db:"services"`
	Street              string `db:"street"`
	City                string `db:"city"`
	State               string `db:"state"`
	Zip                 string `db:"zip"`
	Country             string `db:"country"`
	Referral            string `db:"referral"`
	SpecialRequirements string `db:"special_requirements"`
	AgreedToTerms       bool   `db:"agreed_to_terms"`
	model.Metadata
}
