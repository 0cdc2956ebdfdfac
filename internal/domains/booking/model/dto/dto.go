package dto

import (
	"hospitality/internal/domains/booking/model"
	"hospitality/shared"
	gDto "hospitality/shared/dto"
	gModel "hospitality/shared/model"
	"hospitality/shared/timezone"
)

type CreateBookingRequest struct {
	SpecialID    int64  `json:"specialId"    validate:"required"`
	CustomerName string `json:"customerName" validate:"required,max=100"`
	Phone        string `json:"phone"        validate:"required,max=20"`
	Address      string `json:"address"      validate:"required"`
}

func (c *CreateBookingRequest) ToModel() model.Booking {
	return model.Booking{
		SpecialID:    c.SpecialID,
		CustomerName: c.CustomerName,
		Phone:        c.Phone,
		Address:      c.Address,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}
}

type BookingResponse struct {
	ID           int64  `json:"id"`
	SpecialID    int64  `json:"specialId"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.SpecialID = model.SpecialID
	r.CustomerName = model.CustomerName
	r.Phone = model.Phone
	r.Address = model.Address
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"totalPage"`
	TotalData int               `json:"totalData"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, m := range models {
		r.Bookings[i].FromModel(m)
	}
}

type CreateBookingResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
