package dto

import (
	"encoding/json"
	"hospitality/internal/domains/order/model"
	"hospitality/shared"
	gDto "hospitality/shared/dto"
	gModel "hospitality/shared/model"
	"hospitality/shared/timezone"
)

type OrderItem struct {
	Name    string  `json:"name"    validate:"required,max=100"`
	Special string  `json:"special" validate:"omitempty,max=100"`
	Price   float64 `json:"price"   validate:"required,gt=0"`
}

type CreateOrderRequest struct {
	CustomerName  string      `json:"customerName"  validate:"required,max=100"`
	Phone         string      `json:"phone"         validate:"required,max=20"`
	Email         string      `json:"email"         validate:"required,email"`
	Address       string      `json:"address"       validate:"required"`
	Items         []OrderItem `json:"items"         validate:"required,min=1,dive"`
	PaymentMethod string      `json:"paymentMethod" validate:"required,oneof=upi cod"`
}

func (c *CreateOrderRequest) ToModel() model.Order {
	items, _ := json.Marshal(c.Items)

	return model.Order{
		CustomerName:  c.CustomerName,
		Phone:         c.Phone,
		Email:         c.Email,
		Address:       c.Address,
		Items:         string(items),
		Status:        model.StatusPending,
		PaymentMethod: c.PaymentMethod,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}
}

type CreateOrderResponse struct {
	Message    string   `json:"message"`
	ID         int64    `json:"id"`
	ReceiptURL string   `json:"receiptUrl,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
}

type UpdateOrderStatusRequest struct {
	Status          string `json:"status"          validate:"required,oneof=pending accepted rejected"`
	RejectionReason string `json:"rejectionReason" validate:"omitempty"`
}

type OrderResponse struct {
	ID              int64       `json:"id"`
	CustomerName    string      `json:"customerName"`
	Phone           string      `json:"phone"`
	Email           string      `json:"email"`
	Address         string      `json:"address"`
	Items           []OrderItem `json:"items"`
	Status          string      `json:"status"`
	RejectionReason string      `json:"rejectionReason,omitempty"`
	PaymentMethod   string      `json:"paymentMethod"`
	gDto.Metadata
}

func (r *OrderResponse) FromModel(model model.Order) {
	r.ID = model.ID
	r.CustomerName = model.CustomerName
	r.Phone = model.Phone
	r.Email = model.Email
	r.Address = model.Address
	r.Status = model.Status
	r.RejectionReason = model.RejectionReason
	r.PaymentMethod = model.PaymentMethod
	r.Metadata.FromModel(model.Metadata)

	// A row with unparsable items still lists, with an empty item set.
	r.Items = []OrderItem{}
	if model.Items != "" {
		_ = json.Unmarshal([]byte(model.Items), &r.Items)
	}
}

type GetOrdersResponse struct {
	Orders    []OrderResponse `json:"orders"`
	TotalPage int             `json:"totalPage"`
	TotalData int             `json:"totalData"`
}

func (r *GetOrdersResponse) FromModels(models []model.Order, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Orders = make([]OrderResponse, len(models))
	for i, m := range models {
		r.Orders[i].FromModel(m)
	}
}
