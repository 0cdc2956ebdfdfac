package dto

import (
	"hospitality/internal/domains/subscriber/model"
	"hospitality/shared"
	"hospitality/shared/constant"
	"hospitality/shared/timezone"
)

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (c *SubscribeRequest) ToModel() model.Subscriber {
	return model.Subscriber{
		Email:        c.Email,
		SubscribedAt: timezone.Now(),
	}
}

type SubscribeResponse struct {
	Message  string   `json:"message"`
	Warnings []string `json:"warnings,omitempty"`
}

type SubscriberResponse struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	SubscribedAt string `json:"subscribedAt"`
}

func (r *SubscriberResponse) FromModel(model model.Subscriber) {
	r.ID = model.ID
	r.Email = model.Email
	r.SubscribedAt = timezone.Format(model.SubscribedAt, constant.DateFormat)
}

type GetSubscribersResponse struct {
	Subscribers []SubscriberResponse `json:"subscribers"`
	TotalPage   int                  `json:"totalPage"`
	TotalData   int                  `json:"totalData"`
}

func (r *GetSubscribersResponse) FromModels(models []model.Subscriber, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Subscribers = make([]SubscriberResponse, len(models))
	for i, m := range models {
		r.Subscribers[i].FromModel(m)
	}
}
