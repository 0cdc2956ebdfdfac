package dto

import (
	"hospitality/shared/constant"
	"hospitality/shared/model"
	"hospitality/shared/timezone"
)

type Metadata struct {
	CreatedAt string `json:"createdAt"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}
