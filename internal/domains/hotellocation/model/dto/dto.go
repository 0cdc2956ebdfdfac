package dto

import (
	"encoding/json"

	"hospitality/internal/domains/hotellocation/model"
	"hospitality/shared"
	gDto "hospitality/shared/dto"
	gModel "hospitality/shared/model"
	"hospitality/shared/timezone"

	"github.com/rs/zerolog/log"
)

type CreateHotelLocationRequest struct {
	Country     string   `json:"country"     validate:"required,max=100"`
	State       string   `json:"state"       validate:"required,max=100"`
	RegionCount int      `json:"regionCount" validate:"omitempty,gte=0"`
	Regions     []string `json:"regions"     validate:"required,min=1,dive,max=100"`
}

func (c *CreateHotelLocationRequest) ToModel() model.HotelLocation {
	regions, err := json.Marshal(c.Regions)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal regions")
	}

	regionCount := c.RegionCount
	if regionCount == 0 {
		regionCount = len(c.Regions)
	}

	return model.HotelLocation{
		Country:     c.Country,
		State:       c.State,
		RegionCount: regionCount,
		Regions:     string(regions),
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}
}

type HotelLocationResponse struct {
	ID          int64    `json:"id"`
	Country     string   `json:"country"`
	State       string   `json:"state"`
	RegionCount int      `json:"regionCount"`
	Regions     []string `json:"regions"`
	gDto.Metadata
}

func (r *HotelLocationResponse) FromModel(model model.HotelLocation) {
	r.ID = model.ID
	r.Country = model.Country
	r.State = model.State
	r.RegionCount = model.RegionCount
	r.Metadata.FromModel(model.Metadata)

	r.Regions = []string{}
	if model.Regions != "" {
		if err := json.Unmarshal([]byte(model.Regions), &r.Regions); err != nil {
			log.Error().Err(err).Int64("id", model.ID).Msg("failed to unmarshal regions")
		}
	}
}

type GetHotelLocationsResponse struct {
	Locations []HotelLocationResponse `json:"locations"`
	TotalPage int                     `json:"totalPage"`
	TotalData int                     `json:"totalData"`
}

func (r *GetHotelLocationsResponse) FromModels(models []model.HotelLocation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Locations = make([]HotelLocationResponse, len(models))
	for i, m := range models {
		r.Locations[i].FromModel(m)
	}
}
