package model

import "hospitality/shared/model"

const (
	TableName  = "hotel_locations"
	EntityName = "hotel location"

	FieldID          = "id"
	FieldCountry     = "country"
	FieldState       = "state"
	FieldRegionCount = "region_count"
	FieldRegions     = "regions"
)

type HotelLocation struct {
	ID          int64  `db:"id"`
	Country     string `db:"country"`
	State       string `db:"state"`
	RegionCount int    `db:"region_count"`
	Regions     string `db:"regions"`
	model.Metadata
}
