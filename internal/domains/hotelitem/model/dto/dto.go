package dto

import (
	"strings"

	"hospitality/internal/domains/hotelitem/model"
	"hospitality/shared"
	gDto "hospitality/shared/dto"
	gModel "hospitality/shared/model"
	"hospitality/shared/timezone"
)

const featuresSeparator = ","

type CreateHotelItemRequest struct {
	Category    string   `json:"category"    validate:"required,max=100"`
	Subcategory string   `json:"subcategory" validate:"required,max=100"`
	Name        string   `json:"name"        validate:"required,max=150"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price"       validate:"omitempty,gte=0"`
	Location    string   `json:"location"    validate:"omitempty,max=150"`
	Rating      float64  `json:"rating"      validate:"omitempty,gte=0,lte=5"`
	Features    []string `json:"features"    validate:"omitempty,dive,max=100"`
	ImageURL    string   `json:"imageUrl"    validate:"required,url"`
}

func (c *CreateHotelItemRequest) ToModel() model.HotelItem {
	return model.HotelItem{
		Category:    c.Category,
		Subcategory: c.Subcategory,
		Name:        c.Name,
		Description: c.Description,
		Price:       c.Price,
		Location:    c.Location,
		Rating:      c.Rating,
		Features:    strings.Join(c.Features, featuresSeparator),
		ImageURL:    c.ImageURL,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}
}

type UpdateHotelItemRequest struct {
	Category    string   `db:"category"    json:"category"    validate:"omitempty,max=100"`
	Subcategory string   `db:"subcategory" json:"subcategory" validate:"omitempty,max=100"`
	Name        string   `db:"name"        json:"name"        validate:"omitempty,max=150"`
	Description string   `db:"description" json:"description" validate:"omitempty"`
	Price       float64  `db:"price"       json:"price"       validate:"omitempty,gte=0"`
	Location    string   `db:"location"    json:"location"    validate:"omitempty,max=150"`
	Rating      float64  `db:"rating"      json:"rating"      validate:"omitempty,gte=0,lte=5"`
	Features    []string `db:"-"           json:"features"    validate:"omitempty,dive,max=100"`
	ImageURL    string   `db:"image_url"   json:"imageUrl"    validate:"omitempty,url"`
}

func (u *UpdateHotelItemRequest) JoinedFeatures() string {
	return strings.Join(u.Features, featuresSeparator)
}

type CreateHotelItemResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type HotelItemResponse struct {
	ID          int64    `json:"id"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Location    string   `json:"location"`
	Rating      float64  `json:"rating"`
	Features    []string `json:"features"`
	ImageURL    string   `json:"imageUrl"`
	gDto.Metadata
}

func (r *HotelItemResponse) FromModel(model model.HotelItem) {
	r.ID = model.ID
	r.Category = model.Category
	r.Subcategory = model.Subcategory
	r.Name = model.Name
	r.Description = model.Description
	r.Price = model.Price
	r.Location = model.Location
	r.Rating = model.Rating
	r.ImageURL = model.ImageURL
	r.Metadata.FromModel(model.Metadata)

	r.Features = []string{}
	if model.Features != "" {
		r.Features = strings.Split(model.Features, featuresSeparator)
	}
}

type GetHotelItemsResponse struct {
	Items     []HotelItemResponse `json:"items"`
	TotalPage int                 `json:"totalPage"`
	TotalData int                 `json:"totalData"`
}

func (r *GetHotelItemsResponse) FromModels(models []model.HotelItem, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Items = make([]HotelItemResponse, len(models))
	for i, m := range models {
		r.Items[i].FromModel(m)
	}
}
