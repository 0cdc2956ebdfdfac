package dto

import (
	"mime/multipart"

	"hospitality/internal/domains/featured/model"
	"hospitality/shared"
	gDto "hospitality/shared/dto"
	gModel "hospitality/shared/model"
	"hospitality/shared/timezone"
)

type CreateFeaturedLocationRequest struct {
	Title       string                `json:"title"       validate:"required,max=150"`
	Description string                `json:"description" validate:"required"`
	Region      string                `json:"region"      validate:"required,max=100"`
	Image       *multipart.FileHeader `json:"image"       swaggerignore:"true" validate:"required,mimetypes=image/jpeg image/jpg image/png image/webp,maxfilesize=5"`
	ImageFile   multipart.File        `json:"-"`
}

func (c *CreateFeaturedLocationRequest) ToModel(fileName string) model.FeaturedLocation {
	return model.FeaturedLocation{
		Title:       c.Title,
		Description: c.Description,
		Image:       fileName,
		Region:      c.Region,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}
}

type FeaturedLocationResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Region      string `json:"region"`
	gDto.Metadata
}

func (r *FeaturedLocationResponse) FromModel(model model.FeaturedLocation, imageURL string) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.Image = imageURL
	r.Region = model.Region
	r.Metadata.FromModel(model.Metadata)
}

type GetFeaturedLocationsResponse struct {
	Locations []FeaturedLocationResponse `json:"locations"`
	TotalPage int                        `json:"totalPage"`
	TotalData int                        `json:"totalData"`
}

func (r *GetFeaturedLocationsResponse) FromModels(models []model.FeaturedLocation, urls []string, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Locations = make([]FeaturedLocationResponse, len(models))
	for i, m := range models {
		r.Locations[i].FromModel(m, urls[i])
	}
}
