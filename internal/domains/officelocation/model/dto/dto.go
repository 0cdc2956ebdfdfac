package dto

import (
	"mime/multipart"

	"hospitality/internal/domains/officelocation/model"
	"hospitality/shared"
	gDto "hospitality/shared/dto"
	gModel "hospitality/shared/model"
	"hospitality/shared/timezone"
)

type CreateOfficeLocationRequest struct {
	Title       string                `json:"title"       validate:"required,max=150"`
	Description string                `json:"description" validate:"omitempty"`
	Image       *multipart.FileHeader `json:"image"       swaggerignore:"true" validate:"required,mimetypes=image/jpeg image/jpg image/png image/webp,maxfilesize=10"`
	ImageFile   multipart.File        `json:"-"`
}

func (c *CreateOfficeLocationRequest) ToModel(fileName string) model.OfficeLocation {
	return model.OfficeLocation{
		Title:       c.Title,
		Description: c.Description,
		ImagePath:   fileName,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}
}

type UpdateOfficeLocationRequest struct {
	Title       string                `db:"title"       json:"title"       validate:"omitempty,max=150"`
	Description string                `db:"description" json:"description" validate:"omitempty"`
	Image       *multipart.FileHeader `db:"-"           json:"image"       swaggerignore:"true" validate:"omitempty,mimetypes=image/jpeg image/jpg image/png image/webp,maxfilesize=10"`
	ImageFile   multipart.File        `db:"-"           json:"-"`
}

type OfficeLocationResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImagePath   string `json:"imagePath"`
	gDto.Metadata
}

func (r *OfficeLocationResponse) FromModel(model model.OfficeLocation, imageURL string) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.ImagePath = imageURL
	r.Metadata.FromModel(model.Metadata)
}

type GetOfficeLocationsResponse struct {
	Locations []OfficeLocationResponse `json:"locations"`
	TotalPage int                      `json:"totalPage"`
	TotalData int                      `json:"totalData"`
}

func (r *GetOfficeLocationsResponse) FromModels(models []model.OfficeLocation, urls []string, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Locations = make([]OfficeLocationResponse, len(models))
	for i, m := range models {
		r.Locations[i].FromModel(m, urls[i])
	}
}
