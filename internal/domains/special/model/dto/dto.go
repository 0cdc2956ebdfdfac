package dto

import (
	"mime/multipart"

	"hospitality/internal/domains/special/model"
	"hospitality/shared"
	gDto "hospitality/shared/dto"
	gModel "hospitality/shared/model"
	"hospitality/shared/timezone"
)

type CreateSpecialRequest struct {
	Name          string                `json:"name"          validate:"required,max=100"`
	Special       string                `json:"special"       validate:"omitempty,max=100"`
	Description   string                `json:"description"   validate:"omitempty"`
	Price         float64               `json:"price"         validate:"required,gt=0"`
	OriginalPrice float64               `json:"originalPrice" validate:"omitempty,gt=0"`
	Cuisine       string                `json:"cuisine"       validate:"omitempty,max=100"`
	Offer         string                `json:"offer"         validate:"omitempty,max=100"`
	Rating        float64               `json:"rating"        validate:"omitempty,gte=0,lte=5"`
	SearchTerms   string                `json:"searchTerms"   validate:"omitempty"`
	Image         *multipart.FileHeader `json:"image"         swaggerignore:"true" validate:"required,mimetypes=image/jpeg image/jpg image/png image/gif image/webp,maxfilesize=10"`
	ImageFile     multipart.File        `json:"-"`
}

func (c *CreateSpecialRequest) ToModel(fileName string) model.Special {
	return model.Special{
		Name:          c.Name,
		Special:       c.Special,
		Description:   c.Description,
		Price:         c.Price,
		OriginalPrice: c.OriginalPrice,
		Cuisine:       c.Cuisine,
		Offer:         c.Offer,
		Rating:        c.Rating,
		Image:         fileName,
		SearchTerms:   c.SearchTerms,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}
}

type UpdateSpecialRequest struct {
	Name          string                `db:"name"           json:"name"          validate:"omitempty,max=100"`
	Special       string                `db:"special"        json:"special"       validate:"omitempty,max=100"`
	Description   string                `db:"description"    json:"description"   validate:"omitempty"`
	Price         float64               `db:"price"          json:"price"         validate:"omitempty,gt=0"`
	OriginalPrice float64               `db:"original_price" json:"originalPrice" validate:"omitempty,gt=0"`
	Cuisine       string                `db:"cuisine"        json:"cuisine"       validate:"omitempty,max=100"`
	Offer         string                `db:"offer"          json:"offer"         validate:"omitempty,max=100"`
	Rating        float64               `db:"rating"         json:"rating"        validate:"omitempty,gte=0,lte=5"`
	SearchTerms   string                `db:"search_terms"   json:"searchTerms"   validate:"omitempty"`
	Image         *multipart.FileHeader `db:"-"              json:"image"         swaggerignore:"true" validate:"omitempty,mimetypes=image/jpeg image/jpg image/png image/gif image/webp,maxfilesize=10"`
	ImageFile     multipart.File        `db:"-"              json:"-"`
}

type CreateSpecialResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
	Image   string `json:"image"`
}

type SpecialResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Special       string  `json:"special"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`
	Cuisine       string  `json:"cuisine"`
	Offer         string  `json:"offer"`
	Rating        float64 `json:"rating"`
	Image         string  `json:"image"`
	SearchTerms   string  `json:"searchTerms"`
	gDto.Metadata
}

func (r *SpecialResponse) FromModel(model model.Special, imageURL string) {
	r.ID = model.ID
	r.Name = model.Name
	r.Special = model.Special
	r.Description = model.Description
	r.Price = model.Price
	r.OriginalPrice = model.OriginalPrice
	r.Cuisine = model.Cuisine
	r.Offer = model.Offer
	r.Rating = model.Rating
	r.Image = imageURL
	r.SearchTerms = model.SearchTerms
	r.Metadata.FromModel(model.Metadata)
}

type GetSpecialsResponse struct {
	Specials  []SpecialResponse `json:"specials"`
	TotalPage int               `json:"totalPage"`
	TotalData int               `json:"totalData"`
}

func (r *GetSpecialsResponse) FromModels(models []model.Special, urls []string, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Specials = make([]SpecialResponse, len(models))
	for i, m := range models {
		r.Specials[i].FromModel(m, urls[i])
	}
}
