package dto

import (
	"mime/multipart"

	"hospitality/internal/domains/testimonial/model"
	"hospitality/shared"
	gDto "hospitality/shared/dto"
	gModel "hospitality/shared/model"
	"hospitality/shared/timezone"
)

type CreateTestimonialRequest struct {
	Text        string                `json:"text"        validate:"required"`
	Name        string                `json:"name"        validate:"required,max=100"`
	Designation string                `json:"designation" validate:"omitempty,max=100"`
	Image       *multipart.FileHeader `json:"image"       swaggerignore:"true" validate:"omitempty,mimetypes=image/jpeg image/jpg image/png image/webp,maxfilesize=5"`
	ImageFile   multipart.File        `json:"-"`
}

func (c *CreateTestimonialRequest) ToModel(fileName string) model.Testimonial {
	return model.Testimonial{
		Text:        c.Text,
		Name:        c.Name,
		Designation: c.Designation,
		Image:       fileName,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}
}

type TestimonialResponse struct {
	ID          int64  `json:"id"`
	Text        string `json:"text"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Image       string `json:"image"`
	gDto.Metadata
}

func (r *TestimonialResponse) FromModel(model model.Testimonial, imageURL string) {
	r.ID = model.ID
	r.Text = model.Text
	r.Name = model.Name
	r.Designation = model.Designation
	r.Image = imageURL
	r.Metadata.FromModel(model.Metadata)
}

type GetTestimonialsResponse struct {
	Testimonials []TestimonialResponse `json:"testimonials"`
	TotalPage    int                   `json:"totalPage"`
	TotalData    int                   `json:"totalData"`
}

func (r *GetTestimonialsResponse) FromModels(models []model.Testimonial, urls []string, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Testimonials = make([]TestimonialResponse, len(models))
	for i, m := range models {
		r.Testimonials[i].FromModel(m, urls[i])
	}
}
