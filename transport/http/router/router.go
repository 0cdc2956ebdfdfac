package router

import (
	"hospitality/internal/handlers/booking"
	"hospitality/internal/handlers/contact"
	"hospitality/internal/handlers/featured"
	"hospitality/internal/handlers/hotelitem"
	"hospitality/internal/handlers/hotellocation"
	"hospitality/internal/handlers/inquiry"
	"hospitality/internal/handlers/message"
	"hospitality/internal/handlers/officelocation"
	"hospitality/internal/handlers/order"
	"hospitality/internal/handlers/preschool"
	"hospitality/internal/handlers/registration"
	"hospitality/internal/handlers/request"
	"hospitality/internal/handlers/special"
	"hospitality/internal/handlers/subscriber"
	"hospitality/internal/handlers/testimonial"
	"hospitality/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Booking        booking.Handler
	Contact        contact.Handler
	Featured       featured.Handler
	HotelItem      hotelitem.Handler
	HotelLocation  hotellocation.Handler
	Inquiry        inquiry.Handler
	Message        message.Handler
	OfficeLocation officelocation.Handler
	Order          order.Handler
	Preschool      preschool.Handler
	Registration   registration.Handler
	Request        request.Handler
	Special        special.Handler
	Subscriber     subscriber.Handler
	Testimonial    testimonial.Handler
	User           user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)
		r.DomainHandlers.Featured.Router(routerGroup)
		r.DomainHandlers.HotelItem.Router(routerGroup)
		r.DomainHandlers.HotelLocation.Router(routerGroup)
		r.DomainHandlers.Inquiry.Router(routerGroup)
		r.DomainHandlers.Message.Router(routerGroup)
		r.DomainHandlers.OfficeLocation.Router(routerGroup)
		r.DomainHandlers.Order.Router(routerGroup)
		r.DomainHandlers.Preschool.Router(routerGroup)
		r.DomainHandlers.Registration.Router(routerGroup)
		r.DomainHandlers.Request.Router(routerGroup)
		r.DomainHandlers.Special.Router(routerGroup)
		r.DomainHandlers.Subscriber.Router(routerGroup)
		r.DomainHandlers.Testimonial.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
