//go:build wireinject
// +build wireinject

package di

import (
	"hospitality/config"
	"hospitality/infras/jwt"
	"hospitality/infras/mail"
	"hospitality/infras/otel"
	"hospitality/infras/postgres"
	"hospitality/infras/redis"
	"hospitality/infras/storage"
	"hospitality/shared/cache"
	"hospitality/transport/http"
	"hospitality/transport/http/middleware"
	"hospitality/transport/http/router"

	bookingRepository "hospitality/internal/domains/booking/repository"
	bookingService "hospitality/internal/domains/booking/service"
	contactRepository "hospitality/internal/domains/contact/repository"
	contactService "hospitality/internal/domains/contact/service"
	featuredRepository "hospitality/internal/domains/featured/repository"
	featuredService "hospitality/internal/domains/featured/service"
	hotelitemRepository "hospitality/internal/domains/hotelitem/repository"
	hotelitemService "hospitality/internal/domains/hotelitem/service"
	hotellocationRepository "hospitality/internal/domains/hotellocation/repository"
	hotellocationService "hospitality/internal/domains/hotellocation/service"
	inquiryRepository "hospitality/internal/domains/inquiry/repository"
	inquiryService "hospitality/internal/domains/inquiry/service"
	messageRepository "hospitality/internal/domains/message/repository"
	messageService "hospitality/internal/domains/message/service"
	officelocationRepository "hospitality/internal/domains/officelocation/repository"
	officelocationService "hospitality/internal/domains/officelocation/service"
	orderRepository "hospitality/internal/domains/order/repository"
	orderService "hospitality/internal/domains/order/service"
	preschoolRepository "hospitality/internal/domains/preschool/repository"
	preschoolService "hospitality/internal/domains/preschool/service"
	registrationRepository "hospitality/internal/domains/registration/repository"
	registrationService "hospitality/internal/domains/registration/service"
	requestRepository "hospitality/internal/domains/request/repository"
	requestService "hospitality/internal/domains/request/service"
	specialRepository "hospitality/internal/domains/special/repository"
	specialService "hospitality/internal/domains/special/service"
	subscriberRepository "hospitality/internal/domains/subscriber/repository"
	subscriberService "hospitality/internal/domains/subscriber/service"
	testimonialRepository "hospitality/internal/domains/testimonial/repository"
	testimonialService "hospitality/internal/domains/testimonial/service"
	userRepository "hospitality/internal/domains/user/repository"
	userService "hospitality/internal/domains/user/service"

	bookingHandler "hospitality/internal/handlers/booking"
	contactHandler "hospitality/internal/handlers/contact"
	featuredHandler "hospitality/internal/handlers/featured"
	hotelitemHandler "hospitality/internal/handlers/hotelitem"
	hotellocationHandler "hospitality/internal/handlers/hotellocation"
	inquiryHandler "hospitality/internal/handlers/inquiry"
	messageHandler "hospitality/internal/handlers/message"
	officelocationHandler "hospitality/internal/handlers/officelocation"
	orderHandler "hospitality/internal/handlers/order"
	preschoolHandler "hospitality/internal/handlers/preschool"
	registrationHandler "hospitality/internal/handlers/registration"
	requestHandler "hospitality/internal/handlers/request"
	specialHandler "hospitality/internal/handlers/special"
	subscriberHandler "hospitality/internal/handlers/subscriber"
	testimonialHandler "hospitality/internal/handlers/testimonial"
	userHandler "hospitality/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	mail.New,
	storage.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var domains = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	contactRepository.New,
	contactService.New,
	featuredRepository.New,
	featuredService.New,
	hotelitemRepository.New,
	hotelitemService.New,
	hotellocationRepository.New,
	hotellocationService.New,
	inquiryRepository.New,
	inquiryService.New,
	messageRepository.New,
	messageService.New,
	officelocationRepository.New,
	officelocationService.New,
	orderRepository.New,
	orderService.New,
	preschoolRepository.New,
	preschoolService.New,
	registrationRepository.New,
	registrationService.New,
	requestRepository.New,
	requestService.New,
	specialRepository.New,
	specialService.New,
	subscriberRepository.New,
	subscriberService.New,
	testimonialRepository.New,
	testimonialService.New,
	userRepository.New,
	userService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	contactHandler.New,
	featuredHandler.New,
	hotelitemHandler.New,
	hotellocationHandler.New,
	inquiryHandler.New,
	messageHandler.New,
	officelocationHandler.New,
	orderHandler.New,
	preschoolHandler.New,
	registrationHandler.New,
	requestHandler.New,
	specialHandler.New,
	subscriberHandler.New,
	testimonialHandler.New,
	userHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
