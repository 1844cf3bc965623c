package config

import (
	"kitchen-service/src/internal/delivery/http"
	"kitchen-service/src/internal/delivery/http/middleware"
	"kitchen-service/src/internal/delivery/http/route"
	"kitchen-service/src/internal/gateway/messaging"
	"kitchen-service/src/internal/gateway/payment"
	"kitchen-service/src/internal/repository"
	"kitchen-service/src/internal/usecase"
	"kitchen-service/src/pkg/databases/mysql"
	"kitchen-service/src/pkg/kafka"
	"kitchen-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	DB       mysql.DBInterface
	App      *fiber.App
	Log      log.Log
	Validate *validator.Validate
	Config   *viper.Viper
	Producer kafka.Producer
	Redis    redis.UniversalClient
}

func Bootstrap(config *BootstrapConfig) {
	// setup repositories
	settingsRepository := repository.NewSettingsRepository(config.DB)
	couponRepository := repository.NewCouponRepository(config.DB)
	menuRepository := repository.NewMenuRepository(config.DB)
	orderRepository := repository.NewOrderRepository(config.DB)
	dispatchRepository := repository.NewDispatchRepository(config.DB)
	orderProducer := messaging.NewOrderProducer(config.Producer, config.Log)
	paymentGateway := payment.NewGateway(config.Config)

	// setup use cases
	settingsUseCase := usecase.NewSettingsUseCase(
		config.Log,
		config.Validate,
		settingsRepository,
		config.Redis,
	)
	couponUseCase := usecase.NewCouponUseCase(
		config.Log,
		config.Validate,
		couponRepository,
		config.Redis,
	)
	orderUseCase := usecase.NewOrderUseCase(
		config.Log,
		config.Validate,
		orderRepository,
		couponRepository,
		settingsRepository,
		menuRepository,
		config.Redis,
		orderProducer,
	)
	paymentUseCase := usecase.NewPaymentUseCase(
		config.Log,
		config.Validate,
		orderRepository,
		paymentGateway,
		orderProducer,
	)
	dispatchUseCase := usecase.NewDispatchUseCase(
		config.Log,
		config.Validate,
		dispatchRepository,
		orderRepository,
	)

	// setup controller
	settingsController := http.NewSettingsController(settingsUseCase, config.Log)
	couponController := http.NewCouponController(couponUseCase, config.Log)
	orderController := http.NewOrderController(orderUseCase, config.Log)
	paymentController := http.NewPaymentController(paymentUseCase, config.Log)
	dispatchController := http.NewDispatchController(dispatchUseCase, config.Log)

	// setup middleware
	authMiddleware := middleware.VerifyBearer(config.Config)
	routeConfig := route.RouteConfig{
		App:                config.App,
		OrderController:    orderController,
		CouponController:   couponController,
		PaymentController:  paymentController,
		SettingsController: settingsController,
		DispatchController: dispatchController,
		AuthMiddleware:     authMiddleware,
	}
	routeConfig.Setup()
}
