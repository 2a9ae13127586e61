package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	"github.com/bcaffe88/cardapio-completo/src/internal/delivery/http"
	"github.com/bcaffe88/cardapio-completo/src/internal/delivery/http/middleware"
	"github.com/bcaffe88/cardapio-completo/src/internal/delivery/http/route"
	"github.com/bcaffe88/cardapio-completo/src/internal/gateway/broadcast"
	"github.com/bcaffe88/cardapio-completo/src/internal/gateway/messaging"
	"github.com/bcaffe88/cardapio-completo/src/internal/model/converter"
	"github.com/bcaffe88/cardapio-completo/src/internal/printer"
	"github.com/bcaffe88/cardapio-completo/src/internal/repository"
	"github.com/bcaffe88/cardapio-completo/src/internal/usecase"
	"github.com/bcaffe88/cardapio-completo/src/pkg/databases/postgres"
	kafkaPkg "github.com/bcaffe88/cardapio-completo/src/pkg/kafka"
	"github.com/bcaffe88/cardapio-completo/src/pkg/log"
	"github.com/bcaffe88/cardapio-completo/src/pkg/pubsub"
)

type BootstrapConfig struct {
	DB          postgres.DBInterface
	App         *fiber.App
	Log         log.Log
	Validate    *validator.Validate
	Config      *viper.Viper
	Producer    kafkaPkg.Producer
	Redis       redis.UniversalClient
	Hub         *pubsub.Hub
	Transmitter printer.Transmitter
	AsynqClient *asynq.Client
	Async       *asynq.ServeMux
}

func Bootstrap(config *BootstrapConfig) {
	// setup repositories
	orderRepository := repository.NewOrderRepository(config.DB)
	restaurantRepository := repository.NewRestaurantRepository(config.DB)
	catalogRepository := repository.NewCatalogRepository(config.DB)
	driverRepository := repository.NewDriverRepository(config.DB)
	notificationRepository := repository.NewNotificationRepository(config.DB)

	// setup gateways
	broadcaster := broadcast.NewBroadcaster(config.Hub)
	orderProducer := messaging.NewOrderProducer(config.Producer, config.Log)

	// setup use cases
	orderUseCase := usecase.NewOrderUseCase(
		config.Log,
		config.Validate,
		orderRepository,
		restaurantRepository,
		config.Config,
		config.Redis,
		broadcaster,
		orderProducer,
		config.Transmitter,
		converter.NewNumberGenerator(),
		config.AsynqClient,
	)
	catalogUseCase := usecase.NewCatalogUseCase(config.Log, config.Validate, catalogRepository)
	restaurantUseCase := usecase.NewRestaurantUseCase(
		config.Log,
		config.Validate,
		restaurantRepository,
		orderRepository,
		config.Redis,
	)
	driverUseCase := usecase.NewDriverUseCase(
		config.Log,
		config.Validate,
		driverRepository,
		orderRepository,
		notificationRepository,
		broadcaster,
		orderProducer,
	)

	// setup controllers
	webhookController := http.NewWebhookController(orderUseCase, config.Log)
	orderController := http.NewOrderController(orderUseCase, config.Log)
	catalogController := http.NewCatalogController(catalogUseCase, config.Log)
	restaurantController := http.NewRestaurantController(restaurantUseCase, config.Log)
	driverController := http.NewDriverController(driverUseCase, config.Log)
	wsController := http.NewWSController(broadcaster, orderUseCase, config.Log)

	// setup middleware
	authMiddleware := middleware.VerifyBearer(config.Config)

	config.Async.HandleFunc(usecase.TypeOrderReady, driverUseCase.NotifyAvailableDrivers)

	routeConfig := route.RouteConfig{
		App:                  config.App,
		WebhookController:    webhookController,
		OrderController:      orderController,
		CatalogController:    catalogController,
		RestaurantController: restaurantController,
		DriverController:     driverController,
		WSController:         wsController,
		AuthMiddleware:       authMiddleware,
	}
	routeConfig.Setup()
}
