package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"

	_ "photostudio/docs" // This will be auto-generated
	"photostudio/internal/adapter/http/handlers"
	repository2 "photostudio/internal/adapter/persistence/repository"
	"photostudio/internal/infrastructure/commerce"
	"photostudio/internal/infrastructure/database"
	"photostudio/internal/infrastructure/identity"
	"photostudio/internal/infrastructure/notifications"
	"photostudio/internal/infrastructure/orders"
	"photostudio/internal/usecase"
	"photostudio/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ctx := context.Background()
	ddb := database.ConnectDynamoDB()

	snapshots := repository2.NewSnapshotDynamoRepository(ddb)

	cartUseCase := usecase.NewCartUseCase(ctx, snapshots)
	sessionUseCase := usecase.NewSessionUseCase(ctx, snapshots, identity.NewIdentityGatewayFromEnv(), os.Getenv("SESSION_JWT_SECRET"))

	var orderBackend interfaces.IOrderBackend
	switch strings.ToLower(strings.TrimSpace(os.Getenv("ORDER_BACKEND"))) {
	case "dynamodb":
		orderBackend = repository2.NewOrderDynamoRepository(ddb)
	case "remote":
		orderBackend = orders.NewUnimplementedOrderBackend()
	default:
		log.Printf("[routes] no order backend configured; orders are kept in memory")
	}

	var mailer interfaces.IMailer
	sgMailer, err := notifications.NewSendGridMailer(os.Getenv("SENDGRID_API_KEY"))
	if err != nil {
		log.Printf("Mailer not configured: %v", err)
	} else {
		mailer = sgMailer
	}

	orderUseCase := usecase.NewOrderUseCase(orderBackend, mailer)

	var checkoutGateway interfaces.ICheckoutGateway
	mpGateway, err := commerce.NewMercadoPagoCheckoutGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago checkout gateway not configured: %v", err)
	} else {
		checkoutGateway = mpGateway
	}

	checkoutUseCase := usecase.NewCheckoutUseCase(checkoutGateway, cartUseCase, isClearCartAfterHandoffEnabled())

	cartHandler := handlers.NewCartHandler(cartUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	sessionHandler := handlers.NewSessionHandler(sessionUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase, cartUseCase)
	uploadHandler := handlers.NewUploadHandler(usecase.NewUploadUseCase(), usecase.NewCustomOrderUploadUseCase())

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStorefrontRoutes(v1, cartHandler, orderHandler, sessionHandler, checkoutHandler, uploadHandler)
}

func isClearCartAfterHandoffEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("CHECKOUT_CLEAR_CART_AFTER_HANDOFF")))
	switch v {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
