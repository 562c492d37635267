package routes

import (
	"log"
	"strconv"

	_ "crm_pipeline/docs" // This will be auto-generated
	"crm_pipeline/internal/adapter/http/handlers"
	"crm_pipeline/internal/adapter/persistence/repository"
	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/infrastructure/customers"
	"crm_pipeline/internal/infrastructure/database"
	"crm_pipeline/internal/usecase"
	"crm_pipeline/internal/usecase/interfaces"

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
	ddb := database.ConnectDynamoDB()

	counterRepo := repository.NewCounterDynamoRepository(ddb)
	leadRepo := repository.NewLeadDynamoRepository(ddb)
	offerRepo := repository.NewOfferDynamoRepository(ddb)
	saleRepo := repository.NewSaleDynamoRepository(ddb)
	productRepo := repository.NewLineItemDynamoRepository(ddb, entities.ItemKindProduct)
	licenseRepo := repository.NewLineItemDynamoRepository(ddb, entities.ItemKindLicense)
	rentalRepo := repository.NewLineItemDynamoRepository(ddb, entities.ItemKindRental)
	paymentRepo := repository.NewLineItemDynamoRepository(ddb, entities.ItemKindPayment)

	var customerService interfaces.ICustomerService
	customerClient, err := customers.NewCustomerHTTPClient()
	if err != nil {
		log.Printf("Customer service client not configured: %v", err)
	} else {
		customerService = customerClient
	}

	seqUseCase := usecase.NewSequenceUseCase(counterRepo)
	syncUseCase := usecase.NewPipelineSyncUseCase(productRepo, licenseRepo, rentalRepo, paymentRepo)
	totalsUseCase := usecase.NewTotalsUseCase(productRepo, licenseRepo, rentalRepo, offerRepo, saleRepo)
	offerUseCase := usecase.NewOfferUseCase(offerRepo, seqUseCase, syncUseCase, totalsUseCase)
	saleUseCase := usecase.NewSaleUseCase(saleRepo, syncUseCase, totalsUseCase)
	conversionUseCase := usecase.NewConversionUseCase(leadRepo, offerRepo, saleRepo, customerService, offerUseCase, seqUseCase, syncUseCase, totalsUseCase)

	offerHandler := handlers.NewOfferHandler(offerUseCase, conversionUseCase, totalsUseCase)
	leadHandler := handlers.NewLeadHandler(conversionUseCase)
	saleHandler := handlers.NewSaleHandler(saleUseCase, totalsUseCase, syncUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPipelineRoutes(v1, leadHandler, offerHandler, saleHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
