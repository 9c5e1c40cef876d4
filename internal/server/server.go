package server

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	awsclient "github.com/cyphera/tax-calculator/internal/client/aws"
	httpClient "github.com/cyphera/tax-calculator/internal/client/http"
	"github.com/cyphera/tax-calculator/internal/client/taxjar"
	"github.com/cyphera/tax-calculator/internal/constants"
	"github.com/cyphera/tax-calculator/internal/handlers"
	"github.com/cyphera/tax-calculator/internal/helpers"
	"github.com/cyphera/tax-calculator/internal/logger"
	"github.com/cyphera/tax-calculator/internal/middleware"
	"github.com/cyphera/tax-calculator/internal/services"
)

const (
	defaultHTTPTimeout    = 30 * time.Second
	defaultPort           = "8000"
	defaultRateLimitRPS   = 10
	defaultRateLimitBurst = 20
)

// Handler Definitions
var (
	healthHandler *handlers.HealthHandler
	taxHandler    *handlers.TaxHandler
)

// SecretGetter resolves a secret from an ARN env var with a plain env var fallback
type SecretGetter interface {
	GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
}

// Settings holds everything needed to build the tax services
type Settings struct {
	APIKey      string
	APIVersion  string
	HTTPTimeout time.Duration
}

// LoadSettings reads the TaxJar settings from the environment and the secret store
func LoadSettings(ctx context.Context, secrets SecretGetter) (Settings, error) {
	settings := Settings{
		APIVersion:  strings.TrimSpace(os.Getenv(constants.TaxJarAPIVersionEnvVar)),
		HTTPTimeout: defaultHTTPTimeout,
	}

	if raw := strings.TrimSpace(os.Getenv(constants.TaxJarHTTPTimeoutEnvVar)); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s %q: %w", constants.TaxJarHTTPTimeoutEnvVar, raw, err)
		}
		if timeout <= 0 {
			return Settings{}, fmt.Errorf("invalid %s %q: must be positive", constants.TaxJarHTTPTimeoutEnvVar, raw)
		}
		settings.HTTPTimeout = timeout
	}

	apiKey, err := secrets.GetSecretString(ctx, constants.TaxJarAPIKeyARNEnvVar, constants.TaxJarAPIKeyEnvVar)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to resolve TaxJar API key: %w", err)
	}
	settings.APIKey = strings.TrimSpace(apiKey)
	if settings.APIKey == "" {
		return Settings{}, fmt.Errorf("TaxJar API key is empty")
	}

	return settings, nil
}

// NewTaxServices builds the calculator stack for settings
func NewTaxServices(settings Settings) (*services.SimpleTaxService, *services.QuoteService) {
	restClient := httpClient.NewHTTPClient(
		httpClient.WithTimeout(settings.HTTPTimeout),
		httpClient.WithDefaultHeader("User-Agent", constants.ServiceName),
		httpClient.WithMiddleware(httpClient.LoggingMiddleware()),
	)
	calculator := taxjar.NewCalculator(taxjar.Config{
		APIKey:     settings.APIKey,
		APIVersion: settings.APIVersion,
		RestClient: restClient,
	})

	taxService := services.NewSimpleTaxService(calculator)
	return taxService, services.NewQuoteService(taxService)
}

func InitializeHandlers() {
	// Load environment variables from .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err) // Use basic log before logger init
	}

	stage := os.Getenv(constants.StageEnvVar)
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	ctx := context.Background()

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	settings, err := LoadSettings(ctx, secretsClient)
	if err != nil {
		logger.Fatal("Failed to load TaxJar settings", zap.Error(err))
	}
	logger.Info("TaxJar settings loaded",
		zap.String("api_version", settings.APIVersion),
		zap.Duration("http_timeout", settings.HTTPTimeout))

	taxService, quoteService := NewTaxServices(settings)

	healthHandler = handlers.NewHealthHandler()
	taxHandler = handlers.NewTaxHandler(taxService, quoteService)
}

func InitializeRoutes(router *gin.Engine) {
	// Handlers are created in InitializeHandlers
	router.Use(configureCORS())
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware())

	rps := envInt(constants.RateLimitRPSEnvVar, defaultRateLimitRPS)
	burst := envInt(constants.RateLimitBurstEnvVar, defaultRateLimitBurst)
	router.Use(middleware.NewRateLimiter(rps, burst).Middleware())

	RegisterRoutes(router, healthHandler, taxHandler)
}

// RegisterRoutes mounts the health check and the tax API on router
func RegisterRoutes(router *gin.Engine, health *handlers.HealthHandler, tax *handlers.TaxHandler) {
	router.GET("/health", health.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		taxes := v1.Group("/taxes")
		{
			taxes.GET("/countries", tax.ListCountries)
			taxes.POST("/rate", tax.GetTaxRate)
			taxes.POST("/calculate", tax.CalculateTaxes)
			taxes.POST("/quote", tax.Quote)
		}
	}
}

// Port returns the port the local server listens on
func Port() string {
	if port := strings.TrimSpace(os.Getenv(constants.APIPortEnvVar)); port != "" {
		return port
	}
	return defaultPort
}

// envInt reads a positive integer from the environment, falling back to def
func envInt(name string, def int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		logger.Warn("Ignoring invalid integer environment variable",
			zap.String("name", name),
			zap.String("value", raw),
			zap.Int("default", def))
		return def
	}
	return value
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	return cors.New(corsConfig(os.Getenv(constants.CORSAllowedOriginsVar)))
}

func corsConfig(originsEnv string) cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.CorrelationIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.CorrelationIDHeader}

	var origins []string
	for _, origin := range strings.Split(originsEnv, ",") {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			origins = nil
			break
		}
		if origin != "" {
			origins = append(origins, origin)
		}
	}

	if len(origins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	return corsConfig
}
