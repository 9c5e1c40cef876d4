package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Service name reported in structured logs
	ServiceName = "tax-calculator"

	// Generic message shown to end users for configuration and internal failures
	GenericTaxFailureMessage = "Calculating taxes failed. Please check that your addresses are valid."
)

// Environment variable names
const (
	StageEnvVar             = "STAGE"
	LogLevelEnvVar          = "LOG_LEVEL"
	TaxJarAPIKeyEnvVar      = "TAXJAR_API_KEY"
	TaxJarAPIKeyARNEnvVar   = "TAXJAR_API_KEY_ARN"
	TaxJarAPIVersionEnvVar  = "TAXJAR_API_VERSION"
	TaxJarHTTPTimeoutEnvVar = "TAXJAR_HTTP_TIMEOUT"
	APIPortEnvVar           = "API_PORT"
	CORSAllowedOriginsVar   = "CORS_ALLOWED_ORIGINS"
	RateLimitRPSEnvVar      = "RATE_LIMIT_RPS"
	RateLimitBurstEnvVar    = "RATE_LIMIT_BURST"
)
