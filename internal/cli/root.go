package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cyphera/tax-calculator/internal/constants"
	"github.com/cyphera/tax-calculator/internal/helpers"
	"github.com/cyphera/tax-calculator/internal/interfaces"
	"github.com/cyphera/tax-calculator/internal/logger"
	"github.com/cyphera/tax-calculator/internal/server"
	"github.com/cyphera/tax-calculator/internal/taxerr"
)

// options are the persistent flags shared by every subcommand
type options struct {
	apiKey     string
	apiVersion string
	timeout    time.Duration
	verbose    bool
}

// serviceFactory builds the services a subcommand talks to
type serviceFactory func(opts options) (interfaces.TaxService, interfaces.QuoteService, error)

func taxJarServices(opts options) (interfaces.TaxService, interfaces.QuoteService, error) {
	apiKey := strings.TrimSpace(opts.apiKey)
	if apiKey == "" {
		apiKey = strings.TrimSpace(os.Getenv(constants.TaxJarAPIKeyEnvVar))
	}
	if apiKey == "" {
		return nil, nil, fmt.Errorf("a TaxJar API key is required (--api-key or %s)", constants.TaxJarAPIKeyEnvVar)
	}

	apiVersion := opts.apiVersion
	if apiVersion == "" {
		apiVersion = os.Getenv(constants.TaxJarAPIVersionEnvVar)
	}

	taxService, quoteService := server.NewTaxServices(server.Settings{
		APIKey:      apiKey,
		APIVersion:  strings.TrimSpace(apiVersion),
		HTTPTimeout: opts.timeout,
	})
	return taxService, quoteService, nil
}

func newRootCmd(factory serviceFactory) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "taxcalc",
		Short:         "Look up sales tax rates and amounts through TaxJar",
		Long:          "taxcalc looks up the tax rate for an address and the tax owed on a shipment using the TaxJar API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				logger.InitLoggerWithConfig(logger.LoggerConfig{Level: "debug", Stage: helpers.StageLocal, EnableColor: true})
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.apiKey, "api-key", "", "TaxJar API key (defaults to $"+constants.TaxJarAPIKeyEnvVar+")")
	flags.StringVar(&opts.apiVersion, "api-version", "", "TaxJar API version sent as x-api-version")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "HTTP timeout for TaxJar requests")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log requests to stderr")

	services := func() (interfaces.TaxService, interfaces.QuoteService, error) {
		return factory(*opts)
	}

	cmd.AddCommand(newCountriesCmd())
	cmd.AddCommand(newRateCmd(services))
	cmd.AddCommand(newCalculateCmd(services))
	cmd.AddCommand(newQuoteCmd(services))
	return cmd
}

// NewRootCmdForTest returns the root command wired to factory.
func NewRootCmdForTest(factory func() (interfaces.TaxService, interfaces.QuoteService, error)) *cobra.Command {
	return newRootCmd(func(options) (interfaces.TaxService, interfaces.QuoteService, error) {
		return factory()
	})
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd(taxJarServices).ExecuteContext(ctx)
}

// ErrorMessage returns what a user is shown for err: input errors verbatim, everything else generic
func ErrorMessage(err error) string {
	switch taxerr.KindOf(err) {
	case taxerr.Input:
		return err.Error()
	case taxerr.Configuration, taxerr.Internal:
		return constants.GenericTaxFailureMessage
	default:
		return err.Error()
	}
}
