package services

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cyphera/tax-calculator/internal/interfaces"
	"github.com/cyphera/tax-calculator/internal/logger"
	"github.com/cyphera/tax-calculator/internal/types/business"
)

// QuoteService builds a full TaxQuote from concurrent tax service lookups
type QuoteService struct {
	taxService interfaces.TaxService
	logger     *zap.Logger
}

// NewQuoteService creates a quote service
func NewQuoteService(taxService interfaces.TaxService) *QuoteService {
	return &QuoteService{
		taxService: taxService,
		logger:     logger.Log.With(zap.String("component", "quote_service")),
	}
}

// Quote looks up the origin rate, destination rate and taxes at the same time.
// The origin rate is skipped when fromAddress is nil. The first failure is returned as is.
func (s *QuoteService) Quote(ctx context.Context, fromAddress, toAddress *business.Address, subtotal, shipping decimal.Decimal, customer *business.Customer) (*business.TaxQuote, error) {
	var (
		originRate      *decimal.Decimal
		destinationRate decimal.Decimal
		taxes           decimal.Decimal
	)

	g, gctx := errgroup.WithContext(ctx)

	if fromAddress != nil {
		g.Go(func() error {
			rate, err := s.taxService.GetTaxRate(gctx, fromAddress, customer)
			if err != nil {
				return err
			}
			originRate = &rate
			return nil
		})
	}

	g.Go(func() error {
		rate, err := s.taxService.GetTaxRate(gctx, toAddress, customer)
		if err != nil {
			return err
		}
		destinationRate = rate
		return nil
	})

	g.Go(func() error {
		amount, err := s.taxService.CalculateTaxes(gctx, fromAddress, toAddress, subtotal, shipping, customer)
		if err != nil {
			return err
		}
		taxes = amount
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Debug("Quote failed", zap.Error(err))
		return nil, err
	}

	return &business.TaxQuote{
		OriginRate:      originRate,
		DestinationRate: destinationRate,
		Subtotal:        subtotal,
		Shipping:        shipping,
		Taxes:           taxes,
		GrandTotal:      subtotal.Add(shipping).Add(taxes),
	}, nil
}

var _ interfaces.QuoteService = (*QuoteService)(nil)
