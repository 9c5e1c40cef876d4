package cli

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cyphera/tax-calculator/internal/taxerr"
	"github.com/cyphera/tax-calculator/internal/types/business"
)

// shipmentFlags are shared by calculate and quote
type shipmentFlags struct {
	from     addressFlags
	to       addressFlags
	amount   string
	shipping string
}

func (s *shipmentFlags) register(cmd *cobra.Command) {
	s.from.register(cmd.Flags(), "from-", "origin")
	s.to.register(cmd.Flags(), "to-", "destination")
	cmd.Flags().StringVar(&s.amount, "amount", "", "order amount excluding shipping")
	cmd.Flags().StringVar(&s.shipping, "shipping", "0", "shipping charge")
}

// parse returns the origin (nil when no --from-* flag was given), destination, amount and shipping
func (s *shipmentFlags) parse() (*business.Address, *business.Address, decimal.Decimal, decimal.Decimal, error) {
	amount, err := parseMoney("amount", s.amount)
	if err != nil {
		return nil, nil, decimal.Zero, decimal.Zero, err
	}
	shipping, err := parseMoney("shipping", s.shipping)
	if err != nil {
		return nil, nil, decimal.Zero, decimal.Zero, err
	}

	var from *business.Address
	if !s.from.empty() {
		from = s.from.address()
	}
	return from, s.to.address(), amount, shipping, nil
}

func parseMoney(name, value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, taxerr.NewInputError("The %s %q is not a valid number", name, value)
	}
	return amount, nil
}

func newCalculateCmd(services servicesFunc) *cobra.Command {
	var shipment shipmentFlags

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate the tax owed on a shipment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, amount, shipping, err := shipment.parse()
			if err != nil {
				return err
			}

			taxService, _, err := services()
			if err != nil {
				return err
			}

			taxes, err := taxService.CalculateTaxes(cmd.Context(), from, to, amount, shipping, nil)
			if err != nil {
				return err
			}

			renderRows(cmd.OutOrStdout(), "Taxes", []row{
				{label: "Amount", value: formatMoney(amount)},
				{label: "Shipping", value: formatMoney(shipping)},
				{label: "Amount to collect", value: taxes.String(), total: true},
			})
			return nil
		},
	}

	shipment.register(cmd)
	return cmd
}

func newQuoteCmd(services servicesFunc) *cobra.Command {
	var shipment shipmentFlags

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Show origin and destination rates, taxes and the grand total for a shipment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, amount, shipping, err := shipment.parse()
			if err != nil {
				return err
			}

			_, quoteService, err := services()
			if err != nil {
				return err
			}

			quote, err := quoteService.Quote(cmd.Context(), from, to, amount, shipping, nil)
			if err != nil {
				return err
			}

			rows := make([]row, 0, 6)
			if quote.OriginRate != nil {
				rows = append(rows, row{label: "Origin rate", value: formatRate(*quote.OriginRate)})
			}
			rows = append(rows,
				row{label: "Destination rate", value: formatRate(quote.DestinationRate)},
				row{label: "Subtotal", value: formatMoney(quote.Subtotal)},
				row{label: "Shipping", value: formatMoney(quote.Shipping)},
				row{label: "Taxes", value: quote.Taxes.String()},
				row{label: "Grand total", value: quote.GrandTotal.String(), total: true},
			)
			renderRows(cmd.OutOrStdout(), "Quote", rows)
			return nil
		},
	}

	shipment.register(cmd)
	return cmd
}
