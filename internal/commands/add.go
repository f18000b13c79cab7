package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diewo77/cartoes/internal/config"
	"github.com/diewo77/cartoes/internal/form"
	"github.com/diewo77/cartoes/internal/models"
	"github.com/diewo77/cartoes/internal/money"
)

type addOptions struct {
	date         string
	buyer        string
	card         string
	amount       string
	installments int
	description  string
}

func newAddCommand() *cobra.Command {
	var opts addOptions

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record one purchase without the web form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return runAdd(cmd, cfg, opts)
		},
	}

	cmd.Flags().StringVar(&opts.date, "date", "", "purchase date, YYYY-MM-DD or DD/MM/YYYY (default today)")
	cmd.Flags().StringVar(&opts.buyer, "buyer", "", "who bought it")
	cmd.Flags().StringVar(&opts.card, "card", "", "card used")
	cmd.Flags().StringVar(&opts.amount, "amount", "", "total amount, e.g. 1250,50 (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().IntVar(&opts.installments, "installments", 1, "number of installments; 2 or more marks the purchase as installments")
	cmd.Flags().StringVar(&opts.description, "description", "", "free text description")

	return cmd
}

func runAdd(cmd *cobra.Command, cfg *config.Config, opts addOptions) error {
	s := form.NewSession(formOptions(cfg))
	d := s.Draft()
	if opts.date != "" {
		t, err := models.ParseDate(opts.date)
		if err != nil {
			return fmt.Errorf("parsing --date: %w", err)
		}
		d.PurchaseDate = t
	}
	amount, err := money.ParseAmount(opts.amount)
	if err != nil {
		return fmt.Errorf("parsing --amount: %w", err)
	}
	d.Amount = amount
	d.Buyer = opts.buyer
	d.Card = opts.card
	if opts.installments > 1 {
		d.IsInstallment = true
		d.InstallmentCount = opts.installments
	}
	d.Description = opts.description
	if err := s.Update(d); err != nil {
		return err
	}

	b, err := openBackend(cfg)
	if err != nil {
		return err
	}
	defer b.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.LedgerTimeout())
	defer cancel()

	row, err := s.Submit(ctx, b.Store)
	if err != nil {
		var warn *form.ValidationWarning
		if errors.As(err, &warn) {
			return fmt.Errorf("purchase rejected: %w", warn)
		}
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Recorded %s %s on %s: R$ %s", row.Date, row.Buyer, row.Card, money.FormatBRL(row.Amount))
	if row.Installment {
		fmt.Fprintf(out, " (%dx de R$ %s)", row.InstallmentCount, money.FormatBRL(money.PerInstallment(row.Amount, row.InstallmentCount)))
	}
	fmt.Fprintln(out)
	if row.AmountInWords != "" {
		fmt.Fprintln(out, row.AmountInWords)
	}
	return nil
}
