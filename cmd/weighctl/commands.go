package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fekuna/omnipos-weighing-service/internal/calculator"
	"github.com/fekuna/omnipos-weighing-service/internal/catalog"
	"github.com/fekuna/omnipos-weighing-service/internal/i18n"
	"github.com/fekuna/omnipos-weighing-service/internal/record"
	recH "github.com/fekuna/omnipos-weighing-service/internal/record/handler"
	"github.com/fekuna/omnipos-weighing-service/internal/record/dto"
	"github.com/fekuna/omnipos-weighing-service/internal/report"
	pb "github.com/fekuna/omnipos-weighing-service/internal/rpc/weighingv1"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newCatalogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the products that can be weighed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, e := range catalog.Entries() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s) %s\n", e.Key, e.Name)
			}
			return nil
		},
	}
}

func newSubmitCmd(a *app) *cobra.Command {
	var discount string

	cmd := &cobra.Command{
		Use:   "submit <product> <Box|Bag> <quantity> <gross-kg>",
		Short: "Add a weighed batch to its running record",
		Long: `Add a weighed batch to the record for its (product, packaging type).

The product may be given by name or by its catalog key. Pass --discount to
deduct the container weight from the gross weight.`,
		Example: `  weighctl submit tomate Box 3 25.5 --discount 1.2
  weighctl submit a bag 1 4`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[2])
			}
			gross, err := decimal.NewFromString(args[3])
			if err != nil {
				return fmt.Errorf("invalid gross weight %q", args[3])
			}

			req := &pb.SubmitRequest{
				Product:       args[0],
				PackagingType: args[1],
				Quantity:      qty,
				GrossWeight:   gross,
			}
			if cmd.Flags().Changed("discount") {
				d, err := decimal.NewFromString(discount)
				if err != nil {
					return fmt.Errorf("invalid discount %q", discount)
				}
				req.DeductWeight = true
				req.Discount = d
			}

			input, err := recH.SubmitInputFromRequest(req)
			if err != nil {
				return err
			}

			res, err := a.uc.Submit(cmd.Context(), input)
			if err != nil {
				return err
			}

			msgID, qtyOut, net := i18n.MsgRecordCreated, input.Quantity, res.SubmittedNet
			if !res.Created {
				msgID, qtyOut, net = i18n.MsgRecordUpdated, res.Record.Quantity, res.Record.NetWeight
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.localizer.T(msgID, map[string]interface{}{
				"Quantity":  qtyOut,
				"Packaging": strings.ToLower(string(input.PackagingType)),
				"Product":   input.Product,
				"Net":       report.FormatWeight(net),
			}))
			return nil
		},
	}

	cmd.Flags().StringVar(&discount, "discount", "0", "container weight to deduct, in kg")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [product|all]",
		Short: "Show records and their total net weight",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := filtersFromArgs(args)
			if err != nil {
				return err
			}

			res, err := a.uc.Query(cmd.Context(), filters)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(res.Records) == 0 {
				fmt.Fprintln(out, a.localizer.T(i18n.MsgNoRecords, nil))
			}
			for _, r := range res.Records {
				fmt.Fprintf(out, "%d\t%s\t%s\t%d\t%s kg\t%s kg\t%s kg\n",
					r.ID, r.Product, r.PackagingType, r.Quantity,
					r.GrossWeight.String(), r.Discount.String(), report.FormatWeight(r.NetWeight))
			}

			label := res.FilterLabel
			if label == catalog.AllProducts {
				label = a.localizer.T(i18n.MsgAllProductsLabel, nil)
			}
			fmt.Fprintln(out, a.localizer.T(i18n.MsgTotalWeight, map[string]interface{}{
				"Label": label,
				"Total": report.FormatWeight(res.TotalNetWeight),
			}))
			return nil
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a filtered report file",
	}

	run := func(export func(*cobra.Command, *dto.RecordFilters) (*dto.ExportResult, error)) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			filters, err := filtersFromArgs(args)
			if err != nil {
				return err
			}
			res, err := export(cmd, filters)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.localizer.T(i18n.MsgReportExported, map[string]interface{}{"Path": res.Path}))
			return nil
		}
	}

	cmd.AddCommand(
		needsStore(&cobra.Command{
			Use:   "text [product|all]",
			Short: "Export the report as plain text",
			Args:  cobra.MaximumNArgs(1),
			RunE: run(func(cmd *cobra.Command, f *dto.RecordFilters) (*dto.ExportResult, error) {
				return a.uc.ExportText(cmd.Context(), f)
			}),
		}),
		needsStore(&cobra.Command{
			Use:   "pdf [product|all]",
			Short: "Export the report as a PDF table",
			Args:  cobra.MaximumNArgs(1),
			RunE: run(func(cmd *cobra.Command, f *dto.RecordFilters) (*dto.ExportResult, error) {
				return a.uc.ExportPDF(cmd.Context(), f)
			}),
		}),
	)
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one record by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}

			err = a.uc.DeleteRecord(cmd.Context(), id)
			if errors.Is(err, record.ErrRecordNotFound) {
				return errors.New(a.localizer.T(i18n.MsgRecordNotFound, map[string]interface{}{"ID": id}))
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.localizer.T(i18n.MsgRecordDeleted, map[string]interface{}{"ID": id}))
			return nil
		},
	}
}

func newPurgeCmd(a *app) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete every record (password protected)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.uc.DeleteAllRecords(cmd.Context(), password)
			if errors.Is(err, record.ErrAuthenticationFailure) {
				return errors.New(a.localizer.T(i18n.MsgWrongPassword, nil))
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.localizer.T(i18n.MsgAllRecordsDeleted, map[string]interface{}{"Count": n}))
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "bulk delete password")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newCalcCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc <a> <op> <b>",
		Short: "Scratch calculator (+ - x /)",
		Long: `Scratch calculator (+ - x /).

Flags are only read before the first operand, so a negative right operand
needs no quoting. A negative left operand must follow "--".`,
		Example: `  weighctl calc 12.5 + 3
  weighctl calc 5 - -3
  weighctl calc -- -10 / 4`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid number %q", args[0])
			}
			op, err := calculator.ParseOperation(args[1])
			if err != nil {
				return err
			}
			y, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid number %q", args[2])
			}

			res, err := calculator.Calculate(op, x, y)
			if err != nil {
				return err
			}
			if res.DivisionByZero {
				fmt.Fprintln(cmd.OutOrStdout(), a.localizer.T(i18n.MsgDivisionByZero, nil))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.localizer.T(i18n.MsgCalculationResult, map[string]interface{}{"Result": res.String()}))
			return nil
		},
	}

	cmd.Flags().SetInterspersed(false)
	return cmd
}

func filtersFromArgs(args []string) (*dto.RecordFilters, error) {
	if len(args) == 0 {
		return recH.FiltersFromProduct("")
	}
	return recH.FiltersFromProduct(args[0])
}
