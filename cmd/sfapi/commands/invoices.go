package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/superfaktura-tools/sfapi/internal/constants"
	"github.com/superfaktura-tools/sfapi/pkg/sfapi"
)

// NewInvoicesCommand creates the invoices command group.
func NewInvoicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "invoices",
		Aliases: []string{"invoice", "inv"},
		Short:   "Manage invoices",
	}

	cmd.AddCommand(newInvoicesListCommand())
	cmd.AddCommand(newInvoicesGetCommand())
	cmd.AddCommand(newInvoicesCreateCommand())
	cmd.AddCommand(newInvoicesSendCommand())
	cmd.AddCommand(newInvoicesMarkPaidCommand())
	cmd.AddCommand(newInvoicesDeleteCommand())
	cmd.AddCommand(newInvoicesPDFCommand())

	return cmd
}

// listFlags collects the flags shared by every listing command. Only flags
// the user actually set reach the encoder, preserving unset-vs-zero
// semantics.
type listFlags struct {
	page    int
	perPage int
	search  string
	since   string
	until   string
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.page, "page", 0, "page number")
	cmd.Flags().IntVar(&f.perPage, "per-page", 0, "results per page")
	cmd.Flags().StringVar(&f.search, "search", "", "full-text search value")
	cmd.Flags().StringVar(&f.since, "created-since", "", "creation date range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.until, "created-to", "", "creation date range end (YYYY-MM-DD)")
}

func (f *listFlags) args(cmd *cobra.Command) sfapi.Args {
	args := sfapi.Args{}

	if cmd.Flags().Changed("page") {
		args["page"] = f.page
	}

	if cmd.Flags().Changed("per-page") {
		args["per_page"] = f.perPage
	}

	if cmd.Flags().Changed("search") {
		args["search"] = f.search
	}

	if cmd.Flags().Changed("created-since") {
		args["created_since"] = f.since
	}

	if cmd.Flags().Changed("created-to") {
		args["created_to"] = f.until
	}

	return args
}

func newInvoicesListCommand() *cobra.Command {
	flags := &listFlags{}

	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := newAPIClient()
			if err != nil {
				return err
			}

			listArgs := flags.args(cmd)
			if cmd.Flags().Changed("status") {
				listArgs["status"] = status
			}

			env := cli.Invoices().List(cmd.Context(), listArgs)

			return renderList(env, "Invoice", []string{"id", "invoice_no_formatted", "name", "amount", "status", "created"})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&status, "status", "", "status filter (1=draft, 2=sent, 3=paid, 99=cancelled)")

	return cmd
}

func newInvoicesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get INVOICE_ID",
		Short: "Show invoice details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return constants.ErrInvoiceIDRequired
			}

			cli, err := newAPIClient()
			if err != nil {
				return err
			}

			return renderEnvelope(cli.Invoices().Get(cmd.Context(), id))
		},
	}
}

func newInvoicesCreateCommand() *cobra.Command {
	var (
		clientID       int64
		name           string
		itemName       string
		itemPrice      float64
		itemQuantity   float64
		itemTax        float64
		variableSymbol string
		currency       string
		due            string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an invoice with a single item",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := newAPIClient()
			if err != nil {
				return err
			}

			createArgs := sfapi.Args{
				"client_id": clientID,
				"name":      name,
				"invoice_items": []interface{}{
					map[string]interface{}{
						"name":       itemName,
						"unit_price": itemPrice,
						"quantity":   itemQuantity,
						"tax":        itemTax,
					},
				},
			}

			if variableSymbol != "" {
				createArgs["variable_symbol"] = variableSymbol
			}

			if currency != "" {
				createArgs["currency"] = currency
			}

			if due != "" {
				createArgs["due"] = due
			}

			return renderEnvelope(cli.Invoices().Create(cmd.Context(), createArgs))
		},
	}

	cmd.Flags().Int64Var(&clientID, "client-id", 0, "ID of the client to invoice")
	cmd.Flags().StringVar(&name, "name", "", "invoice name")
	cmd.Flags().StringVar(&itemName, "item-name", "", "item name")
	cmd.Flags().Float64Var(&itemPrice, "item-price", 0, "item unit price")
	cmd.Flags().Float64Var(&itemQuantity, "item-quantity", 1, "item quantity")
	cmd.Flags().Float64Var(&itemTax, "item-tax", 0, "item tax rate in percent")
	cmd.Flags().StringVar(&variableSymbol, "variable-symbol", "", "variable symbol")
	cmd.Flags().StringVar(&currency, "currency", "", "invoice currency code")
	cmd.Flags().StringVar(&due, "due", "", "due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("client-id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("item-name")
	_ = cmd.MarkFlagRequired("item-price")

	return cmd
}

func newInvoicesSendCommand() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "send INVOICE_ID",
		Short: "Send an invoice via email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return constants.ErrInvoiceIDRequired
			}

			cli, err := newAPIClient()
			if err != nil {
				return err
			}

			return renderEnvelope(cli.Invoices().Send(cmd.Context(), id, email))
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "override recipient address")

	return cmd
}

func newInvoicesMarkPaidCommand() *cobra.Command {
	var (
		amount      float64
		paymentDate string
		paymentType string
	)

	cmd := &cobra.Command{
		Use:   "mark-paid INVOICE_ID",
		Short: "Record a payment against an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return constants.ErrInvoiceIDRequired
			}

			cli, err := newAPIClient()
			if err != nil {
				return err
			}

			paidArgs := sfapi.Args{}
			if paymentDate != "" {
				paidArgs["payment_date"] = paymentDate
			}

			if paymentType != "" {
				paidArgs["payment_type"] = paymentType
			}

			return renderEnvelope(cli.Invoices().MarkPaid(cmd.Context(), id, amount, paidArgs))
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "payment amount")
	cmd.Flags().StringVar(&paymentDate, "date", "", "payment date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&paymentType, "type", "", "payment type (default transfer)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newInvoicesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete INVOICE_ID",
		Short: "Delete an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return constants.ErrInvoiceIDRequired
			}

			cli, err := newAPIClient()
			if err != nil {
				return err
			}

			return renderEnvelope(cli.Invoices().Delete(cmd.Context(), id))
		},
	}
}

func newInvoicesPDFCommand() *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "pdf INVOICE_ID",
		Short: "Get the tokenized public PDF link of an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return constants.ErrInvoiceIDRequired
			}

			cli, err := newAPIClient()
			if err != nil {
				return err
			}

			return renderEnvelope(cli.Invoices().GetPDF(cmd.Context(), id, language))
		},
	}

	cmd.Flags().StringVar(&language, "language", "", "PDF language code (default slo)")

	return cmd
}
