package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/superfaktura-tools/sfapi/internal/constants"
	"github.com/superfaktura-tools/sfapi/pkg/sfapi"
)

// NewExpensesCommand creates the expenses command group.
func NewExpensesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "expenses",
		Aliases: []string{"expense", "exp"},
		Short:   "Manage expenses",
	}

	cmd.AddCommand(newExpensesListCommand())
	cmd.AddCommand(newExpensesGetCommand())
	cmd.AddCommand(newExpensesCreateCommand())
	cmd.AddCommand(newExpensesDeleteCommand())

	return cmd
}

func newExpensesListCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := newAPIClient()
			if err != nil {
				return err
			}

			env := cli.Expenses().List(cmd.Context(), flags.args(cmd))

			return renderList(env, "Expense", []string{"id", "name", "amount", "currency", "due", "created"})
		},
	}

	flags.register(cmd)

	return cmd
}

func newExpensesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get EXPENSE_ID",
		Short: "Show expense details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return constants.ErrExpenseIDRequired
			}

			cli, err := newAPIClient()
			if err != nil {
				return err
			}

			return renderEnvelope(cli.Expenses().Get(cmd.Context(), id))
		},
	}
}

func newExpensesCreateCommand() *cobra.Command {
	var (
		name           string
		amount         float64
		vat            float64
		currency       string
		expenseType    string
		variableSymbol string
		due            string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an expense",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := newAPIClient()
			if err != nil {
				return err
			}

			createArgs := sfapi.Args{
				"name":   name,
				"amount": amount,
			}

			if cmd.Flags().Changed("vat") {
				createArgs["vat"] = vat
			}

			if currency != "" {
				createArgs["currency"] = currency
			}

			if expenseType != "" {
				createArgs["expense_type"] = expenseType
			}

			if variableSymbol != "" {
				createArgs["variable_symbol"] = variableSymbol
			}

			if due != "" {
				createArgs["due"] = due
			}

			return renderEnvelope(cli.Expenses().Create(cmd.Context(), createArgs))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "expense name")
	cmd.Flags().Float64Var(&amount, "amount", 0, "expense amount")
	cmd.Flags().Float64Var(&vat, "vat", 0, "VAT rate in percent")
	cmd.Flags().StringVar(&currency, "currency", "", "currency code")
	cmd.Flags().StringVar(&expenseType, "type", "", "expense type (invoice, bill, internal, contribution)")
	cmd.Flags().StringVar(&variableSymbol, "variable-symbol", "", "variable symbol")
	cmd.Flags().StringVar(&due, "due", "", "due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newExpensesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete EXPENSE_ID",
		Short: "Delete an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return constants.ErrExpenseIDRequired
			}

			cli, err := newAPIClient()
			if err != nil {
				return err
			}

			return renderEnvelope(cli.Expenses().Delete(cmd.Context(), id))
		},
	}
}
