package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/superfaktura-tools/sfapi/internal/constants"
	"github.com/superfaktura-tools/sfapi/pkg/sfapi"
)

// NewClientsCommand creates the clients command group.
func NewClientsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "clients",
		Aliases: []string{"client"},
		Short:   "Manage the client address book",
	}

	cmd.AddCommand(newClientsListCommand())
	cmd.AddCommand(newClientsGetCommand())
	cmd.AddCommand(newClientsCreateCommand())
	cmd.AddCommand(newClientsUpdateCommand())
	cmd.AddCommand(newClientsDeleteCommand())

	return cmd
}

func newClientsListCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := newAPIClient()
			if err != nil {
				return err
			}

			env := cli.Clients().List(cmd.Context(), flags.args(cmd))

			return renderList(env, "Client", []string{"id", "name", "ico", "email", "city", "country"})
		},
	}

	flags.register(cmd)

	return cmd
}

func newClientsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CLIENT_ID",
		Short: "Show client details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return constants.ErrClientIDRequired
			}

			cli, err := newAPIClient()
			if err != nil {
				return err
			}

			return renderEnvelope(cli.Clients().Get(cmd.Context(), id))
		},
	}
}

func newClientsCreateCommand() *cobra.Command {
	var (
		name    string
		ico     string
		dic     string
		icDPH   string
		email   string
		phone   string
		address string
		city    string
		zipCode string
		country string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a client",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := newAPIClient()
			if err != nil {
				return err
			}

			createArgs := sfapi.Args{"name": name}
			for key, value := range map[string]string{
				"ico":      ico,
				"dic":      dic,
				"ic_dph":   icDPH,
				"email":    email,
				"phone":    phone,
				"address":  address,
				"city":     city,
				"zip_code": zipCode,
				"country":  country,
			} {
				if value != "" {
					createArgs[key] = value
				}
			}

			return renderEnvelope(cli.Clients().Create(cmd.Context(), createArgs))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "client name")
	cmd.Flags().StringVar(&ico, "ico", "", "company registration number")
	cmd.Flags().StringVar(&dic, "dic", "", "tax identification number")
	cmd.Flags().StringVar(&icDPH, "ic-dph", "", "VAT identification number")
	cmd.Flags().StringVar(&email, "email", "", "contact email")
	cmd.Flags().StringVar(&phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&address, "address", "", "street address")
	cmd.Flags().StringVar(&city, "city", "", "city")
	cmd.Flags().StringVar(&zipCode, "zip-code", "", "postal code")
	cmd.Flags().StringVar(&country, "country", "", "country name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newClientsUpdateCommand() *cobra.Command {
	var (
		name  string
		email string
		phone string
	)

	cmd := &cobra.Command{
		Use:   "update CLIENT_ID",
		Short: "Update client fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return constants.ErrClientIDRequired
			}

			updates := map[string]interface{}{}
			if cmd.Flags().Changed("name") {
				updates["name"] = name
			}

			if cmd.Flags().Changed("email") {
				updates["email"] = email
			}

			if cmd.Flags().Changed("phone") {
				updates["phone"] = phone
			}

			cli, err := newAPIClient()
			if err != nil {
				return err
			}

			return renderEnvelope(cli.Clients().Update(cmd.Context(), id, updates))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new client name")
	cmd.Flags().StringVar(&email, "email", "", "new contact email")
	cmd.Flags().StringVar(&phone, "phone", "", "new contact phone")

	return cmd
}

func newClientsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete CLIENT_ID",
		Short: "Delete a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return constants.ErrClientIDRequired
			}

			cli, err := newAPIClient()
			if err != nil {
				return err
			}

			return renderEnvelope(cli.Clients().Delete(cmd.Context(), id))
		},
	}
}
