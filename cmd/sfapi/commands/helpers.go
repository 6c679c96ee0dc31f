// Package commands implements the sfapi CLI commands.
package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/superfaktura-tools/sfapi/internal/constants"
	"github.com/superfaktura-tools/sfapi/pkg/sfapi"
	"github.com/superfaktura-tools/sfapi/pkg/sfclient"
)

// newAPIClient builds a client from the CLI configuration: viper-managed
// config file and SFAPI_* environment first, SUPERFAKTURA_* environment as a
// fallback via NewFromEnv.
func newAPIClient() (sfapi.Client, error) {
	config := &sfapi.Config{
		Email:     viper.GetString("email"),
		APIKey:    viper.GetString("api_key"),
		CompanyID: viper.GetString("company_id"),
		Country:   viper.GetString("country"),
		BaseURL:   viper.GetString("base_url"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = newLogger()
	}

	if config.Email == "" && config.APIKey == "" {
		return sfclient.NewFromEnv()
	}

	cli, err := sfclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("building API client: %w", err)
	}

	return cli, nil
}

// newLogger builds the zerolog-backed sfapi.Logger used by the CLI and the
// MCP server.
func newLogger() sfapi.Logger {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	return &zerologAdapter{logger: logger}
}

// zerologAdapter adapts zerolog to the sfapi.Logger interface.
type zerologAdapter struct {
	logger zerolog.Logger
}

func (l *zerologAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug().Fields(fields).Msg(msg)
}

func (l *zerologAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info().Fields(fields).Msg(msg)
}

func (l *zerologAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn().Fields(fields).Msg(msg)
}

func (l *zerologAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error().Fields(fields).Msg(msg)
}

// renderEnvelope prints a result envelope in the requested output format.
// Failure envelopes exit non-zero after printing, so scripts can branch on
// the exit code even though the API layer never raises for remote failures.
func renderEnvelope(env sfapi.Envelope) error {
	output := viper.GetString("output")

	switch output {
	case constants.FormatJSON, constants.FormatTable:
		data, err := json.MarshalIndent(env, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}

		fmt.Println(string(data))
	case constants.FormatYAML:
		data, err := yaml.Marshal(env)
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}

		fmt.Print(string(data))
	default:
		return constants.ErrInvalidOutputFormat
	}

	if env.Failed() {
		return fmt.Errorf("remote operation failed: %s", env.ErrorMessage())
	}

	return nil
}

// renderList prints a listing envelope as a table of the given entity
// columns. Non-table output formats and unexpected response shapes fall back
// to renderEnvelope.
func renderList(env sfapi.Envelope, entity string, columns []string) error {
	if viper.GetString("output") != constants.FormatTable || env.Failed() {
		return renderEnvelope(env)
	}

	items, ok := env["items"].([]interface{})
	if !ok {
		return renderEnvelope(env)
	}

	if len(items) == 0 {
		fmt.Println("No results found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)

	header := make([]interface{}, 0, len(columns))
	for _, col := range columns {
		header = append(header, col)
	}

	table.Header(header...)

	for _, item := range items {
		wrapper, ok := item.(map[string]interface{})
		if !ok {
			continue
		}

		obj, ok := wrapper[entity].(map[string]interface{})
		if !ok {
			continue
		}

		row := make([]interface{}, 0, len(columns))

		for _, col := range columns {
			value, ok := obj[col]
			if !ok || value == nil {
				row = append(row, constants.NotAvailable)

				continue
			}

			row = append(row, fmt.Sprint(value))
		}

		_ = table.Append(row...)
	}

	return table.Render()
}
