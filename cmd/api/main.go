package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"artistly/internal/app"
	"artistly/internal/config"
	"artistly/internal/dataset"
	"artistly/internal/domain/application"
)

const (
	Version = "0.1.0"
	appName = "artistly"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type cliFlags struct {
	port     string
	logLevel string
}

func rootCmd() *cobra.Command {
	var flags cliFlags

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Artist booking catalog and onboarding API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd, flags)
		},
	}
	cmd.PersistentFlags().StringVar(&flags.port, "port", "", "HTTP port (overrides HTTP_PORT)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd, flags)
		},
	})
	cmd.AddCommand(facetsCmd())
	cmd.AddCommand(validateCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func loadConfig(cmd *cobra.Command, flags cliFlags) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("port") {
		cfg.HTTPPort = flags.port
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	return cfg, nil
}

func facetsCmd() *cobra.Command {
	var artistsPath string
	cmd := &cobra.Command{
		Use:   "facets",
		Short: "Print the facet values of a catalog file",
		RunE: func(cmd *cobra.Command, args []string) error {
			artists, err := dataset.NewLoader(artistsPath, "").Artists(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), app.ExtractFacets(artists).Sorted())
		},
	}
	cmd.Flags().StringVar(&artistsPath, "catalog", "", "Artists YAML file (defaults to the embedded catalog)")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate an onboarding application read from a JSON file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer file.Close()
				in = file
			}
			var fields application.Fields
			if err := json.NewDecoder(in).Decode(&fields); err != nil {
				return fmt.Errorf("decode application: %w", err)
			}
			result := app.Validate(fields)
			if err := writeJSON(cmd.OutOrStdout(), map[string]any{"valid": result.Valid(), "fields": result.Fields}); err != nil {
				return err
			}
			if !result.Valid() {
				return fmt.Errorf("application has %d invalid field(s)", len(result.Fields))
			}
			return nil
		},
	}
}

func writeJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
