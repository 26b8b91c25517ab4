// @title         kirana-store API
// @version       1.0
// @description   Grocery storefront that forwards orders and free-text requests to a Groq-hosted LLM.
// @BasePath      /
// @schemes       http
// @host          localhost:8080
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:           "kirana",
		Short:         "Kirana storefront with a Groq-backed assistant",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var files []string
			if envFile != "" {
				files = append(files, envFile)
			}
			return run(cmd.Context(), files)
		},
	}

	flags := cmd.Flags()
	flags.String("port", "8080", "HTTP listen port")
	flags.String("mode", "direct", "assistant mode: direct or memory")
	flags.StringVar(&envFile, "env-file", "", "path to a .env file (default ./.env when present)")

	_ = viper.BindPFlag("port", flags.Lookup("port"))
	_ = viper.BindPFlag("assistant_mode", flags.Lookup("mode"))

	return cmd
}
