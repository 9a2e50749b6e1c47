// Package main はmarketerのコマンドラインツールです。
// サーバーと同じ設定（環境変数・.env・config.yaml）を読み込みます。
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"marketer_backend/internal/platform/config"
)

// cfg はPersistentPreRunEで読み込まれます。
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "marketer",
	Short: "CRM and email marketing backend tools",
	Long: `marketer runs one-off tasks against the same configuration as the API server:
company research, contact enrichment, database migration and session cleanup.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			cfg.Log.Level = "debug"
		}
		cfg.Log.Format = "text"
		slog.SetDefault(cfg.Log.NewLogger())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

// printJSON はvをインデント付きJSONで書き出します。
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
