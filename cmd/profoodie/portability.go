package profoodie

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IcodeAlpha/profoodie/internal/config"
	"github.com/IcodeAlpha/profoodie/internal/storage"
)

var (
	exportOut string
	importIn  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all local data as a JSON snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(exportOut) == "" {
			return fmt.Errorf("--out is required")
		}
		return withStorage(func(cfg config.Config, kv storage.Store) error {
			keys, err := kv.Keys()
			if err != nil {
				return err
			}
			snapshot := make(map[string]json.RawMessage, len(keys))
			for _, key := range keys {
				value, ok, err := kv.Get(key)
				if err != nil {
					return err
				}
				if ok {
					snapshot[key] = json.RawMessage(value)
				}
			}
			b, err := json.MarshalIndent(snapshot, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal snapshot: %w", err)
			}
			if err := os.WriteFile(exportOut, b, 0o644); err != nil {
				return fmt.Errorf("write snapshot: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d keys to %s\n", len(snapshot), exportOut)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a JSON snapshot, replacing current data key by key",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(importIn) == "" {
			return fmt.Errorf("--in is required")
		}
		raw, err := os.ReadFile(importIn)
		if err != nil {
			return fmt.Errorf("read snapshot: %w", err)
		}
		var snapshot map[string]json.RawMessage
		if err := json.Unmarshal(raw, &snapshot); err != nil {
			return fmt.Errorf("parse snapshot: %w", err)
		}
		return withStorage(func(cfg config.Config, kv storage.Store) error {
			for key, value := range snapshot {
				if err := kv.Put(key, value); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d keys from %s\n", len(snapshot), importIn)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file path")
	importCmd.Flags().StringVar(&importIn, "in", "", "Input file path")
	_ = exportCmd.MarkFlagRequired("out")
	_ = importCmd.MarkFlagRequired("in")
}
