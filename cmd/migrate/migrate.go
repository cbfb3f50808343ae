package migrate

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/xiaomi388/bookshelf/pkg/config"
	"github.com/xiaomi388/bookshelf/pkg/persistence"
)

var (
	fromBackend  string
	toBackend    string
	sourcePath   string
	destPath     string
	updateConfig bool
)

var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "migrate the catalog between storage backends",
	Long:  `Migrate the book catalog from one storage backend to another (e.g. json to sqlite).`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd)
	},
}

func init() {
	MigrateCmd.Flags().StringVar(&fromBackend, "from", persistence.BackendJSON, "source backend (json or sqlite)")
	MigrateCmd.Flags().StringVar(&toBackend, "to", persistence.BackendSQLite, "destination backend (json or sqlite)")
	MigrateCmd.Flags().StringVar(&sourcePath, "source", "", "source file path (defaults based on backend)")
	MigrateCmd.Flags().StringVar(&destPath, "dest", "", "destination file path (defaults based on backend)")
	MigrateCmd.Flags().BoolVar(&updateConfig, "update-config", false, "point the config file at the destination afterwards")
}

func runMigrate(cmd *cobra.Command) error {
	if fromBackend == toBackend && sourcePath == destPath {
		return fmt.Errorf("source and destination are the same: %s", fromBackend)
	}
	if fromBackend == persistence.BackendMemory || toBackend == persistence.BackendMemory {
		return fmt.Errorf("the memory backend cannot be migrated")
	}

	src, err := persistence.NewStoreWithBackend(fromBackend, sourcePath)
	if err != nil {
		return fmt.Errorf("failed to open source store: %w", err)
	}
	defer src.Close()

	dst, err := persistence.NewStoreWithBackend(toBackend, destPath)
	if err != nil {
		return fmt.Errorf("failed to open destination store: %w", err)
	}
	defer dst.Close()

	books, err := src.LoadBooks()
	if err != nil {
		return fmt.Errorf("failed to load from source: %w", err)
	}

	if err := dst.DumpBooks(books); err != nil {
		return fmt.Errorf("failed to write to destination: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Successfully migrated %d book(s) from %s to %s.\n", len(books), fromBackend, toBackend)

	if !updateConfig {
		fmt.Fprintf(out, "Update %s to use the new backend:\n", config.ConfigPath)
		fmt.Fprintln(out, "  storage:")
		fmt.Fprintf(out, "    backend: %s\n", toBackend)
		if destPath != "" {
			fmt.Fprintf(out, "    path: %s\n", destPath)
		}
		return nil
	}

	cfg, err := config.Load(config.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Storage.Backend = toBackend
	cfg.Storage.Path = destPath
	if err := config.Dump(config.ConfigPath, cfg); err != nil {
		return fmt.Errorf("failed to update config: %w", err)
	}
	logrus.WithField("config", config.ConfigPath).Info("config now points at the migrated catalog")
	return nil
}
