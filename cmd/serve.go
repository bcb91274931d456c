package cmd

import (
	"context"
	"log/slog"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/taskdock/taskd/internal/server"
	"github.com/taskdock/taskd/store"
)

// serveCmd starts the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the task HTTP API server",
	Long: `Start the HTTP API server. Tasks are loaded from the data file on
startup and every mutation is persisted back before it is acknowledged.`,
	Run: func(cmd *cobra.Command, args []string) {
		config, err := GetConfig()
		if err != nil {
			HandleFatalError("Failed to load configuration", err)
		}

		st, err := GetStore()
		if err != nil {
			HandleFatalError("Failed to initialize task store at "+config.Data.File, err)
		}

		srv := server.New(config.Server.Host, config.Server.Port, st)

		var wg sync.WaitGroup
		errChan := make(chan error, 1)
		srv.Start(&wg, errChan)
		slog.Info("server started", "addr", srv.Addr(), "dataFile", config.Data.File)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		select {
		case err := <-errChan:
			HandleFatalError("Server failed", err)
		case <-ctx.Done():
		}

		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			PrintError("Graceful shutdown failed", err)
		}
		wg.Wait()
	},
}

// GetStore initializes and returns the task store from the effective config.
func GetStore() (store.TaskStore, error) {
	config, err := GetConfig()
	if err != nil {
		return nil, err
	}

	s := store.NewFileTaskStore(nil)
	if err := s.Initialize(map[string]string{
		"dataFile": config.Data.File,
	}); err != nil {
		return nil, err
	}
	return s, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Flag defaults mirror the viper defaults so an unset flag does not
	// shadow a configured value.
	serveCmd.Flags().Int("port", 8000, "port to listen on")
	serveCmd.Flags().String("host", "", "host to bind")
	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
}
