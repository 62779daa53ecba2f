package cli

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"inventory/internal/config"
	"inventory/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  "Starts the inventory HTTP server on APP_PORT, backed by DATABASE_DSN or an in-memory store",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		app, err := server.New(cfg)
		if err != nil {
			log.Fatalf("Failed to build server: %v", err)
		}

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		go func() {
			log.Printf("Starting server on port %s", cfg.AppPort)
			if err := app.Listen(cfg.AppPort); err != nil {
				log.Fatalf("Server failed to start: %v", err)
			}
		}()

		<-quit
		log.Println("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
		log.Println("Server gracefully stopped")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
