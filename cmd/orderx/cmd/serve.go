package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/orderx/internal/server"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
	maxBodySize  int64
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for building Order-X documents.

The API provides endpoints for:
  - GET  /api/v1/profiles     - List profiles
  - POST /api/v1/orders/xml   - Order definition in, Order-X XML out
  - POST /api/v1/orders/pdf   - Multipart order + pdf in, hybrid PDF out
  - POST /api/v1/info         - Summarize an Order-X XML document
  - POST /api/v1/validate     - Check an Order-X XML document
  - GET  /health              - Health check

Examples:
  # Start server on default port
  orderx serve

  # Start on custom address with a default profile
  orderx serve --address :9090 -p comfort

  # Start in debug mode
  orderx serve --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", "", "Server listen address (env: ORDERX_ADDRESS, default :8080)")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 2*time.Minute, "HTTP write timeout")
	serveCmd.Flags().Int64Var(&maxBodySize, "max-body", 32<<20, "Maximum request body size in bytes")
}

func runServe(cmd *cobra.Command, args []string) error {
	if serverAddr == "" {
		serverAddr = os.Getenv("ORDERX_ADDRESS")
	}
	if serverAddr == "" {
		serverAddr = ":8080"
	}

	config := &server.Config{
		Address:      serverAddr,
		Profile:      profileName,
		Creator:      creator,
		MaxBodyBytes: maxBodySize,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		Debug:        serverDebug,
		Logger:       logger(),
	}

	srv := server.NewServer(config)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting server on %s\n", serverAddr)
	if profileName != "" {
		fmt.Printf("Default profile: %s\n", profileName)
	}

	if err := srv.Run(ctx); err != nil {
		return err
	}
	fmt.Println("Server stopped")
	return nil
}
