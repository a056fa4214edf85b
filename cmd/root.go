package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/turmab/helpdesk/internal/app"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "helpdesk",
	Short: "API de helpdesk para gestão de chamados, clientes e técnicos",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Inicia o servidor HTTP da API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "diretório do arquivo de configuração")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(genconfigCmd)
}

// Execute é o ponto de entrada dos comandos.
func Execute() {
	// Variáveis de .env complementam o ambiente em desenvolvimento
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func runServe(ctx context.Context) error {
	application, err := app.NewApp(ctx, configPath)
	if err != nil {
		return err
	}
	return application.Run(ctx)
}
