package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/turmab/helpdesk/pkg/config"
	"gopkg.in/yaml.v3"
)

var genconfigOutput string

var genconfigCmd = &cobra.Command{
	Use:   "genconfig",
	Short: "Gera um arquivo config.yaml com os valores padrão",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(config.Default())
		if err != nil {
			return fmt.Errorf("falha ao serializar configuração: %w", err)
		}

		if genconfigOutput == "-" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}

		if _, err := os.Stat(genconfigOutput); err == nil {
			return fmt.Errorf("arquivo %s já existe, remova antes de gerar", genconfigOutput)
		}

		if err := os.WriteFile(genconfigOutput, data, 0o644); err != nil {
			return fmt.Errorf("falha ao gravar %s: %w", genconfigOutput, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "configuração gerada em %s\n", genconfigOutput)
		return nil
	},
}

func init() {
	genconfigCmd.Flags().StringVarP(&genconfigOutput, "output", "o", "config.yaml", "arquivo de saída (use - para stdout)")
}
