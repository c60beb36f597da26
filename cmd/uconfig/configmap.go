package main

import (
	"github.com/spf13/cobra"

	"github.com/nauticalab/uconfig/internal/cli"
)

var (
	// ConfigMap command flags
	configMapName      string
	configMapNamespace string
	configMapApply     bool
)

// configMapCmd represents the configmap command
var configMapCmd = &cobra.Command{
	Use:   "configmap <file>",
	Short: "Render a config as a Kubernetes ConfigMap",
	Long: `Render a config as a ConfigMap manifest holding the saved JSON document,
or apply it to the current cluster.

Examples:
  uconfig configmap app.yaml --namespace apps
  uconfig configmap app.yaml --name app-settings --apply`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunConfigMap(cmd.Context(), cmd.OutOrStdout(), args[0], cli.ConfigMapOptions{
			Name:      configMapName,
			Namespace: stringFlag(cmd, "namespace", configMapNamespace, settings.Namespace),
			Apply:     configMapApply,
		})
	},
}

func init() {
	configMapCmd.Flags().StringVar(&configMapName, "name", "", "ConfigMap name (defaults to the config name)")
	configMapCmd.Flags().StringVarP(&configMapNamespace, "namespace", "n", "default", "Namespace of the ConfigMap")
	configMapCmd.Flags().BoolVar(&configMapApply, "apply", false, "Create or update the ConfigMap in the cluster")
}
