package cli

import (
	"context"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"

	"github.com/nauticalab/uconfig/internal/document"
	"github.com/nauticalab/uconfig/internal/k8s"
)

// ConfigMapOptions holds configuration for the configmap command
type ConfigMapOptions struct {
	Name      string
	Namespace string
	// Apply sends the ConfigMap to the cluster instead of printing it
	Apply bool
	// Client overrides the cluster client built from kubeconfig
	Client *k8s.Client
}

// RunConfigMap renders the config at path as a ConfigMap manifest, or
// applies it when opts.Apply is set.
func RunConfigMap(ctx context.Context, w io.Writer, path string, opts ConfigMapOptions) error {
	cfg, err := document.LoadFile(path)
	if err != nil {
		return err
	}

	name := opts.Name
	if name == "" {
		name = cfg.Name()
	}

	cm, err := k8s.BuildConfigMap(name, opts.Namespace, cfg)
	if err != nil {
		return err
	}

	if !opts.Apply {
		data, err := yaml.Marshal(cm)
		if err != nil {
			return fmt.Errorf("failed to render ConfigMap %s: %w", cm.Name, err)
		}
		_, err = w.Write(data)
		return err
	}

	client := opts.Client
	if client == nil {
		if client, err = k8s.NewClient(); err != nil {
			return fmt.Errorf("failed to create k8s client: %w", err)
		}
	}

	printInfo(w, "applying ConfigMap %s/%s", cm.Namespace, cm.Name)
	applied, err := client.ApplyConfigMap(ctx, cm)
	if err != nil {
		return err
	}
	printSuccess(w, "ConfigMap %s/%s holds %s", applied.Namespace, applied.Name, k8s.DataKey(cfg))
	return nil
}
