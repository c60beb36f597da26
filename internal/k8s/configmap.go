package k8s

import (
	"bytes"
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/validation"

	"github.com/nauticalab/uconfig/pkg/uconfig"
)

// Labels applied to every ConfigMap rendered from a config.
const (
	LabelManagedBy = "app.kubernetes.io/managed-by"
	LabelConfig    = "uconfig.nauticalab.io/config"
	ManagerName    = "uconfig"
)

// DataKey is the ConfigMap key holding the JSON document for cfg.
func DataKey(cfg *uconfig.Config) string {
	return cfg.Name() + ".json"
}

// BuildConfigMap renders cfg as a ConfigMap whose single data entry is the
// config saved as JSON.
func BuildConfigMap(name, namespace string, cfg *uconfig.Config) (*corev1.ConfigMap, error) {
	if errs := validation.IsDNS1123Subdomain(name); len(errs) > 0 {
		return nil, fmt.Errorf("invalid ConfigMap name %q: %v", name, errs)
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	var buf bytes.Buffer
	if err := cfg.Encode(&buf); err != nil {
		return nil, fmt.Errorf("failed to render config %s: %w", cfg.Name(), err)
	}

	labels := map[string]string{LabelManagedBy: ManagerName}
	if errs := validation.IsValidLabelValue(cfg.Name()); len(errs) == 0 {
		labels[LabelConfig] = cfg.Name()
	}

	return &corev1.ConfigMap{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "ConfigMap",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
			Labels:    labels,
		},
		Data: map[string]string{
			DataKey(cfg): buf.String(),
		},
	}, nil
}

// ApplyConfigMap creates cm, or replaces the labels and data of the existing
// ConfigMap with the same name.
func (c *Client) ApplyConfigMap(ctx context.Context, cm *corev1.ConfigMap) (*corev1.ConfigMap, error) {
	configMaps := c.clientset.CoreV1().ConfigMaps(cm.Namespace)

	existing, err := configMaps.Get(ctx, cm.Name, metav1.GetOptions{})
	if apierrors.IsNotFound(err) {
		created, err := configMaps.Create(ctx, cm, metav1.CreateOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create ConfigMap %s/%s: %w", cm.Namespace, cm.Name, err)
		}
		return created, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ConfigMap %s/%s: %w", cm.Namespace, cm.Name, err)
	}

	updated := existing.DeepCopy()
	updated.Labels = cm.Labels
	updated.Data = cm.Data
	updated, err = configMaps.Update(ctx, updated, metav1.UpdateOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to update ConfigMap %s/%s: %w", cm.Namespace, cm.Name, err)
	}
	return updated, nil
}

// GetConfigMap retrieves a ConfigMap by namespace and name
func (c *Client) GetConfigMap(ctx context.Context, namespace, name string) (*corev1.ConfigMap, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	cm, err := c.clientset.CoreV1().ConfigMaps(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get ConfigMap %s/%s: %w", namespace, name, err)
	}
	return cm, nil
}
