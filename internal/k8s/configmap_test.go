package k8s

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/fake"
	k8stesting "k8s.io/client-go/testing"

	"github.com/nauticalab/uconfig/pkg/uconfig"
)

func testConfig(t *testing.T) *uconfig.Config {
	t.Helper()
	cfg, err := uconfig.New(uconfig.Named("server", uconfig.DefineFunc(func(b *uconfig.Builder) error {
		b.Set("port", 8080)
		b.Set("hosts", uconfig.Tuple{"a", "b"})
		return nil
	})))
	require.NoError(t, err)
	return cfg
}

func TestBuildConfigMap(t *testing.T) {
	cfg := testConfig(t)

	cm, err := BuildConfigMap("server-config", "", cfg)
	require.NoError(t, err)

	assert.Equal(t, "server-config", cm.Name)
	assert.Equal(t, DefaultNamespace, cm.Namespace)
	assert.Equal(t, "ConfigMap", cm.Kind)
	assert.Equal(t, ManagerName, cm.Labels[LabelManagedBy])
	assert.Equal(t, "server", cm.Labels[LabelConfig])
	assert.Equal(t, "{\n  \"port\": 8080,\n  \"hosts\": [\n    \"a\",\n    \"b\"\n  ]\n}", cm.Data["server.json"])

	_, err = BuildConfigMap("Not_Valid", "default", cfg)
	assert.ErrorContains(t, err, "invalid ConfigMap name")
}

func TestClient_ApplyConfigMap(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	t.Run("creates when missing", func(t *testing.T) {
		client := NewClientWithInterface(fake.NewSimpleClientset())

		cm, err := BuildConfigMap("server-config", "apps", cfg)
		require.NoError(t, err)

		applied, err := client.ApplyConfigMap(ctx, cm)
		require.NoError(t, err)
		assert.Equal(t, cm.Data, applied.Data)

		got, err := client.GetConfigMap(ctx, "apps", "server-config")
		require.NoError(t, err)
		assert.Equal(t, cm.Data, got.Data)
	})

	t.Run("updates when present", func(t *testing.T) {
		existing := &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{
				Name:        "server-config",
				Namespace:   "apps",
				Annotations: map[string]string{"keep": "me"},
			},
			Data: map[string]string{"stale.json": "{}"},
		}
		client := NewClientWithInterface(fake.NewSimpleClientset(existing))

		cm, err := BuildConfigMap("server-config", "apps", cfg)
		require.NoError(t, err)

		applied, err := client.ApplyConfigMap(ctx, cm)
		require.NoError(t, err)
		assert.Equal(t, cm.Data, applied.Data)
		assert.NotContains(t, applied.Data, "stale.json")
		assert.Equal(t, "me", applied.Annotations["keep"])
	})

	t.Run("get error", func(t *testing.T) {
		clientset := fake.NewSimpleClientset()
		clientset.PrependReactor("get", "configmaps", func(action k8stesting.Action) (bool, runtime.Object, error) {
			return true, nil, errors.New("api unavailable")
		})
		client := NewClientWithInterface(clientset)

		cm, err := BuildConfigMap("server-config", "apps", cfg)
		require.NoError(t, err)

		_, err = client.ApplyConfigMap(ctx, cm)
		assert.ErrorContains(t, err, "failed to get ConfigMap apps/server-config")
	})
}

func TestClient_GetConfigMapMissing(t *testing.T) {
	client := NewClientWithInterface(fake.NewSimpleClientset())
	_, err := client.GetConfigMap(context.Background(), "", "absent")
	assert.ErrorContains(t, err, "failed to get ConfigMap default/absent")
}
