package document

import (
	"bytes"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"sigs.k8s.io/yaml"

	"github.com/nauticalab/uconfig/pkg/uconfig"
)

// DecodePatch parses an RFC 6902 patch. YAML patches are converted to JSON
// first.
func DecodePatch(data []byte, format Format) (jsonpatch.Patch, error) {
	if format == FormatYAML {
		converted, err := yaml.YAMLToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("failed to convert YAML patch: %w", err)
		}
		data = converted
	}
	patch, err := jsonpatch.DecodePatch(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode patch: %w", err)
	}
	return patch, nil
}

// ApplyPatch applies patch to the saved form of cfg and loads the result as
// a new config with the same name. Keys keep their position from cfg; keys
// added by the patch follow them.
func ApplyPatch(cfg *uconfig.Config, patch jsonpatch.Patch) (*uconfig.Config, error) {
	var buf bytes.Buffer
	if err := cfg.Encode(&buf); err != nil {
		return nil, err
	}

	out, err := patch.Apply(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to apply patch to %s: %w", cfg.Name(), err)
	}

	patched := uconfig.NewMap()
	if err := patched.UnmarshalJSON(out); err != nil {
		return nil, fmt.Errorf("patch result for %s is not an object: %w", cfg.Name(), err)
	}

	return FromFields(cfg.Name(), keepOrder(cfg.Flattened(), patched))
}

// keepOrder returns patched with map keys ordered as in orig. Lists are
// taken from patched unchanged.
func keepOrder(orig, patched *uconfig.Map) *uconfig.Map {
	out := uconfig.NewMap()
	orig.Range(func(key string, before uconfig.Value) bool {
		after, ok := patched.Get(key)
		if !ok {
			return true
		}
		if before.Kind() == uconfig.KindMap && after.Kind() == uconfig.KindMap {
			after = uconfig.MapValue(keepOrder(before.AsMap(), after.AsMap()))
		}
		out.Set(key, after)
		return true
	})
	patched.Range(func(key string, v uconfig.Value) bool {
		if !out.Has(key) {
			out.Set(key, v)
		}
		return true
	})
	return out
}
