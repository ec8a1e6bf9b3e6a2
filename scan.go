// File: params/scan.go
package params

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the resolved parameter values into target, a non-nil
// pointer to a struct or map. Dotted parameter names map to nested
// fields; field mapping uses the "param" struct tag. Only parameters
// with a resolved value (explicit or default) are decoded, so optional
// unset parameters leave the target's own zero values alone.
func (r *Registry) Scan(target any) error {
	if err := r.ensureBuilt(); err != nil {
		return err
	}

	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be a non-nil pointer, got %T", target)
	}

	nested := make(map[string]any)
	for _, it := range r.items {
		if raw, ok := it.entry.Raw(); ok {
			setNestedValue(nested, it.name, raw)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "param",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(nested); err != nil {
		return fmt.Errorf("failed to scan parameters into %T: %w", target, err)
	}
	return nil
}
