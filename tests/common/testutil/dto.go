//go:build unit || integration

package testutil

import (
	"encoding/json"
	"testing"
)

// DtoMap round-trips a request struct through JSON into a map and applies
// the given mutations. Lets bind-validation tests start from a valid payload
// and break one field at a time.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal %T: %v", v, err)
	}
	m := map[string]any{}
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal into map: %v", err)
	}
	for _, mut := range muts {
		mut(m)
	}
	return m
}

// Field sets key to value in a DtoMap payload; a nil value removes the key.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
