package save

import (
	"math"
	"math/rand"
	"testing"
)

func TestGenerateKey_Range(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		key := GenerateKey(rng)
		if key < keyMin || key > keyMax {
			t.Fatalf("key %d outside [%d, %d]", key, keyMin, keyMax)
		}
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	original := map[string]any{
		"dollar":  250.5,
		"arobase": 1.23456,
		"nested": map[string]any{
			"count":   float64(3),
			"history": []any{70.0, 71.5, 69.25},
		},
		"name":    "quicksave",
		"victory": false,
	}

	key := int64(123456)
	decoded := Decode(Encode(original, key), key).(map[string]any)

	if got := decoded["dollar"].(float64); math.Abs(got-250.5) > 1e-9 {
		t.Errorf("dollar = %v, want 250.5", got)
	}
	if got := decoded["name"].(string); got != "quicksave" {
		t.Errorf("string leaf changed: %q", got)
	}
	if got := decoded["victory"].(bool); got != false {
		t.Errorf("bool leaf changed: %v", got)
	}

	nested := decoded["nested"].(map[string]any)
	if got := nested["count"].(float64); math.Abs(got-3) > 1e-9 {
		t.Errorf("count = %v, want 3", got)
	}
	history := nested["history"].([]any)
	for i, want := range []float64{70, 71.5, 69.25} {
		if got := history[i].(float64); math.Abs(got-want) > 1e-9 {
			t.Errorf("history[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestEncode_ScramblesNumbers(t *testing.T) {
	encoded := Encode(map[string]any{"dollar": 100.0}, 50000).(map[string]any)
	if got := encoded["dollar"].(float64); got != 5000000 {
		t.Errorf("encoded dollar = %v, want 5000000", got)
	}
}

func TestDecode_ZeroKeyPassthrough(t *testing.T) {
	data := map[string]any{"dollar": 100.0}
	decoded := Decode(data, 0).(map[string]any)
	if got := decoded["dollar"].(float64); got != 100 {
		t.Errorf("zero-key decode changed value: %v", got)
	}
}

func TestTransform_IntLeaves(t *testing.T) {
	encoded := Encode(map[string]any{"a": 3, "b": int64(4)}, 2).(map[string]any)
	if got := encoded["a"].(float64); got != 6 {
		t.Errorf("int leaf = %v, want 6", got)
	}
	if got := encoded["b"].(float64); got != 8 {
		t.Errorf("int64 leaf = %v, want 8", got)
	}
}
