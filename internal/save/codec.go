package save

import "math/rand"

// Key range for the numeric obfuscation. The key is stored next to the
// payload: this is a reversible scramble, not encryption.
const (
	keyMin = 50000
	keyMax = 1000000
)

// GenerateKey draws a fresh encoding key.
func GenerateKey(rng *rand.Rand) int64 {
	return keyMin + rng.Int63n(keyMax-keyMin+1)
}

// Encode walks an arbitrary tree of maps, slices and scalars and multiplies
// every numeric leaf by the key. Non-numeric values pass through unchanged.
func Encode(value any, key int64) any {
	return transform(value, func(n float64) float64 { return n * float64(key) })
}

// Decode is the inverse of Encode. A zero key leaves values unchanged so a
// malformed document cannot divide by zero.
func Decode(value any, key int64) any {
	if key == 0 {
		return value
	}
	return transform(value, func(n float64) float64 { return n / float64(key) })
}

func transform(value any, fn func(float64) float64) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = transform(item, fn)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = transform(item, fn)
		}
		return out
	case float64:
		return fn(v)
	case float32:
		return fn(float64(v))
	case int:
		return fn(float64(v))
	case int64:
		return fn(float64(v))
	default:
		return v
	}
}
