package device

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// UnknownDeviceError is returned when a lookup key matches no registered
// device. Suggestion holds the closest known key, if any.
type UnknownDeviceError struct {
	ID         string
	Suggestion string
}

func (e *UnknownDeviceError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown device %q (did you mean %q?)", e.ID, e.Suggestion)
	}
	return fmt.Sprintf("unknown device %q", e.ID)
}

var (
	registryOnce sync.Once
	registry     map[string]Spec
)

func buildRegistry() {
	registry = make(map[string]Spec)
	for _, brand := range [][]definition{
		kindleDevices,
		koboDevices,
		tolinoDevices,
		pocketbookDevices,
		appleDevices,
	} {
		for _, def := range brand {
			registry[def.key] = def.spec()
		}
	}
}

// Lookup returns the spec registered under id.
func Lookup(id string) (Spec, error) {
	registryOnce.Do(buildRegistry)

	spec, ok := registry[id]
	if !ok {
		return Spec{}, &UnknownDeviceError{ID: id, Suggestion: closestKey(id)}
	}
	return spec, nil
}

// Keys returns all registered device ids, sorted.
func Keys() []string {
	registryOnce.Do(buildRegistry)

	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// All returns a copy of the registry keyed by device id.
func All() map[string]Spec {
	registryOnce.Do(buildRegistry)

	out := make(map[string]Spec, len(registry))
	for k, v := range registry {
		out[k] = v
	}
	return out
}

// ByBrand returns the specs whose id starts with the given brand prefix,
// e.g. "kindle" or "pocketbook". Brand grouping is derived from keys, not
// stored state.
func ByBrand(brand string) map[string]Spec {
	registryOnce.Do(buildRegistry)

	prefix := strings.ToLower(brand)
	out := make(map[string]Spec)
	for k, v := range registry {
		if strings.HasPrefix(k, prefix) {
			out[k] = v
		}
	}
	return out
}

// closestKey finds the registered key with the smallest edit distance to
// id, ignoring candidates that are not reasonably close.
func closestKey(id string) string {
	best := ""
	bestDist := len(id)/2 + 2
	for _, key := range Keys() {
		d := editDistance(id, key)
		if d < bestDist {
			best = key
			bestDist = d
		}
	}
	return best
}

func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, min(cur[j-1]+1, prev[j-1]+cost))
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
