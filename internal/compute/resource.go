// Package compute simulates provider-side resource creation for the
// supported cloud providers. No real infrastructure calls are made; every
// creator validates its required parameters and issues a synthetic,
// provider-prefixed resource ID.
package compute

import (
	"fmt"
	"hash/fnv"
	"sort"
)

// NetworkCreator creates a network resource for one provider
type NetworkCreator interface {
	// Create validates params and provisions the network.
	// Returns the synthetic resource ID.
	Create(params map[string]any) (string, error)

	// Info returns the metadata recorded at creation time
	Info() map[string]any
}

// StorageCreator creates a storage resource for one provider
type StorageCreator interface {
	// Create validates params and provisions the storage.
	// Returns the synthetic resource ID.
	Create(params map[string]any) (string, error)

	// Info returns the metadata recorded at creation time
	Info() map[string]any
}

// VMCreator creates a VM resource for one provider. The VM is associated
// with an already-created network and storage resource.
type VMCreator interface {
	// Create validates params and provisions the VM, linking it to the
	// given network and storage IDs. Returns the synthetic resource ID.
	Create(params map[string]any, networkID, storageID string) (string, error)

	// Info returns the metadata recorded at creation time, including the
	// linked network and storage IDs
	Info() map[string]any
}

// firstMissing returns the first absent key from required, in declared
// order. Required fields are checked one at a time so the error always
// names a single field.
func firstMissing(params map[string]any, required []string) (string, bool) {
	for _, name := range required {
		if _, ok := params[name]; !ok {
			return name, true
		}
	}
	return "", false
}

// resourceID derives a deterministic, opaque identifier from the creation
// parameters. Identity comes from content hashing, not a counter; collisions
// are possible and not defended against.
func resourceID(prefix string, params map[string]any, extra ...string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := fnv.New32a()
	for _, k := range keys {
		fmt.Fprintf(h, "%s=%v;", k, params[k])
	}
	for _, e := range extra {
		fmt.Fprintf(h, "%s;", e)
	}

	return fmt.Sprintf("%s-%d", prefix, h.Sum32()%1000)
}
