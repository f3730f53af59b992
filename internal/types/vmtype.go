package types

import "encoding/json"

// VMType represents a workload profile for a virtual machine
type VMType string

// VMType constants define the supported workload profiles
const (
	// VMTypeStandard represents a balanced general-purpose VM
	VMTypeStandard VMType = "standard"

	// VMTypeMemoryOptimized represents a VM sized for memory-heavy workloads
	VMTypeMemoryOptimized VMType = "memory_optimized"

	// VMTypeComputeOptimized represents a VM sized for CPU-heavy workloads
	VMTypeComputeOptimized VMType = "compute_optimized"
)

// String implements the fmt.Stringer interface
func (t VMType) String() string {
	return string(t)
}

// MarshalJSON implements the json.Marshaler interface
func (t VMType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (t *VMType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	*t = VMType(str)
	return nil
}

// IsValid checks if the VM type is supported
func (t VMType) IsValid() bool {
	switch t {
	case VMTypeStandard, VMTypeMemoryOptimized, VMTypeComputeOptimized:
		return true
	default:
		return false
	}
}

// AllVMTypes returns every supported VM type
func AllVMTypes() []VMType {
	return []VMType{VMTypeStandard, VMTypeMemoryOptimized, VMTypeComputeOptimized}
}
