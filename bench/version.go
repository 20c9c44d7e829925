package bench

// Version information for the parcount benchmark harness.
const (
	// Version is the current version of the harness.
	Version = "0.1.0"

	// VersionMajor is the major version number.
	VersionMajor = 0

	// VersionMinor is the minor version number.
	VersionMinor = 1

	// VersionPatch is the patch version number.
	VersionPatch = 0
)

// Info provides runtime information about the harness.
type Info struct {
	// Version is the harness version string.
	Version string

	// Strategies lists the strategy names in trial order.
	Strategies []string

	// DefaultWorkers is the worker count used when none is given.
	DefaultWorkers int

	// DefaultIterations is the per-worker increment count used when
	// none is given.
	DefaultIterations int
}

// GetInfo returns information about the benchmark harness.
//
// Example:
//
//	info := bench.GetInfo()
//	fmt.Printf("parcount %s, %d strategies\n", info.Version, len(info.Strategies))
func GetInfo() Info {
	return Info{
		Version:           Version,
		Strategies:        Strategies(),
		DefaultWorkers:    4,
		DefaultIterations: 10000,
	}
}
