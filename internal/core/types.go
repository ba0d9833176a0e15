package core

// Size describes the dimensions of a generated grid.
type Size struct {
	W int
	H int
}

// Generator defines the contract a step-driven synthesizer must implement.
// Reset arms the pipeline for a seed; each Step call executes exactly one
// outer-loop iteration and reports whether work remains, so an external
// scheduler decides how much generation happens per tick.
type Generator interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step() bool
	Cells() []uint8
}

// Factory constructs a Generator using an optional configuration map.
type Factory func(cfg map[string]string) (Generator, error)

var generators = map[string]Factory{}

// Register adds a generator factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	generators[name] = f
}

// Generators exposes the registry of available generator factories.
func Generators() map[string]Factory {
	return generators
}
