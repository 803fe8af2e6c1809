package domain

// ResourceKind enumerates the resources cached per module.
type ResourceKind int

const (
	// ResourceTemplate is a view template file.
	ResourceTemplate ResourceKind = iota
	// ResourceControllerDir is a controller directory.
	ResourceControllerDir
	// ResourceHelper is a helper file.
	ResourceHelper
)

// String returns the kind name.
func (k ResourceKind) String() string {
	switch k {
	case ResourceTemplate:
		return "template"
	case ResourceControllerDir:
		return "controller"
	case ResourceHelper:
		return "helper"
	default:
		return "unknown"
	}
}

// ResolvedEntry is the single winning location of a (module, name) pair for one kind.
type ResolvedEntry struct {
	Kind   ResourceKind
	Module string
	Name   string
	Path   string
}
