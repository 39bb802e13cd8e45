package models

// ChangeKind classifies a Difference.
type ChangeKind string

const (
	Added    ChangeKind = "Added"
	Removed  ChangeKind = "Removed"
	Modified ChangeKind = "Modified"
)

// Difference is one path-addressed change between two trees.
// Added and Removed records carry Value; Modified records carry
// OldValue and NewValue.
type Difference struct {
	Kind     ChangeKind
	Path     string
	OldValue Value
	NewValue Value
	Value    Value
}
