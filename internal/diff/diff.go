// Package diff computes the minimal operation needed to converge a remote
// resource toward a declared desired state.
package diff

import "strings"

// Op enumerates reconcile plan operations.
type Op string

const (
	OpNone   Op = "none"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Plan is the operation the reconciler must apply, with the attribute keys to
// change when Op is OpUpdate.
type Plan struct {
	Op     Op
	Fields []string
}

// Field pairs one attribute's declared and observed values.
type Field struct {
	Key     string
	Desired string
	Current string
}

// Changed returns the keys whose desired value differs from the current one.
// An empty desired value means the attribute was not declared and is skipped.
// Comparison is case-insensitive exact match; attributes the API does not echo
// back must simply not be passed in. Keys keep their input order.
func Changed(fields []Field) []string {
	var out []string
	for _, f := range fields {
		if f.Desired == "" {
			continue
		}
		if !strings.EqualFold(f.Desired, f.Current) {
			out = append(out, f.Key)
		}
	}
	return out
}

// Resolve maps fetch and comparison results onto a Plan. exists reports
// whether the resource currently exists remotely, absent whether the declared
// state asks for its removal.
func Resolve(exists, absent bool, changed []string) Plan {
	switch {
	case absent && !exists:
		return Plan{Op: OpNone}
	case absent:
		return Plan{Op: OpDelete}
	case !exists:
		return Plan{Op: OpCreate}
	case len(changed) > 0:
		return Plan{Op: OpUpdate, Fields: changed}
	default:
		return Plan{Op: OpNone}
	}
}
