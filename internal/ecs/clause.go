package ecs

import "fmt"

// TypeClause selects ComponentTypes: a type passes when it has every bit of
// All and at least one bit of Any. Zero fields don't constrain.
type TypeClause struct {
	All ComponentType
	Any ComponentType
}

func (tcl TypeClause) String() string {
	switch {
	case tcl.All != 0 && tcl.Any != 0:
		return fmt.Sprintf("All(%v)&Any(%v)", tcl.All, tcl.Any)
	case tcl.Any != 0:
		return fmt.Sprintf("Any(%v)", tcl.Any)
	case tcl.All != 0:
		return fmt.Sprintf("All(%v)", tcl.All)
	}
	return "*"
}

// Test reports whether t passes the clause.
func (tcl TypeClause) Test(t ComponentType) bool {
	if tcl.All != 0 && !t.HasAll(tcl.All) {
		return false
	}
	if tcl.Any != 0 && !t.HasAny(tcl.Any) {
		return false
	}
	return true
}

// AllClause passes every type.
var AllClause = TypeClause{}
