// Package specification expresses query predicates that can be evaluated in
// memory and rendered as SQL WHERE fragments.
package specification

import "strings"

// Specification defines the interface for query specifications
type Specification interface {
	// IsSatisfiedBy checks if the specification is satisfied by the given object
	IsSatisfiedBy(candidate interface{}) bool
	// ToSQL converts the specification to SQL WHERE clause and parameters
	ToSQL() (string, []interface{})
}

// All matches every candidate. It renders as an always-true predicate.
func All() Specification {
	return allSpecification{}
}

// IsAll reports whether spec is the unrestricted specification.
func IsAll(spec Specification) bool {
	_, ok := spec.(allSpecification)
	return spec == nil || ok
}

// And combines specs so that all of them must hold. Nil and All operands are
// dropped; with nothing left the result is All.
func And(specs ...Specification) Specification {
	return combine(" AND ", true, specs)
}

// Or combines specs so that at least one must hold. Nil operands are dropped;
// an All operand makes the whole disjunction All.
func Or(specs ...Specification) Specification {
	kept := make([]Specification, 0, len(specs))
	for _, s := range specs {
		if s == nil {
			continue
		}
		if IsAll(s) {
			return All()
		}
		kept = append(kept, s)
	}
	return combine(" OR ", false, kept)
}

// Not negates spec.
func Not(spec Specification) Specification {
	return &notSpecification{spec: spec}
}

func combine(op string, conjunction bool, specs []Specification) Specification {
	kept := make([]Specification, 0, len(specs))
	for _, s := range specs {
		if IsAll(s) {
			continue
		}
		kept = append(kept, s)
	}

	switch len(kept) {
	case 0:
		return All()
	case 1:
		return kept[0]
	}
	return &compositeSpecification{op: op, conjunction: conjunction, specs: kept}
}

type allSpecification struct{}

func (allSpecification) IsSatisfiedBy(interface{}) bool { return true }

func (allSpecification) ToSQL() (string, []interface{}) { return "1 = 1", nil }

// compositeSpecification joins its operands with AND or OR
type compositeSpecification struct {
	op          string
	conjunction bool
	specs       []Specification
}

func (s *compositeSpecification) IsSatisfiedBy(candidate interface{}) bool {
	for _, spec := range s.specs {
		if spec.IsSatisfiedBy(candidate) != s.conjunction {
			return !s.conjunction
		}
	}
	return s.conjunction
}

func (s *compositeSpecification) ToSQL() (string, []interface{}) {
	parts := make([]string, len(s.specs))
	var params []interface{}
	for i, spec := range s.specs {
		sql, p := spec.ToSQL()
		parts[i] = sql
		params = append(params, p...)
	}
	return "(" + strings.Join(parts, s.op) + ")", params
}

// notSpecification represents a NOT specification
type notSpecification struct {
	spec Specification
}

func (s *notSpecification) IsSatisfiedBy(candidate interface{}) bool {
	return !s.spec.IsSatisfiedBy(candidate)
}

func (s *notSpecification) ToSQL() (string, []interface{}) {
	sql, params := s.spec.ToSQL()
	return "NOT (" + sql + ")", params
}
