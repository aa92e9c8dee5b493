// Package conform verifies ownership policies against the allowed
// UML nesting rules.
//
// A policy is given as a func and checked against rule tables, e.g.
//
//	err := conform.VerifyNesting(umd.CanNest)
package conform

import (
	"errors"
	"fmt"

	"github.com/gregoryv/umd"
)

// VerifyNesting verifies the kind pairing of a nesting policy against
// the given rules. If no rules are given, RulesNesting is used.
func VerifyNesting(fn func(container, contained umd.Kind) bool, rules ...RuleNesting) error {
	var all []error
	if len(rules) == 0 {
		rules = RulesNesting
	}
	for _, rule := range rules {
		if err := rule.Verify(fn); err != nil {
			all = append(all, err)
		}
	}
	return errors.Join(all...)
}

var RulesNesting = []RuleNesting{
	{true, umd.KindPackage, umd.KindClass},
	{true, umd.KindPackage, umd.KindInterface},
	{true, umd.KindPackage, umd.KindEnumeration},
	{true, umd.KindPackage, umd.KindStereotype},
	{true, umd.KindPackage, umd.KindPackage},
	{true, umd.KindPackage, umd.KindProfile},
	{true, umd.KindProfile, umd.KindStereotype},
	{true, umd.KindPackage, umd.KindDiagram},
	{true, umd.KindClass, umd.KindClass},
	{true, umd.KindClass, umd.KindInterface},
	{true, umd.KindClass, umd.KindDataType},

	{false, umd.KindClass, umd.KindPackage},
	{false, umd.KindClass, umd.KindDiagram},
	{false, umd.KindInterface, umd.KindClass},
	{false, umd.KindPackage, umd.KindAction},
	{false, umd.KindPackage, umd.KindLifeline},
	{false, umd.KindLifeline, umd.KindClass},
	{false, umd.KindDiagram, umd.KindClass},
}

// RuleNesting expects Exp when asking if Container may own
// Contained.
type RuleNesting struct {
	Exp       bool
	Container umd.Kind
	Contained umd.Kind
}

func (r *RuleNesting) Verify(fn func(container, contained umd.Kind) bool) error {
	got := fn(r.Container, r.Contained)
	if r.Exp && !got {
		return fmt.Errorf("%v should be able to own %v", r.Container, r.Contained)
	}
	if !r.Exp && got {
		return fmt.Errorf("%v should NOT be able to own %v", r.Container, r.Contained)
	}
	return nil
}
