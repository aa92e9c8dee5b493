package conform

import (
	"errors"
	"fmt"

	"github.com/gregoryv/umd"
)

// VerifyNoCycles verifies that fn refuses every container, contained
// pair where contained already is the container or one of its
// owners. Each rule gets a fresh model.
func VerifyNoCycles(fn func(container, contained *umd.Element) bool, rules ...RuleCycle) error {
	var all []error
	if len(rules) == 0 {
		rules = RulesCycle
	}
	for _, rule := range rules {
		if err := rule.Verify(fn); err != nil {
			all = append(all, err)
		}
	}
	return errors.Join(all...)
}

var RulesCycle = []RuleCycle{
	{"self", 0},
	{"owner", 1},
	{"owner of owner", 2},
	{"root of five", 5},
}

// RuleCycle nests Depth packages below a root and asks if the
// deepest may own the root. Depth 0 asks if the root may own itself.
type RuleCycle struct {
	Name  string
	Depth int
}

func (r *RuleCycle) Verify(fn func(container, contained *umd.Element) bool) error {
	m := umd.NewModel()
	root := m.Create(umd.KindPackage, "root")
	last := root
	for i := 0; i < r.Depth; i++ {
		p := m.Create(umd.KindPackage, fmt.Sprintf("p%v", i+1))
		if err := p.SetNestingPackage(last); err != nil {
			return fmt.Errorf("%s: %w", r.Name, err)
		}
		last = p
	}
	if fn(last, root) {
		return fmt.Errorf("%s: %v should NOT be able to own %v", r.Name, last, root)
	}
	return nil
}
