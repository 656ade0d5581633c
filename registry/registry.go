// Package registry holds named test groups and their test cases.
//
// Registration is expected to happen once, single-threaded, at process start;
// after that the registry is read-only and safe to iterate from the runner.
package registry

import "mtr/assert"

// Body is a test case body. It receives the assertion context for the
// current execution and returns nothing; a failed assertion aborts it.
type Body func(c *assert.C)

// Entry is one registered test case as seen by the runner.
type Entry struct {
	GroupName string
	TestName  string
	Body      Body
}

// Group is a handle to a named group of test cases.
type Group struct {
	name    string
	owner   *Registry
	names   map[string]bool
	ordered []string
}

// Name returns the group name.
func (g *Group) Name() string {
	return g.name
}

// DefineTest registers a test case in this group.
func (g *Group) DefineTest(name string, body Body) error {
	return g.owner.DefineTest(g, name, body)
}

// Registry holds all registered groups in registration order.
type Registry struct {
	groups  map[string]*Group
	ordered []*Group
	bodies  map[string]map[string]Body
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		groups: make(map[string]*Group),
		bodies: make(map[string]map[string]Body),
	}
}

// DefineGroup registers a new group and returns its handle.
func (r *Registry) DefineGroup(name string) (*Group, error) {
	if _, exists := r.groups[name]; exists {
		return nil, DuplicateGroupError{Name: name}
	}
	g := &Group{
		name:  name,
		owner: r,
		names: make(map[string]bool),
	}
	r.groups[name] = g
	r.ordered = append(r.ordered, g)
	r.bodies[name] = make(map[string]Body)
	return g, nil
}

// DefineTest registers a test case in the given group.
func (r *Registry) DefineTest(group *Group, name string, body Body) error {
	if group == nil || group.owner != r || r.groups[group.name] != group {
		groupName := ""
		if group != nil {
			groupName = group.name
		}
		return UnknownGroupError{Name: groupName}
	}
	if group.names[name] {
		return DuplicateTestError{Group: group.name, Name: name}
	}
	group.names[name] = true
	group.ordered = append(group.ordered, name)
	r.bodies[group.name][name] = body
	return nil
}

// AllTests returns every registered test case in registration order:
// groups in the order they were defined, cases in the order they were added.
// Each call builds a fresh slice, so re-iterating yields the same sequence
// as long as no further registration occurred.
func (r *Registry) AllTests() []Entry {
	var entries []Entry
	for _, g := range r.ordered {
		for _, name := range g.ordered {
			entries = append(entries, Entry{
				GroupName: g.name,
				TestName:  name,
				Body:      r.bodies[g.name][name],
			})
		}
	}
	return entries
}

// Len returns the number of registered test cases.
func (r *Registry) Len() int {
	n := 0
	for _, g := range r.ordered {
		n += len(g.ordered)
	}
	return n
}
