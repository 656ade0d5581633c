package registry

import "fmt"

// DuplicateGroupError is returned when a group name is registered twice.
type DuplicateGroupError struct {
	Name string
}

func (e DuplicateGroupError) Error() string {
	return fmt.Sprintf("group %q is already registered", e.Name)
}

// DuplicateTestError is returned when a test name is registered twice
// within the same group.
type DuplicateTestError struct {
	Group string
	Name  string
}

func (e DuplicateTestError) Error() string {
	return fmt.Sprintf("test %q is already registered in group %q", e.Name, e.Group)
}

// UnknownGroupError is returned when a test is registered against a group
// handle that does not belong to the registry.
type UnknownGroupError struct {
	Name string
}

func (e UnknownGroupError) Error() string {
	if e.Name == "" {
		return "group handle does not belong to this registry"
	}
	return fmt.Sprintf("group %q does not belong to this registry", e.Name)
}
