// Package sample registers a small demo suite so the mtr binary has
// something to run end to end. One string comparison fails on purpose to
// exercise the failure report and the interactive viewer.
package sample

import (
	"fmt"

	"mtr/assert"
	"mtr/registry"
)

// Build returns a registry populated with the demo groups.
func Build() (*registry.Registry, error) {
	reg := registry.New()

	strGroup, err := reg.DefineGroup("strings")
	if err != nil {
		return nil, fmt.Errorf("define group: %w", err)
	}
	if err := strGroup.DefineTest("MismatchedCompare", func(c *assert.C) {
		name := "steve"
		c.StringEqual(name, "harvey") // fails on purpose
	}); err != nil {
		return nil, fmt.Errorf("define test: %w", err)
	}
	if err := strGroup.DefineTest("BufferCompare", func(c *assert.C) {
		// Content comparison: a freshly built buffer equals the literal.
		buf := []byte{'s', 't', 'e', 'v', 'e'}
		c.StringEqual(string(buf), "steve")
	}); err != nil {
		return nil, fmt.Errorf("define test: %w", err)
	}

	chkGroup, err := reg.DefineGroup("checks")
	if err != nil {
		return nil, fmt.Errorf("define group: %w", err)
	}
	if err := chkGroup.DefineTest("Inequality", func(c *assert.C) {
		c.NotEqual(0, 5)
		c.NotEqual("yo", "mamma")
	}); err != nil {
		return nil, fmt.Errorf("define test: %w", err)
	}
	if err := chkGroup.DefineTest("Boolean", func(c *assert.C) {
		c.NotEqual(0, 6)
		c.True(true)
	}); err != nil {
		return nil, fmt.Errorf("define test: %w", err)
	}

	return reg, nil
}
