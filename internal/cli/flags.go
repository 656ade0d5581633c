package cli

import "mtr/internal/config"

// Flags holds command-line flags
type Flags struct {
	Filter   string
	FailFast bool
	Cases    bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Filter:   f.Filter,
		FailFast: f.FailFast,
		Cases:    f.Cases,
	}
}
