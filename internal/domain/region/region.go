// Package region names the parts of the world that change how the player
// sounds.
package region

import (
	"fmt"
	"strings"
)

// Area is the part of the world the player is in.
// It selects which footstep clip plays.
type Area int

const (
	Outside Area = iota // default
	Cave
)

// Areas lists every area in declaration order
var Areas = []Area{Outside, Cave}

// String returns the string representation of the area
func (a Area) String() string {
	switch a {
	case Outside:
		return "Outside"
	case Cave:
		return "Cave"
	default:
		return "Unknown"
	}
}

// Parse parses an area name (case-insensitive)
func Parse(name string) (Area, error) {
	for _, a := range Areas {
		if strings.EqualFold(strings.TrimSpace(name), a.String()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown area %q", name)
}
