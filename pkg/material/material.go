// Package material holds a small database of materials commonly used in
// perovskite solar cells. The entries carry typical parameters only; layer
// thickness is always chosen by the caller.
package material

import (
	"fmt"
	"sort"
	"strings"

	"toy-solar/pkg/device"
)

// Params are the material parameters stored per database entry. Doping is in
// cm^-3, energies in eV.
type Params struct {
	Eg   float64
	Chi  float64
	Epsr float64
	Na   float64
	Nd   float64
}

var builtin = map[string]Params{
	"tio2":         {Eg: 3.2, Chi: 4.0, Epsr: 9.0, Nd: 1e19},
	"mapbi3":       {Eg: 1.55, Chi: 3.9, Epsr: 25.0, Na: 1e15, Nd: 1e15},
	"spiro-ometad": {Eg: 3.0, Chi: 2.2, Epsr: 3.0, Na: 1e19},
	"ptaa":         {Eg: 2.8, Chi: 2.1, Epsr: 3.0, Na: 1e17},
	"cigs":         {Eg: 1.1, Chi: 4.5, Epsr: 13.6, Na: 1e15, Nd: 1e15},
}

// Get returns a layer configured from the database. Matching is
// case-insensitive; the layer keeps the requested name and thickness.
func Get(name string, thickness float64) (device.Layer, error) {
	p, ok := builtin[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return device.Layer{}, fmt.Errorf("material %q not found in database", name)
	}
	l := device.NewLayer(name, thickness)
	l.Eg = p.Eg
	l.Chi = p.Chi
	l.Epsr = p.Epsr
	l.Na = p.Na
	l.Nd = p.Nd
	return l, nil
}

// List returns the database keys in sorted order.
func List() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the raw parameters for a material, for inspection.
func Lookup(name string) (Params, bool) {
	p, ok := builtin[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}
