// Package deck loads a simulation deck: a YAML description of the layer
// stack, illumination, diode parameters and voltage sweep. A deck plays the
// role a netlist plays for a circuit simulator.
package deck

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"toy-solar/pkg/analysis"
	"toy-solar/pkg/device"
	"toy-solar/pkg/material"
	"toy-solar/pkg/optical"
	"toy-solar/pkg/solver"
)

// Deck is one parsed simulation input file.
type Deck struct {
	Title       string      `yaml:"title"`
	Temperature float64     `yaml:"temperature"` // K, default 300
	MeshPoints  int         `yaml:"mesh_points"` // default 200
	Layers      []LayerSpec `yaml:"layers"`
	Light       *LightSpec  `yaml:"illumination"` // nil means standard sunlight
	Diode       DiodeSpec   `yaml:"diode"`
	Sweep       *SweepSpec  `yaml:"sweep"` // nil means automatic
}

// LayerSpec describes one layer. `use` pulls defaults from the material
// database; explicitly set fields override them.
type LayerSpec struct {
	Name        string  `yaml:"name"`
	Use         string  `yaml:"use"`
	ThicknessNm float64 `yaml:"thickness_nm"`
	Na          float64 `yaml:"na"`   // cm^-3
	Nd          float64 `yaml:"nd"`   // cm^-3
	Eg          float64 `yaml:"eg"`   // eV
	Chi         float64 `yaml:"chi"`  // eV
	Epsr        float64 `yaml:"epsr"`
}

type LightSpec struct {
	Power        float64 `yaml:"power"`         // W/m^2
	PhotonEnergy float64 `yaml:"photon_energy"` // eV
	Coupling     float64 `yaml:"coupling"`
}

type DiodeSpec struct {
	J0 float64 `yaml:"j0"` // A/m^2, 0 derives from doping
	N  float64 `yaml:"n"`  // 0 means 1
}

type SweepSpec struct {
	Start  float64 `yaml:"start"`  // V
	Stop   float64 `yaml:"stop"`   // V
	Points int     `yaml:"points"` // default 200
}

// Load reads and parses a deck file.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading deck: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return d, nil
}

// Parse decodes a deck and fills defaults.
func Parse(data []byte) (*Deck, error) {
	d := &Deck{
		Temperature: device.DefaultTemp,
		MeshPoints:  device.DefaultMeshPoints,
	}
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, err
	}
	if len(d.Layers) == 0 {
		return nil, fmt.Errorf("deck defines no layers")
	}
	return d, nil
}

// Build assembles the device and solve options described by the deck.
func (d *Deck) Build() (*device.Device, solver.Options, error) {
	layers := make([]device.Layer, 0, len(d.Layers))
	for i, spec := range d.Layers {
		l, err := spec.build()
		if err != nil {
			return nil, solver.Options{}, fmt.Errorf("layer %d: %w", i, err)
		}
		layers = append(layers, l)
	}

	title := d.Title
	if title == "" {
		title = "untitled"
	}
	dev := device.New(title, layers)
	dev.Temp = d.Temperature
	dev.MeshPoints = d.MeshPoints
	if err := dev.Validate(); err != nil {
		return nil, solver.Options{}, err
	}

	opts := solver.Options{
		Diode: analysis.DiodeParams{J0: d.Diode.J0, N: d.Diode.N},
	}
	if d.Light != nil {
		opts.Illumination = optical.Illumination{
			PowerDensity: d.Light.Power,
			PhotonEnergy: d.Light.PhotonEnergy,
			Coupling:     d.Light.Coupling,
		}
	}
	if d.Sweep != nil {
		if d.Sweep.Stop <= d.Sweep.Start {
			return nil, solver.Options{}, fmt.Errorf("sweep stop %g V must exceed start %g V", d.Sweep.Stop, d.Sweep.Start)
		}
		points := d.Sweep.Points
		if points < 2 {
			points = 200
		}
		sweep := make([]float64, points)
		step := (d.Sweep.Stop - d.Sweep.Start) / float64(points-1)
		for i := range sweep {
			sweep[i] = d.Sweep.Start + float64(i)*step
		}
		opts.Sweep = sweep
	}
	return dev, opts, nil
}

func (s LayerSpec) build() (device.Layer, error) {
	if s.ThicknessNm <= 0 {
		return device.Layer{}, fmt.Errorf("%w: %s: thickness_nm must be positive", device.ErrInvalidLayer, s.Name)
	}
	thickness := s.ThicknessNm * 1e-9

	var l device.Layer
	if s.Use != "" {
		preset, err := material.Get(s.Use, thickness)
		if err != nil {
			return device.Layer{}, err
		}
		l = preset
		if s.Name != "" {
			l.Name = s.Name
		}
	} else {
		if s.Name == "" {
			return device.Layer{}, fmt.Errorf("%w: layer needs a name or a material", device.ErrInvalidLayer)
		}
		l = device.NewLayer(s.Name, thickness)
	}

	if s.Na != 0 {
		l.Na = s.Na
	}
	if s.Nd != 0 {
		l.Nd = s.Nd
	}
	if s.Eg != 0 {
		l.Eg = s.Eg
	}
	if s.Chi != 0 {
		l.Chi = s.Chi
	}
	if s.Epsr != 0 {
		l.Epsr = s.Epsr
	}
	return l, nil
}
