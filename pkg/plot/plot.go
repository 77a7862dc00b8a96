// Package plot renders solve results to image files. It consumes the result
// arrays only; nothing here feeds back into the solvers.
package plot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"toy-solar/pkg/device"
	"toy-solar/pkg/util"
)

// JVCurve writes the current-voltage characteristic of a solved device,
// with the current axis in the conventional mA/cm^2.
func JVCurve(dev *device.Device, path string) error {
	if !dev.HasResults() {
		return fmt.Errorf("device %s has no results to plot", dev.Name)
	}
	r := dev.Results()

	pts := make(plotter.XYs, len(r.Voltage))
	for i := range r.Voltage {
		pts[i].X = r.Voltage[i]
		pts[i].Y = util.ToMilliampPerCm2(r.Current[i])
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s  Voc=%.3f V  Jsc=%.2f mA/cm2  FF=%.3f",
		dev.Name, r.Voc, util.ToMilliampPerCm2(r.Jsc), r.FF)
	p.X.Label.Text = "Voltage (V)"
	p.Y.Label.Text = "Current density (mA/cm2)"
	p.Add(plotter.NewGrid())

	if err := plotutil.AddLinePoints(p, "J-V", pts); err != nil {
		return fmt.Errorf("building J-V plot: %w", err)
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving J-V plot: %w", err)
	}
	return nil
}

// GenerationProfile writes the photogeneration rate against depth in nm.
func GenerationProfile(dev *device.Device, path string) error {
	if !dev.HasResults() {
		return fmt.Errorf("device %s has no results to plot", dev.Name)
	}
	r := dev.Results()

	pts := make(plotter.XYs, len(r.Depth))
	for i := range r.Depth {
		pts[i].X = util.ToNanometers(r.Depth[i])
		pts[i].Y = r.Generation[i]
	}

	p := plot.New()
	p.Title.Text = dev.Name + "  generation profile"
	p.X.Label.Text = "Depth (nm)"
	p.Y.Label.Text = "G (pairs/m^3/s)"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("building generation plot: %w", err)
	}
	p.Add(line)
	p.Legend.Add("G(x)", line)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving generation plot: %w", err)
	}
	return nil
}
