package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"toy-solar/pkg/deck"
	"toy-solar/pkg/device"
	"toy-solar/pkg/material"
	"toy-solar/pkg/plot"
	"toy-solar/pkg/solver"
	"toy-solar/pkg/util"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "toy-solar",
		Short: "Planar solar cell simulator",
		Long: `toy-solar models a planar multi-layer solar cell under illumination:
a Beer-Lambert photogeneration profile feeds an ideal-diode J-V solve,
and the standard performance metrics are derived from the curve.`,
	}

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(materialsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	var (
		jvPath    string
		genPath   string
		withTable bool
	)

	cmd := &cobra.Command{
		Use:   "run <deck.yaml>",
		Short: "Solve a simulation deck and print the performance metrics",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			d, err := deck.Load(args[0])
			if err != nil {
				log.Fatalf("Error loading deck: %v", err)
			}

			dev, opts, err := d.Build()
			if err != nil {
				log.Fatalf("Error building device: %v", err)
			}

			for _, w := range dev.CheckStackOrder() {
				fmt.Printf("warning: %s\n", w)
			}

			result, err := solver.Solve(dev, opts)
			if err != nil {
				log.Fatalf("Error solving device: %v", err)
			}

			printMetrics(dev, result)
			if withTable {
				printCurve(result)
			}

			if jvPath != "" {
				if err := plot.JVCurve(dev, jvPath); err != nil {
					log.Fatalf("Error writing J-V plot: %v", err)
				}
				fmt.Printf("\nJ-V plot written to %s\n", jvPath)
			}
			if genPath != "" {
				if err := plot.GenerationProfile(dev, genPath); err != nil {
					log.Fatalf("Error writing generation plot: %v", err)
				}
				fmt.Printf("Generation plot written to %s\n", genPath)
			}
		},
	}

	cmd.Flags().StringVar(&jvPath, "jv-plot", "", "Write the J-V curve to this PNG file")
	cmd.Flags().StringVar(&genPath, "generation-plot", "", "Write the generation profile to this PNG file")
	cmd.Flags().BoolVar(&withTable, "table", false, "Print the full J-V table")

	return cmd
}

func materialsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "materials",
		Short: "List the built-in materials database",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println("Built-in materials:")
			for _, name := range material.List() {
				p, _ := material.Lookup(name)
				fmt.Printf("  %-14s Eg=%.2f eV  chi=%.2f eV  epsr=%.1f  Na=%g cm^-3  Nd=%g cm^-3\n",
					name, p.Eg, p.Chi, p.Epsr, p.Na, p.Nd)
			}
		},
	}
}

func printMetrics(dev *device.Device, r *device.Result) {
	fmt.Printf("Device: %s (%d layers, %s thick)\n",
		dev.Name, len(dev.Layers), util.FormatValueFactor(dev.TotalThickness(), "m"))
	fmt.Println("\nPerformance metrics:")
	fmt.Println("====================")
	fmt.Printf("  Jsc        = %.3f mA/cm^2\n", util.ToMilliampPerCm2(r.Jsc))
	fmt.Printf("  Voc        = %s\n", util.FormatValueFactor(r.Voc, "V"))
	fmt.Printf("  FF         = %.4f\n", r.FF)
	fmt.Printf("  Efficiency = %s\n", util.FormatPercent(r.Efficiency))
	fmt.Printf("  Pmax       = %.2f W/m^2\n", r.Pmax)
}

func printCurve(r *device.Result) {
	fmt.Printf("\nJ-V curve (%d points):\n", len(r.Voltage))
	fmt.Println("Voltage        Current density")
	fmt.Println("------------------------------")
	for i := range r.Voltage {
		fmt.Printf("%-12s  %10.4f mA/cm^2\n",
			util.FormatValueFactor(r.Voltage[i], "V"),
			util.ToMilliampPerCm2(r.Current[i]))
	}
}
