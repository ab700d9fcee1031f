// Command fxcalc is a fixed-point decimal calculator.
//
// Usage:
//
//	fxcalc eval "(0.1 + 0.2) * 10"
//	fxcalc demo
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/metrima/fx"
	"github.com/metrima/fx/internal/calc"
)

var (
	resultColor = color.New(color.FgGreen, color.Bold)
	errorColor  = color.New(color.FgRed)
	labelColor  = color.New(color.FgCyan)
)

func main() {
	root := &cobra.Command{
		Use:           "fxcalc",
		Short:         "fxcalc is a fixed-point decimal calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(evalCmd(), demoCmd())

	if err := root.Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func evalCmd() *cobra.Command {
	var scale int
	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an arithmetic expression",
		Long: "Evaluate an arithmetic expression over fixed-point decimals.\n" +
			"Supported operators: + - * / // % ^ and parentheses.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := calc.Evaluate(strings.Join(args, " "))
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("scale") {
				result = result.Round(scale)
			}
			resultColor.Println(result)
			return nil
		},
	}
	cmd.Flags().IntVarP(&scale, "scale", "s", 2, "round the result to the given number of decimal places")
	return cmd
}

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Show what fixed-point decimals do differently",
		RunE: func(cmd *cobra.Command, args []string) error {
			labelColor.Println("exact addition")
			x, y := 0.1, 0.2
			fmt.Printf("  float64:  0.1 + 0.2 = %v\n", x+y)
			show("  fx:       0.1 + 0.2 = ", "0.1 + 0.2")

			labelColor.Println("exact division")
			x, y = 10.5, 2.5
			fmt.Printf("  float64:  10.5 / 2.5 = %v\n", x/y)
			show("  fx:       10.5 / 2.5 = ", "10.5 / 2.5")

			labelColor.Println("banker's rounding")
			for _, s := range []string{"2.345", "2.355"} {
				d := fx.MustParse(s)
				fmt.Printf("  round(%v, 2) = ", d)
				resultColor.Println(d.Round(2))
			}

			labelColor.Println("floored remainder")
			show("  -7 % 3 = ", "-7 % 3")
			show("  -2.4 % 1 = ", "-2.4 % 1")
			return nil
		},
	}
}

func show(label, expr string) {
	result, err := calc.Evaluate(expr)
	if err != nil {
		errorColor.Printf("%s%v\n", label, err)
		return
	}
	fmt.Print(label)
	resultColor.Println(result)
}
