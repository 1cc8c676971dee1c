package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/logic-tools/proplog/basis"
	"github.com/logic-tools/proplog/formula"
)

// Version is filled at release build time via -ldflags "-X main.Version=...",
// but *not* when installing via "go install".
var Version string

var rootCmd = &cobra.Command{
	Use:   "proplog",
	Short: "A toolbox for propositional formulas.",
	Long: `A toolbox for parsing, evaluating and rewriting propositional formulas
into restricted operator bases such as {~,&}, {->,F} or {-&} alone.`,
	Run: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "version") {
			fmt.Print("proplog ")
			if Version != "" {
				// Built with -ldflags
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Printf("%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
		}
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert [flags] formula",
	Short: "rewrite a formula into a restricted operator basis.",
	Long: `Rewrite a formula so that it only uses the operators of the target basis,
preserving its truth table. Bases: not-and-or, not-and, nand, implies-not,
implies-false.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		b, err := basis.ParseBasis(getString(cmd, "basis"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		f := parseArg(args[0])
		log.Debugf("parsed %q as %s", args[0], f)
		converted := basis.Convert(f, b)
		if getFlag(cmd, "check") {
			if !b.Holds(converted) {
				fmt.Fprintf(os.Stderr, "conversion left operators outside basis %s\n", b)
				os.Exit(2)
			}
			if !formula.Equivalent(f, converted) {
				fmt.Fprintf(os.Stderr, "conversion changed the truth table of %s\n", f)
				os.Exit(2)
			}
			log.Debugf("checked: %s is equivalent and within basis %s", converted, b)
		}
		fmt.Println(converted)
	},
}

var tableCmd = &cobra.Command{
	Use:   "table formula",
	Short: "print the truth table of a formula.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		printTable(parseArg(args[0]))
	},
}

var checkCmd = &cobra.Command{
	Use:   "check formula formula",
	Short: "check whether two formulas have the same truth table.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		f := parseArg(args[0])
		g := parseArg(args[1])
		if !formula.Equivalent(f, g) {
			fmt.Printf("%s and %s are NOT equivalent\n", f, g)
			os.Exit(1)
		}
		fmt.Printf("%s and %s are equivalent\n", f, g)
	},
}

func parseArg(expr string) *formula.Formula {
	f, err := formula.ParseString(expr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not parse formula %q: %v\n", expr, err)
		os.Exit(1)
	}
	return f
}

func printTable(f *formula.Formula) {
	var (
		green = color.New(color.FgGreen)
		red   = color.New(color.FgRed)
		vars  = f.Vars()
		model = make(map[string]bool, len(vars))
	)
	cell := func(b bool) string {
		if b {
			return green.Sprint("T")
		}
		return red.Sprint("F")
	}
	for _, name := range vars {
		fmt.Printf("%s ", name)
	}
	fmt.Printf("| %s\n", f)
	for bits := 0; bits < 1<<uint(len(vars)); bits++ {
		for i, name := range vars {
			model[name] = bits&(1<<uint(len(vars)-1-i)) != 0
			fmt.Printf("%s ", cell(model[name]))
		}
		fmt.Printf("| %s\n", cell(f.Eval(model)))
	}
}

func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	convertCmd.Flags().StringP("basis", "b", "not-and-or", "target operator basis")
	convertCmd.Flags().Bool("check", false, "re-verify equivalence and basis closure of the result")
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	}
}

func main() {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
