// Kalc is a small calculator language: arithmetic, variables, user defined
// functions, builtin trigonometry aware of the configured angle unit, and
// deg/rad unit suffixes on expressions.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fortio.org/cli"
	"fortio.org/log"
	"fortio.org/struct2env"
	"fortio.org/terminal"
	"kalc.io/kalc/ast"
	"kalc.io/kalc/repl"
	"kalc.io/kalc/symbol"
)

func main() {
	os.Exit(Main())
}

type Config struct {
	HistoryFile string
	AngleUnit   string
}

var config = Config{}

func EnvHelp(w io.Writer) {
	res, _ := struct2env.StructToEnvVars(config)
	str := struct2env.ToShellWithPrefix("KALC_", res, true)
	fmt.Fprintln(w, "# Kalc environment variables:")
	fmt.Fprint(w, str)
}

func Main() int {
	commandFlag := flag.String("c", "", "command/inline expression(s) to run instead of interactive mode")
	showParse := flag.Bool("parse", false, "show parse tree")
	showEval := flag.Bool("eval", true, "show eval results")
	sharedState := flag.Bool("shared-state", false, "All files share the same declarations (default is a fresh table for each)")
	const historyDefault = "~/.kalc_history" // virtual/token filename, will be replaced by actual home dir if not changed.
	cli.EnvHelpFuncs = append(cli.EnvHelpFuncs, EnvHelp)
	defaultHistoryFile := historyDefault
	defaultUnit := "rad"
	errs := struct2env.SetFromEnv("KALC_", &config)
	if len(errs) > 0 {
		log.Errf("Error setting config from env: %v", errs)
	}
	if config.HistoryFile != "" {
		defaultHistoryFile = config.HistoryFile
	}
	if config.AngleUnit != "" {
		defaultUnit = config.AngleUnit
	}
	unitFlag := flag.String("unit", defaultUnit, "default angle `unit` (deg or rad)")
	historyFile := flag.String("history", defaultHistoryFile, "history `file` to use")
	maxHistory := flag.Int("max-history", terminal.DefaultHistoryCapacity, "max history `size`, use 0 to disable.")

	cli.ArgsHelp = "*.kalc files to interpret or `-` for stdin without prompt or no arguments for stdin repl..."
	cli.MaxArgs = -1
	cli.Main()

	unit, err := ast.UnitFromString(*unitFlag)
	if err != nil {
		return log.FErrf("%v", err)
	}
	histFile := *historyFile
	if histFile == historyDefault {
		homeDir, err := os.UserHomeDir()
		histFile = filepath.Join(homeDir, ".kalc_history")
		if err != nil {
			log.Warnf("Couldn't get user home dir: %v", err)
			histFile = ""
		}
	}
	options := repl.Options{
		ShowParse:   *showParse,
		ShowEval:    *showEval,
		Unit:        unit,
		HistoryFile: histFile,
		MaxHistory:  *maxHistory,
	}
	if *commandFlag != "" {
		return repl.EvalOne(symbol.NewTable(), *commandFlag, os.Stdout, options)
	}
	if len(flag.Args()) == 0 {
		log.Infof("kalc %s - welcome!", cli.LongVersion)
		return repl.Interactive(options)
	}
	st := symbol.NewTable()
	for _, file := range flag.Args() {
		ret := processOneFile(file, st, options)
		if ret != 0 {
			return ret
		}
		if !*sharedState {
			st = symbol.NewTable()
		}
	}
	log.Infof("All done")
	return 0
}

func processOneStream(st *symbol.Table, in io.Reader, options repl.Options) int {
	nerr := repl.EvalAll(st, in, os.Stdout, options)
	if nerr > 0 {
		log.Errf("%d error(s)", nerr)
	}
	return nerr
}

func processOneFile(file string, st *symbol.Table, options repl.Options) int {
	if file == "-" {
		log.Infof("Running on stdin")
		return processOneStream(st, os.Stdin, options)
	}
	f, err := os.Open(file)
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.Infof("Running %s", file)
	code := processOneStream(st, f, options)
	f.Close()
	return code
}
