// Package main is the main entrypoint to the esglob application
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/tanema/esglob/src/conf"
	"github.com/tanema/esglob/src/logging"
	"github.com/tanema/esglob/src/shell"
)

var (
	sh          *shell.Shell
	showVersion bool
	executeStat string
	interactive bool
	debugOn     bool
	timeFormat  string
	prompt      string
)

func init() {
	flag.BoolVar(&showVersion, "v", false, "show version information")
	flag.StringVar(&executeStat, "e", "", "execute string 'stat'")
	flag.BoolVar(&interactive, "i", false, "enter interactive mode after executing a script")
	flag.BoolVar(&debugOn, "d", false, "log every command and compiled pattern")
	flag.StringVar(&timeFormat, "T", conf.TIMEFORMAT, "strftime layout for log timestamps")
	flag.StringVar(&prompt, "p", conf.PROMPT, "interactive prompt")
}

func main() {
	if path := os.Getenv(conf.PROFILEENV); path != "" {
		defer runProfiling(path)()
	}
	flag.Usage = printUsage
	flag.Parse()

	log, err := logging.New(os.Stderr, debugOn, timeFormat)
	checkErr(err)
	sh = shell.New(os.Stdout, os.Stderr, log)

	args := flag.Args()
	if showVersion {
		printVersion()
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		run("<stdin>", os.Stdin)
	} else if executeStat != "" {
		run("<string>", strings.NewReader(executeStat))
	} else if len(args) == 0 && !showVersion {
		runREPL()
	} else if len(args) > 0 {
		if info, err := os.Stat(args[0]); err == nil && !info.IsDir() {
			src, err := os.Open(args[0])
			checkErr(err)
			defer func() { _ = src.Close() }()
			run(args[0], src)
		} else {
			checkErr(fmt.Errorf("cannot open %v", args[0]))
		}
	} else if !showVersion {
		printUsage()
	}
}

func printVersion() {
	fmt.Fprintf(os.Stderr, "%v\n", conf.FullVersion())
}

func printUsage() {
	printVersion()
	fmt.Fprint(os.Stderr, "\nUsage: esglob [options] [script]\n")
	flag.PrintDefaults()
}

func checkErr(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(path string, src io.Reader) {
	checkErr(sh.Run(path, src))
	if interactive {
		runREPL()
	}
}

func runREPL() {
	printVersion()
	fmt.Fprint(os.Stderr, "Press ctrl-c to quit or clear current buffer.\n")
	checkErr(sh.REPL(prompt))
}

func runProfiling(filename string) func() {
	f, err := os.Create(filename)
	checkErr(err)
	checkErr(pprof.StartCPUProfile(f))
	return pprof.StopCPUProfile
}
