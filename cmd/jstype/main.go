// Package main is the main entrypoint to the jstype application
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/tanema/jstype"
	"github.com/tanema/jstype/src/conf"
)

var (
	env         conf.Env
	executeStat string
	typeName    string
	strict      bool
	repair      bool
	yamlInput   bool
	stamp       string
	debug       bool
	showVersion bool
	interactive bool
)

func init() {
	var err error
	env, err = conf.Load()
	checkErr(err)
	flag.StringVar(&executeStat, "e", "", "transform schema 'stat'")
	flag.StringVar(&typeName, "n", "", "emit an exported type declaration with this name")
	flag.BoolVar(&strict, "strict", !env.AdditionalProperties, "disallow additional properties unless the schema allows them")
	flag.BoolVar(&repair, "repair", env.Repair, "repair malformed JSON input")
	flag.BoolVar(&yamlInput, "yaml", false, "decode input as YAML")
	flag.StringVar(&stamp, "stamp", env.Stamp, "strftime format of a header comment, '-' for the default")
	flag.BoolVar(&debug, "debug", env.Debug, "log dropped keywords to stderr")
	flag.BoolVar(&showVersion, "v", false, "show version information")
	flag.BoolVar(&interactive, "i", false, "enter interactive mode after transforming a schema")
}

func main() {
	flag.Usage = printUsage
	flag.Parse()

	opts := options()
	args := flag.Args()
	if showVersion {
		printVersion()
	}
	if stat, _ := os.Stdin.Stat(); (stat.Mode() & os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		checkErr(err)
		output(jstype.String("<stdin>", string(data), opts...))
	} else if executeStat != "" {
		output(jstype.String("<string>", executeStat, opts...))
	} else if len(args) > 0 {
		output(jstype.File(args[0], opts...))
	} else if !showVersion {
		runREPL(opts)
	}
}

func options() []jstype.Option {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return append(jstype.EnvOptions(env),
		jstype.WithAdditionalProperties(!strict),
		jstype.WithRepair(repair),
		jstype.WithYAML(yamlInput),
		jstype.WithLogger(logger),
	)
}

func output(expr string, err error) {
	checkErr(err)
	if stamp != "" {
		format := stamp
		if format == "-" {
			format = conf.DEFAULTSTAMP
		}
		banner, err := jstype.Banner(format, time.Now())
		checkErr(err)
		fmt.Println(banner)
	}
	if typeName != "" {
		expr = jstype.Declare(typeName, expr)
	}
	fmt.Println(expr)
	if interactive {
		runREPL(options())
	}
}

func printVersion() {
	fmt.Fprintf(os.Stderr, "%v\n", conf.FullVersion())
}

func printUsage() {
	printVersion()
	fmt.Fprint(os.Stderr, "\nUsage: jstype [options] [schema]\n")
	flag.PrintDefaults()
}

func checkErr(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func runREPL(opts []jstype.Option) {
	printVersion()
	fmt.Fprint(os.Stderr, "Press ctrl-c to quit or clear current buffer.\n")
	checkErr(jstype.REPL(opts...))
}
