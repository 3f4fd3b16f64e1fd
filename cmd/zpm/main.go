package main

import (
	"errors"
	"fmt"
	"os"

	"git.sr.ht/~sircmpwn/getopt"

	"git.sr.ht/~mango/zpm/config"
	"git.sr.ht/~mango/zpm/log"
	"git.sr.ht/~mango/zpm/vm"
)

const usage = "Usage: zpm [-d] [-c config] file"

var errUsage = errors.New(usage)

type options struct {
	config string
	debug  bool
	help   bool
	file   string
}

func main() {
	opts, err := parseArgs(os.Args)
	switch {
	case opts.help:
		fmt.Println(usage)
		os.Exit(0)
	case errors.Is(err, errUsage):
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	log.CrashOnError = true
	if err != nil {
		log.Err("%s", err)
	}

	cfg, err := config.Load(opts.config)
	if err != nil {
		log.Err("%s", err)
	}
	logger, err := log.New(cfg.Logger, opts.debug)
	if err != nil {
		log.Err("%s", err)
	}

	f, err := os.Open(opts.file)
	if err != nil {
		log.Err("%s", err)
	}

	m := vm.New(
		vm.WithLogger(logger),
		vm.WithMaxSteps(cfg.Interpreter.MaxSteps),
	)
	ok, err := run(f, m, os.Stderr)
	f.Close()
	_ = logger.Sync()

	if err != nil {
		log.Err("%s", err)
	}
	if !ok {
		os.Exit(1)
	}
}

func parseArgs(argv []string) (options, error) {
	var o options

	flags, optind, err := getopt.Getopts(argv, "c:dh")
	if err != nil {
		return o, err
	}
	for _, f := range flags {
		switch f.Option {
		case 'c':
			o.config = f.Value
		case 'd':
			o.debug = true
		case 'h':
			o.help = true
			return o, nil
		}
	}

	// Exactly one script per run
	if args := argv[optind:]; len(args) == 1 {
		o.file = args[0]
		return o, nil
	}
	return o, errUsage
}
