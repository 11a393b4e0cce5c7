package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/five82/roster/internal/app"
	"github.com/five82/roster/internal/cli"
	"github.com/five82/roster/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override roster config path (optional)")
	apiBase := flag.String("api", "", "override the Puppy Bowl API base URL (optional)")
	cohort := flag.String("cohort", "", "override the cohort slug (optional)")
	prefsPath := flag.String("prefs", "", "override the UI preferences path (optional)")
	envFile := flag.String("env", "", "dotenv file to load (optional, defaults to ./.env)")
	flag.Usage = usage
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		EnvFile:    *envFile,
		Overrides:  config.Overrides{APIBase: *apiBase, Cohort: *cohort},
	}

	args := flag.Args()
	if len(args) == 0 {
		if cli.IsTerminal(os.Stdout) {
			if err := app.Run(ctx, opts); err != nil {
				fmt.Fprintf(os.Stderr, "roster: %v\n", err)
				return 1
			}
			return 0
		}
		args = []string{"list"}
	}
	return runCommand(ctx, opts, args)
}

func runCommand(ctx context.Context, opts app.Options, args []string) int {
	cfg, err := app.LoadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roster: %v\n", err)
		return 1
	}
	logger, closeLog := app.OpenLog(cfg, os.Stderr)
	defer closeLog()

	api, err := app.NewAPI(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roster: %v\n", err)
		return 1
	}

	runner := cli.Runner{
		API:     api,
		Out:     os.Stdout,
		LogPath: cfg.LogPath(),
	}
	if cli.IsTerminal(os.Stdin) && cli.IsTerminal(os.Stdout) {
		runner.Prompter = cli.SurveyPrompter{}
	}

	err = runner.Run(ctx, args)
	var usageErr *cli.UsageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &usageErr):
		fmt.Fprintf(os.Stderr, "roster: %v\n\n", err)
		usage()
		return 2
	case errors.Is(err, cli.ErrRequestFailed):
		fmt.Fprintf(os.Stderr, "roster: %v (see %s)\n", err, cfg.LogPath())
		return 1
	case errors.Is(err, cli.ErrAborted):
		return 130
	default:
		fmt.Fprintf(os.Stderr, "roster: %v\n", err)
		return 1
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: roster [flags] [%s]\n\n", strings.Join(cli.Commands, "|"))
	fmt.Fprintln(out, "With no command, roster opens the interactive roster when run in a terminal")
	fmt.Fprintln(out, "and prints the player list otherwise.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  list                              list every player")
	fmt.Fprintln(out, "  show <id>                         show one player")
	fmt.Fprintln(out, "  add [-name N -breed B -status S]  add a player")
	fmt.Fprintln(out, "  rm <id>                           remove a player")
	fmt.Fprintln(out, "  logs [-n N -match TEXT]           print the end of the roster log")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Flags:")
	flag.PrintDefaults()
}
