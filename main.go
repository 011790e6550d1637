package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const (
	pluginName    = "jvmcheck"
	pluginVersion = "1.1.0"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	fs := flag.NewFlagSet(pluginName, flag.ContinueOnError)
	pids := fs.String("p", "", "comma-separated pid list to check")
	pidFile := fs.String("F", "", "file containing the pid to check")
	procName := fs.String("s", "", "substring matched against process name and command line")
	label := fs.String("l", "", "display label for the target (suffixed with the pid when several match)")
	warn := fs.Int("w", -1, "warning threshold percent, 0 disables the tier (default 90)")
	crit := fs.Int("c", -1, "critical threshold percent, 0 disables the tier (default 95)")
	configPath := fs.String("C", "", "optional YAML config file")
	jstatPath := fs.String("jstat", "", "path to the jstat binary (default jstat)")
	timeoutSecs := fs.Int("t", 0, "per-jstat-call timeout in seconds (default 10)")
	concurrency := fs.Int("j", 0, "max targets checked in parallel (default 1, sequential)")
	listen := fs.String("listen", "", "serve the check over HTTP on this address instead of exiting")
	verbose := fs.Bool("v", false, "verbose diagnostics on stderr")
	version := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return SeverityUnknown.ExitCode()
	}
	if *version {
		fmt.Fprintf(out, "%s %s\n", pluginName, pluginVersion)
		return SeverityOK.ExitCode()
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(out, "UNKNOWN:%v\n", err)
		return SeverityUnknown.ExitCode()
	}
	if *warn >= 0 {
		cfg.WarningPercent = *warn
	}
	if *crit >= 0 {
		cfg.CriticalPercent = *crit
	}
	if *jstatPath != "" {
		cfg.Jstat.Path = *jstatPath
	}
	if *timeoutSecs > 0 {
		cfg.Jstat.TimeoutSeconds = *timeoutSecs
	}
	if *concurrency > 0 {
		cfg.Concurrency = *concurrency
	}
	if *listen != "" {
		cfg.HTTP.Listen = *listen
	}
	if *verbose {
		cfg.Verbose = true
	}

	setupLogger(cfg)
	defer closeLogger()

	targets, err := resolveTargets(*pids, *pidFile, *procName, *label)
	if err != nil {
		fmt.Fprintf(out, "UNKNOWN:%v\n", err)
		return SeverityUnknown.ExitCode()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.HTTP.Listen != "" {
		if err := serveChecks(ctx, cfg, targets); err != nil {
			fmt.Fprintf(out, "UNKNOWN:%v\n", err)
			return SeverityUnknown.ExitCode()
		}
		return SeverityOK.ExitCode()
	}

	agg := runCheck(ctx, cfg, targets)
	notifyTelegram(newTelegramBot(cfg), cfg.Telegram.ChatID, agg)

	fmt.Fprintln(out, agg.Render())
	return agg.Overall.ExitCode()
}
