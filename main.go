package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"ledtext/app"
	"ledtext/fonts"
	"ledtext/hal"
	"ledtext/internal/buildinfo"
	"ledtext/internal/config"
)

func main() {
	dir := envDir(os.Args[1:])
	cfg, err := config.Load(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	var hcfg hal.HeadlessConfig
	var headless, version bool
	flag.String("env", dir, "Directory holding .env.local or .env.")
	cfg.RegisterFlags(flag.CommandLine)
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&version, "version", false, "Print the build and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	font, err := fonts.Lookup(cfg.Font)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	acfg := app.Config{
		Text:        cfg.Text,
		Font:        font,
		FontName:    cfg.Font,
		Policy:      cfg.Policy,
		Width:       cfg.Width,
		Rotation:    cfg.Rotation,
		Style:       cfg.Style(),
		ScrollTicks: cfg.ScrollTicks,
	}
	screen := app.Screen(acfg)
	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, acfg)
	}

	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, screen, newApp, hcfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(screen, newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// envDir finds -env before flags are parsed, since dotenv values become the
// flag defaults.
func envDir(args []string) string {
	for i, a := range args {
		name, value, hasValue := strings.Cut(strings.TrimLeft(a, "-"), "=")
		if !strings.HasPrefix(a, "-") || name != "env" {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return "."
}
