package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/lixenwraith/brainwave/audio"
	"github.com/lixenwraith/brainwave/config"
	"github.com/lixenwraith/brainwave/core"
	"github.com/lixenwraith/brainwave/driver"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("brainwave", flag.ContinueOnError)
	flags := config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	cfg, err := flags.Resolve(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "brainwave: %v\n", err)
		return 2
	}

	// No terminal, nothing to draw on
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return 0
	}

	session := uuid.New().String()
	if logFile := setupLogging(cfg.Log, session); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Printf("screen: %v", err)
		return 0
	}
	if err := screen.Init(); err != nil {
		log.Printf("screen init: %v", err)
		return 0
	}
	core.RegisterScreen(screen)

	var opts []driver.Option
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer sm.Cleanup()
			opts = append(opts, driver.WithCues(sm))
		}
	}

	started := time.Now()
	d, err := driver.Mount(screen, cfg, opts...)
	if err != nil {
		core.RegisterScreen(nil)
		screen.Fini()
		log.Printf("mount: %v", err)
		fmt.Fprintf(os.Stderr, "brainwave: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-d.Done():
	case <-ctx.Done():
		log.Printf("signal received")
	}

	d.Teardown()
	core.RegisterScreen(nil)
	screen.Fini()

	fmt.Println(renderSummary(d.Summary(), time.Since(started), session))
	return 0
}
