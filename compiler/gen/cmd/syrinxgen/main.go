// Command syrinxgen generates the typed variant structs for the Subgenre
// schema catalog.
//
// Usage:
//
//	go run github.com/audialab/syrinx/compiler/gen/cmd/syrinxgen -config syrinxgen.yaml
//
// With -watch, the command stays running and regenerates whenever a watched
// schema directory changes; combined with `go run` in a Makefile this keeps
// generated contracts in sync during development.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/audialab/syrinx/compiler/gen"
	"github.com/audialab/syrinx/subgenre"
)

func main() {
	var (
		configPath = flag.String("config", "syrinxgen.yaml", "generator configuration file")
		watch      = flag.Bool("watch", false, "regenerate when watched schema sources change")
	)
	flag.Parse()

	cfg, err := gen.LoadConfig(*configPath)
	if err != nil {
		fatal(err)
	}
	if err := generate(cfg); err != nil {
		fatal(err)
	}
	if !*watch {
		return
	}
	if err := watchLoop(cfg); err != nil {
		fatal(err)
	}
}

// generate composes the catalog and renders every variant.
func generate(cfg *gen.Config) error {
	set, err := subgenre.NewSet()
	if err != nil {
		return err
	}
	if err := gen.Generate(context.Background(), cfg, set.Variants()...); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "syrinxgen: wrote %d variants to %s\n", len(set.Variants()), cfg.Target)
	return nil
}

// watchLoop regenerates on changes under the configured watch directories.
// Events are debounced so editor save bursts trigger one regeneration.
func watchLoop(cfg *gen.Config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dirs := cfg.Watch
	if len(dirs) == 0 {
		dirs = []string{"."}
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	fmt.Fprintf(os.Stderr, "syrinxgen: watching %v\n", dirs)

	const debounce = 200 * time.Millisecond
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			timer.Reset(debounce)
		case <-timer.C:
			if err := generate(cfg); err != nil {
				// Keep watching; definition errors are fixed by the next save.
				fmt.Fprintf(os.Stderr, "syrinxgen: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "syrinxgen: watch error: %v\n", err)
		}
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "syrinxgen: %v\n", err)
	os.Exit(1)
}
