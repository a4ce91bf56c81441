//go:build linux

// Command washtrainer attaches to a running PowerWash Simulator process
// and serves an interactive cheat menu on stdin/stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"washtrainer/process_linux"
	"washtrainer/trainer"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

// countFlag counts repeated occurrences, so -v -v means verbosity 2.
type countFlag int

func (c *countFlag) String() string {
	return strconv.Itoa(int(*c))
}

func (c *countFlag) Set(string) error {
	*c++
	return nil
}

func (c *countFlag) IsBoolFlag() bool {
	return true
}

func main() {
	os.Exit(run())
}

func run() int {
	var version string
	var verbose countFlag
	flag.StringVar(&version, "game-version", "v1", "Target game version")
	flag.StringVar(&version, "g", "v1", "Target game version (shorthand)")
	flag.Var(&verbose, "v", "Increase logging verbosity (repeatable)")
	flag.Parse()

	trainer.SetVerbosity(int(verbose))
	log := logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "washtrainer"))

	profile, err := trainer.GetProfile(version)
	if err != nil {
		log.Error("Configuration error: ", err)
		fmt.Fprintln(os.Stderr, "Supported versions:", strings.Join(trainer.Versions(), ", "))
		return 1
	}

	fmt.Printf("Selected target: %s (%s)\n", profile.Name, strings.ToLower(version))

	proc, err := process_linux.Attach(profile.ProcessName)
	if err != nil {
		log.Error("Attach failed: ", err)
		switch {
		case errors.Is(err, process_linux.ErrProcessNotFound):
			fmt.Println("Unable to attach to the game process. Ensure the correct game version is running and try again.")
		case errors.Is(err, process_linux.ErrProcfsUnavailable):
			fmt.Println("Process enumeration is unavailable. Run the trainer on a Linux host with /proc mounted.")
		}
		return 1
	}
	defer proc.Close()

	manager := trainer.NewManager(proc, profile)
	trainer.RegisterDefaults(manager)

	trainer.RunMenu(manager, os.Stdin, os.Stdout)
	return 0
}
