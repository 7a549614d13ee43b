package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"scanvator/src/config"
	"scanvator/src/dispatcher"
	"scanvator/src/elev"
	"scanvator/src/executor"
	"scanvator/src/timer"
	"scanvator/src/types"

	"github.com/eiannone/keyboard"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	modeFlag := flag.String("mode", "", "manual or auto; asks for a key press when empty")
	delay := flag.Duration("delay", -1, "Delay between floors, overrides the config")
	rushSize := flag.Int("n", -1, "Number of random requests in auto mode, overrides the config")
	seed := flag.Uint64("seed", 0, "Seed for auto mode, random when 0")
	follow := flag.Bool("follow", false, "Keep reading \"origin destination\" lines during a manual run")
	flag.Parse()

	if err := run(*configPath, *modeFlag, *delay, *rushSize, *seed, *follow); err != nil {
		slog.Error("Simulation failed", "err", err)
		os.Exit(1)
	}
}

func run(configPath, modeFlag string, delay time.Duration, rushSize int, seed uint64, follow bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if delay >= 0 {
		cfg.StepDelay = delay
	}
	if rushSize >= 0 {
		cfg.RushSize = rushSize
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Level()
	closeLog, err := elev.InitLogger(level, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	mode, err := selectMode(modeFlag)
	if err != nil {
		return err
	}
	if mode == types.ModeQuit {
		slog.Info("Quit before starting")
		return nil
	}

	d, err := dispatcher.New(cfg.MinFloor, cfg.MaxFloor, dispatcher.WithStartFloor(cfg.StartFloor))
	if err != nil {
		return err
	}
	mgr := elev.StartStateMgr(d)
	defer mgr.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch mode {
	case types.ModeAuto:
		if cfg.Seed == 0 {
			cfg.Seed = rand.Uint64()
		}
		slog.Info("Simulating elevator rush", "requests", cfg.RushSize, "seed", cfg.Seed)
		elev.SimulateRush(mgr, rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)), cfg.RushSize, cfg.MinFloor, cfg.MaxFloor)
	case types.ModeManual:
		stdin := bufio.NewReader(os.Stdin)
		req, err := elev.ReadRequest(stdin, os.Stdout, cfg.MinFloor, cfg.MaxFloor)
		if err != nil {
			return err
		}
		if err := mgr.Submit(req.Origin, req.Destination); err != nil {
			fmt.Println("INVALID FLOORS. Try again.")
		}
		if follow {
			go func() {
				if _, err := elev.FollowRequests(ctx, stdin, mgr); err != nil {
					slog.Debug("Stopped following requests", "err", err)
				}
			}()
		}
	}

	summary, err := executor.Run(ctx, mgr, timer.NewPacer(cfg.StepDelay), os.Stdout)
	if err != nil {
		return err
	}
	slog.Debug("Summary", "summary", summary)
	return nil
}

func selectMode(modeFlag string) (types.Mode, error) {
	if modeFlag != "" {
		return elev.ParseMode(modeFlag)
	}
	return elev.ChooseMode(os.Stdout, keyboard.GetSingleKey)
}
