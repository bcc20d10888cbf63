package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-cli/internal/config"
	"github.com/vancomm/minesweeper-cli/internal/mines"
	"github.com/vancomm/minesweeper-cli/internal/session"
)

var (
	log = logrus.New()

	configPath string
	seed       uint64
)

func init() {
	const usage = "config file path"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
	flag.Uint64Var(&seed, "seed", 0, "random seed for a reproducible board (0 = random)")
}

func main() {
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal("unable to load config: ", err)
	}
	if seed != 0 {
		cfg.Game.Seed = &seed
	}

	if err := config.SetupLogging(log, cfg, os.Stderr); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}
	mines.Log = log
	session.Log = log

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	opts := []session.Option{session.WithFieldSize(cfg.Game.FieldSize)}
	if cfg.Game.Seed != nil {
		opts = append(opts, session.WithRand(rand.New(rand.NewPCG(*cfg.Game.Seed, *cfg.Game.Seed))))
	}

	s := session.New(os.Stdin, os.Stdout, opts...)
	state, err := s.Run(context.Background())

	var mie session.MalformedInputError
	switch {
	case err == nil:
		log.WithField("state", state).Info("session ended")
	case errors.As(err, &mie), errors.Is(err, session.ErrInputClosed):
		fmt.Fprintln(os.Stderr, err)
		log.WithField("state", state).Info("session ended: ", err)
	case errors.Is(err, mines.ErrInvalidMineCount):
		log.Fatal(err)
	default:
		log.Fatal("session failed: ", err)
	}
}
