package main

import (
	"flag"
	"net/http"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"raiders/communication"
	"raiders/communication/server"
	"raiders/experiments"
)

// config is read from the environment, then overridden by flags.
type config struct {
	LogLevel   string   `env:"RAIDERS_LOG_LEVEL"   envDefault:"info"`
	Experiment string   `env:"RAIDERS_EXPERIMENT"  envDefault:"baseline"`
	Games      int      `env:"RAIDERS_GAMES"       envDefault:"20"`
	Agents     []string `env:"RAIDERS_AGENTS"      envDefault:"greedy,random" envSeparator:","`
	Seed       uint64   `env:"RAIDERS_SEED"        envDefault:"1"`
	OutDir     string   `env:"RAIDERS_OUT_DIR"     envDefault:"results"`
	DBPath     string   `env:"RAIDERS_DB_PATH"`
	ListenAddr string   `env:"RAIDERS_LISTEN_ADDR" envDefault:":8080"`
	MaxMoves   int      `env:"RAIDERS_MAX_MOVES"   envDefault:"10000"`
}

func main() {
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to parse environment")
	}

	serve := flag.Bool("serve", false, "run a decision server instead of experiments")
	agents := flag.String("agents", strings.Join(cfg.Agents, ","), "comma-separated agent kinds per seat")
	flag.StringVar(&cfg.Experiment, "experiment", cfg.Experiment, "experiment name")
	flag.IntVar(&cfg.Games, "games", cfg.Games, "number of games to play")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed of the first game")
	flag.StringVar(&cfg.OutDir, "out", cfg.OutDir, "directory for CSV results")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to a SQLite results database")
	flag.StringVar(&cfg.ListenAddr, "listen", cfg.ListenAddr, "decision server listen address")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	flag.IntVar(&cfg.MaxMoves, "max-moves", cfg.MaxMoves, "abort a game after this many moves")
	flag.Parse()
	cfg.Agents = strings.Split(*agents, ",")

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	if *serve {
		runServer(cfg)
		return
	}
	runExperiment(cfg)
}

func runServer(cfg config) {
	chooser := communication.NewRandomChooser(cfg.Seed)
	log.Info().Msgf("decision server listening on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, server.New(chooser)); err != nil {
		log.Fatal().Err(err).Msg("decision server failed")
	}
}

func runExperiment(cfg config) {
	err := experiments.Run(experiments.Config{
		Name:     cfg.Experiment,
		Games:    cfg.Games,
		Agents:   cfg.Agents,
		Seed:     cfg.Seed,
		OutDir:   cfg.OutDir,
		DBPath:   cfg.DBPath,
		MaxMoves: cfg.MaxMoves,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}
