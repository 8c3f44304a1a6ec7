package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/TheLionCoder/wordle-solver/internal/httpserver"
	"github.com/TheLionCoder/wordle-solver/internal/solver"
	"github.com/TheLionCoder/wordle-solver/internal/store"
	"github.com/TheLionCoder/wordle-solver/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}
	dict := words.Default()

	var st store.Store
	if dsn := os.Getenv("DB_PATH"); dsn != "" {
		var err error
		st, err = store.OpenSQLite(dsn)
		if err != nil {
			log.Fatal().Err(err).Str("db", dsn).Msg("failed to open results store")
		}
	} else {
		st = store.NewMemoryStore()
	}

	workers, _ := strconv.Atoi(getEnv("SOLVER_WORKERS", "0"))
	sv := solver.New(dict, solver.Config{Workers: workers})

	srv := httpserver.New(dict, sv, st)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Int("words", dict.Len()).Msg("starting wordle-solver")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
