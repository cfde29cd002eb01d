package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	pkg "github.com/sahifa-news/sahifa/pkg/internal"
	"github.com/sahifa-news/sahifa/pkg/internal/authn"
	"github.com/sahifa-news/sahifa/pkg/internal/cache"
	"github.com/sahifa-news/sahifa/pkg/internal/database"
	"github.com/sahifa-news/sahifa/pkg/internal/http"
	"github.com/sahifa-news/sahifa/pkg/internal/services"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Booting screen
	fmt.Println(color.YellowString(" ____        _     _  __\n/ ___|  __ _| |__ (_)/ _| __ _\n\\___ \\ / _` | '_ \\| | |_ / _` |\n ___) | (_| | | | | |  _| (_| |\n|____/ \\__,_|_| |_|_|_|  \\__,_|"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiYellow).Add(color.Bold).Sprintf("Sahifa"), pkg.AppVersion)
	fmt.Printf("The newsroom backend of the Sahifa arabic news network\n")
	color.HiBlack("=====================================================\n")

	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	// Load the identity provider public key
	if reader, err := authn.NewTokenReader(viper.GetString("security.jwt_public_key")); err != nil {
		log.Error().Err(err).Msg("An error occurred when reading identity provider public key. Authenticated features will be disabled.")
	} else {
		http.IReader = reader
		log.Info().Msg("Identity provider public key loaded.")
	}

	// Local cache
	if err := cache.NewStore(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when setting up local cache.")
	}

	// Connect to database
	if err := database.NewGorm(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connect to database.")
	} else if err := database.RunMigration(database.C); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when running database auto migration.")
	}

	// Contact message courier
	if courier := services.NewSMTPCourierFromConfig(); courier != nil {
		services.SetCourier(courier)
		log.Info().Msg("Contact message courier configured.")
	}

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	quartz.AddFunc("@every 60m", services.DoAutoDatabaseCleanup)
	quartz.Start()

	// Server
	go http.NewServer().Listen()

	// Messages
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	quartz.Stop()
}
