package main

import (
	"fmt"
	"strings"

	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/config"
	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/database"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// app carries state shared by every subcommand once PersistentPreRunE has run
type app struct {
	configFile    string
	configuration *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "restaurant-pizzas",
		Short:         "Restaurant pizzas API server and maintenance commands",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loadDotenvFile()

			conf, err := config.LoadConfig(a.configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			a.configuration = conf

			setUpLogger(conf)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "path to an optional YAML config file")

	root.AddCommand(newServeCmd(a))
	root.AddCommand(newMigrateCmd(a))
	root.AddCommand(newSeedCmd(a))
	return root
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter. An explicit
// LOG_LEVEL wins, otherwise the level follows the environment.
func setUpLogger(conf *config.Config) {
	log.SetFormatter(&log.JSONFormatter{})

	if conf.LogLevel != "" {
		level, err := log.ParseLevel(conf.LogLevel)
		if err == nil {
			log.SetLevel(level)
			database.SetLogger(log.StandardLogger())
			return
		}
		log.WithField("log_level", conf.LogLevel).Warn("Unknown log level, falling back to environment default")
	}

	switch strings.ToLower(conf.Environment) {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
	database.SetLogger(log.StandardLogger())
}

// openDatabase connects to the configured database and migrates the schema
func (a *app) openDatabase() (*gorm.DB, error) {
	dbConfig, err := database.ParseDatabaseURI(a.configuration.DatabaseURI)
	if err != nil {
		return nil, err
	}
	dbConfig.MaxRetries = a.configuration.DBMaxRetries
	log.Infof("Using database %s", dbConfig.String())

	db, err := database.InitDatabase(dbConfig)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		closeDatabase(db)
		return nil, err
	}
	return db, nil
}

func closeDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.WithError(err).Warn("Failed to close database")
	}
}
