package main

import (
	"bufio"
	"context"
	"flag"
	"os"
	"strings"

	"github.com/jiyoon/drambook/internal/config"
	"github.com/jiyoon/drambook/internal/domain"
	"github.com/jiyoon/drambook/internal/logger"
	"github.com/jiyoon/drambook/internal/repository"
)

// Seed imports a venue menu sheet into the products table. The sheet is
// one whiskey name per line; blank lines and lines starting with # are
// skipped. An existing menu for the venue is replaced wholesale.
func main() {
	appLogger := logger.New(&logger.Config{
		Level:       "info",
		Format:      "text",
		ServiceName: "drambook-seed",
		Environment: "local",
	})
	logger.SetDefault(appLogger)

	venue := flag.String("venue", domain.VenueHannam, "Venue the menu belongs to")
	file := flag.String("file", "", "Path to the menu sheet, one whiskey name per line")
	configPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	if *venue != domain.VenueHannam && *venue != domain.VenueChungmuro {
		appLogger.WithField("venue", *venue).Fatal("Unknown venue")
	}
	if *file == "" {
		appLogger.Fatal("A menu sheet is required, pass -file")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load config")
	}

	db, err := repository.InitDB(&cfg.Database, appLogger)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize database")
	}
	productRepo := repository.NewProductRepository(db)

	names, err := readMenuSheet(*file)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to read menu sheet")
	}
	if len(names) == 0 {
		appLogger.WithField("file", *file).Fatal("Menu sheet contains no names")
	}

	if err := productRepo.ReplaceVenue(context.Background(), *venue, names); err != nil {
		appLogger.WithError(err).Fatal("Failed to import menu")
	}

	appLogger.WithFields(logger.Fields{
		"venue": *venue,
		"count": len(names),
	}).Info("Menu imported")
}

func readMenuSheet(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var names []string
	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names, scanner.Err()
}
