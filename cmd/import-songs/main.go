package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"songrate/internal/config"
	"songrate/internal/models"
	"songrate/internal/repositories"
	"songrate/internal/services"
)

// songLine is the JSON-lines import format: one song object per line
type songLine struct {
	Artist     string  `json:"artist"`
	Title      string  `json:"title"`
	Difficulty float64 `json:"difficulty"`
	Level      int     `json:"level"`
	Released   string  `json:"released"`
}

func main() {
	file := flag.String("file", "songs.json", "path to the songs JSON-lines file")
	drop := flag.Bool("drop", false, "drop the existing songs collection before importing")
	flag.Parse()

	// Load .env file for local development
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	db, err := models.NewDatabase(ctx, cfg.MongoURI, cfg.DatabaseName)
	cancel()
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close(context.Background())

	songs, err := readSongs(*file)
	if err != nil {
		slog.Error("Failed to read songs file", "file", *file, "error", err)
		os.Exit(1)
	}

	if *drop {
		slog.Info("Dropping existing songs collection")
		if err := db.DB.Collection("songs").Drop(context.Background()); err != nil {
			slog.Error("Failed to drop songs collection", "error", err)
			os.Exit(1)
		}
	}

	repo := repositories.NewMongoSongRepository(db, cfg.PageSizeDefault, cfg.PageSizeMax)
	if err := repo.SaveMany(context.Background(), songs); err != nil {
		slog.Error("Failed to import songs", "error", err)
		os.Exit(1)
	}

	if err := db.CreateIndexes(context.Background()); err != nil {
		slog.Warn("Failed to create indexes", "error", err)
	}

	slog.Info("Import complete", "count", len(songs), "file", *file)
}

// readSongs parses one JSON song object per line
func readSongs(path string) ([]models.Song, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var songs []models.Song
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var doc songLine
		if err := json.Unmarshal(line, &doc); err != nil {
			return nil, err
		}

		released, err := services.ParseReleased(doc.Released)
		if err != nil {
			return nil, err
		}

		songs = append(songs, *models.NewSong(doc.Artist, doc.Title, doc.Difficulty, doc.Level, released))
	}

	return songs, scanner.Err()
}
