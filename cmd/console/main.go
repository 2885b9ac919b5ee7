package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwebster45206/chronicle-engine/internal/savefile"
)

type ConsoleConfig struct {
	APIBaseURL string
	Timeout    time.Duration
	SavePath   string
	EmpireName string
	Random     bool
	OutDir     string
}

const maxSaveBytes = 64 << 20

func main() {
	cfg := &ConsoleConfig{
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
		Timeout:    60 * time.Second,
	}
	flag.StringVar(&cfg.SavePath, "in", "", "save file to read (.sav or extracted gamestate)")
	flag.StringVar(&cfg.EmpireName, "empire", "", "player empire name")
	flag.BoolVar(&cfg.Random, "random", false, "skip the form and fill every name at random")
	flag.StringVar(&cfg.OutDir, "out", ".", "directory the export file is written to")
	flag.Parse()

	if cfg.SavePath == "" && flag.NArg() > 0 {
		cfg.SavePath = flag.Arg(0)
	}
	if cfg.SavePath == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s [-random] [-empire name] [-out dir] -in <save file>\n", os.Args[0])
		os.Exit(1)
	}

	client := &http.Client{
		Timeout: cfg.Timeout,
	}

	if !testConnection(client, cfg.APIBaseURL) {
		fmt.Fprintf(os.Stderr, "Could not connect to API. Please ensure the API is running.\nTry: docker-compose up -d\n")
		os.Exit(1)
	}

	text, err := savefile.ReadFile(cfg.SavePath, maxSaveBytes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read save: %v\n", err)
		os.Exit(1)
	}

	api := &apiClient{client: client, baseURL: cfg.APIBaseURL}
	created, err := api.uploadSave(filepath.Base(cfg.SavePath), []byte(text))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to upload save: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Parsed %d timeline events\n", created.EventCount)

	p := tea.NewProgram(NewConsoleUI(cfg, api, created.ID),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
