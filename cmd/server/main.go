package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/unity-forge/backend/internal/api"
	"github.com/unity-forge/backend/internal/authoring"
	"github.com/unity-forge/backend/internal/config"
	"github.com/unity-forge/backend/internal/log"
	"github.com/unity-forge/backend/internal/storage"
)

// Version info (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

var logger = log.New("server")

func main() {
	// Environment overrides may come from a .env file in the working directory
	_ = godotenv.Load()

	configPath := flag.String("config", "", "path to the YAML config (default: unity-forge.yaml next to the executable)")
	flag.Parse()

	if *configPath == "" {
		// Get the executable's directory for config resolution
		exePath, err := os.Executable()
		if err != nil {
			fmt.Printf("Failed to get executable path: %v\n", err)
			os.Exit(1)
		}
		*configPath = filepath.Join(filepath.Dir(exePath), "unity-forge.yaml")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	level, err := log.ParseLevel(cfg.Advanced.LogLevel)
	if err != nil {
		logger.Warningf("%v, using notice", err)
	}
	log.SetLevel(level)

	// Ensure all data directories exist
	if err := cfg.EnsureDirectories(); err != nil {
		logger.Errorf("Failed to create directories: %v", err)
		os.Exit(1)
	}

	manager := authoring.NewManager(storage.NewLocalStore(), authoring.SettingsFromConfig(cfg))

	e := echo.New()
	e.HideBanner = true
	api.SetupMiddleware(e, cfg)
	api.RegisterRoutes(e, api.NewHandlers(&api.Dependencies{
		Service:            manager,
		Version:            Version,
		EditorVersion:      cfg.Unity.EditorVersion,
		AllowAssetDeletion: cfg.Security.AllowAssetDeletion,
		MaxAssetSize:       cfg.GetBodyLimitBytes(),
	}))

	s := &http.Server{
		Addr:         cfg.GetServerAddr(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	fmt.Printf("\n")
	fmt.Printf("╔═══════════════════════════════════════════════════════════╗\n")
	fmt.Printf("║           Unity Forge Authoring Server                    ║\n")
	fmt.Printf("╠═══════════════════════════════════════════════════════════╣\n")
	fmt.Printf("║  Version:    %-45s║\n", Version)
	fmt.Printf("║  Build Time: %-45s║\n", BuildTime)
	fmt.Printf("║  Editor:     %-45s║\n", cfg.Unity.EditorVersion)
	fmt.Printf("╠═══════════════════════════════════════════════════════════╣\n")
	fmt.Printf("║  Config:    %-46s║\n", *configPath)
	fmt.Printf("║  Listen:    http://%-38s║\n", cfg.GetServerAddr())
	fmt.Printf("║  Projects:  %-46s║\n", cfg.Storage.ProjectsRoot)
	fmt.Printf("╚═══════════════════════════════════════════════════════════╝\n")
	fmt.Printf("\n")

	if !cfg.Security.AllowAssetDeletion {
		logger.Notice("Asset deletion is disabled by configuration")
	}

	e.Logger.Fatal(e.StartServer(s))
}
