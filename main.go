package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"blogapi/app/config"
	"blogapi/app/logging"
	"blogapi/app/middleware"
	"blogapi/app/repositories"
	"blogapi/app/routes"
	"blogapi/app/services"
)

const cliVersion = "1.0.0"

func main() {
	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = strings.ToLower(os.Args[1])
	}

	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("blogapi version %s\n", cliVersion)
	case "serve":
		serve()
	case "import":
		runImport(os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: blogapi <command> [options]
Commands:
  help                 Display this help message.
  version              Show version information.
  serve                Run the blog API server (default).
  import <file.json>   Bulk-load posts from a JSON array file.

Configuration is read from the environment (.env supported); see
app/config for the full list of variables.
`
	fmt.Println(helpText)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func serve() {
	cfg, err := config.Load()
	if err != nil {
		fatal("loading configuration: %v", err)
	}

	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	db, err := repositories.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		fatal("opening database: %v", err)
	}
	defer db.Close()

	if err := repositories.InitSchema(db); err != nil {
		fatal("initializing schema: %v", err)
	}

	sessions, err := repositories.NewSessionStore(cfg.SessionTTL)
	if err != nil {
		fatal("opening session store: %v", err)
	}
	defer sessions.Close()

	postRepo := repositories.NewSQLPostRepository(db, cfg.DBDriver)
	userRepo := repositories.NewSQLAdminUserRepository(db, cfg.DBDriver)

	postService := services.NewPostService(postRepo)
	authService := services.NewAuthService(userRepo, sessions)
	sitemapService := services.NewSitemapService(postRepo, cfg.BaseURL)

	hash := cfg.AdminPasswordHash
	if hash == "" {
		password := cfg.AdminPassword
		if password == "" {
			logger.Warn("ADMIN_PASSWORD not set, using default password")
			password = "password"
		}
		if hash, err = services.HashPassword(password); err != nil {
			fatal("hashing admin password: %v", err)
		}
	}
	if err := authService.Bootstrap(cfg.AdminUsername, hash); err != nil {
		fatal("bootstrapping admin user: %v", err)
	}

	router := routes.Setup(routes.Deps{
		Posts:   postService,
		Auth:    authService,
		Sitemap: sitemapService,
		Logger:  logger,
		CORS: middleware.CORSConfig{
			AllowedOrigins:   cfg.CORSAllowedOrigins,
			AllowCredentials: cfg.CORSAllowCredentials,
		},
	})

	logger.Info("server starting", "addr", cfg.Addr, "driver", cfg.DBDriver)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		fatal("server error: %v", err)
	}
}

func runImport(args []string) {
	if len(args) < 1 {
		fatal("import requires a JSON file path")
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("loading configuration: %v", err)
	}

	db, err := repositories.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		fatal("opening database: %v", err)
	}
	defer db.Close()

	if err := repositories.InitSchema(db); err != nil {
		fatal("initializing schema: %v", err)
	}

	file, err := os.Open(args[0])
	if err != nil {
		fatal("opening import file: %v", err)
	}
	defer file.Close()

	postService := services.NewPostService(repositories.NewSQLPostRepository(db, cfg.DBDriver))
	result, err := postService.Import(file)
	if err != nil {
		fatal("importing posts: %v", err)
	}

	fmt.Printf("imported %d posts, skipped %d\n", result.Imported, result.Skipped)
}
