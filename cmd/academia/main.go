package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/maddiravi/academia-analyzer-agent/ai"
	"github.com/maddiravi/academia-analyzer-agent/ai/openai"
	"github.com/maddiravi/academia-analyzer-agent/ingestion"
	"github.com/maddiravi/academia-analyzer-agent/pipeline"
	"github.com/maddiravi/academia-analyzer-agent/retrieval"
	"github.com/maddiravi/academia-analyzer-agent/server"
	badgercache "github.com/maddiravi/academia-analyzer-agent/storage/badger"
)

func main() {
	// A missing .env is fine; flags and the real environment still apply.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "academia",
		Usage: "Analyze research documents into structured thesis data and summaries",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "analyze",
				Usage:     "Analyze a single document and print the results as JSON",
				ArgsUsage: "FILE",
				Action:    analyzeCommand,
				Flags: append(aiFlags(),
					&cli.IntFlag{
						Name:  "chunk-size",
						Usage: "Chunk window size in characters",
						Value: ingestion.DefaultChunkSize,
					},
					&cli.IntFlag{
						Name:  "chunk-overlap",
						Usage: "Overlap between consecutive chunks in characters",
						Value: ingestion.DefaultChunkOverlap,
					},
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Number of chunks retrieved to ground the summary",
						Value: retrieval.DefaultTopK,
					},
					&cli.StringFlag{
						Name:  "cache-dir",
						Usage: "Directory for the persistent embedding cache (disabled when empty)",
					},
				),
			},
			{
				Name:   "serve",
				Usage:  "Serve the analyzer over HTTP",
				Action: serveCommand,
				Flags: append(aiFlags(),
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen address",
						Value: server.DefaultAddr,
					},
					&cli.StringFlag{
						Name:  "upload-dir",
						Usage: "Directory holding uploads during analysis",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Maximum concurrent analyses",
						Value: server.DefaultWorkers,
					},
					&cli.StringFlag{
						Name:  "cache-dir",
						Usage: "Directory for the persistent embedding cache (disabled when empty)",
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func aiFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "api-key",
			Usage:    "API key for the OpenAI-compatible endpoint",
			EnvVars:  []string{"OPENROUTER_API_KEY"},
			Required: true,
		},
		&cli.StringFlag{
			Name:    "base-url",
			Usage:   "Base URL of the OpenAI-compatible endpoint",
			EnvVars: []string{"OPENAI_BASE_URL"},
			Value:   "https://openrouter.ai/api/v1",
		},
		&cli.StringFlag{
			Name:  "chat-model",
			Usage: "Model used for extraction and synthesis",
			Value: "openai/gpt-3.5-turbo",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Model used for chunk and query embeddings",
			Value: "text-embedding-3-small",
		},
	}
}

// newPipeline builds the AI provider and pipeline shared by both commands.
// The returned cleanup closes the provider and, when configured, the
// embedding cache.
func newPipeline(c *cli.Context) (*pipeline.Pipeline, func(), error) {
	aiConfig := ai.NewConfig(
		ai.WithAPIKey(c.String("api-key")),
		ai.WithBaseURL(c.String("base-url")),
		ai.WithChatModel(c.String("chat-model")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	provider, err := openai.NewProvider(aiConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create AI provider: %w", err)
	}

	opts := []pipeline.Option{
		pipeline.WithTopK(c.Int("top-k")),
	}
	if c.IsSet("chunk-size") || c.IsSet("chunk-overlap") {
		opts = append(opts, pipeline.WithChunking(c.Int("chunk-size"), c.Int("chunk-overlap")))
	}

	var cache *badgercache.Cache
	if dir := c.String("cache-dir"); dir != "" {
		cache, err = badgercache.OpenCache(dir, false)
		if err != nil {
			provider.Close()
			return nil, nil, fmt.Errorf("failed to open embedding cache: %w", err)
		}
		opts = append(opts, pipeline.WithVectorCache(cache, aiConfig.EmbeddingModel))
	}

	cleanup := func() {
		if cache != nil {
			if err := cache.Close(); err != nil {
				slog.Warn("failed to close embedding cache", "err", err)
			}
		}
		provider.Close()
	}

	p, err := pipeline.New(provider, opts...)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return p, cleanup, nil
}

func analyzeCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one FILE argument")
	}
	path := c.Args().First()

	p, cleanup, err := newPipeline(c)
	if err != nil {
		return err
	}
	defer cleanup()

	start := time.Now()
	result := p.Run(context.Background(), path)
	elapsed := time.Since(start)

	if result.Err != nil {
		return fmt.Errorf("analysis of %s failed: %w", path, result.Err)
	}

	printSection("THESIS DATA", result.Thesis, result.ThesisErr)
	printSection("SUMMARY", result.Summary, result.SummaryErr)
	fmt.Fprintf(os.Stderr, "Analyzed %d chunks in %s\n", result.ChunkCount, elapsed.Round(time.Millisecond))
	return nil
}

func printSection(title string, record any, recordErr error) {
	fmt.Printf("--- %s ---\n", title)
	if recordErr != nil {
		fmt.Printf("unavailable: %v\n", recordErr)
		return
	}
	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		fmt.Printf("unavailable: %v\n", err)
		return
	}
	fmt.Println(string(out))
}

func serveCommand(c *cli.Context) error {
	p, cleanup, err := newPipeline(c)
	if err != nil {
		return err
	}
	defer cleanup()

	srv, err := server.New(server.Config{
		Addr:      c.String("addr"),
		UploadDir: c.String("upload-dir"),
		Workers:   c.Int("workers"),
	}, p)
	if err != nil {
		return err
	}
	defer srv.Close()

	return srv.Run()
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
