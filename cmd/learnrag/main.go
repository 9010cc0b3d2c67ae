package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"learnrag/internal/config"
	"learnrag/internal/domain"
	"learnrag/internal/embedding/hash"
	embopenai "learnrag/internal/embedding/openai"
	"learnrag/internal/index"
	"learnrag/internal/llm"
	"learnrag/internal/service"
	"learnrag/internal/summarizer"
	"learnrag/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/learnrag/config.yaml if not provided)")
	flag.Parse()
	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Println("Usage: learnrag [--config=config.yaml] document.txt [more.txt ...]")
		os.Exit(1)
	}

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Assemble components
	var emb domain.Embedder
	switch cfg.Embedder.Type {
	case "hash", "":
		emb = hash.NewEmbedder(cfg.Embedder.Dimension)
	case "openai":
		if cfg.Embedder.OpenAI == nil {
			log.Fatalf("openai embedder config missing")
		}
		client, err := embopenai.NewClient(embopenai.Config{
			BaseURL:   cfg.Embedder.OpenAI.BaseURL,
			APIKeyEnv: cfg.Embedder.OpenAI.APIKeyEnv,
			Model:     cfg.Embedder.OpenAI.Model,
			Timeout:   time.Duration(cfg.Embedder.OpenAI.TimeoutSecs) * time.Second,
		})
		if err != nil {
			log.Fatalf("openai embedder init failed: %v", err)
		}
		emb = client
	default:
		log.Fatalf("unknown embedder: %s", cfg.Embedder.Type)
	}

	completer, err := llm.NewClient(llm.Config{
		BaseURL:     cfg.LLM.BaseURL,
		APIKeyEnv:   cfg.LLM.APIKeyEnv,
		Model:       cfg.LLM.Model,
		Timeout:     time.Duration(cfg.LLM.TimeoutSecs) * time.Second,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	})
	if err != nil {
		log.Fatalf("llm client init failed: %v", err)
	}

	coordinator := index.NewCoordinator(emb, index.Config{
		WordsPerChunk: cfg.Chunker.WordsPerChunk,
		CacheSize:     cfg.Retrieval.CacheSize,
	})

	svc := service.New(coordinator, completer, summarizer.NewFrequencySummarizer(), service.Config{
		TopK:             cfg.Retrieval.TopK,
		MaxContextChars:  cfg.Context.MaxChars,
		SummarySentences: cfg.Summary.MaxSentences,
	})

	var corpus strings.Builder
	for _, path := range inputs {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("failed to read %s: %v", path, err)
		}
		corpus.WriteString(string(data))
		corpus.WriteString("\n")
	}
	summary, err := svc.IngestText(context.Background(), corpus.String())
	if err != nil {
		log.Fatalf("ingest failed: %v", err)
	}

	m := tui.New(svc, summary)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
