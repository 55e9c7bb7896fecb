package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rohan/vaani/internal/gateway"
	"github.com/rohan/vaani/internal/hn"
	"github.com/rohan/vaani/internal/llm"
	"github.com/rohan/vaani/internal/observability"
	"github.com/rohan/vaani/internal/store"
	"github.com/rohan/vaani/internal/voice"
	"github.com/rohan/vaani/internal/workflow"
	"github.com/rohan/vaani/pkg/config"
)

func main() {
	observability.PrintBanner()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal(err)
	}

	logger := observability.NewLogger()

	lists, err := store.NewListStore(cfg.App.DataDir)
	if err != nil {
		log.Fatal(err)
	}

	history, err := store.NewHistoryStore(filepath.Join(cfg.App.DataDir, "history.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer history.Close()

	chat, err := llm.New(cfg.OpenAI, logger)
	if err != nil {
		log.Fatal(err)
	}

	registry := workflow.NewRegistry(workflow.NewConversation(chat, history), logger)

	news := workflow.NewNews(hn.NewClient(), chat)
	reminders := workflow.NewReminders(lists)
	shopping := workflow.NewShopping(lists)

	// Registration order is the tie-break for overlapping triggers.
	for name, w := range map[string]interface{ SetTriggers([]string) }{
		"news":      news,
		"reminders": reminders,
		"shopping":  shopping,
	} {
		if triggers, ok := cfg.App.Triggers[name]; ok {
			w.SetTriggers(triggers)
		}
	}

	registry.Register(news)
	registry.Register(reminders)
	registry.Register(shopping)
	registry.Register(workflow.NewHelp(registry))

	var surface gateway.Converser
	switch cfg.App.Mode {
	case "voice":
		transcriber := voice.NewTranscriber(cfg.Speech.WhisperURL)
		speaker := voice.NewSpeaker(cfg.Speech)
		surface = voice.NewLoop(registry, transcriber, speaker, logger)
	default:
		surface = gateway.NewConsole(registry)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := surface.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("conversation loop ended: %v", err)
		}
		stop()
	}()

	<-ctx.Done()
	surface.Stop()
	log.Println("Goodbye.")
}
