package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/keijioza/chatbot-test/internal/botcfg"
	"github.com/keijioza/chatbot-test/internal/botlog"
	"github.com/keijioza/chatbot-test/internal/shell"
	"github.com/keijioza/chatbot-test/memory"
	"github.com/keijioza/chatbot-test/rules"
)

func main() {
	cfg, err := botcfg.Load(botcfg.DefaultPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v; using defaults\n", err)
	}
	log := botlog.New(cfg.LogLevel)

	mem := memory.NewRecord()
	if cfg.MemoryPath != "" {
		if msg, err := mem.Load(cfg.MemoryPath); err != nil {
			// A missing file just means a fresh session.
			if !errors.Is(err, os.ErrNotExist) {
				log.WithError(err).Warn("could not load saved memory")
			}
		} else {
			log.Info(msg)
		}
	}

	bot := rules.New()
	dispatcher := shell.New(mem, log)

	// Graceful shutdown on Ctrl-C (SIGINT) / SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)
	go func() {
		<-sigch
		cancel()
	}()

	// stdin reader goroutine -> lines into channel
	scanner := bufio.NewScanner(os.Stdin)
	inputCh := make(chan string)
	go func() {
		for scanner.Scan() {
			inputCh <- scanner.Text()
		}
		close(inputCh)
	}()

	fmt.Println("Chatbot ready 🤖 — type /help for tips.")
	log.WithFields(logrus.Fields{
		"memory_path":   cfg.MemoryPath,
		"history_limit": cfg.HistoryLimit,
	}).Debug("session started")

outer:
	for {
		fmt.Print(cfg.Prompt)
		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			break outer
		case line, ok = <-inputCh:
			if !ok {
				break outer
			}
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if shell.IsCommand(line) {
			reply, quit := dispatcher.Dispatch(line)
			fmt.Println(reply)
			if quit {
				return // exit 0
			}
			continue
		}

		reply := bot.Respond(line, mem)
		fmt.Println(reply)
		mem.AppendTurn(line, reply, cfg.HistoryLimit)
		if cfg.MemoryPath != "" {
			if _, err := mem.Save(cfg.MemoryPath); err != nil {
				log.WithError(err).Warn("autosave failed")
			}
		}
	}

	// End-of-input or interrupt is a clean shutdown, not an error.
	fmt.Println("\nBye!")
	if err := scanner.Err(); err != nil {
		log.WithError(err).Warn("stdin read error")
	}
}
