// Command lojban is a REPL over a single reasoning session: it reads one
// utterance per line, treats a leading "?" as a query against the
// accumulated fact store and everything else as an assertion, and prints
// the outcome.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/lojban/nesy/internal/config"
	"github.com/lojban/nesy/internal/dictionary"
	"github.com/lojban/nesy/internal/history"
	"github.com/lojban/nesy/internal/session"
)

func main() {
	cfg := config.Default()

	root := &cobra.Command{
		Use:   "lojban",
		Short: "A REPL reasoning session over a fragment of Lojban",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}
	cfg.BindFlags(root.Flags())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	log := hclog.New(&hclog.LoggerOptions{
		Name:  "lojban",
		Level: hclog.Info,
	})

	dict := dictionary.New()
	if cfg.DictionaryPath != "" {
		f, err := os.Open(cfg.DictionaryPath)
		if err != nil {
			return fmt.Errorf("opening dictionary: %w", err)
		}
		defer f.Close()
		if err := dict.Load(f); err != nil {
			return fmt.Errorf("loading dictionary: %w", err)
		}
		log.Info("loaded dictionary", "path", cfg.DictionaryPath)
	}

	sess, err := session.New(dict, cfg.SaturationLimit, log)
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}
	hist := history.New()

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("lojban reasoning session. Lines starting with ? are queries; :history and :quit are REPL commands.")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case ":quit":
			return nil
		case ":history":
			printHistory(hist)
			continue
		}

		processLine(ctx, sess, hist, line)
	}
	return scanner.Err()
}

func processLine(ctx context.Context, sess *session.Session, hist *history.Log, line string) {
	if strings.HasPrefix(line, "?") {
		utterance := strings.TrimSpace(strings.TrimPrefix(line, "?"))
		ok, err := sess.Query(ctx, utterance)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			hist.Append(history.Entry{Line: line, Err: err})
			return
		}
		result := "FALSE"
		if ok {
			result = "TRUE"
		}
		fmt.Println(result)
		hist.Append(history.Entry{Line: line, Result: result})
		return
	}

	if err := sess.Assert(line); err != nil {
		fmt.Printf("error: %v\n", err)
		hist.Append(history.Entry{Line: line, Err: err})
		return
	}
	fmt.Println("OK")
	hist.Append(history.Entry{Line: line, Result: "OK"})
}

func printHistory(hist *history.Log) {
	for i, e := range hist.Entries() {
		status := e.Result
		if e.Err != nil {
			status = fmt.Sprintf("error: %v", e.Err)
		}
		fmt.Printf("%d: %s -> %s\n", i+1, e.Line, status)
	}
}
