// Command langswap localizes static HTML pages authored with [[xx]]
// language markup.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/lmittmann/tint"

	"github.com/ZaguanLabs/langswap"
	"github.com/ZaguanLabs/langswap/store"
	"github.com/ZaguanLabs/langswap/web"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = langswap.Version
	commit    = langswap.GitCommit
	buildDate = langswap.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("langswap", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	lang := fs.String("lang", "", "Explicit language code (e.g. ca, en); empty runs the resolution chain")
	defaultLang := fs.String("default", langswap.DefaultLanguage, "Default language code")
	param := fs.String("param", langswap.DefaultQueryParam, "Query parameter name for language switching")
	output := fs.String("output", "", "Output file (default: stdout)")
	outputShort := fs.String("o", "", "Output file (short for --output)")
	storePath := fs.String("store", "", "JSON file remembering the last chosen language")
	serveAddr := fs.String("serve", "", "Serve the page localized per request on this address (e.g. :8080)")
	showVersion := fs.Bool("version", false, "Show version")
	quiet := fs.Bool("quiet", false, "Suppress progress output and diagnostics")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", langswap.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	// Handle -o alias for --output
	if *outputShort != "" && *output == "" {
		*output = *outputShort
	}

	if *lang != "" && !langswap.IsValidLanguage(langswap.NormalizeLanguage(*lang)) {
		return fmt.Errorf("invalid language code %q", *lang)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if !*quiet {
		logger = slog.New(tint.NewHandler(stderr, &tint.Options{Level: slog.LevelWarn}))
	}

	opts := []langswap.Option{
		langswap.WithDefaultLanguage(*defaultLang),
		langswap.WithQueryParam(*param),
		langswap.WithLogger(logger),
	}
	if *storePath != "" {
		opts = append(opts, langswap.WithStore(store.NewFileStore(*storePath)))
	}

	// Serve mode: localize per request instead of once.
	if *serveAddr != "" {
		if fs.NArg() != 1 {
			return fmt.Errorf("--serve requires exactly one HTML file")
		}
		return runServe(*serveAddr, fs.Arg(0), *param, logger, opts)
	}

	// Batch mode: several files, one engine each.
	if fs.NArg() > 1 {
		return runBatch(fs.Args(), *lang, stdout, stderr, *quiet, *jsonOutput, opts)
	}

	// Get input
	var input string
	var inputName string

	if fs.NArg() == 0 {
		// Read from stdin
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		input = string(data)
		inputName = "stdin"
	} else {
		inputPath := fs.Arg(0)
		data, err := os.ReadFile(inputPath) // #nosec G304 - CLI tool reads user-specified files
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		input = string(data)
		inputName = filepath.Base(inputPath)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	if err != nil {
		return fmt.Errorf("parsing HTML: %w", err)
	}

	start := time.Now()

	eng := langswap.New(doc, opts...)
	eng.BuildIndex()

	if *lang != "" {
		eng.SetLanguage(*lang)
	} else {
		eng.Localize(langswap.Source{})
	}
	eng.BindActions()

	result, err := eng.Render()
	if err != nil {
		return fmt.Errorf("localization failed: %w", err)
	}
	elapsed := time.Since(start)

	// Output
	var out io.Writer = stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if *jsonOutput {
		return outputJSON(out, inputName, result, eng, elapsed)
	}

	fmt.Fprint(out, result)

	// Stats
	if !*quiet {
		fmt.Fprintf(stderr, "\nDone in %v\n", elapsed.Round(time.Millisecond))
		fmt.Fprintf(stderr, "  Language:     %s (%s)\n",
			eng.ActiveLanguage(), langswap.LanguageName(eng.ActiveLanguage()))
		fmt.Fprintf(stderr, "  Nodes found:  %d\n", eng.Nodes())
	}

	return nil
}

// runServe mounts the web handler for a single page.
func runServe(addr, path, param string, logger *slog.Logger, opts []langswap.Option) error {
	data, err := os.ReadFile(path) // #nosec G304 - CLI tool reads user-specified files
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	handler := web.NewHandler(data, opts...)
	handler.Param = param
	handler.Logger = logger

	logger.Info("serving localized page", "addr", addr, "file", path)

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// runBatch localizes several files concurrently, writing each result
// next to its input as <name>.<lang><ext>.
func runBatch(paths []string, lang string, stdout, stderr io.Writer, quiet, jsonOut bool, opts []langswap.Option) error {
	start := time.Now()
	results := langswap.LocalizeFiles(paths, lang, opts...)

	type batchStat struct {
		File     string `json:"file"`
		Output   string `json:"output,omitempty"`
		Language string `json:"language,omitempty"`
		Nodes    int    `json:"nodes"`
		Error    string `json:"error,omitempty"`
	}

	var stats []batchStat
	var failed int

	for _, res := range results {
		stat := batchStat{File: res.Path, Language: res.Language, Nodes: res.Nodes}

		if res.Err != nil {
			stat.Error = res.Err.Error()
			failed++
			stats = append(stats, stat)
			continue
		}

		outPath := localizedPath(res.Path, res.Language)
		if err := os.WriteFile(outPath, []byte(res.Content), 0o644); err != nil {
			stat.Error = err.Error()
			failed++
			stats = append(stats, stat)
			continue
		}
		stat.Output = outPath
		stats = append(stats, stat)

		if !quiet && !jsonOut {
			fmt.Fprintf(stderr, "%s -> %s (%d nodes)\n", res.Path, outPath, res.Nodes)
		}
	}

	if jsonOut {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(stats); err != nil {
			return err
		}
	} else if !quiet {
		fmt.Fprintf(stderr, "\nDone in %v: %d files, %d failed\n",
			time.Since(start).Round(time.Millisecond), len(results), failed)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

// localizedPath inserts the language code before the extension.
func localizedPath(path, lang string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "." + lang + ext
}

// outputJSON writes the localized content plus stats as JSON.
func outputJSON(w io.Writer, file, content string, eng *langswap.Engine, elapsed time.Duration) error {
	out := struct {
		File      string `json:"file"`
		Content   string `json:"content"`
		Language  string `json:"language"`
		Nodes     int    `json:"nodes"`
		ElapsedMS int64  `json:"elapsed_ms"`
	}{
		File:      file,
		Content:   content,
		Language:  eng.ActiveLanguage(),
		Nodes:     eng.Nodes(),
		ElapsedMS: elapsed.Milliseconds(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
