package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"srcdiff/internal/compare"
	"srcdiff/internal/diag"
	"srcdiff/internal/model"
	"srcdiff/internal/report"
	"srcdiff/internal/tui"
	"srcdiff/internal/web"

	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

// GitHub repository checked by --update. Overridable with -ldflags -X.
var (
	updateOwner = "srcdiff"
	updateRepo  = "srcdiff"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      updateOwner,
		Repository: updateRepo,
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not check for updates: %v\n", err)
		return
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Printf("👉 Download it from https://github.com/%s/%s/releases\n", updateOwner, updateRepo)
	} else {
		fmt.Printf("%s You are using the latest version: %s\n", model.IconDone, currentVer)
	}
}

// modes selects what happens after the report is written.
type modes struct {
	tui  bool
	web  bool
	addr string
	open bool
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: srcdiff [options] [TREE_A TREE_B]\n\n")
		fmt.Fprintf(os.Stderr, "srcdiff compares two trees of C sources (.c/.h) line by line, ignoring\n")
		fmt.Fprintf(os.Stderr, "comment-only changes, compares #define values and writes an HTML report.\n")
		fmt.Fprintf(os.Stderr, "Values not given as options are asked for interactively.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  srcdiff                          # Prompt for both trees and the report name\n")
		fmt.Fprintf(os.Stderr, "  srcdiff -a v1 -b v2 -o diff      # Write diff.html\n")
		fmt.Fprintf(os.Stderr, "  srcdiff v1 v2 -o diff --tui      # Write diff.html, then browse it in the terminal\n")
		fmt.Fprintf(os.Stderr, "  srcdiff v1 v2 --json             # Print the comparison as JSON\n")
		fmt.Fprintf(os.Stderr, "  srcdiff v1 v2 -o diff --web      # Serve the report on http://localhost:8080\n")
	}

	treeAFlag := pflag.StringP("tree-a", "a", "", "First source tree")
	treeBFlag := pflag.StringP("tree-b", "b", "", "Second source tree")
	outputFlag := pflag.StringP("output", "o", "", "Report file name without extension (.html is appended)")
	langFlag := pflag.StringP("lang", "l", report.DefaultLang, "Report language: zh-TW or en")
	encodingFlag := pflag.StringP("encoding", "e", "", "Source encoding, e.g. big5, gbk, shift_jis (default UTF-8)")
	highlightFlag := pflag.Bool("highlight", false, "Mark changed characters inside differing lines")
	jsonFlag := pflag.BoolP("json", "j", false, "Print the comparison as JSON instead of writing a report")
	tuiFlag := pflag.BoolP("tui", "t", false, "Browse the differences in the terminal after writing the report")
	webFlag := pflag.BoolP("web", "w", false, "Serve the report over HTTP after writing it")
	addrFlag := pflag.String("addr", ":8080", "Listen address for --web")
	openFlag := pflag.Bool("open", false, "Open the report (or the --web address) in the browser")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Log every stage and file to stderr")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for the latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("srcdiff version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	cfg := model.Config{
		RootA:     *treeAFlag,
		RootB:     *treeBFlag,
		Output:    *outputFlag,
		Lang:      *langFlag,
		Encoding:  *encodingFlag,
		Highlight: *highlightFlag,
	}
	if err := applyArgs(&cfg, pflag.Args()); err != nil {
		fail(err)
	}
	if _, ok := report.LookupLocale(cfg.Lang); !ok {
		fail(fmt.Errorf("unsupported report language %q", cfg.Lang))
	}

	logger := diag.New(os.Stderr, *verboseFlag)

	if *jsonFlag {
		if cfg.RootA == "" || cfg.RootB == "" {
			fail(fmt.Errorf("--json needs both trees"))
		}
		if err := runJsonMode(cfg, logger); err != nil {
			fail(err)
		}
		return
	}

	if cfg.RootA == "" || cfg.RootB == "" || cfg.Output == "" {
		var err error
		cfg, err = tui.Prompt(cfg)
		if err != nil {
			fail(err)
		}
	}

	err := runReportMode(cfg, logger, modes{
		tui:  *tuiFlag,
		web:  *webFlag,
		addr: *addrFlag,
		open: *openFlag,
	})
	if err != nil {
		fail(err)
	}
}

// applyArgs fills the trees from positional arguments.
func applyArgs(cfg *model.Config, args []string) error {
	switch {
	case len(args) == 0:
		return nil
	case len(args) == 2 && cfg.RootA == "" && cfg.RootB == "":
		cfg.RootA, cfg.RootB = args[0], args[1]
		return nil
	default:
		return fmt.Errorf("expected two tree arguments or --tree-a/--tree-b, got %q", args)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func runReportMode(cfg model.Config, logger *diag.Logger, m modes) error {
	rep, err := compare.Run(context.Background(), cfg, logger)
	if err != nil {
		return err
	}

	t := logger.Start("render", "html")
	page, err := report.Render(rep, report.Options{Lang: cfg.Lang, Highlight: cfg.Highlight})
	if err != nil {
		return err
	}
	t.Finish("bytes", len(page))

	outPath, err := filepath.Abs(cfg.OutputPath())
	if err != nil {
		return err
	}
	t = logger.Start("write", outPath)
	if err := report.WriteFile(outPath, page); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	t.Finish("bytes", len(page))

	loc, _ := report.LookupLocale(cfg.Lang)
	fmt.Printf("%s %s%s\n", model.IconDone, loc.Written, outPath)

	if m.open && !m.web {
		if err := web.Open(outPath); err != nil {
			logger.Warnf("could not open %s: %v", outPath, err)
		}
	}

	if m.tui {
		if err := tui.Browse(rep, outPath); err != nil {
			return err
		}
	}

	if m.web {
		if m.open {
			if err := web.Open(web.URL(m.addr)); err != nil {
				logger.Warnf("could not open browser: %v", err)
			}
		}
		return web.StartServer(m.addr, web.NewHandler(page, rep))
	}
	return nil
}

func runJsonMode(cfg model.Config, logger *diag.Logger) error {
	rep, err := compare.Run(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
