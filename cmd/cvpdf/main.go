package main

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/patjsic/cvpdf"
	"github.com/patjsic/cvpdf/pdf"
	"github.com/patjsic/cvpdf/preview"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/version"
)

//go:embed cv.md
var bundledCV []byte

const (
	defaultThemeName = "default"
	defaultWidth     = 80
	defaultFontDir   = "fonts"
)

func init() {
	version.SetDefaultModule("github.com/patjsic/cvpdf")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	output      string
	fontDir     string
	coreFonts   bool
	preview     bool
	width       int
	themeName   string
	boring      bool
	source      string
	showVersion bool
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	flags := pflag.NewFlagSet("cvpdf", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.output, "output", "o", "", "Output PDF path, - for stdout (default <Name>_CV.pdf)")
	flags.StringVar(&opts.fontDir, "fonts", defaultFontDir, "Directory holding the DejaVu TTF fonts")
	flags.BoolVar(&opts.coreFonts, "core-fonts", false, "Use the built-in Helvetica font instead of TTF files")
	flags.BoolVar(&opts.preview, "preview", false, "Print a text preview instead of writing a PDF")
	flags.IntVarP(&opts.width, "width", "w", 0, "Preview width (0 uses terminal width if available)")
	flags.StringVarP(&opts.themeName, "theme", "t", defaultThemeName, "Preview theme name")
	flags.BoolVarP(&opts.boring, "boring", "b", false, "Preview without ANSI styling")
	flags.StringVar(&opts.source, "source", "", "Markdown CV to render instead of the bundled one")
	flags.BoolVar(&opts.showVersion, "version", false, "Print version and exit")
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: cvpdf [flags]\n")
		fmt.Fprintln(stderr, "\nWithout flags the bundled CV is written to <Name>_CV.pdf using fonts from ./fonts.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		flags.Usage()
		return 2
	}
	if opts.showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}

	doc, err := loadDocument(opts.source)
	if err != nil {
		fmt.Fprintf(stderr, "load cv: %v\n", err)
		return 1
	}

	if opts.preview {
		theme, ok := preview.ThemeByName(opts.themeName)
		if !ok {
			fmt.Fprintf(stderr, "unknown theme %q\n\n", opts.themeName)
			for _, name := range preview.AvailableThemes() {
				fmt.Fprintln(stderr, name)
			}
			return 2
		}
		if opts.boring {
			theme = preview.BoringTheme()
		}
		cfg := preview.DefaultConfig()
		cfg.Width = resolveWidth(opts.width)
		cfg.Theme = theme
		if _, err := preview.Render(doc, stdout, cfg); err != nil {
			fmt.Fprintf(stderr, "render preview: %v\n", err)
			return 1
		}
		return 0
	}

	cfg, err := pdfConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "pdf config: %v\n", err)
		return 2
	}
	cfg.Title = doc.Header.Name + " CV"
	cfg.Author = doc.Header.Name
	req := pdf.RenderRequest{Document: doc, Config: cfg}

	if opts.output == "-" {
		if isTerminal(stdout) {
			fmt.Fprintln(stderr, "refusing to write PDF to terminal; use -o/--output")
			return 2
		}
		req.Writer = stdout
		if _, err := pdf.Render(req); err != nil {
			fmt.Fprintf(stderr, "render pdf: %v\n", err)
			return 1
		}
		return 0
	}

	out := opts.output
	if out == "" {
		out = doc.FileName()
	}
	out = normalizePath(out)
	if _, err := pdf.WriteFile(out, req); err != nil {
		fmt.Fprintf(stderr, "render pdf: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "CV successfully created: %s\n", displayPath(out))
	return 0
}

func loadDocument(source string) (cvpdf.Document, error) {
	src := bundledCV
	if source != "" {
		path := normalizePath(source)
		data, err := os.ReadFile(path)
		if err != nil {
			return cvpdf.Document{}, &cvpdf.AssetLoadError{Path: path, Err: err}
		}
		src = data
	}
	return cvpdf.ParseMarkdown(src)
}

func pdfConfig(opts options) (pdf.Config, error) {
	cfg := pdf.DefaultConfig()
	if opts.coreFonts {
		cfg = pdf.CoreFontConfig()
	} else if dir := strings.TrimSpace(opts.fontDir); dir != "" {
		cfg.FontDir = normalizePath(dir)
	}
	created, err := sourceDateEpoch(os.Getenv("SOURCE_DATE_EPOCH"))
	if err != nil {
		return pdf.Config{}, err
	}
	cfg.CreationDate = created
	return cfg, nil
}

// sourceDateEpoch parses a SOURCE_DATE_EPOCH value. Empty yields the zero
// time, which the pdf package replaces with its fixed default.
func sourceDateEpoch(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	secs, err := strconv.ParseInt(value, 10, 64)
	if err != nil || secs < 0 {
		return time.Time{}, fmt.Errorf("invalid SOURCE_DATE_EPOCH %q", value)
	}
	return time.Unix(secs, 0).UTC(), nil
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

// displayPath shortens path relative to the working directory when it lies
// below it.
func displayPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
