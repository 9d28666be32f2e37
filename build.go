package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/van-is-code/portfolio/internal/config"
	"github.com/van-is-code/portfolio/internal/content"
	"github.com/van-is-code/portfolio/internal/view"
)

var buildCmd = &cobra.Command{
	Use:     "build",
	Short:   "Write the entry document and printable CVs into the assets directory",
	Long:    BuildHelp,
	PreRunE: bindFlags,
	RunE:    runBuild,
}

var (
	buildLang     string
	buildWasmExec string
)

func init() {
	buildCmd.Flags().String("dir", config.DefaultDir, "Output directory")
	buildCmd.Flags().String("entry", config.DefaultEntry, "Entry document name")
	buildCmd.Flags().StringVar(&buildLang, "lang", string(content.DefaultLanguage), "Language of the entry document before the client loads")
	buildCmd.Flags().StringVar(&buildWasmExec, "wasm-exec", "", "Path to wasm_exec.js (default: from the Go installation)")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(settings)
	if err != nil {
		return err
	}

	if err := buildSite(cmd.Context(), cfg.Dir, cfg.Entry, content.ParseLanguage(buildLang)); err != nil {
		return err
	}

	src := buildWasmExec
	if src == "" {
		src = findWasmExec()
	}
	if src == "" {
		log.Printf("wasm_exec.js not found; copy it into %s before serving", cfg.Dir)
		return nil
	}
	if err := copyFile(src, filepath.Join(cfg.Dir, "wasm_exec.js")); err != nil {
		return fmt.Errorf("copy wasm_exec.js: %w", err)
	}
	log.Printf("Copied %s", src)
	return nil
}

// buildSite validates the bundles, then writes the entry document and one
// printable CV per language under dir.
func buildSite(ctx context.Context, dir, entry string, lang content.Language) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := content.ValidateAll(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Join(dir, "cv"), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	shell, err := view.RenderShell(view.ShellOptions{Lang: lang})
	if err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, entry), shell); err != nil {
		return err
	}

	loader := content.NewLoader()
	g, ctx := errgroup.WithContext(ctx)
	for _, l := range content.Languages {
		g.Go(func() error {
			p, err := loader.Load(ctx, l)
			if err != nil {
				return err
			}
			doc, err := view.RenderPrint(l, p)
			if err != nil {
				return err
			}
			return writeFile(filepath.Join(dir, "cv", l.String()+".html"), doc)
		})
	}
	return g.Wait()
}

func writeFile(name, body string) error {
	if err := os.WriteFile(name, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	log.Printf("Wrote %s", name)
	return nil
}

func findWasmExec() string {
	root := runtime.GOROOT()
	if env := os.Getenv("GOROOT"); env != "" {
		root = env
	}
	for _, p := range []string{
		filepath.Join(root, "lib", "wasm", "wasm_exec.js"),
		filepath.Join(root, "misc", "wasm", "wasm_exec.js"),
	} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
