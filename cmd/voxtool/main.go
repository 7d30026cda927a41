// Command voxtool inspects and converts .vox voxel models.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"

	"github.com/voxelsplace/vox/api"
	"github.com/voxelsplace/vox/internal/logging"
	"github.com/voxelsplace/vox/vox"
)

// Globals are the flags shared by every command.
type Globals struct {
	LogLevel        string `name:"log-level" default:"warn" enum:"debug,info,warn,error" env:"VOXTOOL_LOG_LEVEL" help:"Log level (${enum})"`
	LogFormat       string `name:"log-format" default:"text" enum:"text,json" env:"VOXTOOL_LOG_FORMAT" help:"Log format (${enum})"`
	StrictUnknown   bool   `name:"strict-unknown" help:"Fail on unknown chunk ids instead of skipping them"`
	LenientChildren bool   `name:"lenient-children" help:"Ignore declared children lengths and read chunks until the end of the file"`

	Logger *slog.Logger `kong:"-"`
}

func (g *Globals) options() []vox.Option {
	opts := []vox.Option{vox.WithLogger(g.Logger)}
	if g.StrictUnknown {
		opts = append(opts, vox.WithUnknownChunkPolicy(vox.UnknownError))
	}
	if g.LenientChildren {
		opts = append(opts, vox.WithChildrenPolicy(vox.ChildrenIgnore))
	}
	return opts
}

type CLI struct {
	Globals

	Info    InfoCmd    `cmd:"" help:"Print a summary of a model"`
	GLB     GLBCmd     `cmd:"" name:"glb" help:"Convert a model to binary glTF"`
	Palette PaletteCmd `cmd:"" help:"Print the 256 palette entries as hex"`
}

type InfoCmd struct {
	Locator string `arg:"" help:"Path or http(s) URL of a .vox file"`
	Format  string `short:"f" default:"text" enum:"text,yaml,json" help:"Output format (${enum})"`
}

func (c *InfoCmd) Run(g *Globals, k *kong.Context) error {
	m, err := api.Parse(context.Background(), c.Locator, g.options()...)
	if err != nil {
		return err
	}
	s := api.Summarize(m)
	switch c.Format {
	case "yaml":
		enc := yaml.NewEncoder(k.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(k.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	default:
		return printSummary(k.Stdout, s)
	}
}

func printSummary(w io.Writer, s api.Summary) error {
	_, err := fmt.Fprintf(w, "version:   %d\nsize:      %dx%dx%d\nvoxels:    %d\ncolors:    %d (%s palette)\nframes:    %d\nmaterials: %d\ndigest:    %s\n",
		s.Version, s.Size[0], s.Size[1], s.Size[2], s.Voxels, s.Colors, s.Palette, len(s.Frames), len(s.Materials), s.Digest)
	return err
}

type GLBCmd struct {
	Locator string `arg:"" help:"Path or http(s) URL of a .vox file"`
	Output  string `arg:"" help:"Output .glb path" type:"path"`
}

func (c *GLBCmd) Run(g *Globals) error {
	m, err := api.Parse(context.Background(), c.Locator, g.options()...)
	if err != nil {
		return err
	}
	out, err := api.ModelToGLB(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Output, out, 0o644); err != nil {
		return err
	}
	g.Logger.Info("wrote glb", "path", c.Output, "bytes", len(out), "voxels", len(m.Voxels))
	return nil
}

type PaletteCmd struct {
	Locator string `arg:"" help:"Path or http(s) URL of a .vox file"`
}

func (c *PaletteCmd) Run(g *Globals, k *kong.Context) error {
	m, err := api.Parse(context.Background(), c.Locator, g.options()...)
	if err != nil {
		return err
	}
	for i, p := range m.Palette {
		if _, err := fmt.Fprintf(k.Stdout, "%3d #%02x%02x%02x%02x\n", i, p.R, p.G, p.B, p.A); err != nil {
			return err
		}
	}
	return nil
}

func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("voxtool"),
		kong.Description("Inspect and convert .vox voxel models"),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(cli.LogLevel)
	if err != nil {
		return err
	}
	cli.Logger = logging.New(stderr, level, logging.Format(cli.LogFormat))
	return ctx.Run(&cli.Globals)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
