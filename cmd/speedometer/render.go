package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/roffe/speedometer/pkg/colors"
	"github.com/roffe/speedometer/pkg/render"
	"github.com/roffe/speedometer/pkg/speedometer"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	speed      float64
	out        string
	size       int
	background string
	watch      bool
}

func newRenderCmd() *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the gauge to a PNG file",
		Example: `  speedometer render --speed 90 --out gauge.png
  speedometer render --config gauge.yaml --speed 42 --size 256 --out - > gauge.png
  speedometer render --config gauge.yaml --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loader.Load()
			if err != nil {
				return err
			}
			if err := renderTo(cmd.OutOrStdout(), cfg, opts); err != nil {
				return err
			}
			if !opts.watch {
				return nil
			}
			if cfgFile == "" {
				return fmt.Errorf("--watch requires --config")
			}
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return watch(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}
	f := cmd.Flags()
	f.Float64VarP(&opts.speed, "speed", "s", 0, "current speed")
	f.StringVarP(&opts.out, "out", "o", "speedometer.png", "output file, - for stdout")
	f.IntVar(&opts.size, "size", int(speedometer.ViewSize), "image width and height in pixels")
	f.StringVar(&opts.background, "background", "white", "background color (name or #rrggbb[aa])")
	f.BoolVarP(&opts.watch, "watch", "w", false, "render again every time the config file changes")
	return cmd
}

func renderTo(stdout io.Writer, cfg speedometer.Config, opts renderOptions) error {
	bg, err := colors.Parse(opts.background)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}
	var buf bytes.Buffer
	if err := render.WritePNG(&buf, cfg, opts.speed, opts.size, bg); err != nil {
		return err
	}
	if opts.out == "-" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(opts.out, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	log.Printf("wrote %s (%dx%d)", opts.out, opts.size, opts.size)
	return nil
}

func watch(ctx context.Context, stdout, stderr io.Writer, opts renderOptions) error {
	loader.Watch(func(cfg speedometer.Config, op fsnotify.Op, err error) {
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", op, err)
			return
		}
		if err := renderTo(stdout, cfg, opts); err != nil {
			fmt.Fprintf(stderr, "render: %v\n", err)
			return
		}
		log.Printf("%s %s: rendered", op, cfgFile)
	})
	<-ctx.Done()
	return nil
}

func init() {
	rootCmd.AddCommand(newRenderCmd())
}
