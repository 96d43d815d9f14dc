package main

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/roffe/speedometer/pkg/colors"
	"github.com/roffe/speedometer/pkg/render"
	"github.com/roffe/speedometer/pkg/speedometer"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	labelStyle  = lipgloss.NewStyle().Width(10)
	cellStyle   = lipgloss.NewStyle().Width(12).Align(lipgloss.Right)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

func newGeometryCmd() *cobra.Command {
	var (
		speed    float64
		commands bool
	)
	cmd := &cobra.Command{
		Use:   "geometry",
		Short: "Print band angles, needle and readout position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loader.Load()
			if err != nil {
				return err
			}
			return printGeometry(cmd.OutOrStdout(), cfg, speed, commands)
		},
	}
	cmd.Flags().Float64VarP(&speed, "speed", "s", 0, "current speed")
	cmd.Flags().BoolVar(&commands, "commands", false, "also list every draw command")
	return cmd
}

func printGeometry(w io.Writer, cfg speedometer.Config, speed float64, commands bool) error {
	// measure text with the offscreen font so positions match rendered PNGs
	surface, err := render.New(int(speedometer.ViewSize), nil)
	if err != nil {
		return err
	}
	rec := speedometer.NewRecorder(surface.TextBounds)
	speedometer.Draw(rec, cfg, speed)

	var sb strings.Builder
	sb.WriteString(headerStyle.Render(row("band", "from", "to", "start", "sweep")) + "\n")
	for i, seg := range speedometer.Segments(cfg) {
		sb.WriteString(row(
			[]string{"low", "mid", "max"}[i],
			num(seg.From), num(seg.To),
			deg(seg.StartAngle), deg(seg.SweepAngle),
		))
		sb.WriteString(" " + swatch(seg.Color) + "\n")
	}

	x, y := speedometer.NeedleEnd(speed, cfg.MaxSpeed)
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("needle") + cellStyle.Render(deg(speedometer.NeedleAngle(speed, cfg.MaxSpeed))) +
		dimStyle.Render(fmt.Sprintf("  end (%s, %s)", num(x), num(y))) + " " + swatch(cfg.ArrowColor) + "\n")
	for _, c := range rec.Filter(speedometer.CmdText) {
		sb.WriteString(labelStyle.Render("readout") + cellStyle.Render(fmt.Sprintf("%q", c.Text)) +
			dimStyle.Render(fmt.Sprintf("  at (%s, %s) size %s", num(c.X1), num(c.Y1), num(c.Paint.TextSize))) +
			" " + swatch(cfg.TextColor) + "\n")
	}

	if commands {
		sb.WriteString("\n" + headerStyle.Render("draw commands") + "\n")
		for _, c := range rec.Commands {
			sb.WriteString(describe(c) + "\n")
		}
	}
	_, err = io.WriteString(w, sb.String())
	return err
}

func row(cols ...string) string {
	out := labelStyle.Render(cols[0])
	for _, c := range cols[1:] {
		out += cellStyle.Render(c)
	}
	return out
}

func describe(c speedometer.Command) string {
	kind := labelStyle.Render(c.Kind.String())
	switch c.Kind {
	case speedometer.CmdTranslate:
		return kind + fmt.Sprintf("dx=%s dy=%s", num(c.X1), num(c.Y1))
	case speedometer.CmdArc:
		return kind + fmt.Sprintf("start=%s sweep=%s width=%s %s", deg(c.Start), deg(c.Sweep), num(c.Paint.StrokeWidth), colors.Hex(c.Paint.Color))
	case speedometer.CmdText:
		return kind + fmt.Sprintf("%q x=%s y=%s %s", c.Text, num(c.X1), num(c.Y1), colors.Hex(c.Paint.Color))
	case speedometer.CmdLine:
		return kind + fmt.Sprintf("(%s, %s) -> (%s, %s) width=%s %s", num(c.X1), num(c.Y1), num(c.X2), num(c.Y2), num(c.Paint.StrokeWidth), colors.Hex(c.Paint.Color))
	}
	return kind
}

func swatch(c color.RGBA) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Hex(color.RGBA{c.R, c.G, c.B, 0xff}))).Render("■") +
		dimStyle.Render(" "+colors.Hex(c))
}

func num(v float64) string { return fmt.Sprintf("%.2f", v) }
func deg(v float64) string { return fmt.Sprintf("%.2f°", v) }

func init() {
	rootCmd.AddCommand(newGeometryCmd())
}
