// Command chartlayout computes the chart layout for a CSV or XLSX trace.
package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"os"
	"os/signal"

	"gioui.org/unit"
	"github.com/spf13/cobra"

	"git.sr.ht/~whereswaldon/chartlayout/axis"
	"git.sr.ht/~whereswaldon/chartlayout/dataset"
	"git.sr.ht/~whereswaldon/chartlayout/scroll"
	"git.sr.ht/~whereswaldon/chartlayout/segment"
	"git.sr.ht/~whereswaldon/chartlayout/source"
)

type options struct {
	width, spacing         float32
	startMargin, endMargin float32
	density                float32
	step                   float64
	viewport, height       int
	scroll                 float32
	sheet                  string
	watch                  bool
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout))
}

// execute runs the command with args and returns the process exit code.
func execute(args []string, stdout io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	var opts options
	rootCmd := newRootCmd(&opts)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chartlayout [trace.csv|trace.xlsx]",
		Short: "Compute chart layout geometry for a data trace",
		Long: `chartlayout reads a table whose first column holds x values and whose
other columns are data series, then prints the axis bounds, segment geometry
and scroll range a renderer would use to draw it as bars.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), args[0], *opts)
		},
	}
	flags := rootCmd.Flags()
	flags.Float32Var(&opts.width, "width", 12, "Preferred segment width in dp")
	flags.Float32Var(&opts.spacing, "spacing", 4, "Spacing between segments in dp")
	flags.Float32Var(&opts.startMargin, "start-margin", 0, "Margin before the first segment in dp")
	flags.Float32Var(&opts.endMargin, "end-margin", 0, "Margin after the last segment in dp")
	flags.Float32Var(&opts.density, "density", 1, "Pixels per dp")
	flags.Float64Var(&opts.step, "step", axis.DefaultStep, "X distance represented by one segment")
	flags.IntVar(&opts.viewport, "viewport", 800, "Viewport width in pixels")
	flags.IntVar(&opts.height, "height", 400, "Viewport height in pixels")
	flags.Float32Var(&opts.scroll, "scroll", 0, "Requested scroll offset in pixels")
	flags.StringVar(&opts.sheet, "sheet", "", "Worksheet to read from XLSX input (default: first sheet)")
	flags.BoolVar(&opts.watch, "watch", false, "Recompute the layout whenever the file changes")
	return rootCmd
}

func run(ctx context.Context, w io.Writer, path string, opts options) error {
	if opts.viewport <= 0 || opts.height <= 0 {
		return fmt.Errorf("invalid viewport %dx%d", opts.viewport, opts.height)
	}
	if !opts.watch {
		table, err := source.LoadFile(path, opts.sheet)
		if err != nil {
			return err
		}
		return report(w, table, opts)
	}
	return source.Watch(ctx, path, opts.sheet, func(table source.Table) {
		if err := report(w, table, opts); err != nil {
			log.Printf("failed computing layout: %v", err)
		}
	})
}

func report(w io.Writer, table source.Table, opts options) error {
	spec := segment.NewDraw(
		unit.Dp(opts.width), unit.Dp(opts.spacing),
		unit.Dp(opts.startMargin), unit.Dp(opts.endMargin),
		unit.Metric{PxPerDp: opts.density, PxPerSp: opts.density},
	)
	merged := dataset.NewMerged()
	bars := make([]*dataset.Bars, len(table.Series))
	for i, s := range table.Series {
		bars[i] = dataset.NewBars(s.Entries, color.NRGBA{A: 0xff})
		merged.Add(bars[i])
	}
	model := dataset.ComputeModel(opts.step, spec.Spec, merged)
	for _, b := range bars {
		b.SetLayout(model, spec)
	}
	merged.SetBounds(image.Rect(0, 0, opts.viewport, opts.height))

	contentWidth := spec.ContentWidth(model.SegmentCount())
	handler, err := scroll.New(scroll.MaxDistance(contentWidth, float32(opts.viewport)), merged.SetScrollOffset)
	if err != nil {
		return err
	}
	handler.SetScroll(opts.scroll)

	for i, s := range table.Series {
		b, ok := axis.ComputeBounds(s.Entries)
		if !ok {
			fmt.Fprintf(w, "series %q: no data\n", s.Name)
			continue
		}
		fmt.Fprintf(w, "series %q: %d entries, x [%g, %g], y [%g, %g], %d bars visible\n",
			s.Name, s.Entries.Len(), b.MinX, b.MaxX, b.MinY, b.MaxY, len(bars[i].Rects(1)))
	}
	if model.Empty {
		fmt.Fprintln(w, "merged: no data")
	} else {
		fmt.Fprintf(w, "merged: x [%g, %g], y [%g, %g], step %g\n",
			model.MinX, model.MaxX, model.MinY, model.MaxY, model.Step)
	}
	fmt.Fprintf(w, "segments: %d, width %gpx, spacing %gpx, margins %gpx/%gpx\n",
		model.SegmentCount(), spec.Width, spec.Spacing, spec.StartMargin, spec.EndMargin)
	fmt.Fprintf(w, "content: %gpx in a %dpx viewport, scroll %g of %g\n",
		contentWidth, opts.viewport, handler.Current(), handler.MaxScrollDistance())
	return nil
}
