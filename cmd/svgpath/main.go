// Command svgpath parses SVG path data and prints the resulting
// move, line, cubic and close commands. It can also render the path
// to PNG and PDF files.
//
// Usage:
//
//	svgpath [flags] [path-data]
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"io"
	"log"
	"math"
	"os"

	"github.com/benoitkugler/pathdata/svgdraw"
	"github.com/benoitkugler/pathdata/svgpath"
	"github.com/benoitkugler/pathdata/svgpdf"
	"github.com/benoitkugler/pathdata/svgraster"
	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"
	"golang.org/x/net/html/charset"
)

var errNoData = errors.New("missing path data: use an argument or --file")

type options struct {
	file    string
	charset string
	format  string
	pngFile string
	pdfFile string
	size    int
	style   string
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          "svgpath [flags] [path-data]",
		Short:        "Parse and render SVG path data",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "", "read the path data from `file` (- for stdin)")
	flags.StringVar(&opts.charset, "charset", "utf-8", "encoding of the input file")
	flags.StringVarP(&opts.format, "format", "o", "text", "output format: text or json")
	flags.StringVar(&opts.pngFile, "png", "", "render the path into a PNG `file`")
	flags.StringVar(&opts.pdfFile, "pdf", "", "render the path into a PDF `file`")
	flags.IntVar(&opts.size, "size", 256, "size in pixels of the PNG image")
	flags.StringVar(&opts.style, "style", "", "painting style, as a CSS declaration (fill:none;stroke:red)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log parsing diagnostics")
	return cmd
}

func readData(cmd *cobra.Command, args []string, opts options) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if opts.file == "" {
		return "", errNoData
	}

	var in io.Reader
	if opts.file == "-" {
		in = cmd.InOrStdin()
	} else {
		f, err := os.Open(opts.file)
		if err != nil {
			return "", err
		}
		defer f.Close()
		in = f
	}
	in, err := charset.NewReaderLabel(opts.charset, in)
	if err != nil {
		return "", fmt.Errorf("invalid charset: %s", err)
	}
	b, err := io.ReadAll(in)
	return string(b), err
}

func run(cmd *cobra.Command, args []string, opts options) error {
	data, err := readData(cmd, args, opts)
	if err != nil {
		return err
	}

	verbosity := 0
	if opts.verbose {
		verbosity = 1
	}
	stdr.SetVerbosity(verbosity)
	logger := stdr.New(log.New(cmd.ErrOrStderr(), "svgpath: ", 0))

	segs := svgpath.Parse(data, svgpath.WithLogger(logger))
	box, hasBox := svgpdf.BoundingBox(segs)

	out := cmd.OutOrStdout()
	switch opts.format {
	case "text":
		for _, seg := range segs {
			fmt.Fprintln(out, seg)
		}
		if hasBox {
			fmt.Fprintf(out, "bbox: %g %g %g %g\n", box.XMin, box.YMin, box.XMax, box.YMax)
		}
	case "json":
		output := struct {
			Segments    []svgpath.Segment `json:"segments"`
			BoundingBox *svgpdf.Rect      `json:"bbox,omitempty"`
		}{Segments: append([]svgpath.Segment{}, segs...)}
		if hasBox {
			output.BoundingBox = &box
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", " ")
		if err := enc.Encode(output); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q", opts.format)
	}

	style, err := svgdraw.ParseStyle(svgdraw.DefaultStyle, opts.style)
	if err != nil {
		return fmt.Errorf("invalid style: %s", err)
	}
	if opts.pngFile != "" {
		if err := writePNG(opts, data, style, box, hasBox, logger); err != nil {
			return err
		}
	}
	if opts.pdfFile != "" {
		f, err := os.Create(opts.pdfFile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := svgpdf.RenderPathToPDF(f, data, style, svgpath.WithLogger(logger)); err != nil {
			return err
		}
	}
	return nil
}

// writePNG fits the bounding box, padded by the line width, in a
// square image.
func writePNG(opts options, data string, style svgdraw.Style, box svgpdf.Rect, hasBox bool, logger logr.Logger) error {
	if opts.size <= 0 {
		return fmt.Errorf("invalid image size %d", opts.size)
	}
	if hasBox {
		user := style.Transform
		pad := style.LineWidth
		side := math.Max(box.Width(), box.Height()) + 2*pad
		if side == 0 {
			side = 1
		}
		style.SetTarget(box.XMin-pad, box.YMin-pad, side, side, float64(opts.size), float64(opts.size))
		style.Transform = style.Transform.Mult(user)
	}
	img, err := svgraster.RasterPathToImage(data, opts.size, opts.size, style, svgpath.WithLogger(logger))
	if err != nil {
		return err
	}

	f, err := os.Create(opts.pngFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
