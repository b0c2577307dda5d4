package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/exp/mmap"
	_ "golang.org/x/image/tiff" // register TIFF format with image.Decode

	_ "image/jpeg" // register JPEG format with image.Decode

	"github.com/prateekiiest/heliorot"
	"github.com/prateekiiest/heliorot/diffrot"
	"github.com/prateekiiest/heliorot/grid"
	"github.com/prateekiiest/heliorot/solar"
	"github.com/prateekiiest/heliorot/solarmap"
)

type config struct {
	in, out             *string
	dt                  *time.Duration
	steps               *int
	model, frame        *string
	date                *string
	scale               *float64
	rawWidth, rawHeight *int
	showHelp            *bool
}

func defineFlags() config {
	return config{
		in:  flag.String("in", "", "Input solar image (png/jpeg/tiff, or raw float32 grid)"),
		out: flag.String("out", "rotated.png", "Output PNG file path"),

		dt:    flag.Duration("dt", 24*time.Hour, "Rotation interval (e.g. 6h, -90m)"),
		steps: flag.Int("steps", 1, "Number of dt-sized frames to emit"),
		model: flag.String("model", "howard", "Rotation model: howard, snodgrass or allen"),
		frame: flag.String("frame", "synodic", "Day type: synodic or sidereal"),

		date:  flag.String("date", "", "Observation time in RFC3339 format (e.g. 2025-08-02T15:04:05Z)"),
		scale: flag.Float64("scale", 2.4, "Plate scale in arcsec/pixel, disk centred"),

		rawWidth:  flag.Int("raw-width", 0, "Width of a raw float32 input grid"),
		rawHeight: flag.Int("raw-height", 0, "Height of a raw float32 input grid"),

		showHelp: flag.Bool("h", false, "Show this help message"),
	}
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `Solar Differential Rotation - Image Warper

Usage:
  %[1]s [options]

`, os.Args[0])

	printGroup("Rotation Options", []string{"dt", "steps", "model", "frame"})
	printGroup("Observation Options", []string{"date", "scale"})
	printGroup("Input", []string{"in", "raw-width", "raw-height"})
	printGroup("Output", []string{"out"})
	printGroup("Misc", []string{"h"})
}

func printGroup(title string, keys []string) {
	fmt.Fprintf(os.Stderr, "%s:\n", title)
	for _, name := range keys {
		if f := flag.Lookup(name); f != nil {
			fmt.Fprintf(os.Stderr, "  -%-10s %s (default %q)\n", f.Name, f.Usage, f.DefValue)
		}
	}
	fmt.Fprintln(os.Stderr)
}

func main() {
	cfg := defineFlags()
	flag.Usage = printHelp
	flag.Parse()

	if *cfg.showHelp {
		printHelp()
		return
	}
	if *cfg.in == "" {
		printHelp()
		log.Fatal("no input image: -in is required")
	}
	if *cfg.steps < 1 {
		log.Fatalf("Invalid step count %d", *cfg.steps)
	}

	model, err := diffrot.ParseModel(*cfg.model)
	if err != nil {
		log.Fatalf("Invalid model: %v", err)
	}
	day, err := diffrot.ParseDayType(*cfg.frame)
	if err != nil {
		log.Fatalf("Invalid day type: %v", err)
	}
	obsTime := parseTimeOrExit(*cfg.date)

	data, err := loadGrid(*cfg.in, *cfg.rawWidth, *cfg.rawHeight)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *cfg.in, err)
	}

	smap, err := solarmap.New(data, solarmap.Meta{
		"date-obs": obsTime.Format(solarmap.DateFormat),
		"cdelt1":   *cfg.scale,
		"cdelt2":   *cfg.scale,
	})
	if err != nil {
		log.Fatal(err)
	}

	// The end-time geometry repeats across every step of a sequence.
	cache, err := solar.NewGeometryCache(4 * *cfg.steps)
	if err != nil {
		log.Fatal(err)
	}

	for i := 1; i <= *cfg.steps; i++ {
		dt := time.Duration(i) * *cfg.dt
		rotated, err := heliorot.Warp(smap, dt,
			heliorot.WithModel(model),
			heliorot.WithDayType(day),
			heliorot.WithGeometryFunc(cache.Geometry),
		)
		if err != nil {
			log.Fatalf("Warp failed at step %d: %v", i, err)
		}

		out := stepPath(*cfg.out, i, *cfg.steps)
		if err := writePNG(out, toImage(rotated)); err != nil {
			log.Fatalf("Failed to write PNG: %v", err)
		}
		fmt.Println("wrote", out)
	}
}

func parseTimeOrExit(timeStr string) time.Time {
	if timeStr == "" {
		return time.Now().UTC()
	}
	t, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		log.Fatalf("Invalid time format: %v", err)
	}
	return t.UTC()
}

// stepPath numbers the output file when emitting a multi-frame sequence.
func stepPath(path string, step, steps int) string {
	if steps <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%03d%s", strings.TrimSuffix(path, ext), step, ext)
}

// loadGrid reads the input into a float64 grid. Raw inputs are tightly
// packed little-endian float32 rows read through mmap; anything else
// goes through the registered image codecs as grayscale.
func loadGrid(path string, rawW, rawH int) (*grid.Grid, error) {
	if strings.EqualFold(filepath.Ext(path), ".raw") {
		return loadRawGrid(path, rawW, rawH)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	slog.Debug("decoded input image", "path", path, "format", format)

	b := img.Bounds()
	g := grid.New(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			r, gr, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			g.Set(x, y, float64(r+gr+bl)/(3*65535))
		}
	}
	return g, nil
}

func loadRawGrid(path string, w, h int) (*grid.Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raw input needs -raw-width and -raw-height")
	}

	reader, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	if reader.Len() < 4*w*h {
		return nil, fmt.Errorf("raw file holds %d bytes, need %d", reader.Len(), 4*w*h)
	}

	g := grid.New(w, h)
	buf := make([]byte, 4*w)
	for y := 0; y < h; y++ {
		if _, err := reader.ReadAt(buf, int64(4*w*y)); err != nil {
			return nil, err
		}
		for x := 0; x < w; x++ {
			bits := binary.LittleEndian.Uint32(buf[4*x:])
			g.Set(x, y, float64(math.Float32frombits(bits)))
		}
	}
	return g, nil
}

// toImage renders the map as an 8-bit grayscale PNG frame. Masked
// samples come out black.
func toImage(m *solarmap.Map) image.Image {
	min, max := m.Data.MinMax()
	span := max - min
	if span == 0 || math.IsNaN(span) {
		span = 1
	}

	img := image.NewGray(image.Rect(0, 0, m.Data.W, m.Data.H))
	for y := 0; y < m.Data.H; y++ {
		for x := 0; x < m.Data.W; x++ {
			v := m.Data.At(x, y)
			if math.IsNaN(v) {
				continue
			}
			img.SetGray(x, y, color.Gray{Y: uint8(255 * (v - min) / span)})
		}
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return (&png.Encoder{CompressionLevel: png.BestSpeed}).Encode(f, img)
}
