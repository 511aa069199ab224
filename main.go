package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"geo/paint"
	"geo/scene"
)

func main() {
	out := flag.String("o", "", "Write the rendered scene to this PNG file.")
	size := flag.String("size", "640x480", "Canvas size as WIDTHxHEIGHT.")
	flag.Parse()

	width, height, err := parseSize(*size)
	if err != nil {
		fail(err)
	}

	var in io.Reader = os.Stdin
	if flag.NArg() > 0 && flag.Arg(0) != "-" {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fail(err)
		}
		defer f.Close()
		in = f
	}

	sc, err := scene.Parse(in)
	if err != nil {
		fail(err)
	}

	for _, item := range sc.Items() {
		r := item.Rect
		fmt.Printf("%s: bl=%v tr=%v width=%d height=%d area=%d\n",
			item.Name, r.BottomLeft(), r.TopRight(), r.Width(), r.Height(), r.Area())
	}

	if *out != "" {
		canvas := paint.Raster(width, height, sc.Paint())
		if err := canvas.SavePNG(*out); err != nil {
			fail(err)
		}
	}
}

func parseSize(s string) (int, int, error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("bad size %q, want WIDTHxHEIGHT", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return 0, 0, fmt.Errorf("bad size %q, want WIDTHxHEIGHT", s)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return 0, 0, fmt.Errorf("bad size %q, want WIDTHxHEIGHT", s)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("size %q must be positive", s)
	}
	return width, height, nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "geo:", err)
	os.Exit(1)
}
