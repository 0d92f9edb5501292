package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/vector"

	"chosenoffset.com/camerawalk/internal/render/lighting"
	"chosenoffset.com/camerawalk/internal/sketch"
	"chosenoffset.com/camerawalk/internal/world"
)

var (
	sheetBackground = color.RGBA{18, 26, 38, 255}
	symbolFill      = color.RGBA{220, 245, 255, 255}
	hollowFill      = color.RGBA{110, 122, 128, 128} // Premultiplied half alpha
)

func main() {
	outDir := flag.String("out", "preview", "Directory to write the preview images to")
	cell := flag.Int("cell", 48, "Symbol cell size in pixels")
	flag.Parse()

	fmt.Println("Camera Walk Preview Generator")
	fmt.Println("=============================")

	if err := generate(*outDir, *cell); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Done! Wrote glow.png and symbols.png to %s\n", *outDir)
}

func generate(dir string, cell int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	if err := savePNG(lighting.CreateGlowSprite(lighting.SpriteSize), filepath.Join(dir, "glow.png")); err != nil {
		return err
	}
	return savePNG(symbolSheet(cell), filepath.Join(dir, "symbols.png"))
}

// symbolSheet rasterises every glyph symbol into a row of square cells
func symbolSheet(cell int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cell*len(world.Symbols), cell))
	draw.Draw(img, img.Bounds(), image.NewUniform(sheetBackground), image.Point{}, draw.Src)

	size := img.Bounds().Size()
	half := float64(cell) / 2
	for i, sym := range world.Symbols {
		pts := sketch.StarPoints(float64(i*cell)+half, half, half*0.8, sym.Inner, sym.Points, 0)

		z := vector.NewRasterizer(size.X, size.Y)
		z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		for _, p := range pts[1:] {
			z.LineTo(float32(p.X), float32(p.Y))
		}
		z.ClosePath()

		fill := symbolFill
		if sym.Hollow {
			fill = hollowFill
		}
		z.Draw(img, img.Bounds(), image.NewUniform(fill), image.Point{})
	}

	return img
}

// savePNG saves an image to a PNG file
func savePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
