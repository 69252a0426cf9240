package raster

import (
	"fmt"
	"image"
	"io"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// Upscale enlarges img by an integer factor with nearest-neighbour sampling
// so cell edges stay hard. Factors below 2 return img unchanged.
func Upscale(img image.Image, factor int) image.Image {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	return transform.Resize(img, b.Dx()*factor, b.Dy()*factor, transform.NearestNeighbor)
}

// WritePNG encodes img, upscaled by factor, as PNG.
func WritePNG(w io.Writer, img image.Image, factor int) error {
	if err := imgio.PNGEncoder()(w, Upscale(img, factor)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// ExportPNG is WritePNG followed by Close. A failed close is reported even
// when encoding succeeded, since the data may not have been flushed.
func ExportPNG(w io.WriteCloser, img image.Image, factor int) error {
	if err := WritePNG(w, img, factor); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close png: %w", err)
	}
	return nil
}

// SavePNG writes img, upscaled by factor, to path.
func SavePNG(path string, img image.Image, factor int) error {
	if err := imgio.Save(path, Upscale(img, factor), imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
