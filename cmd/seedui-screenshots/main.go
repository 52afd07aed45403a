// Renders every demo screen to a PNG file.
//
// Usage:
//   seedui-screenshots -fonts path/to/fonts -out screenshots
//   seedui-screenshots -gofont
package main

import "context"
import "flag"
import "fmt"
import "image"
import "image/png"
import "log"
import "os"
import "path/filepath"
import "time"

import "github.com/pkg/errors"

import "github.com/seedsigner/seedui"
import "github.com/seedsigner/seedui/internal/gallery"
import "github.com/seedsigner/seedui/metrics"

func main() {
	fontsDir := flag.String("fonts", "fonts", "directory with the theme .ttf and .otf files")
	outDir := flag.String("out", "screenshots", "output directory")
	locale := flag.String("locale", "default", "theme locale")
	goFonts := flag.Bool("gofont", false, "use the Go fonts instead of the fonts directory")
	width := flag.Int("width", 240, "canvas width")
	height := flag.Int("height", 240, "canvas height")
	scrollFor := flag.Duration("scroll", 0, "let scrolling labels run for this long before capturing")
	flag.Parse()

	theme := seedui.NewTheme(*locale)
	library, err := gallery.LoadFonts(*fontsDir, theme, *goFonts)
	if err != nil { log.Fatal(err) }
	fonts := metrics.NewCache(library)

	err = os.MkdirAll(*outDir, 0755)
	if err != nil { log.Fatal(err) }

	for _, builder := range gallery.Builders {
		canvas := seedui.NewImageCanvas(*width, *height, nil)
		display := seedui.NewDisplay(canvas, fonts, theme)
		filename := filepath.Join(*outDir, builder.Name + ".png")
		err := capture(display, canvas, builder, filename, *scrollFor)
		if err != nil { log.Fatal(err) }
		fmt.Printf("Output image: %s\n", filename)
	}
}

func capture(display *seedui.Display, canvas *seedui.ImageCanvas, builder gallery.Builder, filename string, scrollFor time.Duration) error {
	screen, err := builder.New(display)
	if err != nil { return errors.Wrapf(err, "building %s", builder.Name) }
	err = screen.Render()
	if err != nil { return err }

	if scrollFor > 0 {
		display.Threads().Start(context.Background())
		time.Sleep(scrollFor)
	}
	err = screen.Close()
	if err != nil { return err }
	return writePNG(filename, canvas.Snapshot())
}

func writePNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil { return err }
	err = png.Encode(file, img)
	if err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
