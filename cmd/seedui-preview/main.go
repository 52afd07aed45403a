// Desktop preview of the demo screens, with scrolling labels running
// live. Left and right switch screens, up and down move the selection
// and escape quits.
//
// Usage:
//   seedui-preview -fonts path/to/fonts
//   seedui-preview -gofont
package main

import "context"
import "flag"
import "image"
import "log"
import "sync"

import "github.com/hajimehoshi/ebiten/v2"
import "github.com/hajimehoshi/ebiten/v2/inpututil"
import "github.com/pkg/errors"

import "github.com/seedsigner/seedui"
import "github.com/seedsigner/seedui/internal/gallery"
import "github.com/seedsigner/seedui/metrics"

var errQuit = errors.New("quit")

type Game struct {
	display *seedui.Display
	screen *gallery.Screen
	screenIndex int
	ctx context.Context

	frameMutex sync.Mutex
	frame []byte
	dirty bool
	frameImage *ebiten.Image
}

// Called by the canvas with its lock held, from the game loop or
// from scroller goroutines.
func (self *Game) show(img *image.RGBA) error {
	self.frameMutex.Lock()
	defer self.frameMutex.Unlock()
	copy(self.frame, img.Pix)
	self.dirty = true
	return nil
}

func (self *Game) openScreen(index int) error {
	if self.screen != nil {
		err := self.screen.Close()
		if err != nil { log.Printf("screen %s: %v", self.screen.Name, err) }
	}
	count := len(gallery.Builders)
	self.screenIndex = ((index % count) + count) % count
	builder := gallery.Builders[self.screenIndex]
	screen, err := builder.New(self.display)
	if err != nil { return err }
	self.screen = screen
	ebiten.SetWindowTitle("seedui preview - " + screen.Name)
	err = screen.Render()
	if err != nil { return err }
	self.display.Threads().Start(self.ctx)
	return nil
}

func (self *Game) Layout(winWidth, winHeight int) (int, int) {
	return self.display.Width(), self.display.Height()
}

func (self *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return errQuit
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		return self.openScreen(self.screenIndex + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		return self.openScreen(self.screenIndex - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		self.screen.Select(+1)
		return self.screen.Render()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		self.screen.Select(-1)
		return self.screen.Render()
	}
	return nil
}

func (self *Game) Draw(screen *ebiten.Image) {
	self.frameMutex.Lock()
	if self.dirty {
		self.frameImage.ReplacePixels(self.frame)
		self.dirty = false
	}
	self.frameMutex.Unlock()
	screen.DrawImage(self.frameImage, nil)
}

func main() {
	fontsDir := flag.String("fonts", "fonts", "directory with the theme .ttf and .otf files")
	locale := flag.String("locale", "default", "theme locale")
	goFonts := flag.Bool("gofont", false, "use the Go fonts instead of the fonts directory")
	width := flag.Int("width", 240, "canvas width")
	height := flag.Int("height", 240, "canvas height")
	zoom := flag.Int("zoom", 3, "window zoom factor")
	flag.Parse()

	theme := seedui.NewTheme(*locale)
	library, err := gallery.LoadFonts(*fontsDir, theme, *goFonts)
	if err != nil { log.Fatal(err) }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	game := &Game{
		ctx: ctx,
		frame: make([]byte, 4*(*width)*(*height)),
		frameImage: ebiten.NewImage(*width, *height),
	}
	canvas := seedui.NewImageCanvas(*width, *height, game.show)
	game.display = seedui.NewDisplay(canvas, metrics.NewCache(library), theme)
	err = game.openScreen(0)
	if err != nil { log.Fatal(err) }

	ebiten.SetWindowSize((*width)*(*zoom), (*height)*(*zoom))
	err = ebiten.RunGame(game)
	if game.screen != nil { game.screen.Close() }
	if err != nil && !errors.Is(err, errQuit) { log.Fatal(err) }
}
