package viz

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"os"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	dotPixels      = 3
	recordCapacity = 600
)

// Recorder collects canvas frames for a GIF.
type Recorder struct {
	Background colorful.Color
	Delay      int // hundredths of a second per frame
	frames     []*image.Paletted
}

func NewRecorder(bg colorful.Color, fps int) *Recorder {
	delay := 2
	if fps > 0 {
		delay = max(1, (100+fps/2)/fps)
	}
	return &Recorder{Background: bg, Delay: delay}
}

func (r *Recorder) Len() int { return len(r.frames) }

// Capture rasterizes the canvas, one square block per braille dot. Frames
// past the capacity drop the oldest.
func (r *Recorder) Capture(c *Canvas) {
	if c.Width == 0 || c.Height == 0 {
		return
	}
	w, h := c.DotWidth()*dotPixels, c.DotHeight()*dotPixels
	img := image.NewPaletted(image.Rect(0, 0, w, h), palette.Plan9)
	bg := uint8(img.Palette.Index(r.Background))
	for i := range img.Pix {
		img.Pix[i] = bg
	}

	for y := 0; y < c.DotHeight(); y++ {
		for x := 0; x < c.DotWidth(); x++ {
			if !c.Lit(x, y) {
				continue
			}
			ink := uint8(img.Palette.Index(c.Colors[y/4][x/2]))
			for py := 0; py < dotPixels; py++ {
				for px := 0; px < dotPixels; px++ {
					img.SetColorIndex(x*dotPixels+px, y*dotPixels+py, ink)
				}
			}
		}
	}

	r.frames = append(r.frames, img)
	if len(r.frames) > recordCapacity {
		r.frames = r.frames[1:]
	}
}

// Save encodes the frames as a looping GIF and clears the recorder.
func (r *Recorder) Save(path string) error {
	if len(r.frames) == 0 {
		return fmt.Errorf("no frames recorded")
	}
	anim := gif.GIF{LoopCount: 0}
	bounds := r.frames[0].Bounds()
	for _, frame := range r.frames {
		if frame.Bounds() != bounds {
			continue
		}
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.Delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, &anim); err != nil {
		f.Close()
		return err
	}
	r.frames = nil
	return f.Close()
}
