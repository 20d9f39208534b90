// Command bmprdemo demonstrates the bmpr raster library.
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/bmpr/bmpr"
)

type cliCmd struct {
	Width   int    `help:"Image width in pixels." default:"800"`
	Height  int    `help:"Image height in pixels." default:"600"`
	Output  string `help:"Output bitmap file." default:"demo.bmp" type:"path"`
	Verbose bool   `help:"Enable debug logging." short:"v"`
}

func main() {
	var cli cliCmd
	kctx := kong.Parse(&cli,
		kong.Name("bmprdemo"),
		kong.Description("Render a demonstration scene to an uncompressed bitmap."),
	)

	if cli.Verbose {
		bmpr.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	img, err := bmpr.New(cli.Width, cli.Height)
	kctx.FatalIfErrorf(err)

	drawScene(img)

	kctx.FatalIfErrorf(img.Save(cli.Output))
	slog.Info("demo saved", "path", cli.Output, "width", cli.Width, "height", cli.Height)
}

func drawScene(img *bmpr.Canvas) {
	w, h := img.Width(), img.Height()

	img.Clear(bmpr.Gray(24))

	// Diagonal burst of lines from the top-left corner.
	for i := 0; i <= 10; i++ {
		img.DrawLine(0, 0, w-1, (h-1)*i/10, bmpr.RGB(80, 120, uint8(100+i*15)))
	}

	// Concentric circles, filled then outlined.
	cx, cy := w/2, h/2
	img.FillCircle(cx, cy, h/5, bmpr.Yellow)
	img.DrawCircle(cx, cy, h/4, bmpr.Red)
	img.DrawCircle(cx, cy, h/3, bmpr.Magenta)

	// Rectangles along the bottom edge.
	for i := 0; i < 5; i++ {
		x := w/8 + i*w/6
		img.FillRectangle(x, h-h/6, w/10, h/10, bmpr.RGB(uint8(40+i*40), 200, 120))
		img.DrawRectangle(x-2, h-h/6-2, w/10+3, h/10+3, bmpr.White)
	}

	// A quadratic arc across the top.
	img.DrawQuadraticCurve(
		bmpr.Pt(0, int32(h/3)),
		bmpr.Pt(int32(w/2), -int32(h/4)),
		bmpr.Pt(int32(w-1), int32(h/3)),
		w, bmpr.Cyan)

	// Thick frame around everything.
	img.DrawLineThick(3, 3, w-4, 3, 3, bmpr.White)
	img.DrawLineThick(w-4, 3, w-4, h-4, 3, bmpr.White)
	img.DrawLineThick(w-4, h-4, 3, h-4, 3, bmpr.White)
	img.DrawLineThick(3, h-4, 3, 3, 3, bmpr.White)
}
