// Command gxtrace renders a small fixed-function scene through gxgl onto a
// command recorder and reports what the graphics processor would receive.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/gogpu/gxgl"
	"github.com/gogpu/gxgl/gx"
	"github.com/gogpu/gxgl/gx/record"
)

var (
	framesFlag = &cli.IntFlag{
		Name:  "frames",
		Value: 1,
		Usage: "number of frames to render",
	}
	dumpFlag = &cli.BoolFlag{
		Name:  "dump",
		Usage: "print every recorded command",
	}
	textureFlag = &cli.StringFlag{
		Name:  "dump-texture",
		Usage: "write the decoded scene texture to this PNG file",
	}
	lenientFlag = &cli.BoolFlag{
		Name:  "lenient",
		Usage: "ignore invalid calls instead of failing",
	}
	verboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "log at debug level",
	}
)

func main() {
	app := &cli.App{
		Name:   "gxtrace",
		Usage:  "trace the GX commands of a fixed-function scene",
		Flags:  []cli.Flag{framesFlag, dumpFlag, textureFlag, lenientFlag, verboseFlag},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	level := slog.LevelInfo
	if c.Bool(verboseFlag.Name) {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []gxgl.ContextOption{gxgl.WithLogger(logger)}
	if c.Bool(lenientFlag.Name) {
		opts = append(opts, gxgl.WithStrictness(gxgl.StrictnessLenient))
	}

	rec := record.NewRecorder()
	ctx, err := gxgl.NewContext(rec, record.NewDisplay(gx.NTSC480i), opts...)
	if err != nil {
		return err
	}
	s, err := newScene(ctx)
	if err != nil {
		return err
	}
	for i := range c.Int(framesFlag.Name) {
		if err := s.frame(float32(i)); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}

	recording := rec.FinishRecording()
	if c.Bool(dumpFlag.Name) {
		if err := recording.Dump(os.Stdout); err != nil {
			return err
		}
	}
	printHistogram(os.Stdout, recording)

	if path := c.String(textureFlag.Name); path != "" {
		return writeTexture(ctx, s.texture, path)
	}
	return nil
}

// scene is a lit, textured, rotating quad drawn from buffer objects.
type scene struct {
	ctx     *gxgl.Context
	texture gxgl.TextureID
}

func newScene(ctx *gxgl.Context) (*scene, error) {
	s := &scene{ctx: ctx}

	ids, err := ctx.GenTextures(1)
	if err != nil {
		return nil, err
	}
	s.texture = ids[0]
	bufs, err := ctx.GenBuffers(2)
	if err != nil {
		return nil, err
	}

	// Interleaved position, normal and texcoord.
	vertices := []float32{
		-1, -1, 0, 0, 0, 1, 0, 1,
		1, -1, 0, 0, 0, 1, 1, 1,
		1, 1, 0, 0, 0, 1, 1, 0,
		-1, 1, 0, 0, 0, 1, 0, 0,
	}
	const stride = 8 * 4

	steps := []func() error{
		func() error { return ctx.Viewport(0, 0, 640, 480) },
		func() error { return ctx.ClearColor(0.1, 0.1, 0.2, 1) },
		func() error { return ctx.MatrixMode(gxgl.Projection) },
		func() error { return ctx.Frustum(-1, 1, -0.75, 0.75, 1, 100) },
		func() error { return ctx.MatrixMode(gxgl.ModelView) },

		func() error { return ctx.BindTexture(gxgl.TextureTarget2D, s.texture) },
		func() error { return ctx.TexImageFromImage(gxgl.TextureTarget2D, checkerboard(32, 8)) },
		func() error { return ctx.TexParameteri(gxgl.TextureTarget2D, gxgl.TextureMagFilter, gxgl.Nearest) },
		func() error { return ctx.TexParameteri(gxgl.TextureTarget2D, gxgl.TextureWrapS, gxgl.Repeat) },
		func() error { return ctx.TexParameteri(gxgl.TextureTarget2D, gxgl.TextureWrapT, gxgl.Repeat) },
		func() error { return ctx.Enable(gxgl.Texture2D) },

		func() error { return ctx.BindBuffer(gxgl.ArrayBuffer, bufs[0]) },
		func() error { return ctx.BufferDataFloat32(gxgl.ArrayBuffer, vertices, gxgl.StaticDraw) },
		func() error { return ctx.BindBuffer(gxgl.ElementArrayBuffer, bufs[1]) },
		func() error {
			idx := ctx.IndexBytes(0, 1, 2, 0, 2, 3)
			return ctx.BufferData(gxgl.ElementArrayBuffer, len(idx), idx, gxgl.StaticDraw)
		},
		func() error { return ctx.EnableClientState(gxgl.VertexArray) },
		func() error { return ctx.EnableClientState(gxgl.NormalArray) },
		func() error { return ctx.EnableClientState(gxgl.TextureCoordArray) },
		func() error { return ctx.VertexPointer(3, gxgl.Float, stride, gxgl.Offset(0)) },
		func() error { return ctx.NormalPointer(gxgl.Float, stride, gxgl.Offset(12)) },
		func() error { return ctx.TexCoordPointer(2, gxgl.Float, stride, gxgl.Offset(24)) },

		func() error { return ctx.Enable(gxgl.Lighting) },
		func() error { return ctx.Enable(gxgl.Light0) },
		func() error { return ctx.Lightfv(gxgl.Light0, gxgl.Position, []float32{0, 0, 5, 1}) },
		func() error { return ctx.Lightfv(gxgl.Light0, gxgl.Diffuse, []float32{1, 0.9, 0.8, 1}) },
		func() error { return ctx.LightModelfv(gxgl.LightModelAmbient, []float32{0.2, 0.2, 0.2, 1}) },
		func() error { return ctx.Materialfv(gxgl.FrontAndBack, gxgl.AmbientAndDiffuse, []float32{1, 1, 1, 1}) },

		func() error { return ctx.Enable(gxgl.DepthTest) },
		func() error { return ctx.Enable(gxgl.CullFace) },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			return nil, fmt.Errorf("scene setup step %d: %w", i, err)
		}
	}
	return s, nil
}

// frame draws the quad rotated by t degrees per axis and presents it.
func (s *scene) frame(t float32) error {
	ctx := s.ctx
	steps := []func() error{
		func() error { return ctx.Clear(gxgl.ColorBufferBit | gxgl.DepthBufferBit) },
		func() error { return ctx.PushMatrix() },
		func() error { return ctx.Translatef(0, 0, -4) },
		func() error { return ctx.Rotatef(15*t, 0, 1, 0) },
		func() error { return ctx.DrawElements(gxgl.Triangles, 6, gxgl.UnsignedShort, gxgl.Offset(0)) },
		func() error { return ctx.PopMatrix() },
		func() error { return ctx.Present() },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// checkerboard returns a size×size image of cell×cell squares.
func checkerboard(size, cell int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	light := color.NRGBA{R: 240, G: 240, B: 240, A: 255}
	dark := color.NRGBA{R: 200, G: 40, B: 40, A: 255}
	for y := range size {
		for x := range size {
			c := dark
			if (x/cell+y/cell)%2 == 0 {
				c = light
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func printHistogram(w io.Writer, r *record.Recording) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Command", "Count"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for t, n := range r.Histogram() {
		if n == 0 {
			continue
		}
		table.Append([]string{record.CommandType(t).String(), strconv.Itoa(n)})
	}
	table.SetFooter([]string{"Total", strconv.Itoa(r.Len())})
	table.Render()
}

func writeTexture(ctx *gxgl.Context, id gxgl.TextureID, path string) error {
	img, err := ctx.TextureImage(id)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
