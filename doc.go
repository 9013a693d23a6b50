// Package fractal draws two recursive fractals, the Sierpinski triangle and
// the Menger face (a 2D carpet: a 3x3 grid with the center removed at every
// level), onto an abstract 2D drawing surface with a zoomable view.
//
// # Quick start
//
// Pick a [Surface], wrap a [View] around the canvas size and let a [Renderer]
// validate and draw requests:
//
//	surf := fractal.NewRasterSurface(800, 600)
//	view := fractal.NewView(800, 600)
//	r := fractal.NewRenderer(surf, view)
//	if err := r.Draw(fractal.KindSierpinski, 6); err != nil {
//		log.Fatal(err)
//	}
//	surf.WritePNG(f)
//
// The interactive window lives in the viewer package.
//
// # Surfaces
//
// [Surface] is the small capability set the fractals need: clear, set a fill
// color, fill a triangle or a square, and push/pop/translate/scale the
// transform. Implementations:
//
//   - [Recorder] records calls; used by tests and for replaying a draw
//   - [RasterSurface] rasterizes into an *image.RGBA with [vector]
//   - [SVGSurface] writes an SVG document with [svgo]
//
// # Subdividers
//
// [SierpinskiTriangles] and [MengerSquares] lazily yield leaf shapes;
// [FillSierpinski] and [FillMenger] fill them on a surface. A Sierpinski
// subdivision at depth d has 3^d leaves. A Menger subdivision has 8^d leaves
// unless a cell would shrink below one unit, in which case that branch stops.
//
// # View
//
// [View] keeps a single zoom factor. ZoomIn and ZoomOut multiply and divide it
// by [ZoomStep]; Reset sets it back to 1. The zoom is centered on
// (width/2, height/4). Zoom changes can optionally be animated with [gween].
//
// # Depth limits
//
// The Sierpinski triangle accepts depths 0 to 10 and the Menger face 0 to 5.
// Anything else is rejected with a [*DepthError] (wrapping [ErrInvalidDepth])
// before the surface is touched.
//
// [vector]: https://pkg.go.dev/golang.org/x/image/vector
// [svgo]: https://github.com/ajstarks/svgo
// [gween]: https://github.com/tanema/gween
package fractal
