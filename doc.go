// Package mint is a minimal 2D windowing, graphics and input library.
//
// The root package holds the platform-independent core: geometry and color
// values, the affine transform/color state stack, and the vertex batcher that
// turns immediate-mode draw calls into as few GPU uploads as possible. The
// GLFW/OpenGL window lives in [github.com/mint2d/mint/window]; an Ebitengine
// adapter lives in [github.com/mint2d/mint/integration/ebitencanvas].
//
// # Quick start
//
//	win, err := window.New(mint.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer win.Close()
//
//	g := win.Graphics()
//	for {
//		g.SetColor(mint.ColorBlack)
//		g.Clear()
//		g.SetColor(mint.NewColor(1, 0.5, 0, 1))
//		g.Rect(mint.Point{X: -0.5, Y: -0.5}, mint.Size{Width: 1, Height: 1})
//
//		open, err := win.Update()
//		if err != nil {
//			log.Fatal(err)
//		}
//		if !open {
//			break
//		}
//	}
//
// # State stack
//
// Every draw call reads the top of a stack of [State] values. [Graphics.Push]
// saves the current color and transform; [Graphics.Pop] restores them. The
// base state can never be popped:
//
//	g.Push()
//	g.Translate(mint.Point{X: 0.25})
//	g.Rotate(mint.Degrees(45))
//	g.Tint(mint.NewColor(1, 1, 1, 0.5))
//	g.Rect(mint.Point{}, mint.Size{Width: 0.1, Height: 0.1})
//	_ = g.Pop()
//
// # Coordinates
//
// Vertex positions are submitted to the GPU as clip-space coordinates: with
// the identity transform the window spans [-1, 1] on both axes with +Y up.
// Use [Graphics.Scale] and [Graphics.Translate] to set up any other space.
package mint
