package host

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/phanxgames/compass"
)

const (
	arcStepDeg   = 6.0
	needleHubMul = 0.08
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
	labelFace     *text.GoXFace
)

// ensureDrawResources creates the shared fill image and label face on first
// draw, so headless users of the package never allocate GPU images.
func ensureDrawResources() {
	if whiteImage != nil {
		return
	}
	whiteImage = ebiten.NewImage(3, 3)
	whiteImage.Fill(toNRGBA(compass.ColorWhite))
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	labelFace = text.NewGoXFace(basicfont.Face7x13)
}

// Draw clears the screen and draws every visible node in order.
func (s *Scene) Draw(screen *ebiten.Image) {
	ensureDrawResources()
	screen.Fill(toNRGBA(s.ClearColor))
	for _, n := range s.nodes {
		if !n.Visible {
			continue
		}
		drawNode(screen, n)
	}
	s.flushScreenshots(screen)
}

func drawNode(dst *ebiten.Image, n *Node) {
	var pts [][2]float64
	switch n.Shape {
	case ShapeRect:
		pts = [][2]float64{{0, 0}, {n.Width, 0}, {n.Width, n.Height}, {0, n.Height}}
		fillPolygon(dst, n, pts)
	case ShapeCircle:
		fillPolygon(dst, n, arcPoints(n.Radius, 0, 360))
	case ShapeWedge:
		fillPolygon(dst, n, wedgePoints(n.InnerRadius, n.Radius, n.StartDeg, n.EndDeg))
	case ShapeNeedle:
		h := n.Width / 2
		pts = [][2]float64{{0, -h}, {n.Radius, -h}, {n.Radius, h}, {0, h}}
		fillPolygon(dst, n, pts)
		fillPolygon(dst, n, arcPoints(n.Radius*needleHubMul+h, 0, 360))
	}
	if n.Label != "" {
		drawLabel(dst, n)
	}
}

// arcPoints returns the outline of a disc sector of radius r around (0, 0)
// as a fan starting at the center.
func arcPoints(r, startDeg, endDeg float64) [][2]float64 {
	pts := [][2]float64{{0, 0}}
	steps := int(math.Ceil((endDeg - startDeg) / arcStepDeg))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		a := (startDeg + (endDeg-startDeg)*float64(i)/float64(steps)) * math.Pi / 180
		pts = append(pts, [2]float64{r * math.Cos(a), r * math.Sin(a)})
	}
	return pts
}

// wedgePoints returns the outline of an annular sector: outer arc forward,
// inner arc backward.
func wedgePoints(inner, outer, startDeg, endDeg float64) [][2]float64 {
	steps := int(math.Ceil((endDeg - startDeg) / arcStepDeg))
	if steps < 1 {
		steps = 1
	}
	pts := make([][2]float64, 0, 2*(steps+1))
	for i := 0; i <= steps; i++ {
		a := (startDeg + (endDeg-startDeg)*float64(i)/float64(steps)) * math.Pi / 180
		pts = append(pts, [2]float64{outer * math.Cos(a), outer * math.Sin(a)})
	}
	for i := steps; i >= 0; i-- {
		a := (startDeg + (endDeg-startDeg)*float64(i)/float64(steps)) * math.Pi / 180
		pts = append(pts, [2]float64{inner * math.Cos(a), inner * math.Sin(a)})
	}
	return pts
}

// fillPolygon fills pts (local coordinates) with the node's draw color.
// Rects and fans are convex; wedges are filled as quads between the outer
// and inner arcs.
func fillPolygon(dst *ebiten.Image, n *Node, pts [][2]float64) {
	if len(pts) < 3 {
		return
	}
	g := n.GeoM()
	c := n.DrawColor()
	verts := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		x, y := g.Apply(p[0], p[1])
		verts[i] = ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 1, SrcY: 1,
			ColorR: float32(c.R), ColorG: float32(c.G),
			ColorB: float32(c.B), ColorA: float32(c.A),
		}
	}

	var indices []uint16
	if n.Shape == ShapeWedge {
		half := len(pts) / 2
		for i := 0; i < half-1; i++ {
			o0, o1 := uint16(i), uint16(i+1)
			i0, i1 := uint16(len(pts)-1-i), uint16(len(pts)-2-i)
			indices = append(indices, o0, o1, i1, o0, i1, i0)
		}
	} else {
		for i := 1; i < len(pts)-1; i++ {
			indices = append(indices, 0, uint16(i), uint16(i+1))
		}
	}

	var op ebiten.DrawTrianglesOptions
	op.AntiAlias = true
	dst.DrawTriangles(verts, indices, whiteSubImage, &op)
}

func drawLabel(dst *ebiten.Image, n *Node) {
	var lx, ly float64
	switch n.Shape {
	case ShapeRect:
		lx, ly = n.Width/2, n.Height/2
	case ShapeWedge:
		mid := (n.StartDeg + n.EndDeg) / 2 * math.Pi / 180
		r := (n.InnerRadius + n.Radius) / 2
		lx, ly = r*math.Cos(mid), r*math.Sin(mid)
	}
	x, y := n.LocalToWorld(lx, ly)
	w, h := text.Measure(n.Label, labelFace, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x-w/2, y-h/2)
	op.ColorScale.ScaleWithColor(toNRGBA(compass.Color{R: 0.05, G: 0.05, B: 0.08, A: 1}))
	text.Draw(dst, n.Label, labelFace, op)
}
