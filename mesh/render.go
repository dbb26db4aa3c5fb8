package mesh

import (
	"image"

	"github.com/fogleman/gg"
)

const renderMargin = 10

// Render draws the paths into a w×h image, scaled uniformly to fit with a small margin.
func Render(paths []Path2D, w, h int) image.Image {
	c := gg.NewContext(w, h)
	c.SetRGB(1, 1, 1)
	c.Clear()

	// empty paths have no bounds and must not pull the box toward the origin
	var XMin, XMax, YMin, YMax float32
	found := false
	for _, path := range paths {
		if len(path) == 0 {
			continue
		}
		pXMin, pXMax, pYMin, pYMax := path.BoundingBox()
		if !found {
			XMin, XMax, YMin, YMax = pXMin, pXMax, pYMin, pYMax
			found = true
			continue
		}
		XMin, XMax = min(XMin, pXMin), max(XMax, pXMax)
		YMin, YMax = min(YMin, pYMin), max(YMax, pYMax)
	}
	if !found {
		return c.Image()
	}
	scale := 1.0
	if XMax > XMin || YMax > YMin {
		XScale := float64(w-2*renderMargin) / float64(XMax-XMin)
		YScale := float64(h-2*renderMargin) / float64(YMax-YMin)
		scale = min(XScale, YScale)
	}
	toImage := func(x, y float32) (float64, float64) {
		return renderMargin + float64(x-XMin)*scale, renderMargin + float64(y-YMin)*scale
	}

	c.SetRGB(0, 0, 0)
	c.SetLineWidth(2)
	for _, path := range paths {
		for i := 0; i+1 < len(path); i++ {
			x1, y1 := toImage(path[i].X, path[i].Y)
			x2, y2 := toImage(path[i+1].X, path[i+1].Y)
			c.DrawLine(x1, y1, x2, y2)
		}
		c.Stroke()
	}
	return c.Image()
}
