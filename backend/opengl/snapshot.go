package opengl

import (
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Snapshot reads the current framebuffer into an RGBA image, top row first.
func Snapshot(width, height int) *image.RGBA {
	if width <= 0 || height <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)
	flipRows(img)
	return img
}

// flipRows flips img vertically in place. GL reads rows bottom-up.
func flipRows(img *image.RGBA) {
	h := img.Rect.Dy()
	rowLen := img.Stride
	tmp := make([]byte, rowLen)
	for y := 0; y < h/2; y++ {
		top := y * rowLen
		bot := (h - 1 - y) * rowLen
		copy(tmp, img.Pix[top:top+rowLen])
		copy(img.Pix[top:top+rowLen], img.Pix[bot:bot+rowLen])
		copy(img.Pix[bot:bot+rowLen], tmp)
	}
}
