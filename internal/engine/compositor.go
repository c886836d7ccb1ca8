package engine

import (
	"image"

	"github.com/piwi3910/SpritePack/internal/model"
)

// Composite produces the final size x size atlas bitmap from the
// staging buffer and the placed texture list. The bitmap starts fully
// transparent; each texture's pixels are copied to its packed
// position.
//
// With expand > 0 every texture is drawn with an edge-replicated
// margin: destination offsets run from -expand to w+expand-1 on both
// axes and the source coordinate is clamped to the texture bounds, so
// border pixels repeat outward. The packer's padding accounting
// guarantees the margin stays inside the atlas; bounds are not
// re-checked here.
func Composite(buffer []byte, textures []model.Texture, size, expand int) *image.NRGBA {
	atlas := image.NewNRGBA(image.Rect(0, 0, size, size))

	for _, t := range textures {
		src := buffer[t.BufferOffset : t.BufferOffset+t.Rect.Area()*model.Channels]
		if expand > 0 {
			blitExpanded(atlas, src, t.Rect, expand)
		} else {
			blit(atlas, src, t.Rect)
		}
	}
	return atlas
}

// blit copies src row by row to dst at the rect position.
func blit(dst *image.NRGBA, src []byte, r model.Rect) {
	rowLen := r.W * model.Channels
	for y := 0; y < r.H; y++ {
		from := y * rowLen
		to := dst.PixOffset(r.X, r.Y+y)
		copy(dst.Pix[to:to+rowLen], src[from:from+rowLen])
	}
}

// blitExpanded copies src to dst with a clamp-to-edge margin of expand
// pixels on every side. Corner pixels clamp on both axes.
func blitExpanded(dst *image.NRGBA, src []byte, r model.Rect, expand int) {
	for y := -expand; y < r.H+expand; y++ {
		srcY := clamp(y, 0, r.H-1)
		for x := -expand; x < r.W+expand; x++ {
			srcX := clamp(x, 0, r.W-1)
			from := (srcY*r.W + srcX) * model.Channels
			to := dst.PixOffset(r.X+x, r.Y+y)
			copy(dst.Pix[to:to+model.Channels], src[from:from+model.Channels])
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
