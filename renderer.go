package easel

import (
	"encoding/binary"
	"image"
	"math"
	"unsafe"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/inkyblackness/imgui-go/v4"
)

// Renderer turns the GUI's frame draw data into engine draw calls. It owns
// the font atlas texture and a registry that maps GUI texture ids to engine
// images, so GUI widgets can display images rendered by the engine.
type Renderer struct {
	io       imgui.IO
	font     *ebiten.Image
	textures map[imgui.TextureID]*ebiten.Image
	nextID   imgui.TextureID

	vtxScratch []ebiten.Vertex
	idxScratch []uint16
}

func newRenderer(io imgui.IO) *Renderer {
	r := &Renderer{
		io:       io,
		textures: map[imgui.TextureID]*ebiten.Image{},
		nextID:   1,
	}
	r.rebuildFontAtlas()
	return r
}

// rebuildFontAtlas uploads the GUI's font atlas as an engine texture and
// hands its id back to the GUI.
func (r *Renderer) rebuildFontAtlas() {
	fonts := r.io.Fonts()
	atlas := fonts.TextureDataRGBA32()
	raw := unsafe.Slice((*byte)(atlas.Pixels), atlas.Width*atlas.Height*4)
	img := ebiten.NewImage(atlas.Width, atlas.Height)
	img.WritePixels(premultiplyAlpha(raw))
	r.font = img
	fonts.SetTextureID(r.RegisterTexture(img))
}

// RegisterTexture makes an engine image addressable from GUI draw commands.
// The returned id can be passed to the GUI's image widgets.
func (r *Renderer) RegisterTexture(img *ebiten.Image) imgui.TextureID {
	id := r.nextID
	r.nextID++
	r.textures[id] = img
	return id
}

// UnregisterTexture releases a previously registered texture id.
func (r *Renderer) UnregisterTexture(id imgui.TextureID) {
	delete(r.textures, id)
}

// FontTexture returns the engine image holding the GUI font atlas.
func (r *Renderer) FontTexture() *ebiten.Image {
	return r.font
}

// draw replays one frame of GUI draw data onto target. Vertex colors arrive
// straight-alpha, so the draw options tell the engine not to treat them as
// premultiplied.
func (r *Renderer) draw(target *ebiten.Image, data imgui.DrawData) {
	if !data.Valid() {
		return
	}
	bounds := target.Bounds()
	opt := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
	}

	for _, list := range data.CommandLists() {
		vtxPtr, vtxCount := list.VertexBuffer()
		idxPtr, idxCount := list.IndexBuffer()
		r.idxScratch = appendIndices(r.idxScratch[:0], idxPtr, idxCount)

		var builtFor imgui.TextureID
		offset := 0
		for _, cmd := range list.Commands() {
			count := cmd.ElementCount()
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
				offset += count
				continue
			}
			if tex := r.textures[cmd.TextureID()]; tex != nil {
				if builtFor != cmd.TextureID() {
					tw, th := tex.Bounds().Dx(), tex.Bounds().Dy()
					r.vtxScratch = appendVertices(r.vtxScratch[:0], vtxPtr, vtxCount, float32(tw), float32(th))
					builtFor = cmd.TextureID()
				}
				if clip := clipRect(cmd.ClipRect(), bounds); !clip.Empty() {
					dst := target.SubImage(clip).(*ebiten.Image)
					dst.DrawTriangles(r.vtxScratch, r.idxScratch[offset:offset+count], tex, opt)
				}
			}
			offset += count
		}
	}
}

func (r *Renderer) dispose() {
	clear(r.textures)
	r.font = nil
}

// appendVertices decodes the GUI's packed vertex buffer into engine
// vertices. Texture coordinates arrive normalized and are scaled to texel
// coordinates of the bound texture.
func appendVertices(dst []ebiten.Vertex, ptr unsafe.Pointer, count int, texW, texH float32) []ebiten.Vertex {
	stride, posOffset, uvOffset, colOffset := imgui.VertexBufferLayout()
	raw := unsafe.Slice((*byte)(ptr), count*stride)
	for i := 0; i < count; i++ {
		base := i * stride
		dst = append(dst, ebiten.Vertex{
			DstX:   f32at(raw, base+posOffset),
			DstY:   f32at(raw, base+posOffset+4),
			SrcX:   f32at(raw, base+uvOffset) * texW,
			SrcY:   f32at(raw, base+uvOffset+4) * texH,
			ColorR: float32(raw[base+colOffset]) / 255,
			ColorG: float32(raw[base+colOffset+1]) / 255,
			ColorB: float32(raw[base+colOffset+2]) / 255,
			ColorA: float32(raw[base+colOffset+3]) / 255,
		})
	}
	return dst
}

// appendIndices widens or copies the GUI's index buffer into the uint16
// form the engine draws with.
func appendIndices(dst []uint16, ptr unsafe.Pointer, count int) []uint16 {
	switch imgui.IndexBufferLayout() {
	case 2:
		dst = append(dst, unsafe.Slice((*uint16)(ptr), count)...)
	case 4:
		for _, idx := range unsafe.Slice((*uint32)(ptr), count) {
			dst = append(dst, uint16(idx))
		}
	}
	return dst
}

func clipRect(clip imgui.Vec4, bounds image.Rectangle) image.Rectangle {
	return image.Rect(int(clip.X), int(clip.Y), int(clip.Z), int(clip.W)).Intersect(bounds)
}

func f32at(b []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
}

// premultiplyAlpha converts straight-alpha RGBA pixels to the premultiplied
// form the engine stores. The input is left unmodified.
func premultiplyAlpha(src []byte) []byte {
	out := make([]byte, len(src))
	for i := 0; i+3 < len(src); i += 4 {
		a := uint32(src[i+3])
		out[i] = byte(uint32(src[i]) * a / 255)
		out[i+1] = byte(uint32(src[i+1]) * a / 255)
		out[i+2] = byte(uint32(src[i+2]) * a / 255)
		out[i+3] = byte(a)
	}
	return out
}
