//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/voxelsplace/vox/api"
	"github.com/voxelsplace/vox/vox"
)

func bytesFromJS(v js.Value) []byte {
	buf := make([]byte, v.Get("length").Int())
	js.CopyBytesToGo(buf, v)
	return buf
}

func bytesToJS(b []byte) js.Value {
	arr := js.Global().Get("Uint8Array").New(len(b))
	js.CopyBytesToJS(arr, b)
	return arr
}

// parseVox(Uint8Array) returns {version, size, voxels, palette} or an error string.
func parseVox(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf("missing vox bytes")
	}
	m, err := vox.Decode(bytesFromJS(args[0]))
	if err != nil {
		return js.ValueOf(err.Error())
	}
	voxels := make([]any, len(m.Voxels))
	for i, v := range m.Voxels {
		voxels[i] = map[string]any{"x": int(v.X), "y": int(v.Y), "z": int(v.Z), "colorIndex": int(v.ColorIndex)}
	}
	palette := make([]any, len(m.Palette))
	for i, c := range m.Palette {
		palette[i] = map[string]any{"r": int(c.R), "g": int(c.G), "b": int(c.B), "a": int(c.A)}
	}
	return js.ValueOf(map[string]any{
		"version": int(m.Version),
		"size":    map[string]any{"x": int(m.Size.X), "y": int(m.Size.Y), "z": int(m.Size.Z)},
		"voxels":  voxels,
		"palette": palette,
		"frames":  len(m.Frames),
	})
}

func vox2glb(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf("missing vox bytes")
	}
	out, err := api.VOXToGLB(bytesFromJS(args[0]))
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return bytesToJS(out)
}

func main() {
	js.Global().Set("parseVox", js.FuncOf(parseVox))
	js.Global().Set("vox2glb", js.FuncOf(vox2glb))
	select {}
}
