package api

import (
	"fmt"

	"github.com/voxelsplace/vox/vox"
)

// Summary is the serialisable overview printed by "voxtool info".
type Summary struct {
	Version   uint32            `json:"version" yaml:"version"`
	Size      [3]uint32         `json:"size" yaml:"size,flow"`
	Voxels    int               `json:"voxels" yaml:"voxels"`
	Frames    []FrameSummary    `json:"frames" yaml:"frames"`
	Models    uint32            `json:"models,omitempty" yaml:"models,omitempty"`
	Palette   string            `json:"palette" yaml:"palette"`
	Colors    int               `json:"colors_used" yaml:"colors_used"`
	Materials []MaterialSummary `json:"materials,omitempty" yaml:"materials,omitempty"`
	Digest    string            `json:"digest" yaml:"digest"`
}

type FrameSummary struct {
	Size   []uint32 `json:"size,omitempty" yaml:"size,omitempty,flow"`
	Voxels int      `json:"voxels" yaml:"voxels"`
}

type MaterialSummary struct {
	ID         uint32             `json:"id" yaml:"id"`
	Type       string             `json:"type" yaml:"type"`
	Weight     float32            `json:"weight" yaml:"weight"`
	TotalPower bool               `json:"total_power,omitempty" yaml:"total_power,omitempty"`
	Values     map[string]float32 `json:"values,omitempty" yaml:"values,omitempty"`
}

// Summarize condenses m for display.
func Summarize(m *vox.Model) Summary {
	s := Summary{
		Version: m.Version,
		Size:    [3]uint32{m.Size.X, m.Size.Y, m.Size.Z},
		Voxels:  len(m.Voxels),
		Models:  m.Models,
		Palette: "default",
		Digest:  fmt.Sprintf("%016x", m.Digest()),
	}
	if m.HasPalette {
		s.Palette = "file"
	}
	var used [256]bool
	for _, v := range m.Voxels {
		if !used[v.ColorIndex] {
			used[v.ColorIndex] = true
			s.Colors++
		}
	}
	for _, f := range m.Frames {
		fs := FrameSummary{Voxels: len(f.Voxels)}
		if f.Size != nil {
			fs.Size = []uint32{f.Size.X, f.Size.Y, f.Size.Z}
		}
		s.Frames = append(s.Frames, fs)
	}
	for _, mat := range m.Materials {
		ms := MaterialSummary{
			ID:         mat.ID,
			Type:       mat.Type.String(),
			Weight:     mat.Weight,
			TotalPower: mat.Has(vox.PropTotalPower),
		}
		for p, v := range mat.Values {
			if ms.Values == nil {
				ms.Values = make(map[string]float32, len(mat.Values))
			}
			ms.Values[p.String()] = v
		}
		s.Materials = append(s.Materials, ms)
	}
	return s
}
