package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/libbsm/pkg/bsm"
)

// report is printed either as text or as YAML.
type report interface {
	writeText(w io.Writer)
}

func writeReport(w io.Writer, format string, r report) error {
	if format != "yaml" {
		r.writeText(w)
		return nil
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return enc.Close()
}

type sectionInfo struct {
	Name   string `yaml:"name"`
	Count  int32  `yaml:"count"`
	Offset int32  `yaml:"offset"`
	Bytes  int    `yaml:"bytes"`
}

type infoReport struct {
	File      string        `yaml:"file"`
	Size      int           `yaml:"size"`
	Version   int32         `yaml:"version"`
	Extension int32         `yaml:"extension"`
	BSphere   [4]float32    `yaml:"bsphere,flow"`
	BBox      [6]float32    `yaml:"bbox,flow"`
	Sections  []sectionInfo `yaml:"sections"`
}

func newInfoReport(path string, size int, h *bsm.HeaderV1) *infoReport {
	r := &infoReport{
		File:      path,
		Size:      size,
		Version:   h.Version,
		Extension: h.Extension,
		BSphere:   [4]float32{h.BSphere.X, h.BSphere.Y, h.BSphere.Z, h.BSphere.Radius},
		BBox:      [6]float32{h.BBox.X0, h.BBox.Y0, h.BBox.Z0, h.BBox.X1, h.BBox.Y1, h.BBox.Z1},
	}
	for _, s := range bsm.Sections {
		r.Sections = append(r.Sections, sectionInfo{
			Name:   s.String(),
			Count:  s.Count(h),
			Offset: s.Offset(h),
			Bytes:  s.Bytes(h),
		})
	}
	return r
}

func (r *infoReport) writeText(w io.Writer) {
	fmt.Fprintf(w, "File:      %s\n", r.File)
	fmt.Fprintf(w, "Size:      %d bytes\n", r.Size)
	fmt.Fprintf(w, "Version:   %d\n", r.Version)
	fmt.Fprintf(w, "Extension: %d\n", r.Extension)
	fmt.Fprintf(w, "BSphere:   <%.3f, %.3f, %.3f> %.3f\n", r.BSphere[0], r.BSphere[1], r.BSphere[2], r.BSphere[3])
	fmt.Fprintf(w, "BBox:      <%.3f, %.3f, %.3f> - <%.3f, %.3f, %.3f>\n",
		r.BBox[0], r.BBox[1], r.BBox[2], r.BBox[3], r.BBox[4], r.BBox[5])
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-10s %8s %10s %10s\n", "SECTION", "COUNT", "OFFSET", "BYTES")
	for _, s := range r.Sections {
		fmt.Fprintf(w, "  %-10s %8d %10d %10d\n", s.Name, s.Count, s.Offset, s.Bytes)
	}
}

// meshView shows a mesh with its material as text.
type meshView struct {
	IdxTris  int32  `yaml:"idx_tris"`
	NumTris  int32  `yaml:"num_tris"`
	Material string `yaml:"material"`
}

type dumpReport struct {
	Section string `yaml:"section"`
	Total   int    `yaml:"total"`
	Records []any  `yaml:"records"`
}

func newDumpReport(m *bsm.Model, s bsm.Section, limit int) *dumpReport {
	r := &dumpReport{
		Section: s.String(),
		Total:   int(s.Count(&m.Header)),
	}

	switch s {
	case bsm.SectionPositions:
		r.Records = take(m.Positions, limit)
	case bsm.SectionTexCoords:
		r.Records = take(m.TexCoords, limit)
	case bsm.SectionNormals:
		r.Records = take(m.Normals, limit)
	case bsm.SectionTangents:
		r.Records = take(m.Tangents, limit)
	case bsm.SectionTris:
		r.Records = take(m.Tris, limit)
	case bsm.SectionMeshes:
		views := make([]meshView, len(m.Meshes))
		for i := range m.Meshes {
			views[i] = meshView{
				IdxTris:  m.Meshes[i].IdxTris,
				NumTris:  m.Meshes[i].NumTris,
				Material: m.Meshes[i].MaterialName(),
			}
		}
		r.Records = take(views, limit)
	case bsm.SectionHullVerts:
		r.Records = take(m.HullVerts, limit)
	case bsm.SectionHulls:
		r.Records = take(m.Hulls, limit)
	case bsm.SectionVisVerts:
		r.Records = take(m.VisVerts, limit)
	case bsm.SectionVisTris:
		r.Records = take(m.VisTris, limit)
	}
	return r
}

// take returns up to limit records (all when limit is 0) as a generic list.
func take[T any](s []T, limit int) []any {
	if limit > 0 && len(s) > limit {
		s = s[:limit]
	}
	out := make([]any, len(s))
	for i := range s {
		out[i] = s[i]
	}
	return out
}

func (r *dumpReport) writeText(w io.Writer) {
	fmt.Fprintf(w, "%s: %d records\n", r.Section, r.Total)
	for i, rec := range r.Records {
		fmt.Fprintf(w, "%6d  %+v\n", i, rec)
	}
	if len(r.Records) < r.Total {
		fmt.Fprintf(w, "   ... %d more\n", r.Total-len(r.Records))
	}
}

type tbnReport struct {
	Vertices      int     `yaml:"vertices"`
	Degenerate    int     `yaml:"degenerate"`
	NonOrthogonal int     `yaml:"non_orthogonal"`
	MaxDot        float64 `yaml:"max_dot"`
	Tolerance     float64 `yaml:"tolerance"`
}

func newTBNReport(rep bsm.TBNReport, tolerance float64) *tbnReport {
	return &tbnReport{
		Vertices:      rep.Vertices,
		Degenerate:    rep.Degenerate,
		NonOrthogonal: rep.NonOrthogonal,
		MaxDot:        rep.MaxDot,
		Tolerance:     tolerance,
	}
}

func (r *tbnReport) writeText(w io.Writer) {
	fmt.Fprintf(w, "Vertices:       %d\n", r.Vertices)
	fmt.Fprintf(w, "Degenerate:     %d\n", r.Degenerate)
	fmt.Fprintf(w, "Non-orthogonal: %d (|N.T| > %g)\n", r.NonOrthogonal, r.Tolerance)
	fmt.Fprintf(w, "Max |N.T|:      %.6f\n", r.MaxDot)
}
