package logger

import (
	"github.com/Faultbox/libbsm/pkg/bsm"
	"go.uber.org/zap"
)

// HeaderFields returns the structural parameters of a BSM header as log fields.
func HeaderFields(h *bsm.HeaderV1) []zap.Field {
	fields := []zap.Field{
		zap.Int32("version", h.Version),
		zap.Int32("extension", h.Extension),
		zap.Float32("radius", h.BSphere.Radius),
		zap.Int64("file_size", h.FileSize()),
	}
	for _, s := range bsm.Sections {
		if s == bsm.SectionTexCoords || s == bsm.SectionNormals || s == bsm.SectionTangents {
			continue // share num_verts with positions
		}
		fields = append(fields, zap.Int32("num_"+s.String(), s.Count(h)))
	}
	return fields
}
