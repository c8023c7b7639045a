package main

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/Faultbox/libbsm/internal/config"
	"github.com/Faultbox/libbsm/internal/logger"
	"github.com/Faultbox/libbsm/pkg/bsm"
	"github.com/Faultbox/libbsm/pkg/bsmio"
)

var errInvalid = errors.New("invalid BSM file")

func readOptions(cfg *config.Config) bsmio.Options {
	return bsmio.Options{
		MaxSize:    cfg.Reader.MaxFileSize(),
		Decompress: cfg.Reader.Decompress,
	}
}

// loadModel reads and fully decodes a file.
func loadModel(cfg *config.Config, path string) (*bsm.Model, error) {
	data, err := bsmio.ReadFile(path, readOptions(cfg))
	if err != nil {
		return nil, err
	}
	logger.Debug("read file", zap.String("path", path), zap.Int("bytes", len(data)))

	m, err := bsm.Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Info("loaded model", append([]zap.Field{zap.String("path", path)}, logger.HeaderFields(&m.Header)...)...)
	return m, nil
}

func cmdInfo(cfg *config.Config, args []string, w io.Writer) error {
	if len(args) < 1 {
		return errors.New("usage: bsmtool info <file.bsm>")
	}
	path := args[0]

	data, err := bsmio.ReadFile(path, readOptions(cfg))
	if err != nil {
		return err
	}
	var h bsm.HeaderV1
	if err := bsm.ReadHeaderV1(data, &h); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return writeReport(w, cfg.Output.Format, newInfoReport(path, len(data), &h))
}

func cmdValidate(cfg *config.Config, args []string, w io.Writer) error {
	if len(args) < 1 {
		return errors.New("usage: bsmtool validate <file.bsm>...")
	}

	failed := 0
	for _, path := range args {
		if err := validateFile(cfg, path); err != nil {
			failed++
			logger.Warn("invalid file", zap.String("path", path), zap.Error(err))
			fmt.Fprintf(w, "FAIL %s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(w, "OK   %s\n", path)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files failed", errInvalid, failed, len(args))
	}
	return nil
}

func validateFile(cfg *config.Config, path string) error {
	m, err := loadModel(cfg, path)
	if err != nil {
		return err
	}
	if !cfg.Reader.Strict {
		return nil
	}
	if err := bsm.CheckOverlap(&m.Header); err != nil {
		return err
	}
	if st := m.Stats(); !st.OK() {
		return fmt.Errorf("bad indices: %+v", st)
	}
	return nil
}

func cmdDump(cfg *config.Config, args []string, w io.Writer) error {
	if len(args) < 2 {
		return errors.New("usage: bsmtool dump <file.bsm> <section>")
	}
	section, ok := bsm.ParseSection(args[1])
	if !ok {
		return fmt.Errorf("unknown section %q", args[1])
	}

	m, err := loadModel(cfg, args[0])
	if err != nil {
		return err
	}

	return writeReport(w, cfg.Output.Format, newDumpReport(m, section, cfg.Output.Limit))
}

func cmdTBN(cfg *config.Config, args []string, w io.Writer) error {
	if len(args) < 1 {
		return errors.New("usage: bsmtool tbn <file.bsm>")
	}

	m, err := loadModel(cfg, args[0])
	if err != nil {
		return err
	}

	rep := m.CheckTBN(cfg.Reader.TBNTolerance)
	if err := writeReport(w, cfg.Output.Format, newTBNReport(rep, cfg.Reader.TBNTolerance)); err != nil {
		return err
	}
	if cfg.Reader.Strict && (rep.Degenerate > 0 || rep.NonOrthogonal > 0) {
		return fmt.Errorf("%w: %d degenerate and %d non-orthogonal tangent frames",
			errInvalid, rep.Degenerate, rep.NonOrthogonal)
	}
	return nil
}

func cmdConfig(cfg *config.Config, args []string, w io.Writer) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}
	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	logger.Info("wrote config", zap.String("path", path))
	fmt.Fprintf(w, "Wrote %s\n", path)
	return nil
}
