// bsmtool is a CLI utility for inspecting Binary Static Mesh (.bsm) files.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/libbsm/internal/config"
	"github.com/Faultbox/libbsm/internal/logger"
)

func main() {
	config.ParseFlags()
	args := config.Args()
	if len(args) < 1 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Init(logger.Options{
		Level:   cfg.Logging.Level,
		Console: os.Stderr,
		File:    logger.DefaultFileConfig(cfg.Logging.LogFile),
	})

	command := args[0]
	if err := run(cfg, command, args[1:], os.Stdout); err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

// run dispatches one subcommand, writing its report to w.
func run(cfg *config.Config, command string, args []string, w io.Writer) error {
	switch command {
	case "info":
		return cmdInfo(cfg, args, w)
	case "validate", "check":
		return cmdValidate(cfg, args, w)
	case "dump":
		return cmdDump(cfg, args, w)
	case "tbn":
		return cmdTBN(cfg, args, w)
	case "config":
		return cmdConfig(cfg, args, w)
	case "help", "-h", "--help":
		printUsage(w)
		return nil
	default:
		printUsage(os.Stderr)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `bsmtool - Binary Static Mesh inspector

Usage:
  bsmtool [flags] <command> [args]

Commands:
  info <file.bsm>               Show header and section layout
  validate <file.bsm>...        Check files; with -strict also overlap and indices
  dump <file.bsm> <section>     Print decoded records of one section
  tbn <file.bsm>                Report tangent frame quality
  config [path]                 Write the effective config as YAML

Sections:
  positions texcoords normals tangents tris meshes
  hullverts hulls visverts vistris

Flags:
  -config <path>   Config file (default ./bsmtool.yaml)
  -debug           Debug logging
  -strict          Reject overlapping chunks and out-of-range indices
  -format <fmt>    Output format: text or yaml
  -n <count>       Records per section for dump (0 = all)
  -raw             Do not decompress .bsm.zst input

Examples:
  bsmtool info crate.bsm
  bsmtool -strict validate models/*.bsm
  bsmtool -n 4 dump crate.bsm.zst tangents
  bsmtool -format yaml info crate.bsm`)
}
