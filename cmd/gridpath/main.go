package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/obstacles"
	"github.com/katalvlaran/gridpath/relax"
)

var (
	log = logrus.New()

	puzzle    string
	inputPath string
	size      int
	prefix    int
	worklist  string
	bisect    bool
)

func init() {
	flag.StringVar(&puzzle, "puzzle", "maze", "puzzle to solve: maze, bytes or trails")
	flag.StringVar(&inputPath, "input", "-", "puzzle input file, - for stdin")
	flag.StringVar(&inputPath, "i", "-", "puzzle input file (shorthand)")
	flag.IntVar(&size, "size", 0, "byte-fall grid side length (default GRIDPATH_BYTES_SIZE or 71)")
	flag.IntVar(&prefix, "prefix", -1, "obstacles applied before measuring distance (default GRIDPATH_BYTES_PREFIX or 1024)")
	flag.StringVar(&worklist, "worklist", relax.Stack.String(), "relaxation order: stack, queue or priority")
	flag.BoolVar(&bisect, "bisect", false, "binary-search the first disconnecting obstacle")
}

func setupLogging(cfg *config.Config) {
	logLevel := logrus.InfoLevel
	if cfg.Development {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	log.SetOutput(os.Stderr)

	// library diagnostics go through the same sink
	relax.Log = log
	obstacles.Log = log
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run loads the configuration, then solves the selected puzzle on the input.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}
	if size > 0 {
		cfg.BytesGridSize = size
	}
	if prefix >= 0 {
		cfg.BytesPrefix = prefix
	}

	setupLogging(cfg)
	log.WithFields(cfg.Fields()).Debug("config")

	solve, err := lookup(puzzle)
	if err != nil {
		return err
	}
	w, err := relax.ParseWorklist(worklist)
	if err != nil {
		return err
	}

	in, err := openInput(inputPath)
	if err != nil {
		return fmt.Errorf("unable to open input %s: %w", inputPath, err)
	}
	defer in.Close()

	return solve(in, os.Stdout, params{cfg: cfg, worklist: w, bisect: bisect})
}
