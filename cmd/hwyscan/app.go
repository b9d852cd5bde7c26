// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-highperf/hwy"
	"github.com/ajroetker/go-highperf/hwy/contrib/algo"
	"github.com/ajroetker/go-highperf/hwy/contrib/hash"
	"github.com/ajroetker/go-highperf/hwy/contrib/workerpool"
)

var errNoFiles = errors.New("no input files")

// scanner holds the state shared by all subcommands, filled in by Before.
type scanner struct {
	out    io.Writer
	logOut io.Writer
	log    *slog.Logger
	tag    hwy.Tag
}

func newApp(out, logOut io.Writer) *cli.App {
	s := &scanner{out: out, logOut: logOut}
	return &cli.App{
		Name:      "hwyscan",
		Usage:     "Count bytes and hash files with lane-parallel kernels",
		Writer:    out,
		ErrWriter: logOut,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "scalar",
				Usage: "Force the scalar kernels",
			},
			&cli.IntFlag{
				Name:  "width",
				Usage: "Vector width in bytes (multiple of 8, at most 64); 0 uses the detected width",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
		},
		Before: s.setup,
		Commands: []*cli.Command{
			{
				Name:   "info",
				Usage:  "Print the dispatch level and lane counts",
				Action: s.info,
			},
			{
				Name:      "count",
				Usage:     "Count occurrences of a byte in each file",
				ArgsUsage: "FILE...",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "byte",
						Usage: "Byte value to count (0-255)",
						Value: '\n',
					},
					&cli.BoolFlag{
						Name:  "parallel",
						Usage: "Split each file across a worker pool",
					},
				},
				Action: s.count,
			},
			{
				Name:      "hash",
				Usage:     "Hash the contents of each file",
				ArgsUsage: "FILE...",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "seq",
						Usage: "Use the portable djb2 sequence hash instead of the width-dependent byte hash",
					},
				},
				Action: s.hash,
			},
		},
	}
}

func (s *scanner) setup(c *cli.Context) error {
	level := slog.LevelInfo
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	s.log = slog.New(slog.NewTextHandler(s.logOut, &slog.HandlerOptions{Level: level}))

	tag, err := tagFromFlags(c.Bool("scalar"), c.Int("width"))
	if err != nil {
		return err
	}
	s.tag = tag
	s.log.Debug("dispatch", "target", hwy.CurrentName(), "tag", tag.Name(), "width", tag.Width())
	return nil
}

func tagFromFlags(scalar bool, width int) (hwy.Tag, error) {
	switch {
	case scalar:
		return hwy.Scalar{}, nil
	case width == 0:
		return hwy.Native(), nil
	case width < 0 || width > hwy.MaxBytes || width%8 != 0:
		return nil, fmt.Errorf("invalid --width %d: want a multiple of 8 up to %d", width, hwy.MaxBytes)
	}
	return hwy.WidthTag(width), nil
}

func (s *scanner) info(c *cli.Context) error {
	fmt.Fprintf(s.out, "level:   %s\n", hwy.CurrentLevel())
	fmt.Fprintf(s.out, "width:   %d bytes\n", hwy.CurrentWidth())
	fmt.Fprintf(s.out, "no-simd: %v\n", hwy.NoSimdEnv())
	fmt.Fprintf(s.out, "native:  %s (hardware vectors: %v)\n", hwy.Native().Name(), hwy.NativeVectors())
	fmt.Fprintf(s.out, "tag:     %s (%d bytes)\n", s.tag.Name(), hwy.WidthOf(s.tag))
	fmt.Fprintf(s.out, "lanes:   int8=%d int16=%d int32=%d int64=%d\n",
		hwy.LanesFor[int8](s.tag), hwy.LanesFor[int16](s.tag),
		hwy.LanesFor[int32](s.tag), hwy.LanesFor[int64](s.tag))
	return nil
}

func (s *scanner) count(c *cli.Context) error {
	value := c.Int("byte")
	if value < 0 || value > 255 {
		return fmt.Errorf("invalid --byte %d: want 0-255", value)
	}

	var pool *workerpool.Pool
	if c.Bool("parallel") {
		pool = workerpool.New(0)
		defer pool.Close()
	}

	counts, err := s.forEachFile(c.Args().Slice(), func(data []byte) int64 {
		return int64(algo.ParallelCountWith(pool, s.tag, data, byte(value)))
	})
	if err != nil {
		return err
	}

	var total int64
	for i, name := range c.Args().Slice() {
		fmt.Fprintf(s.out, "%8d %s\n", counts[i], name)
		total += counts[i]
	}
	if len(counts) > 1 {
		fmt.Fprintf(s.out, "%8d total\n", total)
	}
	return nil
}

func (s *scanner) hash(c *cli.Context) error {
	seq := c.Bool("seq")
	hashes, err := s.forEachFile(c.Args().Slice(), func(data []byte) int64 {
		if seq {
			return int64(hash.Djb2HashCodeOf(data))
		}
		return int64(hash.Djb2LikeBytesWith(s.tag, data))
	})
	if err != nil {
		return err
	}

	for i, name := range c.Args().Slice() {
		fmt.Fprintf(s.out, "%08x  %s\n", uint32(hashes[i]), name)
	}
	return nil
}

// forEachFile reads every file concurrently and applies fn to its contents.
// Results are returned in argument order.
func (s *scanner) forEachFile(names []string, fn func([]byte) int64) ([]int64, error) {
	if len(names) == 0 {
		return nil, errNoFiles
	}

	results := make([]int64, len(names))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range names {
		g.Go(func() error {
			start := time.Now()
			data, err := os.ReadFile(name)
			if err != nil {
				return fmt.Errorf("read %s: %w", name, err)
			}
			results[i] = fn(data)
			s.log.Debug("scanned", "file", name, "bytes", len(data), "elapsed", time.Since(start))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
