// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package cmd

import (
	"io"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/bedblocks/blocks"
	"github.com/grailbio/bedblocks/interval"
	"github.com/grailbio/bedblocks/tile"
	"v.io/x/lib/cmdline"
)

func newCmdTile() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "tile",
		Short:    "Tile BED intervals into blocks and apply the minimum-distance filter",
		ArgsName: "[bedpath]",
		Long: `
Each BED interval [start, end) is split into consecutive blocks of -block-len
positions starting at start; a block is kept only if its inclusive end does
not exceed end.  The blocks of each interval are then thinned with a greedy
left-to-right sweep so that the gap between the end of a kept block and the
start of the next kept block is at least -min-dist.  Intervals are processed
independently and are neither merged nor sorted.

Either bedpath or -region must be given.`,
	}
	opts := tile.DefaultOpts
	blockLen := cmd.Flags.Int64("block-len", 0, "Length of each block; required, at least 2")
	minDist := cmd.Flags.Int64("min-dist", int64(tile.DefaultOpts.MinDist), "Minimum gap between the end of a kept block and the start of the next one")
	cmd.Flags.StringVar(&opts.Region, "region", tile.DefaultOpts.Region, "Tile this region instead of a BED file. Format as <contig ID>:<1-based first pos>-<last pos> or <contig ID>:<1-based pos>")
	cmd.Flags.StringVar(&opts.ExcludePath, "exclude", tile.DefaultOpts.ExcludePath, "BED file of intervals that no block may overlap")
	cmd.Flags.BoolVar(&opts.OneBasedInput, "one-based", tile.DefaultOpts.OneBasedInput, "Interpret BED intervals as one-based [start, end]")
	cmd.Flags.BoolVar(&opts.Strict, "strict", tile.DefaultOpts.Strict, "Fail on a malformed BED record instead of skipping it")
	cmd.Flags.IntVar(&opts.Parallelism, "parallelism", tile.DefaultOpts.Parallelism, "Maximum number of regions tiled concurrently; 0 = runtime.NumCPU()")
	cmd.Flags.StringVar(&opts.Format, "format", tile.DefaultOpts.Format, "Output format; 'tsv' and 'tsv-bgz' supported")
	outPath := cmd.Flags.String("out", "-", "Output path; '-' writes to stdout")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) > 1 {
			return env.UsageErrorf("tile takes at most one bedpath argument, but got %v", argv)
		}
		var bedPath string
		if len(argv) == 1 {
			bedPath = argv[0]
		}
		opts.BlockLen = blocks.PosType(*blockLen)
		opts.MinDist = blocks.PosType(*minDist)
		stats, err := tile.Run(vcontext.Background(), bedPath, *outPath, &opts)
		if err != nil {
			return err
		}
		log.Printf("%d region(s) tiled, %d skipped, %d of %d block(s) kept", stats.RegionsRead, stats.RegionsSkipped, stats.BlocksWritten, stats.BlocksGenerated)
		return nil
	})
	return cmd
}

func newCmdStarts() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "starts",
		Short:    "Print the start of every block of each BED interval, without filtering",
		ArgsName: "bedpath",
	}
	blockLen := cmd.Flags.Int64("block-len", 0, "Length of each block; required, at least 2")
	oneBased := cmd.Flags.Bool("one-based", false, "Interpret BED intervals as one-based [start, end]")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return env.UsageErrorf("starts takes one bedpath argument, but got %v", argv)
		}
		return printStarts(env.Stdout, argv[0], blocks.PosType(*blockLen), *oneBased)
	})
	return cmd
}

// printStarts writes "chrom<TAB>start" for each block of each valid record.
func printStarts(out io.Writer, bedPath string, blockLen blocks.PosType, oneBased bool) error {
	if err := blocks.ValidateBlockLen(blockLen); err != nil {
		return err
	}
	w := tsv.NewWriter(out)
	err := interval.ReadBEDFromPath(vcontext.Background(), bedPath, interval.BEDOpts{OneBasedInput: oneBased}, func(entry interval.Entry, err error) error {
		if err != nil {
			log.Error.Printf("skipping record %d: %v", entry.LineIdx, err)
			return nil
		}
		starts, err := blocks.GenerateBlockStarts(entry.Start0, entry.End, blockLen)
		if err != nil {
			log.Error.Printf("skipping record %d: %v", entry.LineIdx, err)
			return nil
		}
		for _, s := range starts {
			w.WriteString(entry.ChrName)
			tile.WritePos(w, s)
			if err := w.EndLine(); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return w.Flush()
}

func newCmdRoot() *cmdline.Command {
	return &cmdline.Command{
		Name:     "bio-bedblocks",
		Short:    "Tile genomic intervals into evenly spaced fixed-length blocks",
		LookPath: false,
		Children: []*cmdline.Command{
			newCmdTile(),
			newCmdStarts(),
		},
	}
}

// Run is the entry point of bio-bedblocks.
func Run() {
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(newCmdRoot())
}
