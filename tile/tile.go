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
package tile

import (
	"context"
	"fmt"
	"runtime"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/bedblocks/blocks"
	"github.com/grailbio/bedblocks/interval"
)

// Stats summarizes a Run.
type Stats struct {
	// RegionsRead is the number of regions that were tiled.
	RegionsRead int
	// RegionsSkipped is the number of malformed records skipped.
	RegionsSkipped int
	// BlocksGenerated counts blocks before masking and filtering.
	BlocksGenerated int
	// BlocksMasked counts blocks dropped because they touched the mask.
	BlocksMasked int
	// BlocksWritten counts blocks that passed the distance filter.
	BlocksWritten int
}

func (s *Stats) add(o Stats) {
	s.RegionsRead += o.RegionsRead
	s.RegionsSkipped += o.RegionsSkipped
	s.BlocksGenerated += o.BlocksGenerated
	s.BlocksMasked += o.BlocksMasked
	s.BlocksWritten += o.BlocksWritten
}

// LoadRegions returns the regions to tile: the single opts.Region if it's
// set, otherwise every valid record of the BED file at bedPath.  Malformed
// records are logged and counted in the returned Stats, or returned as an
// error if opts.Strict is set.
func LoadRegions(ctx context.Context, bedPath string, opts *Opts) (regions []blocks.Region, stats Stats, err error) {
	if (opts.Region == "") == (bedPath == "") {
		err = errors.E(blocks.ConfigKind, "tile: exactly one of a BED path and a region string is required")
		return
	}
	if opts.Region != "" {
		var entry interval.Entry
		if entry, err = interval.ParseRegionString(opts.Region); err != nil {
			err = errors.E(blocks.ConfigKind, err)
			return
		}
		var r blocks.Region
		if r, err = blocks.NewRegion(entry.ChrName, entry.Start0, entry.End, opts.BlockLen); err != nil {
			return
		}
		return []blocks.Region{r}, stats, nil
	}
	skip := func(entry interval.Entry, err error) error {
		if opts.Strict {
			return err
		}
		log.Error.Printf("skipping record %d (%s): %v", entry.LineIdx, entry.ChrName, err)
		stats.RegionsSkipped++
		return nil
	}
	err = interval.ReadBEDFromPath(ctx, bedPath, interval.BEDOpts{OneBasedInput: opts.OneBasedInput}, func(entry interval.Entry, err error) error {
		if err != nil {
			return skip(entry, err)
		}
		r, err := blocks.NewRegion(entry.ChrName, entry.Start0, entry.End, opts.BlockLen)
		if err != nil {
			if blocks.IsMalformed(err) {
				return skip(entry, err)
			}
			return err
		}
		regions = append(regions, r)
		return nil
	})
	if err != nil {
		return nil, stats, err
	}
	log.Printf("tile: %d region(s) loaded from %s, %d skipped", len(regions), bedPath, stats.RegionsSkipped)
	return
}

// TileRegions tiles each region, drops blocks overlapping mask (if
// non-nil), and applies the minimum-distance filter.  The result has one
// block list per region, in the same order as regions.  Regions are
// independent, so up to parallelism of them are processed concurrently.  An
// invariant violation in any region aborts the whole call.
func TileRegions(regions []blocks.Region, minDist blocks.PosType, mask *interval.Mask, parallelism int) ([][]blocks.Block, Stats, error) {
	results := make([][]blocks.Block, len(regions))
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	if parallelism > len(regions) {
		parallelism = len(regions)
	}
	jobStats := make([]Stats, parallelism)
	err := traverse.Each(parallelism, func(jobIdx int) error {
		startIdx := (jobIdx * len(regions)) / parallelism
		endIdx := ((jobIdx + 1) * len(regions)) / parallelism
		st := &jobStats[jobIdx]
		for i := startIdx; i < endIdx; i++ {
			r := regions[i]
			bs, err := r.Blocks()
			if err != nil {
				return errors.E(err, fmt.Sprintf("tile: region %v", r))
			}
			st.RegionsRead++
			st.BlocksGenerated += len(bs)
			if mask != nil {
				n := len(bs)
				bs = mask.Remove(bs)
				st.BlocksMasked += n - len(bs)
			}
			if bs, err = blocks.FilterMinDistance(bs, minDist); err != nil {
				return errors.E(err, fmt.Sprintf("tile: region %v", r))
			}
			log.Debug.Printf("tile: region %v: %d block(s) kept", r, len(bs))
			st.BlocksWritten += len(bs)
			results[i] = bs
		}
		return nil
	})
	var stats Stats
	for _, st := range jobStats {
		stats.add(st)
	}
	if err != nil {
		return nil, stats, err
	}
	return results, stats, nil
}

// Run tiles the regions named by bedPath or opts.Region and writes the
// retained blocks to outPath ("-" for stdout).  Options are validated before
// anything is read; a configuration error or an invariant violation stops the
// run, while malformed records are skipped unless opts.Strict is set.
func Run(ctx context.Context, bedPath, outPath string, opts *Opts) (stats Stats, err error) {
	if err = opts.Validate(); err != nil {
		return
	}
	var mask *interval.Mask
	if opts.ExcludePath != "" {
		if mask, err = interval.LoadMask(ctx, opts.ExcludePath, interval.BEDOpts{OneBasedInput: opts.OneBasedInput}); err != nil {
			return
		}
	}
	var regions []blocks.Region
	if regions, stats, err = LoadRegions(ctx, bedPath, opts); err != nil {
		return
	}
	results, tileStats, err := TileRegions(regions, opts.MinDist, mask, opts.Parallelism)
	if err != nil {
		return
	}
	skipped := stats.RegionsSkipped
	stats = tileStats
	stats.RegionsSkipped = skipped
	if err = writeBlocks(ctx, outPath, opts.Format, opts.Parallelism, results); err != nil {
		return
	}
	log.Printf("tile: %d region(s), %d block(s) generated, %d masked, %d written to %s",
		stats.RegionsRead, stats.BlocksGenerated, stats.BlocksMasked, stats.BlocksWritten, outPath)
	return
}
