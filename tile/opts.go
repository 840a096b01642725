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
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/bedblocks/blocks"
)

// Output formats.
const (
	FormatTSV    = "tsv"
	FormatTSVBgz = "tsv-bgz"
)

// Opts configures Run.
type Opts struct {
	// BlockLen is the length of every generated block.  Required.
	BlockLen blocks.PosType
	// MinDist is the smallest allowed gap between the end of one retained
	// block and the start of the next one on the same chromosome.
	MinDist blocks.PosType
	// Region, if set, is tiled instead of a BED file.  Format as
	// <contig ID>:<1-based first pos>-<last pos> or <contig ID>:<1-based pos>.
	Region string
	// ExcludePath is an optional BED file of intervals no block may touch.
	ExcludePath string
	// OneBasedInput interprets BED boundaries as one-based [start, end].
	OneBasedInput bool
	// Strict makes a malformed input record fatal instead of skipping it.
	Strict bool
	// Parallelism is the maximum number of regions tiled at the same time.  0
	// means runtime.NumCPU().
	Parallelism int
	// Format is FormatTSV or FormatTSVBgz.
	Format string
}

// DefaultOpts are the defaults used by the command line.  BlockLen has no
// usable default.
var DefaultOpts = Opts{
	MinDist:     0,
	Parallelism: 0,
	Format:      FormatTSV,
}

// Validate checks o before any input is read.  All errors it returns are
// configuration errors (blocks.IsConfig).
func (o *Opts) Validate() error {
	if err := blocks.ValidateBlockLen(o.BlockLen); err != nil {
		return err
	}
	if err := blocks.ValidateMinDist(o.MinDist); err != nil {
		return err
	}
	if o.Parallelism < 0 {
		return errors.E(blocks.ConfigKind, fmt.Sprintf("tile: parallelism must be nonnegative, got %d", o.Parallelism))
	}
	switch o.Format {
	case FormatTSV, FormatTSVBgz:
	default:
		return errors.E(blocks.ConfigKind, fmt.Sprintf("tile: unknown output format %q", o.Format))
	}
	return nil
}
