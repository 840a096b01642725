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
package blocks

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

// PosType is the coordinate type.  Valid positions are nonnegative.
type PosType int64

// Block is a fixed-length sub-interval of a Region.  End is inclusive, and
// End > Start always holds for a Block returned by this package.
type Block struct {
	Chrom string
	Start PosType
	End   PosType
}

// NewBlock returns a Block, or an invariant-violation error if end <= start.
func NewBlock(chrom string, start, end PosType) (Block, error) {
	if end <= start {
		return Block{}, errors.E(InvariantKind, fmt.Sprintf("blocks.NewBlock: degenerate block %s:%d-%d", chrom, start, end))
	}
	return Block{Chrom: chrom, Start: start, End: end}, nil
}

// Len returns the number of positions covered by b.
func (b Block) Len() PosType {
	return b.End - b.Start + 1
}

func (b Block) String() string {
	return fmt.Sprintf("%s:%d-%d", b.Chrom, b.Start, b.End)
}

// Distance is the separation between two blocks.  It is either a finite
// number of positions, or incomparable when the blocks are on different
// chromosomes.  Use Finite to unpack it; an incomparable distance has no
// numeric value.
type Distance struct {
	n          PosType
	comparable bool
}

// Incomparable is the distance between blocks on different chromosomes.
var Incomparable = Distance{}

// Finite returns a finite Distance of n positions.
func Finite(n PosType) Distance {
	return Distance{n: n, comparable: true}
}

// Finite returns (n, true) for a finite distance and (0, false) otherwise.
func (d Distance) Finite() (PosType, bool) {
	return d.n, d.comparable
}

// AtLeast reports whether d >= min.  An incomparable distance is treated as
// infinitely far, so it is at least any finite threshold.
func (d Distance) AtLeast(min PosType) bool {
	if !d.comparable {
		return true
	}
	return d.n >= min
}

func (d Distance) String() string {
	if !d.comparable {
		return "incomparable"
	}
	return fmt.Sprintf("%d", d.n)
}

// BlockDistance returns b.Start - a.End when a and b are on the same
// chromosome, and Incomparable otherwise.  The result may be negative if b
// does not follow a.
func BlockDistance(a, b Block) Distance {
	if a.Chrom != b.Chrom {
		return Incomparable
	}
	return Finite(b.Start - a.End)
}
