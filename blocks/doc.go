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

/*Package blocks tiles genomic regions into fixed-length, non-overlapping
  blocks, and thins the resulting block lists so that consecutive retained
  blocks are at least a minimum distance apart.

  Coordinates are 0-based.  A Region is half-open [Start, End).  A Block is
  written with an inclusive End, so a block of length L starting at s covers
  s..s+L-1 and has End == s+L-1.

  Typical use:

    r, err := blocks.NewRegion("chr2", 100, 5000, 100)
    ...
    bs, err := blocks.Tile(r, 1000)
    // bs starts: 100, 1200, 2300, 3400, 4500

  Three classes of errors are returned; use IsConfig, IsMalformed and
  IsInvariant to tell them apart.
*/
package blocks
