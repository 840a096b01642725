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

/*Package interval reads the genomic intervals fed to the blocks package.
  It parses BED files (plain or gzipped, via grailbio/base/file so any
  registered file implementation works) and samtools-style region strings,
  and builds Masks of intervals that generated blocks must avoid.

  BED intervals are 0-based and half-open.  Only the first three columns are
  read.  Input regions are not merged or sorted: each record is reported in
  file order, and it is up to the caller to tile it independently.
*/
package interval
