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
	"io"
	"os"
	"strconv"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/bedblocks/blocks"
	"github.com/grailbio/hts/bgzf"
)

// WritePos appends p as the next column of the current line.
func WritePos(w *tsv.Writer, p blocks.PosType) {
	w.WriteString(strconv.FormatInt(int64(p), 10))
}

// writeBlock appends one "chrom\tstart\tend" line.
func writeBlock(w *tsv.Writer, b blocks.Block) error {
	w.WriteString(b.Chrom)
	WritePos(w, b.Start)
	WritePos(w, b.End)
	return w.EndLine()
}

// WriteBlocks writes every block of results, region by region, as
// tab-separated chrom, start, end lines.
func WriteBlocks(out io.Writer, results [][]blocks.Block) error {
	w := tsv.NewWriter(out)
	for _, bs := range results {
		for _, b := range bs {
			if err := writeBlock(w, b); err != nil {
				return err
			}
		}
	}
	return w.Flush()
}

// writeBlocks writes results to path, bgzipping them for FormatTSVBgz.
func writeBlocks(ctx context.Context, path, format string, parallelism int, results [][]blocks.Block) (err error) {
	var out io.Writer
	if path == "-" {
		out = os.Stdout
	} else {
		var dst file.File
		if dst, err = file.Create(ctx, path); err != nil {
			return errors.E(err, "tile: creating", path)
		}
		defer file.CloseAndReport(ctx, dst, &err)
		out = dst.Writer(ctx)
	}
	if format == FormatTSVBgz {
		if parallelism <= 0 {
			parallelism = 1
		}
		bgzfWriter := bgzf.NewWriter(out, parallelism)
		defer func() {
			if e := bgzfWriter.Close(); e != nil && err == nil {
				err = e
			}
		}()
		out = bgzfWriter
	}
	if err = WriteBlocks(out, results); err != nil {
		return errors.E(err, "tile: writing", path)
	}
	return nil
}
