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
package interval

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	gunsafe "github.com/grailbio/base/unsafe"
	"github.com/grailbio/bedblocks/blocks"
	"github.com/klauspost/compress/gzip"
)

// PosType is the coordinate type used by this package.
type PosType = blocks.PosType

// BEDOpts defines behavior of this package's BED-reading functions.
type BEDOpts struct {
	// OneBasedInput interprets the BED interval boundaries as one-based [start,
	// end] instead of the usual zero-based [start, end).
	OneBasedInput bool
}

// Entry represents a single interval, with 0-based coordinates.
type Entry struct {
	ChrName string
	Start0  PosType
	End     PosType
	// LineIdx is the 1-based line number the entry came from, or 0 if it
	// didn't come from a file.
	LineIdx int
}

// getTokens identifies up to the first len(tokens) tokens from curLine,
// returning the number of tokens saved.  Any (group of) characters <= ' ' is
// treated as a delimiter.
func getTokens(tokens [][]byte, curLine []byte) int {
	posEnd := 0
	lineLen := len(curLine)
	for tokenIdx := range tokens {
		pos := posEnd
		for ; pos != lineLen; pos++ {
			if curLine[pos] > ' ' {
				break
			}
		}
		if pos == lineLen {
			return tokenIdx
		}
		posEnd = pos
		for ; posEnd != lineLen; posEnd++ {
			if curLine[posEnd] <= ' ' {
				break
			}
		}
		tokens[tokenIdx] = curLine[pos:posEnd]
	}
	return len(tokens)
}

var (
	trackKeyword   = []byte("track")
	browserKeyword = []byte("browser")
)

// hasKeyword returns true if line's first token is keyword.
func hasKeyword(line, keyword []byte) bool {
	return bytes.HasPrefix(line, keyword) && (len(line) == len(keyword) || line[len(keyword)] <= ' ')
}

// isHeaderLine returns true for the comment and metadata lines a BED file
// may start with.  A record whose contig name merely begins with "track" or
// "browser" is not one of them.
func isHeaderLine(line []byte) bool {
	line = bytes.TrimLeft(line, " \t")
	return len(line) > 0 && (line[0] == '#' || hasKeyword(line, trackKeyword) || hasKeyword(line, browserKeyword))
}

func malformed(lineIdx int, format string, args ...interface{}) error {
	return errors.E(blocks.MalformedKind, fmt.Sprintf("interval.ScanBED: line %d: ", lineIdx)+fmt.Sprintf(format, args...))
}

// parseEntry converts the first three columns of a BED line.  Only the
// syntax is checked here; end > start is left to blocks.NewRegion.
func parseEntry(tokens [][]byte, lineIdx int, startSubtract int) (entry Entry, err error) {
	entry.LineIdx = lineIdx
	// gunsafe.BytesToString is only safe while the scanner's buffer is
	// unchanged, so the chromosome name gets a real copy.
	entry.ChrName = string(tokens[0])
	var parsedStart, parsedEnd int64
	if parsedStart, err = strconv.ParseInt(gunsafe.BytesToString(tokens[1]), 10, 64); err != nil {
		return entry, malformed(lineIdx, "bad start coordinate %q", tokens[1])
	}
	parsedStart -= int64(startSubtract)
	if parsedStart < 0 {
		return entry, malformed(lineIdx, "negative start coordinate %q", tokens[1])
	}
	if parsedEnd, err = strconv.ParseInt(gunsafe.BytesToString(tokens[2]), 10, 64); err != nil {
		return entry, malformed(lineIdx, "bad end coordinate %q", tokens[2])
	}
	entry.Start0 = PosType(parsedStart)
	entry.End = PosType(parsedEnd)
	return entry, nil
}

// ScanBED reads the first three columns of each record of a BED file and
// calls fn with the resulting Entry, in file order.  Blank, comment, "track"
// and "browser" lines are skipped.  A record that can't be parsed is passed
// to fn as a malformed-record error (see blocks.IsMalformed) along with
// whatever fields were parsed; fn decides whether to continue.  ScanBED
// stops at the first non-nil error returned by fn and returns it.
func ScanBED(reader io.Reader, opts BEDOpts, fn func(entry Entry, err error) error) error {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var startSubtract int
	if opts.OneBasedInput {
		startSubtract++
	}
	var tokens [3][]byte
	lineIdx := 0
	for scanner.Scan() {
		lineIdx++
		curLine := scanner.Bytes()
		if isHeaderLine(curLine) {
			continue
		}
		nToken := getTokens(tokens[:], curLine)
		if nToken == 0 {
			continue
		}
		var err error
		entry := Entry{LineIdx: lineIdx}
		if nToken != 3 {
			entry.ChrName = string(tokens[0])
			err = malformed(lineIdx, "%d token(s), expected at least 3", nToken)
		} else {
			entry, err = parseEntry(tokens[:], lineIdx, startSubtract)
		}
		if e := fn(entry, err); e != nil {
			return e
		}
	}
	return scanner.Err()
}

// ReadBEDFromPath is a wrapper for ScanBED that takes a path instead of an
// io.Reader.  "-" reads stdin.  Gzipped input is decompressed.
func ReadBEDFromPath(ctx context.Context, path string, opts BEDOpts, fn func(entry Entry, err error) error) (err error) {
	if path == "-" {
		return ScanBED(os.Stdin, opts, fn)
	}
	var infile file.File
	if infile, err = file.Open(ctx, path); err != nil {
		return errors.E(err, "interval.ReadBEDFromPath:", path)
	}
	defer file.CloseAndReport(ctx, infile, &err)
	reader := io.Reader(infile.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		var gz *gzip.Reader
		if gz, err = gzip.NewReader(reader); err != nil {
			return errors.E(err, "interval.ReadBEDFromPath:", path)
		}
		defer func() {
			if e := gz.Close(); e != nil && err == nil {
				err = e
			}
		}()
		reader = gz
	}
	return ScanBED(reader, opts, fn)
}

// ReadEntries returns every entry of the BED file at path, failing on the
// first malformed record.
func ReadEntries(ctx context.Context, path string, opts BEDOpts) (entries []Entry, err error) {
	err = ReadBEDFromPath(ctx, path, opts, func(entry Entry, err error) error {
		if err != nil {
			return err
		}
		entries = append(entries, entry)
		return nil
	})
	return
}
