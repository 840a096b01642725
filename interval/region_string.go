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
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseRegionString parses a region string of one of the forms
//   [contig ID]:[1-based first pos]-[last pos]
//   [contig ID]:[1-based pos]
// returning an Entry with 0-based, half-open interval boundaries.  Commas in
// positions are ignored, so "chr1:1,000-2,000" is accepted.
func ParseRegionString(region string) (result Entry, err error) {
	if len(region) == 0 {
		err = errors.Errorf("interval.ParseRegionString: empty region string")
		return
	}
	colonPos := strings.LastIndexByte(region, ':')
	if colonPos == -1 {
		err = errors.Errorf("interval.ParseRegionString: %q has no position range", region)
		return
	}
	if colonPos == 0 {
		err = errors.Errorf("interval.ParseRegionString: empty contig ID")
		return
	}
	result.ChrName = region[0:colonPos]
	rangeStr := strings.Replace(region[colonPos+1:], ",", "", -1)
	dashPos := strings.IndexByte(rangeStr, '-')
	if dashPos == -1 {
		var pos1 int64
		if pos1, err = strconv.ParseInt(rangeStr, 10, 64); err != nil {
			err = errors.Wrapf(err, "interval.ParseRegionString: %q", region)
			return
		}
		if pos1 <= 0 {
			err = errors.Errorf("interval.ParseRegionString: position %v in region string out of range", rangeStr)
			return
		}
		result.Start0 = PosType(pos1 - 1)
		result.End = PosType(pos1)
		return
	}
	start1Str := rangeStr[:dashPos]
	endStr := rangeStr[dashPos+1:]
	var start1, end0 int64
	if start1, err = strconv.ParseInt(start1Str, 10, 64); err != nil {
		err = errors.Wrapf(err, "interval.ParseRegionString: %q", region)
		return
	}
	if start1 <= 0 {
		err = errors.Errorf("interval.ParseRegionString: position %v in region string out of range", start1Str)
		return
	}
	if end0, err = strconv.ParseInt(endStr, 10, 64); err != nil {
		err = errors.Wrapf(err, "interval.ParseRegionString: %q", region)
		return
	}
	if end0 < start1 || end0 == math.MaxInt64 {
		err = errors.Errorf("interval.ParseRegionString: invalid range string %v", rangeStr)
		return
	}
	result.Start0 = PosType(start1 - 1)
	result.End = PosType(end0)
	return
}
