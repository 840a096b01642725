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
	"github.com/grailbio/base/errors"
)

// Kinds of errors returned by this package.
//
// ConfigKind covers an unusable block length or minimum distance; nothing
// should be generated when it is reported.  MalformedKind covers a single
// bad input record, which a caller may skip.  InvariantKind means blocks
// reached the distance filter out of order or overlapping; it indicates a
// logic error upstream and the run should stop.
const (
	ConfigKind    = errors.Invalid
	MalformedKind = errors.Integrity
	InvariantKind = errors.Precondition
)

// IsConfig reports whether err is a configuration error.
func IsConfig(err error) bool {
	return err != nil && errors.Is(ConfigKind, err)
}

// IsMalformed reports whether err is a malformed-record error.
func IsMalformed(err error) bool {
	return err != nil && errors.Is(MalformedKind, err)
}

// IsInvariant reports whether err is an invariant violation.
func IsInvariant(err error) bool {
	return err != nil && errors.Is(InvariantKind, err)
}
