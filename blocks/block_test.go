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
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestNewBlock(t *testing.T) {
	b, err := NewBlock("1", 100, 500)
	assert.NoError(t, err)
	expect.EQ(t, b.Len(), PosType(401))
	expect.EQ(t, b.String(), "1:100-500")

	for _, end := range []PosType{100, 99} {
		_, err = NewBlock("1", 100, end)
		expect.True(t, IsInvariant(err), "end=%d: %v", end, err)
	}
}

func TestBlockDistance(t *testing.T) {
	a := Block{"1", 100, 500}
	tests := []struct {
		b        Block
		n        PosType
		finite   bool
		atLeast0 bool
	}{
		{Block{"1", 600, 1000}, 100, true, true},
		{Block{"1", 500, 1000}, 0, true, true},
		{Block{"1", 400, 1000}, -100, true, false},
		{Block{"2", 600, 1000}, 0, false, true},
		{Block{"2", 0, 10}, 0, false, true},
	}
	for _, tt := range tests {
		d := BlockDistance(a, tt.b)
		n, ok := d.Finite()
		expect.EQ(t, ok, tt.finite, "%v", tt.b)
		expect.EQ(t, n, tt.n, "%v", tt.b)
		expect.EQ(t, d.AtLeast(0), tt.atLeast0, "%v", tt.b)
	}
}

func TestIncomparableDistance(t *testing.T) {
	d := BlockDistance(Block{"1", 100, 500}, Block{"2", 600, 1000})
	expect.EQ(t, d, Incomparable)
	expect.EQ(t, d.String(), "incomparable")
	// Larger than any finite threshold, including ones a finite distance
	// between these coordinates could never reach.
	for _, min := range []PosType{0, 1, 100, 1 << 40, 1<<63 - 1} {
		expect.True(t, d.AtLeast(min))
	}
	expect.False(t, Finite(1<<62).AtLeast(1<<63-1))
	expect.EQ(t, Finite(100).String(), "100")
}
