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
package cmd

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/bedblocks/blocks"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/require"
	"v.io/x/lib/cmdline"
)

const regionsBED = "../../../interval/testdata/regions.bed"

// runCmd runs bio-bedblocks with args and returns its stdout.
func runCmd(t *testing.T, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	env := cmdline.EnvFromOS()
	env.Stdout = &stdout
	env.Stderr = &stderr
	err := cmdline.ParseAndRun(newCmdRoot(), env, args)
	return stdout.String(), err
}

func TestStarts(t *testing.T) {
	got, err := runCmd(t, "starts", "-block-len=100", regionsBED)
	assert.NoError(t, err)

	var want []string
	for s := 100; s <= 400; s += 100 {
		want = append(want, fmt.Sprintf("chrom2\t%d", s))
	}
	for s := 100; s <= 4900; s += 100 {
		want = append(want, fmt.Sprintf("chrom2\t%d", s))
	}
	// chr1 10-15 is shorter than a block and contributes nothing.
	require.Equal(t, strings.Join(want, "\n")+"\n", got)
}

func TestStartsOneBased(t *testing.T) {
	got, err := runCmd(t, "starts", "-block-len=100", "-one-based", regionsBED)
	assert.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	expect.EQ(t, lines[0], "chrom2\t99")
}

func TestTile(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	outPath := filepath.Join(tempDir, "out.tsv")

	stdout, err := runCmd(t, "tile", "-block-len=100", "-min-dist=1000", "-out", outPath, regionsBED)
	assert.NoError(t, err)
	expect.EQ(t, stdout, "")
	got, err := ioutil.ReadFile(outPath)
	assert.NoError(t, err)
	require.Equal(t, "chrom2\t100\t199\n"+
		"chrom2\t100\t199\n"+
		"chrom2\t1200\t1299\n"+
		"chrom2\t2300\t2399\n"+
		"chrom2\t3400\t3499\n"+
		"chrom2\t4500\t4599\n", string(got))
}

func TestTileRegionFlag(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	outPath := filepath.Join(tempDir, "out.tsv")

	_, err := runCmd(t, "tile", "-block-len=100", "-min-dist=1000", "-region=chrom2:101-5000", "-out", outPath)
	assert.NoError(t, err)
	got, err := ioutil.ReadFile(outPath)
	assert.NoError(t, err)
	require.Equal(t, "chrom2\t100\t199\n"+
		"chrom2\t1200\t1299\n"+
		"chrom2\t2300\t2399\n"+
		"chrom2\t3400\t3499\n"+
		"chrom2\t4500\t4599\n", string(got))
}

func TestUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{"starts", "-block-len=100"},
		{"starts", "-block-len=100", regionsBED, regionsBED},
		{"tile", "-block-len=100", regionsBED, regionsBED},
	} {
		_, err := runCmd(t, args...)
		expect.EQ(t, err, cmdline.ErrUsage, "%v", args)
	}
}

func TestConfigErrors(t *testing.T) {
	for _, args := range [][]string{
		{"starts", regionsBED},
		{"starts", "-block-len=1", regionsBED},
		{"tile", regionsBED},
		{"tile", "-block-len=100", "-min-dist=-1", regionsBED},
		{"tile", "-block-len=100", "-region=chrom2:101-5000", regionsBED},
	} {
		out, err := runCmd(t, args...)
		expect.True(t, blocks.IsConfig(err), "%v: %v", args, err)
		expect.EQ(t, out, "", "%v", args)
	}
}
