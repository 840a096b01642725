/*Command bio-bedblocks tiles the intervals of a BED file into fixed-length
  blocks and keeps a subset of them whose spacing is at least a minimum
  distance, e.g. to pick candidate probe locations.

  Usage:
    bio-bedblocks tile -block-len=100 -min-dist=1000 regions.bed > blocks.tsv
    bio-bedblocks tile -block-len=100 -region=chr2:101-5000 -out=blocks.tsv.gz -format=tsv-bgz
    bio-bedblocks starts -block-len=100 regions.bed

  tile writes one "chrom<TAB>start<TAB>end" line per retained block, where
  start is 0-based and end is inclusive.  starts prints the start of every
  block without filtering.  Input may be gzipped; "-" reads stdin.
*/
package main
