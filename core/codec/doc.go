// Package codec transparently decompresses objects by key extension.
//
// Supported extensions:
//
//   - .gz, .gzip: gzip (klauspost/compress)
//   - .zst, .zstd: Zstandard (klauspost/compress)
//   - .bz2: bzip2
//
// Any other key is passed through untouched. Decoder failures surface as
// fault.ErrInvalidData, while failures of the underlying stream keep their class.
package codec
