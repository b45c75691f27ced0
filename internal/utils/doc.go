// Package utils provides small helpers shared by the command layer.
//
// # I/O
//
//   - ReadStdin, ReadInputFile: read piped or file input for `gistenv push`
//   - ReadSecret, ReadLine: interactive prompts for `gistenv config init`
//
// # Strings
//
//   - MaskSecret: hides tokens and keys in `gistenv config show`
package utils
