// Package envfile reads and writes local .env files.
//
// Write supports two modes:
//
//   - replace: the file is rewritten from the given variables only
//   - append: the existing content is kept, a separator comment is added,
//     and the variables are written below it
//
// In append mode a variable without a section is skipped when its key is
// already present in the file. Variables that belong to a section are
// always written under their header, so several sections that share keys
// can be pulled into the same file.
//
// File access goes through the FileSystem interface; OSFileSystem writes
// through a temporary file and a rename so readers never see a partial file.
package envfile
