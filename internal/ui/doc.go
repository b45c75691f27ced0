// Package ui provides semantic text formatting for CLI output.
//
// Formatters are named after what they render (sections, keys, paths)
// rather than how they look. When colors are available, content is
// colorized. When NO_COLOR is set or the terminal doesn't support colors,
// text-based decorations are used instead so the output stays readable.
//
// # Semantic Formatters
//
//	ui.Code.Sprint("gistenv copy-section Production") // Commands
//	ui.Path.Sprint(".env.local")                      // File paths
//	ui.Section.Sprint("Production")                   // Section names
//	ui.Key.Sprint("DATABASE_URL")                     // Variable keys
//	ui.Success.Sprint("✓")                            // Success indicators
//	ui.Error.Sprint("✗")                              // Error indicators
//	ui.Warning.Sprint("[dry-run]")                    // Warnings
//	ui.Info.Sprint("→")                               // Hints
//	ui.Muted.Sprint("no section")                     // De-emphasized text
//
// When colors are disabled:
//   - Code: `backticks`
//   - Section: [brackets]
//   - Muted: (parentheses)
//   - Others: no decoration
package ui
