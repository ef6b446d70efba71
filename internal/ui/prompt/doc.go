// Package prompt provides the interactive confirmation shown before a move
// when the configuration asks for it.
//
//   - [Confirm]: Yes/No confirmation prompt, default No
package prompt
