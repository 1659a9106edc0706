// Package viz draws trajectories in the terminal.
//
//   - [Canvas]: Braille pixel canvas, 2x4 dots per character cell
//   - [Plot]: maps world coordinates onto a canvas with a shared frame
//   - [RenderComparison]: numeric and exact paths overlaid, one color each
//
// Styles are lipgloss styles shared with the replay TUI.
package viz
