// Package ui provides semantic text formatting for libset's CLI output.
//
// Formatters render with color when the terminal supports it. When NO_COLOR
// is set or colors are unavailable they fall back to text decorations:
//
//	ui.Code.Sprint("libset store get")   // `libset store get`
//	ui.Path.Sprint("~/.config/app/v1")   // unchanged
//	ui.Key.Sprint("colors")              // 'colors'
//	ui.Format.Sprint("json")             // [json]
//	ui.Muted.Sprint("not written")       // (not written)
//
// Done and Failed prefix a message with a success or error mark.
package ui
