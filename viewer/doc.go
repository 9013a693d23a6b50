// Package viewer is the interactive front end: an [Ebitengine] window that
// draws one fractal and lets the user pick the kind, type a depth and zoom.
//
//	err := viewer.Run(viewer.RunConfig{
//		Title: "Fractals", Width: 800, Height: 600,
//		Kind: fractal.KindSierpinski, Depth: 5, ShowHUD: true,
//	})
//
// Keys: digits and Backspace edit the depth, Enter draws, Tab cycles the
// kind (S and M select one directly), + and - or the mouse wheel zoom, R
// resets the zoom, F12 saves a screenshot, Q quits. A depth outside the
// kind's range opens a notification that must be dismissed with Esc or
// Enter before anything else is accepted.
//
// [Ebitengine]: https://ebitengine.org
package viewer
