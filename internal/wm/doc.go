/*
Package wm implements the window manager core of the Copland desktop.

It owns the window records, the focus and z-order allocator, the
drag interaction controller and the viewport reconciliation pass. The
package has no knowledge of how windows are drawn: renderers report
what they drew through the Layout interface and feed pointer events in
through a PointerSource.

All methods are meant to be called from a single event loop. Nothing
here blocks, and collaborators (note persistence) are invoked in a
fire-and-forget manner.

Example usage:

	m := wm.NewManager(wm.Options{Persister: store})
	m.Open(homeWindow)
	m.Minimise(wm.HomeID)
	m.Focus(wm.HomeID) // restores and raises
*/
package wm
