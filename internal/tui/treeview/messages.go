package treeview

// loadedMsg carries the result of a (re)load.
type loadedMsg struct {
	doc Document
	err error
}
