package ports

// EditorOpener opens an exported file in the user's editor.
type EditorOpener interface {
	OpenFile(path string) error
}
