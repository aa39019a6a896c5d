package tui

// linkErrMsg reports a "Read more..." link that could not be opened.
type linkErrMsg struct {
	err error
}
