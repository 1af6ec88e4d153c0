package gui

// ClipboardProvider abstracts system clipboard access. Backends register
// one at startup; backend/opengl wires the GLFW clipboard and
// backend/sysclip wires the OS clipboard directly.
type ClipboardProvider interface {
	// GetText returns the clipboard's text, or "" when it is empty or
	// holds non-text data.
	GetText() string

	// SetText copies text to the system clipboard.
	SetText(text string)
}

// The process-wide provider. Widgets read and write the clipboard through
// the package-level helpers so they need no handle to the backend.
var clipboardProvider ClipboardProvider

// SetClipboardProvider installs the clipboard implementation. Call once
// during startup; the backends do this for you.
func SetClipboardProvider(cp ClipboardProvider) {
	clipboardProvider = cp
}

// GetClipboardProvider returns the installed provider, or nil.
func GetClipboardProvider() ClipboardProvider {
	return clipboardProvider
}

// ClipboardGetText reads the clipboard, "" when no provider is installed.
func ClipboardGetText() string {
	if clipboardProvider == nil {
		return ""
	}
	return clipboardProvider.GetText()
}

// ClipboardSetText writes to the clipboard, a no-op without a provider.
func ClipboardSetText(text string) {
	if clipboardProvider != nil {
		clipboardProvider.SetText(text)
	}
}

// ClipboardAvailable reports whether a provider is installed.
func ClipboardAvailable() bool {
	return clipboardProvider != nil
}
