// Package sysclip provides a windowless system clipboard provider,
// backed by golang.design/x/clipboard. Use it with backends that have no
// clipboard of their own, such as the Ebitengine backend.
package sysclip

import (
	"golang.design/x/clipboard"

	"github.com/frameloop/gui"
)

// Provider implements gui.ClipboardProvider on the OS clipboard.
type Provider struct{}

// Init initializes the OS clipboard and registers the provider globally.
// Returns an error when the platform has no clipboard support, in which
// case copy and paste silently do nothing.
func Init() (Provider, error) {
	if err := clipboard.Init(); err != nil {
		return Provider{}, err
	}
	p := Provider{}
	gui.SetClipboardProvider(p)
	return p, nil
}

// GetText retrieves text from the system clipboard.
func (Provider) GetText() string {
	return string(clipboard.Read(clipboard.FmtText))
}

// SetText copies text to the system clipboard.
func (Provider) SetText(text string) {
	clipboard.Write(clipboard.FmtText, []byte(text))
}
