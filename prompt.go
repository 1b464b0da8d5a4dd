package ted

// promptAction tells the prompt loop what to do after a keystroke.
type promptAction int

const (
	promptContinue promptAction = iota
	promptAccept
	promptCancel
)

// promptHandler is called after every keystroke in a prompt, including the
// one that ends it. Resize events are not keystrokes and are not passed on. A result other than promptContinue ends the prompt.
type promptHandler func(query string, k Key) promptAction

// prompt shows format (with one %s for the input so far) on the message
// line and collects a line of input. ok is false when the prompt was
// cancelled.
func (e *Editor) prompt(format string, onKey promptHandler) (input string, ok bool) {
	buf := make([]byte, 0, 128)
	for {
		e.SetStatusMessage(format, buf)
		e.refreshScreen()

		c := e.readKey()
		action := promptContinue
		switch {
		case c == delKey || c == ctrlH || c == keyBackspace:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case c == keyEsc:
			action = promptCancel
		case c == keyEnter:
			if len(buf) > 0 {
				action = promptAccept
			}
		case c == keyResize:
			if err := e.updateWindowSize(); err != nil {
				e.fail(err)
			}
		case !isControl(c) && c < 128:
			buf = append(buf, byte(c))
		}

		if onKey != nil && c != keyResize {
			if a := onKey(string(buf), c); action == promptContinue {
				action = a
			}
		}
		if e.err != nil {
			action = promptCancel
		}

		switch action {
		case promptAccept:
			e.SetStatusMessage("")
			return string(buf), true
		case promptCancel:
			e.SetStatusMessage("")
			return "", false
		}
	}
}
