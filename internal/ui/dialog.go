package ui

import "tasklist/internal/form"

var (
	_ form.Confirmer = (*prompt)(nil)
	_ form.Notifier  = (*noticeBoard)(nil)
)

// prompt is the on-screen yes/no question. It holds the continuation until
// the user answers.
type prompt struct {
	message string
	reply   func(bool)
}

func (p *prompt) Confirm(message string, reply func(bool)) {
	p.message = message
	p.reply = reply
}

func (p *prompt) pending() bool {
	return p.reply != nil
}

// answer clears the prompt before running the continuation, which may
// itself post a new notice or question.
func (p *prompt) answer(ok bool) {
	reply := p.reply
	p.message = ""
	p.reply = nil
	if reply != nil {
		reply(ok)
	}
}

// noticeBoard keeps the latest notice for the status line.
type noticeBoard struct {
	message string
	kind    form.Kind
}

func (n *noticeBoard) Notify(message string, kind form.Kind) {
	n.message = message
	n.kind = kind
}
