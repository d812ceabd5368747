package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// printer writes one value per line, numbered when writing to a terminal
type printer struct {
	w       io.Writer
	indexed bool
	i       int
	err     error
}

func newPrinter(w io.Writer) *printer {
	p := &printer{w: w}
	if f, ok := w.(*os.File); ok {
		p.indexed = term.IsTerminal(int(f.Fd()))
	}
	return p
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	if p.indexed {
		_, p.err = fmt.Fprintf(p.w, "%d\t%s\n", p.i, s)
	} else {
		_, p.err = fmt.Fprintln(p.w, s)
	}
	p.i++
}

func (p *printer) float(v float64) {
	p.line(strconv.FormatFloat(v, 'g', -1, 64))
}

func (p *printer) bits(v int32) {
	p.line(strconv.FormatInt(int64(v), 10))
}
