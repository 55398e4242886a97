package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/sghaida/beaninit/bean"
)

func newTreeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the bean graph with field names and modifiers",
		Long: `tree prints every bean reachable from the root through its fields, including
fields marked skip-init that a pass would not follow. Beans reached a second
time are printed once more without their fields.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.load()
			if err != nil {
				return err
			}
			p := newTreePrinter(cmd.OutOrStdout())
			return p.print(g.Root, "", 0)
		},
	}
}

type treePrinter struct {
	w    io.Writer
	out  *termenv.Output
	seen map[bean.Bean]struct{}
}

func newTreePrinter(w io.Writer) *treePrinter {
	return &treePrinter{w: w, out: termenv.NewOutput(w), seen: map[bean.Bean]struct{}{}}
}

func (p *treePrinter) print(b bean.Bean, label string, depth int) error {
	line := strings.Repeat("  ", depth) + label +
		p.out.String(b.BeanName()).Bold().String() + " " +
		p.out.String(fmt.Sprintf("%T", b)).Faint().String()

	if _, ok := p.seen[b]; ok {
		_, err := fmt.Fprintln(p.w, line+" "+p.out.String("(shown above)").Faint().String())
		return err
	}
	p.seen[b] = struct{}{}

	if ib, ok := b.(bean.Initializable); ok {
		line += " " + p.out.String("requires "+ib.RequiredParams()).Foreground(p.out.Color("6")).String()
	}
	if _, err := fmt.Fprintln(p.w, line); err != nil {
		return err
	}

	for _, f := range b.ConfigurableFields() {
		if f.Get == nil {
			continue
		}
		v, err := f.Get()
		if err != nil {
			return bean.FieldAccessError{Bean: b.BeanName(), Field: f.Name, Err: err}
		}

		mods := ""
		if f.Modifiers != 0 {
			mods = " " + p.out.String("["+f.Modifiers.String()+"]").Foreground(p.out.Color("3")).String()
		}

		if !f.Collection {
			if child, ok := v.(bean.Bean); ok {
				if err := p.print(child, f.Name+mods+": ", depth+1); err != nil {
					return err
				}
			}
			continue
		}

		items, _ := v.([]any)
		for i, item := range items {
			child, ok := item.(bean.Bean)
			if !ok {
				continue
			}
			if err := p.print(child, f.Name+"["+strconv.Itoa(i)+"]"+mods+": ", depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}
