// Command par reflows plain text paragraphs read from stdin to stdout,
// preserving quote markers, comment prefixes, and bodiless separator lines.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jcorbin/par/cmd/par/internal/parflag"
	"github.com/jcorbin/par/internal/charset"
	"github.com/jcorbin/par/internal/parutil"
	"github.com/jcorbin/par/internal/reflow"
)

type logState struct {
	out   *os.File
	flags int
}

var logs = logState{flags: log.Lshortfile}

func init() {
	logs.out = os.Stderr
	log.SetOutput(logs.out)
	log.SetFlags(logs.flags)
}

func (ls *logState) setOutput(f *os.File) {
	ls.out = f
	log.SetOutput(f)
}

const usage = `usage: par [flags...] < input > output

flags chain within a single argument, e.g. "w60j" sets width=60 and
enables justification. The grammar:
  B<op><set>  P<op><set>  Q<op><set>   body/protect/quote charsets
  h<n> p<n> r<n> s<n> w<n>             hang, prefix, repeat, suffix, width
  c d E e f g i j l q R t              boolean toggles (bare=on, =0/=1 explicit)
  <n>                                  bare number: prefix if <=8, else width
  help, version
`

const version = "par 0.1"

func main() {
	opts := parflag.Default()

	if body, ok := os.LookupEnv("PARBODY"); ok {
		set, err := charset.Parse(body)
		if err != nil {
			log.Fatalf("par: PARBODY: %v", err)
		}
		opts.Config.BodyChars = set
	}
	if prot, ok := os.LookupEnv("PARPROTECT"); ok {
		set, err := charset.Parse(prot)
		if err != nil {
			log.Fatalf("par: PARPROTECT: %v", err)
		}
		opts.Protect = set
	}
	if quote, ok := os.LookupEnv("PARQUOTE"); ok {
		set, err := charset.Parse(quote)
		if err != nil {
			log.Fatalf("par: PARQUOTE: %v", err)
		}
		opts.Config.QuoteChars = set
	}

	var args []string
	if initStr, ok := os.LookupEnv("PARINIT"); ok {
		args = append(args, parutil.SplitWhitespace(initStr)...)
	}
	args = append(args, os.Args[1:]...)

	opts, err := parflag.Parse(args, opts)
	if err != nil {
		log.Fatalf("par: %v", err)
	}

	if opts.Help {
		fmt.Fprint(os.Stdout, usage)
		os.Exit(0)
	}
	if opts.Version {
		fmt.Fprintln(os.Stdout, version)
		os.Exit(0)
	}

	if opts.ErrToStderr {
		logs.setOutput(os.Stderr)
	} else {
		logs.setOutput(os.Stdout)
	}

	driver := reflow.NewDriver(os.Stdin, os.Stdout, opts.Config, opts.Protect)
	if err := driver.Run(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
