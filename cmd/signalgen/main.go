// Command signalgen writes the fixed-arity FuncN, OfN, NewN, NotifyN and
// TryNotifyN declarations of the signal package.
//
//	//go:generate go run github.com/krew-solutions/ascetic-signal-go/cmd/signalgen -max=8 -output=arity_generated.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

const arityLimit = 16

type arity struct {
	N int
}

// Decl is the type parameter list, empty for arity 0.
func (a arity) Decl() string {
	if a.N == 0 {
		return ""
	}
	return "[" + a.TypeArgs() + " any]"
}

func (a arity) TypeArgs() string {
	return a.join("A%d", ", ")
}

func (a arity) Args() string {
	return a.join("a%d", ", ")
}

// ParamsTail is the argument list following the signal parameter.
func (a arity) ParamsTail() string {
	if a.N == 0 {
		return ""
	}
	return ", " + a.join("a%[1]d A%[1]d", ", ")
}

func (a arity) Describe() string {
	switch a.N {
	case 0:
		return "no arguments"
	case 1:
		return "one argument"
	default:
		return fmt.Sprintf("%d arguments", a.N)
	}
}

func (a arity) join(format, sep string) string {
	parts := make([]string, a.N)
	for i := range parts {
		parts[i] = fmt.Sprintf(format, i+1)
	}
	return strings.Join(parts, sep)
}

var arityTemplate = template.Must(template.New("arity").Parse(`// Code generated by signalgen; DO NOT EDIT.

package {{.Package}}
{{range .Arities}}
// Func{{.N}} is a callback taking {{.Describe}} and returning nothing.
type Func{{.N}}{{.Decl}} = func({{.TypeArgs}})

// Of{{.N}} is a Signal holding a Func{{.N}}.
type Of{{.N}}{{.Decl}} = Signal[func({{.TypeArgs}})]

func New{{.N}}{{.Decl}}() *Signal[func({{.TypeArgs}})] {
	return New[func({{.TypeArgs}})]()
}

// Notify{{.N}} calls the subscriber once with the given arguments.
// Panics with an error wrapping ErrNoSubscriber if the signal is empty.
func Notify{{.N}}{{.Decl}}(s *Signal[func({{.TypeArgs}})]{{.ParamsTail}}) {
	callback, err := subscriber(s)
	if err != nil {
		panic(err)
	}
	callback({{.Args}})
}

func TryNotify{{.N}}{{.Decl}}(s *Signal[func({{.TypeArgs}})]{{.ParamsTail}}) error {
	callback, err := subscriber(s)
	if err != nil {
		return err
	}
	callback({{.Args}})
	return nil
}
{{end}}`))

func generate(pkg string, maxArity int) ([]byte, error) {
	if maxArity < 0 || maxArity > arityLimit {
		return nil, errors.Errorf("invalid -max %d: must be within [0, %d]", maxArity, arityLimit)
	}
	if pkg == "" {
		return nil, errors.New("package name is empty")
	}

	arities := make([]arity, 0, maxArity+1)
	for n := 0; n <= maxArity; n++ {
		arities = append(arities, arity{N: n})
	}

	var buf bytes.Buffer
	err := arityTemplate.Execute(&buf, struct {
		Package string
		Arities []arity
	}{pkg, arities})
	if err != nil {
		return nil, errors.Wrap(err, "execute template")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "format generated source")
	}
	return src, nil
}

func defaultPackage() string {
	if pkg := os.Getenv("GOPACKAGE"); pkg != "" {
		return pkg
	}
	return "signal"
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("signalgen: ")

	maxArity := flag.Int("max", 8, "highest arity to generate")
	pkg := flag.String("package", defaultPackage(), "package name of the generated file")
	output := flag.String("output", "arity_generated.go", "output file, - for stdout")
	flag.Parse()

	src, err := generate(*pkg, *maxArity)
	if err != nil {
		log.Fatal(err)
	}

	if *output == "-" {
		if _, err := os.Stdout.Write(src); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := os.WriteFile(*output, src, 0o644); err != nil {
		log.Fatal(err)
	}
}
