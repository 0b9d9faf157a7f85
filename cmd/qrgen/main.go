// Command qrgen encodes a string as a 25x25 QR code and writes it out as a
// Go source file declaring the bit matrix drawn on the badge.
//
//	qrgen [-o file] [-pkg name] [-f file] [data]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/kubesail/pibox-badge/bitmatrix"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("qrgen: %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("qrgen", flag.ContinueOnError)
	out := flags.String("o", "", "write the data file here instead of stdout")
	pkgName := flags.String("pkg", "qr", "package name of the data file")
	in := flags.String("f", "", "read the data to encode from this file")
	if err := flags.Parse(args); err != nil {
		return err
	}

	data := bitmatrix.DefaultData
	switch {
	case *in != "":
		b, err := os.ReadFile(*in)
		if err != nil {
			return err
		}
		data = strings.TrimRight(string(b), "\r\n")
	case flags.NArg() > 0:
		data = strings.Join(flags.Args(), " ")
	}

	m, err := bitmatrix.Generate(data)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", data, err)
	}

	if *out == "" {
		return bitmatrix.Write(stdout, *pkgName, m)
	}
	if err := bitmatrix.WriteFile(*out, *pkgName, m); err != nil {
		return err
	}
	fmt.Printf("Wrote %dx%d matrix for %q to %s\n", m.Rows(), m.Cols(), data, *out)
	return nil
}
