package bitmatrix

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"io"
	"os"
	"strconv"
)

const (
	// VarName is the variable declared by a generated data file.
	VarName = "BitMatrix"

	ImportPath = "github.com/kubesail/pibox-badge/bitmatrix"
)

const header = "// Code generated by qrgen. DO NOT EDIT.\n\n"

// Write emits a gofmt'ed Go source file in package pkg declaring
// var BitMatrix = bitmatrix.Matrix{...}.
func Write(w io.Writer, pkg string, m Matrix) error {
	var b bytes.Buffer
	b.WriteString(header)
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "import %q\n\n", ImportPath)
	fmt.Fprintf(&b, "var %s = bitmatrix.Matrix{\n", VarName)
	for _, row := range m {
		b.WriteByte('{')
		for i, v := range row {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Itoa(int(v)))
		}
		b.WriteString("},\n")
	}
	b.WriteString("}\n")

	src, err := format.Source(b.Bytes())
	if err != nil {
		return fmt.Errorf("bitmatrix: formatting data file: %w", err)
	}
	_, err = w.Write(src)
	return err
}

// WriteFile writes the data file to path, replacing any existing file.
func WriteFile(path, pkg string, m Matrix) error {
	var b bytes.Buffer
	if err := Write(&b, pkg, m); err != nil {
		return err
	}
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		return fmt.Errorf("bitmatrix: %w", err)
	}
	return nil
}

// Parse reads back a data file produced by Write. Only the BitMatrix
// declaration is inspected; every cell must be Black or White.
func Parse(r io.Reader) (Matrix, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f, err := parser.ParseFile(token.NewFileSet(), "", src, 0)
	if err != nil {
		return nil, fmt.Errorf("bitmatrix: %w", err)
	}

	lit := findMatrix(f)
	if lit == nil {
		return nil, fmt.Errorf("bitmatrix: no %s declaration", VarName)
	}

	m := make(Matrix, 0, len(lit.Elts))
	for y, e := range lit.Elts {
		rowLit, ok := e.(*ast.CompositeLit)
		if !ok {
			return nil, fmt.Errorf("bitmatrix: row %d is not a literal", y)
		}
		row := make([]Cell, 0, len(rowLit.Elts))
		for x, ce := range rowLit.Elts {
			c, err := parseCell(ce)
			if err != nil {
				return nil, fmt.Errorf("bitmatrix: cell (%d,%d): %w", y, x, err)
			}
			row = append(row, c)
		}
		m = append(m, row)
	}
	return m, nil
}

// ParseFile parses the data file at path.
func ParseFile(path string) (Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

func findMatrix(f *ast.File) *ast.CompositeLit {
	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.VAR {
			continue
		}
		for _, spec := range gen.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			for i, name := range vs.Names {
				if name.Name != VarName || i >= len(vs.Values) {
					continue
				}
				if lit, ok := vs.Values[i].(*ast.CompositeLit); ok {
					return lit
				}
			}
		}
	}
	return nil
}

func parseCell(e ast.Expr) (Cell, error) {
	lit, ok := e.(*ast.BasicLit)
	if !ok || lit.Kind != token.INT {
		return 0, fmt.Errorf("not an integer literal")
	}
	v, err := strconv.ParseUint(lit.Value, 0, 8)
	if err != nil {
		return 0, err
	}
	c := Cell(v)
	if !validCell(c) {
		return 0, fmt.Errorf("value %d is neither %d nor %d", v, Black, White)
	}
	return c, nil
}
