package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"text/template"
	"unicode"
)

const defaultBeanImport = "github.com/sghaida/beaninit/bean"

// FieldSpec is one entry of a generated schema.
type FieldSpec struct {
	// Name is the schema name.
	Name string
	// GoName is the struct field.
	GoName string
	// Func is FieldOf or ListOf.
	Func string
	// Mods are bean modifier identifiers (SkipInit, Optional).
	Mods []string
}

// TypeSpec is a struct whose schema is generated.
type TypeSpec struct {
	Name   string
	Fields []FieldSpec
}

// templateData is the input passed to the Go template.
type templateData struct {
	Package    string
	BeanImport string
	Types      []TypeSpec
}

// run executes the generator logic and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("beangen", flag.ContinueOnError)
	flags.SetOutput(stderr)

	typeList := flags.String("type", "", "comma separated struct names")
	outPath := flags.String("out", "", "output .gen.go file path")
	dir := flags.String("dir", "", "package directory (default: directory of -out)")
	beanImport := flags.String("bean-import", defaultBeanImport, "import path of the bean package")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if strings.TrimSpace(*typeList) == "" || strings.TrimSpace(*outPath) == "" {
		_, _ = fmt.Fprintln(stderr, "usage: beangen -type T1,T2 -out <file.gen.go> [-dir <package dir>]")
		return 2
	}

	generatedFilePath := filepath.Clean(*outPath)
	packageDir := *dir
	if strings.TrimSpace(packageDir) == "" {
		packageDir = filepath.Dir(generatedFilePath)
	}

	src, err := generate(packageDir, splitTypes(*typeList), *beanImport)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "beangen:", err)
		return 1
	}
	if err := writeFileAtomic(generatedFilePath, src, 0o644); err != nil {
		_, _ = fmt.Fprintln(stderr, "beangen:", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func splitTypes(list string) []string {
	var names []string
	for _, n := range strings.Split(list, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}

// generate scans packageDir and renders the schema methods for typeNames.
func generate(packageDir string, typeNames []string, beanImport string) ([]byte, error) {
	pkgName, structs, err := parsePackage(packageDir)
	if err != nil {
		return nil, err
	}

	data := templateData{Package: pkgName, BeanImport: beanImport}
	for _, name := range typeNames {
		st, ok := structs[name]
		if !ok {
			return nil, fmt.Errorf("type %q not found in %s", name, packageDir)
		}
		if st == nil {
			return nil, fmt.Errorf("type %q is not a plain struct type", name)
		}
		fields, err := schemaFields(st)
		if err != nil {
			return nil, fmt.Errorf("type %s: %w", name, err)
		}
		data.Types = append(data.Types, TypeSpec{Name: name, Fields: fields})
	}

	var out bytes.Buffer
	if err := genTemplate.Execute(&out, data); err != nil {
		return nil, err
	}
	return format.Source(out.Bytes())
}

// parsePackage returns the package name and the type declarations of
// packageDir. Types that are not plain structs map to nil.
func parsePackage(packageDir string) (string, map[string]*ast.StructType, error) {
	dirEntries, err := os.ReadDir(packageDir)
	if err != nil {
		return "", nil, err
	}

	fileSet := token.NewFileSet()
	pkgName := ""
	structs := make(map[string]*ast.StructType)

	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}

		fileName := entry.Name()
		if !strings.HasSuffix(fileName, ".go") ||
			strings.HasSuffix(fileName, "_test.go") ||
			strings.HasSuffix(fileName, ".gen.go") {
			continue
		}

		parsedFile, err := parser.ParseFile(fileSet, filepath.Join(packageDir, fileName), nil, parser.SkipObjectResolution)
		if err != nil {
			return "", nil, err
		}
		if pkgName == "" {
			pkgName = parsedFile.Name.Name
		}

		for _, decl := range parsedFile.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}
			for _, spec := range genDecl.Specs {
				typeSpec := spec.(*ast.TypeSpec)
				st, ok := typeSpec.Type.(*ast.StructType)
				if !ok || typeSpec.TypeParams != nil {
					st = nil
				}
				structs[typeSpec.Name.Name] = st
			}
		}
	}

	if pkgName == "" {
		return "", nil, fmt.Errorf("no Go files in %s", packageDir)
	}
	return pkgName, structs, nil
}

// schemaFields applies the tag rules to the fields of st, in declaration order.
func schemaFields(st *ast.StructType) ([]FieldSpec, error) {
	var fields []FieldSpec
	seen := make(map[string]string)

	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			continue
		}

		tag := ""
		if field.Tag != nil {
			raw, err := strconv.Unquote(field.Tag.Value)
			if err != nil {
				return nil, fmt.Errorf("bad tag %s: %w", field.Tag.Value, err)
			}
			tag = reflect.StructTag(raw).Get("bean")
		}
		if tag == "-" {
			continue
		}

		fn := "FieldOf"
		if arr, ok := field.Type.(*ast.ArrayType); ok && arr.Len == nil {
			fn = "ListOf"
		}

		for _, ident := range field.Names {
			if !ident.IsExported() {
				continue
			}

			spec, err := parseTag(ident.Name, tag)
			if err != nil {
				return nil, err
			}
			if prev, dup := seen[spec.Name]; dup {
				return nil, fmt.Errorf("fields %s and %s share the name %q", prev, ident.Name, spec.Name)
			}
			seen[spec.Name] = ident.Name

			spec.Func = fn
			fields = append(fields, spec)
		}
	}
	return fields, nil
}

func parseTag(goName, tag string) (FieldSpec, error) {
	spec := FieldSpec{GoName: goName, Name: lowerCamel(goName)}
	if tag == "" {
		return spec, nil
	}

	parts := strings.Split(tag, ",")
	if name := strings.TrimSpace(parts[0]); name != "" {
		spec.Name = name
	}
	for _, opt := range parts[1:] {
		switch strings.TrimSpace(opt) {
		case "skip":
			spec.Mods = append(spec.Mods, "SkipInit")
		case "optional":
			spec.Mods = append(spec.Mods, "Optional")
		default:
			return FieldSpec{}, fmt.Errorf("field %s: unknown bean tag option %q", goName, opt)
		}
	}
	return spec, nil
}

// lowerCamel lower-cases the leading word of an exported identifier.
func lowerCamel(s string) string {
	runes := []rune(s)
	upper := 0
	for upper < len(runes) && unicode.IsUpper(runes[upper]) {
		upper++
	}

	switch {
	case upper == 0:
		return s
	case upper == len(runes):
		return strings.ToLower(s)
	case upper > 1:
		// Acronym followed by a word: keep the word's capital.
		upper--
	}
	for i := 0; i < upper; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

// genTemplate is the Go source template used to generate the schema methods.
var genTemplate = template.Must(
	template.New("beangen").Parse(`// Code generated by beangen; DO NOT EDIT.

package {{.Package}}

import "{{.BeanImport}}"
{{range .Types}}
// ConfigurableFields implements bean.Bean.
func (b *{{.Name}}) ConfigurableFields() []bean.Field {
{{- if .Fields}}
	return []bean.Field{
{{- range .Fields}}
		bean.{{.Func}}({{printf "%q" .Name}}, &b.{{.GoName}}{{range .Mods}}, bean.{{.}}{{end}}),
{{- end}}
	}
{{- else}}
	return nil
{{- end}}
}
{{end}}`),
)

// tempFile abstracts an os.File for testability.
type tempFile interface {
	Name() string
	Write([]byte) (int, error)
	Close() error
}

// File operation hooks, overridden in tests.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	chmodFile      = os.Chmod
	renameFile     = os.Rename
	removeFile     = os.Remove
)

// writeFileAtomic writes a file atomically.
//
// It writes to a temporary file in the same directory and then renames it
// over the target path, ensuring readers never observe partial writes.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) (err error) {
	targetDir := filepath.Dir(targetPath)

	tmpFile, err := createTempFile(targetDir, filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = removeFile(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = chmodFile(tmpPath, perm); err != nil {
		return err
	}
	return renameFile(tmpPath, targetPath)
}
