// Command beangen generates ConfigurableFields methods for bean structs.
//
// A bean's schema lists the fields through which it references other beans.
// Writing it by hand is mechanical, so beangen derives it from struct tags:
//
//	//go:generate go run github.com/sghaida/beaninit/cmd/beangen -type Pipeline,Stage -out beans.gen.go
//
//	type Pipeline struct {
//		bean.Init[ImageParams]
//		bean.Label
//
//		Source   *Reader  `bean:"source"`
//		Fallback *Reader  `bean:"fallback,skip"`
//		Stages   []*Stage `bean:"stages,optional"`
//		Workers  int      `bean:"-"`
//	}
//
// Rules
//
//   - Embedded and unexported fields are ignored.
//   - `bean:"-"` leaves a field out of the schema.
//   - The schema name is the first tag element, or the field name with a
//     lower-case first word ("HTTPClient" becomes "httpClient").
//   - "skip" adds bean.SkipInit and "optional" adds bean.Optional.
//   - Slice fields become bean.ListOf, every other field bean.FieldOf.
//
// Flags
//
//	-type        comma separated struct names, in output order (required)
//	-out         output file (required)
//	-dir         package directory to scan (default: directory of -out)
//	-bean-import import path of the bean package
//
// Files ending in _test.go or .gen.go are not scanned. The output is
// formatted with go/format and written atomically (temp file + rename), so
// readers never observe partial writes.
package main
