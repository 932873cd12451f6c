package jstype

import (
	"os"
	"time"

	"github.com/lestrrat-go/strftime"

	"github.com/tanema/jstype/src/lerrors"
	"github.com/tanema/jstype/src/schema"
)

// Transform renders the type of an already decoded schema. The schema may be a
// bool, a *schema.Object or plain Go maps and slices such as the output of
// encoding/json.
func Transform(doc any, opts ...Option) string {
	return buildOptions(opts).walker().Walk(schema.Normalize(doc)).String()
}

// String will decode the schema source and render its type.
func String(label, src string, opts ...Option) (string, error) {
	options := buildOptions(opts)
	doc, err := parseSource(label, src, options)
	if err != nil {
		return "", err
	}
	return options.walker().Walk(doc).String(), nil
}

func parseSource(label, src string, options *Options) (any, error) {
	return schema.Parse(label, []byte(src), options.mode())
}

// File will read and decode a schema file and render its type.
func File(path string, opts ...Option) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", lerrors.New(lerrors.ReadErr, path, err)
	}
	return String(path, string(data), opts...)
}

// Declare wraps a rendered type in an exported type alias declaration.
func Declare(name, expr string) string {
	return "export type " + name + " = " + expr
}

// Banner formats a generated file header comment. The format is a strftime
// pattern evaluated at now.
func Banner(format string, now time.Time) (string, error) {
	strf, err := strftime.New(format)
	if err != nil {
		return "", err
	}
	return "// " + strf.FormatString(now), nil
}
