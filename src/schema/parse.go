package schema

import (
	"path/filepath"
	"strings"

	"github.com/kaptinlin/jsonrepair"
	"github.com/pkg/errors"

	"github.com/tanema/jstype/src/lerrors"
)

// Mode are flags to indicate how a document should be decoded.
type Mode uint

const (
	// ModeJSON decodes the document as strict JSON.
	ModeJSON Mode = 0b001
	// ModeYAML decodes the document as YAML.
	ModeYAML Mode = 0b010
	// ModeRepair retries JSON that fails to decode after repairing it. Single quotes,
	// unquoted keys, comments and trailing commas are all accepted this way.
	ModeRepair Mode = 0b100
)

// Parse will, depending on the Mode and the filename extension, decode a JSON or
// YAML document. Files ending in .yaml or .yml are always decoded as YAML.
func Parse(filename string, data []byte, mode Mode) (any, error) {
	if mode&ModeYAML == ModeYAML || isYAMLFile(filename) {
		val, err := ParseYAML(data)
		return val, lerrors.New(lerrors.DecodeErr, filename, err)
	}
	val, err := ParseJSON(data)
	if err == nil || mode&ModeRepair != ModeRepair {
		return val, lerrors.New(lerrors.DecodeErr, filename, err)
	}
	repaired, repairErr := Repair(data)
	if repairErr != nil {
		return nil, lerrors.New(lerrors.RepairErr, filename, repairErr)
	}
	val, err = ParseJSON(repaired)
	return val, lerrors.New(lerrors.DecodeErr, filename, err)
}

// Repair rewrites malformed JSON into valid JSON.
func Repair(data []byte) ([]byte, error) {
	repaired, err := jsonrepair.JSONRepair(string(data))
	if err != nil {
		return nil, errors.Wrap(err, "repair")
	}
	return []byte(repaired), nil
}

func isYAMLFile(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
