package conf

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// EnvAdditionalProperties sets the default for objects without an explicit catch-all.
	EnvAdditionalProperties = "JSTYPE_ADDITIONAL_PROPERTIES"
	// EnvRepair enables repairing malformed JSON input.
	EnvRepair = "JSTYPE_REPAIR"
	// EnvDebug enables debug logging.
	EnvDebug = "JSTYPE_DEBUG"
	// EnvStamp is the strftime format of the generated banner.
	EnvStamp = "JSTYPE_STAMP"
	// EnvMaxDepth overrides MAXDEPTH.
	EnvMaxDepth = "JSTYPE_MAX_DEPTH"
	// DotEnv is the file read when Load is given no filenames.
	DotEnv = ".env"
)

// Env holds the settings read from the environment. Values that are missing or
// fail to parse keep their defaults.
type Env struct {
	AdditionalProperties bool
	Repair               bool
	Debug                bool
	Stamp                string
	MaxDepth             int
}

// DefaultEnv is the environment when nothing is set.
func DefaultEnv() Env {
	return Env{AdditionalProperties: true, MaxDepth: MAXDEPTH}
}

// FromEnv reads the settings from the process environment only.
func FromEnv() Env {
	return fromLookup(os.LookupEnv)
}

// Load reads the settings from the process environment falling back to the
// given dotenv files. Variables already set in the process win over the files,
// and the files are never written into the process environment. Without any
// filenames .env is read if it exists.
func Load(filenames ...string) (Env, error) {
	if len(filenames) == 0 {
		if _, err := os.Stat(DotEnv); errors.Is(err, fs.ErrNotExist) {
			return FromEnv(), nil
		}
		filenames = []string{DotEnv}
	}
	fileVars, err := godotenv.Read(filenames...)
	if err != nil {
		return DefaultEnv(), err
	}
	return fromLookup(func(key string) (string, bool) {
		if val, ok := os.LookupEnv(key); ok {
			return val, true
		}
		val, ok := fileVars[key]
		return val, ok
	}), nil
}

func fromLookup(lookup func(string) (string, bool)) Env {
	env := DefaultEnv()
	if val, ok := lookup(EnvAdditionalProperties); ok {
		env.AdditionalProperties = parseBool(val, env.AdditionalProperties)
	}
	if val, ok := lookup(EnvRepair); ok {
		env.Repair = parseBool(val, env.Repair)
	}
	if val, ok := lookup(EnvDebug); ok {
		env.Debug = parseBool(val, env.Debug)
	}
	if val, ok := lookup(EnvStamp); ok {
		env.Stamp = val
	}
	if val, ok := lookup(EnvMaxDepth); ok {
		if depth, err := strconv.Atoi(val); err == nil {
			env.MaxDepth = depth
		}
	}
	return env
}

func parseBool(val string, def bool) bool {
	b, err := strconv.ParseBool(val)
	if err != nil {
		return def
	}
	return b
}
