// Package hos wraps the operating system queries the reporter makes behind
// a small interface so tests and other platforms can substitute equivalent
// values without changing the report sequence.
package hos

import (
	"time"

	"github.com/spf13/afero"
)

// Utsname holds the fields of a POSIX utsname structure.
type Utsname struct {
	Sysname  string // Kernel name e.g. "Linux".
	Nodename string // Hostname of the machine on one of its networks.
	Release  string // Kernel release e.g. "4.15.0-147-generic".
	Version  string // Kernel version e.g. "#151-Ubuntu SMP Fri Jun 18 19:21:19 UTC 2021".
	Machine  string // Machine name e.g. "x86_64".
}

// HostOS provides the host facts the reporter prints.
type HostOS interface {
	// Getwd returns the process's current working directory.
	Getwd() (string, error)

	// LookupEnv retrieves the value of the environment variable named by the
	// key. If the variable is present in the environment the value (which may
	// be empty) is returned and the boolean is true. Otherwise the returned
	// value will be empty and the boolean will be false.
	LookupEnv(key string) (string, bool)

	// Environ returns a copy of strings representing the environment, in the
	// form "key=value".
	Environ() []string

	// Hostname returns the host name reported by the kernel.
	Hostname() (string, error)

	// Uname returns the system's uname information.
	Uname() (Utsname, error)

	// Open opens the named file for reading.
	Open(name string) (afero.File, error)

	// Now returns the current time.
	Now() time.Time
}

// EnvLookuper is the subset of HostOS needed to resolve identity variables.
type EnvLookuper interface {
	LookupEnv(key string) (string, bool)
}

var (
	// Conventional user-identity variables, most common first. USERNAME is
	// the Windows spelling.
	userEnvKeys = []string{"USER", "LOGNAME", "USERNAME"}

	homeEnvKeys = []string{"HOME", "USERPROFILE"}
)

// Username returns the current user's name from the environment, or the
// empty string if no identity variable is set.
func Username(env EnvLookuper) string {
	return firstEnv(env, userEnvKeys)
}

// HomeDir returns the current user's home directory from the environment,
// or the empty string if no home variable is set.
func HomeDir(env EnvLookuper) string {
	return firstEnv(env, homeEnvKeys)
}

func firstEnv(env EnvLookuper, keys []string) string {
	for _, key := range keys {
		if value, ok := env.LookupEnv(key); ok {
			return value
		}
	}
	return ""
}
