// Package hostest provides a deterministic HostOS for tests.
package hostest

import (
	"bytes"
	"os"
	"time"

	"github.com/spf13/afero"

	"github.com/neoshell/sysinfo/core/hos"
)

// FakeOS is an in-memory HostOS with a fixed clock and injectable errors.
type FakeOS struct {
	WD    string
	Env   *hos.MapEnv
	Host  string
	Sys   hos.Utsname
	FS    afero.Fs
	Clock time.Time

	GetwdErr    error
	HostnameErr error
	UnameErr    error
	OpenErr     error
}

var _ hos.HostOS = (*FakeOS)(nil)

// NewFakeOS returns an empty fake with a fixed clock.
func NewFakeOS() *FakeOS {
	return &FakeOS{
		Env: hos.NewMapEnv(),
		FS:  afero.NewMemMapFs(),
		// Go's reference timestamp with a different value in each position.
		Clock: time.Date(2006, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

// NewDeterministicOS returns a fake preloaded with the fixture the golden
// tests expect: user alice on host devbox with three entries in /tmp.
func NewDeterministicOS() *FakeOS {
	fake := NewFakeOS()
	fake.WD = "/tmp"
	fake.Host = "devbox"
	fake.Sys = hos.Utsname{
		Sysname:  "Linux",
		Nodename: "devbox",
		Release:  "6.1.0",
		Version:  "#1 SMP PREEMPT_DYNAMIC",
		Machine:  "x86_64",
	}
	fake.Env.Setenv("USER", "alice")
	fake.Env.Setenv("HOME", "/home/alice")
	fake.MustWriteFile("/tmp/.bash_history", 12, 0600)
	fake.MustWriteFile("/tmp/notes.txt", 24, 0644)
	fake.MustWriteFile("/tmp/report.sh", 40, 0755)
	return fake
}

// MustWriteFile creates a file of the given size with the fake's fixed
// modification time.
func (f *FakeOS) MustWriteFile(name string, size int, mode os.FileMode) {
	if err := afero.WriteFile(f.FS, name, bytes.Repeat([]byte{'x'}, size), mode); err != nil {
		panic(err)
	}
	if err := f.FS.Chmod(name, mode); err != nil {
		panic(err)
	}
	if err := f.FS.Chtimes(name, f.Clock, f.Clock); err != nil {
		panic(err)
	}
}

// Getwd implements hos.HostOS.Getwd.
func (f *FakeOS) Getwd() (string, error) {
	if f.GetwdErr != nil {
		return "", f.GetwdErr
	}
	return f.WD, nil
}

// LookupEnv implements hos.HostOS.LookupEnv.
func (f *FakeOS) LookupEnv(key string) (string, bool) {
	if f.Env == nil {
		return "", false
	}
	return f.Env.LookupEnv(key)
}

// Environ implements hos.HostOS.Environ.
func (f *FakeOS) Environ() []string {
	if f.Env == nil {
		return nil
	}
	return f.Env.Environ()
}

// Hostname implements hos.HostOS.Hostname.
func (f *FakeOS) Hostname() (string, error) {
	if f.HostnameErr != nil {
		return "", f.HostnameErr
	}
	return f.Host, nil
}

// Uname implements hos.HostOS.Uname.
func (f *FakeOS) Uname() (hos.Utsname, error) {
	if f.UnameErr != nil {
		return hos.Utsname{}, f.UnameErr
	}
	return f.Sys, nil
}

// Open implements hos.HostOS.Open.
func (f *FakeOS) Open(name string) (afero.File, error) {
	if f.OpenErr != nil {
		return nil, f.OpenErr
	}
	return f.FS.Open(name)
}

// Now implements hos.HostOS.Now.
func (f *FakeOS) Now() time.Time {
	return f.Clock
}
