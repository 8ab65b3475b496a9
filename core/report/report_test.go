package report

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/neoshell/sysinfo/core/config"
	"github.com/neoshell/sysinfo/core/hos/hostest"
)

func runReporter(fake *hostest.FakeOS, cfg *config.Configuration) (string, int) {
	out := &bytes.Buffer{}
	reporter := &Reporter{Config: cfg, OS: fake, Out: out}
	exitCode := reporter.Run()
	return out.String(), exitCode
}

func TestReporter(t *testing.T) {
	cases := map[string]func(t *testing.T, fake *hostest.FakeOS){
		"full-report": func(t *testing.T, fake *hostest.FakeOS) {},
		"missing-user": func(t *testing.T, fake *hostest.FakeOS) {
			fake.Env.Unsetenv("USER")
		},
		"empty-directory": func(t *testing.T, fake *hostest.FakeOS) {
			for _, name := range []string{".bash_history", "notes.txt", "report.sh"} {
				if err := fake.FS.Remove("/tmp/" + name); err != nil {
					t.Fatal(err)
				}
			}
		},
		"passwd-names": func(t *testing.T, fake *hostest.FakeOS) {
			err := afero.WriteFile(fake.FS, "/etc/passwd",
				[]byte("admin:x:0:0:root:/root:/bin/bash\n"), 0644)
			if err != nil {
				t.Fatal(err)
			}
		},
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
		goldie.WithTestNameForDir(true),
	)

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			fake := hostest.NewDeterministicOS()
			tc(t, fake)

			out := &bytes.Buffer{}
			reporter := &Reporter{Config: config.Default(), OS: fake, Out: out}
			assert.Equal(t, 0, reporter.Run())

			g.Assert(t, tn, out.Bytes())
		})
	}
}

func TestReporterNeverFails(t *testing.T) {
	fake := hostest.NewFakeOS()
	fake.GetwdErr = errors.New("getwd unavailable")
	fake.HostnameErr = errors.New("hostname unavailable")
	fake.UnameErr = errors.New("uname unavailable")
	fake.OpenErr = errors.New("open unavailable")

	out, exitCode := runReporter(fake, config.Default())

	assert.Equal(t, 0, exitCode)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, config.Default().Banner, lines[0])
	assert.Equal(t, config.Default().Footer, lines[len(lines)-1])

	// Unavailable values degrade to empty strings, not failures.
	assert.Contains(t, out, "Current directory: \n")
	assert.Contains(t, out, "User: \n")
	assert.Contains(t, out, "Home: \n")
	assert.Contains(t, out, "Hostname: \n")
	assert.Contains(t, out, "Kernel: \n")
}

func TestReporterIdempotent(t *testing.T) {
	fake := hostest.NewDeterministicOS()

	first, firstCode := runReporter(fake, config.Default())
	second, secondCode := runReporter(fake, config.Default())

	assert.Equal(t, first, second)
	assert.Equal(t, firstCode, secondCode)
}

func TestReporterValueOrder(t *testing.T) {
	fake := hostest.NewDeterministicOS()
	out, _ := runReporter(fake, config.Default())

	// The end-to-end contract: these literals appear in this relative order.
	wantInOrder := []string{
		"/tmp",
		"User: alice",
		"Home: /home/alice",
		"Hostname: devbox",
		"Kernel: 6.1.0",
	}

	rest := out
	for _, want := range wantInOrder {
		idx := strings.Index(rest, want)
		if idx < 0 {
			t.Fatalf("output missing %q after previous match:\n%s", want, out)
		}
		rest = rest[idx+len(want):]
	}
}

func TestSectionNames(t *testing.T) {
	assert.Equal(t,
		[]string{"banner", "directory", "user", "listing", "system", "footer"},
		SectionNames())
}
