package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neoshell/sysinfo/core/config"
	"github.com/neoshell/sysinfo/core/hos/hostest"
)

func listingLines(t *testing.T, fake *hostest.FakeOS, cfg *config.Configuration, dir string) []string {
	t.Helper()

	out := &bytes.Buffer{}
	reporter := &Reporter{Config: cfg, OS: fake, Out: out}
	if err := reporter.listDirectory(dir); err != nil {
		t.Fatal(err)
	}

	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func TestListDirectoryLimit(t *testing.T) {
	fake := hostest.NewFakeOS()
	for i := 0; i < 15; i++ {
		fake.MustWriteFile(fmt.Sprintf("/data/file%02d", i), 1, 0644)
	}

	lines := listingLines(t, fake, config.Default(), "/data")

	// One header plus at most ListingLimit entries; the total still covers
	// every entry.
	assert.Equal(t, "total 15", lines[0])
	assert.Len(t, lines[1:], 10)
	assert.Contains(t, lines[1], "file00")
	assert.Contains(t, lines[10], "file09")
}

func TestListDirectoryUnlimited(t *testing.T) {
	fake := hostest.NewFakeOS()
	for i := 0; i < 15; i++ {
		fake.MustWriteFile(fmt.Sprintf("/data/file%02d", i), 1, 0644)
	}

	cfg := config.Default()
	cfg.ListingLimit = 0

	lines := listingLines(t, fake, cfg, "/data")
	assert.Len(t, lines[1:], 15)
}

func TestListDirectoryIncludesHidden(t *testing.T) {
	fake := hostest.NewFakeOS()
	fake.MustWriteFile("/data/.hidden", 1, 0600)
	fake.MustWriteFile("/data/visible", 1, 0644)

	lines := listingLines(t, fake, config.Default(), "/data")

	assert.Len(t, lines[1:], 2)
	assert.Contains(t, lines[1], ".hidden")
	assert.Contains(t, lines[2], "visible")
}

func TestListDirectoryMissing(t *testing.T) {
	fake := hostest.NewFakeOS()

	out := &bytes.Buffer{}
	reporter := &Reporter{Config: config.Default(), OS: fake, Out: out}

	assert.Error(t, reporter.listDirectory("/nope"))
	assert.Empty(t, out.String())
}
