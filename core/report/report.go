// Package report renders the fixed system-information report.
package report

import (
	"fmt"
	"io"

	"github.com/neoshell/sysinfo/core/config"
	"github.com/neoshell/sysinfo/core/hos"
)

// Reporter writes the report to Out using facts gathered from OS.
type Reporter struct {
	Config *config.Configuration
	OS     hos.HostOS
	Out    io.Writer
}

// group is one block of report lines. Groups print in a fixed order with a
// blank line between consecutive groups.
type group struct {
	name   string
	render func(r *Reporter)
}

var groups = []group{
	{"banner", (*Reporter).banner},
	{"directory", (*Reporter).directory},
	{"user", (*Reporter).user},
	{"listing", (*Reporter).listing},
	{"system", (*Reporter).system},
	{"footer", (*Reporter).footer},
}

// SectionNames lists the report's groups in output order.
func SectionNames() []string {
	var names []string
	for _, g := range groups {
		names = append(names, g.name)
	}
	return names
}

// Run writes the report. Every query is best effort: an unavailable value
// prints as an empty string and the exit code is always 0.
func (r *Reporter) Run() int {
	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(r.Out)
		}
		g.render(r)
	}
	return 0
}

func (r *Reporter) banner() {
	fmt.Fprintln(r.Out, r.printer().Sprintf(bannerColor, "%s", r.Config.Banner))
}

func (r *Reporter) directory() {
	fmt.Fprintf(r.Out, "Current directory: %s\n", r.workingDir())
}

func (r *Reporter) user() {
	fmt.Fprintf(r.Out, "User: %s\n", hos.Username(r.OS))
	fmt.Fprintf(r.Out, "Home: %s\n", hos.HomeDir(r.OS))
}

func (r *Reporter) listing() {
	dir := r.workingDir()
	if dir == "" {
		dir = "."
	}

	fmt.Fprintf(r.Out, "Contents of %s:\n", dir)

	// An unreadable directory leaves the section empty rather than failing
	// the report.
	_ = r.listDirectory(dir)
}

func (r *Reporter) system() {
	host, err := r.OS.Hostname()
	if err != nil {
		host = ""
	}
	fmt.Fprintf(r.Out, "Hostname: %s\n", host)

	sys, err := r.OS.Uname()
	if err != nil {
		sys = hos.Utsname{}
	}
	fmt.Fprintf(r.Out, "Kernel: %s\n", sys.Release)
}

func (r *Reporter) footer() {
	fmt.Fprintln(r.Out, r.printer().Sprintf(bannerColor, "%s", r.Config.Footer))
}

func (r *Reporter) workingDir() string {
	wd, err := r.OS.Getwd()
	if err != nil {
		return ""
	}
	return wd
}
