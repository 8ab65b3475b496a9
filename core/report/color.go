package report

import (
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/neoshell/sysinfo/core/config"
)

var (
	colorBoldBlue  = color.New(color.FgBlue, color.Bold)
	colorBoldGreen = color.New(color.FgGreen, color.Bold)
	colorBoldCyan  = color.New(color.FgCyan, color.Bold)
	colorBoldRed   = color.New(color.FgRed, color.Bold)
	colorHiWhite   = color.New(color.FgHiWhite)
)

var bannerColor = colorBoldCyan

// colorPrinter colorizes strings when the configured mode allows it.
type colorPrinter struct {
	enabled bool
}

func (r *Reporter) printer() colorPrinter {
	return colorPrinter{enabled: r.shouldColor()}
}

func (r *Reporter) shouldColor() bool {
	switch r.Config.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		f, ok := r.Out.(*os.File)
		return ok && isatty.IsTerminal(f.Fd())
	}
}

func (c colorPrinter) Sprintf(col *color.Color, format string, a ...interface{}) string {
	if c.enabled {
		return col.Sprintf(format, a...)
	}
	return fmt.Sprintf(format, a...)
}

var archiveExts = map[string]bool{
	".tar": true,
	".tgz": true,
	".zip": true,
	".gz":  true,
	".bz2": true,
	".tbz": true,
	".deb": true,
	".rpm": true,
	".jar": true,
	".rar": true,
}

// Color listing comes from: https://askubuntu.com/a/884513
var dircolors = []struct {
	color *color.Color
	test  func(fileInfo os.FileInfo) bool
}{
	// Directories are bold blue.
	{color: colorBoldBlue, test: os.FileInfo.IsDir},
	// Symlinks are bold cyan.
	{color: colorBoldCyan, test: func(fi os.FileInfo) bool {
		return fi.Mode()&fs.ModeSymlink > 0
	}},
	// Executables are bold green.
	{color: colorBoldGreen, test: func(fi os.FileInfo) bool {
		return fi.Mode().Perm()&0111 > 0
	}},
	// Archives are bold red.
	{color: colorBoldRed, test: func(fi os.FileInfo) bool {
		return archiveExts[path.Ext(fi.Name())]
	}},
}

func dircolor(fileInfo os.FileInfo) *color.Color {
	for _, dc := range dircolors {
		if dc.test(fileInfo) {
			return dc.color
		}
	}

	// Anything else defaults to white.
	return colorHiWhite
}
