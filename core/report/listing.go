package report

import (
	"fmt"
	"io/ioutil"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
)

// listDirectory prints a long-format listing of dir, hidden entries
// included, truncated to the configured limit.
func (r *Reporter) listDirectory(dir string) error {
	fd, err := r.OS.Open(dir)
	if err != nil {
		return err
	}
	defer fd.Close()

	entries, err := fd.Readdir(-1)
	if err != nil {
		return err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	var totalSize int64
	for _, entry := range entries {
		totalSize += entry.Size()
	}

	if limit := r.Config.ListingLimit; limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	printer := r.printer()
	uid2name := r.uidResolver()
	currentYear := r.OS.Now().Year()

	fmt.Fprintf(r.Out, "total %d\n", totalSize)
	tw := tabwriter.NewWriter(r.Out, 0, 0, 1, ' ', 0)
	for _, f := range entries {
		// Number of hard links is approximated: directories count self and
		// parent.
		hardLinks := 1
		if f.IsDir() {
			hardLinks = 2
		}

		// Include time instead of year for recent entries.
		modTime := f.ModTime().Format("Jan _2 2006")
		if f.ModTime().Year() >= currentYear {
			modTime = f.ModTime().Format("Jan _2 15:04")
		}

		uid, gid := fileOwner(f)
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%d\t%s\t%s\n",
			f.Mode().String(),
			hardLinks,
			uid2name(uid),
			gid2name(gid),
			f.Size(),
			modTime,
			printer.Sprintf(dircolor(f), "%s", f.Name()))
	}
	return tw.Flush()
}

// uidResolver maps owner IDs to names using the host's passwd database.
// Unresolvable IDs print numerically.
func (r *Reporter) uidResolver() func(int) string {
	mapping := map[int]string{
		0: "root", // seed in case the passwd database is unreadable.
	}

	resolver := func(uid int) string {
		if resolved, ok := mapping[uid]; ok {
			return resolved
		}
		return strconv.Itoa(uid)
	}

	fd, err := r.OS.Open("/etc/passwd")
	if err != nil {
		return resolver
	}
	defer fd.Close()

	passwdBytes, err := ioutil.ReadAll(fd)
	if err != nil {
		return resolver
	}

	for _, line := range strings.Split(string(passwdBytes), "\n") {
		entry := strings.Split(line, ":")
		if len(entry) < 3 {
			continue
		}
		// name:X:uid:
		if uid, err := strconv.Atoi(entry[2]); err == nil {
			mapping[uid] = entry[0]
		}
	}

	return resolver
}

func gid2name(gid int) string {
	switch gid {
	case 0:
		return "root"
	default:
		return strconv.Itoa(gid)
	}
}
