package hos

import (
	"os"
	"time"

	"github.com/spf13/afero"
)

// hostOS queries the running operating system.
type hostOS struct {
	fs afero.Fs
}

var _ HostOS = (*hostOS)(nil)

// New returns a HostOS backed by the running operating system.
func New() HostOS {
	return &hostOS{fs: afero.NewOsFs()}
}

// Getwd implements HostOS.Getwd.
func (h *hostOS) Getwd() (string, error) {
	return os.Getwd()
}

// LookupEnv implements HostOS.LookupEnv.
func (h *hostOS) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Environ implements HostOS.Environ.
func (h *hostOS) Environ() []string {
	return os.Environ()
}

// Hostname implements HostOS.Hostname.
func (h *hostOS) Hostname() (string, error) {
	return os.Hostname()
}

// Uname implements HostOS.Uname.
func (h *hostOS) Uname() (Utsname, error) {
	return uname()
}

// Open implements HostOS.Open.
func (h *hostOS) Open(name string) (afero.File, error) {
	return h.fs.Open(name)
}

// Now implements HostOS.Now.
func (h *hostOS) Now() time.Time {
	return time.Now()
}
