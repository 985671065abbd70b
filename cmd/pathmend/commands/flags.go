package commands

import (
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*modeFlag)(nil)
	_ pflag.Value = (*timeFlag)(nil)
)

// modeFlag is a pflag.Value parsing octal file modes, including the
// setuid/setgid/sticky digit, into fs.FileMode bits.
type modeFlag struct {
	mode *fs.FileMode
}

func newModeFlag() *modeFlag { return &modeFlag{} }

func (m *modeFlag) String() string {
	if m.mode == nil {
		return ""
	}
	v := uint32(*m.mode & fs.ModePerm)
	if *m.mode&fs.ModeSetuid != 0 {
		v |= 0o4000
	}
	if *m.mode&fs.ModeSetgid != 0 {
		v |= 0o2000
	}
	if *m.mode&fs.ModeSticky != 0 {
		v |= 0o1000
	}
	return fmt.Sprintf("%04o", v)
}

func (m *modeFlag) Set(s string) error {
	parsed, err := strconv.ParseUint(s, 8, 32)
	if err != nil || parsed&^uint64(0o7777) != 0 {
		return fmt.Errorf("invalid octal mode %q", s)
	}

	mode := fs.FileMode(parsed & 0o777)
	if parsed&0o4000 != 0 {
		mode |= fs.ModeSetuid
	}
	if parsed&0o2000 != 0 {
		mode |= fs.ModeSetgid
	}
	if parsed&0o1000 != 0 {
		mode |= fs.ModeSticky
	}
	m.mode = &mode
	return nil
}

func (m *modeFlag) Type() string { return "octal" }

// Value returns the parsed mode, nil when the flag was not set.
func (m *modeFlag) Value() *fs.FileMode { return m.mode }

// timeFlag is a pflag.Value accepting RFC3339 timestamps or Unix seconds.
type timeFlag struct {
	t *time.Time
}

func newTimeFlag() *timeFlag { return &timeFlag{} }

func (f *timeFlag) String() string {
	if f.t == nil {
		return ""
	}
	return f.t.Format(time.RFC3339)
}

func (f *timeFlag) Set(s string) error {
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		t := time.Unix(secs, 0)
		f.t = &t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid time %q: use RFC3339 or Unix seconds", s)
	}
	f.t = &t
	return nil
}

func (f *timeFlag) Type() string { return "time" }

// Value returns the parsed time, nil when the flag was not set.
func (f *timeFlag) Value() *time.Time { return f.t }
