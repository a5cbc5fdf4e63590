package config

import (
	"fmt"

	"github.com/alexanderramin/countdown/internal/countdown"
	"github.com/spf13/pflag"
)

const (
	FlagMinute    = "minute"
	FlagRefresh   = "refresh"
	FlagPlain     = "plain"
	FlagNoHistory = "no-history"
	FlagDB        = "db"
	FlagLogFile   = "log-file"
	FlagNote      = "note"
)

// RegisterFlags adds the countdown flags to fs. Values only take effect
// through ApplyFlags, so unset flags never mask file or env settings.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.IntP(FlagMinute, "m", 0, "Target minute of the hour to count down to (0-59)")
	fs.Duration(FlagRefresh, DefaultRefresh, "How often the display refreshes")
	fs.Bool(FlagPlain, false, "Print a plain refreshing line instead of the full-screen view")
	fs.Bool(FlagNoHistory, false, "Do not record countdown cycles")
	fs.String(FlagDB, "", "Path to the history database")
	fs.String(FlagLogFile, "", "Append structured event logs to this file")
	fs.String(FlagNote, "", "Label stored with each recorded cycle")
}

// ApplyFlags copies every flag the user set on fs into c, then validates.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	if fs.Changed(FlagMinute) {
		v, err := fs.GetInt(FlagMinute)
		if err != nil {
			return fmt.Errorf("reading --%s: %w", FlagMinute, err)
		}
		m, err := countdown.NewTargetMinute(v)
		if err != nil {
			return fmt.Errorf("--%s: %w", FlagMinute, err)
		}
		c.SetTarget(m)
	}
	if fs.Changed(FlagRefresh) {
		v, err := fs.GetDuration(FlagRefresh)
		if err != nil {
			return fmt.Errorf("reading --%s: %w", FlagRefresh, err)
		}
		c.Refresh = v
	}
	if fs.Changed(FlagPlain) {
		v, err := fs.GetBool(FlagPlain)
		if err != nil {
			return fmt.Errorf("reading --%s: %w", FlagPlain, err)
		}
		c.Plain = v
	}
	if fs.Changed(FlagNoHistory) {
		v, err := fs.GetBool(FlagNoHistory)
		if err != nil {
			return fmt.Errorf("reading --%s: %w", FlagNoHistory, err)
		}
		c.History = !v
	}
	if fs.Changed(FlagDB) {
		v, err := fs.GetString(FlagDB)
		if err != nil {
			return fmt.Errorf("reading --%s: %w", FlagDB, err)
		}
		c.DBPath = v
	}
	if fs.Changed(FlagLogFile) {
		v, err := fs.GetString(FlagLogFile)
		if err != nil {
			return fmt.Errorf("reading --%s: %w", FlagLogFile, err)
		}
		c.LogFile = v
	}
	if fs.Changed(FlagNote) {
		v, err := fs.GetString(FlagNote)
		if err != nil {
			return fmt.Errorf("reading --%s: %w", FlagNote, err)
		}
		c.Note = v
	}
	return c.Validate()
}
