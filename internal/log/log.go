// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"golang.org/x/term"

	"github.com/staranto/matx/internal/config"
)

// InitLogger sets up Apex with a custom handler writing to stderr and a log
// level from the MATX_LOG env variable or the "log" config key.
func InitLogger() {
	level := os.Getenv("MATX_LOG")
	if level == "" {
		level, _ = config.GetString("log", "ERROR")
	}
	color, _ := config.GetBool("color", term.IsTerminal(int(os.Stderr.Fd())))
	log.SetHandler(&CustomHandler{
		Writer: os.Stderr,
		Color:  color,
	})
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = log.ErrorLevel
	}
	log.SetLevel(lvl)
}

var levelColors = map[log.Level]string{
	log.DebugLevel: "8",
	log.InfoLevel:  "12",
	log.WarnLevel:  "11",
	log.ErrorLevel: "9",
	log.FatalLevel: "9",
}

// CustomHandler formats log messages as a single line.
type CustomHandler struct {
	Writer io.Writer
	Color  bool
	// Now is used for the timestamp when set.
	Now func() time.Time
}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	w := h.Writer
	if w == nil {
		w = os.Stderr
	}

	timestamp := now().Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())[:1]
	if h.Color {
		level = lipgloss.NewStyle().
			Foreground(lipgloss.Color(levelColors[e.Level])).
			Render(level)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s", timestamp, level, e.Message)

	names := e.Fields.Names()
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, " %s=%v", name, e.Fields.Get(name))
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}
