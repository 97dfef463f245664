package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LogFile owns the destination of structured log output.
type LogFile struct {
	Path   string // full path to the log file, empty if not file-backed
	file   *os.File
	writer io.Writer
}

// OpenLogFile resolves the log destination and opens it if file-backed.
//
//   - "-": os.Stderr
//   - "none": io.Discard
//   - "": auto-generated filename under dir
//   - anything else: a path, absolute or relative to dir
func OpenLogFile(output, dir string) (*LogFile, error) {
	lf := &LogFile{}

	switch strings.ToLower(output) {
	case "-":
		lf.writer = os.Stderr
		return lf, nil
	case "none":
		lf.writer = io.Discard
		return lf, nil
	case "":
		lf.Path = filepath.Join(dir, GenerateLogFilename(time.Now().UTC()))
	default:
		if filepath.IsAbs(output) {
			lf.Path = output
		} else {
			lf.Path = filepath.Join(dir, output)
		}
	}

	if err := os.MkdirAll(filepath.Dir(lf.Path), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory %q: %w", filepath.Dir(lf.Path), err)
	}
	f, err := os.OpenFile(lf.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file %q: %w", lf.Path, err)
	}
	lf.file = f
	lf.writer = f
	return lf, nil
}

// Writer returns the io.Writer for log output.
func (lf *LogFile) Writer() io.Writer {
	return lf.writer
}

// Close closes the log file if one was opened.
func (lf *LogFile) Close() error {
	if lf.file != nil {
		return lf.file.Close()
	}
	return nil
}

// GenerateLogFilename returns csops-YYYYMMDD-HHMMSS-sss.log (UTC,
// sss = milliseconds).
func GenerateLogFilename(t time.Time) string {
	return fmt.Sprintf("csops-%s-%03d.log",
		t.Format("20060102-150405"),
		t.Nanosecond()/1_000_000)
}

// CleanupOldLogFiles removes "csops-*.log" files older than retentionDays
// from dir. A retention of zero or less disables cleanup.
func CleanupOldLogFiles(dir string, retentionDays int) error {
	if retentionDays <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading log directory %q: %w", dir, err)
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, "csops-") || !strings.HasSuffix(name, ".log") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			// Removal failures are not worth failing the command over.
			_ = os.Remove(filepath.Join(dir, name))
		}
	}
	return nil
}
