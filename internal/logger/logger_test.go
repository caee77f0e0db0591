package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLogger_Log(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelInfo, &buf)

	tests := []struct {
		name    string
		level   Level
		message string
		fields  Fields
		err     error
		want    bool // should log
	}{
		{
			name:    "info message",
			level:   LevelInfo,
			message: "fetched page",
			fields:  Fields{"category": "chests"},
			want:    true,
		},
		{
			name:    "debug below threshold",
			level:   LevelDebug,
			message: "table skipped",
			want:    false,
		},
		{
			name:    "error with err",
			level:   LevelError,
			message: "fetch failed",
			err:     errors.New("connection refused"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()

			logger.log(tt.level, tt.message, tt.fields, tt.err)

			if logged := buf.Len() > 0; logged != tt.want {
				t.Errorf("log() logged = %v, want %v", logged, tt.want)
			}
		})
	}
}

func TestLogger_EntryFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelDebug, &buf)

	logger.Error("fetch failed", Fields{"category": "skulls"}, errors.New("timeout"))

	var entry LogEntry
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry.Level != "ERROR" {
		t.Errorf("Level = %q, want ERROR", entry.Level)
	}
	if entry.Message != "fetch failed" {
		t.Errorf("Message = %q, want 'fetch failed'", entry.Message)
	}
	if entry.Fields["category"] != "skulls" {
		t.Errorf("Fields = %v, want category skulls", entry.Fields)
	}
	if entry.Error != "timeout" {
		t.Errorf("Error = %q, want timeout", entry.Error)
	}
	if _, err := time.Parse(time.RFC3339, entry.Timestamp); err != nil {
		t.Errorf("Timestamp %q is not RFC3339: %v", entry.Timestamp, err)
	}
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  Level
		logLevel  Level
		shouldLog bool
	}{
		{"debug logs at debug", LevelDebug, LevelDebug, true},
		{"info logs at debug", LevelDebug, LevelInfo, true},
		{"debug doesn't log at info", LevelInfo, LevelDebug, false},
		{"info doesn't log at warn", LevelWarn, LevelInfo, false},
		{"error always logs", LevelDebug, LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(tt.minLevel, &buf)

			logger.log(tt.logLevel, "test", nil, nil)

			if logged := buf.Len() > 0; logged != tt.shouldLog {
				t.Errorf("logged = %v, want %v", logged, tt.shouldLog)
			}
			if logger.Enabled(tt.logLevel) != tt.shouldLog {
				t.Errorf("Enabled(%s) = %v, want %v", tt.logLevel, !tt.shouldLog, tt.shouldLog)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" WARN ", LevelWarn, false},
		{"Error", LevelError, false},
		{"verbose", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	if Default() == nil || Default().Enabled(LevelInfo) || !Default().Enabled(LevelWarn) {
		t.Error("Default() should be a WARN-level logger")
	}
	if DefaultMetrics() == nil {
		t.Error("DefaultMetrics() returned nil")
	}
}

func TestMetrics_Counter(t *testing.T) {
	m := NewMetrics()

	m.IncrCounter(MetricRowsExtracted)
	m.IncrCounter(MetricRowsExtracted)
	m.AddCounter(MetricRowsExtracted, 3)

	if got := m.Counter(MetricRowsExtracted); got != 5 {
		t.Errorf("Counter = %v, want 5", got)
	}

	counters := m.GetSnapshot()["counters"].(map[string]int64)
	if counters[MetricRowsExtracted] != 5 {
		t.Errorf("snapshot counter = %v, want 5", counters[MetricRowsExtracted])
	}
}

func TestMetrics_Gauge(t *testing.T) {
	m := NewMetrics()

	m.SetGauge(GaugeWorkbookRows, 12)
	m.SetGauge(GaugeWorkbookRows, 40)

	gauges := m.GetSnapshot()["gauges"].(map[string]float64)
	if gauges[GaugeWorkbookRows] != 40 {
		t.Errorf("Gauge = %v, want 40", gauges[GaugeWorkbookRows])
	}
}

func TestMetrics_Timing(t *testing.T) {
	m := NewMetrics()

	m.RecordTiming(MetricFetch, 100*time.Millisecond)
	m.RecordTiming(MetricFetch, 200*time.Millisecond)
	m.RecordTiming(MetricFetch, 150*time.Millisecond)

	timings := m.GetSnapshot()["timings"].(map[string]map[string]interface{})
	fetch := timings[MetricFetch]

	if fetch["count"].(int) != 3 {
		t.Errorf("Timing count = %v, want 3", fetch["count"])
	}
	if fetch["min"].(string) != "100ms" {
		t.Errorf("Min timing = %v, want 100ms", fetch["min"])
	}
	if fetch["max"].(string) != "200ms" {
		t.Errorf("Max timing = %v, want 200ms", fetch["max"])
	}
	if fetch["average"].(string) != "150ms" {
		t.Errorf("Average timing = %v, want 150ms", fetch["average"])
	}
}

func TestMetrics_WriteSummary(t *testing.T) {
	m := NewMetrics()
	m.AddCounter(MetricSheetsWritten, 4)
	m.AddCounter(MetricPagesFetched, 3)
	m.SetGauge(GaugeWorkbookRows, 7)
	m.RecordTiming(MetricFetch, time.Second)

	var buf bytes.Buffer
	if err := m.WriteSummary(&buf); err != nil {
		t.Fatalf("WriteSummary() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("WriteSummary() wrote %d lines, want 4: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], MetricPagesFetched) || !strings.HasSuffix(lines[0], " 3") {
		t.Errorf("first line = %q, want sorted pages.fetched 3", lines[0])
	}
	if !strings.HasPrefix(lines[2], GaugeWorkbookRows) || !strings.HasSuffix(lines[2], " 7") {
		t.Errorf("gauge line = %q, want workbook.rows 7", lines[2])
	}
	if !strings.HasPrefix(lines[3], MetricFetch) {
		t.Errorf("last line = %q, want fetch timing", lines[3])
	}
}
