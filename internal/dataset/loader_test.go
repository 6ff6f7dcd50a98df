package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Timestamp,Source IP Address,Protocol,Traffic Type,Attack Type
2023-05-30 06:33:58,103.216.15.12,ICMP,Data,Malware
2023-05-30 07:10:01,78.199.217.198,UDP,Data,DDoS
2023-05-31 11:02:15,63.79.210.48,UDP,HTTP,Intrusion
2023-06-01 01:45:00,163.42.196.10,TCP,DNS,Malware
`

func TestLoad(t *testing.T) {
	tbl, err := Load(strings.NewReader(sampleCSV), Options{})
	require.NoError(t, err)
	require.Equal(t, 4, tbl.Len())

	assert.Equal(t, []string{"ICMP", "UDP", "UDP", "TCP"}, tbl.Protocols)
	assert.Equal(t, []string{"Data", "Data", "HTTP", "DNS"}, tbl.TrafficTypes)
	assert.Equal(t, time.Date(2023, 5, 30, 6, 33, 58, 0, time.UTC), tbl.Timestamps[0])
}

func TestLoad_HeaderOnly(t *testing.T) {
	tbl, err := Load(strings.NewReader("Timestamp,Protocol,Traffic Type\n"), Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
}

func TestLoad_EmptyInput(t *testing.T) {
	_, err := Load(strings.NewReader(""), Options{})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestLoad_MissingColumns(t *testing.T) {
	_, err := Load(strings.NewReader("Timestamp,Source IP Address\n2023-05-30,1.1.1.1\n"), Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumn)
	// 两个缺失的列要一起报告。
	assert.Contains(t, err.Error(), `"Protocol"`)
	assert.Contains(t, err.Error(), `"Traffic Type"`)
}

func TestLoad_MalformedTimestamp(t *testing.T) {
	in := "Timestamp,Protocol,Traffic Type\n2023-05-30 06:33:58,TCP,Data\nnot-a-date,UDP,HTTP\n"
	_, err := Load(strings.NewReader(in), Options{})
	require.Error(t, err)

	var tsErr *TimestampError
	require.True(t, errors.As(err, &tsErr))
	assert.Equal(t, 3, tsErr.Line)
	assert.Equal(t, "not-a-date", tsErr.Value)
	assert.ErrorIs(t, err, ErrInvalidTimestamp)
}

func TestLoad_BlankTimestamp(t *testing.T) {
	in := "Timestamp,Protocol,Traffic Type\n ,TCP,Data\n"
	_, err := Load(strings.NewReader(in), Options{})
	assert.ErrorIs(t, err, ErrBlankTimestamp)
}

func TestLoad_FieldCountMismatch(t *testing.T) {
	in := "Timestamp,Protocol,Traffic Type\n2023-05-30,TCP\n"
	_, err := Load(strings.NewReader(in), Options{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingColumn)
}

func TestLoad_CustomColumnsAndBOM(t *testing.T) {
	in := "\ufeffts ,proto,kind\n30/05/2023 06:33,tcp,Data\n"
	tbl, err := Load(strings.NewReader(in), Options{
		Columns:            Columns{Timestamp: "ts", Protocol: "proto", TrafficType: "kind"},
		TimestampLayout:    "02/01/2006 15:04",
		NormalizeProtocols: true,
	})
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, "TCP", tbl.Protocols[0])
	assert.Equal(t, time.Date(2023, 5, 30, 6, 33, 0, 0, time.UTC), tbl.Timestamps[0])
}

func TestLoadFile_NotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.csv"), Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	tbl, err := LoadFile(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, 4, tbl.Len())
}

func TestTable_EventsRoundTrip(t *testing.T) {
	tbl, err := Load(strings.NewReader(sampleCSV), Options{})
	require.NoError(t, err)

	back := FromEvents(tbl.Events())
	assert.Equal(t, tbl, back)
}
