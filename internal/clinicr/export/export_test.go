package export

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/generate"
)

var anchor = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

func dataset(t *testing.T) *generate.Dataset {
	t.Helper()
	ds, err := generate.Generate(generate.DefaultOptions(anchor))
	require.NoError(t, err)
	return ds
}

func TestWriteJSON(t *testing.T) {
	ds := dataset(t)
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, ds))

	var back generate.Dataset
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Len(t, back.Patients, len(ds.Patients))
	assert.Equal(t, ds.Claims, back.Claims)
	assert.Contains(t, buf.String(), `"immunizationsByPatient"`)
	assert.Contains(t, buf.String(), "\n  \"meta\"")
}

func TestWriteNDJSON(t *testing.T) {
	ds := dataset(t)
	var buf bytes.Buffer
	require.NoError(t, WriteNDJSON(&buf, ds))

	counts := map[string]int{}
	var order []string
	sc := bufio.NewScanner(&buf)
	sc.Buffer(make([]byte, 1024*1024), 1024*1024)
	for sc.Scan() {
		var rec struct {
			Entity string          `json:"entity"`
			Data   json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		require.NotEmpty(t, rec.Data)
		if counts[rec.Entity] == 0 {
			order = append(order, rec.Entity)
		}
		counts[rec.Entity]++
	}
	require.NoError(t, sc.Err())

	doses := 0
	for _, l := range ds.Immunizations {
		doses += len(l)
	}
	assert.Equal(t, len(ds.Providers), counts["provider"])
	assert.Equal(t, len(ds.Patients), counts["patient"])
	assert.Equal(t, len(ds.Claims), counts["claim"])
	assert.Equal(t, doses, counts["immunization"])
	assert.Equal(t, 1, counts["dashboardMetrics"])
	assert.Equal(t, []string{
		"provider", "patient", "appointment", "clinicalNote", "medication", "allergy", "problem",
		"indiaCompliance", "qatarCompliance", "labResult", "claim", "payment", "immunization", "dashboardMetrics",
	}, order)
}

func countPrefix(lines []string, prefix string) int {
	n := 0
	for _, l := range lines {
		if strings.HasPrefix(l, prefix) {
			n++
		}
	}
	return n
}

func TestWriteSQL_Postgres(t *testing.T) {
	ds := dataset(t)
	var buf bytes.Buffer
	require.NoError(t, WriteSQL(&buf, ds, DriverPostgres))
	out := buf.String()
	lines := strings.Split(out, "\n")

	assert.Contains(t, out, "CREATE SCHEMA clinic;")
	assert.Contains(t, out, "CREATE SCHEMA billing;")
	assert.Contains(t, out, "patient_id VARCHAR(32) NOT NULL REFERENCES clinic.patient(patient_id)")
	assert.Equal(t, len(ds.Patients), countPrefix(lines, "INSERT INTO clinic.patient "))
	assert.Equal(t, len(ds.Appointments), countPrefix(lines, "INSERT INTO clinic.appointment "))
	assert.Equal(t, len(ds.Claims), countPrefix(lines, "INSERT INTO billing.claim "))
	assert.Equal(t, len(ds.Payments), countPrefix(lines, "INSERT INTO billing.payment "))
	assert.Equal(t, 2, countPrefix(lines, "INSERT INTO clinic.compliance "))
	assert.Contains(t, out, "CREATE INDEX idx_claim_patient_date ON billing.claim(patient_id, claim_date);")
	assert.NotContains(t, out, "ENGINE=InnoDB")
}

func TestWriteSQL_MySQL(t *testing.T) {
	ds := dataset(t)
	var buf bytes.Buffer
	require.NoError(t, WriteSQL(&buf, ds, DriverMySQL))
	out := buf.String()
	lines := strings.Split(out, "\n")

	assert.NotContains(t, out, "CREATE SCHEMA")
	assert.Contains(t, out, "DROP TABLE IF EXISTS billing_payment;")
	assert.Contains(t, out, "FOREIGN KEY (patient_id) REFERENCES clinic_patient(patient_id)")
	assert.Contains(t, out, ") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;")
	assert.Equal(t, len(ds.LabResults), countPrefix(lines, "INSERT INTO clinic_lab_result "))
	assert.Less(t, strings.Index(out, "DROP TABLE IF EXISTS billing_payment;"),
		strings.Index(out, "DROP TABLE IF EXISTS clinic_patient;"))
}

func TestWriteSQL_StatementsEndLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSQL(&buf, dataset(t), DriverPostgres))
	for _, l := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(l, "INSERT INTO") {
			assert.True(t, strings.HasSuffix(l, ");"), l)
		}
	}
}

func TestWriteSQL_UnknownDriver(t *testing.T) {
	err := WriteSQL(&bytes.Buffer{}, dataset(t), Driver("oracle"))
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestParseDriver(t *testing.T) {
	d, err := ParseDriver("PostgreSQL")
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, d)
	d, err = ParseDriver("mysql")
	require.NoError(t, err)
	assert.Equal(t, DriverMySQL, d)
	_, err = ParseDriver("sqlite")
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		name   string
		driver Driver
		in     any
		want   string
	}{
		{"null", DriverPostgres, nil, "NULL"},
		{"optional empty", DriverPostgres, optional(""), "NULL"},
		{"quote", DriverPostgres, "O'Brien", "'O''Brien'"},
		{"backslash postgres", DriverPostgres, `a\b`, `'a\b'`},
		{"backslash mysql", DriverMySQL, `a\b`, `'a\\b'`},
		{"int", DriverMySQL, 42, "42"},
		{"float", DriverPostgres, 22.5, "22.5"},
		{"bool", DriverPostgres, true, "TRUE"},
		{"json", DriverPostgres, jsonValue{map[string]string{"k": "it's"}}, `'{"k":"it''s"}'`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := literal(tt.driver, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := literal(DriverPostgres, struct{}{})
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	ds := dataset(t)
	s := Summarize(ds)
	assert.Equal(t, ds.Meta.Today, s.Today)
	assert.Equal(t, Count{"patients", len(ds.Patients)}, s.Collections[1])

	total := 0
	for i, c := range s.AppointmentStatus {
		total += c.Count
		if i > 0 {
			prev := s.AppointmentStatus[i-1]
			assert.True(t, prev.Count > c.Count || (prev.Count == c.Count && prev.Name < c.Name))
		}
	}
	assert.Equal(t, len(ds.Appointments), total)

	var buf bytes.Buffer
	s.PrintSummary(&buf)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Summary:\n"))
	assert.Contains(t, out, "    patients: 100\n")
	assert.Contains(t, out, "  By claim status:\n")
}

func TestSorted_TiesByName(t *testing.T) {
	got := sorted(map[string]int{"b": 2, "a": 2, "c": 5})
	assert.Equal(t, []Count{{"c", 5}, {"a", 2}, {"b", 2}}, got)
}

func TestAppendRunLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.ndjson")
	s := Summarize(dataset(t))

	require.NoError(t, AppendRunLog(path, NewRunSummary(s, "json", "out.json", "abc")))
	require.NoError(t, AppendRunLog(path, RunSummary{Seed: 7}))
	require.NoError(t, AppendRunLog("", RunSummary{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var first RunSummary
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	_, err = uuid.Parse(first.RunID)
	assert.NoError(t, err)
	assert.Equal(t, uint64(123), first.Seed)
	assert.Equal(t, "abc", first.Head)
	assert.Equal(t, 100, first.Counts["patients"])

	var second RunSummary
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.NotEmpty(t, second.RunID)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestTables(t *testing.T) {
	pg := Tables(DriverPostgres)
	my := Tables(DriverMySQL)
	require.Len(t, my, len(pg))
	assert.Equal(t, "clinic.provider", pg[0])
	assert.Equal(t, "billing_payment", my[len(my)-1])
}
