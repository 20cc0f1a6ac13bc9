package export

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vaibhaw-/ClinicR/internal/clinicr/generate"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/logger"
)

// Driver names the SQL dialect of a dump.
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverMySQL    Driver = "mysql"
)

var ErrUnknownDriver = errors.New("unknown sql driver")

func ParseDriver(s string) (Driver, error) {
	switch Driver(strings.ToLower(s)) {
	case DriverPostgres, "postgresql", "pg":
		return DriverPostgres, nil
	case DriverMySQL:
		return DriverMySQL, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDriver, s)
}

type column struct {
	name     string
	pg, my   string
	nullable bool
	ref      string // "schema.table(column)"
}

type table struct {
	schema, name string
	columns      []column
	rows         func(ds *generate.Dataset) [][]any
}

// jsonValue marks a value stored as a serialized JSON document.
type jsonValue struct{ v any }

func id(name string) column { return column{name: name, pg: "VARCHAR(32)", my: "VARCHAR(32)"} }

func str(name string, n int) column {
	t := fmt.Sprintf("VARCHAR(%d)", n)
	return column{name: name, pg: t, my: t}
}

func text(name string) column     { return column{name: name, pg: "TEXT", my: "TEXT"} }
func date(name string) column     { return column{name: name, pg: "DATE", my: "DATE"} }
func integer(name string) column  { return column{name: name, pg: "INT", my: "INT"} }
func document(name string) column { return column{name: name, pg: "JSONB", my: "JSON"} }

func (c column) null() column {
	c.nullable = true
	return c
}

func (c column) references(ref string) column {
	c.ref = ref
	return c
}

// optional maps an empty string to SQL NULL.
func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// schemaTables lists the dump's tables in foreign-key order. Clinical
// notes carry no foreign key to appointments: in loose linkage mode the
// referenced appointment may not exist.
var schemaTables = []table{
	{
		schema: "clinic", name: "provider",
		columns: []column{
			id("provider_id"), str("name", 100), str("specialty", 50), str("qualification", 50),
			str("license_number", 16), str("email", 255), str("phone", 32), text("photo_url").null(),
			document("schedule"),
		},
		rows: func(ds *generate.Dataset) [][]any {
			out := make([][]any, 0, len(ds.Providers))
			for _, p := range ds.Providers {
				out = append(out, []any{p.ID, p.Name, p.Specialty, p.Qualification,
					p.LicenseNumber, p.Email, p.Phone, optional(p.PhotoURL), jsonValue{p.Schedule}})
			}
			return out
		},
	},
	{
		schema: "clinic", name: "patient",
		columns: []column{
			id("patient_id"), str("first_name", 100), str("last_name", 100), date("dob"),
			str("gender", 10), str("email", 255), str("phone", 32),
			text("street"), str("city", 100), str("state", 100), str("postal_code", 10), str("country", 50),
			str("emergency_name", 200), str("emergency_relationship", 20), str("emergency_phone", 32),
			str("insurance_provider", 100), str("policy_number", 10), str("group_number", 6).null(),
			date("insurance_expiry"), text("photo_url").null(), str("national_id", 16).null(),
			str("blood_type", 3).null(), str("status", 10), date("registration_date"), date("last_visit").null(),
		},
		rows: func(ds *generate.Dataset) [][]any {
			out := make([][]any, 0, len(ds.Patients))
			for _, p := range ds.Patients {
				out = append(out, []any{p.ID, p.FirstName, p.LastName, p.DateOfBirth,
					string(p.Gender), p.Email, p.Phone,
					p.Address.Street, p.Address.City, p.Address.State, p.Address.PostalCode, string(p.Address.Country),
					p.EmergencyContact.Name, p.EmergencyContact.Relationship, p.EmergencyContact.Phone,
					p.Insurance.Provider, p.Insurance.PolicyNumber, optional(p.Insurance.GroupNumber),
					p.Insurance.ExpiryDate, optional(p.PhotoURL), optional(p.NationalID),
					optional(p.BloodType), string(p.Status), p.RegistrationDate, optional(p.LastVisit)})
			}
			return out
		},
	},
	{
		schema: "clinic", name: "appointment",
		columns: []column{
			id("appointment_id"),
			id("patient_id").references("clinic.patient(patient_id)"), str("patient_name", 200),
			id("provider_id").references("clinic.provider(provider_id)"), str("provider_name", 200),
			date("visit_date"), str("start_time", 5), integer("duration_minutes"),
			str("visit_type", 20), str("status", 20), text("reason"), text("notes").null(),
		},
		rows: func(ds *generate.Dataset) [][]any {
			out := make([][]any, 0, len(ds.Appointments))
			for _, a := range ds.Appointments {
				out = append(out, []any{a.ID, a.PatientID, a.PatientName, a.ProviderID, a.ProviderName,
					a.Date, a.Time, a.Duration, string(a.Type), string(a.Status), a.Reason, optional(a.Notes)})
			}
			return out
		},
	},
	{
		schema: "clinic", name: "clinical_note",
		columns: []column{
			id("note_id"), id("patient_id").references("clinic.patient(patient_id)"), id("appointment_id"),
			id("provider_id").references("clinic.provider(provider_id)"), str("provider_name", 200),
			date("note_date"), str("note_type", 20), text("subjective"), text("objective"),
			text("assessment"), text("care_plan"), document("vital_signs").null(), document("diagnoses"),
		},
		rows: func(ds *generate.Dataset) [][]any {
			out := make([][]any, 0, len(ds.ClinicalNotes))
			for _, n := range ds.ClinicalNotes {
				var vitals any
				if n.VitalSigns != nil {
					vitals = jsonValue{n.VitalSigns}
				}
				out = append(out, []any{n.ID, n.PatientID, n.AppointmentID, n.ProviderID, n.ProviderName,
					n.Date, string(n.Type), n.Subjective, n.Objective, n.Assessment, n.Plan,
					vitals, jsonValue{n.Diagnoses}})
			}
			return out
		},
	},
	{
		schema: "clinic", name: "medication",
		columns: []column{
			id("medication_id"), str("name", 100), str("dosage", 50), str("frequency", 50), str("route", 20),
			date("start_date"), date("end_date").null(), str("prescribed_by", 200), str("status", 20),
			text("instructions").null(),
		},
		rows: func(ds *generate.Dataset) [][]any {
			out := make([][]any, 0, len(ds.Medications))
			for _, m := range ds.Medications {
				out = append(out, []any{m.ID, m.Name, m.Dosage, m.Frequency, m.Route,
					m.StartDate, optional(m.EndDate), m.PrescribedBy, string(m.Status), optional(m.Instructions)})
			}
			return out
		},
	},
	{
		schema: "clinic", name: "allergy",
		columns: []column{
			id("allergy_id"), str("allergen", 100), str("reaction", 100), str("severity", 10), date("onset_date").null(),
		},
		rows: func(ds *generate.Dataset) [][]any {
			out := make([][]any, 0, len(ds.Allergies))
			for _, a := range ds.Allergies {
				out = append(out, []any{a.ID, a.Allergen, a.Reaction, string(a.Severity), optional(a.OnsetDate)})
			}
			return out
		},
	},
	{
		schema: "clinic", name: "problem",
		columns: []column{
			id("problem_id"), text("description"), str("icd_code", 10).null(), str("status", 10),
			date("onset_date"), date("resolved_date").null(), text("notes").null(),
		},
		rows: func(ds *generate.Dataset) [][]any {
			out := make([][]any, 0, len(ds.Problems))
			for _, p := range ds.Problems {
				out = append(out, []any{p.ID, p.Description, optional(p.ICDCode), string(p.Status),
					p.OnsetDate, optional(p.ResolvedDate), optional(p.Notes)})
			}
			return out
		},
	},
	{
		schema: "clinic", name: "compliance",
		columns: []column{str("jurisdiction", 16), document("document")},
		rows: func(ds *generate.Dataset) [][]any {
			return [][]any{
				{"India", jsonValue{ds.IndiaCompliance}},
				{"Qatar", jsonValue{ds.QatarCompliance}},
			}
		},
	},
	{
		schema: "clinic", name: "lab_result",
		columns: []column{
			id("lab_result_id"), id("patient_id").references("clinic.patient(patient_id)"),
			str("test_name", 100), str("test_code", 16), date("order_date"), date("result_date").null(),
			str("status", 20), document("results"), str("performed_by", 200).null(), text("notes").null(),
		},
		rows: func(ds *generate.Dataset) [][]any {
			out := make([][]any, 0, len(ds.LabResults))
			for _, l := range ds.LabResults {
				out = append(out, []any{l.ID, l.PatientID, l.TestName, l.TestCode, l.OrderDate,
					optional(l.ResultDate), string(l.Status), jsonValue{l.Results},
					optional(l.PerformedBy), optional(l.Notes)})
			}
			return out
		},
	},
	{
		schema: "clinic", name: "immunization",
		columns: []column{
			id("immunization_id"), id("patient_id").references("clinic.patient(patient_id)"),
			str("vaccine_name", 100), date("administered_date"), integer("dose_number"),
			str("administered_by", 200), str("lot_number", 9).null(), date("expiry_date").null(),
			str("site", 50).null(), str("route", 50).null(),
		},
		rows: func(ds *generate.Dataset) [][]any {
			var out [][]any
			for _, pid := range patientKeys(ds) {
				for _, im := range ds.Immunizations[pid] {
					out = append(out, []any{im.ID, pid, im.VaccineName, im.Date, im.DoseNumber,
						im.AdministeredBy, optional(im.LotNumber), optional(im.ExpiryDate),
						optional(im.Site), optional(im.Route)})
				}
			}
			return out
		},
	},
	{
		schema: "billing", name: "claim",
		columns: []column{
			id("claim_id"), id("patient_id").references("clinic.patient(patient_id)"), str("patient_name", 200),
			id("appointment_id").references("clinic.appointment(appointment_id)"), date("claim_date"),
			integer("total_amount"), integer("insurance_amount"), integer("patient_amount"),
			str("status", 20), date("submitted_date").null(), date("paid_date").null(),
			str("insurance_provider", 100), str("claim_number", 12).null(),
		},
		rows: func(ds *generate.Dataset) [][]any {
			out := make([][]any, 0, len(ds.Claims))
			for _, c := range ds.Claims {
				out = append(out, []any{c.ID, c.PatientID, c.PatientName, c.AppointmentID, c.Date,
					c.TotalAmount, c.InsuranceAmount, c.PatientAmount, string(c.Status),
					optional(c.SubmittedDate), optional(c.PaidDate), c.InsuranceProvider, optional(c.ClaimNumber)})
			}
			return out
		},
	},
	{
		schema: "billing", name: "payment",
		columns: []column{
			id("payment_id"), id("claim_id").null().references("billing.claim(claim_id)"),
			id("patient_id").references("clinic.patient(patient_id)"), integer("amount"),
			str("method", 20), date("payment_date"), str("status", 20), str("reference", 13).null(),
		},
		rows: func(ds *generate.Dataset) [][]any {
			out := make([][]any, 0, len(ds.Payments))
			for _, p := range ds.Payments {
				out = append(out, []any{p.ID, optional(p.ClaimID), p.PatientID, p.Amount,
					string(p.Method), p.Date, string(p.Status), optional(p.Reference)})
			}
			return out
		},
	},
}

var schemaIndexes = []struct{ name, table, columns string }{
	{"idx_patient_email", "clinic.patient", "email"},
	{"idx_appointment_patient_date", "clinic.appointment", "patient_id, visit_date"},
	{"idx_appointment_provider_date", "clinic.appointment", "provider_id, visit_date"},
	{"idx_note_patient", "clinic.clinical_note", "patient_id"},
	{"idx_lab_patient_order", "clinic.lab_result", "patient_id, order_date"},
	{"idx_immunization_patient", "clinic.immunization", "patient_id"},
	{"idx_claim_patient_date", "billing.claim", "patient_id, claim_date"},
	{"idx_payment_claim", "billing.payment", "claim_id"},
}

// qualify maps a logical schema.table name to the driver's naming: real
// schemas on PostgreSQL, prefixed tables in a single MySQL database.
func qualify(d Driver, name string) string {
	if d == DriverMySQL {
		return strings.Replace(name, ".", "_", 1)
	}
	return name
}

// Tables returns the dump's table names for d in foreign-key order.
func Tables(d Driver) []string {
	out := make([]string, len(schemaTables))
	for i, t := range schemaTables {
		out[i] = qualify(d, t.schema+"."+t.name)
	}
	return out
}

// sqlEscape escapes a string for use inside a single-quoted SQL literal.
// MySQL also treats backslash as an escape character.
func sqlEscape(d Driver, s string) string {
	if d == DriverMySQL {
		s = strings.ReplaceAll(s, `\`, `\\`)
	}
	return strings.ReplaceAll(s, "'", "''")
}

func literal(d Driver, v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "NULL", nil
	case string:
		return "'" + sqlEscape(d, t) + "'", nil
	case int:
		return strconv.Itoa(t), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		if t {
			return "TRUE", nil
		}
		return "FALSE", nil
	case jsonValue:
		b, err := json.Marshal(t.v)
		if err != nil {
			return "", err
		}
		return "'" + sqlEscape(d, string(b)) + "'", nil
	}
	return "", fmt.Errorf("unsupported sql value %T", v)
}

// WriteSQL writes a dump that recreates the dataset: schema DDL, one INSERT
// per row in foreign-key order, then indexes. Every statement ends with a
// semicolon at the end of a line.
func WriteSQL(w io.Writer, ds *generate.Dataset, driver Driver) error {
	if driver != DriverPostgres && driver != DriverMySQL {
		return fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
	log := logger.L()
	bw := bufio.NewWriter(w)

	if driver == DriverPostgres {
		fmt.Fprintf(bw, "-- Generated SQL for PostgreSQL (seed %d, anchor %s)\n", ds.Meta.Seed, ds.Meta.Today)
		fmt.Fprintf(bw, "-- Import with: psql -U <user> -d <database> -f <file>\n\n")
	} else {
		fmt.Fprintf(bw, "-- Generated SQL for MySQL (seed %d, anchor %s)\n", ds.Meta.Seed, ds.Meta.Today)
		fmt.Fprintf(bw, "-- Import with: mysql -u <user> -p <database> < <file>\n\n")
	}

	writeDDL(bw, driver)

	total := 0
	for _, t := range schemaTables {
		n, err := writeRows(bw, driver, t, ds)
		if err != nil {
			return err
		}
		total += n
		log.Debugw("export.sql", "table", t.schema+"."+t.name, "rows", n)
	}

	writeIndexes(bw, driver)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write sql dump: %w", err)
	}
	log.Infow("SQL dump written", "driver", driver, "tables", len(schemaTables), "rows", total)
	return nil
}

func writeDDL(w io.Writer, d Driver) {
	if d == DriverPostgres {
		fmt.Fprintln(w, "DROP SCHEMA IF EXISTS billing CASCADE;")
		fmt.Fprintln(w, "DROP SCHEMA IF EXISTS clinic CASCADE;")
		fmt.Fprintln(w, "CREATE SCHEMA clinic;")
		fmt.Fprintln(w, "CREATE SCHEMA billing;")
	} else {
		for i := len(schemaTables) - 1; i >= 0; i-- {
			t := schemaTables[i]
			fmt.Fprintf(w, "DROP TABLE IF EXISTS %s;\n", qualify(d, t.schema+"."+t.name))
		}
	}
	fmt.Fprintln(w)

	for _, t := range schemaTables {
		var lines, fks []string
		for i, c := range t.columns {
			typ := c.pg
			if d == DriverMySQL {
				typ = c.my
			}
			line := "    " + c.name + " " + typ
			switch {
			case i == 0:
				line += " PRIMARY KEY"
			case !c.nullable:
				line += " NOT NULL"
			}
			if c.ref != "" {
				if d == DriverPostgres {
					line += " REFERENCES " + c.ref
				} else {
					fks = append(fks, fmt.Sprintf("    FOREIGN KEY (%s) REFERENCES %s", c.name, qualify(d, c.ref)))
				}
			}
			lines = append(lines, line)
		}
		lines = append(lines, fks...)

		fmt.Fprintf(w, "CREATE TABLE %s (\n%s\n", qualify(d, t.schema+"."+t.name), strings.Join(lines, ",\n"))
		if d == DriverPostgres {
			fmt.Fprintln(w, ");")
		} else {
			fmt.Fprintln(w, ") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;")
		}
	}
	fmt.Fprintln(w)
}

func writeRows(w io.Writer, d Driver, t table, ds *generate.Dataset) (int, error) {
	name := qualify(d, t.schema+"."+t.name)
	cols := make([]string, len(t.columns))
	for i, c := range t.columns {
		cols[i] = c.name
	}
	colList := strings.Join(cols, ", ")

	rows := t.rows(ds)
	for _, row := range rows {
		vals := make([]string, len(row))
		for i, v := range row {
			lit, err := literal(d, v)
			if err != nil {
				return 0, fmt.Errorf("table %s: %w", name, err)
			}
			vals[i] = lit
		}
		fmt.Fprintf(w, "INSERT INTO %s (%s) VALUES (%s);\n", name, colList, strings.Join(vals, ","))
	}
	fmt.Fprintf(w, "\n-- Inserted %d rows into %s\n\n", len(rows), name)
	return len(rows), nil
}

func writeIndexes(w io.Writer, d Driver) {
	for _, ix := range schemaIndexes {
		fmt.Fprintf(w, "CREATE INDEX %s ON %s(%s);\n", ix.name, qualify(d, ix.table), ix.columns)
	}
	fmt.Fprintln(w, "\n-- Indexes created")
}
