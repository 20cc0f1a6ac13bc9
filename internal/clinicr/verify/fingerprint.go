package verify

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/vaibhaw-/ClinicR/internal/clinicr/generate"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/logger"
)

// CollectionHash is the digest of one collection and the chain head after it.
type CollectionHash struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Hash  string `json:"hash"`
	Head  string `json:"head"`
}

// Fingerprint identifies a dataset. Two runs with the same seed and anchor
// produce the same Head.
type Fingerprint struct {
	Seed        uint64           `json:"seed"`
	Today       string           `json:"today"`
	Collections []CollectionHash `json:"collections"`
	Head        string           `json:"head"`
}

type collection struct {
	name  string
	count int
	value any
}

// collections lists the dataset in generation stage order.
func collections(ds *generate.Dataset) []collection {
	doses := 0
	for _, l := range ds.Immunizations {
		doses += len(l)
	}
	return []collection{
		{"providers", len(ds.Providers), ds.Providers},
		{"patients", len(ds.Patients), ds.Patients},
		{"appointments", len(ds.Appointments), ds.Appointments},
		{"clinicalNotes", len(ds.ClinicalNotes), ds.ClinicalNotes},
		{"medications", len(ds.Medications), ds.Medications},
		{"allergies", len(ds.Allergies), ds.Allergies},
		{"problems", len(ds.Problems), ds.Problems},
		{"indiaCompliance", 1, ds.IndiaCompliance},
		{"qatarCompliance", 1, ds.QatarCompliance},
		{"labResults", len(ds.LabResults), ds.LabResults},
		{"claims", len(ds.Claims), ds.Claims},
		{"payments", len(ds.Payments), ds.Payments},
		{"immunizationsByPatient", doses, ds.Immunizations},
		{"dashboardMetrics", 1, ds.DashboardMetrics},
	}
}

// ComputeFingerprint hashes every collection and chains the results.
//
// Chain algorithm:
// 1. Start with the zero hash
// 2. For each collection in stage order:
//   - Canonicalize the collection (sorted keys, compact)
//   - hash = SHA256(canonical)
//   - head = SHA256(previous_head + "|" + canonical)
//
// Any change to a collection, or to the order of stages, changes Head.
func ComputeFingerprint(ds *generate.Dataset) (*Fingerprint, error) {
	log := logger.L()
	fp := &Fingerprint{Seed: ds.Meta.Seed, Today: ds.Meta.Today}
	head := zeroHash()
	for _, c := range collections(ds) {
		canon, err := Canonicalize(c.value)
		if err != nil {
			return nil, fmt.Errorf("canonicalize %s: %w", c.name, err)
		}
		sum := sha256.Sum256([]byte(canon))
		next := sha256.Sum256([]byte(head + "|" + canon))
		head = hex.EncodeToString(next[:])
		fp.Collections = append(fp.Collections, CollectionHash{
			Name:  c.name,
			Count: c.count,
			Hash:  hex.EncodeToString(sum[:]),
			Head:  head,
		})
		log.Debugw("verify.fingerprint", "collection", c.name, "count", c.count, "head", head)
	}
	fp.Head = head
	return fp, nil
}

// Diff returns the names of collections whose hashes differ from other.
// Collections missing on either side count as different.
func (f *Fingerprint) Diff(other *Fingerprint) []string {
	theirs := make(map[string]string, len(other.Collections))
	for _, c := range other.Collections {
		theirs[c.Name] = c.Hash
	}
	var out []string
	seen := make(map[string]bool, len(f.Collections))
	for _, c := range f.Collections {
		seen[c.Name] = true
		if theirs[c.Name] != c.Hash {
			out = append(out, c.Name)
		}
	}
	for _, c := range other.Collections {
		if !seen[c.Name] {
			out = append(out, c.Name)
		}
	}
	return out
}

// LoadFingerprint reads a fingerprint saved by SaveFingerprint.
func LoadFingerprint(path string) (*Fingerprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fingerprint: %w", err)
	}
	var fp Fingerprint
	if err := json.Unmarshal(data, &fp); err != nil {
		return nil, fmt.Errorf("decode fingerprint: %w", err)
	}
	return &fp, nil
}

// SaveFingerprint writes fp atomically using a temp file + rename, so a
// reader never observes a partial file.
func SaveFingerprint(path string, fp *Fingerprint) error {
	if path == "" {
		return nil
	}
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp fingerprint: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fp); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode fingerprint: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close temp fingerprint: %w", err)
	}
	return os.Rename(tmp, path)
}

// zeroHash is the genesis head: 64 zeros, the hex length of a SHA-256 sum.
func zeroHash() string {
	return "0000000000000000000000000000000000000000000000000000000000000000"
}
