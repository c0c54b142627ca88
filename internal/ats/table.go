// Package ats classifies job postings against a table of known
// Applicant Tracking System signatures.
package ats

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/jonathan/ats-inspector/internal/schemas"
)

// Unknown is the sentinel label returned when no platform signature matches.
const Unknown = "Unknown/Custom"

// Signature describes one known ATS platform: literal URL/host fragments and
// page-content fragments strongly associated with it.
type Signature struct {
	Name       string   `json:"name"`
	Domains    []string `json:"domains"`
	ContentSig []string `json:"signatures"`
}

//go:embed signatures.json
var signaturesJSON []byte

//go:embed signatures_schema.json
var signaturesSchemaJSON []byte

// table is the immutable signature table, loaded once at process start.
// Entry order is significant: ties during detection resolve to the
// earliest-registered platform.
var table = mustLoadTable()

func mustLoadTable() []Signature {
	if err := schemas.ValidateBytes(signaturesSchemaJSON, signaturesJSON); err != nil {
		panic(fmt.Sprintf("ats: embedded signature table is invalid: %v", err))
	}

	var sigs []Signature
	if err := json.Unmarshal(signaturesJSON, &sigs); err != nil {
		panic(fmt.Sprintf("ats: failed to parse embedded signature table: %v", err))
	}
	return sigs
}

// Signatures returns the static signature table. Callers must not mutate it.
func Signatures() []Signature {
	return table
}

// Known reports whether name is a platform in the signature table.
func Known(name string) bool {
	for _, sig := range table {
		if sig.Name == name {
			return true
		}
	}
	return false
}
