package registry

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/audialab/syrinx/variant"
)

// Snapshot is a portable description of a registered schema contract. It
// captures the shape of every variant — names, types, flags, validator
// counts — without the validator functions themselves, so it can cross
// process boundaries.
//
// Variants appear sorted by name and fields in composition order, making
// the encoding deterministic: two services that composed the same catalog
// produce byte-identical snapshots.
type Snapshot struct {
	Variants []*VariantSnapshot `json:"variants" msgpack:"variants"`
}

// VariantSnapshot describes one composed variant.
type VariantSnapshot struct {
	Name    string           `json:"name" msgpack:"name"`
	Strict  bool             `json:"strict,omitempty" msgpack:"strict"`
	Partial bool             `json:"partial,omitempty" msgpack:"partial"`
	Fields  []*FieldSnapshot `json:"fields" msgpack:"fields"`
}

// FieldSnapshot describes one composed field. Default values are reported
// as presence flags only: generator functions cannot cross process
// boundaries, and literal defaults are part of validation behavior, not of
// the wire contract.
type FieldSnapshot struct {
	Name          string   `json:"name" msgpack:"name"`
	Type          string   `json:"type" msgpack:"type"`
	Optional      bool     `json:"optional,omitempty" msgpack:"optional"`
	Nillable      bool     `json:"nillable,omitempty" msgpack:"nillable"`
	Immutable     bool     `json:"immutable,omitempty" msgpack:"immutable"`
	Unique        bool     `json:"unique,omitempty" msgpack:"unique"`
	Default       bool     `json:"default,omitempty" msgpack:"default"`
	UpdateDefault bool     `json:"update_default,omitempty" msgpack:"update_default"`
	Validators    int      `json:"validators,omitempty" msgpack:"validators"`
	Enums         []string `json:"enums,omitempty" msgpack:"enums"`
	Size          int      `json:"size,omitempty" msgpack:"size"`
	Comment       string   `json:"comment,omitempty" msgpack:"comment"`
}

// Snapshot captures the registered contract. Sensitive fields are excluded.
func (r *Registry) Snapshot() *Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := &Snapshot{}
	names := append([]string(nil), r.order...)
	sort.Strings(names)
	for _, name := range names {
		s.Variants = append(s.Variants, snapshotVariant(r.variants[name]))
	}
	return s
}

func snapshotVariant(v *variant.Variant) *VariantSnapshot {
	vs := &VariantSnapshot{
		Name:    v.Name(),
		Strict:  v.Strict(),
		Partial: v.Partial(),
	}
	for _, fd := range v.FieldDescriptors() {
		if fd.Sensitive {
			continue
		}
		vs.Fields = append(vs.Fields, &FieldSnapshot{
			Name:          fd.Name,
			Type:          fd.Info.String(),
			Optional:      fd.Optional,
			Nillable:      fd.Nillable,
			Immutable:     fd.Immutable,
			Unique:        fd.Unique,
			Default:       fd.Default != nil,
			UpdateDefault: fd.UpdateDefault != nil,
			Validators:    len(fd.Validators),
			Enums:         fd.Enums,
			Size:          fd.Size,
			Comment:       fd.Comment,
		})
	}
	return vs
}

// JSON encodes the snapshot as indented JSON for inspection and diffing.
func (s *Snapshot) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Encode encodes the snapshot in its compact binary form.
func (s *Snapshot) Encode() ([]byte, error) {
	return msgpack.Marshal(s)
}

// Decode decodes a snapshot from its compact binary form.
func Decode(data []byte) (*Snapshot, error) {
	s := &Snapshot{}
	if err := msgpack.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Fingerprint returns a stable digest of the snapshot. Services compare
// fingerprints to assert they agree on a shared contract; composing the
// same catalog twice always yields the same fingerprint.
func (s *Snapshot) Fingerprint() (string, error) {
	data, err := s.Encode()
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
