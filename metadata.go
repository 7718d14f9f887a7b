package clouddrop

import (
	"encoding/json"
	"time"
)

// Entry tags as reported by the provider.
const (
	TagFile    = "file"
	TagFolder  = "folder"
	TagDeleted = "deleted"
)

// Metadata describes a remote file, folder, or deleted entry. Raw keeps the complete record as
// received so provider-specific fields stay reachable through Field.
type Metadata struct {
	Tag            string    `json:".tag,omitempty"`
	ID             string    `json:"id,omitempty"`
	Name           string    `json:"name"`
	PathLower      string    `json:"path_lower,omitempty"`
	PathDisplay    string    `json:"path_display,omitempty"`
	Size           uint64    `json:"size,omitempty"`
	Rev            string    `json:"rev,omitempty"`
	ContentHash    string    `json:"content_hash,omitempty"`
	ClientModified time.Time `json:"client_modified,omitempty"`
	ServerModified time.Time `json:"server_modified,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the known fields and retains the full record in Raw.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	type plain Metadata
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*m = Metadata(p)
	m.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// IsFile reports whether the entry is a file. Download and upload results carry no tag and are
// always files.
func (m Metadata) IsFile() bool {
	return m.Tag == TagFile || m.Tag == ""
}

// IsFolder reports whether the entry is a folder.
func (m Metadata) IsFolder() bool {
	return m.Tag == TagFolder
}

// IsDeleted reports whether the entry is a deleted placeholder.
func (m Metadata) IsDeleted() bool {
	return m.Tag == TagDeleted
}

// Field decodes the raw field key into v. It returns false when the record has no such field.
func (m Metadata) Field(key string, v any) (bool, error) {
	if len(m.Raw) == 0 {
		return false, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(m.Raw, &fields); err != nil {
		return false, err
	}
	raw, ok := fields[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, v)
}

func (m Metadata) clone() Metadata {
	m.Raw = append(json.RawMessage(nil), m.Raw...)
	return m
}
