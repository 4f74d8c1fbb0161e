package models

// AssetKind selects the importer block written into a .meta sidecar.
type AssetKind string

const (
	AssetDefault AssetKind = "default"
	AssetScript  AssetKind = "script"
	AssetTexture AssetKind = "texture"
	AssetAudio   AssetKind = "audio"
	AssetFolder  AssetKind = "folder"
)

// ProjectInfo summarizes a Unity project directory.
type ProjectInfo struct {
	Name      string `json:"name" msgpack:"name"`
	Path      string `json:"path" msgpack:"path"`
	Version   string `json:"version" msgpack:"version"`
	HasAssets bool   `json:"hasAssets" msgpack:"hasAssets"`
}

// SyntaxCheckResult is the advisory outcome of a script sanity check.
type SyntaxCheckResult struct {
	IsValid bool     `json:"isValid" msgpack:"isValid"`
	Errors  []string `json:"errors" msgpack:"errors"`
}

// DocumentBlock is one "--- !u!<class> &<handle>" block of a Unity YAML document.
type DocumentBlock struct {
	ClassID int    `json:"classId" msgpack:"classId"`
	Handle  int64  `json:"handle" msgpack:"handle"`
	Type    string `json:"type" msgpack:"type"`
	Line    int    `json:"line" msgpack:"line"`
}

// DocumentReport is the result of verifying a Unity YAML document.
type DocumentReport struct {
	HasHeader        bool            `json:"hasHeader" msgpack:"hasHeader"`
	Blocks           []DocumentBlock `json:"blocks" msgpack:"blocks"`
	MaxHandle        int64           `json:"maxHandle" msgpack:"maxHandle"`
	DuplicateHandles []int64         `json:"duplicateHandles,omitempty" msgpack:"duplicateHandles,omitempty"`
	UnresolvedRefs   []int64         `json:"unresolvedRefs,omitempty" msgpack:"unresolvedRefs,omitempty"`
	Errors           []string        `json:"errors,omitempty" msgpack:"errors,omitempty"`
}

// Valid reports whether the document has no structural problems.
func (r *DocumentReport) Valid() bool {
	return len(r.DuplicateHandles) == 0 && len(r.UnresolvedRefs) == 0 && len(r.Errors) == 0
}

// AssetRecord describes an asset written by an authoring operation.
type AssetRecord struct {
	Path    string `json:"path" msgpack:"path"`
	GUID    string `json:"guid" msgpack:"guid"`
	Objects int    `json:"objects,omitempty" msgpack:"objects,omitempty"`
}

// ScriptRecord is the result of creating a script: where it was written and
// the advisory syntax check of its content.
type ScriptRecord struct {
	AssetRecord
	ClassName string            `json:"className" msgpack:"className"`
	Syntax    SyntaxCheckResult `json:"syntax" msgpack:"syntax"`
}
