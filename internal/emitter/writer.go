package emitter

import (
	"strconv"
	"strings"

	"github.com/unity-forge/backend/internal/models"
)

// Header is the two-line preamble of every Unity YAML asset.
const Header = "%YAML 1.1\n%TAG !u! tag:unity3d.com,2011:\n"

const indentUnit = "  "

// Writer accumulates Unity YAML text. Blocks obtained from it append in call
// order, so field order is the order of the calls.
type Writer struct {
	buf strings.Builder
}

func NewWriter() *Writer {
	return &Writer{}
}

// Header writes the %YAML / %TAG preamble.
func (w *Writer) Header() {
	w.buf.WriteString(Header)
}

// Document starts a "--- !u!<class> &<handle>" block whose body is a single
// mapping named typeName.
func (w *Writer) Document(classID int, handle int64, typeName string) *Block {
	w.buf.WriteString("--- !u!")
	w.buf.WriteString(strconv.Itoa(classID))
	w.buf.WriteString(" &")
	w.buf.WriteString(strconv.FormatInt(handle, 10))
	w.buf.WriteByte('\n')
	w.buf.WriteString(typeName)
	w.buf.WriteString(":\n")
	return &Block{w: w, depth: 1}
}

// Root returns a block at column zero, used for files without document
// markers such as .meta sidecars.
func (w *Writer) Root() *Block {
	return &Block{w: w}
}

func (w *Writer) String() string {
	return w.buf.String()
}

// Block writes key/value lines at a fixed indentation.
type Block struct {
	w     *Writer
	depth int
}

func (b *Block) pad() {
	for i := 0; i < b.depth; i++ {
		b.w.buf.WriteString(indentUnit)
	}
}

// Raw writes value verbatim. An empty value leaves the key without a value.
func (b *Block) Raw(key, value string) {
	b.pad()
	b.w.buf.WriteString(key)
	b.w.buf.WriteByte(':')
	if value != "" {
		b.w.buf.WriteByte(' ')
		b.w.buf.WriteString(value)
	}
	b.w.buf.WriteByte('\n')
}

func (b *Block) Blank(key string) { b.Raw(key, "") }
func (b *Block) Int(key string, v int) { b.Raw(key, strconv.Itoa(v)) }
func (b *Block) Int64(key string, v int64) { b.Raw(key, strconv.FormatInt(v, 10)) }
func (b *Block) Float(key string, v float32) { b.Raw(key, formatFloat(v)) }
func (b *Block) Flag(key string, v bool) { b.Raw(key, formatFlag(v)) }
func (b *Block) Text(key, v string) { b.Raw(key, quoteText(v)) }
func (b *Block) Vector3(key string, v models.Vector3) { b.Raw(key, formatVector3(v)) }
func (b *Block) Color(key string, v models.Color) { b.Raw(key, formatColor(v)) }
func (b *Block) Ref(key string, fileID int64) { b.Raw(key, formatRef(fileID)) }
func (b *Block) EmptySeq(key string) { b.Raw(key, "[]") }
func (b *Block) EmptyMap(key string) { b.Raw(key, "{}") }

func (b *Block) Quaternion(key string, q models.Quaternion) {
	b.Raw(key, formatQuaternion(q))
}

// AssetRef writes a reference into another asset or a built-in resource.
func (b *Block) AssetRef(key string, fileID int64, guid string, typ int) {
	b.Raw(key, formatAssetRef(fileID, guid, typ))
}

// Map writes a nested mapping under key.
func (b *Block) Map(key string, fn func(*Block)) {
	b.Raw(key, "")
	fn(&Block{w: b.w, depth: b.depth + 1})
}

// Seq writes a block sequence under key. Items sit at the key's own
// indentation, as Unity writes them.
func (b *Block) Seq(key string, fn func(*Seq)) {
	b.Raw(key, "")
	fn(&Seq{b: b})
}

// Seq writes the items of a block sequence.
type Seq struct {
	b *Block
}

// Value writes "- value".
func (s *Seq) Value(v string) {
	s.b.pad()
	s.b.w.buf.WriteString("- ")
	s.b.w.buf.WriteString(v)
	s.b.w.buf.WriteByte('\n')
}

// Item writes "- key: value", a single-entry mapping item.
func (s *Seq) Item(key, v string) {
	s.Value(key + ": " + v)
}
