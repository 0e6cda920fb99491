// Package viewer loads file content as text for display.
package viewer

import (
	"bytes"
	"context"
	"unicode/utf8"

	"github.com/datatug/pathview/pkg/chroma2tcell"
	"github.com/datatug/pathview/pkg/files"
	"github.com/datatug/pathview/pkg/fsutils"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type Option func(v *FileViewer)

// WithMaxSize limits how many bytes are read; 0 or less means no limit.
func WithMaxSize(n int) Option {
	return func(v *FileViewer) {
		v.maxSize = max(n, 0)
	}
}

func WithStyle(name string) Option {
	return func(v *FileViewer) {
		v.style = name
	}
}

func WithLogger(log *logrus.Entry) Option {
	return func(v *FileViewer) {
		v.log = log
	}
}

type FileViewer struct {
	store   files.Store
	maxSize int
	style   string
	log     *logrus.Entry
}

func New(store files.Store, o ...Option) *FileViewer {
	v := &FileViewer{
		store: store,
		style: chroma2tcell.DefaultStyle,
	}
	for _, opt := range o {
		opt(v)
	}
	return v
}

// Read returns the full text of the file at path.
// Failures are reported as *ReadError.
func (v *FileViewer) Read(ctx context.Context, path string) (string, error) {
	path = fsutils.ExpandHome(path)
	fi, err := v.store.Stat(ctx, path)
	if err != nil {
		return "", v.fail(path, err)
	}
	if fi.IsDir() {
		return "", v.fail(path, files.ErrNotAFile)
	}
	data, err := v.store.ReadFile(ctx, path, v.maxSize)
	if err != nil {
		return "", v.fail(path, err)
	}
	if v.maxSize > 0 && len(data) == v.maxSize {
		data = trimPartialRune(data)
	}
	text, err := decodeText(data)
	if err != nil {
		return "", v.fail(path, err)
	}
	return text, nil
}

// Highlight renders text as tview-tagged content using the file name's lexer.
func (v *FileViewer) Highlight(name, text string) string {
	colorized, _ := chroma2tcell.ColorizeFile(name, text, v.style)
	return colorized
}

func (v *FileViewer) fail(path string, err error) error {
	readErr := newReadError(path, err)
	if v.log != nil {
		v.log.WithField("path", path).WithField("kind", readErr.Kind.String()).Debug(err)
	}
	return readErr
}

var (
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
)

func decodeText(data []byte) (string, error) {
	if bytes.HasPrefix(data, bomUTF16BE) || bytes.HasPrefix(data, bomUTF16LE) || bytes.HasPrefix(data, bomUTF8) {
		decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
		decoded, _, err := transform.Bytes(decoder, data)
		if err != nil {
			return "", files.ErrDecode
		}
		data = decoded
	}
	if !utf8.Valid(data) || bytes.IndexByte(data, 0) >= 0 {
		return "", files.ErrDecode
	}
	return string(data), nil
}

// trimPartialRune drops an incomplete UTF-8 sequence cut off at the end of a truncated read.
func trimPartialRune(data []byte) []byte {
	for i := 1; i < utf8.UTFMax && i <= len(data); i++ {
		start := len(data) - i
		if !utf8.RuneStart(data[start]) {
			continue
		}
		if !utf8.FullRune(data[start:]) {
			return data[:start]
		}
		break
	}
	return data
}
