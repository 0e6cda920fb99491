package fsutils

import (
	"io"
	"os"
)

var osOpen = os.Open

// ReadFileData reads at most max bytes from the start of the file.
// max <= 0 reads the whole file.
func ReadFileData(name string, max int) (data []byte, err error) {
	if max <= 0 {
		return os.ReadFile(name)
	}
	var f *os.File
	if f, err = osOpen(name); err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	data = make([]byte, max)
	n, err := io.ReadFull(f, data)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	return data[:n], nil
}
