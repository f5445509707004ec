package splice_test

import (
	"errors"
	"io"
)

var errInjected = errors.New("injected I/O failure")

// memFile is an in-memory splice.File. It records the largest single read
// or write so tests can check the memory bound, and can fail the n-th call
// of a chosen operation.
type memFile struct {
	data []byte
	pos  int64

	maxRead  int
	maxWrite int
	syncs    int

	failOp string // "seek", "read", "write", "truncate" or "sync"
	failAt int    // 1-based call number of failOp that fails
	calls  map[string]int
}

func newMemFile(src []byte) *memFile {
	return &memFile{data: append([]byte(nil), src...), calls: map[string]int{}}
}

func (m *memFile) fail(op string) bool {
	m.calls[op]++
	return m.failOp == op && m.calls[op] == m.failAt
}

func (m *memFile) Read(p []byte) (int, error) {
	if m.fail("read") {
		return 0, errInjected
	}
	m.maxRead = max(m.maxRead, len(p))
	if m.pos >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[m.pos:])
	m.pos += int64(n)
	return n, nil
}

func (m *memFile) Write(p []byte) (int, error) {
	if m.fail("write") {
		return 0, errInjected
	}
	m.maxWrite = max(m.maxWrite, len(p))
	if end := m.pos + int64(len(p)); end > int64(len(m.data)) {
		m.data = append(m.data, make([]byte, end-int64(len(m.data)))...)
	}
	n := copy(m.data[m.pos:], p)
	m.pos += int64(n)
	return n, nil
}

func (m *memFile) Seek(offset int64, whence int) (int64, error) {
	if m.fail("seek") {
		return 0, errInjected
	}
	switch whence {
	case io.SeekStart:
		m.pos = offset
	case io.SeekCurrent:
		m.pos += offset
	case io.SeekEnd:
		m.pos = int64(len(m.data)) + offset
	}
	if m.pos < 0 {
		return 0, errors.New("negative position")
	}
	return m.pos, nil
}

func (m *memFile) Truncate(size int64) error {
	if m.fail("truncate") {
		return errInjected
	}
	if size <= int64(len(m.data)) {
		m.data = m.data[:size]
		return nil
	}
	m.data = append(m.data, make([]byte, size-int64(len(m.data)))...)
	return nil
}

func (m *memFile) Sync() error {
	if m.fail("sync") {
		return errInjected
	}
	m.syncs++
	return nil
}

func (m *memFile) bytes() []byte {
	return append([]byte(nil), m.data...)
}
