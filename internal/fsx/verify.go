package fsx

import (
	"encoding/hex"
	"io"
	"os"

	"github.com/juju/errors"
	"github.com/zeebo/blake3"
)

// SumFile returns the hex encoded BLAKE3-256 digest of a file.
func SumFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Annotatef(err, "opening %s", path)
	}
	defer f.Close()

	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.Annotatef(err, "hashing %s", path)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SameContent reports whether two files hold identical bytes.
func SameContent(a, b string) (bool, error) {
	ai, err := os.Stat(a)
	if err != nil {
		return false, errors.Annotatef(err, "inspecting %s", a)
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false, errors.Annotatef(err, "inspecting %s", b)
	}
	if ai.Size() != bi.Size() {
		return false, nil
	}

	as, err := SumFile(a)
	if err != nil {
		return false, errors.Trace(err)
	}
	bs, err := SumFile(b)
	if err != nil {
		return false, errors.Trace(err)
	}
	return as == bs, nil
}
