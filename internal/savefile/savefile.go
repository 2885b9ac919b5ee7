// Package savefile turns save files and upload bodies into the text the
// timeline parser reads.
package savefile

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// GamestateEntry is the member of a compressed .sav archive that holds the
// timeline.
const GamestateEntry = "gamestate"

var zipMagic = []byte("PK\x03\x04")

// ErrTooLarge is returned when the input exceeds the read limit.
var ErrTooLarge = errors.New("save file exceeds size limit")

// ReadFile loads a save from disk. See Decode.
func ReadFile(path string, limit int64) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open save file: %w", err)
	}
	defer f.Close()
	return ReadLimited(f, limit)
}

// ReadLimited reads at most limit bytes from r and decodes them. A limit of
// zero or less means no limit.
func ReadLimited(r io.Reader, limit int64) (string, error) {
	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read save: %w", err)
	}
	if limit > 0 && int64(len(data)) > limit {
		return "", ErrTooLarge
	}
	return Decode(data)
}

// Decode returns the save text held in data. A zip archive is unpacked to its
// gamestate member. Text is taken as UTF-8 unless a byte order mark says
// UTF-16; the mark itself is dropped.
func Decode(data []byte) (string, error) {
	if bytes.HasPrefix(data, zipMagic) {
		inner, err := unzipGamestate(data)
		if err != nil {
			return "", err
		}
		data = inner
	}

	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", fmt.Errorf("failed to decode save text: %w", err)
	}
	return string(out), nil
}

func unzipGamestate(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open save archive: %w", err)
	}
	f, err := zr.Open(GamestateEntry)
	if err != nil {
		return nil, fmt.Errorf("save archive has no %s entry: %w", GamestateEntry, err)
	}
	defer f.Close()

	out, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s from archive: %w", GamestateEntry, err)
	}
	return out, nil
}
