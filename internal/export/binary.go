package export

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/piwi3910/SpritePack/internal/model"
)

// Binary metadata layout, all integers little-endian 16-bit:
//
//	int16 atlas width
//	int16 atlas height
//	int16 texture count
//	per texture, in packing order:
//	    name bytes, NUL-terminated
//	    int16 x, y, w, h
//
// Sprite names must fit the format: no NUL bytes, positions and sizes
// within int16 range (the 4096 default atlas is well inside it).

// WriteBinary writes the placement metadata in the binary form,
// creating parent directories if needed.
func WriteBinary(path string, meta model.AtlasMeta) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := writeMeta(w, meta); err != nil {
		return err
	}
	return w.Flush()
}

func writeMeta(w io.Writer, meta model.AtlasMeta) error {
	if err := writeInt16(w, meta.W, meta.H, meta.N); err != nil {
		return err
	}
	for _, t := range meta.Textures {
		for i := 0; i < len(t.Name); i++ {
			if t.Name[i] == 0 {
				return fmt.Errorf("texture name %q contains NUL byte", t.Name)
			}
		}
		if _, err := w.Write(append([]byte(t.Name), 0)); err != nil {
			return err
		}
		if err := writeInt16(w, t.X, t.Y, t.W, t.H); err != nil {
			return err
		}
	}
	return nil
}

func writeInt16(w io.Writer, values ...int) error {
	for _, v := range values {
		if v < -32768 || v > 32767 {
			return fmt.Errorf("value %d overflows int16", v)
		}
		if err := binary.Write(w, binary.LittleEndian, int16(v)); err != nil {
			return err
		}
	}
	return nil
}

// ReadBinary loads placement metadata back from the binary form.
func ReadBinary(path string) (model.AtlasMeta, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.AtlasMeta{}, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var meta model.AtlasMeta
	if meta.W, err = readInt16(r); err != nil {
		return meta, err
	}
	if meta.H, err = readInt16(r); err != nil {
		return meta, err
	}
	if meta.N, err = readInt16(r); err != nil {
		return meta, err
	}

	for i := 0; i < meta.N; i++ {
		name, err := r.ReadBytes(0)
		if err != nil {
			return meta, fmt.Errorf("texture %d: %w", i, err)
		}
		entry := model.MetaEntry{Name: string(name[:len(name)-1])}
		if entry.X, err = readInt16(r); err != nil {
			return meta, err
		}
		if entry.Y, err = readInt16(r); err != nil {
			return meta, err
		}
		if entry.W, err = readInt16(r); err != nil {
			return meta, err
		}
		if entry.H, err = readInt16(r); err != nil {
			return meta, err
		}
		meta.Textures = append(meta.Textures, entry)
	}
	return meta, nil
}

func readInt16(r io.Reader) (int, error) {
	var v int16
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, err
	}
	return int(v), nil
}
