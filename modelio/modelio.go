package modelio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand"

	"github.com/katalvlaran/seqrnn/layers"
)

// Save writes chain to w as a versioned checkpoint. Each element of chain
// must be a *layers.Dense or a *layers.LSTM; anything else returns an
// error rather than silently dropping a layer.
func Save(w io.Writer, chain []any) error {
	bw := bufio.NewWriter(w)

	if err := binary.Write(bw, binary.LittleEndian, magic); err != nil {
		return fmt.Errorf("modelio: write magic: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, version); err != nil {
		return fmt.Errorf("modelio: write version: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(chain))); err != nil {
		return fmt.Errorf("modelio: write layer count: %w", err)
	}

	for idx, l := range chain {
		switch v := l.(type) {
		case *layers.Dense:
			if err := saveDense(bw, v); err != nil {
				return fmt.Errorf("modelio: layer %d: %w", idx, err)
			}
		case *layers.LSTM:
			if err := saveLSTM(bw, v); err != nil {
				return fmt.Errorf("modelio: layer %d: %w", idx, err)
			}
		default:
			return fmt.Errorf("modelio: layer %d: %w", idx, ErrUnknownLayerKind)
		}
	}
	return bw.Flush()
}

// Load reads a checkpoint written by Save and reconstructs the layer
// chain in order. rng seeds nothing (loaded weights overwrite any random
// init) but is threaded through the layers.New* constructors so the
// returned values are otherwise ordinary *layers.Dense/*layers.LSTM.
func Load(r io.Reader, rng *rand.Rand) ([]any, error) {
	br := bufio.NewReader(r)

	var gotMagic, gotVersion, count uint32
	if err := binary.Read(br, binary.LittleEndian, &gotMagic); err != nil {
		return nil, fmt.Errorf("modelio: read magic: %w", err)
	}
	if gotMagic != magic {
		return nil, ErrBadMagic
	}
	if err := binary.Read(br, binary.LittleEndian, &gotVersion); err != nil {
		return nil, fmt.Errorf("modelio: read version: %w", err)
	}
	if gotVersion > version {
		return nil, ErrUnsupportedVersion
	}
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("modelio: read layer count: %w", err)
	}

	chain := make([]any, 0, count)
	for i := uint32(0); i < count; i++ {
		var kind byte
		if err := binary.Read(br, binary.LittleEndian, &kind); err != nil {
			return nil, fmt.Errorf("modelio: layer %d: read kind: %w", i, err)
		}
		switch layerKind(kind) {
		case kindDense:
			d, err := loadDense(br, rng)
			if err != nil {
				return nil, fmt.Errorf("modelio: layer %d: %w", i, err)
			}
			chain = append(chain, d)
		case kindLSTM:
			l, err := loadLSTM(br, rng)
			if err != nil {
				return nil, fmt.Errorf("modelio: layer %d: %w", i, err)
			}
			chain = append(chain, l)
		default:
			return nil, fmt.Errorf("modelio: layer %d: %w", i, ErrUnknownLayerKind)
		}
	}
	return chain, nil
}

func saveDense(w io.Writer, d *layers.Dense) error {
	if err := binary.Write(w, binary.LittleEndian, byte(kindDense)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(d.InSize)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(d.OutSize)); err != nil {
		return err
	}
	if err := writeString(w, d.Activation); err != nil {
		return err
	}
	if err := writeMatrix(w, d.W); err != nil {
		return err
	}
	return writeVector(w, d.B)
}

func loadDense(r io.Reader, rng *rand.Rand) (*layers.Dense, error) {
	var inSize, outSize uint32
	if err := binary.Read(r, binary.LittleEndian, &inSize); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &outSize); err != nil {
		return nil, err
	}
	activation, err := readString(r)
	if err != nil {
		return nil, err
	}
	d := layers.NewDense(int(inSize), int(outSize), activation, rng)
	w, err := readMatrix(r, int(outSize), int(inSize))
	if err != nil {
		return nil, err
	}
	b, err := readVector(r, int(outSize))
	if err != nil {
		return nil, err
	}
	d.W, d.B = w, b
	return d, nil
}

func saveLSTM(w io.Writer, l *layers.LSTM) error {
	if err := binary.Write(w, binary.LittleEndian, byte(kindLSTM)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(l.InSize)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(l.HiddenSize)); err != nil {
		return err
	}
	if err := writeMatrix(w, l.Wx); err != nil {
		return err
	}
	if err := writeMatrix(w, l.Wh); err != nil {
		return err
	}
	return writeVector(w, l.Bias)
}

func loadLSTM(r io.Reader, rng *rand.Rand) (*layers.LSTM, error) {
	var inSize, hiddenSize uint32
	if err := binary.Read(r, binary.LittleEndian, &inSize); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &hiddenSize); err != nil {
		return nil, err
	}
	l := layers.NewLSTM(int(inSize), int(hiddenSize), rng)
	rows := 4 * int(hiddenSize)
	wx, err := readMatrix(r, rows, int(inSize))
	if err != nil {
		return nil, err
	}
	wh, err := readMatrix(r, rows, int(hiddenSize))
	if err != nil {
		return nil, err
	}
	bias, err := readVector(r, rows)
	if err != nil {
		return nil, err
	}
	l.Wx, l.Wh, l.Bias = wx, wh, bias
	return l, nil
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader) (string, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func writeVector(w io.Writer, v []float64) error {
	return binary.Write(w, binary.LittleEndian, v)
}

func readVector(r io.Reader, n int) ([]float64, error) {
	v := make([]float64, n)
	if err := binary.Read(r, binary.LittleEndian, v); err != nil {
		return nil, err
	}
	return v, nil
}

func writeMatrix(w io.Writer, m [][]float64) error {
	for _, row := range m {
		if err := writeVector(w, row); err != nil {
			return err
		}
	}
	return nil
}

func readMatrix(r io.Reader, rows, cols int) ([][]float64, error) {
	m := make([][]float64, rows)
	for i := range m {
		row, err := readVector(r, cols)
		if err != nil {
			return nil, err
		}
		m[i] = row
	}
	return m, nil
}
