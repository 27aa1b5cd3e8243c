// Package mapio reads and writes map pools and plan output.
//
// A pool is a header line "N K H W T" followed by N*H rows of W cells.
// Input may be zstd-compressed; it is detected by its frame magic.
package mapio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"

	"gridplan/internal/config"
	"gridplan/internal/grid"
)

var ErrBadInput = errors.New("bad map pool input")

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

type Pool struct {
	Problem config.Problem
	Maps    []*grid.Map
}

// Open reads a pool from path, or from stdin when path is "-" or empty.
func Open(path string) (*Pool, error) {
	if path == "" || path == "-" {
		return Read(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

func Read(r io.Reader) (*Pool, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(zstdMagic))
	if bytes.Equal(head, zstdMagic) {
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return parse(dec)
	}
	return parse(br)
}

func parse(r io.Reader) (*Pool, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	next := func() (string, bool) {
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line != "" {
				return line, true
			}
		}
		return "", false
	}

	header, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: missing header", ErrBadInput)
	}
	fields := strings.Fields(header)
	if len(fields) != 5 {
		return nil, fmt.Errorf("%w: header %q wants 5 fields", ErrBadInput, header)
	}
	var vals [5]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: header field %d: %v", ErrBadInput, i, err)
		}
		vals[i] = v
	}
	p := config.Problem{Worlds: vals[0], Committee: vals[1], Rows: vals[2], Cols: vals[3], Turns: vals[4]}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadInput, err)
	}

	pool := &Pool{Problem: p, Maps: make([]*grid.Map, 0, p.Worlds)}
	rows := make([]string, p.Rows)
	for k := 0; k < p.Worlds; k++ {
		for i := range rows {
			line, ok := next()
			if !ok {
				if err := sc.Err(); err != nil {
					return nil, err
				}
				return nil, fmt.Errorf("%w: map %d truncated at row %d", ErrBadInput, k, i)
			}
			if len(line) != p.Cols {
				return nil, fmt.Errorf("%w: map %d row %d has %d cells, want %d", ErrBadInput, k, i, len(line), p.Cols)
			}
			rows[i] = line
		}
		m, err := grid.NewMap(rows)
		if err != nil {
			return nil, fmt.Errorf("map %d: %w", k, err)
		}
		pool.Maps = append(pool.Maps, m)
	}
	return pool, nil
}

// Write encodes pool in the input format.
func Write(w io.Writer, pool *Pool) error {
	bw := bufio.NewWriter(w)
	p := pool.Problem
	fmt.Fprintf(bw, "%d %d %d %d %d\n", p.Worlds, p.Committee, p.Rows, p.Cols, p.Turns)
	for _, m := range pool.Maps {
		bw.WriteString(m.String())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteCompressed is Write through a zstd encoder.
func WriteCompressed(w io.Writer, pool *Pool) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if err := Write(enc, pool); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}

// WritePlan prints the committee indices and the move string, one per line.
func WritePlan(w io.Writer, committee []int, plan string) error {
	ids := make([]string, len(committee))
	for i, id := range committee {
		ids[i] = strconv.Itoa(id)
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", strings.Join(ids, " "), plan)
	return err
}
