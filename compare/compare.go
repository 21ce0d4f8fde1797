// Package compare runs the Huffman and LZW codecs side by side on the same
// text and reports size, compression ratio and timing for each, optionally
// alongside an LZ4 baseline.
package compare

import (
	"bytes"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/pierrec/lz4/v4"

	"github.com/chronos-tachyon/textcodec/huffman"
	"github.com/chronos-tachyon/textcodec/lzw"
)

// Algorithm names used in Stats.Algorithm.
const (
	Huffman = "Huffman"
	LZW     = "LZW"
	LZ4     = "LZ4"
)

// Stats describes one codec run.
type Stats struct {
	Algorithm string

	// OriginalSize is the length of the text in bytes; Symbols is its
	// length in code points.
	OriginalSize int
	Symbols      int

	// CompressedSize is the length of the persisted form in bytes.
	CompressedSize int

	CompressTime   time.Duration
	DecompressTime time.Duration

	// EncodedBits is the length of the Huffman bit string, before padding.
	// Zero for other algorithms.
	EncodedBits int

	// Codes is the number of LZW codes.  Zero for other algorithms.
	Codes int

	// Match is true iff decompression reproduced the text exactly.
	Match bool
}

// Ratio returns the space saved by compression as a percentage of the
// original size: (1 - compressed/original) * 100.  Negative when the output
// is larger than the input; 0 for empty input.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}
	return (1 - float64(s.CompressedSize)/float64(s.OriginalSize)) * 100
}

// BitsPerSymbol returns EncodedBits divided by Symbols, or 0 when either is 0.
func (s Stats) BitsPerSymbol() float64 {
	if s.Symbols == 0 || s.EncodedBits == 0 {
		return 0
	}
	return float64(s.EncodedBits) / float64(s.Symbols)
}

// Config controls Run.
type Config struct {
	// Baseline adds an LZ4 frame run to the report.
	Baseline bool

	// Now is the clock used for timing.  Defaults to time.Now.
	Now func() time.Time
}

// Report holds the results of one Run.
type Report struct {
	Huffman  Stats
	LZW      Stats
	Baseline *Stats
}

// Run compresses and decompresses text with every codec and collects their
// statistics.  A codec error aborts the run.
func Run(text string, cfg Config) (Report, error) {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	var report Report
	var err error

	if report.Huffman, err = runHuffman(text, now); err != nil {
		return Report{}, fmt.Errorf("huffman: %w", err)
	}
	if report.LZW, err = runLZW(text, now); err != nil {
		return Report{}, fmt.Errorf("lzw: %w", err)
	}
	if cfg.Baseline {
		stats, err := runLZ4(text, now)
		if err != nil {
			return Report{}, fmt.Errorf("lz4: %w", err)
		}
		report.Baseline = &stats
	}
	return report, nil
}

// All returns the Stats of every codec in the report, baseline last.
func (r Report) All() []Stats {
	out := []Stats{r.Huffman, r.LZW}
	if r.Baseline != nil {
		out = append(out, *r.Baseline)
	}
	return out
}

// BestRatio returns the algorithm with the highest compression ratio.  Ties
// go to the earlier entry of All.
func (r Report) BestRatio() string {
	all := r.All()
	best := all[0]
	for _, s := range all[1:] {
		if s.Ratio() > best.Ratio() {
			best = s
		}
	}
	return best.Algorithm
}

// Fastest returns the algorithm with the shortest compression time.  Ties go
// to the earlier entry of All.
func (r Report) Fastest() string {
	all := r.All()
	best := all[0]
	for _, s := range all[1:] {
		if s.CompressTime < best.CompressTime {
			best = s
		}
	}
	return best.Algorithm
}

func newStats(algorithm, text string) Stats {
	return Stats{
		Algorithm:    algorithm,
		OriginalSize: len(text),
		Symbols:      utf8.RuneCountInString(text),
	}
}

func runHuffman(text string, now func() time.Time) (Stats, error) {
	stats := newStats(Huffman, text)

	start := now()
	c, err := huffman.Compress(text)
	if err != nil {
		return Stats{}, err
	}
	stats.CompressTime = now().Sub(start)
	stats.CompressedSize = len(c.Data)
	stats.EncodedBits = c.EncodedBits

	start = now()
	out, err := huffman.Decompress(c.Data, c.Tree)
	if err != nil {
		return Stats{}, err
	}
	stats.DecompressTime = now().Sub(start)
	stats.Match = out == text
	return stats, nil
}

func runLZW(text string, now func() time.Time) (Stats, error) {
	stats := newStats(LZW, text)

	start := now()
	codes := lzw.Compress(text)
	stats.CompressTime = now().Sub(start)
	stats.CompressedSize = len(lzw.Marshal(codes))
	stats.Codes = len(codes)

	if len(codes) == 0 {
		stats.Match = text == ""
		return stats, nil
	}

	start = now()
	out, err := lzw.Decompress(codes)
	if err != nil {
		return Stats{}, err
	}
	stats.DecompressTime = now().Sub(start)
	stats.Match = out == text
	return stats, nil
}

func runLZ4(text string, now func() time.Time) (Stats, error) {
	stats := newStats(LZ4, text)

	start := now()
	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if _, err := io.WriteString(zw, text); err != nil {
		return Stats{}, err
	}
	if err := zw.Close(); err != nil {
		return Stats{}, err
	}
	stats.CompressTime = now().Sub(start)
	stats.CompressedSize = buf.Len()

	start = now()
	out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(buf.Bytes())))
	if err != nil {
		return Stats{}, err
	}
	stats.DecompressTime = now().Sub(start)
	stats.Match = string(out) == text
	return stats, nil
}
