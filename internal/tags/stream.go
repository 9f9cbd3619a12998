package tags

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	goflac "github.com/go-flac/go-flac"
	"github.com/gopxl/beep/v2/flac"
	"github.com/llehouerou/go-m4a"
	"github.com/llehouerou/go-mp3"
)

// opusRate is the granule clock of every Ogg Opus stream.
const opusRate = 48000

// oggTailSize bounds how far from the end the last Ogg page is searched for.
const oggTailSize = 64 * 1024

// ErrUnsupported is returned for files without a stream reader.
var ErrUnsupported = errors.New("unsupported format")

// ReadStream reads duration and format from path without decoding the
// whole stream where the container allows it.
func ReadStream(path string) (*Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readStream(f, path)
}

func readStream(f *os.File, path string) (*Stream, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ExtMP3:
		return mp3Stream(f)
	case ExtFLAC:
		return flacStream(f, path)
	case ExtOPUS, ExtOGG:
		return oggStream(f)
	case ExtM4A, ExtMP4:
		return m4aStream(f)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, ext)
}

func mp3Stream(f *os.File) (*Stream, error) {
	d, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, err
	}
	rate := d.SampleRate()
	if rate == 0 {
		return nil, errors.New("mp3: invalid sample rate")
	}
	samples := max(d.SampleCount(), 0)
	return &Stream{
		Duration:   samplesToDuration(int64(samples), rate),
		Format:     "MP3",
		SampleRate: rate,
	}, nil
}

// flacStream reads STREAMINFO. Files with a prepended ID3v2 tag do not parse
// as FLAC, so those go through the beep decoder after skipping the tag.
func flacStream(f *os.File, path string) (*Stream, error) {
	file, err := goflac.ParseFile(path)
	if err == nil {
		for _, meta := range file.Meta {
			if meta.Type == goflac.StreamInfo {
				if s, ok := parseStreamInfo(meta.Data); ok {
					return s, nil
				}
			}
		}
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	if err := skipID3v2(f); err != nil {
		return nil, err
	}
	streamer, format, err := flac.Decode(f)
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	return &Stream{
		Duration:   format.SampleRate.D(streamer.Len()),
		Format:     "FLAC",
		SampleRate: int(format.SampleRate),
	}, nil
}

// parseStreamInfo decodes the sample rate (20 bits from byte 10) and the
// total sample count (36 bits from byte 13) of a STREAMINFO block.
func parseStreamInfo(data []byte) (*Stream, bool) {
	if len(data) < 18 {
		return nil, false
	}
	rate := int(data[10])<<12 | int(data[11])<<4 | int(data[12])>>4
	total := int64(data[13]&0x0F)<<32 | int64(data[14])<<24 | int64(data[15])<<16 |
		int64(data[16])<<8 | int64(data[17])
	if rate == 0 {
		return nil, false
	}
	return &Stream{
		Duration:   samplesToDuration(total, rate),
		Format:     "FLAC",
		SampleRate: rate,
	}, true
}

func oggStream(f *os.File) (*Stream, error) {
	granule, err := lastGranule(f)
	if err != nil {
		return nil, err
	}
	return &Stream{
		Duration:   samplesToDuration(granule, opusRate),
		Format:     "OPUS",
		SampleRate: opusRate,
	}, nil
}

// lastGranule returns the granule position of the last Ogg page in the
// file tail.
func lastGranule(r io.ReadSeeker) (int64, error) {
	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	size := min(int64(oggTailSize), end)
	if _, err := r.Seek(-size, io.SeekEnd); err != nil {
		return 0, err
	}
	buf := make([]byte, size)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return 0, err
	}
	buf = buf[:n]

	// Page header: "OggS", version, flags, then the 8-byte little-endian granule.
	for i := len(buf) - 27; i >= 0; i-- {
		if string(buf[i:i+4]) != "OggS" {
			continue
		}
		var g int64
		for b := 7; b >= 0; b-- {
			g = g<<8 | int64(buf[i+6+b])
		}
		if g > 0 {
			return g, nil
		}
	}
	return 0, errors.New("ogg: no granule position found")
}

func m4aStream(f *os.File) (*Stream, error) {
	c, err := m4a.Open(f)
	if err != nil {
		return nil, err
	}
	format := "M4A"
	switch c.Codec() {
	case m4a.CodecAAC:
		format = "AAC"
	case m4a.CodecALAC:
		format = "ALAC"
	case m4a.CodecUnknown:
	}
	return &Stream{
		Duration:   c.Duration(),
		Format:     format,
		SampleRate: int(c.SampleRate()),
	}, nil
}

// skipID3v2 leaves r positioned after an ID3v2 tag, or at the start when
// there is none.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return err
	}
	if n < 10 || string(header[:3]) != id3Magic {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}
	// Syncsafe integer: 7 bits per byte.
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}

func samplesToDuration(samples int64, rate int) time.Duration {
	return time.Duration(float64(samples) / float64(rate) * float64(time.Second))
}
