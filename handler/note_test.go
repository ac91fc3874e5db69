package handler

import (
	"AppNotas/pkg/response"
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategoryID(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    uint64
		isNil   bool
		invalid bool
	}{
		{name: "nil", in: nil, isNil: true},
		{name: "empty string", in: "", isNil: true},
		{name: "null string", in: "null", isNil: true},
		{name: "zero", in: float64(0), isNil: true},
		{name: "numeric string", in: " 12 ", want: 12},
		{name: "json number", in: float64(7), want: 7},
		{name: "fraction", in: 1.5, invalid: true},
		{name: "negative", in: float64(-3), invalid: true},
		{name: "word", in: "abc", invalid: true},
		{name: "bool", in: true, invalid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCategoryID(tt.in)
			if tt.invalid {
				require.Error(t, err)
				assert.True(t, response.IsKind(err, response.KindValidation))
				return
			}
			require.NoError(t, err)
			if tt.isNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

// memFile 满足 multipart.File
type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func TestSniffImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))

	var pngBuf, jpegBuf, gifBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, img))
	require.NoError(t, jpeg.Encode(&jpegBuf, img, nil))
	require.NoError(t, gif.Encode(&gifBuf, img, nil))

	tests := []struct {
		name string
		data []byte
		ext  string
	}{
		{name: "png", data: pngBuf.Bytes(), ext: ".png"},
		{name: "jpeg", data: jpegBuf.Bytes(), ext: ".jpg"},
		{name: "gif", data: gifBuf.Bytes(), ext: ".gif"},
		{name: "text", data: []byte("hello world")},
		{name: "pdf", data: []byte("%PDF-1.4\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := memFile{bytes.NewReader(tt.data)}
			ext, err := sniffImage(f)
			if tt.ext == "" {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ext, ext)

			// 读指针已回到开头
			pos, err := f.Seek(0, 1)
			require.NoError(t, err)
			assert.Zero(t, pos)
		})
	}
}
