/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package fabenc

import (
	"io"
	"time"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// TimeLayout is the layout used for %{time} and for time valued fields.
const TimeLayout = "2006-01-02T15:04:05.999Z07:00"

var linePool = buffer.NewPool()

// A Formatter is used to format and write data from a zap log entry.
type Formatter interface {
	Format(w io.Writer, entry zapcore.Entry, fields []zapcore.Field)
}

// A FormatEncoder is a zapcore.Encoder that writes the output of its
// formatters followed by the structured fields. The embedded Encoder only
// renders fields; the entry itself is left to the formatters.
type FormatEncoder struct {
	zapcore.Encoder
	formatters []Formatter
}

func NewFormatEncoder(formatters ...Formatter) *FormatEncoder {
	return &FormatEncoder{
		Encoder:    zapcore.NewConsoleEncoder(fieldsOnlyConfig()),
		formatters: formatters,
	}
}

// fieldsOnlyConfig leaves every entry key empty so the console encoder emits
// nothing but the fields and the line ending.
func fieldsOnlyConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		LineEnding:     "\n",
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.Format(TimeLayout))
		},
	}
}

func (f *FormatEncoder) Clone() zapcore.Encoder {
	return &FormatEncoder{Encoder: f.Encoder.Clone(), formatters: f.formatters}
}

// EncodeEntry writes the formatted entry, then a space and the fields when
// there are any. The result always ends with a newline.
func (f *FormatEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	rendered, err := f.Encoder.EncodeEntry(entry, fields)
	if err != nil {
		return nil, err
	}
	defer rendered.Free()

	line := linePool.Get()
	for _, formatter := range f.formatters {
		formatter.Format(line, entry, fields)
	}
	if line.Len() > 0 && rendered.Len() > 1 {
		line.AppendByte(' ')
	}
	line.Write(rendered.Bytes())

	return line, nil
}
