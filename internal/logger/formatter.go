package logger

import (
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	// FormatSeparator joins the parts of a formatted record.
	FormatSeparator = " - "
	// TimeLayout is the timestamp layout of formatted records.
	TimeLayout = "2006-01-02 15:04:05,000"
)

// NewFormatter returns an encoder rendering records as
// "timestamp - logger_name - level - message".
// Structured fields follow the message as a JSON object.
//
//nolint:ireturn,nolintlint // Returning zapcore.Encoder is intended for zap integration.
func NewFormatter() zapcore.Encoder {
	//nolint:exhaustruct // Level, name and caller are rendered by templateEncoder.
	return templateEncoder{
		Encoder: zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:          "time",
			MessageKey:       "message",
			StacktraceKey:    "stacktrace",
			LineEnding:       zapcore.DefaultLineEnding,
			EncodeTime:       zapcore.TimeEncoderOfLayout(TimeLayout),
			EncodeDuration:   zapcore.StringDurationEncoder,
			ConsoleSeparator: FormatSeparator,
		}),
	}
}

// NewPlainEncoder returns the default rendering used by Enable: the message
// followed by structured fields, if any.
//
//nolint:ireturn,nolintlint // Returning zapcore.Encoder is intended for zap integration.
func NewPlainEncoder() zapcore.Encoder {
	//nolint:exhaustruct // Only the message is rendered.
	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "message",
		StacktraceKey:    "stacktrace",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	})
}

// templateEncoder puts the logger name before the level, which the console
// encoder cannot do on its own.
type templateEncoder struct {
	zapcore.Encoder
}

//nolint:ireturn,nolintlint // Returning zapcore.Encoder is intended for zap integration.
func (e templateEncoder) Clone() zapcore.Encoder {
	return templateEncoder{
		Encoder: e.Encoder.Clone(),
	}
}

//nolint:gocritic // zapcore.Encoder requires ent to be passed by value.
func (e templateEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	prefix := LevelName(ent.Level)
	if ent.LoggerName != "" {
		prefix = ent.LoggerName + FormatSeparator + prefix
	}

	ent.Message = prefix + FormatSeparator + ent.Message
	ent.LoggerName = ""

	return e.Encoder.EncodeEntry(ent, fields)
}
