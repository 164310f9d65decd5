package logx

// serializer manages the buffered rendering of log lines.
// A Logger owns one serializer, guarded by the same lock as the sinks.
type serializer struct {
	buf []byte
}

// newSerializer creates a serializer instance.
func newSerializer() *serializer {
	return &serializer{
		buf: make([]byte, 0, 4096), // Initial reasonable capacity
	}
}

// reset clears the serializer buffer for reuse.
func (s *serializer) reset() {
	s.buf = s.buf[:0]
}

// serializeLine renders one record in the canonical layout:
//
//	[<timestamp>] [<LEVEL padded to 5>] [<site:line>] - <message>\n
//
// The message is treated as one opaque block: embedded newlines (rendered
// error stacks) pass through untouched and nothing is truncated.
func (s *serializer) serializeLine(layout string, record logRecord) []byte {
	s.reset()

	s.buf = append(s.buf, '[')
	s.buf = record.TimeStamp.AppendFormat(s.buf, layout)
	s.buf = append(s.buf, "] ["...)
	s.appendPaddedLevel(record.Level)
	s.buf = append(s.buf, "] ["...)
	s.buf = append(s.buf, record.Site...)
	s.buf = append(s.buf, "] - "...)
	s.buf = append(s.buf, record.Message...)
	s.buf = append(s.buf, '\n')

	return s.buf
}

// appendPaddedLevel writes the level tag padded to the fixed field width.
// Tags longer than the field are not truncated.
func (s *serializer) appendPaddedLevel(level Level) {
	tag := level.String()
	s.buf = append(s.buf, tag...)
	for i := len(tag); i < levelFieldWidth; i++ {
		s.buf = append(s.buf, ' ')
	}
}
