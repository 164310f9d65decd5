package logx

import (
	"encoding/base64"
)

// headerBanner is the product banner block, base64-encoded.
// Change the encoded string for a custom header.
const headerBanner = "ICAgX18gICAgICAgICAgICBfXyAgX18KICAvIC8gIF9fXyAgIF9fIF9cIFwvIC8KIC8gLyAgLyBfIFwgLyBfYCB8XCAgLyAKLyAvX198IChfKSB8IChffCB8LyAgXCAKXF9fX18vXF9fXy8gXF9fLCAvXy9cX1wKICAgICAgICAgICAgfF9fXy8gICAgKHYyLjAuMjMpCkxvZyBFeHByZXNzIDogbWFraW5nIGxvZ2dpbmcgZWFzeSBhbmQgZWZmaWNpZW50IQoKICAgICAgICBUaW1lU3RhbXAgICAgICAgICAgfCAgICAgTGV2ZWwgLyBTdGFja1RyYWNlICAgIHwgICAgIE1lc3NhZ2VzCg=="

// WriteHeaderBanner writes the decoded banner block to both sinks, before
// any message traffic. The block goes through the same rotation and write
// path as a normal record. A malformed payload is reported through the
// console channel and does not block subsequent logging. Returns the
// logger for chained configuration.
func (l *Logger) WriteHeaderBanner() *Logger {
	decoded, err := base64.StdEncoding.DecodeString(headerBanner)
	if err != nil {
		l.ensureInit()
		l.consoleNotice(l.getConfig(), "banner decode failed", err)
		return l
	}

	l.writeRaw(decoded)
	return l
}
