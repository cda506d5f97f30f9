package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTextBodyMultipart(t *testing.T) {
	raw := []byte("From: alice@example.com\r\n" +
		"To: bob@example.com\r\n" +
		"Subject: hello\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: multipart/alternative; boundary=frontier\r\n" +
		"\r\n" +
		"--frontier\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"\r\n" +
		"plain body\r\n" +
		"--frontier\r\n" +
		"Content-Type: text/html; charset=utf-8\r\n" +
		"\r\n" +
		"<p>html body</p>\r\n" +
		"--frontier--\r\n")

	body := extractTextBody(raw)
	assert.Contains(t, body, "plain body")
	assert.NotContains(t, body, "<p>")
}

func TestExtractTextBodySinglePart(t *testing.T) {
	raw := []byte("From: alice@example.com\r\n" +
		"Subject: hello\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"\r\n" +
		"just text\r\n")

	assert.Contains(t, extractTextBody(raw), "just text")
}
